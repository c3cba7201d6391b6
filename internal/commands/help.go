package commands

import (
	"fmt"
	"strings"

	"pkdindustries/multijoin/internal/core"
)

// HelpCommand handles the help command
type HelpCommand struct {
	registry *Registry
}

// NewHelpCommand creates a help command that can list registered commands
func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Usage() string       { return "" }
func (c *HelpCommand) Description() string { return "Generates this output" }
func (c *HelpCommand) AdminOnly() bool     { return false }

func (c *HelpCommand) Execute(ctx core.ChatContextInterface) {
	isAdmin := ctx.IsAdmin()

	for _, cmd := range c.registry.All() {
		if cmd.AdminOnly() && !isAdmin {
			continue
		}
		usage := strings.TrimSpace(cmd.Name() + " " + cmd.Usage())
		ctx.Reply(fmt.Sprintf("%-36s %s", usage, cmd.Description()))
	}
}

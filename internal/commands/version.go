package commands

import (
	"pkdindustries/multijoin/internal/core"
)

// VersionCommand handles the version command
type VersionCommand struct {
	Version string
}

func (c *VersionCommand) Name() string        { return "version" }
func (c *VersionCommand) Usage() string       { return "" }
func (c *VersionCommand) Description() string { return "Shows the running version" }
func (c *VersionCommand) AdminOnly() bool     { return false }

func (c *VersionCommand) Execute(ctx core.ChatContextInterface) {
	ctx.Reply("multijoin " + c.Version)
}

package commands

import (
	"fmt"

	"pkdindustries/multijoin/internal/core"
)

// Command defines the interface for control commands
type Command interface {
	Name() string
	// Usage is the argument syntax shown by help, without the name
	Usage() string
	Description() string
	Execute(ctx core.ChatContextInterface)
	AdminOnly() bool
}

// Registry manages command registration and dispatch
type Registry struct {
	commands map[string]Command
	order    []string
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry. Registering a name twice replaces
// the earlier command but keeps its position in All.
func (r *Registry) Register(cmd Command) {
	name := cmd.Name()
	if _, exists := r.commands[name]; !exists {
		r.order = append(r.order, name)
	}
	r.commands[name] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Dispatch executes the appropriate command based on context.
// The permission check and the command run under core.CommandLock.
// Returns true if a command was executed, false otherwise
func (r *Registry) Dispatch(ctx core.ChatContextInterface) bool {
	cmdName := ctx.GetCommand()

	cmd, ok := r.commands[cmdName]
	if !ok {
		ctx.Reply(fmt.Sprintf("Unknown command: %s. Try: help", cmdName))
		return false
	}

	executed := false
	core.WithCommandLock(ctx, cmdName, func() {
		// Check admin permission
		if cmd.AdminOnly() && !ctx.IsAdmin() {
			ctx.Reply("You don't have permission to perform this action.")
			return
		}
		cmd.Execute(ctx)
		executed = true
	}, func() {
		ctx.Reply("Request timed out waiting for previous operation to complete")
	})
	return executed
}

// All returns all registered commands in registration order
func (r *Registry) All() []Command {
	cmds := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Default builds the registry used by the control surface
func Default(version string) *Registry {
	registry := NewRegistry()
	registry.Register(NewHelpCommand(registry))
	registry.Register(NewJoinCommand())
	registry.Register(NewPartCommand())
	registry.Register(NewListCommand())
	registry.Register(&AdminCommand{})
	registry.Register(&VersionCommand{Version: version})
	return registry
}

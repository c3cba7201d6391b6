package commands

import (
	"time"

	"pkdindustries/multijoin/internal/core"
	"pkdindustries/multijoin/internal/multijoin"
)

// FanoutCommand runs one multijoin action across every matching identity
type FanoutCommand struct {
	Action multijoin.Action
}

func NewJoinCommand() *FanoutCommand { return &FanoutCommand{Action: multijoin.Join} }
func NewPartCommand() *FanoutCommand { return &FanoutCommand{Action: multijoin.Part} }
func NewListCommand() *FanoutCommand { return &FanoutCommand{Action: multijoin.List} }

func (c *FanoutCommand) Name() string    { return c.Action.String() }
func (c *FanoutCommand) AdminOnly() bool { return true }

func (c *FanoutCommand) Usage() string {
	if c.Action.NeedsChannel() {
		return "<#channel> [network_name]"
	}
	return "[network_name]"
}

func (c *FanoutCommand) Description() string {
	switch c.Action {
	case multijoin.Join:
		return "Joins all your nicks on the specified network to the channel"
	case multijoin.Part:
		return "Parts all your nicks on the specified network from the channel"
	}
	return "Lists all nicks on the specified network"
}

// Request builds the engine request from ctx's arguments
func (c *FanoutCommand) Request(ctx core.ChatContextInterface) multijoin.Request {
	args := ctx.GetArgs()
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	req := multijoin.Request{Action: c.Action, Current: ctx.GetNetwork()}
	if c.Action.NeedsChannel() {
		req.Channel = arg(1)
		req.Network = arg(2)
	} else {
		req.Network = arg(1)
	}
	return req
}

func (c *FanoutCommand) Execute(ctx core.ChatContextInterface) {
	req := c.Request(ctx)

	// a missing channel is answered before the registry is touched
	if c.Action.NeedsChannel() && req.Channel == "" {
		multijoin.Usage(c.Action).Emit(ctx)
		return
	}

	defer core.LogDuration(ctx.GetLogger(), c.Name(), time.Now())

	accessor, err := ctx.GetSystem().Snapshot()
	if err != nil {
		ctx.GetLogger().Errorw("Failed to read account registry", "error", err)
		ctx.Reply("Could not read the account registry.")
		return
	}

	engine := multijoin.NewEngine(accessor, ctx.GetConfig().Bot.PartReason, ctx.GetLogger())
	engine.Run(req).Emit(ctx)
}

package multijoin

import (
	"go.uber.org/zap"

	"pkdindustries/multijoin/internal/registry"
)

// DefaultPartReason is sent with PART when no reason is configured.
const DefaultPartReason = "Left via MultiJoin module"

// Request is one parsed command.
type Request struct {
	Action Action
	// Channel is ignored for List.
	Channel string
	// Network may be empty, in which case Current is used.
	Network string
	Current string
}

// Engine runs requests against a registry.
type Engine struct {
	Registry   registry.Accessor
	PartReason string
	Logger     *zap.SugaredLogger
}

// NewEngine returns an engine over accessor. An empty reason selects DefaultPartReason.
func NewEngine(accessor registry.Accessor, reason string, logger *zap.SugaredLogger) *Engine {
	if reason == "" {
		reason = DefaultPartReason
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Engine{Registry: accessor, PartReason: reason, Logger: logger}
}

// Run resolves, filters, acts and reports. It never fails: every problem
// becomes a line in the returned report.
func (e *Engine) Run(req Request) Report {
	channel := ""
	if req.Action.NeedsChannel() {
		if req.Channel == "" {
			return Usage(req.Action)
		}
		channel = NormalizeChannel(req.Channel)
	}

	network, matched := Match(e.Registry, req.Network, req.Current)
	split := Partition(matched)
	log := e.Logger.With("action", req.Action.String(), "network", network)

	if req.Action == List {
		log.Debugw("Listing nicks", "matched", split.Len())
		return Describe(network, split)
	}

	outcomes := Execute(req.Action, channel, e.PartReason, split)
	for _, o := range outcomes {
		if o.Kind == Instructed {
			log.Debugw("Directive sent", "account", o.Account, "nick", o.Nick, "channel", o.Channel)
		}
	}
	instructed := CountInstructed(outcomes)
	log.Infow("Fan-out complete",
		"channel", channel,
		"matched", split.Len(),
		"instructed", instructed,
		"skipped", len(outcomes)-instructed,
	)
	return Aggregate(req.Action, network, channel, outcomes)
}

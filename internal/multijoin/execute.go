package multijoin

import (
	"pkdindustries/multijoin/internal/registry"
)

// OutcomeKind records what happened to one matched identity.
type OutcomeKind int

const (
	Instructed OutcomeKind = iota
	SkippedNotConnected
)

// Outcome is produced once per matched identity during a join or part.
type Outcome struct {
	Account string
	Nick    string
	Network string
	Channel string
	Kind    OutcomeKind
}

// Directive renders the raw line sent to a connection for action.
// List has no directive and yields an empty string.
func Directive(action Action, channel, reason string) string {
	switch action {
	case Join:
		return "JOIN " + channel
	case Part:
		return "PART " + channel + " :" + reason
	}
	return ""
}

// Execute sends one directive to every connected registration in split and
// records a skip for every other one. Outcomes follow the order of split.
// Sends do not wait for the server to accept them.
func Execute(action Action, channel, reason string, split Split) []Outcome {
	directive := Directive(action, channel, reason)
	if directive == "" {
		return nil
	}

	outcomes := make([]Outcome, 0, split.Len())
	split.Each(func(reg registry.NetworkRegistration, connected bool) {
		out := Outcome{
			Account: reg.Account,
			Nick:    reg.Identity.Nick(),
			Network: reg.Network,
			Channel: channel,
		}
		if !connected {
			out.Kind = SkippedNotConnected
			outcomes = append(outcomes, out)
			return
		}
		out.Kind = Instructed
		outcomes = append(outcomes, out)
		reg.Identity.Send(directive)
	})
	return outcomes
}

// CountInstructed returns how many outcomes sent a directive.
func CountInstructed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Kind == Instructed {
			n++
		}
	}
	return n
}

package multijoin

import (
	"fmt"

	"pkdindustries/multijoin/internal/registry"
)

// Replier receives report lines one at a time, in order.
type Replier interface {
	Reply(string)
}

// Report is the output of one command invocation.
type Report struct {
	Title   string
	Lines   []string
	Summary string
}

// Emit sends the title (if any), every line and the summary to r.
func (rep Report) Emit(r Replier) {
	if rep.Title != "" {
		r.Reply(rep.Title)
	}
	for _, line := range rep.Lines {
		r.Reply(line)
	}
	if rep.Summary != "" {
		r.Reply(rep.Summary)
	}
}

// All returns every line Emit would send.
func (rep Report) All() []string {
	var out []string
	if rep.Title != "" {
		out = append(out, rep.Title)
	}
	out = append(out, rep.Lines...)
	if rep.Summary != "" {
		out = append(out, rep.Summary)
	}
	return out
}

// Usage is the report for a join or part given without a channel.
func Usage(action Action) Report {
	return Report{Summary: fmt.Sprintf("Usage: %s #channel [network_name]", action)}
}

func instructedLine(action Action, o Outcome) string {
	if action == Part {
		return fmt.Sprintf("Sending part command from channel %s for nick %s (%s)...", o.Channel, o.Nick, o.Account)
	}
	return fmt.Sprintf("Sending join command to channel %s for nick %s (%s)...", o.Channel, o.Nick, o.Account)
}

func skippedLine(action Action, o Outcome) string {
	if action == Part {
		return fmt.Sprintf("Nick %s (%s) is not connected to IRC server, cannot part from channel.", o.Nick, o.Account)
	}
	return fmt.Sprintf("Nick %s (%s) is not connected to IRC server, cannot join channel.", o.Nick, o.Account)
}

// Aggregate turns join or part outcomes into a report.
func Aggregate(action Action, network, channel string, outcomes []Outcome) Report {
	var rep Report
	for _, o := range outcomes {
		switch o.Kind {
		case Instructed:
			rep.Lines = append(rep.Lines, instructedLine(action, o))
		case SkippedNotConnected:
			rep.Lines = append(rep.Lines, skippedLine(action, o))
		}
	}

	instructed := CountInstructed(outcomes)
	switch {
	case instructed == 0:
		rep.Summary = fmt.Sprintf("No network found with the name %s, or no connected nicks on it.", network)
	case action == Part:
		rep.Summary = fmt.Sprintf("Total of %d nick(s) on network %s have been instructed to part from channel %s.", instructed, network, channel)
	default:
		rep.Summary = fmt.Sprintf("Total of %d nick(s) on network %s have been instructed to join channel %s.", instructed, network, channel)
	}
	return rep
}

// Describe builds the list report. No directive is sent.
func Describe(network string, split Split) Report {
	rep := Report{Title: fmt.Sprintf("All nicks on network %s:", network)}
	split.Each(func(reg registry.NetworkRegistration, connected bool) {
		state := "not connected"
		if connected {
			state = "active"
		}
		rep.Lines = append(rep.Lines, fmt.Sprintf("  - %s (%s) [%s]", reg.Identity.Nick(), reg.Account, state))
	})

	if split.Len() == 0 {
		rep.Summary = fmt.Sprintf("No network found with the name %s, or no nicks are connected on it.", network)
	} else {
		rep.Summary = fmt.Sprintf("Total of %d nick(s) found.", split.Len())
	}
	return rep
}

// Package multijoin fans a join, part or list request out to every identity
// registered under a network name, across all accounts.
package multijoin

import "strings"

// Action is one of the three verbs the engine understands.
type Action int

const (
	Join Action = iota
	Part
	List
)

func (a Action) String() string {
	switch a {
	case Join:
		return "join"
	case Part:
		return "part"
	case List:
		return "list"
	}
	return "unknown"
}

// ParseAction maps a command verb onto an Action, ignoring case.
func ParseAction(verb string) (Action, bool) {
	switch strings.ToLower(verb) {
	case "join":
		return Join, true
	case "part":
		return Part, true
	case "list":
		return List, true
	}
	return 0, false
}

// NeedsChannel reports whether the action takes a channel argument.
func (a Action) NeedsChannel() bool {
	return a == Join || a == Part
}

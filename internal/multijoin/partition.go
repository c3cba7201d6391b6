package multijoin

import "pkdindustries/multijoin/internal/registry"

type member struct {
	reg       registry.NetworkRegistration
	connected bool
}

// Split is the result of Partition. It remembers each registration's status as
// it was when Partition ran; later changes are not observed.
type Split struct {
	members []member
}

// Partition reads the connection status of every registration once.
func Partition(regs []registry.NetworkRegistration) Split {
	members := make([]member, len(regs))
	for i, reg := range regs {
		members[i] = member{reg: reg, connected: reg.Identity.Connected()}
	}
	return Split{members: members}
}

// Connected returns the registrations that were connected, in input order.
func (s Split) Connected() []registry.NetworkRegistration {
	return s.filter(true)
}

// Disconnected returns the registrations that were not connected, in input order.
func (s Split) Disconnected() []registry.NetworkRegistration {
	return s.filter(false)
}

// Len is the number of partitioned registrations.
func (s Split) Len() int {
	return len(s.members)
}

// Each calls fn for every registration in input order with its recorded status.
func (s Split) Each(fn func(reg registry.NetworkRegistration, connected bool)) {
	for _, m := range s.members {
		fn(m.reg, m.connected)
	}
}

func (s Split) filter(connected bool) []registry.NetworkRegistration {
	var out []registry.NetworkRegistration
	for _, m := range s.members {
		if m.connected == connected {
			out = append(out, m.reg)
		}
	}
	return out
}

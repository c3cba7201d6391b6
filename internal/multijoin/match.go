package multijoin

import (
	"strings"

	"pkdindustries/multijoin/internal/registry"
)

// Match scans every account for registrations named target, ignoring case.
// An empty target falls back to current. It returns the network name that was
// searched for along with the matches in registry order.
func Match(accessor registry.Accessor, target, current string) (string, []registry.NetworkRegistration) {
	network := target
	if network == "" {
		network = current
	}
	lower := strings.ToLower(network)

	var matched []registry.NetworkRegistration
	for _, account := range accessor.Accounts() {
		for _, reg := range account.Networks {
			if strings.ToLower(reg.Network) == lower {
				matched = append(matched, reg)
			}
		}
	}
	return network, matched
}

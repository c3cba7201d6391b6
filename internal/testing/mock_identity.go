package testing

import (
	"pkdindustries/multijoin/internal/registry"
)

// MockIdentity implements registry.Identity and records every directive sent
type MockIdentity struct {
	Nickname string
	Online   bool

	// Recorded calls (for assertions)
	Sent        []string
	StatusReads int
}

// Verify MockIdentity implements registry.Identity
var _ registry.Identity = (*MockIdentity)(nil)

func (m *MockIdentity) Nick() string {
	return m.Nickname
}

func (m *MockIdentity) Connected() bool {
	m.StatusReads++
	return m.Online
}

func (m *MockIdentity) Send(directive string) {
	m.Sent = append(m.Sent, directive)
}

// CountingAccessor wraps an accessor and counts Accounts calls
type CountingAccessor struct {
	registry.Accessor
	Calls int
}

func (c *CountingAccessor) Accounts() []registry.Account {
	c.Calls++
	return c.Accessor.Accounts()
}

// Fixture is a small registry with handles on its identities
type Fixture struct {
	Registry   registry.Static
	Identities map[string]*MockIdentity // "account/network" -> identity
}

// Identity returns the mock registered for account on network
func (f *Fixture) Identity(account, network string) *MockIdentity {
	return f.Identities[account+"/"+network]
}

// TotalSent counts directives sent across every identity
func (f *Fixture) TotalSent() int {
	n := 0
	for _, id := range f.Identities {
		n += len(id.Sent)
	}
	return n
}

// Registration describes one row for NewFixture
type Registration struct {
	Account string
	Network string
	Nick    string
	Online  bool
}

// NewFixture builds a registry from rows, grouping consecutive rows by account
func NewFixture(rows ...Registration) *Fixture {
	f := &Fixture{Identities: make(map[string]*MockIdentity)}
	for _, row := range rows {
		id := &MockIdentity{Nickname: row.Nick, Online: row.Online}
		f.Identities[row.Account+"/"+row.Network] = id

		reg := registry.NetworkRegistration{Account: row.Account, Network: row.Network, Identity: id}
		if n := len(f.Registry); n > 0 && f.Registry[n-1].Name == row.Account {
			f.Registry[n-1].Networks = append(f.Registry[n-1].Networks, reg)
			continue
		}
		f.Registry = append(f.Registry, registry.Account{
			Name:     row.Account,
			Networks: []registry.NetworkRegistration{reg},
		})
	}
	return f
}

// LiberaFixture has alice connected as alice_nick and bob disconnected, both on Libera
func LiberaFixture() *Fixture {
	return NewFixture(
		Registration{Account: "alice", Network: "Libera", Nick: "alice_nick", Online: true},
		Registration{Account: "bob", Network: "Libera", Nick: "bob", Online: false},
	)
}

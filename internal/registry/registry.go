package registry

// Identity is a single connection endpoint belonging to a network registration.
type Identity interface {
	// Nick returns the live nickname when connected, the configured one otherwise.
	Nick() string
	Connected() bool
	// Send writes one raw directive to the connection. It does not wait for the server.
	Send(directive string)
}

// NetworkRegistration links an account to one identity under a network name.
type NetworkRegistration struct {
	Account  string
	Network  string
	Identity Identity
}

// Account owns an ordered list of network registrations.
type Account struct {
	Name     string
	Networks []NetworkRegistration
}

// Accessor is a read-only view over every account.
// Implementations must return accounts, and the registrations inside each
// account, in the same order on every call while the underlying state is unchanged.
type Accessor interface {
	Accounts() []Account
}

// Static is an Accessor over a fixed slice.
type Static []Account

func (s Static) Accounts() []Account {
	return s
}

// Offline is an Identity with no connection behind it.
type Offline struct {
	Nickname string
}

func (o Offline) Nick() string          { return o.Nickname }
func (o Offline) Connected() bool       { return false }
func (o Offline) Send(directive string) {}

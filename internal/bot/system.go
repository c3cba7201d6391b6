package bot

import (
	"fmt"

	"go.uber.org/zap"

	"pkdindustries/multijoin/internal/config"
	"pkdindustries/multijoin/internal/core"
	"pkdindustries/multijoin/internal/registry"
)

// System ties the account store to the live connection pool
type System struct {
	store *registry.Store
	pool  *Pool
}

var _ core.System = (*System)(nil)

func NewSystem(c *config.Configuration) (*System, error) {
	store, err := registry.OpenStore(c.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("opening account store: %w", err)
	}
	zap.S().Infow("Opened account store", "path", c.Store.Path)

	return &System{store: store, pool: NewPool()}, nil
}

// Snapshot reads the stored accounts and pairs each network with its live link.
// Registrations without a link are reported as not connected.
func (s *System) Snapshot() (registry.Accessor, error) {
	records, err := s.store.All()
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return registry.Snapshot(records, s.pool.Lookup), nil
}

func (s *System) GetStore() *registry.Store {
	return s.store
}

func (s *System) Pool() *Pool {
	return s.pool
}

func (s *System) Close() error {
	return s.store.Close()
}

package testing

import (
	"pkdindustries/multijoin/internal/core"
	"pkdindustries/multijoin/internal/registry"
)

// MockSystem implements core.System for testing
type MockSystem struct {
	Registry registry.Accessor
	Store    *registry.Store
	Err      error

	// Recorded calls (for assertions)
	SnapshotCalls int
}

// NewMockSystem creates a MockSystem serving the given registry
func NewMockSystem(accessor registry.Accessor) *MockSystem {
	return &MockSystem{Registry: accessor}
}

// Snapshot implements core.System
func (m *MockSystem) Snapshot() (registry.Accessor, error) {
	m.SnapshotCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Registry, nil
}

// GetStore implements core.System
func (m *MockSystem) GetStore() *registry.Store {
	return m.Store
}

// Verify MockSystem implements core.System
var _ core.System = (*MockSystem)(nil)

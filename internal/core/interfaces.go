package core

import (
	"context"

	"go.uber.org/zap"

	"pkdindustries/multijoin/internal/config"
	"pkdindustries/multijoin/internal/registry"
)

// ChatContextInterface provides all context needed for handling a control command
type ChatContextInterface interface {
	context.Context

	// Event methods
	IsAdmin() bool
	Valid() bool
	GetCommand() string
	GetSource() string
	GetArgs() []string
	// GetNetwork is the network name of the identity that received the command
	GetNetwork() string

	// Responder methods
	Reply(string)

	// Runtime methods
	GetConfig() *config.Configuration
	GetSystem() System
	GetLogger() *zap.SugaredLogger
}

type System interface {
	// Snapshot returns a point-in-time view of every account with its live identities
	Snapshot() (registry.Accessor, error)
	GetStore() *registry.Store
}

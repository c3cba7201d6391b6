package testing

import (
	"time"

	"pkdindustries/multijoin/internal/config"
)

// DefaultTestConfig returns a minimal configuration for testing
func DefaultTestConfig() *config.Configuration {
	return &config.Configuration{
		Bot: &config.BotConfig{
			Admins:     []string{},
			Verbose:    false,
			Trigger:    "*multijoin",
			PartReason: "Left via MultiJoin module",
		},
		Store: &config.StoreConfig{
			Path: ":memory:",
		},
		Identity: &config.IdentityConfig{
			Username:   "testbot",
			Realname:   "Test Bot",
			RetryDelay: time.Millisecond,
			MaxRetries: 1,
		},
		API: &config.APIConfig{
			Timeout: time.Second * 30,
		},
	}
}

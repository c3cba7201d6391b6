package irc

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lrstanley/girc"
	"go.uber.org/zap"

	"pkdindustries/multijoin/internal/config"
	"pkdindustries/multijoin/internal/core"
	"pkdindustries/multijoin/internal/registry"
)

// Link is one account's connection to one network. It implements registry.Identity.
type Link struct {
	Account string
	Network string

	client *girc.Client
	nick   string
	logger *zap.SugaredLogger

	// set once the server accepts registration, cleared before each attempt
	registered atomic.Bool
}

var _ registry.Identity = (*Link)(nil)

// NewLink prepares, but does not open, the connection described by rec.
func NewLink(account string, rec registry.NetworkRecord, defaults *config.IdentityConfig, logger *zap.SugaredLogger) *Link {
	user := rec.Username
	if user == "" {
		user = defaults.Username
	}
	name := rec.Realname
	if name == "" {
		name = defaults.Realname
	}

	client := girc.New(girc.Config{
		Server:     rec.Server,
		ServerPass: rec.Password,
		Port:       rec.Port,
		Nick:       rec.Nick,
		User:       user,
		Name:       name,
		SSL:        rec.TLS,
		TLSConfig:  &tls.Config{InsecureSkipVerify: rec.TLSInsecure},
	})

	if rec.SASLUser != "" && rec.SASLPass != "" {
		client.Config.SASL = &girc.SASLPlain{
			User: rec.SASLUser,
			Pass: rec.SASLPass,
		}
	}

	link := &Link{
		Account: account,
		Network: rec.Name,
		client:  client,
		nick:    rec.Nick,
		logger:  core.WithIdentity(logger, account, rec.Name),
	}
	client.Handlers.AddBg(girc.CONNECTED, func(*girc.Client, girc.Event) {
		link.registered.Store(true)
	})
	return link
}

// Nick returns the nick in use on the server, or the configured one while offline.
func (l *Link) Nick() string {
	if l.client.IsConnected() {
		if nick := l.client.GetNick(); nick != "" {
			return nick
		}
	}
	return l.nick
}

func (l *Link) Connected() bool {
	return l.client.IsConnected()
}

// Send queues a raw line on the connection. A write to a connection that has
// dropped since its status was read is logged and discarded.
func (l *Link) Send(directive string) {
	if err := l.client.Cmd.SendRaw(directive); err != nil {
		l.logger.Warnw("Directive not sent", "directive", directive, "error", err)
	}
}

// Client exposes the underlying girc client for handler registration.
func (l *Link) Client() *girc.Client {
	return l.client
}

// Logger returns the link's scoped logger.
func (l *Link) Logger() *zap.SugaredLogger {
	return l.logger
}

// retryBudget counts consecutive failed connection attempts. An attempt that
// reached registration before dropping starts the count over.
type retryBudget struct {
	max    int
	failed int
}

// fail records a dropped or refused attempt and reports whether another is allowed.
func (b *retryBudget) fail(registered bool) bool {
	if registered {
		b.failed = 0
	}
	b.failed++
	return b.failed < b.max
}

// Run connects and reconnects until ctx is done, the server closes the session
// cleanly, or maxRetries consecutive attempts fail without registering.
func (l *Link) Run(ctx context.Context, retryDelay time.Duration, maxRetries int) error {
	go func() {
		<-ctx.Done()
		if l.client.IsConnected() {
			l.client.Quit("Shutting down...")
		}
		l.client.Close()
	}()

	budget := retryBudget{max: maxRetries}
	for ctx.Err() == nil {
		l.logger.Infow("Connecting to server",
			"server", l.client.Config.Server,
			"port", l.client.Config.Port,
			"tls", l.client.Config.SSL,
			"sasl", l.client.Config.SASL != nil,
		)

		l.registered.Store(false)
		err := l.client.Connect()
		if err == nil || ctx.Err() != nil {
			return nil
		}

		l.logger.Errorw("Connection failed", "error", err)
		if !budget.fail(l.registered.Load()) {
			return fmt.Errorf("%s/%s: failed to connect after %d attempts", l.Account, l.Network, maxRetries)
		}
		l.logger.Infof("Reconnecting in %s (attempt %d/%d)", retryDelay, budget.failed+1, maxRetries)

		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

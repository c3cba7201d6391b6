package bot

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"pkdindustries/multijoin/internal/irc"
	"pkdindustries/multijoin/internal/registry"
)

// Pool holds one link per registered account/network pair
type Pool struct {
	mu    sync.RWMutex
	links map[string]*irc.Link
	order []*irc.Link
}

func NewPool() *Pool {
	return &Pool{links: make(map[string]*irc.Link)}
}

func poolKey(account, network string) string {
	return account + "/" + strings.ToLower(network)
}

// Add registers link, replacing any earlier link for the same pair
func (p *Pool) Add(link *irc.Link) {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := poolKey(link.Account, link.Network)
	if old, ok := p.links[key]; ok {
		for i, l := range p.order {
			if l == old {
				p.order[i] = link
			}
		}
	} else {
		p.order = append(p.order, link)
	}
	p.links[key] = link
}

// Lookup returns the live identity for account on network, or nil when the
// pair has no link.
func (p *Pool) Lookup(account, network string) registry.Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()

	link, ok := p.links[poolKey(account, network)]
	if !ok {
		return nil
	}
	return link
}

// Links returns the links in the order they were added
func (p *Pool) Links() []*irc.Link {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]*irc.Link(nil), p.order...)
}

func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.order)
}

// Run starts every link's reconnect loop and blocks until all of them return.
// A link that gives up does not stop the others; the first such error is returned.
func (p *Pool) Run(ctx context.Context, retryDelay time.Duration, maxRetries int) error {
	var g errgroup.Group
	for _, link := range p.Links() {
		g.Go(func() error {
			err := link.Run(ctx, retryDelay, maxRetries)
			if err != nil {
				link.Logger().Errorw("Giving up on connection", "error", err)
			}
			return err
		})
	}
	return g.Wait()
}

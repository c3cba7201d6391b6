package bot

import (
	"testing"

	"go.uber.org/zap"

	"pkdindustries/multijoin/internal/irc"
	"pkdindustries/multijoin/internal/registry"
	mocktest "pkdindustries/multijoin/internal/testing"
)

func newTestLink(account, network, nick string) *irc.Link {
	rec := registry.NetworkRecord{Name: network, Server: "irc.example.net", Port: 6667, Nick: nick}
	return irc.NewLink(account, rec, mocktest.DefaultTestConfig().Identity, zap.NewNop().Sugar())
}

func TestPool_Lookup(t *testing.T) {
	p := NewPool()
	alice := newTestLink("alice", "Libera", "alice_nick")
	p.Add(alice)

	tests := []struct {
		account string
		network string
		found   bool
	}{
		{"alice", "Libera", true},
		{"alice", "libera", true},
		{"alice", "LIBERA", true},
		{"alice", "OFTC", false},
		{"bob", "Libera", false},
	}

	for _, tt := range tests {
		id := p.Lookup(tt.account, tt.network)
		if (id != nil) != tt.found {
			t.Errorf("Lookup(%q, %q) found = %v, want %v", tt.account, tt.network, id != nil, tt.found)
		}
	}
}

func TestPool_AddReplacesInPlace(t *testing.T) {
	p := NewPool()
	p.Add(newTestLink("alice", "Libera", "first"))
	p.Add(newTestLink("bob", "Libera", "bob"))
	p.Add(newTestLink("alice", "libera", "second"))

	links := p.Links()
	if len(links) != 2 || p.Len() != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Nick() != "second" || links[1].Nick() != "bob" {
		t.Errorf("unexpected order: %s, %s", links[0].Nick(), links[1].Nick())
	}
}

func TestGreetingText(t *testing.T) {
	got := GreetingText("alice_nick", "*multijoin")
	want := "MultiJoin module loaded. Usage: /msg alice_nick *multijoin help"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pkdindustries/multijoin/internal/multijoin"
	"pkdindustries/multijoin/internal/registry"
)

func offlineFixture() registry.Static {
	records := []registry.AccountRecord{
		{Name: "alice", Networks: []registry.NetworkRecord{{Name: "Libera", Nick: "alice_nick"}}},
		{Name: "bob", Networks: []registry.NetworkRecord{{Name: "Libera", Nick: "bob"}, {Name: "OFTC", Nick: "bobby"}}},
	}
	return registry.Snapshot(records, func(account, network string) registry.Identity { return nil })
}

func TestOfflineReport(t *testing.T) {
	tests := []struct {
		name   string
		action multijoin.Action
		args   []string
		want   []string
	}{
		{
			name:   "list",
			action: multijoin.List,
			args:   []string{"libera"},
			want: []string{
				"All nicks on network libera:",
				"  - alice_nick (alice) [not connected]",
				"  - bob (bob) [not connected]",
				"Total of 2 nick(s) found.",
			},
		},
		{
			name:   "join skips everyone",
			action: multijoin.Join,
			args:   []string{"test", "OFTC"},
			want: []string{
				"Nick bobby (bob) is not connected to IRC server, cannot join channel.",
				"No network found with the name OFTC, or no connected nicks on it.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := offlineReport(&buf, offlineFixture(), tt.action, tt.args, ""); err != nil {
				t.Fatalf("offlineReport: %v", err)
			}

			got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("report mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOfflineReport_MissingArguments(t *testing.T) {
	tests := []struct {
		name   string
		action multijoin.Action
		args   []string
	}{
		{"list without network", multijoin.List, nil},
		{"join without network", multijoin.Join, []string{"#test"}},
		{"part without channel", multijoin.Part, nil},
		{"join with empty network", multijoin.Join, []string{"#test", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := offlineReport(&buf, offlineFixture(), tt.action, tt.args, "")
			if !errors.Is(err, errMissingArgs) {
				t.Errorf("expected errMissingArgs, got %v", err)
			}
			if buf.Len() != 0 {
				t.Errorf("expected no report output, got %q", buf.String())
			}
		})
	}
}

func TestRenderAccounts(t *testing.T) {
	records := []registry.AccountRecord{
		{Name: "alice", Networks: []registry.NetworkRecord{{Name: "Libera", Server: "irc.libera.chat", Port: 6697, Nick: "alice_nick", TLS: true}}},
		{Name: "carol"},
	}

	var buf bytes.Buffer
	renderAccounts(&buf, records)
	out := buf.String()

	for _, want := range []string{"ACCOUNT", "alice", "irc.libera.chat:6697", "alice_nick", "carol"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

package commands

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	mocktest "pkdindustries/multijoin/internal/testing"
)

func TestFanoutCommand_Names(t *testing.T) {
	tests := []struct {
		cmd   *FanoutCommand
		name  string
		usage string
	}{
		{NewJoinCommand(), "join", "<#channel> [network_name]"},
		{NewPartCommand(), "part", "<#channel> [network_name]"},
		{NewListCommand(), "list", "[network_name]"},
	}

	for _, tt := range tests {
		if tt.cmd.Name() != tt.name {
			t.Errorf("expected %s, got %s", tt.name, tt.cmd.Name())
		}
		if tt.cmd.Usage() != tt.usage {
			t.Errorf("%s usage = %q, want %q", tt.name, tt.cmd.Usage(), tt.usage)
		}
		if !tt.cmd.AdminOnly() {
			t.Errorf("expected %s to be admin-only", tt.name)
		}
	}
}

func TestFanoutCommand_JoinScenario(t *testing.T) {
	f := mocktest.LiberaFixture()
	sys := mocktest.NewMockSystem(f.Registry)

	ctx := mocktest.NewMockContext().
		WithAdmin(true).
		WithSystem(sys).
		WithNetwork("OFTC").
		WithArgs("join", "test", "libera")

	NewJoinCommand().Execute(ctx)

	want := []string{
		"Sending join command to channel #test for nick alice_nick (alice)...",
		"Nick bob (bob) is not connected to IRC server, cannot join channel.",
		"Total of 1 nick(s) on network libera have been instructed to join channel #test.",
	}
	if diff := cmp.Diff(want, ctx.Replies); diff != "" {
		t.Errorf("replies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"JOIN #test"}, f.Identity("alice", "Libera").Sent); diff != "" {
		t.Errorf("alice directives (-want +got):\n%s", diff)
	}
}

func TestFanoutCommand_DefaultsToCurrentNetwork(t *testing.T) {
	f := mocktest.LiberaFixture()
	sys := mocktest.NewMockSystem(f.Registry)

	ctx := mocktest.NewMockContext().
		WithSystem(sys).
		WithNetwork("Libera").
		WithArgs("part", "#test")

	NewPartCommand().Execute(ctx)

	if diff := cmp.Diff([]string{"PART #test :Left via MultiJoin module"}, f.Identity("alice", "Libera").Sent); diff != "" {
		t.Errorf("alice directives (-want +got):\n%s", diff)
	}
	want := "Total of 1 nick(s) on network Libera have been instructed to part from channel #test."
	if ctx.LastReply() != want {
		t.Errorf("summary = %q, want %q", ctx.LastReply(), want)
	}
}

func TestFanoutCommand_NoMatch(t *testing.T) {
	f := mocktest.LiberaFixture()
	sys := mocktest.NewMockSystem(f.Registry)

	ctx := mocktest.NewMockContext().
		WithSystem(sys).
		WithArgs("join", "#foo", "freenode")

	NewJoinCommand().Execute(ctx)

	want := []string{"No network found with the name freenode, or no connected nicks on it."}
	if diff := cmp.Diff(want, ctx.Replies); diff != "" {
		t.Errorf("replies mismatch (-want +got):\n%s", diff)
	}
	if f.TotalSent() != 0 {
		t.Errorf("expected zero directives, got %d", f.TotalSent())
	}
}

func TestFanoutCommand_UsageBeforeScan(t *testing.T) {
	for _, cmd := range []*FanoutCommand{NewJoinCommand(), NewPartCommand()} {
		f := mocktest.LiberaFixture()
		sys := mocktest.NewMockSystem(f.Registry)

		ctx := mocktest.NewMockContext().
			WithSystem(sys).
			WithArgs(cmd.Name())

		cmd.Execute(ctx)

		want := []string{"Usage: " + cmd.Name() + " #channel [network_name]"}
		if diff := cmp.Diff(want, ctx.Replies); diff != "" {
			t.Errorf("%s replies mismatch (-want +got):\n%s", cmd.Name(), diff)
		}
		if sys.SnapshotCalls != 0 {
			t.Errorf("%s: registry read %d times, want 0", cmd.Name(), sys.SnapshotCalls)
		}
	}
}

func TestFanoutCommand_List(t *testing.T) {
	f := mocktest.LiberaFixture()
	sys := mocktest.NewMockSystem(f.Registry)

	ctx := mocktest.NewMockContext().
		WithSystem(sys).
		WithArgs("list", "Libera")

	NewListCommand().Execute(ctx)

	want := []string{
		"All nicks on network Libera:",
		"  - alice_nick (alice) [active]",
		"  - bob (bob) [not connected]",
		"Total of 2 nick(s) found.",
	}
	if diff := cmp.Diff(want, ctx.Replies); diff != "" {
		t.Errorf("replies mismatch (-want +got):\n%s", diff)
	}
	if f.TotalSent() != 0 {
		t.Errorf("list must not send directives, got %d", f.TotalSent())
	}
}

func TestFanoutCommand_SnapshotError(t *testing.T) {
	sys := mocktest.NewMockSystem(nil)
	sys.Err = errors.New("disk on fire")

	ctx := mocktest.NewMockContext().
		WithSystem(sys).
		WithArgs("list")

	NewListCommand().Execute(ctx)

	if ctx.ReplyCount() != 1 || !ctx.HasReply("Could not read the account registry") {
		t.Errorf("expected a single registry error reply, got %v", ctx.Replies)
	}
}

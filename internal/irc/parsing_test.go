package irc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckTrigger(t *testing.T) {
	tests := []struct {
		name    string
		message string
		trigger string
		want    bool
	}{
		{"with space", "*multijoin join #x", "*multijoin", true},
		{"with colon", "*multijoin: list", "*multijoin", true},
		{"with comma", "*multijoin, list", "*multijoin", true},
		{"case insensitive", "*MultiJoin list", "*multijoin", true},
		{"trigger prefix of longer word", "*multijoiner list", "*multijoin", false},
		{"trigger in middle", "hello *multijoin", "*multijoin", false},
		{"empty message", "", "*multijoin", false},
		{"empty trigger", "join #x", "", true},
		{"just trigger", "*multijoin", "*multijoin", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckTrigger(tt.message, tt.trigger)
			if got != tt.want {
				t.Errorf("CheckTrigger(%q, %q) = %v, want %v", tt.message, tt.trigger, got, tt.want)
			}
		})
	}
}

func TestCommandArgs(t *testing.T) {
	tests := []struct {
		message string
		want    []string
	}{
		{"*multijoin join test libera", []string{"join", "test", "libera"}},
		{"*multijoin:   part   #go  ", []string{"part", "#go"}},
		{"*multijoin", nil},
		{"join #x", nil},
	}

	for _, tt := range tests {
		got := CommandArgs(tt.message, "*multijoin")
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("CommandArgs(%q) mismatch (-want +got):\n%s", tt.message, diff)
		}
	}
}

func TestCheckAdmin_EmptyList(t *testing.T) {
	// WARNING: Empty admin list means everyone is admin!
	if !CheckAdmin("anyone!user@host.com", []string{}) {
		t.Error("CheckAdmin with empty list should return true (everyone is admin)")
	}
}

func TestCheckAdmin_ExactMatch(t *testing.T) {
	admins := []string{"admin!user@trusted.host"}

	tests := []struct {
		name     string
		hostmask string
		want     bool
	}{
		{"exact match", "admin!user@trusted.host", true},
		{"different nick", "other!user@trusted.host", false},
		{"different host", "admin!user@other.host", false},
		{"partial match", "admin!user@trusted", false},
		{"empty hostmask", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckAdmin(tt.hostmask, admins)
			if got != tt.want {
				t.Errorf("CheckAdmin(%q, admins) = %v, want %v", tt.hostmask, got, tt.want)
			}
		})
	}
}

func TestCheckPrivate(t *testing.T) {
	if !CheckPrivate("alice_nick") {
		t.Error("nick target should be private")
	}
	if CheckPrivate("#chan") {
		t.Error("channel target should not be private")
	}
}

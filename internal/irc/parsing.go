package irc

import "strings"

// CheckTrigger returns true if message starts with trigger followed by a separator
// or end of string. The comparison ignores case.
func CheckTrigger(message, trigger string) bool {
	if trigger == "" {
		return true
	}
	if len(message) < len(trigger) || !strings.EqualFold(message[:len(trigger)], trigger) {
		return false
	}
	if len(message) == len(trigger) {
		return true
	}
	// Check that the next character is a separator
	next := message[len(trigger)]
	return next == ' ' || next == ':' || next == ','
}

// CheckAdmin returns true if hostmask matches any admin in the list.
// WARNING: Returns true if adminList is empty (everyone is admin).
func CheckAdmin(hostmask string, adminList []string) bool {
	if len(adminList) == 0 {
		return true
	}
	for _, admin := range adminList {
		if admin == hostmask {
			return true
		}
	}
	return false
}

// CheckPrivate returns true if target is not a channel (doesn't start with #).
func CheckPrivate(target string) bool {
	return !strings.HasPrefix(target, "#")
}

// CommandArgs strips the trigger from message and splits the rest on whitespace.
func CommandArgs(message, trigger string) []string {
	if !CheckTrigger(message, trigger) {
		return nil
	}
	args := strings.Fields(strings.TrimLeft(message[len(trigger):], ":,"))
	if len(args) == 0 {
		return nil
	}
	return args
}

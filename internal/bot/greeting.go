package bot

import (
	"fmt"

	"pkdindustries/multijoin/internal/irc"
)

// Greeting logs how to reach the control surface through each link
func Greeting(links []*irc.Link, trigger string) {
	for _, link := range links {
		link.Logger().Info(GreetingText(link.Nick(), trigger))
	}
}

func GreetingText(nick, trigger string) string {
	return fmt.Sprintf("MultiJoin module loaded. Usage: /msg %s %s help", nick, trigger)
}

package multijoin

import "strings"

// ChannelPrefix is prepended to channel names given without one.
const ChannelPrefix = "#"

// NormalizeChannel returns channel with ChannelPrefix guaranteed at the front.
func NormalizeChannel(channel string) string {
	if strings.HasPrefix(channel, ChannelPrefix) {
		return channel
	}
	return ChannelPrefix + channel
}

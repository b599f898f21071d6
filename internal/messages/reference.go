// Package messages parses user-supplied message references.
package messages

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyReference indicates the input contained no usable reference.
var ErrEmptyReference = errors.New("message reference is empty")

// messageLinkPattern matches the three numeric path segments of a Discord
// message URL: .../channels/<guild>/<channel>/<message>.
var messageLinkPattern = regexp.MustCompile(`channels/(\d+)/(\d+)/(\d+)`)

// Reference identifies a message, optionally with its guild and channel.
// ChannelID is empty when the input was a bare message ID.
type Reference struct {
	GuildID   string
	ChannelID string
	MessageID string
}

// Parse extracts a Reference from a message URL or a bare message ID.
// A URL yields all three IDs; any other input is treated as a message ID
// on its own, leaving channel resolution to the caller.
func Parse(input string) (Reference, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Reference{}, ErrEmptyReference
	}

	if m := messageLinkPattern.FindStringSubmatch(trimmed); m != nil {
		return Reference{GuildID: m[1], ChannelID: m[2], MessageID: m[3]}, nil
	}
	return Reference{MessageID: trimmed}, nil
}

// Package channels resolves the target channel for an export invocation.
package channels

import (
	"context"
	"errors"
	"fmt"

	"github.com/ttrlf1racing/emoji-count/internal/discord"
	"github.com/ttrlf1racing/emoji-count/internal/messages"
)

// ErrNoChannel indicates neither an explicit channel option nor a
// URL-derived channel ID was available.
var ErrNoChannel = errors.New("no channel context available")

// Resolver picks the channel a message should be fetched from.
type Resolver struct {
	client discord.ChannelFetcher
}

// NewResolver creates a Resolver backed by the given channel fetcher.
func NewResolver(client discord.ChannelFetcher) *Resolver {
	return &Resolver{client: client}
}

// ResolveID returns the channel ID to fetch the target message from.
// An explicit channel choice always wins; otherwise the reference's
// URL-derived channel ID is verified against the platform. When neither
// source provides a channel, ErrNoChannel is returned.
func (r *Resolver) ResolveID(ctx context.Context, explicitID string, ref messages.Reference) (string, error) {
	if explicitID != "" {
		return explicitID, nil
	}
	if ref.ChannelID == "" {
		return "", ErrNoChannel
	}
	ch, err := r.client.FetchChannel(ctx, ref.ChannelID)
	if err != nil {
		return "", fmt.Errorf("resolve channel %s: %w", ref.ChannelID, err)
	}
	return ch.ID, nil
}

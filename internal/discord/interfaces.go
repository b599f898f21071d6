package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// MessageFetcher retrieves a single message by channel and message ID.
type MessageFetcher interface {
	FetchMessage(ctx context.Context, channelID, messageID string) (*discordgo.Message, error)
}

// ReactionLister pages through the users who reacted with one emoji.
type ReactionLister interface {
	ListReactionUsers(ctx context.Context, channelID, messageID, emoji string, limit int, afterID string) ([]*discordgo.User, error)
}

// ChannelFetcher resolves a channel ID to channel metadata.
type ChannelFetcher interface {
	FetchChannel(ctx context.Context, channelID string) (*discordgo.Channel, error)
}

// CommandRegistrar upserts application command definitions.
type CommandRegistrar interface {
	RegisterCommand(ctx context.Context, guildID string, cmd *discordgo.ApplicationCommand) (*discordgo.ApplicationCommand, error)
}

// InteractionResponder sends, defers, and edits interaction replies.
type InteractionResponder interface {
	DeferEphemeral(ctx context.Context, i *discordgo.Interaction) error
	RespondEphemeral(ctx context.Context, i *discordgo.Interaction, content string) error
	EditReply(ctx context.Context, i *discordgo.Interaction, content string, files []*discordgo.File) error
}

// ExportClient combines the operations the command dispatcher needs.
type ExportClient interface {
	MessageFetcher
	ReactionLister
	ChannelFetcher
	InteractionResponder
}

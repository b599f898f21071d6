package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// MaxReactionPageSize is the largest user page the platform will return
// for a single reaction listing call.
const MaxReactionPageSize = 100

// APIClient implements the client interfaces by wrapping a discordgo Session.
type APIClient struct {
	sdk *discordgo.Session
}

// New wraps an already-constructed discordgo session.
func New(session *discordgo.Session) *APIClient {
	return &APIClient{sdk: session}
}

// FetchMessage retrieves a single message.
func (c *APIClient) FetchMessage(ctx context.Context, channelID, messageID string) (*discordgo.Message, error) {
	if channelID == "" {
		return nil, ErrChannelRequired
	}
	if messageID == "" {
		return nil, ErrMessageRequired
	}
	msg, err := c.sdk.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch message %s: %w", messageID, err)
	}
	return msg, nil
}

// ListReactionUsers fetches one page of users who reacted with the given emoji.
// The emoji parameter uses the API form: "name:id" for custom emoji, the raw
// unicode character otherwise. An empty afterID starts from the beginning.
func (c *APIClient) ListReactionUsers(ctx context.Context, channelID, messageID, emoji string, limit int, afterID string) ([]*discordgo.User, error) {
	if channelID == "" {
		return nil, ErrChannelRequired
	}
	if messageID == "" {
		return nil, ErrMessageRequired
	}
	if emoji == "" {
		return nil, ErrEmojiRequired
	}
	if limit <= 0 || limit > MaxReactionPageSize {
		limit = MaxReactionPageSize
	}
	users, err := c.sdk.MessageReactions(channelID, messageID, emoji, limit, "", afterID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list reaction users for %s: %w", emoji, err)
	}
	return users, nil
}

// FetchChannel retrieves channel metadata, preferring the gateway state cache.
func (c *APIClient) FetchChannel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if channelID == "" {
		return nil, ErrChannelRequired
	}
	if ch, err := c.sdk.State.Channel(channelID); err == nil {
		return ch, nil
	}
	ch, err := c.sdk.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch channel %s: %w", channelID, err)
	}
	return ch, nil
}

// RegisterCommand upserts an application command. An empty guildID registers
// the command globally.
func (c *APIClient) RegisterCommand(ctx context.Context, guildID string, cmd *discordgo.ApplicationCommand) (*discordgo.ApplicationCommand, error) {
	if cmd == nil {
		return nil, fmt.Errorf("command definition is nil")
	}
	created, err := c.sdk.ApplicationCommandCreate(c.sdk.State.User.ID, guildID, cmd, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("register command %s: %w", cmd.Name, err)
	}
	return created, nil
}

// DeferEphemeral acknowledges an interaction with a deferred, caller-only
// placeholder so the eventual export can exceed the immediate-response budget.
func (c *APIClient) DeferEphemeral(ctx context.Context, i *discordgo.Interaction) error {
	return c.sdk.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
}

// RespondEphemeral sends an immediate caller-only reply.
func (c *APIClient) RespondEphemeral(ctx context.Context, i *discordgo.Interaction, content string) error {
	return c.sdk.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
}

// EditReply replaces the deferred placeholder with final content and
// optional file attachments.
func (c *APIClient) EditReply(ctx context.Context, i *discordgo.Interaction, content string, files []*discordgo.File) error {
	edit := &discordgo.WebhookEdit{Content: &content}
	if len(files) > 0 {
		edit.Files = files
	}
	_, err := c.sdk.InteractionResponseEdit(i, edit, discordgo.WithContext(ctx))
	return err
}

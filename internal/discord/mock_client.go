package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// MockClient implements the client interfaces for tests.
type MockClient struct {
	FetchMessageFunc      func(ctx context.Context, channelID, messageID string) (*discordgo.Message, error)
	ListReactionUsersFunc func(ctx context.Context, channelID, messageID, emoji string, limit int, afterID string) ([]*discordgo.User, error)
	FetchChannelFunc      func(ctx context.Context, channelID string) (*discordgo.Channel, error)
	RegisterCommandFunc   func(ctx context.Context, guildID string, cmd *discordgo.ApplicationCommand) (*discordgo.ApplicationCommand, error)
	DeferEphemeralFunc    func(ctx context.Context, i *discordgo.Interaction) error
	RespondEphemeralFunc  func(ctx context.Context, i *discordgo.Interaction, content string) error
	EditReplyFunc         func(ctx context.Context, i *discordgo.Interaction, content string, files []*discordgo.File) error
}

func (m *MockClient) FetchMessage(ctx context.Context, channelID, messageID string) (*discordgo.Message, error) {
	if m.FetchMessageFunc != nil {
		return m.FetchMessageFunc(ctx, channelID, messageID)
	}
	return nil, ErrNotFound
}

func (m *MockClient) ListReactionUsers(ctx context.Context, channelID, messageID, emoji string, limit int, afterID string) ([]*discordgo.User, error) {
	if m.ListReactionUsersFunc != nil {
		return m.ListReactionUsersFunc(ctx, channelID, messageID, emoji, limit, afterID)
	}
	return nil, ErrNotFound
}

func (m *MockClient) FetchChannel(ctx context.Context, channelID string) (*discordgo.Channel, error) {
	if m.FetchChannelFunc != nil {
		return m.FetchChannelFunc(ctx, channelID)
	}
	return nil, ErrNotFound
}

func (m *MockClient) RegisterCommand(ctx context.Context, guildID string, cmd *discordgo.ApplicationCommand) (*discordgo.ApplicationCommand, error) {
	if m.RegisterCommandFunc != nil {
		return m.RegisterCommandFunc(ctx, guildID, cmd)
	}
	return cmd, nil
}

func (m *MockClient) DeferEphemeral(ctx context.Context, i *discordgo.Interaction) error {
	if m.DeferEphemeralFunc != nil {
		return m.DeferEphemeralFunc(ctx, i)
	}
	return nil
}

func (m *MockClient) RespondEphemeral(ctx context.Context, i *discordgo.Interaction, content string) error {
	if m.RespondEphemeralFunc != nil {
		return m.RespondEphemeralFunc(ctx, i, content)
	}
	return nil
}

func (m *MockClient) EditReply(ctx context.Context, i *discordgo.Interaction, content string, files []*discordgo.File) error {
	if m.EditReplyFunc != nil {
		return m.EditReplyFunc(ctx, i, content, files)
	}
	return nil
}

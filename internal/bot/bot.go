// Package bot wires the gateway session, command registration, and the
// export-reactions dispatcher.
package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/ttrlf1racing/emoji-count/internal/config"
	"github.com/ttrlf1racing/emoji-count/internal/discord"
)

// Bot owns the gateway session for the lifetime of the process.
type Bot struct {
	session   *discordgo.Session
	client    *discord.APIClient
	registrar discord.CommandRegistrar
	cfg       *config.Config
	logger    *zap.Logger
}

// New builds a Bot from configuration. The session is not opened yet.
func New(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	// Guild intent keeps the channel state cache populated for lookups.
	session.Identify.Intents = discordgo.IntentsGuilds

	client := discord.New(session)
	b := &Bot{
		session:   session,
		client:    client,
		registrar: client,
		cfg:       cfg,
		logger:    logger,
	}

	handler := NewHandler(b.client, logger)
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handler.Handle(context.Background(), i)
	})

	return b, nil
}

// Connect opens the gateway connection and authenticates.
func (b *Bot) Connect() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway session: %w", err)
	}
	b.logger.Info("connected to gateway",
		zap.String("user", b.session.State.User.Username),
		zap.String("user_id", b.session.State.User.ID))
	return nil
}

// Start connects and upserts the command definition. Registration failures
// are logged but do not prevent startup.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.Connect(); err != nil {
		return err
	}
	if err := b.RegisterCommand(ctx); err != nil {
		b.logger.Error("command registration failed", zap.Error(err))
	}
	return nil
}

// Stop closes the gateway session.
func (b *Bot) Stop() error {
	b.logger.Info("shutting down")
	return b.session.Close()
}

// RegisterCommand upserts the export-reactions definition, guild-scoped when
// a guild ID is configured and global otherwise. Guild commands appear
// immediately; global ones can take up to an hour to propagate.
func (b *Bot) RegisterCommand(ctx context.Context) error {
	def := Definition()
	registered, err := b.registrar.RegisterCommand(ctx, b.cfg.GuildID, def)
	if err != nil {
		return err
	}
	scope := "global"
	if b.cfg.GuildID != "" {
		scope = "guild " + b.cfg.GuildID
	}
	b.logger.Info("registered command",
		zap.String("name", registered.Name),
		zap.String("scope", scope))
	return nil
}

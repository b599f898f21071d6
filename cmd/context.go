package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ttrlf1racing/emoji-count/internal/bot"
	"github.com/ttrlf1racing/emoji-count/internal/config"
	"github.com/ttrlf1racing/emoji-count/internal/errors"
)

// CommandContext encapsulates the dependencies shared by the commands:
// validated configuration, a structured logger, and the bot itself.
type CommandContext struct {
	Ctx    context.Context
	Cancel context.CancelFunc
	Config *config.Config
	Logger *zap.Logger
	Bot    *bot.Bot
}

// NewCommandContext loads configuration, builds the logger, and wires the bot.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg, path, err := config.Load(cfgFile)
	if err != nil {
		return nil, errors.ConfigError("failed to load config: %w", err)
	}
	if guild := viper.GetString("guild"); guild != "" {
		cfg.GuildID = guild
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("invalid config (%s): %w", path, err)
	}

	logger, err := newLogger()
	if err != nil {
		return nil, errors.NewErrorWithCode(errors.ExitGeneral, "build logger: %w", err)
	}

	b, err := bot.New(cfg, logger)
	if err != nil {
		return nil, errors.AuthError("create bot: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	return &CommandContext{
		Ctx:    ctx,
		Cancel: cancel,
		Config: cfg,
		Logger: logger,
		Bot:    b,
	}, nil
}

// Close releases resources held by the CommandContext.
// Always defer Close() after creating a CommandContext.
func (c *CommandContext) Close() {
	if c.Cancel != nil {
		c.Cancel()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
}

// newLogger picks a console encoder when stderr is a terminal and JSON
// otherwise, so service logs stay machine-parseable.
func newLogger() (*zap.Logger, error) {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

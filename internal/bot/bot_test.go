package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/ttrlf1racing/emoji-count/internal/config"
	"github.com/ttrlf1racing/emoji-count/internal/discord"
)

func TestRegisterCommandScopes(t *testing.T) {
	tests := []struct {
		name      string
		guildID   string
		wantGuild string
	}{
		{"guild scoped", "111111111111111111", "111111111111111111"},
		{"global", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotGuild, gotName string
			mock := &discord.MockClient{
				RegisterCommandFunc: func(ctx context.Context, guildID string, cmd *discordgo.ApplicationCommand) (*discordgo.ApplicationCommand, error) {
					gotGuild = guildID
					gotName = cmd.Name
					return cmd, nil
				},
			}
			b := &Bot{
				registrar: mock,
				cfg:       &config.Config{GuildID: tt.guildID},
				logger:    zap.NewNop(),
			}

			if err := b.RegisterCommand(context.Background()); err != nil {
				t.Fatalf("RegisterCommand returned error: %v", err)
			}
			if gotGuild != tt.wantGuild {
				t.Errorf("expected registration against guild %q, got %q", tt.wantGuild, gotGuild)
			}
			if gotName != CommandName {
				t.Errorf("expected command %q, got %q", CommandName, gotName)
			}
		})
	}
}

func TestRegisterCommandPropagatesError(t *testing.T) {
	regErr := errors.New("missing applications.commands scope")
	mock := &discord.MockClient{
		RegisterCommandFunc: func(ctx context.Context, guildID string, cmd *discordgo.ApplicationCommand) (*discordgo.ApplicationCommand, error) {
			return nil, regErr
		},
	}
	b := &Bot{
		registrar: mock,
		cfg:       &config.Config{},
		logger:    zap.NewNop(),
	}

	if err := b.RegisterCommand(context.Background()); !errors.Is(err, regErr) {
		t.Errorf("expected registration error to propagate, got %v", err)
	}
}

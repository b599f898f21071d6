package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/ttrlf1racing/emoji-count/internal/config"
)

func withLoginFlags(t *testing.T, path, token string) {
	t.Helper()
	oldCfg, oldToken := cfgFile, loginToken
	t.Cleanup(func() {
		cfgFile, loginToken = oldCfg, oldToken
		viper.Set("guild", "")
	})
	cfgFile = path
	loginToken = token
}

func TestRunLoginSavesToken(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")
	t.Setenv("DISCORD_GUILD_ID", "")

	path := filepath.Join(t.TempDir(), "config.json")
	withLoginFlags(t, path, "bot-123")

	if err := runLogin(loginCmd, nil); err != nil {
		t.Fatalf("runLogin returned error: %v", err)
	}

	loaded, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.BotToken != "bot-123" {
		t.Errorf("expected saved token bot-123, got %q", loaded.BotToken)
	}
	if loaded.GuildID != "" {
		t.Errorf("expected no guild persisted, got %q", loaded.GuildID)
	}
}

func TestRunLoginPersistsGuild(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")
	t.Setenv("DISCORD_GUILD_ID", "")

	path := filepath.Join(t.TempDir(), "config.json")
	withLoginFlags(t, path, "bot-456")
	viper.Set("guild", "123456789012345678")

	if err := runLogin(loginCmd, nil); err != nil {
		t.Fatalf("runLogin returned error: %v", err)
	}

	loaded, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.GuildID != "123456789012345678" {
		t.Errorf("expected guild persisted, got %q", loaded.GuildID)
	}
}

func TestRunLoginRejectsBlankToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	withLoginFlags(t, path, "   ")

	if err := runLogin(loginCmd, nil); err == nil {
		t.Fatal("expected error for blank token")
	}
}

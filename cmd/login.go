package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ttrlf1racing/emoji-count/internal/config"
	"github.com/ttrlf1racing/emoji-count/internal/errors"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save the bot token to config",
	Long: `Save a Discord bot token to the config file so the bot can start
without DISCORD_BOT_TOKEN in the environment. A --guild flag given here is
persisted alongside the token and scopes command registration.`,
	Example: `  # Save a token to config
  emoji-count login --token xxxxxxxx.xxxxxx.xxxxxxxx

  # Save a token and pin registration to one guild
  emoji-count login --token xxxxxxxx.xxxxxx.xxxxxxxx --guild 123456789012345678`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginToken, "token", "", "Discord bot token")
	loginCmd.MarkFlagRequired("token")
}

func runLogin(cmd *cobra.Command, args []string) error {
	token := strings.TrimSpace(loginToken)
	if token == "" {
		return errors.ConfigError("token is required")
	}

	// Load existing config or fall back to a fresh one at the default path.
	cfg, configPath, err := config.Load(cfgFile)
	if err != nil {
		cfg = config.DefaultConfig()
		configPath, err = config.DefaultPath()
		if err != nil {
			return errors.ConfigError("determine config path: %w", err)
		}
	}

	cfg.BotToken = token
	if guild := viper.GetString("guild"); guild != "" {
		cfg.GuildID = guild
	}

	savedPath, err := config.Save(configPath, cfg)
	if err != nil {
		return errors.ConfigError("save config: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Token saved to %s\n", savedPath)
	return nil
}

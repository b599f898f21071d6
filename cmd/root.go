package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ttrlf1racing/emoji-count/internal/errors"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "emoji-count",
		Short: "Discord bot that exports message reactions to CSV",
		Long: `emoji-count

A single-purpose Discord bot. It registers the /export-reactions slash
command and, given a message link or ID, collects every reaction on that
message and replies with a reactions.csv attachment listing one row per
(emoji, reacting user) pair.

Configuration comes from ~/.config/emoji-count/config.json, a local .env
file, or the DISCORD_BOT_TOKEN / DISCORD_GUILD_ID environment variables.`,
		RunE: runServe,
	}
)

// SetVersionInfo records build-time version metadata on the root command.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// Execute runs the root command and exits with an appropriate code.
func Execute() {
	errors.Execute(rootCmd)
}

func init() {
	cobra.OnInitialize(loadDotEnv)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/emoji-count/config.json)")
	rootCmd.PersistentFlags().String("guild", "", "guild ID to scope command registration to (default: global)")
	viper.BindPFlag("guild", rootCmd.PersistentFlags().Lookup("guild"))
}

func loadDotEnv() {
	_ = godotenv.Load()
}

func runServe(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cmdCtx.Close()

	if err := cmdCtx.Bot.Start(cmdCtx.Ctx); err != nil {
		return errors.WrapWithCode(errors.ExitNetwork, err, "start bot")
	}
	defer cmdCtx.Bot.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	fmt.Fprintln(os.Stderr, "emoji-count is running. Press Ctrl+C to exit.")
	<-sig

	return nil
}

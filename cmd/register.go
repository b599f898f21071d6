package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ttrlf1racing/emoji-count/internal/errors"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register the slash command and exit",
	Long: `Upsert the /export-reactions command definition without serving
interactions. Useful at deploy time; guild-scoped registration (via --guild
or DISCORD_GUILD_ID) is visible immediately, global registration can take
up to an hour to propagate.`,
	Example: `  emoji-count register
  emoji-count register --guild 123456789012345678`,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cmdCtx.Close()

	if err := cmdCtx.Bot.Connect(); err != nil {
		return errors.WrapWithCode(errors.ExitAuth, err, "connect")
	}
	defer cmdCtx.Bot.Stop()

	if err := cmdCtx.Bot.RegisterCommand(cmdCtx.Ctx); err != nil {
		return errors.WrapWithCode(errors.ExitGeneral, err, "register command")
	}
	return nil
}

package bot

import "github.com/bwmarrin/discordgo"

// CommandName is the slash command this bot registers and answers.
const CommandName = "export-reactions"

// Option names within the command definition.
const (
	optionMessage        = "message"
	optionChannel        = "channel"
	optionIncludeUserIDs = "include_user_ids"
)

// Definition returns the application command definition to upsert at startup.
func Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        CommandName,
		Description: "Export all reactions on a message as a CSV file",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionMessage,
				Description: "Message link or message ID",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        optionChannel,
				Description: "Channel the message is in (required when passing a bare message ID)",
				ChannelTypes: []discordgo.ChannelType{
					discordgo.ChannelTypeGuildText,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        optionIncludeUserIDs,
				Description: "Include a User ID column (default: true)",
			},
		},
	}
}

// Package export builds CSV summaries of the reactions on a message.
package export

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/ttrlf1racing/emoji-count/internal/discord"
)

// FileName is the attachment name for the generated CSV.
const FileName = "reactions.csv"

// ErrNoReactions signals that the target message has no reactions at all.
var ErrNoReactions = errors.New("no reactions found")

// Exporter drains every reaction group on a message into a CSV buffer.
type Exporter struct {
	client discord.ReactionLister
}

// NewExporter creates an Exporter backed by the given reaction lister.
func NewExporter(client discord.ReactionLister) *Exporter {
	return &Exporter{client: client}
}

// Result holds a completed export.
type Result struct {
	CSV  string
	Rows int
}

// Export walks the message's reaction groups in platform order and pages
// through the reacting users of each group, one emoji fully drained before
// the next so rows for one emoji stay contiguous. Any page fetch error
// aborts the whole export; no partial CSV is ever returned.
func (e *Exporter) Export(ctx context.Context, msg *discordgo.Message, includeIDs bool) (*Result, error) {
	if msg == nil {
		return nil, fmt.Errorf("message is nil")
	}

	var buf strings.Builder
	buf.WriteString(header(includeIDs))
	seed := buf.Len()
	rows := 0

	for _, group := range msg.Reactions {
		label := EmojiLabel(group.Emoji)
		apiName := emojiAPIName(group.Emoji)
		if apiName == "" {
			continue
		}

		after := ""
		for {
			users, err := e.client.ListReactionUsers(ctx, msg.ChannelID, msg.ID, apiName, discord.MaxReactionPageSize, after)
			if err != nil {
				return nil, fmt.Errorf("export reactions for %s: %w", label, err)
			}
			if len(users) == 0 {
				break
			}
			for _, u := range users {
				buf.WriteString(row(label, u, includeIDs))
				rows++
			}
			// A short page is taken as the final one; re-fetching to confirm
			// would cost an extra round trip per emoji. If the platform ever
			// returns a short page mid-collection, trailing users are lost.
			if len(users) < discord.MaxReactionPageSize {
				break
			}
			after = users[len(users)-1].ID
		}
	}

	if buf.Len() == seed {
		return nil, ErrNoReactions
	}
	return &Result{CSV: buf.String(), Rows: rows}, nil
}

func header(includeIDs bool) string {
	if includeIDs {
		return "Emoji,User,User ID\n"
	}
	return "Emoji,User\n"
}

func row(label string, u *discordgo.User, includeIDs bool) string {
	if includeIDs {
		return fmt.Sprintf("%s,%s#%s,%s\n", label, u.Username, u.Discriminator, u.ID)
	}
	return fmt.Sprintf("%s,%s#%s\n", label, u.Username, u.Discriminator)
}

// EmojiLabel renders an emoji for CSV output: "name:id" for custom emoji,
// the plain name for standard emoji, "unknown" when neither is resolvable.
func EmojiLabel(e *discordgo.Emoji) string {
	switch {
	case e == nil:
		return "unknown"
	case e.ID != "":
		return e.Name + ":" + e.ID
	case e.Name != "":
		return e.Name
	default:
		return "unknown"
	}
}

// emojiAPIName renders an emoji in the form the reaction-listing endpoint
// expects: "name:id" for custom emoji, the raw character otherwise.
func emojiAPIName(e *discordgo.Emoji) string {
	if e == nil {
		return ""
	}
	return e.APIName()
}

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/ttrlf1racing/emoji-count/internal/channels"
	"github.com/ttrlf1racing/emoji-count/internal/discord"
	"github.com/ttrlf1racing/emoji-count/internal/export"
	"github.com/ttrlf1racing/emoji-count/internal/messages"
)

// User-facing reply texts. Everything else stays in the server logs.
const (
	replyNotInServer        = "This command can only be used inside a server."
	replyMissingChannel     = "I couldn't tell which channel that message is in. Pass a full message link, or set the channel option."
	replyChannelInaccess    = "I can't access that channel. Check that it exists and that I have permission to read it."
	replyMessageFetchFailed = "I couldn't fetch that message. Check the ID and make sure I can read the channel."
	replyReactionFailed     = "Something went wrong while fetching the reactions on that message."
	replyNoReactions        = "That message has no reactions."
)

// Handler dispatches the export-reactions command. It holds no per-invocation
// state, so concurrent interactions are safe.
type Handler struct {
	client   discord.ExportClient
	resolver *channels.Resolver
	exporter *export.Exporter
	logger   *zap.Logger
}

// NewHandler wires a Handler from a platform client.
func NewHandler(client discord.ExportClient, logger *zap.Logger) *Handler {
	return &Handler{
		client:   client,
		resolver: channels.NewResolver(client),
		exporter: export.NewExporter(client),
		logger:   logger,
	}
}

// Handle processes one interaction event end to end.
func (h *Handler) Handle(ctx context.Context, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.Name != CommandName {
		return
	}

	if i.GuildID == "" {
		if err := h.client.RespondEphemeral(ctx, i.Interaction, replyNotInServer); err != nil {
			h.logger.Error("failed to send not-in-server reply", zap.Error(err))
		}
		return
	}

	opts := parseOptions(data.Options)

	if err := h.client.DeferEphemeral(ctx, i.Interaction); err != nil {
		h.logger.Error("failed to defer interaction", zap.Error(err))
		return
	}

	ref, err := messages.Parse(opts.message)
	if err != nil {
		h.edit(ctx, i, replyMessageFetchFailed)
		return
	}

	channelID, err := h.resolver.ResolveID(ctx, opts.channelID, ref)
	if err != nil {
		if errors.Is(err, channels.ErrNoChannel) {
			h.edit(ctx, i, replyMissingChannel)
			return
		}
		h.logger.Warn("channel resolution failed",
			zap.String("channel_id", ref.ChannelID),
			zap.String("reason", failureReason(err)),
			zap.Error(err))
		h.edit(ctx, i, replyChannelInaccess)
		return
	}

	msg, err := h.client.FetchMessage(ctx, channelID, ref.MessageID)
	if err != nil {
		h.logger.Warn("message fetch failed",
			zap.String("channel_id", channelID),
			zap.String("message_id", ref.MessageID),
			zap.String("reason", failureReason(err)),
			zap.Error(err))
		h.edit(ctx, i, replyMessageFetchFailed)
		return
	}

	result, err := h.exporter.Export(ctx, msg, opts.includeIDs)
	if err != nil {
		if errors.Is(err, export.ErrNoReactions) {
			h.edit(ctx, i, replyNoReactions)
			return
		}
		h.logger.Error("reaction export failed",
			zap.String("channel_id", channelID),
			zap.String("message_id", ref.MessageID),
			zap.String("reason", failureReason(err)),
			zap.Error(err))
		h.edit(ctx, i, replyReactionFailed)
		return
	}

	file := &discordgo.File{
		Name:        export.FileName,
		ContentType: "text/csv",
		Reader:      strings.NewReader(result.CSV),
	}
	content := fmt.Sprintf("Exported %d reaction rows.", result.Rows)
	if err := h.client.EditReply(ctx, i.Interaction, content, []*discordgo.File{file}); err != nil {
		h.logger.Error("failed to deliver export", zap.Error(err))
	}
}

// failureReason distills a platform error into a log field so operators can
// tell a deleted message from a permissions problem without the raw payload.
func failureReason(err error) string {
	switch {
	case discord.IsNotFound(err):
		return "not_found"
	case discord.IsPermissionDenied(err):
		return "permission_denied"
	default:
		return "other"
	}
}

func (h *Handler) edit(ctx context.Context, i *discordgo.InteractionCreate, content string) {
	if err := h.client.EditReply(ctx, i.Interaction, content, nil); err != nil {
		h.logger.Error("failed to edit deferred reply", zap.Error(err))
	}
}

type commandOptions struct {
	message    string
	channelID  string
	includeIDs bool
}

func parseOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) commandOptions {
	parsed := commandOptions{includeIDs: true}
	for _, opt := range opts {
		switch opt.Name {
		case optionMessage:
			parsed.message = opt.StringValue()
		case optionChannel:
			// ChannelValue with a nil session yields just the ID, which is
			// all the dispatcher needs. It returns nil for malformed
			// payloads, which must not take the dispatcher down.
			if ch := opt.ChannelValue(nil); ch != nil {
				parsed.channelID = ch.ID
			}
		case optionIncludeUserIDs:
			parsed.includeIDs = opt.BoolValue()
		}
	}
	return parsed
}

package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these errors.
var (
	// ErrChannelRequired indicates a channel ID is required but was empty.
	ErrChannelRequired = errors.New("channel is required")

	// ErrMessageRequired indicates a message ID is required but was empty.
	ErrMessageRequired = errors.New("message is required")

	// ErrEmojiRequired indicates an emoji identifier is required but was empty.
	ErrEmojiRequired = errors.New("emoji is required")

	// ErrNotFound indicates a message or channel was not found.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied indicates the bot lacks access to the resource.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUnauthorized indicates authentication failed.
	ErrUnauthorized = errors.New("unauthorized")
)

// ClassifyRESTError maps a discordgo REST error onto the sentinel taxonomy.
// Unrecognized errors are returned unchanged so callers can still log detail.
func ClassifyRESTError(err error) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Message == nil {
		return err
	}

	switch restErr.Message.Code {
	case discordgo.ErrCodeUnknownChannel,
		discordgo.ErrCodeUnknownMessage,
		discordgo.ErrCodeUnknownEmoji:
		return ErrNotFound
	case discordgo.ErrCodeMissingAccess,
		discordgo.ErrCodeMissingPermissions:
		return ErrPermissionDenied
	case discordgo.ErrCodeUnauthorized:
		return ErrUnauthorized
	}
	return err
}

// IsNotFound reports whether err resolves to a missing channel or message.
func IsNotFound(err error) bool {
	return errors.Is(ClassifyRESTError(err), ErrNotFound)
}

// IsPermissionDenied reports whether err resolves to a missing-access failure.
func IsPermissionDenied(err error) bool {
	return errors.Is(ClassifyRESTError(err), ErrPermissionDenied)
}

package discord

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// errorCode extracts the Discord API error code from a REST error, 0 when
// the error is not a REST error or carries no body.
func errorCode(err error) int {
	var rest *discordgo.RESTError
	if errors.As(err, &rest) && rest.Message != nil {
		return rest.Message.Code
	}
	return 0
}

// IsUnknownRole reports whether err means the role no longer exists.
func IsUnknownRole(err error) bool {
	return errorCode(err) == discordgo.ErrCodeUnknownRole
}

// IsUnknownMember reports whether err means the user is not (or no longer) a
// member of the guild.
func IsUnknownMember(err error) bool {
	code := errorCode(err)
	return code == discordgo.ErrCodeUnknownMember || code == discordgo.ErrCodeUnknownUser
}

// IsTransient reports whether err is a platform-side failure worth leaving
// to the next notification: a rate limit or a 5xx. No retry happens here;
// idempotent handlers reconcile on redelivery.
func IsTransient(err error) bool {
	var rate *discordgo.RateLimitError
	if errors.As(err, &rate) {
		return true
	}
	var rest *discordgo.RESTError
	if errors.As(err, &rest) && rest.Response != nil {
		return rest.Response.StatusCode >= http.StatusInternalServerError
	}
	return false
}

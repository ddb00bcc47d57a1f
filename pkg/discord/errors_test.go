package discord

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func restError(status, code int) error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: status},
		Message:  &discordgo.APIErrorMessage{Code: code},
	}
}

func TestIsUnknownRole(t *testing.T) {
	assert.True(t, IsUnknownRole(restError(http.StatusNotFound, discordgo.ErrCodeUnknownRole)))
	assert.True(t, IsUnknownRole(fmt.Errorf("delete role: %w", restError(http.StatusNotFound, discordgo.ErrCodeUnknownRole))))
	assert.False(t, IsUnknownRole(restError(http.StatusNotFound, discordgo.ErrCodeUnknownMember)))
	assert.False(t, IsUnknownRole(errors.New("plain error")))
	assert.False(t, IsUnknownRole(nil))
}

func TestIsUnknownMember(t *testing.T) {
	assert.True(t, IsUnknownMember(restError(http.StatusNotFound, discordgo.ErrCodeUnknownMember)))
	assert.True(t, IsUnknownMember(restError(http.StatusNotFound, discordgo.ErrCodeUnknownUser)))
	assert.False(t, IsUnknownMember(restError(http.StatusNotFound, discordgo.ErrCodeUnknownRole)))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(restError(http.StatusBadGateway, 0)))
	assert.True(t, IsTransient(&discordgo.RateLimitError{}))
	assert.False(t, IsTransient(restError(http.StatusNotFound, discordgo.ErrCodeUnknownRole)))
	assert.False(t, IsTransient(errors.New("plain error")))
}

// Package rolename derives role names from scheduled events and encodes the
// in-band marker that suppresses re-processing of the bot's own event edits.
//
// The role name doubles as the only join key between an event and its role,
// so the same derivation must be applied at creation and at every lookup.
package rolename

import (
	"fmt"
	"strconv"
	"strings"

	"rolesync/internal/domain/entities"
)

const (
	// sentinel marks a description last written by this bot. Editing an
	// event synchronously re-fires the update notification; the sentinel is
	// how that self-echo is told apart from a user edit.
	sentinel = "Appending Event ID"

	separator = "!"
)

// Prefix returns the disambiguating role-name prefix for an event id,
// "[EVENT nnn] " with nnn = id mod 1000. The short id keeps the name human
// scannable; it is not globally unique, two events whose ids collide mod
// 1000 while both live would clash.
func Prefix(eventID string) string {
	id, err := strconv.ParseUint(eventID, 10, 64)
	if err != nil {
		// Platform ids are decimal snowflakes; anything else degrades to 0.
		id = 0
	}
	return fmt.Sprintf("[EVENT %d] ", id%1000)
}

// DeriveName returns the role name for an event: its prefix followed by the
// event name. An event name that already carries its own prefix is returned
// unchanged, so redelivered notifications after the bot normalized the event
// title cannot stack prefixes.
func DeriveName(event entities.ScheduledEvent) string {
	prefix := Prefix(event.ID)
	if strings.HasPrefix(event.Name, prefix) {
		return event.Name
	}
	return prefix + event.Name
}

// HasOwnPrefix reports whether the event's current name already carries the
// prefix derived from its own id.
func HasOwnPrefix(event entities.ScheduledEvent) bool {
	return strings.HasPrefix(event.Name, Prefix(event.ID))
}

// EncodeMarker prefixes a description with the self-edit marker.
func EncodeMarker(description string) string {
	return sentinel + separator + " " + description
}

// DecodeMarker splits a description into (marked, original). It never fails:
// a description without the marker decodes to (false, description) unchanged.
// For a marked description the single space inserted by EncodeMarker is
// stripped, so DecodeMarker(EncodeMarker(d)) round-trips to d exactly.
func DecodeMarker(description string) (bool, string) {
	before, after, found := strings.Cut(description, separator)
	if !found || before != sentinel {
		return false, description
	}
	return true, strings.TrimPrefix(after, " ")
}

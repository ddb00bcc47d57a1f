package domain

import "errors"

// Domain errors.
var (
	// ErrRoleNotFound is a benign lookup miss: the operations that can hit it
	// (membership changes, purge) are defined as no-ops when the role is absent.
	ErrRoleNotFound = errors.New("role not found")

	// ErrRoleNotFoundOnRename means the role expected under its pre-rename
	// name is missing while an event rename is being propagated. This breaks
	// the one-role-per-event invariant and is surfaced as a handler failure.
	ErrRoleNotFoundOnRename = errors.New("role not found under its pre-rename name")

	// ErrMemberResolution means a user could not be resolved to a guild member
	// (left the guild, fetch failure). Non-fatal for the surrounding role
	// operation.
	ErrMemberResolution = errors.New("member could not be resolved")
)

package entities

import "time"

// Role-action kinds recorded in the sync journal.
const (
	ActionRoleCreated   = "role_created"
	ActionRoleRenamed   = "role_renamed"
	ActionRoleDeleted   = "role_deleted"
	ActionMemberAdded   = "member_added"
	ActionMemberRemoved = "member_removed"
)

// RoleAction is one executed sync operation, recorded append-only for audit.
// The engine writes these best-effort and never reads them back.
type RoleAction struct {
	GuildID  string
	EventID  string
	Action   string
	RoleName string
	Detail   string
	At       time.Time
}

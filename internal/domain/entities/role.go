package entities

// Role is a named, mentionable access-control group scoped to a guild. The
// role name is the only join key back to the scheduled event it tracks; there
// is no stored event-to-role id mapping.
type Role struct {
	ID          string
	GuildID     string
	Name        string
	Mentionable bool
}

// Member is a user's membership in a guild. RoleIDs lists the roles the
// member currently holds.
type Member struct {
	UserID      string
	DisplayName string
	RoleIDs     []string
}

// HasRole reports whether the member currently holds the given role.
func (m Member) HasRole(roleID string) bool {
	for _, id := range m.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

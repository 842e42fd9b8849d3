package authdomain

import "strings"

// Role is the user type that drives authorization.
type Role string

const (
	RoleParticipant Role = "Participant"
	RoleOrganizer   Role = "Organizer"
	RoleSponsor     Role = "Sponsor"
	RoleJudge       Role = "Judge"
	RoleAdmin       Role = "Admin"
)

// IsValid checks if the role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleParticipant, RoleOrganizer, RoleSponsor, RoleJudge, RoleAdmin:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole matches raw case-insensitively against the known roles.
func ParseRole(raw string) (Role, bool) {
	for _, r := range []Role{RoleParticipant, RoleOrganizer, RoleSponsor, RoleJudge, RoleAdmin} {
		if strings.EqualFold(strings.TrimSpace(raw), string(r)) {
			return r, true
		}
	}
	return "", false
}

package registrationdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Registration links a participant to an event, optionally as part of a team.
type Registration struct {
	bun.BaseModel    `bun:"table:registrations,alias:r"`
	RegistrationID   int64     `bun:"registration_id,pk,autoincrement" json:"RegistrationID"`
	UserID           int64     `bun:"user_id,notnull" json:"UserID"`
	EventID          int64     `bun:"event_id,notnull" json:"EventID"`
	TeamID           *int64    `bun:"team_id" json:"TeamID"`
	RegistrationDate time.Time `bun:"registration_date,notnull,default:current_timestamp" json:"RegistrationDate"`
}

// Team is a group of participants led by one user.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`
	TeamID        int64     `bun:"team_id,pk,autoincrement" json:"TeamID"`
	TeamName      string    `bun:"team_name,notnull" json:"TeamName"`
	LeaderID      int64     `bun:"leader_id,notnull" json:"LeaderID"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"CreatedAt"`
}

// Invitation is a pending request for someone to join a team. Invitations
// are recorded only.
type Invitation struct {
	bun.BaseModel `bun:"table:team_invitations,alias:ti"`
	InvitationID  int64     `bun:"invitation_id,pk,autoincrement" json:"InvitationID"`
	TeamID        int64     `bun:"team_id,notnull" json:"TeamID"`
	Email         string    `bun:"email,notnull" json:"Email"`
	Status        string    `bun:"status,notnull" json:"Status"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"CreatedAt"`
}

// Participant is a registered user as listed for an event.
type Participant struct {
	UserID           int64     `bun:"user_id" json:"UserID"`
	FullName         string    `bun:"full_name" json:"FullName"`
	Email            string    `bun:"email" json:"Email"`
	TeamName         *string   `bun:"team_name" json:"TeamName"`
	RegistrationDate time.Time `bun:"registration_date" json:"RegistrationDate"`
}

// UserRegistration is a registration joined with its event and team.
type UserRegistration struct {
	RegistrationID   int64     `bun:"registration_id" json:"RegistrationID"`
	EventID          int64     `bun:"event_id" json:"EventID"`
	EventName        string    `bun:"event_name" json:"EventName"`
	EventType        string    `bun:"event_type" json:"EventType"`
	EventDateTime    time.Time `bun:"event_date_time" json:"EventDateTime"`
	VenueName        *string   `bun:"venue_name" json:"VenueName"`
	TeamID           *int64    `bun:"team_id" json:"TeamID"`
	TeamName         *string   `bun:"team_name" json:"TeamName"`
	RegistrationDate time.Time `bun:"registration_date" json:"RegistrationDate"`
}

package registrationservice

import (
	"context"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	registrationdb "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// RegisterRequest registers a participant for an event.
type RegisterRequest struct {
	UserID  int64  `json:"UserID"`
	EventID int64  `json:"EventID"`
	TeamID  *int64 `json:"TeamID,omitempty"`
}

// TeamRequest creates a team. Members are e-mail addresses that receive a
// pending invitation.
type TeamRequest struct {
	TeamName string   `json:"TeamName"`
	LeaderID int64    `json:"LeaderID"`
	Members  []string `json:"Members,omitempty"`
}

// EventLocker is the slice of the event repository registrations need.
type EventLocker interface {
	GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
	LockByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
}

// Service defines the registration and team operations.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*registrationdb.Registration, error)
	CountRegistrations(ctx context.Context, eventID int64) (int, error)
	GetRegistration(ctx context.Context, eventID, userID int64) (*registrationdb.Registration, error)
	ListParticipants(ctx context.Context, eventID int64) ([]registrationdb.Participant, error)
	ListUserRegistrations(ctx context.Context, userID int64) ([]registrationdb.UserRegistration, error)

	CreateTeam(ctx context.Context, req TeamRequest) (*registrationdb.Team, error)
	ListUserTeams(ctx context.Context, userID int64) ([]registrationdb.Team, error)
}

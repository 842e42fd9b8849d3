package registrationdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for registration and team persistence.
type Repository interface {
	// Create inserts a registration. Returns ErrDuplicate when the
	// (user_id, event_id) unique index rejects it.
	Create(ctx context.Context, db bun.IDB, reg *Registration) error
	Get(ctx context.Context, db bun.IDB, eventID, userID int64) (*Registration, error)
	CountByEvent(ctx context.Context, db bun.IDB, eventID int64) (int, error)
	ListParticipants(ctx context.Context, db bun.IDB, eventID int64) ([]Participant, error)
	ParticipantIDs(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error)
	ListByUser(ctx context.Context, db bun.IDB, userID int64) ([]UserRegistration, error)

	CreateTeam(ctx context.Context, db bun.IDB, team *Team) error
	GetTeam(ctx context.Context, db bun.IDB, teamID int64) (*Team, error)
	ListTeamsByLeader(ctx context.Context, db bun.IDB, leaderID int64) ([]Team, error)
	CreateInvitations(ctx context.Context, db bun.IDB, invitations []Invitation) error
}

package eventdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for event persistence.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, event *Event) error
	GetByID(ctx context.Context, db bun.IDB, eventID int64) (*Event, error)

	// LockByID reads the event with FOR UPDATE. Registrations for one event
	// serialize on this lock.
	LockByID(ctx context.Context, db bun.IDB, eventID int64) (*Event, error)

	// List returns events ordered by date-time. An empty category lists all.
	List(ctx context.Context, db bun.IDB, category string) ([]Event, error)

	Update(ctx context.Context, db bun.IDB, event *Event) error
	Delete(ctx context.Context, db bun.IDB, eventID int64) error

	CountRegistrations(ctx context.Context, db bun.IDB, eventID int64) (int, error)
	ListJudges(ctx context.Context, db bun.IDB, eventID int64) ([]Judge, error)
}

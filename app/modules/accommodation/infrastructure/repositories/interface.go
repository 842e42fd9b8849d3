package accommodationdb

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Repository defines the contract for accommodation persistence.
type Repository interface {
	// LockUser takes a row lock on the user so concurrent requests by the
	// same user serialize.
	LockUser(ctx context.Context, db bun.IDB, userID int64) error
	HasActive(ctx context.Context, db bun.IDB, userID int64, today time.Time) (bool, error)
	Create(ctx context.Context, db bun.IDB, acc *Accommodation) error
	GetByID(ctx context.Context, db bun.IDB, accommodationID int64) (*Accommodation, error)
	ListByUser(ctx context.Context, db bun.IDB, userID int64) ([]Accommodation, error)
	Update(ctx context.Context, db bun.IDB, acc *Accommodation) error
	Delete(ctx context.Context, db bun.IDB, accommodationID int64) error
	Search(ctx context.Context, db bun.IDB, filter Filter) ([]Detail, error)
}

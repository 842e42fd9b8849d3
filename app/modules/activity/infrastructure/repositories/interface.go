package activitydb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for activity feed persistence.
type Repository interface {
	// Create stores entry. A redelivered message (same MessageID) is ignored
	// and reported as inserted=false.
	Create(ctx context.Context, db bun.IDB, entry *Entry) (inserted bool, err error)
	ListRecent(ctx context.Context, db bun.IDB, limit int) ([]Entry, error)
}

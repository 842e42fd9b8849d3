package venuedb

import (
	"context"

	venuedomain "github.com/Black-And-White-Club/nascon/app/modules/venue/domain"
	"github.com/uptrace/bun"
)

// Repository defines the contract for venue persistence.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, venue *Venue) error
	GetByID(ctx context.Context, db bun.IDB, venueID int64) (*Venue, error)

	// LockByID reads the venue with FOR UPDATE. Bookings at one venue are
	// serialized on this lock, so it must run inside a transaction.
	LockByID(ctx context.Context, db bun.IDB, venueID int64) (*Venue, error)

	List(ctx context.Context, db bun.IDB) ([]Venue, error)
	Update(ctx context.Context, db bun.IDB, venue *Venue) error

	// Delete removes the venue. Returns ErrInUse when events still reference it.
	Delete(ctx context.Context, db bun.IDB, venueID int64) error

	CountEvents(ctx context.Context, db bun.IDB, venueID int64) (int, error)

	// ListBookings returns the date-time of every event at the venue.
	ListBookings(ctx context.Context, db bun.IDB, venueID int64) ([]venuedomain.Booking, error)

	ListSchedules(ctx context.Context, db bun.IDB) ([]Schedule, error)
	ListUsage(ctx context.Context, db bun.IDB) ([]venuedomain.UsageRow, error)
}

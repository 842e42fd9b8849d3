package venuedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	venuedomain "github.com/Black-And-White-Club/nascon/app/modules/venue/domain"
	"github.com/Black-And-White-Club/nascon/app/shared/database"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new venue repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, venue *Venue) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(venue).
		ExcludeColumn("venue_id").
		Returning("venue_id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("venuedb.Create: %w", err)
	}
	return nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, venueID int64) (*Venue, error) {
	return r.get(ctx, r.resolveDB(db), venueID, false)
}

func (r *Impl) LockByID(ctx context.Context, db bun.IDB, venueID int64) (*Venue, error) {
	return r.get(ctx, r.resolveDB(db), venueID, true)
}

func (r *Impl) get(ctx context.Context, db bun.IDB, venueID int64, lock bool) (*Venue, error) {
	venue := new(Venue)
	q := db.NewSelect().
		Model(venue).
		Where("v.venue_id = ?", venueID)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("venuedb.get: %w", err)
	}
	return venue, nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Venue, error) {
	db = r.resolveDB(db)
	venues := make([]Venue, 0)
	if err := db.NewSelect().Model(&venues).OrderExpr("v.venue_id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("venuedb.List: %w", err)
	}
	return venues, nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, venue *Venue) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model(venue).
		Column("venue_name", "capacity", "location", "availability_status").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("venuedb.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, venueID int64) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Venue)(nil)).
		Where("venue_id = ?", venueID).
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return fmt.Errorf("venuedb.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) CountEvents(ctx context.Context, db bun.IDB, venueID int64) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Table("events").
		Where("venue_id = ?", venueID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("venuedb.CountEvents: %w", err)
	}
	return count, nil
}

func (r *Impl) ListBookings(ctx context.Context, db bun.IDB, venueID int64) ([]venuedomain.Booking, error) {
	db = r.resolveDB(db)
	var rows []bookingRow
	err := db.NewSelect().
		Table("events").
		Column("event_id", "event_date_time").
		Where("venue_id = ?", venueID).
		OrderExpr("event_date_time ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("venuedb.ListBookings: %w", err)
	}

	bookings := make([]venuedomain.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, venuedomain.Booking{EventID: row.EventID, DateTime: row.EventDateTime})
	}
	return bookings, nil
}

func (r *Impl) ListSchedules(ctx context.Context, db bun.IDB) ([]Schedule, error) {
	db = r.resolveDB(db)
	schedules := make([]Schedule, 0)
	err := db.NewSelect().
		TableExpr("events AS e").
		Join("JOIN venues AS v ON v.venue_id = e.venue_id").
		ColumnExpr("v.venue_id, v.venue_name, e.event_id, e.event_name, e.event_type, e.event_date_time").
		OrderExpr("e.event_date_time ASC, e.event_id ASC").
		Scan(ctx, &schedules)
	if err != nil {
		return nil, fmt.Errorf("venuedb.ListSchedules: %w", err)
	}
	return schedules, nil
}

func (r *Impl) ListUsage(ctx context.Context, db bun.IDB) ([]venuedomain.UsageRow, error) {
	db = r.resolveDB(db)
	var rows []usageRow
	err := db.NewSelect().
		TableExpr("venues AS v").
		Join("LEFT JOIN events AS e ON e.venue_id = v.venue_id").
		Join("LEFT JOIN registrations AS r ON r.event_id = e.event_id").
		ColumnExpr("v.venue_id, v.venue_name, v.capacity, e.event_id, e.max_participants").
		ColumnExpr("COUNT(r.registration_id) AS registrations").
		GroupExpr("v.venue_id, v.venue_name, v.capacity, e.event_id, e.max_participants").
		OrderExpr("v.venue_id ASC, e.event_id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("venuedb.ListUsage: %w", err)
	}

	usage := make([]venuedomain.UsageRow, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, venuedomain.UsageRow(row))
	}
	return usage, nil
}

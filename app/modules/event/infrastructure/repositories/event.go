package eventdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/nascon/app/shared/database"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new event repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, event *Event) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(event).
		ExcludeColumn("event_id").
		Returning("event_id").
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrUnknownVenue
		}
		return fmt.Errorf("eventdb.Create: %w", err)
	}
	return nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, eventID int64) (*Event, error) {
	return r.get(ctx, r.resolveDB(db), eventID, false)
}

func (r *Impl) LockByID(ctx context.Context, db bun.IDB, eventID int64) (*Event, error) {
	return r.get(ctx, r.resolveDB(db), eventID, true)
}

func (r *Impl) get(ctx context.Context, db bun.IDB, eventID int64, lock bool) (*Event, error) {
	event := new(Event)
	q := db.NewSelect().
		Model(event).
		Where("e.event_id = ?", eventID)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("eventdb.get: %w", err)
	}
	return event, nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB, category string) ([]Event, error) {
	db = r.resolveDB(db)
	events := make([]Event, 0)
	q := db.NewSelect().Model(&events)
	if category != "" {
		q = q.Where("e.event_type = ?", category)
	}
	if err := q.OrderExpr("e.event_date_time ASC, e.event_id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("eventdb.List: %w", err)
	}
	return events, nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, event *Event) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model(event).
		ExcludeColumn("event_id").
		WherePK().
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrUnknownVenue
		}
		return fmt.Errorf("eventdb.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, eventID int64) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Event)(nil)).
		Where("event_id = ?", eventID).
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return fmt.Errorf("eventdb.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) CountRegistrations(ctx context.Context, db bun.IDB, eventID int64) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Table("registrations").
		Where("event_id = ?", eventID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("eventdb.CountRegistrations: %w", err)
	}
	return count, nil
}

func (r *Impl) ListJudges(ctx context.Context, db bun.IDB, eventID int64) ([]Judge, error) {
	db = r.resolveDB(db)
	judges := make([]Judge, 0)
	err := db.NewSelect().
		TableExpr("users AS u").
		Join("JOIN judge_assignments AS ja ON ja.judge_id = u.user_id").
		ColumnExpr("u.user_id, u.full_name, u.email").
		Where("ja.event_id = ?", eventID).
		OrderExpr("u.full_name ASC, u.user_id ASC").
		Scan(ctx, &judges)
	if err != nil {
		return nil, fmt.Errorf("eventdb.ListJudges: %w", err)
	}
	return judges, nil
}

package accommodationdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	accommodationdomain "github.com/Black-And-White-Club/nascon/app/modules/accommodation/domain"
	"github.com/Black-And-White-Club/nascon/app/shared/database"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new accommodation repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) LockUser(ctx context.Context, db bun.IDB, userID int64) error {
	db = r.resolveDB(db)
	var id int64
	err := db.NewSelect().
		TableExpr("users AS u").
		Column("u.user_id").
		Where("u.user_id = ?", userID).
		For("UPDATE").
		Scan(ctx, &id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("accommodationdb.LockUser: %w", err)
	}
	return nil
}

func (r *Impl) HasActive(ctx context.Context, db bun.IDB, userID int64, today time.Time) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Accommodation)(nil)).
		Where("a.user_id = ?", userID).
		Where("a.check_out_date >= ?", today).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("accommodationdb.HasActive: %w", err)
	}
	return exists, nil
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, acc *Accommodation) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(acc).
		ExcludeColumn("accommodation_id", "created_at").
		Returning("accommodation_id, created_at").
		Exec(ctx)
	if err != nil {
		switch {
		case database.IsForeignKeyViolation(err):
			return ErrUserNotFound
		case database.IsCheckViolation(err):
			return ErrInvalidStay
		}
		return fmt.Errorf("accommodationdb.Create: %w", err)
	}
	return nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, accommodationID int64) (*Accommodation, error) {
	db = r.resolveDB(db)
	acc := new(Accommodation)
	err := db.NewSelect().
		Model(acc).
		Where("a.accommodation_id = ?", accommodationID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("accommodationdb.GetByID: %w", err)
	}
	return acc, nil
}

func (r *Impl) ListByUser(ctx context.Context, db bun.IDB, userID int64) ([]Accommodation, error) {
	db = r.resolveDB(db)
	accs := make([]Accommodation, 0)
	err := db.NewSelect().
		Model(&accs).
		Where("a.user_id = ?", userID).
		OrderExpr("a.check_in_date DESC, a.accommodation_id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("accommodationdb.ListByUser: %w", err)
	}
	return accs, nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, acc *Accommodation) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model(acc).
		Column("room_number", "budget", "check_in_date", "check_out_date").
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		if database.IsCheckViolation(err) {
			return ErrInvalidStay
		}
		return fmt.Errorf("accommodationdb.Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, accommodationID int64) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Accommodation)(nil)).
		Where("accommodation_id = ?", accommodationID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("accommodationdb.Delete: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) Search(ctx context.Context, db bun.IDB, filter Filter) ([]Detail, error) {
	db = r.resolveDB(db)
	details := make([]Detail, 0)
	q := db.NewSelect().
		Model(&details).
		ColumnExpr("a.*").
		ColumnExpr("u.full_name, u.email").
		Join("JOIN users AS u ON u.user_id = a.user_id")
	if filter.Name != "" {
		q = q.Where("u.full_name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.RoomNumber != "" {
		q = q.Where("a.room_number ILIKE ?", "%"+filter.RoomNumber+"%")
	}
	if filter.CheckInDate != nil {
		q = q.Where("a.check_in_date = ?", *filter.CheckInDate)
	}
	switch filter.Status {
	case accommodationdomain.StatusAssigned:
		q = q.Where("COALESCE(TRIM(a.room_number), '') <> ''")
	case accommodationdomain.StatusPending:
		q = q.Where("COALESCE(TRIM(a.room_number), '') = ''")
	}
	if err := q.OrderExpr("a.check_in_date ASC, a.accommodation_id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("accommodationdb.Search: %w", err)
	}
	for i := range details {
		details[i].Status = accommodationdomain.Status(details[i].RoomNumber)
	}
	return details, nil
}

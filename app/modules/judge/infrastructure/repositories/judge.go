package judgedb

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

// NewRepository creates a new judge assignment repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, a *Assignment) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(a).
		ExcludeColumn("assignment_id", "assigned_at").
		Returning("assignment_id, assigned_at").
		Exec(ctx)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return ErrDuplicate
		case database.IsForeignKeyViolation(err):
			return ErrUnknownReference
		}
		return fmt.Errorf("judgedb.Create: %w", err)
	}
	return nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, assignmentID int64) (*Assignment, error) {
	db = r.resolveDB(db)
	a := new(Assignment)
	if err := db.NewSelect().Model(a).Where("ja.assignment_id = ?", assignmentID).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("judgedb.GetByID: %w", err)
	}
	return a, nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, assignmentID int64) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Assignment)(nil)).
		Where("assignment_id = ?", assignmentID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("judgedb.Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) ListByJudge(ctx context.Context, db bun.IDB, judgeID int64) ([]AssignmentDetail, error) {
	db = r.resolveDB(db)
	list := make([]AssignmentDetail, 0)
	err := db.NewSelect().
		TableExpr("judge_assignments AS ja").
		Join("JOIN events AS e ON e.event_id = ja.event_id").
		Join("LEFT JOIN venues AS v ON v.venue_id = e.venue_id").
		ColumnExpr("ja.assignment_id, ja.event_id, e.event_name, e.event_type, e.event_date_time").
		ColumnExpr("v.venue_name, ja.assigned_at").
		Where("ja.judge_id = ?", judgeID).
		OrderExpr("e.event_date_time ASC, ja.assignment_id ASC").
		Scan(ctx, &list)
	if err != nil {
		return nil, fmt.Errorf("judgedb.ListByJudge: %w", err)
	}
	return list, nil
}

func (r *Impl) IsAssigned(ctx context.Context, db bun.IDB, judgeID, eventID int64) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Assignment)(nil)).
		Where("ja.judge_id = ?", judgeID).
		Where("ja.event_id = ?", eventID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("judgedb.IsAssigned: %w", err)
	}
	return exists, nil
}

func (r *Impl) AssignedJudges(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error) {
	db = r.resolveDB(db)
	ids := make([]int64, 0)
	err := db.NewSelect().
		Model((*Assignment)(nil)).
		Column("ja.judge_id").
		Where("ja.event_id = ?", eventID).
		OrderExpr("ja.judge_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("judgedb.AssignedJudges: %w", err)
	}
	return ids, nil
}

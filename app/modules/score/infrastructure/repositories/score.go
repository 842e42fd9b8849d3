package scoredb

import (
	"context"
	"fmt"

	scoredomain "github.com/Black-And-White-Club/nascon/app/modules/score/domain"
	"github.com/Black-And-White-Club/nascon/app/shared/database"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new score repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Upsert(ctx context.Context, db bun.IDB, score *Score) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(score).
		ExcludeColumn("score_id", "submitted_at", "updated_at").
		On("CONFLICT (judge_id, participant_id, event_id, round) DO UPDATE").
		Set("score = EXCLUDED.score").
		Set("updated_at = CURRENT_TIMESTAMP").
		Returning("score_id, submitted_at, updated_at").
		Exec(ctx)
	if err != nil {
		switch {
		case database.IsCheckViolation(err):
			return ErrOutOfRange
		case database.IsForeignKeyViolation(err):
			return ErrUnknownReference
		}
		return fmt.Errorf("scoredb.Upsert: %w", err)
	}
	return nil
}

func (r *Impl) ListByJudge(ctx context.Context, db bun.IDB, judgeID, eventID int64) ([]JudgeScore, error) {
	db = r.resolveDB(db)
	list := make([]JudgeScore, 0)
	err := db.NewSelect().
		TableExpr("scores AS s").
		Join("JOIN users AS u ON u.user_id = s.participant_id").
		ColumnExpr("s.score_id, s.participant_id, u.full_name, s.round, s.score, s.updated_at").
		Where("s.judge_id = ?", judgeID).
		Where("s.event_id = ?", eventID).
		OrderExpr("s.round ASC, u.full_name ASC, s.participant_id ASC").
		Scan(ctx, &list)
	if err != nil {
		return nil, fmt.Errorf("scoredb.ListByJudge: %w", err)
	}
	return list, nil
}

func (r *Impl) SubmittedKeys(ctx context.Context, db bun.IDB, eventID int64, round string) ([]scoredomain.Key, error) {
	db = r.resolveDB(db)
	var rows []struct {
		JudgeID       int64 `bun:"judge_id"`
		ParticipantID int64 `bun:"participant_id"`
	}
	err := db.NewSelect().
		Model((*Score)(nil)).
		Column("s.judge_id", "s.participant_id").
		Where("s.event_id = ?", eventID).
		Where("s.round = ?", round).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("scoredb.SubmittedKeys: %w", err)
	}
	keys := make([]scoredomain.Key, len(rows))
	for i, row := range rows {
		keys[i] = scoredomain.Key{JudgeID: row.JudgeID, ParticipantID: row.ParticipantID}
	}
	return keys, nil
}

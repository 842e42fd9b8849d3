package leaderboarddb

import (
	"context"
	"fmt"

	leaderboarddomain "github.com/Black-And-White-Club/nascon/app/modules/leaderboard/domain"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new leaderboard repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

type scoreRow struct {
	JudgeID       int64   `bun:"judge_id"`
	ParticipantID int64   `bun:"participant_id"`
	FullName      string  `bun:"full_name"`
	Score         float64 `bun:"score"`
}

func (r *Impl) ScoreRows(ctx context.Context, db bun.IDB, eventID int64, round string) ([]leaderboarddomain.ScoreRow, error) {
	db = r.resolveDB(db)
	var rows []scoreRow
	err := db.NewSelect().
		TableExpr("scores AS s").
		Join("JOIN users AS u ON u.user_id = s.participant_id").
		ColumnExpr("s.judge_id, s.participant_id, u.full_name, s.score").
		Where("s.event_id = ?", eventID).
		Where("s.round = ?", round).
		OrderExpr("s.score_id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("leaderboarddb.ScoreRows: %w", err)
	}

	out := make([]leaderboarddomain.ScoreRow, len(rows))
	for i, row := range rows {
		out[i] = leaderboarddomain.ScoreRow(row)
	}
	return out, nil
}

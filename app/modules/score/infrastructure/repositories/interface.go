package scoredb

import (
	"context"

	scoredomain "github.com/Black-And-White-Club/nascon/app/modules/score/domain"
	"github.com/uptrace/bun"
)

// Repository defines the contract for score persistence.
type Repository interface {
	// Upsert writes the score in a single statement keyed on
	// (judge, participant, event, round). The existing row id is kept on
	// re-submission.
	Upsert(ctx context.Context, db bun.IDB, score *Score) error

	ListByJudge(ctx context.Context, db bun.IDB, judgeID, eventID int64) ([]JudgeScore, error)
	SubmittedKeys(ctx context.Context, db bun.IDB, eventID int64, round string) ([]scoredomain.Key, error)
}

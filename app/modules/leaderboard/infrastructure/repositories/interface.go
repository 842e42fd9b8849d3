package leaderboarddb

import (
	"context"

	leaderboarddomain "github.com/Black-And-White-Club/nascon/app/modules/leaderboard/domain"
	"github.com/uptrace/bun"
)

// Repository reads the scores a leaderboard is computed from.
type Repository interface {
	// ScoreRows returns every score of the event's round joined with the
	// participant's name, in submission order.
	ScoreRows(ctx context.Context, db bun.IDB, eventID int64, round string) ([]leaderboarddomain.ScoreRow, error)
}

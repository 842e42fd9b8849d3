package leaderboardservice

import (
	"context"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	leaderboarddomain "github.com/Black-And-White-Club/nascon/app/modules/leaderboard/domain"
	"github.com/uptrace/bun"
)

// EventReader looks up events.
type EventReader interface {
	GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
}

// Export is a rendered leaderboard workbook.
type Export struct {
	Filename string
	Data     []byte
}

// Service defines the leaderboard operations.
type Service interface {
	Leaderboard(ctx context.Context, eventID int64, round string) ([]leaderboarddomain.Entry, error)
	ExportLeaderboard(ctx context.Context, eventID int64, round string) (*Export, error)
}

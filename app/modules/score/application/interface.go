package scoreservice

import (
	"context"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	registrationdb "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories"
	scoredomain "github.com/Black-And-White-Club/nascon/app/modules/score/domain"
	scoredb "github.com/Black-And-White-Club/nascon/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// SubmitRequest is a judge's score for one participant. Round defaults to
// Finals when empty.
type SubmitRequest struct {
	JudgeID       int64    `json:"JudgeID"`
	ParticipantID int64    `json:"ParticipantID"`
	EventID       int64    `json:"EventID"`
	Round         string   `json:"Round"`
	Score         *float64 `json:"Score"`
}

// EventReader looks up events.
type EventReader interface {
	GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
}

// JudgeRoster answers which judges may score an event.
type JudgeRoster interface {
	IsAssigned(ctx context.Context, db bun.IDB, judgeID, eventID int64) (bool, error)
	AssignedJudges(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error)
}

// ParticipantRoster answers who is registered for an event.
type ParticipantRoster interface {
	Get(ctx context.Context, db bun.IDB, eventID, userID int64) (*registrationdb.Registration, error)
	ParticipantIDs(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error)
}

// Service defines the score operations.
type Service interface {
	SubmitScore(ctx context.Context, req SubmitRequest) (*scoredb.Score, error)
	JudgeScores(ctx context.Context, judgeID, eventID int64) ([]scoredb.JudgeScore, error)
	Coverage(ctx context.Context, eventID int64, round string) (*scoredomain.Coverage, error)
}

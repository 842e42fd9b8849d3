package judgeservice

import (
	"context"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	judgedb "github.com/Black-And-White-Club/nascon/app/modules/judge/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// AssignRequest assigns a judge to an event.
type AssignRequest struct {
	JudgeID int64 `json:"JudgeID"`
	EventID int64 `json:"EventID"`
}

// UserReader looks up users.
type UserReader interface {
	GetByID(ctx context.Context, db bun.IDB, userID int64) (*userdb.User, error)
}

// EventReader looks up events.
type EventReader interface {
	GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
}

// Service defines the judge assignment operations.
type Service interface {
	AssignJudge(ctx context.Context, req AssignRequest) (*judgedb.Assignment, error)
	UnassignJudge(ctx context.Context, assignmentID int64) error
	ListAssignments(ctx context.Context, judgeID int64) ([]judgedb.AssignmentDetail, error)
}

package judgedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for judge assignment persistence.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, a *Assignment) error
	GetByID(ctx context.Context, db bun.IDB, assignmentID int64) (*Assignment, error)
	Delete(ctx context.Context, db bun.IDB, assignmentID int64) error
	ListByJudge(ctx context.Context, db bun.IDB, judgeID int64) ([]AssignmentDetail, error)

	// IsAssigned reports whether judgeID may score eventID.
	IsAssigned(ctx context.Context, db bun.IDB, judgeID, eventID int64) (bool, error)

	// AssignedJudges returns the judge ids of an event in ascending order.
	AssignedJudges(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error)
}

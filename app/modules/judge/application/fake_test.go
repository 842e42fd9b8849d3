package judgeservice

import (
	"context"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	judgedb "github.com/Black-And-White-Club/nascon/app/modules/judge/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

type FakeJudgeRepo struct {
	trace []string

	CreateFunc         func(ctx context.Context, db bun.IDB, a *judgedb.Assignment) error
	GetByIDFunc        func(ctx context.Context, db bun.IDB, assignmentID int64) (*judgedb.Assignment, error)
	DeleteFunc         func(ctx context.Context, db bun.IDB, assignmentID int64) error
	ListByJudgeFunc    func(ctx context.Context, db bun.IDB, judgeID int64) ([]judgedb.AssignmentDetail, error)
	IsAssignedFunc     func(ctx context.Context, db bun.IDB, judgeID, eventID int64) (bool, error)
	AssignedJudgesFunc func(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error)
}

func (f *FakeJudgeRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeJudgeRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeJudgeRepo) Create(ctx context.Context, db bun.IDB, a *judgedb.Assignment) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, a)
	}
	a.AssignmentID = 31
	return nil
}

func (f *FakeJudgeRepo) GetByID(ctx context.Context, db bun.IDB, assignmentID int64) (*judgedb.Assignment, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, assignmentID)
	}
	return nil, judgedb.ErrNotFound
}

func (f *FakeJudgeRepo) Delete(ctx context.Context, db bun.IDB, assignmentID int64) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, assignmentID)
	}
	return nil
}

func (f *FakeJudgeRepo) ListByJudge(ctx context.Context, db bun.IDB, judgeID int64) ([]judgedb.AssignmentDetail, error) {
	f.record("ListByJudge")
	if f.ListByJudgeFunc != nil {
		return f.ListByJudgeFunc(ctx, db, judgeID)
	}
	return []judgedb.AssignmentDetail{}, nil
}

func (f *FakeJudgeRepo) IsAssigned(ctx context.Context, db bun.IDB, judgeID, eventID int64) (bool, error) {
	f.record("IsAssigned")
	if f.IsAssignedFunc != nil {
		return f.IsAssignedFunc(ctx, db, judgeID, eventID)
	}
	return false, nil
}

func (f *FakeJudgeRepo) AssignedJudges(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error) {
	f.record("AssignedJudges")
	if f.AssignedJudgesFunc != nil {
		return f.AssignedJudgesFunc(ctx, db, eventID)
	}
	return []int64{}, nil
}

var _ judgedb.Repository = (*FakeJudgeRepo)(nil)

type FakeUsers struct {
	GetByIDFunc func(ctx context.Context, db bun.IDB, userID int64) (*userdb.User, error)
}

func (f *FakeUsers) GetByID(ctx context.Context, db bun.IDB, userID int64) (*userdb.User, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, userID)
	}
	return nil, userdb.ErrNotFound
}

type FakeEvents struct {
	GetByIDFunc func(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
}

func (f *FakeEvents) GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error) {
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, eventID)
	}
	return nil, eventdb.ErrNotFound
}

type FakePublisher struct {
	Topics []string
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.Topics = append(f.Topics, topic)
	return nil
}

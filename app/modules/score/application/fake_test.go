package scoreservice

import (
	"context"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	registrationdb "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories"
	scoredomain "github.com/Black-And-White-Club/nascon/app/modules/score/domain"
	scoredb "github.com/Black-And-White-Club/nascon/app/modules/score/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

type callTrace struct {
	steps []string
}

func (c *callTrace) record(step string) {
	c.steps = append(c.steps, step)
}

func (c *callTrace) Trace() []string {
	out := make([]string, len(c.steps))
	copy(out, c.steps)
	return out
}

// ------------------------
// Fake Score Repo
// ------------------------

type FakeScoreRepo struct {
	trace *callTrace

	UpsertFunc        func(ctx context.Context, db bun.IDB, score *scoredb.Score) error
	ListByJudgeFunc   func(ctx context.Context, db bun.IDB, judgeID, eventID int64) ([]scoredb.JudgeScore, error)
	SubmittedKeysFunc func(ctx context.Context, db bun.IDB, eventID int64, round string) ([]scoredomain.Key, error)
}

func (f *FakeScoreRepo) Upsert(ctx context.Context, db bun.IDB, score *scoredb.Score) error {
	f.trace.record("score.Upsert")
	if f.UpsertFunc != nil {
		return f.UpsertFunc(ctx, db, score)
	}
	score.ScoreID = 77
	return nil
}

func (f *FakeScoreRepo) ListByJudge(ctx context.Context, db bun.IDB, judgeID, eventID int64) ([]scoredb.JudgeScore, error) {
	f.trace.record("score.ListByJudge")
	if f.ListByJudgeFunc != nil {
		return f.ListByJudgeFunc(ctx, db, judgeID, eventID)
	}
	return []scoredb.JudgeScore{}, nil
}

func (f *FakeScoreRepo) SubmittedKeys(ctx context.Context, db bun.IDB, eventID int64, round string) ([]scoredomain.Key, error) {
	f.trace.record("score.SubmittedKeys")
	if f.SubmittedKeysFunc != nil {
		return f.SubmittedKeysFunc(ctx, db, eventID, round)
	}
	return []scoredomain.Key{}, nil
}

var _ scoredb.Repository = (*FakeScoreRepo)(nil)

// ------------------------
// Fake rosters
// ------------------------

type FakeEvents struct {
	trace       *callTrace
	GetByIDFunc func(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
}

func (f *FakeEvents) GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error) {
	f.trace.record("event.GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, eventID)
	}
	return &eventdb.Event{EventID: eventID}, nil
}

type FakeJudges struct {
	trace              *callTrace
	IsAssignedFunc     func(ctx context.Context, db bun.IDB, judgeID, eventID int64) (bool, error)
	AssignedJudgesFunc func(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error)
}

func (f *FakeJudges) IsAssigned(ctx context.Context, db bun.IDB, judgeID, eventID int64) (bool, error) {
	f.trace.record("judge.IsAssigned")
	if f.IsAssignedFunc != nil {
		return f.IsAssignedFunc(ctx, db, judgeID, eventID)
	}
	return true, nil
}

func (f *FakeJudges) AssignedJudges(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error) {
	f.trace.record("judge.AssignedJudges")
	if f.AssignedJudgesFunc != nil {
		return f.AssignedJudgesFunc(ctx, db, eventID)
	}
	return []int64{}, nil
}

type FakeParticipants struct {
	trace              *callTrace
	GetFunc            func(ctx context.Context, db bun.IDB, eventID, userID int64) (*registrationdb.Registration, error)
	ParticipantIDsFunc func(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error)
}

func (f *FakeParticipants) Get(ctx context.Context, db bun.IDB, eventID, userID int64) (*registrationdb.Registration, error) {
	f.trace.record("registration.Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, db, eventID, userID)
	}
	return &registrationdb.Registration{EventID: eventID, UserID: userID}, nil
}

func (f *FakeParticipants) ParticipantIDs(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error) {
	f.trace.record("registration.ParticipantIDs")
	if f.ParticipantIDsFunc != nil {
		return f.ParticipantIDsFunc(ctx, db, eventID)
	}
	return []int64{}, nil
}

type FakePublisher struct {
	Topics []string
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.Topics = append(f.Topics, topic)
	return nil
}

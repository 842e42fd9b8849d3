package accommodationservice

import (
	"context"
	"time"

	accommodationdb "github.com/Black-And-White-Club/nascon/app/modules/accommodation/infrastructure/repositories"
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

type FakeAccommodationRepo struct {
	trace *callTrace

	LockUserFunc   func(ctx context.Context, db bun.IDB, userID int64) error
	HasActiveFunc  func(ctx context.Context, db bun.IDB, userID int64, today time.Time) (bool, error)
	CreateFunc     func(ctx context.Context, db bun.IDB, acc *accommodationdb.Accommodation) error
	GetByIDFunc    func(ctx context.Context, db bun.IDB, accommodationID int64) (*accommodationdb.Accommodation, error)
	ListByUserFunc func(ctx context.Context, db bun.IDB, userID int64) ([]accommodationdb.Accommodation, error)
	UpdateFunc     func(ctx context.Context, db bun.IDB, acc *accommodationdb.Accommodation) error
	DeleteFunc     func(ctx context.Context, db bun.IDB, accommodationID int64) error
	SearchFunc     func(ctx context.Context, db bun.IDB, filter accommodationdb.Filter) ([]accommodationdb.Detail, error)
}

func (f *FakeAccommodationRepo) LockUser(ctx context.Context, db bun.IDB, userID int64) error {
	f.trace.record("accommodation.LockUser")
	if f.LockUserFunc != nil {
		return f.LockUserFunc(ctx, db, userID)
	}
	return nil
}

func (f *FakeAccommodationRepo) HasActive(ctx context.Context, db bun.IDB, userID int64, today time.Time) (bool, error) {
	f.trace.record("accommodation.HasActive")
	if f.HasActiveFunc != nil {
		return f.HasActiveFunc(ctx, db, userID, today)
	}
	return false, nil
}

func (f *FakeAccommodationRepo) Create(ctx context.Context, db bun.IDB, acc *accommodationdb.Accommodation) error {
	f.trace.record("accommodation.Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, acc)
	}
	acc.AccommodationID = 21
	return nil
}

func (f *FakeAccommodationRepo) GetByID(ctx context.Context, db bun.IDB, accommodationID int64) (*accommodationdb.Accommodation, error) {
	f.trace.record("accommodation.GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, accommodationID)
	}
	return nil, accommodationdb.ErrNotFound
}

func (f *FakeAccommodationRepo) ListByUser(ctx context.Context, db bun.IDB, userID int64) ([]accommodationdb.Accommodation, error) {
	f.trace.record("accommodation.ListByUser")
	if f.ListByUserFunc != nil {
		return f.ListByUserFunc(ctx, db, userID)
	}
	return []accommodationdb.Accommodation{}, nil
}

func (f *FakeAccommodationRepo) Update(ctx context.Context, db bun.IDB, acc *accommodationdb.Accommodation) error {
	f.trace.record("accommodation.Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, acc)
	}
	return nil
}

func (f *FakeAccommodationRepo) Delete(ctx context.Context, db bun.IDB, accommodationID int64) error {
	f.trace.record("accommodation.Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, accommodationID)
	}
	return nil
}

func (f *FakeAccommodationRepo) Search(ctx context.Context, db bun.IDB, filter accommodationdb.Filter) ([]accommodationdb.Detail, error) {
	f.trace.record("accommodation.Search")
	if f.SearchFunc != nil {
		return f.SearchFunc(ctx, db, filter)
	}
	return []accommodationdb.Detail{}, nil
}

var _ accommodationdb.Repository = (*FakeAccommodationRepo)(nil)

type FakePublisher struct {
	Topics []string
	Err    error
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.Topics = append(f.Topics, topic)
	return f.Err
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

package venueservice

import (
	"context"

	venuedomain "github.com/Black-And-White-Club/nascon/app/modules/venue/domain"
	venuedb "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Venue Repo
// ------------------------

type FakeVenueRepo struct {
	trace []string

	CreateFunc        func(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error
	GetByIDFunc       func(ctx context.Context, db bun.IDB, venueID int64) (*venuedb.Venue, error)
	LockByIDFunc      func(ctx context.Context, db bun.IDB, venueID int64) (*venuedb.Venue, error)
	ListFunc          func(ctx context.Context, db bun.IDB) ([]venuedb.Venue, error)
	UpdateFunc        func(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error
	DeleteFunc        func(ctx context.Context, db bun.IDB, venueID int64) error
	CountEventsFunc   func(ctx context.Context, db bun.IDB, venueID int64) (int, error)
	ListBookingsFunc  func(ctx context.Context, db bun.IDB, venueID int64) ([]venuedomain.Booking, error)
	ListSchedulesFunc func(ctx context.Context, db bun.IDB) ([]venuedb.Schedule, error)
	ListUsageFunc     func(ctx context.Context, db bun.IDB) ([]venuedomain.UsageRow, error)
}

func NewFakeVenueRepo() *FakeVenueRepo {
	return &FakeVenueRepo{trace: []string{}}
}

func (f *FakeVenueRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeVenueRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeVenueRepo) Create(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, venue)
	}
	venue.VenueID = 1
	return nil
}

func (f *FakeVenueRepo) GetByID(ctx context.Context, db bun.IDB, venueID int64) (*venuedb.Venue, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, venueID)
	}
	return nil, venuedb.ErrNotFound
}

func (f *FakeVenueRepo) LockByID(ctx context.Context, db bun.IDB, venueID int64) (*venuedb.Venue, error) {
	f.record("LockByID")
	if f.LockByIDFunc != nil {
		return f.LockByIDFunc(ctx, db, venueID)
	}
	return nil, venuedb.ErrNotFound
}

func (f *FakeVenueRepo) List(ctx context.Context, db bun.IDB) ([]venuedb.Venue, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return []venuedb.Venue{}, nil
}

func (f *FakeVenueRepo) Update(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, venue)
	}
	return nil
}

func (f *FakeVenueRepo) Delete(ctx context.Context, db bun.IDB, venueID int64) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, venueID)
	}
	return nil
}

func (f *FakeVenueRepo) CountEvents(ctx context.Context, db bun.IDB, venueID int64) (int, error) {
	f.record("CountEvents")
	if f.CountEventsFunc != nil {
		return f.CountEventsFunc(ctx, db, venueID)
	}
	return 0, nil
}

func (f *FakeVenueRepo) ListBookings(ctx context.Context, db bun.IDB, venueID int64) ([]venuedomain.Booking, error) {
	f.record("ListBookings")
	if f.ListBookingsFunc != nil {
		return f.ListBookingsFunc(ctx, db, venueID)
	}
	return nil, nil
}

func (f *FakeVenueRepo) ListSchedules(ctx context.Context, db bun.IDB) ([]venuedb.Schedule, error) {
	f.record("ListSchedules")
	if f.ListSchedulesFunc != nil {
		return f.ListSchedulesFunc(ctx, db)
	}
	return []venuedb.Schedule{}, nil
}

func (f *FakeVenueRepo) ListUsage(ctx context.Context, db bun.IDB) ([]venuedomain.UsageRow, error) {
	f.record("ListUsage")
	if f.ListUsageFunc != nil {
		return f.ListUsageFunc(ctx, db)
	}
	return nil, nil
}

var _ venuedb.Repository = (*FakeVenueRepo)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	Topics []string
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.Topics = append(f.Topics, topic)
	return nil
}

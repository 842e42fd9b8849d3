package eventservice

import (
	"context"
	"time"

	eventqueue "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/queue"
	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	venuedomain "github.com/Black-And-White-Club/nascon/app/modules/venue/domain"
	venuedb "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// ------------------------
// Shared call trace
// ------------------------

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
// Fake Event Repo
// ------------------------

type FakeEventRepo struct {
	trace *callTrace

	CreateFunc             func(ctx context.Context, db bun.IDB, event *eventdb.Event) error
	GetByIDFunc            func(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
	LockByIDFunc           func(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
	ListFunc               func(ctx context.Context, db bun.IDB, category string) ([]eventdb.Event, error)
	UpdateFunc             func(ctx context.Context, db bun.IDB, event *eventdb.Event) error
	DeleteFunc             func(ctx context.Context, db bun.IDB, eventID int64) error
	CountRegistrationsFunc func(ctx context.Context, db bun.IDB, eventID int64) (int, error)
	ListJudgesFunc         func(ctx context.Context, db bun.IDB, eventID int64) ([]eventdb.Judge, error)
}

func (f *FakeEventRepo) Create(ctx context.Context, db bun.IDB, event *eventdb.Event) error {
	f.trace.record("event.Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, event)
	}
	event.EventID = 100
	return nil
}

func (f *FakeEventRepo) GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error) {
	f.trace.record("event.GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, eventID)
	}
	return nil, eventdb.ErrNotFound
}

func (f *FakeEventRepo) LockByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error) {
	f.trace.record("event.LockByID")
	if f.LockByIDFunc != nil {
		return f.LockByIDFunc(ctx, db, eventID)
	}
	return nil, eventdb.ErrNotFound
}

func (f *FakeEventRepo) List(ctx context.Context, db bun.IDB, category string) ([]eventdb.Event, error) {
	f.trace.record("event.List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db, category)
	}
	return []eventdb.Event{}, nil
}

func (f *FakeEventRepo) Update(ctx context.Context, db bun.IDB, event *eventdb.Event) error {
	f.trace.record("event.Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, event)
	}
	return nil
}

func (f *FakeEventRepo) Delete(ctx context.Context, db bun.IDB, eventID int64) error {
	f.trace.record("event.Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, eventID)
	}
	return nil
}

func (f *FakeEventRepo) CountRegistrations(ctx context.Context, db bun.IDB, eventID int64) (int, error) {
	f.trace.record("event.CountRegistrations")
	if f.CountRegistrationsFunc != nil {
		return f.CountRegistrationsFunc(ctx, db, eventID)
	}
	return 0, nil
}

func (f *FakeEventRepo) ListJudges(ctx context.Context, db bun.IDB, eventID int64) ([]eventdb.Judge, error) {
	f.trace.record("event.ListJudges")
	if f.ListJudgesFunc != nil {
		return f.ListJudgesFunc(ctx, db, eventID)
	}
	return []eventdb.Judge{}, nil
}

var _ eventdb.Repository = (*FakeEventRepo)(nil)

// ------------------------
// Fake Venue Repo
// ------------------------

type FakeVenueRepo struct {
	trace *callTrace

	LockByIDFunc     func(ctx context.Context, db bun.IDB, venueID int64) (*venuedb.Venue, error)
	ListBookingsFunc func(ctx context.Context, db bun.IDB, venueID int64) ([]venuedomain.Booking, error)
}

func (f *FakeVenueRepo) Create(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error {
	return nil
}

func (f *FakeVenueRepo) GetByID(ctx context.Context, db bun.IDB, venueID int64) (*venuedb.Venue, error) {
	return &venuedb.Venue{VenueID: venueID}, nil
}

func (f *FakeVenueRepo) LockByID(ctx context.Context, db bun.IDB, venueID int64) (*venuedb.Venue, error) {
	f.trace.record("venue.LockByID")
	if f.LockByIDFunc != nil {
		return f.LockByIDFunc(ctx, db, venueID)
	}
	return &venuedb.Venue{VenueID: venueID}, nil
}

func (f *FakeVenueRepo) List(ctx context.Context, db bun.IDB) ([]venuedb.Venue, error) {
	return nil, nil
}

func (f *FakeVenueRepo) Update(ctx context.Context, db bun.IDB, venue *venuedb.Venue) error {
	return nil
}

func (f *FakeVenueRepo) Delete(ctx context.Context, db bun.IDB, venueID int64) error {
	return nil
}

func (f *FakeVenueRepo) CountEvents(ctx context.Context, db bun.IDB, venueID int64) (int, error) {
	return 0, nil
}

func (f *FakeVenueRepo) ListBookings(ctx context.Context, db bun.IDB, venueID int64) ([]venuedomain.Booking, error) {
	f.trace.record("venue.ListBookings")
	if f.ListBookingsFunc != nil {
		return f.ListBookingsFunc(ctx, db, venueID)
	}
	return nil, nil
}

func (f *FakeVenueRepo) ListSchedules(ctx context.Context, db bun.IDB) ([]venuedb.Schedule, error) {
	return nil, nil
}

func (f *FakeVenueRepo) ListUsage(ctx context.Context, db bun.IDB) ([]venuedomain.UsageRow, error) {
	return nil, nil
}

var _ venuedb.Repository = (*FakeVenueRepo)(nil)

// ------------------------
// Fake Reminder Scheduler
// ------------------------

type FakeReminders struct {
	Scheduled []eventqueue.EventReminderJob
	At        []time.Time
	Cancelled []int64
}

func (f *FakeReminders) ScheduleReminder(ctx context.Context, job eventqueue.EventReminderJob, at time.Time) error {
	f.Scheduled = append(f.Scheduled, job)
	f.At = append(f.At, at)
	return nil
}

func (f *FakeReminders) CancelReminders(ctx context.Context, eventID int64) error {
	f.Cancelled = append(f.Cancelled, eventID)
	return nil
}

var _ ReminderScheduler = (*FakeReminders)(nil)

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

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

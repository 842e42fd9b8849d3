package eventhandlers

import (
	"context"

	eventservice "github.com/Black-And-White-Club/nascon/app/modules/event/application"
	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
)

type FakeService struct {
	ListEventsFunc  func(ctx context.Context, category string) ([]eventdb.Event, error)
	GetEventFunc    func(ctx context.Context, eventID int64) (*eventdb.Event, error)
	CreateEventFunc func(ctx context.Context, req eventservice.EventRequest) (*eventdb.Event, error)
	UpdateEventFunc func(ctx context.Context, eventID int64, req eventservice.EventRequest) (*eventdb.Event, error)
	DeleteEventFunc func(ctx context.Context, eventID int64) error
	ListJudgesFunc  func(ctx context.Context, eventID int64) ([]eventdb.Judge, error)
}

func (f *FakeService) ListEvents(ctx context.Context, category string) ([]eventdb.Event, error) {
	if f.ListEventsFunc != nil {
		return f.ListEventsFunc(ctx, category)
	}
	return []eventdb.Event{}, nil
}

func (f *FakeService) GetEvent(ctx context.Context, eventID int64) (*eventdb.Event, error) {
	if f.GetEventFunc != nil {
		return f.GetEventFunc(ctx, eventID)
	}
	return &eventdb.Event{EventID: eventID}, nil
}

func (f *FakeService) CreateEvent(ctx context.Context, req eventservice.EventRequest) (*eventdb.Event, error) {
	if f.CreateEventFunc != nil {
		return f.CreateEventFunc(ctx, req)
	}
	return &eventdb.Event{EventID: 1, EventName: req.EventName}, nil
}

func (f *FakeService) UpdateEvent(ctx context.Context, eventID int64, req eventservice.EventRequest) (*eventdb.Event, error) {
	if f.UpdateEventFunc != nil {
		return f.UpdateEventFunc(ctx, eventID, req)
	}
	return &eventdb.Event{EventID: eventID, EventName: req.EventName}, nil
}

func (f *FakeService) DeleteEvent(ctx context.Context, eventID int64) error {
	if f.DeleteEventFunc != nil {
		return f.DeleteEventFunc(ctx, eventID)
	}
	return nil
}

func (f *FakeService) ListJudges(ctx context.Context, eventID int64) ([]eventdb.Judge, error) {
	if f.ListJudgesFunc != nil {
		return f.ListJudgesFunc(ctx, eventID)
	}
	return []eventdb.Judge{}, nil
}

var _ eventservice.Service = (*FakeService)(nil)

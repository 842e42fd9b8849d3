package eventservice

import (
	"context"
	"time"

	eventqueue "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/queue"
	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
)

// EventRequest is the create/update form. EventDateTime accepts RFC3339, an
// HTML datetime-local value or an English phrase.
type EventRequest struct {
	EventName       string   `json:"EventName"`
	EventType       string   `json:"EventType"`
	Description     *string  `json:"Description"`
	Rules           *string  `json:"Rules"`
	MaxParticipants *int     `json:"MaxParticipants"`
	RegistrationFee *float64 `json:"RegistrationFee"`
	EventDateTime   string   `json:"EventDateTime"`
	VenueID         int64    `json:"VenueID"`
}

// ReminderScheduler schedules and cancels event reminders.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, job eventqueue.EventReminderJob, at time.Time) error
	CancelReminders(ctx context.Context, eventID int64) error
}

// Service defines the event operations.
type Service interface {
	ListEvents(ctx context.Context, category string) ([]eventdb.Event, error)
	GetEvent(ctx context.Context, eventID int64) (*eventdb.Event, error)
	CreateEvent(ctx context.Context, req EventRequest) (*eventdb.Event, error)
	UpdateEvent(ctx context.Context, eventID int64, req EventRequest) (*eventdb.Event, error)
	DeleteEvent(ctx context.Context, eventID int64) error
	ListJudges(ctx context.Context, eventID int64) ([]eventdb.Judge, error)
}

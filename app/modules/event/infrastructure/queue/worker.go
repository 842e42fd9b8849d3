package eventqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/events"
	"github.com/riverqueue/river"
)

// EventReminderWorker publishes event.reminder.due when a reminder job runs.
type EventReminderWorker struct {
	river.WorkerDefaults[EventReminderJob]
	logger    *slog.Logger
	publisher eventbus.Publisher
}

// NewEventReminderWorker creates a new EventReminderWorker.
func NewEventReminderWorker(logger *slog.Logger, publisher eventbus.Publisher) *EventReminderWorker {
	return &EventReminderWorker{logger: logger, publisher: publisher}
}

func (w *EventReminderWorker) Work(ctx context.Context, job *river.Job[EventReminderJob]) error {
	args := job.Args
	w.logger.InfoContext(ctx, "Processing event reminder",
		attr.Int64("event_id", args.EventID),
		attr.Int64("job_id", job.ID),
		attr.Time("event_date_time", args.EventDateTime),
	)

	eventID := args.EventID
	err := eventbus.PublishEvent(ctx, w.publisher, events.EventReminderDue, events.DomainEvent{
		EntityID:   eventID,
		EventID:    &eventID,
		Summary:    fmt.Sprintf("%s starts at %s", args.EventName, args.EventDateTime.UTC().Format(time.RFC1123)),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		w.logger.ErrorContext(ctx, "Failed to publish event reminder",
			attr.Int64("event_id", eventID),
			attr.Error(err),
		)
		return fmt.Errorf("failed to publish event reminder: %w", err)
	}
	return nil
}

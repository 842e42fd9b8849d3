package eventservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	eventdomain "github.com/Black-And-White-Club/nascon/app/modules/event/domain"
	eventqueue "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/queue"
	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	venuedomain "github.com/Black-And-White-Club/nascon/app/modules/venue/domain"
	venuedb "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/events"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/app/shared/operation"
	"github.com/Black-And-White-Club/nascon/app/shared/results"
	"github.com/Black-And-White-Club/nascon/app/shared/timeparse"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*EventService)(nil)

// Config holds the scheduling settings of the service.
type Config struct {
	ConflictWindow time.Duration
	ReminderLead   time.Duration
}

// EventService implements the Service interface.
type EventService struct {
	repo      eventdb.Repository
	venueRepo venuedb.Repository
	reminders ReminderScheduler
	publisher eventbus.Publisher
	parser    *timeparse.Parser
	clock     timeparse.Clock
	config    Config
	runner    *operation.Runner
}

// NewEventService creates a new EventService. reminders may be nil when the
// job queue is disabled.
func NewEventService(
	repo eventdb.Repository,
	venueRepo venuedb.Repository,
	reminders ReminderScheduler,
	publisher eventbus.Publisher,
	parser *timeparse.Parser,
	config Config,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *EventService {
	if config.ConflictWindow <= 0 {
		config.ConflictWindow = venuedomain.DefaultConflictWindow
	}
	if config.ReminderLead <= 0 {
		config.ReminderLead = time.Hour
	}
	if parser == nil {
		parser = timeparse.NewParser(nil, nil)
	}
	return &EventService{
		repo:      repo,
		venueRepo: venueRepo,
		reminders: reminders,
		publisher: publisher,
		parser:    parser,
		clock:     timeparse.RealClock{},
		config:    config,
		runner:    operation.NewRunner("EventService", logger, metrics, tracer, db),
	}
}

func (s *EventService) ListEvents(ctx context.Context, category string) ([]eventdb.Event, error) {
	return operation.Run(s.runner, ctx, "ListEvents", category, func(ctx context.Context, db bun.IDB) (results.OperationResult[[]eventdb.Event, error], error) {
		filter := ""
		if strings.TrimSpace(category) != "" {
			c, err := eventdomain.ParseCategory(category)
			if err != nil {
				return results.FailureResult[[]eventdb.Event, error](err), nil
			}
			filter = string(c)
		}

		list, err := s.repo.List(ctx, db, filter)
		if err != nil {
			return results.OperationResult[[]eventdb.Event, error]{}, fmt.Errorf("failed to list events: %w", err)
		}
		return results.SuccessResult[[]eventdb.Event, error](list), nil
	})
}

func (s *EventService) GetEvent(ctx context.Context, eventID int64) (*eventdb.Event, error) {
	return operation.Run(s.runner, ctx, "GetEvent", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*eventdb.Event, error], error) {
		event, err := s.repo.GetByID(ctx, db, eventID)
		if err != nil {
			if errors.Is(err, eventdb.ErrNotFound) {
				return results.FailureResult[*eventdb.Event, error](apperr.NotFound("event %d not found", eventID)), nil
			}
			return results.OperationResult[*eventdb.Event, error]{}, fmt.Errorf("failed to get event: %w", err)
		}
		return results.SuccessResult[*eventdb.Event, error](event), nil
	})
}

// CreateEvent books the venue and stores the event in one transaction.
func (s *EventService) CreateEvent(ctx context.Context, req EventRequest) (*eventdb.Event, error) {
	event, err := operation.Run(s.runner, ctx, "CreateEvent", req.EventName, func(ctx context.Context, db bun.IDB) (results.OperationResult[*eventdb.Event, error], error) {
		event, err := s.buildEvent(req)
		if err != nil {
			return results.FailureResult[*eventdb.Event, error](err), nil
		}

		if err := s.reserveVenue(ctx, db, event.VenueID, event.EventDateTime, nil); err != nil {
			if apperr.IsDomain(err) {
				return results.FailureResult[*eventdb.Event, error](err), nil
			}
			return results.OperationResult[*eventdb.Event, error]{}, err
		}

		if err := s.repo.Create(ctx, db, event); err != nil {
			if errors.Is(err, eventdb.ErrUnknownVenue) {
				return results.FailureResult[*eventdb.Event, error](apperr.NotFound("venue %d not found", event.VenueID)), nil
			}
			return results.OperationResult[*eventdb.Event, error]{}, fmt.Errorf("failed to create event: %w", err)
		}
		return results.SuccessResult[*eventdb.Event, error](event), nil
	})
	if err != nil {
		return nil, err
	}

	s.scheduleReminder(ctx, event)
	s.publish(ctx, events.EventCreated, event.EventID, fmt.Sprintf("Event %s created", event.EventName))
	return event, nil
}

// UpdateEvent rewrites an event. The venue is re-checked with the event's own
// booking excluded, and the participant cap may not drop below the current
// registration count.
func (s *EventService) UpdateEvent(ctx context.Context, eventID int64, req EventRequest) (*eventdb.Event, error) {
	event, err := operation.Run(s.runner, ctx, "UpdateEvent", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*eventdb.Event, error], error) {
		event, err := s.buildEvent(req)
		if err != nil {
			return results.FailureResult[*eventdb.Event, error](err), nil
		}
		event.EventID = eventID

		if _, err := s.repo.LockByID(ctx, db, eventID); err != nil {
			if errors.Is(err, eventdb.ErrNotFound) {
				return results.FailureResult[*eventdb.Event, error](apperr.NotFound("event %d not found", eventID)), nil
			}
			return results.OperationResult[*eventdb.Event, error]{}, fmt.Errorf("failed to lock event: %w", err)
		}

		if event.MaxParticipants != nil {
			count, err := s.repo.CountRegistrations(ctx, db, eventID)
			if err != nil {
				return results.OperationResult[*eventdb.Event, error]{}, fmt.Errorf("failed to count registrations: %w", err)
			}
			if count > *event.MaxParticipants {
				return results.FailureResult[*eventdb.Event, error](
					apperr.Conflict("event %d already has %d registrations", eventID, count).With("registrations", count),
				), nil
			}
		}

		if err := s.reserveVenue(ctx, db, event.VenueID, event.EventDateTime, &eventID); err != nil {
			if apperr.IsDomain(err) {
				return results.FailureResult[*eventdb.Event, error](err), nil
			}
			return results.OperationResult[*eventdb.Event, error]{}, err
		}

		if err := s.repo.Update(ctx, db, event); err != nil {
			switch {
			case errors.Is(err, eventdb.ErrUnknownVenue):
				return results.FailureResult[*eventdb.Event, error](apperr.NotFound("venue %d not found", event.VenueID)), nil
			case errors.Is(err, eventdb.ErrNotFound):
				return results.FailureResult[*eventdb.Event, error](apperr.NotFound("event %d not found", eventID)), nil
			}
			return results.OperationResult[*eventdb.Event, error]{}, fmt.Errorf("failed to update event: %w", err)
		}
		return results.SuccessResult[*eventdb.Event, error](event), nil
	})
	if err != nil {
		return nil, err
	}

	s.scheduleReminder(ctx, event)
	s.publish(ctx, events.EventUpdated, event.EventID, fmt.Sprintf("Event %s updated", event.EventName))
	return event, nil
}

// DeleteEvent removes an event with no registrations and cancels its reminders.
func (s *EventService) DeleteEvent(ctx context.Context, eventID int64) error {
	name, err := operation.Run(s.runner, ctx, "DeleteEvent", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[string, error], error) {
		event, err := s.repo.LockByID(ctx, db, eventID)
		if err != nil {
			if errors.Is(err, eventdb.ErrNotFound) {
				return results.FailureResult[string, error](apperr.NotFound("event %d not found", eventID)), nil
			}
			return results.OperationResult[string, error]{}, fmt.Errorf("failed to lock event: %w", err)
		}

		count, err := s.repo.CountRegistrations(ctx, db, eventID)
		if err != nil {
			return results.OperationResult[string, error]{}, fmt.Errorf("failed to count registrations: %w", err)
		}
		if count > 0 {
			return results.FailureResult[string, error](
				apperr.Conflict("cannot delete event with existing registrations").With("registrations", count),
			), nil
		}

		if err := s.repo.Delete(ctx, db, eventID); err != nil {
			switch {
			case errors.Is(err, eventdb.ErrInUse):
				return results.FailureResult[string, error](apperr.Conflict("event %d is referenced by payments or scores", eventID)), nil
			case errors.Is(err, eventdb.ErrNotFound):
				return results.FailureResult[string, error](apperr.NotFound("event %d not found", eventID)), nil
			}
			return results.OperationResult[string, error]{}, fmt.Errorf("failed to delete event: %w", err)
		}
		return results.SuccessResult[string, error](event.EventName), nil
	})
	if err != nil {
		return err
	}

	if s.reminders != nil {
		if err := s.reminders.CancelReminders(ctx, eventID); err != nil {
			s.runner.Logger().WarnContext(ctx, "Failed to cancel event reminders", attr.Int64("event_id", eventID), attr.Error(err))
		}
	}
	s.publish(ctx, events.EventDeleted, eventID, fmt.Sprintf("Event %s deleted", name))
	return nil
}

func (s *EventService) ListJudges(ctx context.Context, eventID int64) ([]eventdb.Judge, error) {
	return operation.Run(s.runner, ctx, "ListJudges", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]eventdb.Judge, error], error) {
		if _, err := s.repo.GetByID(ctx, db, eventID); err != nil {
			if errors.Is(err, eventdb.ErrNotFound) {
				return results.FailureResult[[]eventdb.Judge, error](apperr.NotFound("event %d not found", eventID)), nil
			}
			return results.OperationResult[[]eventdb.Judge, error]{}, fmt.Errorf("failed to get event: %w", err)
		}

		judges, err := s.repo.ListJudges(ctx, db, eventID)
		if err != nil {
			return results.OperationResult[[]eventdb.Judge, error]{}, fmt.Errorf("failed to list judges: %w", err)
		}
		return results.SuccessResult[[]eventdb.Judge, error](judges), nil
	})
}

// reserveVenue locks the venue row and runs the conflict check against its
// bookings. The lock is held until the surrounding transaction ends, so two
// bookings of the same venue cannot both pass the check. Domain failures are
// returned as *apperr.Error.
func (s *EventService) reserveVenue(ctx context.Context, db bun.IDB, venueID int64, at time.Time, excludeEventID *int64) error {
	if _, err := s.venueRepo.LockByID(ctx, db, venueID); err != nil {
		if errors.Is(err, venuedb.ErrNotFound) {
			return apperr.NotFound("venue %d not found", venueID)
		}
		return fmt.Errorf("failed to lock venue: %w", err)
	}

	bookings, err := s.venueRepo.ListBookings(ctx, db, venueID)
	if err != nil {
		return fmt.Errorf("failed to list venue bookings: %w", err)
	}

	availability := venuedomain.CheckAvailability(bookings, at, excludeEventID, s.config.ConflictWindow)
	if availability.IsAvailable {
		return nil
	}
	conflicting := *availability.ConflictingEventID
	return apperr.Conflict("venue %d is already booked by event %d within %s of the requested time",
		venueID, conflicting, s.config.ConflictWindow).With("conflictingEventId", conflicting)
}

func (s *EventService) buildEvent(req EventRequest) (*eventdb.Event, error) {
	name := strings.TrimSpace(req.EventName)
	if name == "" || strings.TrimSpace(req.EventType) == "" || strings.TrimSpace(req.EventDateTime) == "" || req.VenueID == 0 {
		return nil, apperr.Validation("required fields missing")
	}
	if req.VenueID < 0 {
		return nil, apperr.Validation("invalid venue id %d", req.VenueID)
	}
	category, err := eventdomain.ParseCategory(req.EventType)
	if err != nil {
		return nil, err
	}
	if req.MaxParticipants != nil && *req.MaxParticipants <= 0 {
		return nil, apperr.Validation("max participants must be positive")
	}
	if req.RegistrationFee != nil && *req.RegistrationFee < 0 {
		return nil, apperr.Validation("registration fee must not be negative")
	}
	at, err := s.parser.Parse(req.EventDateTime)
	if err != nil {
		return nil, err
	}

	return &eventdb.Event{
		EventName:       name,
		EventType:       string(category),
		Description:     req.Description,
		Rules:           req.Rules,
		MaxParticipants: req.MaxParticipants,
		RegistrationFee: req.RegistrationFee,
		EventDateTime:   at,
		VenueID:         req.VenueID,
	}, nil
}

func (s *EventService) scheduleReminder(ctx context.Context, event *eventdb.Event) {
	if s.reminders == nil {
		return
	}
	logger := s.runner.Logger()

	at, ok := eventdomain.ReminderTime(event.EventDateTime, s.config.ReminderLead, s.clock.Now())
	if !ok {
		if err := s.reminders.CancelReminders(ctx, event.EventID); err != nil {
			logger.WarnContext(ctx, "Failed to cancel stale reminders", attr.Int64("event_id", event.EventID), attr.Error(err))
		}
		logger.InfoContext(ctx, "Reminder time already passed, skipping", attr.Int64("event_id", event.EventID))
		return
	}

	job := eventqueue.EventReminderJob{
		EventID:       event.EventID,
		EventName:     event.EventName,
		EventDateTime: event.EventDateTime,
	}
	if err := s.reminders.ScheduleReminder(ctx, job, at); err != nil {
		logger.WarnContext(ctx, "Failed to schedule event reminder", attr.Int64("event_id", event.EventID), attr.Error(err))
	}
}

func (s *EventService) publish(ctx context.Context, topic string, eventID int64, summary string) {
	if err := eventbus.PublishEvent(ctx, s.publisher, topic, events.DomainEvent{
		EntityID:   eventID,
		EventID:    &eventID,
		Summary:    summary,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		s.runner.Logger().WarnContext(ctx, "Failed to publish event change",
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}

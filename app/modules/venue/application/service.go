package venueservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

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

var _ Service = (*VenueService)(nil)

// VenueService implements the Service interface.
type VenueService struct {
	repo      venuedb.Repository
	publisher eventbus.Publisher
	parser    *timeparse.Parser
	window    time.Duration
	runner    *operation.Runner
}

// NewVenueService creates a new VenueService. window is the booking conflict
// window; zero uses venuedomain.DefaultConflictWindow.
func NewVenueService(
	repo venuedb.Repository,
	publisher eventbus.Publisher,
	parser *timeparse.Parser,
	window time.Duration,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *VenueService {
	if window <= 0 {
		window = venuedomain.DefaultConflictWindow
	}
	if parser == nil {
		parser = timeparse.NewParser(nil, nil)
	}
	return &VenueService{
		repo:      repo,
		publisher: publisher,
		parser:    parser,
		window:    window,
		runner:    operation.NewRunner("VenueService", logger, metrics, tracer, db),
	}
}

func validateVenue(req VenueRequest) error {
	if strings.TrimSpace(req.VenueName) == "" {
		return apperr.Validation("venue name is required")
	}
	if req.Capacity != nil && *req.Capacity < 0 {
		return apperr.Validation("capacity must not be negative")
	}
	return nil
}

func (s *VenueService) ListVenues(ctx context.Context) ([]venuedb.Venue, error) {
	return operation.Run(s.runner, ctx, "ListVenues", "", func(ctx context.Context, db bun.IDB) (results.OperationResult[[]venuedb.Venue, error], error) {
		venues, err := s.repo.List(ctx, db)
		if err != nil {
			return results.OperationResult[[]venuedb.Venue, error]{}, fmt.Errorf("failed to list venues: %w", err)
		}
		return results.SuccessResult[[]venuedb.Venue, error](venues), nil
	})
}

func (s *VenueService) GetVenue(ctx context.Context, venueID int64) (*venuedb.Venue, error) {
	return operation.Run(s.runner, ctx, "GetVenue", strconv.FormatInt(venueID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*venuedb.Venue, error], error) {
		venue, err := s.repo.GetByID(ctx, db, venueID)
		if err != nil {
			if errors.Is(err, venuedb.ErrNotFound) {
				return results.FailureResult[*venuedb.Venue, error](apperr.NotFound("venue %d not found", venueID)), nil
			}
			return results.OperationResult[*venuedb.Venue, error]{}, fmt.Errorf("failed to get venue: %w", err)
		}
		return results.SuccessResult[*venuedb.Venue, error](venue), nil
	})
}

// CreateVenue stores a new venue. New venues are always available.
func (s *VenueService) CreateVenue(ctx context.Context, req VenueRequest) (int64, error) {
	id, err := operation.Run(s.runner, ctx, "CreateVenue", req.VenueName, func(ctx context.Context, db bun.IDB) (results.OperationResult[int64, error], error) {
		if err := validateVenue(req); err != nil {
			return results.FailureResult[int64, error](err), nil
		}

		venue := &venuedb.Venue{
			VenueName:          strings.TrimSpace(req.VenueName),
			Capacity:           req.Capacity,
			Location:           req.Location,
			AvailabilityStatus: true,
		}
		if err := s.repo.Create(ctx, db, venue); err != nil {
			return results.OperationResult[int64, error]{}, fmt.Errorf("failed to create venue: %w", err)
		}
		return results.SuccessResult[int64, error](venue.VenueID), nil
	})
	if err != nil {
		return 0, err
	}

	s.publish(ctx, events.VenueCreated, id, fmt.Sprintf("Venue %s created", strings.TrimSpace(req.VenueName)))
	return id, nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, venueID int64, req VenueRequest) (*venuedb.Venue, error) {
	return operation.Run(s.runner, ctx, "UpdateVenue", strconv.FormatInt(venueID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*venuedb.Venue, error], error) {
		if err := validateVenue(req); err != nil {
			return results.FailureResult[*venuedb.Venue, error](err), nil
		}

		venue, err := s.repo.LockByID(ctx, db, venueID)
		if err != nil {
			if errors.Is(err, venuedb.ErrNotFound) {
				return results.FailureResult[*venuedb.Venue, error](apperr.NotFound("venue %d not found", venueID)), nil
			}
			return results.OperationResult[*venuedb.Venue, error]{}, fmt.Errorf("failed to lock venue: %w", err)
		}

		venue.VenueName = strings.TrimSpace(req.VenueName)
		venue.Capacity = req.Capacity
		venue.Location = req.Location
		if req.AvailabilityStatus != nil {
			venue.AvailabilityStatus = *req.AvailabilityStatus
		}
		if err := s.repo.Update(ctx, db, venue); err != nil {
			return results.OperationResult[*venuedb.Venue, error]{}, fmt.Errorf("failed to update venue: %w", err)
		}
		return results.SuccessResult[*venuedb.Venue, error](venue), nil
	})
}

// DeleteVenue removes a venue that hosts no events.
func (s *VenueService) DeleteVenue(ctx context.Context, venueID int64) error {
	_, err := operation.Run(s.runner, ctx, "DeleteVenue", strconv.FormatInt(venueID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
		if _, err := s.repo.LockByID(ctx, db, venueID); err != nil {
			if errors.Is(err, venuedb.ErrNotFound) {
				return results.FailureResult[bool, error](apperr.NotFound("venue %d not found", venueID)), nil
			}
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to lock venue: %w", err)
		}

		count, err := s.repo.CountEvents(ctx, db, venueID)
		if err != nil {
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to count venue events: %w", err)
		}
		if count > 0 {
			return results.FailureResult[bool, error](apperr.Conflict("venue %d still hosts %d event(s)", venueID, count).With("eventCount", count)), nil
		}

		if err := s.repo.Delete(ctx, db, venueID); err != nil {
			switch {
			case errors.Is(err, venuedb.ErrInUse):
				return results.FailureResult[bool, error](apperr.Conflict("venue %d still hosts events", venueID)), nil
			case errors.Is(err, venuedb.ErrNotFound):
				return results.FailureResult[bool, error](apperr.NotFound("venue %d not found", venueID)), nil
			}
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to delete venue: %w", err)
		}
		return results.SuccessResult[bool, error](true), nil
	})
	return err
}

// CheckAvailability reports whether the venue is free at the requested time.
func (s *VenueService) CheckAvailability(ctx context.Context, q AvailabilityQuery) (venuedomain.Availability, error) {
	return operation.Run(s.runner, ctx, "CheckAvailability", strconv.FormatInt(q.VenueID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[venuedomain.Availability, error], error) {
		if strings.TrimSpace(q.DateTime) == "" {
			return results.FailureResult[venuedomain.Availability, error](apperr.Validation("datetime parameter is required")), nil
		}
		candidate, err := s.parser.Parse(q.DateTime)
		if err != nil {
			return results.FailureResult[venuedomain.Availability, error](err), nil
		}

		if _, err := s.repo.GetByID(ctx, db, q.VenueID); err != nil {
			if errors.Is(err, venuedb.ErrNotFound) {
				return results.FailureResult[venuedomain.Availability, error](apperr.NotFound("venue %d not found", q.VenueID)), nil
			}
			return results.OperationResult[venuedomain.Availability, error]{}, fmt.Errorf("failed to get venue: %w", err)
		}

		bookings, err := s.repo.ListBookings(ctx, db, q.VenueID)
		if err != nil {
			return results.OperationResult[venuedomain.Availability, error]{}, fmt.Errorf("failed to list bookings: %w", err)
		}

		return results.SuccessResult[venuedomain.Availability, error](
			venuedomain.CheckAvailability(bookings, candidate, q.ExcludeEventID, s.window),
		), nil
	})
}

func (s *VenueService) ListSchedules(ctx context.Context) ([]venuedb.Schedule, error) {
	return operation.Run(s.runner, ctx, "ListSchedules", "", func(ctx context.Context, db bun.IDB) (results.OperationResult[[]venuedb.Schedule, error], error) {
		schedules, err := s.repo.ListSchedules(ctx, db)
		if err != nil {
			return results.OperationResult[[]venuedb.Schedule, error]{}, fmt.Errorf("failed to list schedules: %w", err)
		}
		return results.SuccessResult[[]venuedb.Schedule, error](schedules), nil
	})
}

func (s *VenueService) Utilization(ctx context.Context) (venuedomain.Utilization, error) {
	return operation.Run(s.runner, ctx, "Utilization", "", func(ctx context.Context, db bun.IDB) (results.OperationResult[venuedomain.Utilization, error], error) {
		rows, err := s.repo.ListUsage(ctx, db)
		if err != nil {
			return results.OperationResult[venuedomain.Utilization, error]{}, fmt.Errorf("failed to load venue usage: %w", err)
		}
		return results.SuccessResult[venuedomain.Utilization, error](venuedomain.ComputeUtilization(rows)), nil
	})
}

// UtilizationChart renders events per venue as a PNG bar chart.
func (s *VenueService) UtilizationChart(ctx context.Context) ([]byte, error) {
	report, err := s.Utilization(ctx)
	if err != nil {
		return nil, err
	}
	png, err := RenderUtilizationChart(report)
	if err != nil {
		return nil, fmt.Errorf("failed to render utilization chart: %w", err)
	}
	return png, nil
}

func (s *VenueService) publish(ctx context.Context, topic string, entityID int64, summary string) {
	if err := eventbus.PublishEvent(ctx, s.publisher, topic, events.DomainEvent{
		EntityID:   entityID,
		Summary:    summary,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		s.runner.Logger().WarnContext(ctx, "Failed to publish venue event",
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}

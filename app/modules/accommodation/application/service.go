package accommodationservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	accommodationdomain "github.com/Black-And-White-Club/nascon/app/modules/accommodation/domain"
	accommodationdb "github.com/Black-And-White-Club/nascon/app/modules/accommodation/infrastructure/repositories"
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

const dateLayout = "2006-01-02"

var _ Service = (*AccommodationService)(nil)

// AccommodationService implements the Service interface.
type AccommodationService struct {
	repo      accommodationdb.Repository
	dates     DateParser
	clock     timeparse.Clock
	publisher eventbus.Publisher
	runner    *operation.Runner
}

// NewAccommodationService creates a new AccommodationService. A nil clock
// reads the wall clock; a nil parser accepts only YYYY-MM-DD.
func NewAccommodationService(
	repo accommodationdb.Repository,
	dates DateParser,
	clock timeparse.Clock,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *AccommodationService {
	if clock == nil {
		clock = timeparse.RealClock{}
	}
	return &AccommodationService{
		repo:      repo,
		dates:     dates,
		clock:     clock,
		publisher: publisher,
		runner:    operation.NewRunner("AccommodationService", logger, metrics, tracer, db),
	}
}

func (s *AccommodationService) parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperr.Validation("%s is required", field)
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	if s.dates != nil {
		if t, err := s.dates.Parse(raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation("invalid %s %q", field, raw)
}

func (s *AccommodationService) parseStay(checkIn, checkOut string) (accommodationdomain.Stay, error) {
	in, err := s.parseDate("CheckInDate", checkIn)
	if err != nil {
		return accommodationdomain.Stay{}, err
	}
	out, err := s.parseDate("CheckOutDate", checkOut)
	if err != nil {
		return accommodationdomain.Stay{}, err
	}
	return accommodationdomain.NewStay(in, out)
}

func validateBudget(budget *float64) error {
	if budget != nil && *budget < 0 {
		return apperr.Validation("Budget must not be negative")
	}
	return nil
}

// Request records a room request. The user row is locked so two concurrent
// requests by one user cannot both pass the active-request check.
func (s *AccommodationService) Request(ctx context.Context, req CreateRequest) (*accommodationdb.Accommodation, error) {
	acc, err := operation.Run(s.runner, ctx, "Request", strconv.FormatInt(req.UserID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*accommodationdb.Accommodation, error], error) {
		if req.UserID <= 0 {
			return results.FailureResult[*accommodationdb.Accommodation, error](apperr.Validation("UserID is required")), nil
		}
		stay, err := s.parseStay(req.CheckInDate, req.CheckOutDate)
		if err != nil {
			return results.FailureResult[*accommodationdb.Accommodation, error](err), nil
		}
		if err := validateBudget(req.Budget.Value); err != nil {
			return results.FailureResult[*accommodationdb.Accommodation, error](err), nil
		}

		if err := s.repo.LockUser(ctx, db, req.UserID); err != nil {
			if errors.Is(err, accommodationdb.ErrUserNotFound) {
				return results.FailureResult[*accommodationdb.Accommodation, error](apperr.NotFound("user %d not found", req.UserID)), nil
			}
			return results.OperationResult[*accommodationdb.Accommodation, error]{}, fmt.Errorf("failed to lock user: %w", err)
		}

		active, err := s.repo.HasActive(ctx, db, req.UserID, accommodationdomain.Today(s.clock.Now()))
		if err != nil {
			return results.OperationResult[*accommodationdb.Accommodation, error]{}, fmt.Errorf("failed to check active requests: %w", err)
		}
		if active {
			return results.FailureResult[*accommodationdb.Accommodation, error](
				apperr.Conflict("user %d already has an active accommodation request", req.UserID),
			), nil
		}

		acc := &accommodationdb.Accommodation{
			UserID:       req.UserID,
			Budget:       req.Budget.Value,
			CheckInDate:  stay.CheckIn,
			CheckOutDate: stay.CheckOut,
		}
		if err := s.repo.Create(ctx, db, acc); err != nil {
			switch {
			case errors.Is(err, accommodationdb.ErrUserNotFound):
				return results.FailureResult[*accommodationdb.Accommodation, error](apperr.NotFound("user %d not found", req.UserID)), nil
			case errors.Is(err, accommodationdb.ErrInvalidStay):
				return results.FailureResult[*accommodationdb.Accommodation, error](apperr.Validation("invalid accommodation dates or budget")), nil
			}
			return results.OperationResult[*accommodationdb.Accommodation, error]{}, fmt.Errorf("failed to create accommodation: %w", err)
		}
		return results.SuccessResult[*accommodationdb.Accommodation, error](acc), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.AccommodationBooked, events.DomainEvent{
		EntityID: acc.AccommodationID,
		ActorID:  &acc.UserID,
		Summary: fmt.Sprintf("User %d requested accommodation from %s to %s",
			acc.UserID, acc.CheckInDate.Format(dateLayout), acc.CheckOutDate.Format(dateLayout)),
	})
	return acc, nil
}

func (s *AccommodationService) ListUserAccommodation(ctx context.Context, userID int64) ([]accommodationdb.Accommodation, error) {
	return operation.Run(s.runner, ctx, "ListUserAccommodation", strconv.FormatInt(userID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]accommodationdb.Accommodation, error], error) {
		accs, err := s.repo.ListByUser(ctx, db, userID)
		if err != nil {
			return results.OperationResult[[]accommodationdb.Accommodation, error]{}, fmt.Errorf("failed to list accommodation: %w", err)
		}
		return results.SuccessResult[[]accommodationdb.Accommodation, error](accs), nil
	})
}

func (s *AccommodationService) Update(ctx context.Context, accommodationID int64, req UpdateRequest) (*accommodationdb.Accommodation, error) {
	return operation.Run(s.runner, ctx, "Update", strconv.FormatInt(accommodationID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*accommodationdb.Accommodation, error], error) {
		acc, err := s.repo.GetByID(ctx, db, accommodationID)
		if err != nil {
			if errors.Is(err, accommodationdb.ErrNotFound) {
				return results.FailureResult[*accommodationdb.Accommodation, error](apperr.NotFound("accommodation %d not found", accommodationID)), nil
			}
			return results.OperationResult[*accommodationdb.Accommodation, error]{}, fmt.Errorf("failed to get accommodation: %w", err)
		}

		checkIn, checkOut := acc.CheckInDate.Format(dateLayout), acc.CheckOutDate.Format(dateLayout)
		if strings.TrimSpace(req.CheckInDate) != "" {
			checkIn = req.CheckInDate
		}
		if strings.TrimSpace(req.CheckOutDate) != "" {
			checkOut = req.CheckOutDate
		}
		stay, err := s.parseStay(checkIn, checkOut)
		if err != nil {
			return results.FailureResult[*accommodationdb.Accommodation, error](err), nil
		}
		if err := validateBudget(req.Budget.Value); err != nil {
			return results.FailureResult[*accommodationdb.Accommodation, error](err), nil
		}

		acc.CheckInDate, acc.CheckOutDate = stay.CheckIn, stay.CheckOut
		acc.Budget = req.Budget.Value
		acc.RoomNumber = nil
		if room := strings.TrimSpace(req.RoomNumber); room != "" {
			acc.RoomNumber = &room
		}

		if err := s.repo.Update(ctx, db, acc); err != nil {
			switch {
			case errors.Is(err, accommodationdb.ErrNotFound):
				return results.FailureResult[*accommodationdb.Accommodation, error](apperr.NotFound("accommodation %d not found", accommodationID)), nil
			case errors.Is(err, accommodationdb.ErrInvalidStay):
				return results.FailureResult[*accommodationdb.Accommodation, error](apperr.Validation("invalid accommodation dates or budget")), nil
			}
			return results.OperationResult[*accommodationdb.Accommodation, error]{}, fmt.Errorf("failed to update accommodation: %w", err)
		}
		return results.SuccessResult[*accommodationdb.Accommodation, error](acc), nil
	})
}

// Delete removes a request. When ownerID is set the request must belong to
// that user.
func (s *AccommodationService) Delete(ctx context.Context, accommodationID int64, ownerID *int64) error {
	_, err := operation.Run(s.runner, ctx, "Delete", strconv.FormatInt(accommodationID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
		acc, err := s.repo.GetByID(ctx, db, accommodationID)
		if err != nil {
			if errors.Is(err, accommodationdb.ErrNotFound) {
				return results.FailureResult[bool, error](apperr.NotFound("accommodation %d not found", accommodationID)), nil
			}
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to get accommodation: %w", err)
		}
		if ownerID != nil && acc.UserID != *ownerID {
			return results.FailureResult[bool, error](apperr.Forbidden("accommodation %d belongs to another user", accommodationID)), nil
		}

		if err := s.repo.Delete(ctx, db, accommodationID); err != nil {
			if errors.Is(err, accommodationdb.ErrNotFound) {
				return results.FailureResult[bool, error](apperr.NotFound("accommodation %d not found", accommodationID)), nil
			}
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to delete accommodation: %w", err)
		}
		return results.SuccessResult[bool, error](true), nil
	})
	return err
}

func (s *AccommodationService) Search(ctx context.Context, q SearchQuery) ([]accommodationdb.Detail, error) {
	return operation.Run(s.runner, ctx, "Search", "filtered", func(ctx context.Context, db bun.IDB) (results.OperationResult[[]accommodationdb.Detail, error], error) {
		status, err := accommodationdomain.ParseStatusFilter(q.Status)
		if err != nil {
			return results.FailureResult[[]accommodationdb.Detail, error](err), nil
		}
		filter := accommodationdb.Filter{
			Name:       strings.TrimSpace(q.Name),
			RoomNumber: strings.TrimSpace(q.RoomNumber),
			Status:     status,
		}
		if strings.TrimSpace(q.CheckInDate) != "" {
			d, err := s.parseDate("checkInDate", q.CheckInDate)
			if err != nil {
				return results.FailureResult[[]accommodationdb.Detail, error](err), nil
			}
			day := accommodationdomain.Today(d)
			filter.CheckInDate = &day
		}

		details, err := s.repo.Search(ctx, db, filter)
		if err != nil {
			return results.OperationResult[[]accommodationdb.Detail, error]{}, fmt.Errorf("failed to search accommodations: %w", err)
		}
		return results.SuccessResult[[]accommodationdb.Detail, error](details), nil
	})
}

func (s *AccommodationService) Report(ctx context.Context) (*Report, error) {
	return operation.Run(s.runner, ctx, "Report", "all", func(ctx context.Context, db bun.IDB) (results.OperationResult[*Report, error], error) {
		details, err := s.repo.Search(ctx, db, accommodationdb.Filter{})
		if err != nil {
			return results.OperationResult[*Report, error]{}, fmt.Errorf("failed to list accommodations: %w", err)
		}
		statuses := make([]string, len(details))
		for i, d := range details {
			statuses[i] = accommodationdomain.Status(d.RoomNumber)
		}
		return results.SuccessResult[*Report, error](&Report{
			Accommodations: details,
			Statistics:     accommodationdomain.Summarize(statuses),
		}), nil
	})
}

func (s *AccommodationService) publish(ctx context.Context, topic string, evt events.DomainEvent) {
	evt.OccurredAt = time.Now().UTC()
	if err := eventbus.PublishEvent(ctx, s.publisher, topic, evt); err != nil {
		s.runner.Logger().WarnContext(ctx, "Failed to publish accommodation change",
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}

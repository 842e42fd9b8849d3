package activityservice

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	activitydomain "github.com/Black-And-White-Club/nascon/app/modules/activity/domain"
	activitydb "github.com/Black-And-White-Club/nascon/app/modules/activity/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/app/shared/operation"
	"github.com/Black-And-White-Club/nascon/app/shared/results"
	"github.com/Black-And-White-Club/nascon/app/shared/timeparse"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*ActivityService)(nil)

// ActivityService implements the Service interface.
type ActivityService struct {
	repo   activitydb.Repository
	clock  timeparse.Clock
	runner *operation.Runner
}

// NewActivityService creates a new ActivityService.
func NewActivityService(
	repo activitydb.Repository,
	clock timeparse.Clock,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ActivityService {
	if clock == nil {
		clock = timeparse.RealClock{}
	}
	return &ActivityService{
		repo:   repo,
		clock:  clock,
		runner: operation.NewRunner("ActivityService", logger, metrics, tracer, db),
	}
}

// Record appends a feed entry. Redelivered messages are dropped silently.
func (s *ActivityService) Record(ctx context.Context, rec Record) error {
	_, err := operation.Run(s.runner, ctx, "Record", rec.Topic, func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
		if strings.TrimSpace(rec.MessageID) == "" || strings.TrimSpace(rec.Topic) == "" {
			return results.FailureResult[bool, error](apperr.Validation("message id and topic are required")), nil
		}

		entry := &activitydb.Entry{
			MessageID: rec.MessageID,
			Topic:     rec.Topic,
			EntityID:  rec.Event.EntityID,
			ActorID:   rec.Event.ActorID,
			EventID:   rec.Event.EventID,
			Summary:   rec.Event.Summary,
			CreatedAt: rec.Event.OccurredAt.UTC(),
		}
		if rec.Event.OccurredAt.IsZero() {
			entry.CreatedAt = s.clock.Now().UTC()
		}
		if rec.CorrelationID != "" {
			id := rec.CorrelationID
			entry.CorrelationID = &id
		}

		inserted, err := s.repo.Create(ctx, db, entry)
		if err != nil {
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to record activity: %w", err)
		}
		if !inserted {
			s.runner.Logger().DebugContext(ctx, "Duplicate activity message ignored",
				attr.String("message_id", rec.MessageID),
				attr.String("topic", rec.Topic),
			)
		}
		return results.SuccessResult[bool, error](inserted), nil
	})
	return err
}

func (s *ActivityService) Recent(ctx context.Context, limit int) ([]activitydb.Entry, error) {
	return operation.Run(s.runner, ctx, "Recent", strconv.Itoa(limit), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]activitydb.Entry, error], error) {
		n, err := activitydomain.ClampLimit(limit)
		if err != nil {
			return results.FailureResult[[]activitydb.Entry, error](err), nil
		}
		entries, err := s.repo.ListRecent(ctx, db, n)
		if err != nil {
			return results.OperationResult[[]activitydb.Entry, error]{}, fmt.Errorf("failed to list activity: %w", err)
		}
		return results.SuccessResult[[]activitydb.Entry, error](entries), nil
	})
}

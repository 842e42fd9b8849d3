package judgeservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	judgedb "github.com/Black-And-White-Club/nascon/app/modules/judge/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/events"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/app/shared/operation"
	"github.com/Black-And-White-Club/nascon/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*JudgeService)(nil)

// JudgeService implements the Service interface.
type JudgeService struct {
	repo      judgedb.Repository
	users     UserReader
	events    EventReader
	publisher eventbus.Publisher
	runner    *operation.Runner
}

// NewJudgeService creates a new JudgeService.
func NewJudgeService(
	repo judgedb.Repository,
	users UserReader,
	events EventReader,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *JudgeService {
	return &JudgeService{
		repo:      repo,
		users:     users,
		events:    events,
		publisher: publisher,
		runner:    operation.NewRunner("JudgeService", logger, metrics, tracer, db),
	}
}

// AssignJudge authorizes a judge to score an event.
func (s *JudgeService) AssignJudge(ctx context.Context, req AssignRequest) (*judgedb.Assignment, error) {
	id := fmt.Sprintf("%d/%d", req.JudgeID, req.EventID)
	assignment, err := operation.Run(s.runner, ctx, "AssignJudge", id, func(ctx context.Context, db bun.IDB) (results.OperationResult[*judgedb.Assignment, error], error) {
		if req.JudgeID <= 0 || req.EventID <= 0 {
			return results.FailureResult[*judgedb.Assignment, error](apperr.Validation("JudgeID and EventID are required")), nil
		}

		user, err := s.users.GetByID(ctx, db, req.JudgeID)
		if err != nil && !errors.Is(err, userdb.ErrNotFound) {
			return results.OperationResult[*judgedb.Assignment, error]{}, fmt.Errorf("failed to get judge: %w", err)
		}
		if user == nil || user.UserType != string(authdomain.RoleJudge) {
			return results.FailureResult[*judgedb.Assignment, error](apperr.Validation("user %d is not a judge", req.JudgeID)), nil
		}

		if _, err := s.events.GetByID(ctx, db, req.EventID); err != nil {
			if errors.Is(err, eventdb.ErrNotFound) {
				return results.FailureResult[*judgedb.Assignment, error](apperr.NotFound("event %d not found", req.EventID)), nil
			}
			return results.OperationResult[*judgedb.Assignment, error]{}, fmt.Errorf("failed to get event: %w", err)
		}

		a := &judgedb.Assignment{JudgeID: req.JudgeID, EventID: req.EventID}
		if err := s.repo.Create(ctx, db, a); err != nil {
			switch {
			case errors.Is(err, judgedb.ErrDuplicate):
				return results.FailureResult[*judgedb.Assignment, error](
					apperr.Conflict("judge %d is already assigned to event %d", req.JudgeID, req.EventID),
				), nil
			case errors.Is(err, judgedb.ErrUnknownReference):
				return results.FailureResult[*judgedb.Assignment, error](apperr.NotFound("judge or event not found")), nil
			}
			return results.OperationResult[*judgedb.Assignment, error]{}, fmt.Errorf("failed to assign judge: %w", err)
		}
		return results.SuccessResult[*judgedb.Assignment, error](a), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.JudgeAssigned, assignment, fmt.Sprintf("Judge %d assigned to event %d", assignment.JudgeID, assignment.EventID))
	return assignment, nil
}

func (s *JudgeService) UnassignJudge(ctx context.Context, assignmentID int64) error {
	assignment, err := operation.Run(s.runner, ctx, "UnassignJudge", strconv.FormatInt(assignmentID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*judgedb.Assignment, error], error) {
		a, err := s.repo.GetByID(ctx, db, assignmentID)
		if err != nil {
			if errors.Is(err, judgedb.ErrNotFound) {
				return results.FailureResult[*judgedb.Assignment, error](apperr.NotFound("judge assignment %d not found", assignmentID)), nil
			}
			return results.OperationResult[*judgedb.Assignment, error]{}, fmt.Errorf("failed to get assignment: %w", err)
		}
		if err := s.repo.Delete(ctx, db, assignmentID); err != nil {
			if errors.Is(err, judgedb.ErrNotFound) {
				return results.FailureResult[*judgedb.Assignment, error](apperr.NotFound("judge assignment %d not found", assignmentID)), nil
			}
			return results.OperationResult[*judgedb.Assignment, error]{}, fmt.Errorf("failed to delete assignment: %w", err)
		}
		return results.SuccessResult[*judgedb.Assignment, error](a), nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.JudgeUnassigned, assignment, fmt.Sprintf("Judge %d removed from event %d", assignment.JudgeID, assignment.EventID))
	return nil
}

func (s *JudgeService) ListAssignments(ctx context.Context, judgeID int64) ([]judgedb.AssignmentDetail, error) {
	return operation.Run(s.runner, ctx, "ListAssignments", strconv.FormatInt(judgeID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]judgedb.AssignmentDetail, error], error) {
		list, err := s.repo.ListByJudge(ctx, db, judgeID)
		if err != nil {
			return results.OperationResult[[]judgedb.AssignmentDetail, error]{}, fmt.Errorf("failed to list assignments: %w", err)
		}
		return results.SuccessResult[[]judgedb.AssignmentDetail, error](list), nil
	})
}

func (s *JudgeService) publish(ctx context.Context, topic string, a *judgedb.Assignment, summary string) {
	if err := eventbus.PublishEvent(ctx, s.publisher, topic, events.DomainEvent{
		EntityID:   a.AssignmentID,
		ActorID:    &a.JudgeID,
		EventID:    &a.EventID,
		Summary:    summary,
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		s.runner.Logger().WarnContext(ctx, "Failed to publish judge assignment change",
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}

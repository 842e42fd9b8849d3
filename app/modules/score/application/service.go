package scoreservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	registrationdb "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories"
	scoredomain "github.com/Black-And-White-Club/nascon/app/modules/score/domain"
	scoredb "github.com/Black-And-White-Club/nascon/app/modules/score/infrastructure/repositories"
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

var _ Service = (*ScoreService)(nil)

// ScoreService implements the Service interface.
type ScoreService struct {
	repo         scoredb.Repository
	events       EventReader
	judges       JudgeRoster
	participants ParticipantRoster
	publisher    eventbus.Publisher
	runner       *operation.Runner
}

// NewScoreService creates a new ScoreService.
func NewScoreService(
	repo scoredb.Repository,
	events EventReader,
	judges JudgeRoster,
	participants ParticipantRoster,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ScoreService {
	return &ScoreService{
		repo:         repo,
		events:       events,
		judges:       judges,
		participants: participants,
		publisher:    publisher,
		runner:       operation.NewRunner("ScoreService", logger, metrics, tracer, db),
	}
}

// SubmitScore records or overwrites a judge's score. Checks run in a fixed
// order: value and round, event, judge assignment, participant registration.
func (s *ScoreService) SubmitScore(ctx context.Context, req SubmitRequest) (*scoredb.Score, error) {
	id := fmt.Sprintf("%d/%d/%d", req.EventID, req.JudgeID, req.ParticipantID)
	score, err := operation.Run(s.runner, ctx, "SubmitScore", id, func(ctx context.Context, db bun.IDB) (results.OperationResult[*scoredb.Score, error], error) {
		if req.JudgeID <= 0 || req.ParticipantID <= 0 || req.EventID <= 0 || req.Score == nil {
			return results.FailureResult[*scoredb.Score, error](apperr.Validation("JudgeID, ParticipantID, EventID and Score are required")), nil
		}
		if err := scoredomain.ValidateScore(*req.Score); err != nil {
			return results.FailureResult[*scoredb.Score, error](err), nil
		}
		round, err := scoredomain.ParseRound(req.Round)
		if err != nil {
			return results.FailureResult[*scoredb.Score, error](err), nil
		}

		if _, err := s.events.GetByID(ctx, db, req.EventID); err != nil {
			if errors.Is(err, eventdb.ErrNotFound) {
				return results.FailureResult[*scoredb.Score, error](apperr.NotFound("event %d not found", req.EventID)), nil
			}
			return results.OperationResult[*scoredb.Score, error]{}, fmt.Errorf("failed to get event: %w", err)
		}

		assigned, err := s.judges.IsAssigned(ctx, db, req.JudgeID, req.EventID)
		if err != nil {
			return results.OperationResult[*scoredb.Score, error]{}, fmt.Errorf("failed to check judge assignment: %w", err)
		}
		if !assigned {
			return results.FailureResult[*scoredb.Score, error](
				apperr.Forbidden("judge %d is not assigned to event %d", req.JudgeID, req.EventID),
			), nil
		}

		if _, err := s.participants.Get(ctx, db, req.EventID, req.ParticipantID); err != nil {
			if errors.Is(err, registrationdb.ErrNotFound) {
				return results.FailureResult[*scoredb.Score, error](
					apperr.Forbidden("participant %d is not registered for event %d", req.ParticipantID, req.EventID),
				), nil
			}
			return results.OperationResult[*scoredb.Score, error]{}, fmt.Errorf("failed to check registration: %w", err)
		}

		score := &scoredb.Score{
			JudgeID:       req.JudgeID,
			ParticipantID: req.ParticipantID,
			EventID:       req.EventID,
			Round:         string(round),
			Score:         *req.Score,
		}
		if err := s.repo.Upsert(ctx, db, score); err != nil {
			switch {
			case errors.Is(err, scoredb.ErrOutOfRange):
				return results.FailureResult[*scoredb.Score, error](apperr.Validation("score must be between 0 and 100")), nil
			case errors.Is(err, scoredb.ErrUnknownReference):
				return results.FailureResult[*scoredb.Score, error](apperr.NotFound("judge, participant or event not found")), nil
			}
			return results.OperationResult[*scoredb.Score, error]{}, fmt.Errorf("failed to save score: %w", err)
		}
		return results.SuccessResult[*scoredb.Score, error](score), nil
	})
	if err != nil {
		return nil, err
	}

	if err := eventbus.PublishEvent(ctx, s.publisher, events.ScoreSubmitted, events.DomainEvent{
		EntityID:   score.ScoreID,
		ActorID:    &score.JudgeID,
		EventID:    &score.EventID,
		Summary:    fmt.Sprintf("Judge %d scored participant %d (%s): %.2f", score.JudgeID, score.ParticipantID, score.Round, score.Score),
		OccurredAt: time.Now().UTC(),
	}); err != nil {
		s.runner.Logger().WarnContext(ctx, "Failed to publish score submission",
			attr.Int64("score_id", score.ScoreID),
			attr.Error(err),
		)
	}
	return score, nil
}

func (s *ScoreService) JudgeScores(ctx context.Context, judgeID, eventID int64) ([]scoredb.JudgeScore, error) {
	id := fmt.Sprintf("%d/%d", eventID, judgeID)
	return operation.Run(s.runner, ctx, "JudgeScores", id, func(ctx context.Context, db bun.IDB) (results.OperationResult[[]scoredb.JudgeScore, error], error) {
		list, err := s.repo.ListByJudge(ctx, db, judgeID, eventID)
		if err != nil {
			return results.OperationResult[[]scoredb.JudgeScore, error]{}, fmt.Errorf("failed to list scores: %w", err)
		}
		return results.SuccessResult[[]scoredb.JudgeScore, error](list), nil
	})
}

// Coverage reports which assigned judge has not yet scored which registered
// participant in the round.
func (s *ScoreService) Coverage(ctx context.Context, eventID int64, round string) (*scoredomain.Coverage, error) {
	return operation.Run(s.runner, ctx, "Coverage", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*scoredomain.Coverage, error], error) {
		r, err := scoredomain.ParseRound(round)
		if err != nil {
			return results.FailureResult[*scoredomain.Coverage, error](err), nil
		}

		if _, err := s.events.GetByID(ctx, db, eventID); err != nil {
			if errors.Is(err, eventdb.ErrNotFound) {
				return results.FailureResult[*scoredomain.Coverage, error](apperr.NotFound("event %d not found", eventID)), nil
			}
			return results.OperationResult[*scoredomain.Coverage, error]{}, fmt.Errorf("failed to get event: %w", err)
		}

		judges, err := s.judges.AssignedJudges(ctx, db, eventID)
		if err != nil {
			return results.OperationResult[*scoredomain.Coverage, error]{}, fmt.Errorf("failed to list judges: %w", err)
		}
		participants, err := s.participants.ParticipantIDs(ctx, db, eventID)
		if err != nil {
			return results.OperationResult[*scoredomain.Coverage, error]{}, fmt.Errorf("failed to list participants: %w", err)
		}
		submitted, err := s.repo.SubmittedKeys(ctx, db, eventID, string(r))
		if err != nil {
			return results.OperationResult[*scoredomain.Coverage, error]{}, fmt.Errorf("failed to list submitted scores: %w", err)
		}

		cov := scoredomain.CheckCoverage(r, judges, participants, submitted)
		return results.SuccessResult[*scoredomain.Coverage, error](&cov), nil
	})
}

package leaderboardservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	leaderboarddomain "github.com/Black-And-White-Club/nascon/app/modules/leaderboard/domain"
	leaderboarddb "github.com/Black-And-White-Club/nascon/app/modules/leaderboard/infrastructure/repositories"
	scoredomain "github.com/Black-And-White-Club/nascon/app/modules/score/domain"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/app/shared/operation"
	"github.com/Black-And-White-Club/nascon/app/shared/results"
	"github.com/Black-And-White-Club/nascon/app/shared/xlsxexport"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*LeaderboardService)(nil)

// LeaderboardService implements the Service interface.
type LeaderboardService struct {
	repo   leaderboarddb.Repository
	events EventReader
	runner *operation.Runner
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	repo leaderboarddb.Repository,
	events EventReader,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *LeaderboardService {
	return &LeaderboardService{
		repo:   repo,
		events: events,
		runner: operation.NewRunner("LeaderboardService", logger, metrics, tracer, db),
	}
}

type ranked struct {
	event   *eventdb.Event
	round   scoredomain.Round
	entries []leaderboarddomain.Entry
}

func (s *LeaderboardService) Leaderboard(ctx context.Context, eventID int64, round string) ([]leaderboarddomain.Entry, error) {
	res, err := operation.Run(s.runner, ctx, "Leaderboard", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*ranked, error], error) {
		return s.rank(ctx, db, eventID, round)
	})
	if err != nil {
		return nil, err
	}
	return res.entries, nil
}

// ExportLeaderboard renders the leaderboard as an XLSX workbook.
func (s *LeaderboardService) ExportLeaderboard(ctx context.Context, eventID int64, round string) (*Export, error) {
	res, err := operation.Run(s.runner, ctx, "ExportLeaderboard", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*ranked, error], error) {
		return s.rank(ctx, db, eventID, round)
	})
	if err != nil {
		return nil, err
	}

	rows := make([][]any, len(res.entries))
	for i, e := range res.entries {
		rows[i] = []any{e.Rank, e.UserID, e.FullName, e.AverageScore, e.JudgesCount}
	}
	data, err := xlsxexport.Write(xlsxexport.Sheet{
		Name:   "Leaderboard",
		Header: []string{"Rank", "User ID", "Full Name", "Average Score", "Judges"},
		Rows:   rows,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render leaderboard: %w", err)
	}

	return &Export{
		Filename: fmt.Sprintf("leaderboard-%s-%s.xlsx", slug(res.event.EventName), strings.ToLower(string(res.round))),
		Data:     data,
	}, nil
}

func (s *LeaderboardService) rank(ctx context.Context, db bun.IDB, eventID int64, round string) (results.OperationResult[*ranked, error], error) {
	r, err := scoredomain.ParseRound(round)
	if err != nil {
		return results.FailureResult[*ranked, error](err), nil
	}

	event, err := s.events.GetByID(ctx, db, eventID)
	if err != nil {
		if errors.Is(err, eventdb.ErrNotFound) {
			return results.FailureResult[*ranked, error](apperr.NotFound("event %d not found", eventID)), nil
		}
		return results.OperationResult[*ranked, error]{}, fmt.Errorf("failed to get event: %w", err)
	}

	rows, err := s.repo.ScoreRows(ctx, db, eventID, string(r))
	if err != nil {
		return results.OperationResult[*ranked, error]{}, fmt.Errorf("failed to load scores: %w", err)
	}

	return results.SuccessResult[*ranked, error](&ranked{
		event:   event,
		round:   r,
		entries: leaderboarddomain.Compute(rows),
	}), nil
}

func slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	if len(fields) == 0 {
		return "event"
	}
	return strings.Join(fields, "-")
}

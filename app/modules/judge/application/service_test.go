package judgeservice

import (
	"context"
	"io"
	"log/slog"
	"testing"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	judgedb "github.com/Black-And-White-Club/nascon/app/modules/judge/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/events"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

func userOfType(userType string) func(ctx context.Context, db bun.IDB, userID int64) (*userdb.User, error) {
	return func(ctx context.Context, db bun.IDB, userID int64) (*userdb.User, error) {
		return &userdb.User{UserID: userID, UserType: userType}, nil
	}
}

func existingEvent(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error) {
	return &eventdb.Event{EventID: eventID}, nil
}

func TestAssignJudge(t *testing.T) {
	tests := []struct {
		name      string
		req       AssignRequest
		users     *FakeUsers
		events    *FakeEvents
		createErr error
		wantKind  error
		wantTrace []string
	}{
		{
			name:      "assigns a judge",
			req:       AssignRequest{JudgeID: 2, EventID: 7},
			users:     &FakeUsers{GetByIDFunc: userOfType("Judge")},
			events:    &FakeEvents{GetByIDFunc: existingEvent},
			wantTrace: []string{"Create"},
		},
		{
			name:      "user is not a judge",
			req:       AssignRequest{JudgeID: 2, EventID: 7},
			users:     &FakeUsers{GetByIDFunc: userOfType("Participant")},
			events:    &FakeEvents{GetByIDFunc: existingEvent},
			wantKind:  apperr.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "unknown user",
			req:       AssignRequest{JudgeID: 2, EventID: 7},
			users:     &FakeUsers{},
			events:    &FakeEvents{GetByIDFunc: existingEvent},
			wantKind:  apperr.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "unknown event",
			req:       AssignRequest{JudgeID: 2, EventID: 7},
			users:     &FakeUsers{GetByIDFunc: userOfType("Judge")},
			events:    &FakeEvents{},
			wantKind:  apperr.ErrNotFound,
			wantTrace: []string{},
		},
		{
			name:      "duplicate assignment",
			req:       AssignRequest{JudgeID: 2, EventID: 7},
			users:     &FakeUsers{GetByIDFunc: userOfType("Judge")},
			events:    &FakeEvents{GetByIDFunc: existingEvent},
			createErr: judgedb.ErrDuplicate,
			wantKind:  apperr.ErrConflict,
			wantTrace: []string{"Create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &FakeJudgeRepo{}
			if tt.createErr != nil {
				repo.CreateFunc = func(ctx context.Context, db bun.IDB, a *judgedb.Assignment) error { return tt.createErr }
			}
			pub := &FakePublisher{}
			svc := NewJudgeService(repo, tt.users, tt.events, pub,
				slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewNoop(), noop.NewTracerProvider().Tracer("test"), nil)

			a, err := svc.AssignJudge(context.Background(), tt.req)

			assert.Equal(t, tt.wantTrace, repo.Trace())
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				assert.Empty(t, pub.Topics)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(31), a.AssignmentID)
			assert.Equal(t, []string{events.JudgeAssigned}, pub.Topics)
		})
	}
}

func TestUnassignJudge(t *testing.T) {
	t.Run("removes and publishes", func(t *testing.T) {
		repo := &FakeJudgeRepo{
			GetByIDFunc: func(ctx context.Context, db bun.IDB, id int64) (*judgedb.Assignment, error) {
				return &judgedb.Assignment{AssignmentID: id, JudgeID: 2, EventID: 7}, nil
			},
		}
		pub := &FakePublisher{}
		svc := NewJudgeService(repo, &FakeUsers{}, &FakeEvents{}, pub,
			slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewNoop(), noop.NewTracerProvider().Tracer("test"), nil)

		require.NoError(t, svc.UnassignJudge(context.Background(), 31))
		assert.Equal(t, []string{"GetByID", "Delete"}, repo.Trace())
		assert.Equal(t, []string{events.JudgeUnassigned}, pub.Topics)
	})

	t.Run("missing", func(t *testing.T) {
		repo := &FakeJudgeRepo{}
		svc := NewJudgeService(repo, &FakeUsers{}, &FakeEvents{}, nil,
			slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewNoop(), noop.NewTracerProvider().Tracer("test"), nil)

		assert.ErrorIs(t, svc.UnassignJudge(context.Background(), 31), apperr.ErrNotFound)
	})
}

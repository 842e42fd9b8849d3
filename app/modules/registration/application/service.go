package registrationservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	registrationdomain "github.com/Black-And-White-Club/nascon/app/modules/registration/domain"
	registrationdb "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories"
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

const invitationPending = "Pending"

var _ Service = (*RegistrationService)(nil)

// RegistrationService implements the Service interface.
type RegistrationService struct {
	repo      registrationdb.Repository
	events    EventLocker
	publisher eventbus.Publisher
	runner    *operation.Runner
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	repo registrationdb.Repository,
	events EventLocker,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *RegistrationService {
	return &RegistrationService{
		repo:      repo,
		events:    events,
		publisher: publisher,
		runner:    operation.NewRunner("RegistrationService", logger, metrics, tracer, db),
	}
}

// Register adds a participant to an event. The event row is locked for the
// whole check-and-insert, so concurrent registrations for one event see each
// other's rows and the capacity check cannot be overrun.
func (s *RegistrationService) Register(ctx context.Context, req RegisterRequest) (*registrationdb.Registration, error) {
	id := fmt.Sprintf("%d/%d", req.EventID, req.UserID)
	reg, err := operation.Run(s.runner, ctx, "Register", id, func(ctx context.Context, db bun.IDB) (results.OperationResult[*registrationdb.Registration, error], error) {
		if req.UserID <= 0 || req.EventID <= 0 {
			return results.FailureResult[*registrationdb.Registration, error](apperr.Validation("UserID and EventID are required")), nil
		}

		event, err := s.events.LockByID(ctx, db, req.EventID)
		if err != nil {
			if errors.Is(err, eventdb.ErrNotFound) {
				return results.FailureResult[*registrationdb.Registration, error](apperr.NotFound("event %d not found", req.EventID)), nil
			}
			return results.OperationResult[*registrationdb.Registration, error]{}, fmt.Errorf("failed to lock event: %w", err)
		}

		if req.TeamID != nil {
			team, err := s.repo.GetTeam(ctx, db, *req.TeamID)
			if err != nil {
				if errors.Is(err, registrationdb.ErrTeamNotFound) {
					return results.FailureResult[*registrationdb.Registration, error](apperr.Validation("team %d not found", *req.TeamID)), nil
				}
				return results.OperationResult[*registrationdb.Registration, error]{}, fmt.Errorf("failed to get team: %w", err)
			}
			if team.LeaderID != req.UserID {
				return results.FailureResult[*registrationdb.Registration, error](apperr.Validation("team %d is not led by user %d", team.TeamID, req.UserID)), nil
			}
		}

		if _, err := s.repo.Get(ctx, db, req.EventID, req.UserID); err == nil {
			return results.FailureResult[*registrationdb.Registration, error](apperr.Conflict("already registered for this event")), nil
		} else if !errors.Is(err, registrationdb.ErrNotFound) {
			return results.OperationResult[*registrationdb.Registration, error]{}, fmt.Errorf("failed to check registration: %w", err)
		}

		count, err := s.repo.CountByEvent(ctx, db, req.EventID)
		if err != nil {
			return results.OperationResult[*registrationdb.Registration, error]{}, fmt.Errorf("failed to count registrations: %w", err)
		}
		if err := registrationdomain.CheckCapacity(req.EventID, count, event.MaxParticipants); err != nil {
			return results.FailureResult[*registrationdb.Registration, error](err), nil
		}

		reg := &registrationdb.Registration{
			UserID:  req.UserID,
			EventID: req.EventID,
			TeamID:  req.TeamID,
		}
		if err := s.repo.Create(ctx, db, reg); err != nil {
			switch {
			case errors.Is(err, registrationdb.ErrDuplicate):
				return results.FailureResult[*registrationdb.Registration, error](apperr.Conflict("already registered for this event")), nil
			case errors.Is(err, registrationdb.ErrUnknownReference):
				return results.FailureResult[*registrationdb.Registration, error](apperr.NotFound("user %d not found", req.UserID)), nil
			}
			return results.OperationResult[*registrationdb.Registration, error]{}, fmt.Errorf("failed to create registration: %w", err)
		}
		return results.SuccessResult[*registrationdb.Registration, error](reg), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.RegistrationCreated, events.DomainEvent{
		EntityID: reg.RegistrationID,
		ActorID:  &reg.UserID,
		EventID:  &reg.EventID,
		Summary:  fmt.Sprintf("User %d registered for event %d", reg.UserID, reg.EventID),
	})
	return reg, nil
}

func (s *RegistrationService) CountRegistrations(ctx context.Context, eventID int64) (int, error) {
	return operation.Run(s.runner, ctx, "CountRegistrations", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[int, error], error) {
		if failure, err := s.requireEvent(ctx, db, eventID); failure != nil || err != nil {
			return results.OperationResult[int, error]{Failure: failure}, err
		}
		count, err := s.repo.CountByEvent(ctx, db, eventID)
		if err != nil {
			return results.OperationResult[int, error]{}, fmt.Errorf("failed to count registrations: %w", err)
		}
		return results.SuccessResult[int, error](count), nil
	})
}

func (s *RegistrationService) GetRegistration(ctx context.Context, eventID, userID int64) (*registrationdb.Registration, error) {
	id := fmt.Sprintf("%d/%d", eventID, userID)
	return operation.Run(s.runner, ctx, "GetRegistration", id, func(ctx context.Context, db bun.IDB) (results.OperationResult[*registrationdb.Registration, error], error) {
		reg, err := s.repo.Get(ctx, db, eventID, userID)
		if err != nil {
			if errors.Is(err, registrationdb.ErrNotFound) {
				return results.FailureResult[*registrationdb.Registration, error](
					apperr.NotFound("user %d is not registered for event %d", userID, eventID),
				), nil
			}
			return results.OperationResult[*registrationdb.Registration, error]{}, fmt.Errorf("failed to get registration: %w", err)
		}
		return results.SuccessResult[*registrationdb.Registration, error](reg), nil
	})
}

func (s *RegistrationService) ListParticipants(ctx context.Context, eventID int64) ([]registrationdb.Participant, error) {
	return operation.Run(s.runner, ctx, "ListParticipants", strconv.FormatInt(eventID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]registrationdb.Participant, error], error) {
		if failure, err := s.requireEvent(ctx, db, eventID); failure != nil || err != nil {
			return results.OperationResult[[]registrationdb.Participant, error]{Failure: failure}, err
		}
		list, err := s.repo.ListParticipants(ctx, db, eventID)
		if err != nil {
			return results.OperationResult[[]registrationdb.Participant, error]{}, fmt.Errorf("failed to list participants: %w", err)
		}
		return results.SuccessResult[[]registrationdb.Participant, error](list), nil
	})
}

func (s *RegistrationService) ListUserRegistrations(ctx context.Context, userID int64) ([]registrationdb.UserRegistration, error) {
	return operation.Run(s.runner, ctx, "ListUserRegistrations", strconv.FormatInt(userID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]registrationdb.UserRegistration, error], error) {
		list, err := s.repo.ListByUser(ctx, db, userID)
		if err != nil {
			return results.OperationResult[[]registrationdb.UserRegistration, error]{}, fmt.Errorf("failed to list registrations: %w", err)
		}
		return results.SuccessResult[[]registrationdb.UserRegistration, error](list), nil
	})
}

// CreateTeam stores a team and a pending invitation per member e-mail.
func (s *RegistrationService) CreateTeam(ctx context.Context, req TeamRequest) (*registrationdb.Team, error) {
	team, err := operation.Run(s.runner, ctx, "CreateTeam", req.TeamName, func(ctx context.Context, db bun.IDB) (results.OperationResult[*registrationdb.Team, error], error) {
		name := strings.TrimSpace(req.TeamName)
		if name == "" || req.LeaderID <= 0 {
			return results.FailureResult[*registrationdb.Team, error](apperr.Validation("TeamName and LeaderID are required")), nil
		}
		members, err := registrationdomain.NormalizeInvitees(req.Members)
		if err != nil {
			return results.FailureResult[*registrationdb.Team, error](err), nil
		}

		team := &registrationdb.Team{TeamName: name, LeaderID: req.LeaderID}
		if err := s.repo.CreateTeam(ctx, db, team); err != nil {
			if errors.Is(err, registrationdb.ErrUnknownReference) {
				return results.FailureResult[*registrationdb.Team, error](apperr.NotFound("user %d not found", req.LeaderID)), nil
			}
			return results.OperationResult[*registrationdb.Team, error]{}, fmt.Errorf("failed to create team: %w", err)
		}

		invitations := make([]registrationdb.Invitation, 0, len(members))
		for _, email := range members {
			invitations = append(invitations, registrationdb.Invitation{
				TeamID: team.TeamID,
				Email:  email,
				Status: invitationPending,
			})
		}
		if err := s.repo.CreateInvitations(ctx, db, invitations); err != nil {
			return results.OperationResult[*registrationdb.Team, error]{}, fmt.Errorf("failed to record invitations: %w", err)
		}
		return results.SuccessResult[*registrationdb.Team, error](team), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TeamCreated, events.DomainEvent{
		EntityID: team.TeamID,
		ActorID:  &team.LeaderID,
		Summary:  fmt.Sprintf("Team %s created", team.TeamName),
	})
	return team, nil
}

func (s *RegistrationService) ListUserTeams(ctx context.Context, userID int64) ([]registrationdb.Team, error) {
	return operation.Run(s.runner, ctx, "ListUserTeams", strconv.FormatInt(userID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]registrationdb.Team, error], error) {
		teams, err := s.repo.ListTeamsByLeader(ctx, db, userID)
		if err != nil {
			return results.OperationResult[[]registrationdb.Team, error]{}, fmt.Errorf("failed to list teams: %w", err)
		}
		return results.SuccessResult[[]registrationdb.Team, error](teams), nil
	})
}

// requireEvent returns a NotFound failure when the event does not exist.
func (s *RegistrationService) requireEvent(ctx context.Context, db bun.IDB, eventID int64) (*error, error) {
	if _, err := s.events.GetByID(ctx, db, eventID); err != nil {
		if errors.Is(err, eventdb.ErrNotFound) {
			var failure error = apperr.NotFound("event %d not found", eventID)
			return &failure, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return nil, nil
}

func (s *RegistrationService) publish(ctx context.Context, topic string, evt events.DomainEvent) {
	evt.OccurredAt = time.Now().UTC()
	if err := eventbus.PublishEvent(ctx, s.publisher, topic, evt); err != nil {
		s.runner.Logger().WarnContext(ctx, "Failed to publish registration change",
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}

package userservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strconv"
	"strings"
	"time"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
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
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var _ Service = (*UserService)(nil)

// UserService implements the Service interface.
type UserService struct {
	repo      userdb.Repository
	publisher eventbus.Publisher
	runner    *operation.Runner
}

// NewUserService creates a new UserService.
func NewUserService(
	repo userdb.Repository,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
		runner:    operation.NewRunner("UserService", logger, metrics, tracer, db),
	}
}

// Register validates the form, hashes the password and stores the account.
// A taken e-mail is rejected by the unique index, not a prior lookup.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (int64, error) {
	id, err := operation.Run(s.runner, ctx, "Register", req.Email, func(ctx context.Context, db bun.IDB) (results.OperationResult[int64, error], error) {
		return s.registerLogic(ctx, db, req)
	})
	if err != nil {
		return 0, err
	}

	if pubErr := eventbus.PublishEvent(ctx, s.publisher, events.UserRegistered, events.DomainEvent{
		EntityID:   id,
		ActorID:    &id,
		Summary:    fmt.Sprintf("%s registered", strings.TrimSpace(req.FullName)),
		OccurredAt: time.Now().UTC(),
	}); pubErr != nil {
		s.runner.Logger().WarnContext(ctx, "Failed to publish user registration", attr.Error(pubErr))
	}
	return id, nil
}

func (s *UserService) registerLogic(ctx context.Context, db bun.IDB, req RegisterRequest) (results.OperationResult[int64, error], error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if fullName == "" || email == "" || req.Password == "" || strings.TrimSpace(req.UserType) == "" {
		return results.FailureResult[int64, error](apperr.Validation("all fields are required")), nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return results.FailureResult[int64, error](apperr.Validation("invalid email address")), nil
	}
	if len(req.Password) < minPasswordLength {
		return results.FailureResult[int64, error](apperr.Validation("password must be at least %d characters", minPasswordLength)), nil
	}
	role, ok := authdomain.ParseRole(req.UserType)
	if !ok || role == authdomain.RoleAdmin {
		return results.FailureResult[int64, error](apperr.Validation("invalid user type %q", req.UserType)), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return results.OperationResult[int64, error]{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &userdb.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		UserType:     string(role),
	}
	if phone := strings.TrimSpace(req.PhoneNumber); phone != "" {
		user.PhoneNumber = &phone
	}

	if err := s.repo.Create(ctx, db, user); err != nil {
		if errors.Is(err, userdb.ErrDuplicateEmail) {
			return results.FailureResult[int64, error](apperr.Conflict("email already in use")), nil
		}
		return results.OperationResult[int64, error]{}, fmt.Errorf("failed to create user: %w", err)
	}

	return results.SuccessResult[int64, error](user.UserID), nil
}

// GetUser returns a user profile.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*userdb.User, error) {
	return operation.Run(s.runner, ctx, "GetUser", strconv.FormatInt(userID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*userdb.User, error], error) {
		user, err := s.repo.GetByID(ctx, db, userID)
		if err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return results.FailureResult[*userdb.User, error](apperr.NotFound("user %d not found", userID)), nil
			}
			return results.OperationResult[*userdb.User, error]{}, fmt.Errorf("failed to get user: %w", err)
		}
		return results.SuccessResult[*userdb.User, error](user), nil
	})
}

// ListJudges returns every user of type Judge.
func (s *UserService) ListJudges(ctx context.Context) ([]userdb.User, error) {
	return operation.Run(s.runner, ctx, "ListJudges", string(authdomain.RoleJudge), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]userdb.User, error], error) {
		judges, err := s.repo.ListByType(ctx, db, string(authdomain.RoleJudge))
		if err != nil {
			return results.OperationResult[[]userdb.User, error]{}, fmt.Errorf("failed to list judges: %w", err)
		}
		return results.SuccessResult[[]userdb.User, error](judges), nil
	})
}

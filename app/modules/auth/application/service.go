package authservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/jwt"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/app/shared/operation"
	"github.com/Black-And-White-Club/nascon/app/shared/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"
)

// errInvalidCredentials is deliberately identical for unknown e-mails and wrong passwords.
var errInvalidCredentials = apperr.Unauthenticated("invalid email or password")

// Config holds service configuration.
type Config struct {
	TokenTTL time.Duration
}

// AuthService implements the Service interface.
type AuthService struct {
	jwtProvider authjwt.Provider
	userRepo    userdb.Repository
	config      Config
	runner      *operation.Runner
}

var _ Service = (*AuthService)(nil)

// NewService creates a new auth service.
func NewService(
	jwtProvider authjwt.Provider,
	userRepo userdb.Repository,
	config Config,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *AuthService {
	if config.TokenTTL <= 0 {
		config.TokenTTL = 24 * time.Hour
	}
	return &AuthService{
		jwtProvider: jwtProvider,
		userRepo:    userRepo,
		config:      config,
		runner:      operation.NewRunner("AuthService", logger, metrics, tracer, db),
	}
}

// Login checks the credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	return operation.Run(s.runner, ctx, "Login", email, func(ctx context.Context, db bun.IDB) (results.OperationResult[*LoginResponse, error], error) {
		if email == "" || req.Password == "" {
			return results.FailureResult[*LoginResponse, error](apperr.Validation("email and password are required")), nil
		}

		user, err := s.userRepo.GetByEmail(ctx, db, email)
		if err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return results.FailureResult[*LoginResponse, error](errInvalidCredentials), nil
			}
			return results.OperationResult[*LoginResponse, error]{}, fmt.Errorf("failed to look up user: %w", err)
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			return results.FailureResult[*LoginResponse, error](errInvalidCredentials), nil
		}

		token, err := s.jwtProvider.GenerateToken(authdomain.Session{
			UserID: user.UserID,
			Role:   authdomain.Role(user.UserType),
		}, s.config.TokenTTL)
		if err != nil {
			return results.OperationResult[*LoginResponse, error]{}, fmt.Errorf("failed to issue token: %w", err)
		}

		return results.SuccessResult[*LoginResponse, error](&LoginResponse{
			Message: "Login successful",
			Token:   token,
			User: LoginUser{
				UserID:   user.UserID,
				FullName: user.FullName,
				Email:    user.Email,
				UserType: user.UserType,
			},
		}), nil
	})
}

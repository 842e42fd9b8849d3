package authservice

import (
	"context"
	"time"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/jwt"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake JWT Provider
// ------------------------

type FakeJWTProvider struct {
	GenerateTokenFunc func(session authdomain.Session, ttl time.Duration) (string, error)
	ValidateTokenFunc func(tokenString string) (*authdomain.Session, error)
}

func (f *FakeJWTProvider) GenerateToken(session authdomain.Session, ttl time.Duration) (string, error) {
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(session, ttl)
	}
	return "token", nil
}

func (f *FakeJWTProvider) ValidateToken(tokenString string) (*authdomain.Session, error) {
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return nil, authjwt.ErrInvalidToken
}

var _ authjwt.Provider = (*FakeJWTProvider)(nil)

// ------------------------
// Fake User Repo
// ------------------------

type FakeUserRepo struct {
	GetByEmailFunc func(ctx context.Context, db bun.IDB, email string) (*userdb.User, error)
}

func (f *FakeUserRepo) Create(ctx context.Context, db bun.IDB, user *userdb.User) error {
	return nil
}

func (f *FakeUserRepo) GetByID(ctx context.Context, db bun.IDB, userID int64) (*userdb.User, error) {
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) GetByEmail(ctx context.Context, db bun.IDB, email string) (*userdb.User, error) {
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, db, email)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) ListByType(ctx context.Context, db bun.IDB, userType string) ([]userdb.User, error) {
	return nil, nil
}

var _ userdb.Repository = (*FakeUserRepo)(nil)

package authhandlers

import (
	"context"
	"time"

	authservice "github.com/Black-And-White-Club/nascon/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/nascon/app/modules/auth/infrastructure/jwt"
)

type FakeService struct {
	LoginFunc func(ctx context.Context, req authservice.LoginRequest) (*authservice.LoginResponse, error)
}

func (f *FakeService) Login(ctx context.Context, req authservice.LoginRequest) (*authservice.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, req)
	}
	return nil, nil
}

var _ authservice.Service = (*FakeService)(nil)

type FakeProvider struct {
	ValidateTokenFunc func(tokenString string) (*authdomain.Session, error)
}

func (f *FakeProvider) GenerateToken(session authdomain.Session, ttl time.Duration) (string, error) {
	return "", nil
}

func (f *FakeProvider) ValidateToken(tokenString string) (*authdomain.Session, error) {
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return nil, authjwt.ErrInvalidToken
}

var _ authjwt.Provider = (*FakeProvider)(nil)

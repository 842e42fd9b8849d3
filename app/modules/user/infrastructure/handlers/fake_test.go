package userhandlers

import (
	"context"

	userservice "github.com/Black-And-White-Club/nascon/app/modules/user/application"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
)

type FakeService struct {
	RegisterFunc   func(ctx context.Context, req userservice.RegisterRequest) (int64, error)
	GetUserFunc    func(ctx context.Context, userID int64) (*userdb.User, error)
	ListJudgesFunc func(ctx context.Context) ([]userdb.User, error)
}

func (f *FakeService) Register(ctx context.Context, req userservice.RegisterRequest) (int64, error) {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, req)
	}
	return 0, nil
}

func (f *FakeService) GetUser(ctx context.Context, userID int64) (*userdb.User, error) {
	if f.GetUserFunc != nil {
		return f.GetUserFunc(ctx, userID)
	}
	return nil, nil
}

func (f *FakeService) ListJudges(ctx context.Context) ([]userdb.User, error) {
	if f.ListJudgesFunc != nil {
		return f.ListJudgesFunc(ctx)
	}
	return []userdb.User{}, nil
}

var _ userservice.Service = (*FakeService)(nil)

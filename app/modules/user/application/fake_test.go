package userservice

import (
	"context"

	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake User Repo
// ------------------------

type FakeUserRepo struct {
	trace []string

	CreateFunc     func(ctx context.Context, db bun.IDB, user *userdb.User) error
	GetByIDFunc    func(ctx context.Context, db bun.IDB, userID int64) (*userdb.User, error)
	GetByEmailFunc func(ctx context.Context, db bun.IDB, email string) (*userdb.User, error)
	ListByTypeFunc func(ctx context.Context, db bun.IDB, userType string) ([]userdb.User, error)
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{trace: []string{}}
}

func (f *FakeUserRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeUserRepo) Create(ctx context.Context, db bun.IDB, user *userdb.User) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, user)
	}
	user.UserID = 1
	return nil
}

func (f *FakeUserRepo) GetByID(ctx context.Context, db bun.IDB, userID int64) (*userdb.User, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, userID)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) GetByEmail(ctx context.Context, db bun.IDB, email string) (*userdb.User, error) {
	f.record("GetByEmail")
	if f.GetByEmailFunc != nil {
		return f.GetByEmailFunc(ctx, db, email)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) ListByType(ctx context.Context, db bun.IDB, userType string) ([]userdb.User, error) {
	f.record("ListByType")
	if f.ListByTypeFunc != nil {
		return f.ListByTypeFunc(ctx, db, userType)
	}
	return []userdb.User{}, nil
}

func (f *FakeUserRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ userdb.Repository = (*FakeUserRepo)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	Topics []string
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.Topics = append(f.Topics, topic)
	return nil
}

package activityservice

import (
	"context"
	"time"

	activitydb "github.com/Black-And-White-Club/nascon/app/modules/activity/infrastructure/repositories"
	"github.com/uptrace/bun"
)

type FakeActivityRepo struct {
	Created []activitydb.Entry

	CreateFunc     func(ctx context.Context, db bun.IDB, entry *activitydb.Entry) (bool, error)
	ListRecentFunc func(ctx context.Context, db bun.IDB, limit int) ([]activitydb.Entry, error)
}

func (f *FakeActivityRepo) Create(ctx context.Context, db bun.IDB, entry *activitydb.Entry) (bool, error) {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, entry)
	}
	for _, e := range f.Created {
		if e.MessageID == entry.MessageID {
			return false, nil
		}
	}
	entry.ActivityID = int64(len(f.Created) + 1)
	f.Created = append(f.Created, *entry)
	return true, nil
}

func (f *FakeActivityRepo) ListRecent(ctx context.Context, db bun.IDB, limit int) ([]activitydb.Entry, error) {
	if f.ListRecentFunc != nil {
		return f.ListRecentFunc(ctx, db, limit)
	}
	return []activitydb.Entry{}, nil
}

var _ activitydb.Repository = (*FakeActivityRepo)(nil)

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

package testutils

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	judgedb "github.com/Black-And-White-Club/nascon/app/modules/judge/infrastructure/repositories"
	registrationdb "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/nascon/app/modules/user/infrastructure/repositories"
	venuedb "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/repositories"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// TestDataGenerator seeds realistic rows through the module repositories.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seq   atomic.Int64
	db    *bun.DB
}

// NewTestDataGenerator creates a generator. Without a seed the clock is used.
func NewTestDataGenerator(db *bun.DB, seed ...int64) *TestDataGenerator {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s)), db: db}
}

// User inserts a user with the given role.
func (g *TestDataGenerator) User(t *testing.T, role authdomain.Role) *userdb.User {
	t.Helper()
	phone := g.faker.Numerify("03#########")
	u := &userdb.User{
		FullName:     g.faker.Name(),
		Email:        fmt.Sprintf("%d.%s", g.seq.Add(1), g.faker.Email()),
		PasswordHash: "$2a$10$" + g.faker.LetterN(53),
		PhoneNumber:  &phone,
		UserType:     string(role),
	}
	require.NoError(t, userdb.NewRepository(g.db).Create(context.Background(), nil, u))
	return u
}

// Venue inserts an available venue.
func (g *TestDataGenerator) Venue(t *testing.T) *venuedb.Venue {
	t.Helper()
	capacity := g.faker.Number(50, 500)
	location := g.faker.City()
	v := &venuedb.Venue{
		VenueName:          g.faker.Company() + " Hall",
		Capacity:           &capacity,
		Location:           &location,
		AvailabilityStatus: true,
	}
	require.NoError(t, venuedb.NewRepository(g.db).Create(context.Background(), nil, v))
	return v
}

// Event inserts an event at venueID without the booking check.
func (g *TestDataGenerator) Event(t *testing.T, venueID int64, at time.Time, maxParticipants *int) *eventdb.Event {
	t.Helper()
	categories := []string{"Tech", "Business", "Gaming", "General"}
	e := &eventdb.Event{
		EventName:       g.faker.HipsterWord() + " " + g.faker.Noun(),
		EventType:       categories[g.faker.Number(0, len(categories)-1)],
		MaxParticipants: maxParticipants,
		EventDateTime:   at.UTC(),
		VenueID:         venueID,
	}
	require.NoError(t, eventdb.NewRepository(g.db).Create(context.Background(), nil, e))
	return e
}

// Registration registers userID for eventID directly.
func (g *TestDataGenerator) Registration(t *testing.T, userID, eventID int64) *registrationdb.Registration {
	t.Helper()
	r := &registrationdb.Registration{UserID: userID, EventID: eventID}
	require.NoError(t, registrationdb.NewRepository(g.db).Create(context.Background(), nil, r))
	return r
}

// JudgeAssignment assigns judgeID to eventID directly.
func (g *TestDataGenerator) JudgeAssignment(t *testing.T, judgeID, eventID int64) *judgedb.Assignment {
	t.Helper()
	a := &judgedb.Assignment{JudgeID: judgeID, EventID: eventID}
	require.NoError(t, judgedb.NewRepository(g.db).Create(context.Background(), nil, a))
	return a
}

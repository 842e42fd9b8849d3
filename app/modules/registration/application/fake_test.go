package registrationservice

import (
	"context"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	registrationdb "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

type callTrace struct {
	steps []string
}

func (c *callTrace) record(step string) {
	c.steps = append(c.steps, step)
}

func (c *callTrace) Trace() []string {
	out := make([]string, len(c.steps))
	copy(out, c.steps)
	return out
}

// ------------------------
// Fake Registration Repo
// ------------------------

type FakeRegistrationRepo struct {
	trace *callTrace

	CreateFunc            func(ctx context.Context, db bun.IDB, reg *registrationdb.Registration) error
	GetFunc               func(ctx context.Context, db bun.IDB, eventID, userID int64) (*registrationdb.Registration, error)
	CountByEventFunc      func(ctx context.Context, db bun.IDB, eventID int64) (int, error)
	ListParticipantsFunc  func(ctx context.Context, db bun.IDB, eventID int64) ([]registrationdb.Participant, error)
	ParticipantIDsFunc    func(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error)
	ListByUserFunc        func(ctx context.Context, db bun.IDB, userID int64) ([]registrationdb.UserRegistration, error)
	CreateTeamFunc        func(ctx context.Context, db bun.IDB, team *registrationdb.Team) error
	GetTeamFunc           func(ctx context.Context, db bun.IDB, teamID int64) (*registrationdb.Team, error)
	ListTeamsByLeaderFunc func(ctx context.Context, db bun.IDB, leaderID int64) ([]registrationdb.Team, error)
	CreateInvitationsFunc func(ctx context.Context, db bun.IDB, invitations []registrationdb.Invitation) error
}

func (f *FakeRegistrationRepo) Create(ctx context.Context, db bun.IDB, reg *registrationdb.Registration) error {
	f.trace.record("registration.Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, reg)
	}
	reg.RegistrationID = 55
	return nil
}

func (f *FakeRegistrationRepo) Get(ctx context.Context, db bun.IDB, eventID, userID int64) (*registrationdb.Registration, error) {
	f.trace.record("registration.Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, db, eventID, userID)
	}
	return nil, registrationdb.ErrNotFound
}

func (f *FakeRegistrationRepo) CountByEvent(ctx context.Context, db bun.IDB, eventID int64) (int, error) {
	f.trace.record("registration.CountByEvent")
	if f.CountByEventFunc != nil {
		return f.CountByEventFunc(ctx, db, eventID)
	}
	return 0, nil
}

func (f *FakeRegistrationRepo) ListParticipants(ctx context.Context, db bun.IDB, eventID int64) ([]registrationdb.Participant, error) {
	f.trace.record("registration.ListParticipants")
	if f.ListParticipantsFunc != nil {
		return f.ListParticipantsFunc(ctx, db, eventID)
	}
	return []registrationdb.Participant{}, nil
}

func (f *FakeRegistrationRepo) ParticipantIDs(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error) {
	f.trace.record("registration.ParticipantIDs")
	if f.ParticipantIDsFunc != nil {
		return f.ParticipantIDsFunc(ctx, db, eventID)
	}
	return []int64{}, nil
}

func (f *FakeRegistrationRepo) ListByUser(ctx context.Context, db bun.IDB, userID int64) ([]registrationdb.UserRegistration, error) {
	f.trace.record("registration.ListByUser")
	if f.ListByUserFunc != nil {
		return f.ListByUserFunc(ctx, db, userID)
	}
	return []registrationdb.UserRegistration{}, nil
}

func (f *FakeRegistrationRepo) CreateTeam(ctx context.Context, db bun.IDB, team *registrationdb.Team) error {
	f.trace.record("registration.CreateTeam")
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, db, team)
	}
	team.TeamID = 9
	return nil
}

func (f *FakeRegistrationRepo) GetTeam(ctx context.Context, db bun.IDB, teamID int64) (*registrationdb.Team, error) {
	f.trace.record("registration.GetTeam")
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, db, teamID)
	}
	return nil, registrationdb.ErrTeamNotFound
}

func (f *FakeRegistrationRepo) ListTeamsByLeader(ctx context.Context, db bun.IDB, leaderID int64) ([]registrationdb.Team, error) {
	f.trace.record("registration.ListTeamsByLeader")
	if f.ListTeamsByLeaderFunc != nil {
		return f.ListTeamsByLeaderFunc(ctx, db, leaderID)
	}
	return []registrationdb.Team{}, nil
}

func (f *FakeRegistrationRepo) CreateInvitations(ctx context.Context, db bun.IDB, invitations []registrationdb.Invitation) error {
	f.trace.record("registration.CreateInvitations")
	if f.CreateInvitationsFunc != nil {
		return f.CreateInvitationsFunc(ctx, db, invitations)
	}
	return nil
}

var _ registrationdb.Repository = (*FakeRegistrationRepo)(nil)

// ------------------------
// Fake Event Locker
// ------------------------

type FakeEvents struct {
	trace *callTrace

	GetByIDFunc  func(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
	LockByIDFunc func(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
}

func (f *FakeEvents) GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error) {
	f.trace.record("event.GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, eventID)
	}
	return nil, eventdb.ErrNotFound
}

func (f *FakeEvents) LockByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error) {
	f.trace.record("event.LockByID")
	if f.LockByIDFunc != nil {
		return f.LockByIDFunc(ctx, db, eventID)
	}
	return nil, eventdb.ErrNotFound
}

var _ EventLocker = (*FakeEvents)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	Topics []string
	Err    error
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.Topics = append(f.Topics, topic)
	return f.Err
}

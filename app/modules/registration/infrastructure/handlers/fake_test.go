package registrationhandlers

import (
	"context"

	registrationservice "github.com/Black-And-White-Club/nascon/app/modules/registration/application"
	registrationdb "github.com/Black-And-White-Club/nascon/app/modules/registration/infrastructure/repositories"
)

type FakeService struct {
	RegisterFunc              func(ctx context.Context, req registrationservice.RegisterRequest) (*registrationdb.Registration, error)
	CountRegistrationsFunc    func(ctx context.Context, eventID int64) (int, error)
	GetRegistrationFunc       func(ctx context.Context, eventID, userID int64) (*registrationdb.Registration, error)
	ListParticipantsFunc      func(ctx context.Context, eventID int64) ([]registrationdb.Participant, error)
	ListUserRegistrationsFunc func(ctx context.Context, userID int64) ([]registrationdb.UserRegistration, error)
	CreateTeamFunc            func(ctx context.Context, req registrationservice.TeamRequest) (*registrationdb.Team, error)
	ListUserTeamsFunc         func(ctx context.Context, userID int64) ([]registrationdb.Team, error)
}

func (f *FakeService) Register(ctx context.Context, req registrationservice.RegisterRequest) (*registrationdb.Registration, error) {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, req)
	}
	return &registrationdb.Registration{RegistrationID: 1, UserID: req.UserID, EventID: req.EventID}, nil
}

func (f *FakeService) CountRegistrations(ctx context.Context, eventID int64) (int, error) {
	if f.CountRegistrationsFunc != nil {
		return f.CountRegistrationsFunc(ctx, eventID)
	}
	return 0, nil
}

func (f *FakeService) GetRegistration(ctx context.Context, eventID, userID int64) (*registrationdb.Registration, error) {
	if f.GetRegistrationFunc != nil {
		return f.GetRegistrationFunc(ctx, eventID, userID)
	}
	return &registrationdb.Registration{EventID: eventID, UserID: userID}, nil
}

func (f *FakeService) ListParticipants(ctx context.Context, eventID int64) ([]registrationdb.Participant, error) {
	if f.ListParticipantsFunc != nil {
		return f.ListParticipantsFunc(ctx, eventID)
	}
	return []registrationdb.Participant{}, nil
}

func (f *FakeService) ListUserRegistrations(ctx context.Context, userID int64) ([]registrationdb.UserRegistration, error) {
	if f.ListUserRegistrationsFunc != nil {
		return f.ListUserRegistrationsFunc(ctx, userID)
	}
	return []registrationdb.UserRegistration{}, nil
}

func (f *FakeService) CreateTeam(ctx context.Context, req registrationservice.TeamRequest) (*registrationdb.Team, error) {
	if f.CreateTeamFunc != nil {
		return f.CreateTeamFunc(ctx, req)
	}
	return &registrationdb.Team{TeamID: 1, TeamName: req.TeamName, LeaderID: req.LeaderID}, nil
}

func (f *FakeService) ListUserTeams(ctx context.Context, userID int64) ([]registrationdb.Team, error) {
	if f.ListUserTeamsFunc != nil {
		return f.ListUserTeamsFunc(ctx, userID)
	}
	return []registrationdb.Team{}, nil
}

var _ registrationservice.Service = (*FakeService)(nil)

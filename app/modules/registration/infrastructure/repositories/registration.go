package registrationdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Black-And-White-Club/nascon/app/shared/database"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new registration repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, reg *Registration) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(reg).
		ExcludeColumn("registration_id", "registration_date").
		Returning("registration_id, registration_date").
		Exec(ctx)
	if err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return ErrDuplicate
		case database.IsForeignKeyViolation(err):
			return ErrUnknownReference
		}
		return fmt.Errorf("registrationdb.Create: %w", err)
	}
	return nil
}

func (r *Impl) Get(ctx context.Context, db bun.IDB, eventID, userID int64) (*Registration, error) {
	db = r.resolveDB(db)
	reg := new(Registration)
	err := db.NewSelect().
		Model(reg).
		Where("r.event_id = ?", eventID).
		Where("r.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("registrationdb.Get: %w", err)
	}
	return reg, nil
}

func (r *Impl) CountByEvent(ctx context.Context, db bun.IDB, eventID int64) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Model((*Registration)(nil)).
		Where("r.event_id = ?", eventID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("registrationdb.CountByEvent: %w", err)
	}
	return count, nil
}

func (r *Impl) ListParticipants(ctx context.Context, db bun.IDB, eventID int64) ([]Participant, error) {
	db = r.resolveDB(db)
	participants := make([]Participant, 0)
	err := db.NewSelect().
		TableExpr("registrations AS r").
		Join("JOIN users AS u ON u.user_id = r.user_id").
		Join("LEFT JOIN teams AS t ON t.team_id = r.team_id").
		ColumnExpr("u.user_id, u.full_name, u.email, t.team_name, r.registration_date").
		Where("r.event_id = ?", eventID).
		OrderExpr("r.registration_date ASC, r.registration_id ASC").
		Scan(ctx, &participants)
	if err != nil {
		return nil, fmt.Errorf("registrationdb.ListParticipants: %w", err)
	}
	return participants, nil
}

func (r *Impl) ParticipantIDs(ctx context.Context, db bun.IDB, eventID int64) ([]int64, error) {
	db = r.resolveDB(db)
	ids := make([]int64, 0)
	err := db.NewSelect().
		Model((*Registration)(nil)).
		Column("r.user_id").
		Where("r.event_id = ?", eventID).
		OrderExpr("r.user_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("registrationdb.ParticipantIDs: %w", err)
	}
	return ids, nil
}

func (r *Impl) ListByUser(ctx context.Context, db bun.IDB, userID int64) ([]UserRegistration, error) {
	db = r.resolveDB(db)
	regs := make([]UserRegistration, 0)
	err := db.NewSelect().
		TableExpr("registrations AS r").
		Join("JOIN events AS e ON e.event_id = r.event_id").
		Join("LEFT JOIN venues AS v ON v.venue_id = e.venue_id").
		Join("LEFT JOIN teams AS t ON t.team_id = r.team_id").
		ColumnExpr("r.registration_id, r.event_id, e.event_name, e.event_type, e.event_date_time").
		ColumnExpr("v.venue_name, r.team_id, t.team_name, r.registration_date").
		Where("r.user_id = ?", userID).
		OrderExpr("e.event_date_time DESC, r.registration_id DESC").
		Scan(ctx, &regs)
	if err != nil {
		return nil, fmt.Errorf("registrationdb.ListByUser: %w", err)
	}
	return regs, nil
}

func (r *Impl) CreateTeam(ctx context.Context, db bun.IDB, team *Team) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(team).
		ExcludeColumn("team_id", "created_at").
		Returning("team_id, created_at").
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return ErrUnknownReference
		}
		return fmt.Errorf("registrationdb.CreateTeam: %w", err)
	}
	return nil
}

func (r *Impl) GetTeam(ctx context.Context, db bun.IDB, teamID int64) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	if err := db.NewSelect().Model(team).Where("t.team_id = ?", teamID).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("registrationdb.GetTeam: %w", err)
	}
	return team, nil
}

func (r *Impl) ListTeamsByLeader(ctx context.Context, db bun.IDB, leaderID int64) ([]Team, error) {
	db = r.resolveDB(db)
	teams := make([]Team, 0)
	err := db.NewSelect().
		Model(&teams).
		Where("t.leader_id = ?", leaderID).
		OrderExpr("t.created_at DESC, t.team_id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("registrationdb.ListTeamsByLeader: %w", err)
	}
	return teams, nil
}

func (r *Impl) CreateInvitations(ctx context.Context, db bun.IDB, invitations []Invitation) error {
	if len(invitations) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(&invitations).
		ExcludeColumn("invitation_id", "created_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("registrationdb.CreateInvitations: %w", err)
	}
	return nil
}

package userdb

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

// NewRepository creates a new user repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, user *User) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(user).
		ExcludeColumn("user_id", "created_at").
		Returning("user_id, created_at").
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("userdb.Create: %w", err)
	}
	return nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, userID int64) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().
		Model(user).
		Where("u.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("userdb.GetByID: %w", err)
	}
	return user, nil
}

func (r *Impl) GetByEmail(ctx context.Context, db bun.IDB, email string) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().
		Model(user).
		Where("u.email = ?", email).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("userdb.GetByEmail: %w", err)
	}
	return user, nil
}

func (r *Impl) ListByType(ctx context.Context, db bun.IDB, userType string) ([]User, error) {
	db = r.resolveDB(db)
	users := make([]User, 0)
	err := db.NewSelect().
		Model(&users).
		Where("u.user_type = ?", userType).
		OrderExpr("u.full_name ASC, u.user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("userdb.ListByType: %w", err)
	}
	return users, nil
}

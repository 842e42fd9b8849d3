package userdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for user persistence.
type Repository interface {
	// Create inserts a user and fills in its id. Returns ErrDuplicateEmail on a taken e-mail.
	Create(ctx context.Context, db bun.IDB, user *User) error

	// GetByID retrieves a user by id.
	GetByID(ctx context.Context, db bun.IDB, userID int64) (*User, error)

	// GetByEmail retrieves a user by e-mail.
	GetByEmail(ctx context.Context, db bun.IDB, email string) (*User, error)

	// ListByType lists users of one type ordered by name.
	ListByType(ctx context.Context, db bun.IDB, userType string) ([]User, error)
}

package userdb

import (
	"time"

	"github.com/uptrace/bun"
)

// User is an account of any type: participant, organizer, sponsor, judge or admin.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	UserID        int64     `bun:"user_id,pk,autoincrement" json:"UserID"`
	FullName      string    `bun:"full_name,notnull" json:"FullName"`
	Email         string    `bun:"email,notnull,unique" json:"Email"`
	PasswordHash  string    `bun:"password_hash,notnull" json:"-"`
	PhoneNumber   *string   `bun:"phone_number,nullzero" json:"PhoneNumber,omitempty"`
	UserType      string    `bun:"user_type,notnull" json:"UserType"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"CreatedAt"`
}

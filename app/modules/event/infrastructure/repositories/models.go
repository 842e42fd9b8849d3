package eventdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Event is a scheduled competition or session at a venue.
type Event struct {
	bun.BaseModel   `bun:"table:events,alias:e"`
	EventID         int64     `bun:"event_id,pk,autoincrement" json:"EventID"`
	EventName       string    `bun:"event_name,notnull" json:"EventName"`
	EventType       string    `bun:"event_type,notnull" json:"EventType"`
	Description     *string   `bun:"description" json:"Description"`
	Rules           *string   `bun:"rules" json:"Rules"`
	MaxParticipants *int      `bun:"max_participants" json:"MaxParticipants"`
	RegistrationFee *float64  `bun:"registration_fee" json:"RegistrationFee"`
	EventDateTime   time.Time `bun:"event_date_time,notnull" json:"EventDateTime"`
	VenueID         int64     `bun:"venue_id,notnull" json:"VenueID"`
}

// Judge is a judge assigned to an event.
type Judge struct {
	UserID   int64  `bun:"user_id" json:"UserID"`
	FullName string `bun:"full_name" json:"FullName"`
	Email    string `bun:"email" json:"Email"`
}

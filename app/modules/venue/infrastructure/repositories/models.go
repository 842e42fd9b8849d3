package venuedb

import (
	"time"

	"github.com/uptrace/bun"
)

// Venue is a bookable location.
type Venue struct {
	bun.BaseModel      `bun:"table:venues,alias:v"`
	VenueID            int64   `bun:"venue_id,pk,autoincrement" json:"VenueID"`
	VenueName          string  `bun:"venue_name,notnull" json:"VenueName"`
	Capacity           *int    `bun:"capacity" json:"Capacity"`
	Location           *string `bun:"location" json:"Location"`
	AvailabilityStatus bool    `bun:"availability_status,notnull" json:"AvailabilityStatus"`
}

// Schedule is one booking joined with its venue.
type Schedule struct {
	VenueID       int64     `bun:"venue_id" json:"VenueID"`
	VenueName     string    `bun:"venue_name" json:"VenueName"`
	EventID       int64     `bun:"event_id" json:"EventID"`
	EventName     string    `bun:"event_name" json:"EventName"`
	EventType     string    `bun:"event_type" json:"EventType"`
	EventDateTime time.Time `bun:"event_date_time" json:"EventDateTime"`
}

type bookingRow struct {
	EventID       int64     `bun:"event_id"`
	EventDateTime time.Time `bun:"event_date_time"`
}

type usageRow struct {
	VenueID         int64  `bun:"venue_id"`
	VenueName       string `bun:"venue_name"`
	Capacity        *int   `bun:"capacity"`
	EventID         *int64 `bun:"event_id"`
	MaxParticipants *int   `bun:"max_participants"`
	Registrations   int    `bun:"registrations"`
}

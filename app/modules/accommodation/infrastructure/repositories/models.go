package accommodationdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Accommodation is a participant's request for a room.
type Accommodation struct {
	bun.BaseModel   `bun:"table:accommodations,alias:a"`
	AccommodationID int64     `bun:"accommodation_id,pk,autoincrement" json:"AccommodationID"`
	UserID          int64     `bun:"user_id,notnull" json:"UserID"`
	RoomNumber      *string   `bun:"room_number" json:"RoomNumber"`
	Budget          *float64  `bun:"budget" json:"Budget"`
	CheckInDate     time.Time `bun:"check_in_date,notnull,type:date" json:"CheckInDate"`
	CheckOutDate    time.Time `bun:"check_out_date,notnull,type:date" json:"CheckOutDate"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp" json:"CreatedAt"`
}

// Detail is an accommodation joined with its requester.
type Detail struct {
	Accommodation `bun:",extend"`
	FullName      string `bun:"full_name" json:"FullName"`
	Email         string `bun:"email" json:"Email"`
	Status        string `bun:"-" json:"Status"`
}

// Filter narrows Search. Zero values match everything.
type Filter struct {
	Name        string
	RoomNumber  string
	CheckInDate *time.Time
	Status      string
}

package accommodationservice

import (
	"context"
	"time"

	accommodationdomain "github.com/Black-And-White-Club/nascon/app/modules/accommodation/domain"
	accommodationdb "github.com/Black-And-White-Club/nascon/app/modules/accommodation/infrastructure/repositories"
)

// CreateRequest asks for a room. Dates are YYYY-MM-DD or any phrase the
// date parser understands.
type CreateRequest struct {
	UserID       int64     `json:"UserID"`
	CheckInDate  string    `json:"CheckInDate"`
	CheckOutDate string    `json:"CheckOutDate"`
	Budget       FlexFloat `json:"Budget"`
}

// UpdateRequest edits a request. Empty dates keep the stored value; an empty
// RoomNumber unassigns the room.
type UpdateRequest struct {
	RoomNumber   string    `json:"RoomNumber"`
	Budget       FlexFloat `json:"Budget"`
	CheckInDate  string    `json:"CheckInDate"`
	CheckOutDate string    `json:"CheckOutDate"`
}

// SearchQuery holds the search filters as sent by the client.
type SearchQuery struct {
	Name        string
	RoomNumber  string
	CheckInDate string
	Status      string
}

// Report lists every request with summary statistics.
type Report struct {
	Accommodations []accommodationdb.Detail       `json:"accommodations"`
	Statistics     accommodationdomain.Statistics `json:"statistics"`
}

// DateParser turns client date strings into times.
type DateParser interface {
	Parse(raw string) (time.Time, error)
}

// Service defines the accommodation operations.
type Service interface {
	Request(ctx context.Context, req CreateRequest) (*accommodationdb.Accommodation, error)
	ListUserAccommodation(ctx context.Context, userID int64) ([]accommodationdb.Accommodation, error)
	Update(ctx context.Context, accommodationID int64, req UpdateRequest) (*accommodationdb.Accommodation, error)
	Delete(ctx context.Context, accommodationID int64, ownerID *int64) error
	Search(ctx context.Context, q SearchQuery) ([]accommodationdb.Detail, error)
	Report(ctx context.Context) (*Report, error)
}

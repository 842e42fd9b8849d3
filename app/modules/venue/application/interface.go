package venueservice

import (
	"context"

	venuedomain "github.com/Black-And-White-Club/nascon/app/modules/venue/domain"
	venuedb "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/repositories"
)

// VenueRequest is the create/update form.
type VenueRequest struct {
	VenueName          string  `json:"VenueName"`
	Capacity           *int    `json:"Capacity"`
	Location           *string `json:"Location"`
	AvailabilityStatus *bool   `json:"AvailabilityStatus,omitempty"`
}

// AvailabilityQuery asks whether a venue is free at DateTime.
type AvailabilityQuery struct {
	VenueID        int64
	DateTime       string
	ExcludeEventID *int64
}

// Service defines the venue operations.
type Service interface {
	ListVenues(ctx context.Context) ([]venuedb.Venue, error)
	GetVenue(ctx context.Context, venueID int64) (*venuedb.Venue, error)
	CreateVenue(ctx context.Context, req VenueRequest) (int64, error)
	UpdateVenue(ctx context.Context, venueID int64, req VenueRequest) (*venuedb.Venue, error)
	DeleteVenue(ctx context.Context, venueID int64) error
	CheckAvailability(ctx context.Context, q AvailabilityQuery) (venuedomain.Availability, error)
	ListSchedules(ctx context.Context) ([]venuedb.Schedule, error)
	Utilization(ctx context.Context) (venuedomain.Utilization, error)
	UtilizationChart(ctx context.Context) ([]byte, error)
}

package venuehandlers

import (
	"context"

	venueservice "github.com/Black-And-White-Club/nascon/app/modules/venue/application"
	venuedomain "github.com/Black-And-White-Club/nascon/app/modules/venue/domain"
	venuedb "github.com/Black-And-White-Club/nascon/app/modules/venue/infrastructure/repositories"
)

type FakeService struct {
	ListVenuesFunc        func(ctx context.Context) ([]venuedb.Venue, error)
	GetVenueFunc          func(ctx context.Context, venueID int64) (*venuedb.Venue, error)
	CreateVenueFunc       func(ctx context.Context, req venueservice.VenueRequest) (int64, error)
	UpdateVenueFunc       func(ctx context.Context, venueID int64, req venueservice.VenueRequest) (*venuedb.Venue, error)
	DeleteVenueFunc       func(ctx context.Context, venueID int64) error
	CheckAvailabilityFunc func(ctx context.Context, q venueservice.AvailabilityQuery) (venuedomain.Availability, error)
	ListSchedulesFunc     func(ctx context.Context) ([]venuedb.Schedule, error)
	UtilizationFunc       func(ctx context.Context) (venuedomain.Utilization, error)
	UtilizationChartFunc  func(ctx context.Context) ([]byte, error)
}

func (f *FakeService) ListVenues(ctx context.Context) ([]venuedb.Venue, error) {
	if f.ListVenuesFunc != nil {
		return f.ListVenuesFunc(ctx)
	}
	return []venuedb.Venue{}, nil
}

func (f *FakeService) GetVenue(ctx context.Context, venueID int64) (*venuedb.Venue, error) {
	if f.GetVenueFunc != nil {
		return f.GetVenueFunc(ctx, venueID)
	}
	return &venuedb.Venue{VenueID: venueID}, nil
}

func (f *FakeService) CreateVenue(ctx context.Context, req venueservice.VenueRequest) (int64, error) {
	if f.CreateVenueFunc != nil {
		return f.CreateVenueFunc(ctx, req)
	}
	return 1, nil
}

func (f *FakeService) UpdateVenue(ctx context.Context, venueID int64, req venueservice.VenueRequest) (*venuedb.Venue, error) {
	if f.UpdateVenueFunc != nil {
		return f.UpdateVenueFunc(ctx, venueID, req)
	}
	return &venuedb.Venue{VenueID: venueID, VenueName: req.VenueName}, nil
}

func (f *FakeService) DeleteVenue(ctx context.Context, venueID int64) error {
	if f.DeleteVenueFunc != nil {
		return f.DeleteVenueFunc(ctx, venueID)
	}
	return nil
}

func (f *FakeService) CheckAvailability(ctx context.Context, q venueservice.AvailabilityQuery) (venuedomain.Availability, error) {
	if f.CheckAvailabilityFunc != nil {
		return f.CheckAvailabilityFunc(ctx, q)
	}
	return venuedomain.Availability{IsAvailable: true}, nil
}

func (f *FakeService) ListSchedules(ctx context.Context) ([]venuedb.Schedule, error) {
	if f.ListSchedulesFunc != nil {
		return f.ListSchedulesFunc(ctx)
	}
	return []venuedb.Schedule{}, nil
}

func (f *FakeService) Utilization(ctx context.Context) (venuedomain.Utilization, error) {
	if f.UtilizationFunc != nil {
		return f.UtilizationFunc(ctx)
	}
	return venuedomain.Utilization{Venues: []venuedomain.VenueUsage{}}, nil
}

func (f *FakeService) UtilizationChart(ctx context.Context) ([]byte, error) {
	if f.UtilizationChartFunc != nil {
		return f.UtilizationChartFunc(ctx)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

var _ venueservice.Service = (*FakeService)(nil)

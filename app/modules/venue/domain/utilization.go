package venuedomain

import "math"

// UsageRow is one venue/event pair with its registration count. EventID is
// nil for a venue that hosts nothing.
type UsageRow struct {
	VenueID         int64
	VenueName       string
	Capacity        *int
	EventID         *int64
	MaxParticipants *int
	Registrations   int
}

// VenueUsage summarizes one venue.
type VenueUsage struct {
	VenueID     int64   `json:"VenueID"`
	VenueName   string  `json:"VenueName"`
	EventCount  int     `json:"EventCount"`
	AverageFill float64 `json:"AverageFill"`
}

// Utilization is the venue utilization report.
type Utilization struct {
	TotalVenues        int          `json:"totalVenues"`
	TotalEvents        int          `json:"totalEvents"`
	AverageUtilization float64      `json:"averageUtilization"`
	Venues             []VenueUsage `json:"venues"`
}

// ComputeUtilization folds rows into per-venue usage, keeping venue order.
//
// An event's fill is registrations divided by the smaller of the venue
// capacity and the event's participant cap. Events where neither is a
// positive number are counted but not measured. AverageUtilization is the
// mean fill over every measured event.
func ComputeUtilization(rows []UsageRow) Utilization {
	type acc struct {
		usage    VenueUsage
		fillSum  float64
		measured int
	}

	order := make([]int64, 0)
	byVenue := make(map[int64]*acc)
	var totalFill float64
	var totalMeasured, totalEvents int

	for _, row := range rows {
		a, ok := byVenue[row.VenueID]
		if !ok {
			a = &acc{usage: VenueUsage{VenueID: row.VenueID, VenueName: row.VenueName}}
			byVenue[row.VenueID] = a
			order = append(order, row.VenueID)
		}
		if row.EventID == nil {
			continue
		}

		a.usage.EventCount++
		totalEvents++

		denom, ok := fillDenominator(row.Capacity, row.MaxParticipants)
		if !ok {
			continue
		}
		fill := float64(row.Registrations) / float64(denom)
		a.fillSum += fill
		a.measured++
		totalFill += fill
		totalMeasured++
	}

	out := Utilization{
		TotalVenues: len(order),
		TotalEvents: totalEvents,
		Venues:      make([]VenueUsage, 0, len(order)),
	}
	for _, id := range order {
		a := byVenue[id]
		if a.measured > 0 {
			a.usage.AverageFill = round2(a.fillSum / float64(a.measured))
		}
		out.Venues = append(out.Venues, a.usage)
	}
	if totalMeasured > 0 {
		out.AverageUtilization = round2(totalFill / float64(totalMeasured))
	}
	return out
}

func fillDenominator(capacity, maxParticipants *int) (int, bool) {
	denom := 0
	if capacity != nil && *capacity > 0 {
		denom = *capacity
	}
	if maxParticipants != nil && *maxParticipants > 0 && (denom == 0 || *maxParticipants < denom) {
		denom = *maxParticipants
	}
	return denom, denom > 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

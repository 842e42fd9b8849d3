package venuedomain

import (
	"sort"
	"time"
)

// DefaultConflictWindow is the minimum spacing between two bookings at one venue.
const DefaultConflictWindow = 4 * time.Hour

// Booking is an event scheduled at a venue.
type Booking struct {
	EventID  int64
	DateTime time.Time
}

// Availability is the outcome of a conflict check.
type Availability struct {
	IsAvailable        bool   `json:"isAvailable"`
	ConflictingEventID *int64 `json:"conflictingEventId,omitempty"`
}

// CheckAvailability decides whether candidate can be booked next to bookings.
//
// A booking conflicts when it lies strictly less than window away from
// candidate in either direction; exactly window apart is allowed. The booking
// with excludeEventID is ignored so an event never conflicts with itself.
// When several bookings conflict the closest one is reported, ties going to
// the lowest event id. A non-positive window uses DefaultConflictWindow.
func CheckAvailability(bookings []Booking, candidate time.Time, excludeEventID *int64, window time.Duration) Availability {
	if window <= 0 {
		window = DefaultConflictWindow
	}

	var conflicts []Booking
	for _, b := range bookings {
		if excludeEventID != nil && b.EventID == *excludeEventID {
			continue
		}
		if absDuration(b.DateTime.Sub(candidate)) < window {
			conflicts = append(conflicts, b)
		}
	}

	if len(conflicts) == 0 {
		return Availability{IsAvailable: true}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		di := absDuration(conflicts[i].DateTime.Sub(candidate))
		dj := absDuration(conflicts[j].DateTime.Sub(candidate))
		if di != dj {
			return di < dj
		}
		return conflicts[i].EventID < conflicts[j].EventID
	})

	id := conflicts[0].EventID
	return Availability{IsAvailable: false, ConflictingEventID: &id}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

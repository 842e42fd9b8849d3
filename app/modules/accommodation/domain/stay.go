// Package accommodationdomain holds the rules for accommodation requests.
package accommodationdomain

import (
	"math"
	"strings"
	"time"

	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
)

const (
	StatusAssigned = "Assigned"
	StatusPending  = "Pending"
)

// Stay is a check-in/check-out pair truncated to whole days.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStay validates that check-out falls on a later day than check-in.
func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in := day(checkIn)
	out := day(checkOut)
	if !out.After(in) {
		return Stay{}, apperr.Validation("Check-out date must be after check-in date")
	}
	return Stay{CheckIn: in, CheckOut: out}, nil
}

// Active reports whether the stay has not ended before today.
func (s Stay) Active(now time.Time) bool {
	return !s.CheckOut.Before(day(now))
}

func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today is now truncated to a UTC date.
func Today(now time.Time) time.Time { return day(now) }

// Status is Assigned once a room number is set.
func Status(roomNumber *string) string {
	if roomNumber != nil && strings.TrimSpace(*roomNumber) != "" {
		return StatusAssigned
	}
	return StatusPending
}

// ParseStatusFilter accepts "", "assigned" or "pending" in any case.
func ParseStatusFilter(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return "", nil
	case "assigned":
		return StatusAssigned, nil
	case "pending":
		return StatusPending, nil
	}
	return "", apperr.Validation("invalid status %q: must be assigned or pending", raw)
}

// Statistics summarises a set of requests.
type Statistics struct {
	TotalRequests   int     `json:"totalRequests"`
	AssignedRooms   int     `json:"assignedRooms"`
	PendingRequests int     `json:"pendingRequests"`
	OccupancyRate   float64 `json:"occupancyRate"`
}

// Summarize counts statuses. OccupancyRate is the assigned share as a
// percentage with two decimals.
func Summarize(statuses []string) Statistics {
	var s Statistics
	for _, st := range statuses {
		s.TotalRequests++
		if st == StatusAssigned {
			s.AssignedRooms++
		} else {
			s.PendingRequests++
		}
	}
	if s.TotalRequests > 0 {
		s.OccupancyRate = math.Round(float64(s.AssignedRooms)/float64(s.TotalRequests)*10000) / 100
	}
	return s
}

package eventdomain

import (
	"strings"
	"time"

	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
)

// Category is the kind of competition or session an event is.
type Category string

const (
	CategoryTech     Category = "Tech"
	CategoryBusiness Category = "Business"
	CategoryGaming   Category = "Gaming"
	CategoryGeneral  Category = "General"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryTech, CategoryBusiness, CategoryGaming, CategoryGeneral}

// ParseCategory matches raw case-insensitively.
func ParseCategory(raw string) (Category, error) {
	raw = strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(raw, string(c)) {
			return c, nil
		}
	}
	return "", apperr.Validation("invalid event type %q", raw)
}

// ReminderTime returns when the reminder for an event starting at start
// should fire. ok is false when that moment has already passed.
func ReminderTime(start time.Time, lead time.Duration, now time.Time) (at time.Time, ok bool) {
	at = start.Add(-lead)
	return at, at.After(now)
}

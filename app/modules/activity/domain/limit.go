// Package activitydomain holds the activity feed rules.
package activitydomain

import "github.com/Black-And-White-Club/nascon/app/shared/apperr"

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ClampLimit caps limit at MaxLimit. Non-positive limits are rejected.
func ClampLimit(limit int) (int, error) {
	if limit < 1 {
		return 0, apperr.Validation("limit must be positive")
	}
	if limit > MaxLimit {
		return MaxLimit, nil
	}
	return limit, nil
}

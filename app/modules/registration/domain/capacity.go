package registrationdomain

import (
	"net/mail"
	"strings"

	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
)

// CheckCapacity rejects a registration when the event is full. A nil limit
// means the event is unlimited.
func CheckCapacity(eventID int64, registered int, limit *int) error {
	if limit == nil {
		return nil
	}
	if registered >= *limit {
		return apperr.Conflict("event %d is full", eventID).
			With("registered", registered).
			With("maxParticipants", *limit)
	}
	return nil
}

// NormalizeInvitees trims, lowercases and de-duplicates member e-mails,
// dropping blanks. Any malformed address fails the whole list.
func NormalizeInvitees(members []string) ([]string, error) {
	seen := make(map[string]struct{}, len(members))
	out := make([]string, 0, len(members))
	for _, m := range members {
		email := strings.ToLower(strings.TrimSpace(m))
		if email == "" {
			continue
		}
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, apperr.Validation("invalid member email %q", m)
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out, nil
}

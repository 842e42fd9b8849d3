package scoredomain

import (
	"math"
	"strings"

	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
)

// Round is a competition phase within an event.
type Round string

const (
	RoundPrelims    Round = "Prelims"
	RoundSemiFinals Round = "Semi-Finals"
	RoundFinals     Round = "Finals"

	DefaultRound = RoundFinals
)

const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Rounds lists the valid rounds in competition order.
var Rounds = []Round{RoundPrelims, RoundSemiFinals, RoundFinals}

// ParseRound validates raw. An empty value selects DefaultRound.
func ParseRound(raw string) (Round, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultRound, nil
	}
	for _, r := range Rounds {
		if string(r) == raw {
			return r, nil
		}
	}
	return "", apperr.Validation("invalid round %q: must be one of Prelims, Semi-Finals, Finals", raw)
}

// ValidateScore rejects values outside [MinScore, MaxScore]. Values are never clamped.
func ValidateScore(score float64) error {
	if math.IsNaN(score) || score < MinScore || score > MaxScore {
		return apperr.Validation("score must be between 0 and 100")
	}
	return nil
}

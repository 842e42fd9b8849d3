// Package timeparse turns the date-time strings sent by the web client into times.
package timeparse

import (
	"regexp"
	"strings"
	"time"

	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Clock supplies the reference time for relative phrases.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// layouts are tried in order before natural-language parsing.
var layouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var compactTime = regexp.MustCompile(`(\d{1,2})(\d{2})(am|pm)`)

// Parser accepts RFC3339, HTML datetime-local values and English phrases
// such as "next friday at 3pm".
type Parser struct {
	w     *when.Parser
	clock Clock
	loc   *time.Location
}

// NewParser creates a Parser. Zone-less inputs are read in loc (UTC when nil).
func NewParser(clock Clock, loc *time.Location) *Parser {
	if clock == nil {
		clock = RealClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{w: w, clock: clock, loc: loc}
}

// Parse returns raw as a UTC time. Unrecognized input is a validation error.
func (p *Parser) Parse(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, apperr.Validation("date-time is required")
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, p.loc); err == nil {
			return t.UTC(), nil
		}
	}

	phrase := strings.ToLower(raw)
	phrase = strings.ReplaceAll(phrase, "today ", "today at ")
	phrase = compactTime.ReplaceAllString(phrase, "$1:$2 $3")

	r, err := p.w.Parse(phrase, p.clock.Now().In(p.loc))
	if err != nil || r == nil {
		return time.Time{}, apperr.Validation("unrecognized date-time %q", raw)
	}
	return r.Time.Truncate(time.Minute).UTC(), nil
}

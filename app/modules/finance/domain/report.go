package financedomain

import (
	"math"
	"time"

	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
)

// ReportType selects one of the finance reports.
type ReportType string

const (
	ReportRevenue      ReportType = "revenue"
	ReportEvents       ReportType = "events"
	ReportSponsorships ReportType = "sponsorships"
	ReportPayments     ReportType = "payments"
)

func ParseReportType(raw string) (ReportType, error) {
	switch t := ReportType(raw); t {
	case ReportRevenue, ReportEvents, ReportSponsorships, ReportPayments:
		return t, nil
	}
	return "", apperr.Validation("unknown report type %q: must be one of revenue, events, sponsorships, payments", raw)
}

// Range bounds a report by payment date. A zero bound is open. To is
// exclusive.
type Range struct {
	From time.Time
	To   time.Time
}

const dateLayout = "2006-01-02"

// ParseRange reads either an explicit startDate/endDate pair (endDate
// inclusive) or a trailing period ending at now. Empty input and "all" are
// unbounded.
func ParseRange(period, startDate, endDate string, now time.Time) (Range, error) {
	if startDate != "" || endDate != "" {
		if startDate == "" || endDate == "" {
			return Range{}, apperr.Validation("startDate and endDate must be given together")
		}
		from, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return Range{}, apperr.Validation("invalid startDate %q: expected YYYY-MM-DD", startDate)
		}
		to, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return Range{}, apperr.Validation("invalid endDate %q: expected YYYY-MM-DD", endDate)
		}
		if to.Before(from) {
			return Range{}, apperr.Validation("endDate must not be before startDate")
		}
		return Range{From: from, To: to.AddDate(0, 0, 1)}, nil
	}

	now = now.UTC()
	switch period {
	case "", "all":
		return Range{}, nil
	case "month":
		return Range{From: now.AddDate(0, -1, 0), To: now}, nil
	case "quarter":
		return Range{From: now.AddDate(0, -3, 0), To: now}, nil
	case "year":
		return Range{From: now.AddDate(-1, 0, 0), To: now}, nil
	}
	return Range{}, apperr.Validation("unknown period %q: must be one of month, quarter, year", period)
}

// RevenueLine is one category of the revenue report.
type RevenueLine struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// RevenueBreakdown splits revenue into registration fees and sponsorships.
// Percentages are rounded to two places and are zero when there is no revenue.
func RevenueBreakdown(registrationFees, sponsorships float64) []RevenueLine {
	total := registrationFees + sponsorships
	share := func(v float64) float64 {
		if total == 0 {
			return 0
		}
		return math.Round(v/total*10000) / 100
	}
	return []RevenueLine{
		{Category: "Registration Fees", Amount: registrationFees, Percentage: share(registrationFees)},
		{Category: "Sponsorships", Amount: sponsorships, Percentage: share(sponsorships)},
	}
}

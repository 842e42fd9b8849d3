package financedomain

import "github.com/Black-And-White-Club/nascon/app/shared/apperr"

// Package is one tier of the sponsorship catalogue.
type Package struct {
	Type      string   `json:"type"`
	MinAmount float64  `json:"minAmount"`
	Benefits  []string `json:"benefits"`
}

var catalogue = []Package{
	{
		Type:      "Title",
		MinAmount: 500000,
		Benefits: []string{
			"Naming rights for the convention",
			"Logo on all banners, stage and merchandise",
			"Keynote slot at the opening ceremony",
			"Premium booth in the main hall",
		},
	},
	{
		Type:      "Gold",
		MinAmount: 250000,
		Benefits: []string{
			"Logo on event banners and website",
			"Booth in the main hall",
			"Mentions during award ceremonies",
		},
	},
	{
		Type:      "Silver",
		MinAmount: 100000,
		Benefits: []string{
			"Logo on the website",
			"Shared booth space",
		},
	},
	{
		Type:      "Media Partner",
		MinAmount: 50000,
		Benefits: []string{
			"Press access to all events",
			"Logo on social media announcements",
		},
	},
}

// Packages returns the catalogue in display order. The result is a copy.
func Packages() []Package {
	out := make([]Package, len(catalogue))
	for i, p := range catalogue {
		p.Benefits = append([]string(nil), p.Benefits...)
		out[i] = p
	}
	return out
}

// CheckContract validates a contract against the catalogue and returns the
// matched package.
func CheckContract(sponsorshipType string, amount float64) (Package, error) {
	for _, p := range catalogue {
		if p.Type != sponsorshipType {
			continue
		}
		if amount < p.MinAmount {
			return p, apperr.Validation("%s sponsorship requires at least %.2f", p.Type, p.MinAmount).
				With("minAmount", p.MinAmount)
		}
		return p, nil
	}
	return Package{}, apperr.Validation("unknown sponsorship type %q", sponsorshipType)
}

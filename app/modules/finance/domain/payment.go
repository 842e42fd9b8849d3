// Package financedomain holds the payment, sponsorship and reporting rules.
package financedomain

import (
	"strings"

	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
)

// PaymentMethods are the accepted values of Payment.PaymentMethod.
var PaymentMethods = []string{"Credit Card", "Debit Card", "Bank Transfer", "Cash", "Online", "Manual"}

// ValidatePaymentMethod rejects methods outside PaymentMethods. Matching is
// exact so stored values stay canonical.
func ValidatePaymentMethod(method string) error {
	for _, m := range PaymentMethods {
		if m == method {
			return nil
		}
	}
	return apperr.Validation("invalid payment method %q: must be one of %s", method, strings.Join(PaymentMethods, ", "))
}

// ValidatePaymentTarget requires exactly one of eventID and sponsorshipID.
func ValidatePaymentTarget(eventID, sponsorshipID *int64) error {
	switch {
	case eventID == nil && sponsorshipID == nil:
		return apperr.Validation("Either Event ID or Sponsorship ID must be provided")
	case eventID != nil && sponsorshipID != nil:
		return apperr.Validation("a payment is for an event or a sponsorship, not both")
	}
	return nil
}

package financeservice

import (
	"context"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	financedomain "github.com/Black-And-White-Club/nascon/app/modules/finance/domain"
	financedb "github.com/Black-And-White-Club/nascon/app/modules/finance/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// PaymentRequest records a payment for an event registration or a
// sponsorship.
type PaymentRequest struct {
	UserID        int64   `json:"UserID"`
	EventID       *int64  `json:"EventID,omitempty"`
	SponsorshipID *int64  `json:"SponsorshipID,omitempty"`
	AmountPaid    float64 `json:"AmountPaid"`
	PaymentMethod string  `json:"PaymentMethod"`
}

// ContractRequest signs a sponsorship contract for a catalogue package.
type ContractRequest struct {
	SponsorID             int64   `json:"SponsorID"`
	SponsorshipType       string  `json:"SponsorshipType"`
	AmountPaid            float64 `json:"AmountPaid"`
	ContractDetails       *string `json:"ContractDetails,omitempty"`
	BrandingOpportunities *string `json:"BrandingOpportunities,omitempty"`
}

// BrandingRequest replaces the branding of a contract. When OwnerID is set
// the contract must belong to that sponsor.
type BrandingRequest struct {
	SponsorshipID         int64  `json:"-"`
	OwnerID               *int64 `json:"-"`
	BrandingOpportunities string `json:"BrandingOpportunities"`
}

// ReportQuery bounds a report; see financedomain.ParseRange.
type ReportQuery struct {
	Period    string
	StartDate string
	EndDate   string
}

// Summary holds the headline finance figures.
type Summary struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalRegistrationFees float64 `json:"totalRegistrationFees"`
	TotalSponsorships     float64 `json:"totalSponsorships"`
	TotalPayments         int     `json:"totalPayments"`
}

// Statistics aggregates all sponsorship contracts.
type Statistics struct {
	TotalContracts int                  `json:"totalContracts"`
	TotalAmount    float64              `json:"totalAmount"`
	ByType         []financedb.TypeStat `json:"byType"`
}

// Report holds the rows of one report type. Only the slice matching Type is
// set.
type Report struct {
	Type         financedomain.ReportType
	Revenue      []financedomain.RevenueLine
	Events       []financedb.EventRevenue
	Sponsorships []financedb.Contract
	Payments     []financedb.PaymentLine
}

// Rows returns the populated slice for JSON encoding.
func (r *Report) Rows() any {
	switch r.Type {
	case financedomain.ReportRevenue:
		return r.Revenue
	case financedomain.ReportEvents:
		return r.Events
	case financedomain.ReportSponsorships:
		return r.Sponsorships
	default:
		return r.Payments
	}
}

// Export is a rendered report workbook.
type Export struct {
	Filename string
	Data     []byte
}

// EventReader is the slice of the event repository payments need.
type EventReader interface {
	GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
}

// Service defines the payment, sponsorship and reporting operations.
type Service interface {
	RecordPayment(ctx context.Context, req PaymentRequest) (*financedb.Payment, error)
	ListUserPayments(ctx context.Context, userID int64) ([]financedb.UserPayment, error)

	Packages(ctx context.Context) []financedomain.Package
	SignContract(ctx context.Context, req ContractRequest) (*financedb.Sponsorship, error)
	ListContracts(ctx context.Context, sponsorID *int64) ([]financedb.Contract, error)
	UpdateBranding(ctx context.Context, req BrandingRequest) (*financedb.Sponsorship, error)
	Statistics(ctx context.Context) (*Statistics, error)

	Summary(ctx context.Context) (*Summary, error)
	Report(ctx context.Context, reportType string, q ReportQuery) (*Report, error)
	ExportReport(ctx context.Context, reportType string, q ReportQuery) (*Export, error)
}

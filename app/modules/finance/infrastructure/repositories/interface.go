package financedb

import (
	"context"

	financedomain "github.com/Black-And-White-Club/nascon/app/modules/finance/domain"
	"github.com/uptrace/bun"
)

// ContractFilter narrows ListContracts. Zero values match everything.
type ContractFilter struct {
	SponsorID *int64
	Range     financedomain.Range
}

// Repository defines the contract for payment and sponsorship persistence.
type Repository interface {
	CreatePayment(ctx context.Context, db bun.IDB, payment *Payment) error
	ListPaymentsByUser(ctx context.Context, db bun.IDB, userID int64) ([]UserPayment, error)

	CreateSponsorship(ctx context.Context, db bun.IDB, sponsorship *Sponsorship) error
	GetSponsorship(ctx context.Context, db bun.IDB, sponsorshipID int64) (*Sponsorship, error)
	ListContracts(ctx context.Context, db bun.IDB, filter ContractFilter) ([]Contract, error)
	UpdateBranding(ctx context.Context, db bun.IDB, sponsorshipID int64, branding string) (*Sponsorship, error)
	SponsorshipStats(ctx context.Context, db bun.IDB) ([]TypeStat, error)

	Totals(ctx context.Context, db bun.IDB, rng financedomain.Range) (Totals, error)
	EventRevenue(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]EventRevenue, error)
	PaymentLines(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]PaymentLine, error)
}

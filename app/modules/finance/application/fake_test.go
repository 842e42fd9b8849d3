package financeservice

import (
	"context"
	"time"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	financedomain "github.com/Black-And-White-Club/nascon/app/modules/finance/domain"
	financedb "github.com/Black-And-White-Club/nascon/app/modules/finance/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

type callTrace struct {
	steps []string
}

func (c *callTrace) record(step string) {
	c.steps = append(c.steps, step)
}

func (c *callTrace) Trace() []string {
	out := make([]string, len(c.steps))
	copy(out, c.steps)
	return out
}

// ------------------------
// Fake Finance Repo
// ------------------------

type FakeFinanceRepo struct {
	trace *callTrace

	CreatePaymentFunc      func(ctx context.Context, db bun.IDB, payment *financedb.Payment) error
	ListPaymentsByUserFunc func(ctx context.Context, db bun.IDB, userID int64) ([]financedb.UserPayment, error)
	CreateSponsorshipFunc  func(ctx context.Context, db bun.IDB, sponsorship *financedb.Sponsorship) error
	GetSponsorshipFunc     func(ctx context.Context, db bun.IDB, sponsorshipID int64) (*financedb.Sponsorship, error)
	ListContractsFunc      func(ctx context.Context, db bun.IDB, filter financedb.ContractFilter) ([]financedb.Contract, error)
	UpdateBrandingFunc     func(ctx context.Context, db bun.IDB, sponsorshipID int64, branding string) (*financedb.Sponsorship, error)
	SponsorshipStatsFunc   func(ctx context.Context, db bun.IDB) ([]financedb.TypeStat, error)
	TotalsFunc             func(ctx context.Context, db bun.IDB, rng financedomain.Range) (financedb.Totals, error)
	EventRevenueFunc       func(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]financedb.EventRevenue, error)
	PaymentLinesFunc       func(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]financedb.PaymentLine, error)
}

func (f *FakeFinanceRepo) CreatePayment(ctx context.Context, db bun.IDB, payment *financedb.Payment) error {
	f.trace.record("finance.CreatePayment")
	if f.CreatePaymentFunc != nil {
		return f.CreatePaymentFunc(ctx, db, payment)
	}
	payment.PaymentID = 31
	return nil
}

func (f *FakeFinanceRepo) ListPaymentsByUser(ctx context.Context, db bun.IDB, userID int64) ([]financedb.UserPayment, error) {
	f.trace.record("finance.ListPaymentsByUser")
	if f.ListPaymentsByUserFunc != nil {
		return f.ListPaymentsByUserFunc(ctx, db, userID)
	}
	return []financedb.UserPayment{}, nil
}

func (f *FakeFinanceRepo) CreateSponsorship(ctx context.Context, db bun.IDB, sponsorship *financedb.Sponsorship) error {
	f.trace.record("finance.CreateSponsorship")
	if f.CreateSponsorshipFunc != nil {
		return f.CreateSponsorshipFunc(ctx, db, sponsorship)
	}
	sponsorship.SponsorshipID = 12
	return nil
}

func (f *FakeFinanceRepo) GetSponsorship(ctx context.Context, db bun.IDB, sponsorshipID int64) (*financedb.Sponsorship, error) {
	f.trace.record("finance.GetSponsorship")
	if f.GetSponsorshipFunc != nil {
		return f.GetSponsorshipFunc(ctx, db, sponsorshipID)
	}
	return nil, financedb.ErrNotFound
}

func (f *FakeFinanceRepo) ListContracts(ctx context.Context, db bun.IDB, filter financedb.ContractFilter) ([]financedb.Contract, error) {
	f.trace.record("finance.ListContracts")
	if f.ListContractsFunc != nil {
		return f.ListContractsFunc(ctx, db, filter)
	}
	return []financedb.Contract{}, nil
}

func (f *FakeFinanceRepo) UpdateBranding(ctx context.Context, db bun.IDB, sponsorshipID int64, branding string) (*financedb.Sponsorship, error) {
	f.trace.record("finance.UpdateBranding")
	if f.UpdateBrandingFunc != nil {
		return f.UpdateBrandingFunc(ctx, db, sponsorshipID, branding)
	}
	return &financedb.Sponsorship{SponsorshipID: sponsorshipID, BrandingOpportunities: &branding}, nil
}

func (f *FakeFinanceRepo) SponsorshipStats(ctx context.Context, db bun.IDB) ([]financedb.TypeStat, error) {
	f.trace.record("finance.SponsorshipStats")
	if f.SponsorshipStatsFunc != nil {
		return f.SponsorshipStatsFunc(ctx, db)
	}
	return []financedb.TypeStat{}, nil
}

func (f *FakeFinanceRepo) Totals(ctx context.Context, db bun.IDB, rng financedomain.Range) (financedb.Totals, error) {
	f.trace.record("finance.Totals")
	if f.TotalsFunc != nil {
		return f.TotalsFunc(ctx, db, rng)
	}
	return financedb.Totals{}, nil
}

func (f *FakeFinanceRepo) EventRevenue(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]financedb.EventRevenue, error) {
	f.trace.record("finance.EventRevenue")
	if f.EventRevenueFunc != nil {
		return f.EventRevenueFunc(ctx, db, rng)
	}
	return []financedb.EventRevenue{}, nil
}

func (f *FakeFinanceRepo) PaymentLines(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]financedb.PaymentLine, error) {
	f.trace.record("finance.PaymentLines")
	if f.PaymentLinesFunc != nil {
		return f.PaymentLinesFunc(ctx, db, rng)
	}
	return []financedb.PaymentLine{}, nil
}

var _ financedb.Repository = (*FakeFinanceRepo)(nil)

// ------------------------
// Fake Event Reader
// ------------------------

type FakeEvents struct {
	trace *callTrace

	GetByIDFunc func(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error)
}

func (f *FakeEvents) GetByID(ctx context.Context, db bun.IDB, eventID int64) (*eventdb.Event, error) {
	f.trace.record("event.GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, eventID)
	}
	return &eventdb.Event{EventID: eventID, EventName: "Coding Marathon"}, nil
}

var _ EventReader = (*FakeEvents)(nil)

// ------------------------
// Fake Publisher and Clock
// ------------------------

type FakePublisher struct {
	Topics []string
	Err    error
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.Topics = append(f.Topics, topic)
	return f.Err
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

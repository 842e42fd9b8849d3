package financeservice

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	financedomain "github.com/Black-And-White-Club/nascon/app/modules/finance/domain"
	financedb "github.com/Black-And-White-Club/nascon/app/modules/finance/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/events"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"
	"go.opentelemetry.io/otel/trace/noop"
)

var testNow = time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC)

type harness struct {
	trace  *callTrace
	repo   *FakeFinanceRepo
	events *FakeEvents
	pub    *FakePublisher
	svc    *FinanceService
}

func newHarness() *harness {
	tr := &callTrace{}
	h := &harness{
		trace:  tr,
		repo:   &FakeFinanceRepo{trace: tr},
		events: &FakeEvents{trace: tr},
		pub:    &FakePublisher{},
	}
	h.svc = NewFinanceService(
		h.repo,
		h.events,
		h.pub,
		fixedClock(testNow),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NewNoop(),
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
	return h
}

func int64Ptr(v int64) *int64 { return &v }

func TestRecordPayment(t *testing.T) {
	tests := []struct {
		name      string
		req       PaymentRequest
		setup     func(h *harness)
		wantKind  error
		wantTrace []string
	}{
		{
			name:      "event registration fee",
			req:       PaymentRequest{UserID: 4, EventID: int64Ptr(7), AmountPaid: 1500, PaymentMethod: "Online"},
			wantTrace: []string{"event.GetByID", "finance.CreatePayment"},
		},
		{
			name: "sponsorship installment",
			req:  PaymentRequest{UserID: 4, SponsorshipID: int64Ptr(12), AmountPaid: 50000, PaymentMethod: "Bank Transfer"},
			setup: func(h *harness) {
				h.repo.GetSponsorshipFunc = func(ctx context.Context, db bun.IDB, id int64) (*financedb.Sponsorship, error) {
					return &financedb.Sponsorship{SponsorshipID: id}, nil
				}
			},
			wantTrace: []string{"finance.GetSponsorship", "finance.CreatePayment"},
		},
		{
			name:      "missing method",
			req:       PaymentRequest{UserID: 4, EventID: int64Ptr(7), AmountPaid: 10},
			wantKind:  apperr.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "negative amount",
			req:       PaymentRequest{UserID: 4, EventID: int64Ptr(7), AmountPaid: -5, PaymentMethod: "Cash"},
			wantKind:  apperr.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "no target",
			req:       PaymentRequest{UserID: 4, AmountPaid: 10, PaymentMethod: "Cash"},
			wantKind:  apperr.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "both targets",
			req:       PaymentRequest{UserID: 4, EventID: int64Ptr(7), SponsorshipID: int64Ptr(12), AmountPaid: 10, PaymentMethod: "Cash"},
			wantKind:  apperr.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "unknown method",
			req:       PaymentRequest{UserID: 4, EventID: int64Ptr(7), AmountPaid: 10, PaymentMethod: "Barter"},
			wantKind:  apperr.ErrValidation,
			wantTrace: []string{},
		},
		{
			name: "unknown event",
			req:  PaymentRequest{UserID: 4, EventID: int64Ptr(99), AmountPaid: 10, PaymentMethod: "Cash"},
			setup: func(h *harness) {
				h.events.GetByIDFunc = func(ctx context.Context, db bun.IDB, id int64) (*eventdb.Event, error) {
					return nil, eventdb.ErrNotFound
				}
			},
			wantKind:  apperr.ErrNotFound,
			wantTrace: []string{"event.GetByID"},
		},
		{
			name:      "unknown sponsorship",
			req:       PaymentRequest{UserID: 4, SponsorshipID: int64Ptr(99), AmountPaid: 10, PaymentMethod: "Cash"},
			wantKind:  apperr.ErrNotFound,
			wantTrace: []string{"finance.GetSponsorship"},
		},
		{
			name: "unknown user",
			req:  PaymentRequest{UserID: 404, EventID: int64Ptr(7), AmountPaid: 10, PaymentMethod: "Cash"},
			setup: func(h *harness) {
				h.repo.CreatePaymentFunc = func(ctx context.Context, db bun.IDB, p *financedb.Payment) error {
					return financedb.ErrUnknownReference
				}
			},
			wantKind:  apperr.ErrNotFound,
			wantTrace: []string{"event.GetByID", "finance.CreatePayment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			if tt.setup != nil {
				tt.setup(h)
			}

			payment, err := h.svc.RecordPayment(context.Background(), tt.req)

			assert.Equal(t, tt.wantTrace, h.trace.Trace())
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantKind), "got %v", err)
				assert.Empty(t, h.pub.Topics)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(31), payment.PaymentID)
			assert.Equal(t, []string{events.PaymentRecorded}, h.pub.Topics)
		})
	}
}

func TestRecordPayment_InfrastructureErrorIsNotDomain(t *testing.T) {
	h := newHarness()
	h.repo.CreatePaymentFunc = func(ctx context.Context, db bun.IDB, p *financedb.Payment) error {
		return errors.New("connection reset")
	}

	_, err := h.svc.RecordPayment(context.Background(), PaymentRequest{UserID: 4, EventID: int64Ptr(7), AmountPaid: 10, PaymentMethod: "Cash"})
	require.Error(t, err)
	assert.False(t, apperr.IsDomain(err))
}

func TestSignContract(t *testing.T) {
	details := "Two-year agreement"

	tests := []struct {
		name     string
		req      ContractRequest
		setup    func(h *harness)
		wantKind error
	}{
		{name: "gold package", req: ContractRequest{SponsorID: 3, SponsorshipType: "Gold", AmountPaid: 250000, ContractDetails: &details}},
		{name: "below package minimum", req: ContractRequest{SponsorID: 3, SponsorshipType: "Gold", AmountPaid: 1000}, wantKind: apperr.ErrValidation},
		{name: "not in catalogue", req: ContractRequest{SponsorID: 3, SponsorshipType: "Bronze", AmountPaid: 1e6}, wantKind: apperr.ErrValidation},
		{name: "missing sponsor", req: ContractRequest{SponsorshipType: "Gold", AmountPaid: 250000}, wantKind: apperr.ErrValidation},
		{
			name: "unknown sponsor",
			req:  ContractRequest{SponsorID: 404, SponsorshipType: "Silver", AmountPaid: 100000},
			setup: func(h *harness) {
				h.repo.CreateSponsorshipFunc = func(ctx context.Context, db bun.IDB, s *financedb.Sponsorship) error {
					return financedb.ErrUnknownReference
				}
			},
			wantKind: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			if tt.setup != nil {
				tt.setup(h)
			}

			got, err := h.svc.SignContract(context.Background(), tt.req)
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				assert.Empty(t, h.pub.Topics)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(12), got.SponsorshipID)
			assert.Equal(t, &details, got.ContractDetails)
			assert.Equal(t, []string{events.SponsorshipSigned}, h.pub.Topics)
		})
	}
}

func TestUpdateBranding(t *testing.T) {
	owned := func(ctx context.Context, db bun.IDB, id int64) (*financedb.Sponsorship, error) {
		return &financedb.Sponsorship{SponsorshipID: id, SponsorID: 3}, nil
	}

	tests := []struct {
		name      string
		req       BrandingRequest
		setup     func(h *harness)
		wantKind  error
		wantTrace []string
	}{
		{
			name:      "organizer updates any contract",
			req:       BrandingRequest{SponsorshipID: 12, BrandingOpportunities: "Stage banner"},
			setup:     func(h *harness) { h.repo.GetSponsorshipFunc = owned },
			wantTrace: []string{"finance.GetSponsorship", "finance.UpdateBranding"},
		},
		{
			name:      "sponsor updates own contract",
			req:       BrandingRequest{SponsorshipID: 12, OwnerID: int64Ptr(3), BrandingOpportunities: "Stage banner"},
			setup:     func(h *harness) { h.repo.GetSponsorshipFunc = owned },
			wantTrace: []string{"finance.GetSponsorship", "finance.UpdateBranding"},
		},
		{
			name:      "sponsor cannot touch another contract",
			req:       BrandingRequest{SponsorshipID: 12, OwnerID: int64Ptr(8), BrandingOpportunities: "Stage banner"},
			setup:     func(h *harness) { h.repo.GetSponsorshipFunc = owned },
			wantKind:  apperr.ErrAuthorization,
			wantTrace: []string{"finance.GetSponsorship"},
		},
		{
			name:      "blank branding",
			req:       BrandingRequest{SponsorshipID: 12, BrandingOpportunities: "   "},
			wantKind:  apperr.ErrValidation,
			wantTrace: []string{},
		},
		{
			name:      "unknown contract",
			req:       BrandingRequest{SponsorshipID: 99, BrandingOpportunities: "Stage banner"},
			wantKind:  apperr.ErrNotFound,
			wantTrace: []string{"finance.GetSponsorship"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			if tt.setup != nil {
				tt.setup(h)
			}

			got, err := h.svc.UpdateBranding(context.Background(), tt.req)
			assert.Equal(t, tt.wantTrace, h.trace.Trace())
			if tt.wantKind != nil {
				assert.ErrorIs(t, err, tt.wantKind)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.BrandingOpportunities)
			assert.Equal(t, "Stage banner", *got.BrandingOpportunities)
		})
	}
}

func TestStatisticsAndSummary(t *testing.T) {
	h := newHarness()
	h.repo.SponsorshipStatsFunc = func(ctx context.Context, db bun.IDB) ([]financedb.TypeStat, error) {
		return []financedb.TypeStat{
			{Type: "Gold", Count: 2, Amount: 500000},
			{Type: "Silver", Count: 1, Amount: 120000},
		}, nil
	}
	h.repo.TotalsFunc = func(ctx context.Context, db bun.IDB, rng financedomain.Range) (financedb.Totals, error) {
		assert.Equal(t, financedomain.Range{}, rng)
		return financedb.Totals{RegistrationFees: 4500, Sponsorships: 620000, Payments: 9}, nil
	}

	stats, err := h.svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalContracts)
	assert.Equal(t, 620000.0, stats.TotalAmount)

	summary, err := h.svc.Summary(context.Background())
	require.NoError(t, err)
	if diff := cmp.Diff(&Summary{
		TotalRevenue:          624500,
		TotalRegistrationFees: 4500,
		TotalSponsorships:     620000,
		TotalPayments:         9,
	}, summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestReport(t *testing.T) {
	t.Run("revenue over the last quarter", func(t *testing.T) {
		h := newHarness()
		h.repo.TotalsFunc = func(ctx context.Context, db bun.IDB, rng financedomain.Range) (financedb.Totals, error) {
			assert.Equal(t, testNow.AddDate(0, -3, 0), rng.From)
			assert.Equal(t, testNow, rng.To)
			return financedb.Totals{RegistrationFees: 250, Sponsorships: 750}, nil
		}

		report, err := h.svc.Report(context.Background(), "revenue", ReportQuery{Period: "quarter"})
		require.NoError(t, err)
		assert.Equal(t, []financedomain.RevenueLine{
			{Category: "Registration Fees", Amount: 250, Percentage: 25},
			{Category: "Sponsorships", Amount: 750, Percentage: 75},
		}, report.Rows())
	})

	t.Run("payments between dates", func(t *testing.T) {
		h := newHarness()
		h.repo.PaymentLinesFunc = func(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]financedb.PaymentLine, error) {
			assert.Equal(t, time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), rng.To)
			return []financedb.PaymentLine{{PaymentID: 1, AmountPaid: 10}}, nil
		}

		report, err := h.svc.Report(context.Background(), "payments", ReportQuery{StartDate: "2026-04-01", EndDate: "2026-04-01"})
		require.NoError(t, err)
		assert.Len(t, report.Payments, 1)
		assert.Equal(t, []string{"finance.PaymentLines"}, h.trace.Trace())
	})

	t.Run("unknown type", func(t *testing.T) {
		h := newHarness()
		_, err := h.svc.Report(context.Background(), "taxes", ReportQuery{})
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Empty(t, h.trace.Trace())
	})

	t.Run("bad period", func(t *testing.T) {
		h := newHarness()
		_, err := h.svc.Report(context.Background(), "events", ReportQuery{Period: "decade"})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestExportReport(t *testing.T) {
	h := newHarness()
	fee := 500.0
	h.repo.EventRevenueFunc = func(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]financedb.EventRevenue, error) {
		return []financedb.EventRevenue{
			{EventID: 7, EventName: "Coding Marathon", EventType: "Tech", RegistrationFee: &fee, ParticipantCount: 3, TotalRevenue: 1500},
		}, nil
	}

	export, err := h.svc.ExportReport(context.Background(), "events", ReportQuery{})
	require.NoError(t, err)
	assert.Equal(t, "finance-events-20260415.xlsx", export.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Events")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Event ID", rows[0][0])
	assert.Equal(t, []string{"7", "Coding Marathon", "Tech", "500", "3", "1500"}, rows[1])
}

package financeservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	eventdb "github.com/Black-And-White-Club/nascon/app/modules/event/infrastructure/repositories"
	financedomain "github.com/Black-And-White-Club/nascon/app/modules/finance/domain"
	financedb "github.com/Black-And-White-Club/nascon/app/modules/finance/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/events"
	"github.com/Black-And-White-Club/nascon/app/shared/observability"
	"github.com/Black-And-White-Club/nascon/app/shared/operation"
	"github.com/Black-And-White-Club/nascon/app/shared/results"
	"github.com/Black-And-White-Club/nascon/app/shared/timeparse"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

var _ Service = (*FinanceService)(nil)

// FinanceService implements the Service interface.
type FinanceService struct {
	repo      financedb.Repository
	events    EventReader
	publisher eventbus.Publisher
	clock     timeparse.Clock
	runner    *operation.Runner
}

// NewFinanceService creates a new FinanceService. A nil clock reads the wall
// clock.
func NewFinanceService(
	repo financedb.Repository,
	events EventReader,
	publisher eventbus.Publisher,
	clock timeparse.Clock,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *FinanceService {
	if clock == nil {
		clock = timeparse.RealClock{}
	}
	return &FinanceService{
		repo:      repo,
		events:    events,
		publisher: publisher,
		clock:     clock,
		runner:    operation.NewRunner("FinanceService", logger, metrics, tracer, db),
	}
}

func (s *FinanceService) RecordPayment(ctx context.Context, req PaymentRequest) (*financedb.Payment, error) {
	payment, err := operation.Run(s.runner, ctx, "RecordPayment", strconv.FormatInt(req.UserID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*financedb.Payment, error], error) {
		if req.UserID <= 0 || req.AmountPaid == 0 || strings.TrimSpace(req.PaymentMethod) == "" {
			return results.FailureResult[*financedb.Payment, error](apperr.Validation("User ID, amount paid, and payment method are required")), nil
		}
		if req.AmountPaid < 0 {
			return results.FailureResult[*financedb.Payment, error](apperr.Validation("amount paid must be positive")), nil
		}
		if err := financedomain.ValidatePaymentTarget(req.EventID, req.SponsorshipID); err != nil {
			return results.FailureResult[*financedb.Payment, error](err), nil
		}
		if err := financedomain.ValidatePaymentMethod(req.PaymentMethod); err != nil {
			return results.FailureResult[*financedb.Payment, error](err), nil
		}

		if req.EventID != nil {
			if _, err := s.events.GetByID(ctx, db, *req.EventID); err != nil {
				if errors.Is(err, eventdb.ErrNotFound) {
					return results.FailureResult[*financedb.Payment, error](apperr.NotFound("event %d not found", *req.EventID)), nil
				}
				return results.OperationResult[*financedb.Payment, error]{}, fmt.Errorf("failed to get event: %w", err)
			}
		} else {
			if _, err := s.repo.GetSponsorship(ctx, db, *req.SponsorshipID); err != nil {
				if errors.Is(err, financedb.ErrNotFound) {
					return results.FailureResult[*financedb.Payment, error](apperr.NotFound("sponsorship %d not found", *req.SponsorshipID)), nil
				}
				return results.OperationResult[*financedb.Payment, error]{}, fmt.Errorf("failed to get sponsorship: %w", err)
			}
		}

		payment := &financedb.Payment{
			UserID:        req.UserID,
			EventID:       req.EventID,
			SponsorshipID: req.SponsorshipID,
			AmountPaid:    req.AmountPaid,
			PaymentMethod: req.PaymentMethod,
		}
		if err := s.repo.CreatePayment(ctx, db, payment); err != nil {
			switch {
			case errors.Is(err, financedb.ErrUnknownReference):
				return results.FailureResult[*financedb.Payment, error](apperr.NotFound("user %d not found", req.UserID)), nil
			case errors.Is(err, financedb.ErrInvalidAmount):
				return results.FailureResult[*financedb.Payment, error](apperr.Validation("amount paid must be positive")), nil
			}
			return results.OperationResult[*financedb.Payment, error]{}, fmt.Errorf("failed to record payment: %w", err)
		}
		return results.SuccessResult[*financedb.Payment, error](payment), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.PaymentRecorded, events.DomainEvent{
		EntityID: payment.PaymentID,
		ActorID:  &payment.UserID,
		EventID:  payment.EventID,
		Summary:  fmt.Sprintf("User %d paid %.2f by %s", payment.UserID, payment.AmountPaid, payment.PaymentMethod),
	})
	return payment, nil
}

func (s *FinanceService) ListUserPayments(ctx context.Context, userID int64) ([]financedb.UserPayment, error) {
	return operation.Run(s.runner, ctx, "ListUserPayments", strconv.FormatInt(userID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]financedb.UserPayment, error], error) {
		payments, err := s.repo.ListPaymentsByUser(ctx, db, userID)
		if err != nil {
			return results.OperationResult[[]financedb.UserPayment, error]{}, fmt.Errorf("failed to list payments: %w", err)
		}
		return results.SuccessResult[[]financedb.UserPayment, error](payments), nil
	})
}

func (s *FinanceService) Packages(ctx context.Context) []financedomain.Package {
	return financedomain.Packages()
}

func (s *FinanceService) SignContract(ctx context.Context, req ContractRequest) (*financedb.Sponsorship, error) {
	sponsorship, err := operation.Run(s.runner, ctx, "SignContract", strconv.FormatInt(req.SponsorID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*financedb.Sponsorship, error], error) {
		if req.SponsorID <= 0 || req.SponsorshipType == "" {
			return results.FailureResult[*financedb.Sponsorship, error](apperr.Validation("SponsorID and SponsorshipType are required")), nil
		}
		if _, err := financedomain.CheckContract(req.SponsorshipType, req.AmountPaid); err != nil {
			return results.FailureResult[*financedb.Sponsorship, error](err), nil
		}

		sponsorship := &financedb.Sponsorship{
			SponsorID:             req.SponsorID,
			SponsorshipType:       req.SponsorshipType,
			AmountPaid:            req.AmountPaid,
			ContractDetails:       req.ContractDetails,
			BrandingOpportunities: req.BrandingOpportunities,
		}
		if err := s.repo.CreateSponsorship(ctx, db, sponsorship); err != nil {
			if errors.Is(err, financedb.ErrUnknownReference) {
				return results.FailureResult[*financedb.Sponsorship, error](apperr.NotFound("sponsor %d not found", req.SponsorID)), nil
			}
			return results.OperationResult[*financedb.Sponsorship, error]{}, fmt.Errorf("failed to create sponsorship: %w", err)
		}
		return results.SuccessResult[*financedb.Sponsorship, error](sponsorship), nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.SponsorshipSigned, events.DomainEvent{
		EntityID: sponsorship.SponsorshipID,
		ActorID:  &sponsorship.SponsorID,
		Summary:  fmt.Sprintf("%s sponsorship signed by user %d", sponsorship.SponsorshipType, sponsorship.SponsorID),
	})
	return sponsorship, nil
}

func (s *FinanceService) ListContracts(ctx context.Context, sponsorID *int64) ([]financedb.Contract, error) {
	id := "all"
	if sponsorID != nil {
		id = strconv.FormatInt(*sponsorID, 10)
	}
	return operation.Run(s.runner, ctx, "ListContracts", id, func(ctx context.Context, db bun.IDB) (results.OperationResult[[]financedb.Contract, error], error) {
		contracts, err := s.repo.ListContracts(ctx, db, financedb.ContractFilter{SponsorID: sponsorID})
		if err != nil {
			return results.OperationResult[[]financedb.Contract, error]{}, fmt.Errorf("failed to list contracts: %w", err)
		}
		return results.SuccessResult[[]financedb.Contract, error](contracts), nil
	})
}

func (s *FinanceService) UpdateBranding(ctx context.Context, req BrandingRequest) (*financedb.Sponsorship, error) {
	return operation.Run(s.runner, ctx, "UpdateBranding", strconv.FormatInt(req.SponsorshipID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[*financedb.Sponsorship, error], error) {
		branding := strings.TrimSpace(req.BrandingOpportunities)
		if branding == "" {
			return results.FailureResult[*financedb.Sponsorship, error](apperr.Validation("BrandingOpportunities is required")), nil
		}

		current, err := s.repo.GetSponsorship(ctx, db, req.SponsorshipID)
		if err != nil {
			if errors.Is(err, financedb.ErrNotFound) {
				return results.FailureResult[*financedb.Sponsorship, error](apperr.NotFound("sponsorship %d not found", req.SponsorshipID)), nil
			}
			return results.OperationResult[*financedb.Sponsorship, error]{}, fmt.Errorf("failed to get sponsorship: %w", err)
		}
		if req.OwnerID != nil && current.SponsorID != *req.OwnerID {
			return results.FailureResult[*financedb.Sponsorship, error](apperr.Forbidden("sponsorship %d belongs to another sponsor", req.SponsorshipID)), nil
		}

		updated, err := s.repo.UpdateBranding(ctx, db, req.SponsorshipID, branding)
		if err != nil {
			if errors.Is(err, financedb.ErrNotFound) {
				return results.FailureResult[*financedb.Sponsorship, error](apperr.NotFound("sponsorship %d not found", req.SponsorshipID)), nil
			}
			return results.OperationResult[*financedb.Sponsorship, error]{}, fmt.Errorf("failed to update branding: %w", err)
		}
		return results.SuccessResult[*financedb.Sponsorship, error](updated), nil
	})
}

func (s *FinanceService) Statistics(ctx context.Context) (*Statistics, error) {
	return operation.Run(s.runner, ctx, "Statistics", "all", func(ctx context.Context, db bun.IDB) (results.OperationResult[*Statistics, error], error) {
		byType, err := s.repo.SponsorshipStats(ctx, db)
		if err != nil {
			return results.OperationResult[*Statistics, error]{}, fmt.Errorf("failed to load sponsorship statistics: %w", err)
		}
		stats := &Statistics{ByType: byType}
		for _, t := range byType {
			stats.TotalContracts += t.Count
			stats.TotalAmount += t.Amount
		}
		return results.SuccessResult[*Statistics, error](stats), nil
	})
}

func (s *FinanceService) Summary(ctx context.Context) (*Summary, error) {
	return operation.Run(s.runner, ctx, "Summary", "all", func(ctx context.Context, db bun.IDB) (results.OperationResult[*Summary, error], error) {
		totals, err := s.repo.Totals(ctx, db, financedomain.Range{})
		if err != nil {
			return results.OperationResult[*Summary, error]{}, fmt.Errorf("failed to load totals: %w", err)
		}
		return results.SuccessResult[*Summary, error](&Summary{
			TotalRevenue:          totals.RegistrationFees + totals.Sponsorships,
			TotalRegistrationFees: totals.RegistrationFees,
			TotalSponsorships:     totals.Sponsorships,
			TotalPayments:         totals.Payments,
		}), nil
	})
}

func (s *FinanceService) Report(ctx context.Context, reportType string, q ReportQuery) (*Report, error) {
	return operation.Run(s.runner, ctx, "Report", reportType, func(ctx context.Context, db bun.IDB) (results.OperationResult[*Report, error], error) {
		return s.report(ctx, db, reportType, q)
	})
}

// ExportReport renders a report as an XLSX workbook.
func (s *FinanceService) ExportReport(ctx context.Context, reportType string, q ReportQuery) (*Export, error) {
	report, err := operation.Run(s.runner, ctx, "ExportReport", reportType, func(ctx context.Context, db bun.IDB) (results.OperationResult[*Report, error], error) {
		return s.report(ctx, db, reportType, q)
	})
	if err != nil {
		return nil, err
	}

	data, err := renderReport(report)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", report.Type, err)
	}
	return &Export{
		Filename: fmt.Sprintf("finance-%s-%s.xlsx", report.Type, s.clock.Now().UTC().Format("20060102")),
		Data:     data,
	}, nil
}

func (s *FinanceService) report(ctx context.Context, db bun.IDB, reportType string, q ReportQuery) (results.OperationResult[*Report, error], error) {
	typ, err := financedomain.ParseReportType(reportType)
	if err != nil {
		return results.FailureResult[*Report, error](err), nil
	}
	rng, err := financedomain.ParseRange(q.Period, q.StartDate, q.EndDate, s.clock.Now())
	if err != nil {
		return results.FailureResult[*Report, error](err), nil
	}

	report := &Report{Type: typ}
	switch typ {
	case financedomain.ReportRevenue:
		totals, err := s.repo.Totals(ctx, db, rng)
		if err != nil {
			return results.OperationResult[*Report, error]{}, fmt.Errorf("failed to load totals: %w", err)
		}
		report.Revenue = financedomain.RevenueBreakdown(totals.RegistrationFees, totals.Sponsorships)
	case financedomain.ReportEvents:
		report.Events, err = s.repo.EventRevenue(ctx, db, rng)
		if err != nil {
			return results.OperationResult[*Report, error]{}, fmt.Errorf("failed to load event revenue: %w", err)
		}
	case financedomain.ReportSponsorships:
		report.Sponsorships, err = s.repo.ListContracts(ctx, db, financedb.ContractFilter{Range: rng})
		if err != nil {
			return results.OperationResult[*Report, error]{}, fmt.Errorf("failed to load contracts: %w", err)
		}
	case financedomain.ReportPayments:
		report.Payments, err = s.repo.PaymentLines(ctx, db, rng)
		if err != nil {
			return results.OperationResult[*Report, error]{}, fmt.Errorf("failed to load payments: %w", err)
		}
	}
	return results.SuccessResult[*Report, error](report), nil
}

func (s *FinanceService) publish(ctx context.Context, topic string, evt events.DomainEvent) {
	evt.OccurredAt = time.Now().UTC()
	if err := eventbus.PublishEvent(ctx, s.publisher, topic, evt); err != nil {
		s.runner.Logger().WarnContext(ctx, "Failed to publish finance change",
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}

package financehandlers

import (
	"context"

	financeservice "github.com/Black-And-White-Club/nascon/app/modules/finance/application"
	financedomain "github.com/Black-And-White-Club/nascon/app/modules/finance/domain"
	financedb "github.com/Black-And-White-Club/nascon/app/modules/finance/infrastructure/repositories"
)

type FakeService struct {
	RecordPaymentFunc    func(ctx context.Context, req financeservice.PaymentRequest) (*financedb.Payment, error)
	ListUserPaymentsFunc func(ctx context.Context, userID int64) ([]financedb.UserPayment, error)
	SignContractFunc     func(ctx context.Context, req financeservice.ContractRequest) (*financedb.Sponsorship, error)
	ListContractsFunc    func(ctx context.Context, sponsorID *int64) ([]financedb.Contract, error)
	UpdateBrandingFunc   func(ctx context.Context, req financeservice.BrandingRequest) (*financedb.Sponsorship, error)
	StatisticsFunc       func(ctx context.Context) (*financeservice.Statistics, error)
	SummaryFunc          func(ctx context.Context) (*financeservice.Summary, error)
	ReportFunc           func(ctx context.Context, reportType string, q financeservice.ReportQuery) (*financeservice.Report, error)
	ExportReportFunc     func(ctx context.Context, reportType string, q financeservice.ReportQuery) (*financeservice.Export, error)
}

func (f *FakeService) RecordPayment(ctx context.Context, req financeservice.PaymentRequest) (*financedb.Payment, error) {
	if f.RecordPaymentFunc != nil {
		return f.RecordPaymentFunc(ctx, req)
	}
	return &financedb.Payment{PaymentID: 1, UserID: req.UserID}, nil
}

func (f *FakeService) ListUserPayments(ctx context.Context, userID int64) ([]financedb.UserPayment, error) {
	if f.ListUserPaymentsFunc != nil {
		return f.ListUserPaymentsFunc(ctx, userID)
	}
	return []financedb.UserPayment{}, nil
}

func (f *FakeService) Packages(ctx context.Context) []financedomain.Package {
	return financedomain.Packages()
}

func (f *FakeService) SignContract(ctx context.Context, req financeservice.ContractRequest) (*financedb.Sponsorship, error) {
	if f.SignContractFunc != nil {
		return f.SignContractFunc(ctx, req)
	}
	return &financedb.Sponsorship{SponsorshipID: 2, SponsorID: req.SponsorID}, nil
}

func (f *FakeService) ListContracts(ctx context.Context, sponsorID *int64) ([]financedb.Contract, error) {
	if f.ListContractsFunc != nil {
		return f.ListContractsFunc(ctx, sponsorID)
	}
	return []financedb.Contract{}, nil
}

func (f *FakeService) UpdateBranding(ctx context.Context, req financeservice.BrandingRequest) (*financedb.Sponsorship, error) {
	if f.UpdateBrandingFunc != nil {
		return f.UpdateBrandingFunc(ctx, req)
	}
	return &financedb.Sponsorship{SponsorshipID: req.SponsorshipID, BrandingOpportunities: &req.BrandingOpportunities}, nil
}

func (f *FakeService) Statistics(ctx context.Context) (*financeservice.Statistics, error) {
	if f.StatisticsFunc != nil {
		return f.StatisticsFunc(ctx)
	}
	return &financeservice.Statistics{ByType: []financedb.TypeStat{}}, nil
}

func (f *FakeService) Summary(ctx context.Context) (*financeservice.Summary, error) {
	if f.SummaryFunc != nil {
		return f.SummaryFunc(ctx)
	}
	return &financeservice.Summary{}, nil
}

func (f *FakeService) Report(ctx context.Context, reportType string, q financeservice.ReportQuery) (*financeservice.Report, error) {
	if f.ReportFunc != nil {
		return f.ReportFunc(ctx, reportType, q)
	}
	return &financeservice.Report{Type: financedomain.ReportPayments, Payments: []financedb.PaymentLine{}}, nil
}

func (f *FakeService) ExportReport(ctx context.Context, reportType string, q financeservice.ReportQuery) (*financeservice.Export, error) {
	if f.ExportReportFunc != nil {
		return f.ExportReportFunc(ctx, reportType, q)
	}
	return &financeservice.Export{Filename: "finance.xlsx", Data: []byte("xlsx")}, nil
}

var _ financeservice.Service = (*FakeService)(nil)

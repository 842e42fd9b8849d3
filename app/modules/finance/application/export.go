package financeservice

import (
	financedomain "github.com/Black-And-White-Club/nascon/app/modules/finance/domain"
	"github.com/Black-And-White-Club/nascon/app/shared/xlsxexport"
)

func renderReport(r *Report) ([]byte, error) {
	sheet := xlsxexport.Sheet{Name: "Report"}
	switch r.Type {
	case financedomain.ReportRevenue:
		sheet.Name = "Revenue"
		sheet.Header = []string{"Category", "Amount", "Percentage"}
		for _, l := range r.Revenue {
			sheet.Rows = append(sheet.Rows, []any{l.Category, l.Amount, l.Percentage})
		}
	case financedomain.ReportEvents:
		sheet.Name = "Events"
		sheet.Header = []string{"Event ID", "Event", "Type", "Registration Fee", "Participants", "Total Revenue"}
		for _, e := range r.Events {
			fee := 0.0
			if e.RegistrationFee != nil {
				fee = *e.RegistrationFee
			}
			sheet.Rows = append(sheet.Rows, []any{e.EventID, e.EventName, e.EventType, fee, e.ParticipantCount, e.TotalRevenue})
		}
	case financedomain.ReportSponsorships:
		sheet.Name = "Sponsorships"
		sheet.Header = []string{"Sponsorship ID", "Sponsor", "Type", "Amount Paid", "Date"}
		for _, c := range r.Sponsorships {
			sheet.Rows = append(sheet.Rows, []any{c.SponsorshipID, c.SponsorName, c.SponsorshipType, c.AmountPaid, c.PaymentDate.Format("2006-01-02")})
		}
	case financedomain.ReportPayments:
		sheet.Name = "Payments"
		sheet.Header = []string{"Payment ID", "User", "Type", "For", "Amount Paid", "Method", "Date"}
		for _, p := range r.Payments {
			sheet.Rows = append(sheet.Rows, []any{
				p.PaymentID, p.UserName, p.PaymentType, valueOr(p.EventName, valueOr(p.SponsorshipType, "-")),
				p.AmountPaid, p.PaymentMethod, p.PaymentDate.Format("2006-01-02"),
			})
		}
	}
	return xlsxexport.Write(sheet)
}

func valueOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

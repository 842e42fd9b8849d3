package financehandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	financeservice "github.com/Black-And-White-Club/nascon/app/modules/finance/application"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"github.com/Black-And-White-Club/nascon/app/shared/xlsxexport"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// FinanceHandlers implements the Handlers interface.
type FinanceHandlers struct {
	service financeservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewFinanceHandlers creates a new FinanceHandlers instance.
func NewFinanceHandlers(service financeservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &FinanceHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func actsFor(r *http.Request, userID int64) error {
	sess, _ := authdomain.SessionFromContext(r.Context())
	if sess.IsUser(userID) || sess.HasRole(authdomain.RoleOrganizer) {
		return nil
	}
	return apperr.Forbidden("cannot act on behalf of user %d", userID)
}

func reportQuery(r *http.Request) financeservice.ReportQuery {
	q := r.URL.Query()
	return financeservice.ReportQuery{
		Period:    q.Get("period"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
}

func (h *FinanceHandlers) HandleRecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleRecordPayment")
	defer span.End()

	var req financeservice.PaymentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := actsFor(r, req.UserID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	payment, err := h.service.RecordPayment(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "Payment recorded",
		attr.Int64("payment_id", payment.PaymentID),
		attr.Int64("user_id", payment.UserID),
	)
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":   "Payment recorded successfully",
		"paymentId": payment.PaymentID,
	})
}

func (h *FinanceHandlers) HandleListUserPayments(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleListUserPayments")
	defer span.End()

	userID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := actsFor(r, userID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	payments, err := h.service.ListUserPayments(ctx, userID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, payments)
}

func (h *FinanceHandlers) HandlePackages(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandlePackages")
	defer span.End()

	httpx.WriteJSON(w, http.StatusOK, h.service.Packages(ctx))
}

func (h *FinanceHandlers) HandleSignContract(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleSignContract")
	defer span.End()

	var req financeservice.ContractRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := actsFor(r, req.SponsorID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	sponsorship, err := h.service.SignContract(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":       "Sponsorship contract created successfully",
		"sponsorshipId": sponsorship.SponsorshipID,
	})
}

func (h *FinanceHandlers) HandleListContracts(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleListContracts")
	defer span.End()

	contracts, err := h.service.ListContracts(ctx, nil)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, contracts)
}

func (h *FinanceHandlers) HandleListSponsorContracts(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleListSponsorContracts")
	defer span.End()

	sponsorID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := actsFor(r, sponsorID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	contracts, err := h.service.ListContracts(ctx, &sponsorID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, contracts)
}

// HandleUpdateBranding lets organizers edit any contract and sponsors edit
// their own.
func (h *FinanceHandlers) HandleUpdateBranding(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleUpdateBranding")
	defer span.End()

	sponsorshipID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req financeservice.BrandingRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	req.SponsorshipID = sponsorshipID
	if sess, _ := authdomain.SessionFromContext(ctx); !sess.HasRole(authdomain.RoleOrganizer) {
		if sess == nil {
			httpx.WriteError(w, r, h.logger, apperr.Unauthenticated("login required"))
			return
		}
		req.OwnerID = &sess.UserID
	}

	sponsorship, err := h.service.UpdateBranding(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sponsorship)
}

func (h *FinanceHandlers) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleStatistics")
	defer span.End()

	stats, err := h.service.Statistics(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stats)
}

func (h *FinanceHandlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleSummary")
	defer span.End()

	summary, err := h.service.Summary(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, summary)
}

func (h *FinanceHandlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleReport")
	defer span.End()

	report, err := h.service.Report(ctx, chi.URLParam(r, "type"), reportQuery(r))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report.Rows())
}

func (h *FinanceHandlers) HandleExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "FinanceHandlers.HandleExportReport")
	defer span.End()

	export, err := h.service.ExportReport(ctx, chi.URLParam(r, "type"), reportQuery(r))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", xlsxexport.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}

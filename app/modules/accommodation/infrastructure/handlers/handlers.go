package accommodationhandlers

import (
	"log/slog"
	"net/http"

	accommodationservice "github.com/Black-And-White-Club/nascon/app/modules/accommodation/application"
	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"go.opentelemetry.io/otel/trace"
)

// AccommodationHandlers implements the Handlers interface.
type AccommodationHandlers struct {
	service accommodationservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAccommodationHandlers creates a new AccommodationHandlers instance.
func NewAccommodationHandlers(service accommodationservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &AccommodationHandlers{service: service, logger: logger, tracer: tracer}
}

func actsFor(r *http.Request, userID int64) error {
	sess, _ := authdomain.SessionFromContext(r.Context())
	if sess.IsUser(userID) || sess.HasRole(authdomain.RoleOrganizer) {
		return nil
	}
	return apperr.Forbidden("cannot act on behalf of user %d", userID)
}

func (h *AccommodationHandlers) HandleRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AccommodationHandlers.HandleRequest")
	defer span.End()

	var req accommodationservice.CreateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := actsFor(r, req.UserID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	acc, err := h.service.Request(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "Accommodation requested",
		attr.Int64("accommodation_id", acc.AccommodationID),
		attr.Int64("user_id", acc.UserID),
	)
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":         "Accommodation request submitted successfully",
		"accommodationId": acc.AccommodationID,
	})
}

func (h *AccommodationHandlers) HandleListUserAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AccommodationHandlers.HandleListUserAccommodation")
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

	accs, err := h.service.ListUserAccommodation(ctx, userID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accs)
}

func (h *AccommodationHandlers) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AccommodationHandlers.HandleUpdate")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	var req accommodationservice.UpdateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	acc, err := h.service.Update(ctx, id, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, acc)
}

// HandleDelete lets organizers remove any request and participants their own.
func (h *AccommodationHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AccommodationHandlers.HandleDelete")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var ownerID *int64
	if sess, _ := authdomain.SessionFromContext(ctx); !sess.HasRole(authdomain.RoleOrganizer) {
		if sess == nil {
			httpx.WriteError(w, r, h.logger, apperr.Unauthenticated("login required"))
			return
		}
		ownerID = &sess.UserID
	}

	if err := h.service.Delete(ctx, id, ownerID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Accommodation request deleted successfully"})
}

func (h *AccommodationHandlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AccommodationHandlers.HandleSearch")
	defer span.End()

	q := r.URL.Query()
	details, err := h.service.Search(ctx, accommodationservice.SearchQuery{
		Name:        q.Get("name"),
		RoomNumber:  q.Get("roomNumber"),
		CheckInDate: q.Get("checkInDate"),
		Status:      q.Get("status"),
	})
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, details)
}

func (h *AccommodationHandlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AccommodationHandlers.HandleReport")
	defer span.End()

	report, err := h.service.Report(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}

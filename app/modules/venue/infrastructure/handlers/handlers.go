package venuehandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	venueservice "github.com/Black-And-White-Club/nascon/app/modules/venue/application"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"go.opentelemetry.io/otel/trace"
)

// VenueHandlers implements the Handlers interface.
type VenueHandlers struct {
	service venueservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewVenueHandlers creates a new VenueHandlers instance.
func NewVenueHandlers(service venueservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &VenueHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *VenueHandlers) HandleListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleListVenues")
	defer span.End()

	venues, err := h.service.ListVenues(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, venues)
}

func (h *VenueHandlers) HandleGetVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleGetVenue")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	venue, err := h.service.GetVenue(ctx, id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, venue)
}

func (h *VenueHandlers) HandleCreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleCreateVenue")
	defer span.End()

	var req venueservice.VenueRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	id, err := h.service.CreateVenue(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "Venue created", attr.Int64("venue_id", id))
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Venue created successfully",
		"venueId": id,
	})
}

func (h *VenueHandlers) HandleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleUpdateVenue")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req venueservice.VenueRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	venue, err := h.service.UpdateVenue(ctx, id, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, venue)
}

func (h *VenueHandlers) HandleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleDeleteVenue")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteVenue(ctx, id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Venue deleted successfully"})
}

func (h *VenueHandlers) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleAvailability")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	exclude, err := httpx.QueryInt64(r, "excludeEventId")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	availability, err := h.service.CheckAvailability(ctx, venueservice.AvailabilityQuery{
		VenueID:        id,
		DateTime:       r.URL.Query().Get("datetime"),
		ExcludeEventID: exclude,
	})
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, availability)
}

func (h *VenueHandlers) HandleSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleSchedules")
	defer span.End()

	schedules, err := h.service.ListSchedules(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, schedules)
}

func (h *VenueHandlers) HandleUtilization(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleUtilization")
	defer span.End()

	report, err := h.service.Utilization(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}

func (h *VenueHandlers) HandleUtilizationChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VenueHandlers.HandleUtilizationChart")
	defer span.End()

	png, err := h.service.UtilizationChart(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.WarnContext(ctx, "Failed to write utilization chart", attr.Error(err))
	}
}

package eventhandlers

import (
	"log/slog"
	"net/http"

	eventservice "github.com/Black-And-White-Club/nascon/app/modules/event/application"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"go.opentelemetry.io/otel/trace"
)

// EventHandlers implements the Handlers interface.
type EventHandlers struct {
	service eventservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewEventHandlers creates a new EventHandlers instance.
func NewEventHandlers(service eventservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &EventHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *EventHandlers) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleListEvents")
	defer span.End()

	list, err := h.service.ListEvents(ctx, r.URL.Query().Get("category"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *EventHandlers) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleGetEvent")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	event, err := h.service.GetEvent(ctx, id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, event)
}

func (h *EventHandlers) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleCreateEvent")
	defer span.End()

	var req eventservice.EventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	event, err := h.service.CreateEvent(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "Event created",
		attr.Int64("event_id", event.EventID),
		attr.Int64("venue_id", event.VenueID),
	)
	httpx.WriteJSON(w, http.StatusCreated, event)
}

func (h *EventHandlers) HandleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleUpdateEvent")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req eventservice.EventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	event, err := h.service.UpdateEvent(ctx, id, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, event)
}

func (h *EventHandlers) HandleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleDeleteEvent")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteEvent(ctx, id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
}

func (h *EventHandlers) HandleListJudges(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleListJudges")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	judges, err := h.service.ListJudges(ctx, id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, judges)
}

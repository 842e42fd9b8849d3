package leaderboardhandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	leaderboardservice "github.com/Black-And-White-Club/nascon/app/modules/leaderboard/application"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"github.com/Black-And-White-Club/nascon/app/shared/xlsxexport"
	"go.opentelemetry.io/otel/trace"
)

// LeaderboardHandlers implements the Handlers interface.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers instance.
func NewLeaderboardHandlers(service leaderboardservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &LeaderboardHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *LeaderboardHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers.HandleLeaderboard")
	defer span.End()

	eventID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	entries, err := h.service.Leaderboard(ctx, eventID, r.URL.Query().Get("round"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entries)
}

func (h *LeaderboardHandlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers.HandleExport")
	defer span.End()

	eventID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	export, err := h.service.ExportLeaderboard(ctx, eventID, r.URL.Query().Get("round"))
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

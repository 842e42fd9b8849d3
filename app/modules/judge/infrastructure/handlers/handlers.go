package judgehandlers

import (
	"log/slog"
	"net/http"

	judgeservice "github.com/Black-And-White-Club/nascon/app/modules/judge/application"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"go.opentelemetry.io/otel/trace"
)

// JudgeHandlers implements the Handlers interface.
type JudgeHandlers struct {
	service judgeservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewJudgeHandlers creates a new JudgeHandlers instance.
func NewJudgeHandlers(service judgeservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &JudgeHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *JudgeHandlers) HandleAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "JudgeHandlers.HandleAssign")
	defer span.End()

	var req judgeservice.AssignRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	a, err := h.service.AssignJudge(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, a)
}

func (h *JudgeHandlers) HandleUnassign(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "JudgeHandlers.HandleUnassign")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	if err := h.service.UnassignJudge(ctx, id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Judge assignment removed"})
}

func (h *JudgeHandlers) HandleListAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "JudgeHandlers.HandleListAssignments")
	defer span.End()

	judgeID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	list, err := h.service.ListAssignments(ctx, judgeID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

package scorehandlers

import (
	"log/slog"
	"net/http"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	scoreservice "github.com/Black-And-White-Club/nascon/app/modules/score/application"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"go.opentelemetry.io/otel/trace"
)

// ScoreHandlers implements the Handlers interface.
type ScoreHandlers struct {
	service scoreservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewScoreHandlers creates a new ScoreHandlers instance.
func NewScoreHandlers(service scoreservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &ScoreHandlers{service: service, logger: logger, tracer: tracer}
}

// HandleSubmitScore stores a score. Judges may only submit under their own id.
func (h *ScoreHandlers) HandleSubmitScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoreHandlers.HandleSubmitScore")
	defer span.End()

	var req scoreservice.SubmitRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	sess, _ := authdomain.SessionFromContext(ctx)
	if !sess.IsUser(req.JudgeID) {
		httpx.WriteError(w, r, h.logger, apperr.Forbidden("judges may only submit their own scores"))
		return
	}

	score, err := h.service.SubmitScore(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "Score submitted",
		attr.Int64("score_id", score.ScoreID),
		attr.Int64("event_id", score.EventID),
		attr.String("round", score.Round),
	)
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Score submitted successfully",
		"id":      score.ScoreID,
	})
}

func (h *ScoreHandlers) HandleJudgeScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoreHandlers.HandleJudgeScores")
	defer span.End()

	judgeID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	eventID, err := httpx.Int64Param(r, "eventId")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	list, err := h.service.JudgeScores(ctx, judgeID, eventID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *ScoreHandlers) HandleCoverage(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoreHandlers.HandleCoverage")
	defer span.End()

	eventID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	cov, err := h.service.Coverage(ctx, eventID, r.URL.Query().Get("round"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cov)
}

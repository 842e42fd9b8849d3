package userhandlers

import (
	"log/slog"
	"net/http"

	userservice "github.com/Black-And-White-Club/nascon/app/modules/user/application"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"go.opentelemetry.io/otel/trace"
)

// UserHandlers implements the Handlers interface.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service userservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &UserHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

func (h *UserHandlers) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleRegister")
	defer span.End()

	var req userservice.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	id, err := h.service.Register(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "User registered", attr.Int64("user_id", id))
	httpx.WriteJSON(w, http.StatusCreated, registerResponse{Message: "User registered successfully", UserID: id})
}

func (h *UserHandlers) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleGetUser")
	defer span.End()

	id, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	user, err := h.service.GetUser(ctx, id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandlers) HandleListJudges(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleListJudges")
	defer span.End()

	judges, err := h.service.ListJudges(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, judges)
}

package registrationhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	authdomain "github.com/Black-And-White-Club/nascon/app/modules/auth/domain"
	registrationservice "github.com/Black-And-White-Club/nascon/app/modules/registration/application"
	"github.com/Black-And-White-Club/nascon/app/shared/apperr"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"go.opentelemetry.io/otel/trace"
)

// RegistrationHandlers implements the Handlers interface.
type RegistrationHandlers struct {
	service registrationservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRegistrationHandlers creates a new RegistrationHandlers instance.
func NewRegistrationHandlers(service registrationservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &RegistrationHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// actsFor rejects requests made on behalf of another user unless the caller
// is an organizer.
func actsFor(r *http.Request, userID int64) error {
	sess, _ := authdomain.SessionFromContext(r.Context())
	if sess.IsUser(userID) || sess.HasRole(authdomain.RoleOrganizer) {
		return nil
	}
	return apperr.Forbidden("cannot act on behalf of user %d", userID)
}

func (h *RegistrationHandlers) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RegistrationHandlers.HandleRegister")
	defer span.End()

	var req registrationservice.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := actsFor(r, req.UserID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	reg, err := h.service.Register(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":        "Registration successful",
		"registrationId": reg.RegistrationID,
	})
}

func (h *RegistrationHandlers) HandleCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RegistrationHandlers.HandleCount")
	defer span.End()

	eventID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	count, err := h.service.CountRegistrations(ctx, eventID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}

func (h *RegistrationHandlers) HandleGetRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RegistrationHandlers.HandleGetRegistration")
	defer span.End()

	eventID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	userID, err := httpx.Int64Param(r, "userId")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	reg, err := h.service.GetRegistration(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, map[string]any{"registered": false})
			return
		}
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"registered":   true,
		"registration": reg,
	})
}

func (h *RegistrationHandlers) HandleListParticipants(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RegistrationHandlers.HandleListParticipants")
	defer span.End()

	eventID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	list, err := h.service.ListParticipants(ctx, eventID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *RegistrationHandlers) HandleListUserRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RegistrationHandlers.HandleListUserRegistrations")
	defer span.End()

	userID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	list, err := h.service.ListUserRegistrations(ctx, userID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *RegistrationHandlers) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RegistrationHandlers.HandleCreateTeam")
	defer span.End()

	var req registrationservice.TeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if err := actsFor(r, req.LeaderID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	team, err := h.service.CreateTeam(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, team)
}

func (h *RegistrationHandlers) HandleListUserTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RegistrationHandlers.HandleListUserTeams")
	defer span.End()

	userID, err := httpx.Int64Param(r, "id")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	teams, err := h.service.ListUserTeams(ctx, userID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teams)
}

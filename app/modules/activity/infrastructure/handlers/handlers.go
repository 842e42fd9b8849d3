package activityhandlers

import (
	"log/slog"
	"net/http"

	activityservice "github.com/Black-And-White-Club/nascon/app/modules/activity/application"
	activitydomain "github.com/Black-And-White-Club/nascon/app/modules/activity/domain"
	"github.com/Black-And-White-Club/nascon/app/shared/attr"
	"github.com/Black-And-White-Club/nascon/app/shared/eventbus"
	"github.com/Black-And-White-Club/nascon/app/shared/events"
	"github.com/Black-And-White-Club/nascon/app/shared/httpx"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// ActivityHandlers implements the Handlers interface.
type ActivityHandlers struct {
	service activityservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewActivityHandlers creates a new ActivityHandlers instance.
func NewActivityHandlers(service activityservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &ActivityHandlers{service: service, logger: logger, tracer: tracer}
}

// HandleDomainEvent records one bus message. Payloads that cannot be decoded
// are acked and dropped; storage failures are returned so the router retries.
func (h *ActivityHandlers) HandleDomainEvent(msg *message.Message) error {
	topic := message.SubscribeTopicFromCtx(msg.Context())
	correlationID := eventbus.CorrelationID(msg)
	ctx := attr.WithCorrelationID(msg.Context(), correlationID)

	ctx, span := h.tracer.Start(ctx, "ActivityHandlers.HandleDomainEvent")
	defer span.End()

	var evt events.DomainEvent
	if err := eventbus.Decode(msg, &evt); err != nil {
		h.logger.WarnContext(ctx, "Dropping malformed domain event",
			attr.String("message_id", msg.UUID),
			attr.String("topic", topic),
			attr.Error(err),
		)
		return nil
	}

	if err := h.service.Record(ctx, activityservice.Record{
		MessageID:     msg.UUID,
		Topic:         topic,
		CorrelationID: correlationID,
		Event:         evt,
	}); err != nil {
		h.logger.ErrorContext(ctx, "Failed to record activity",
			attr.String("message_id", msg.UUID),
			attr.String("topic", topic),
			attr.Error(err),
		)
		return err
	}
	return nil
}

func (h *ActivityHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ActivityHandlers.HandleList")
	defer span.End()

	limit, err := httpx.QueryInt(r, "limit", activitydomain.DefaultLimit)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	entries, err := h.service.Recent(ctx, limit)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entries)
}

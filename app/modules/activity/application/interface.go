package activityservice

import (
	"context"

	activitydb "github.com/Black-And-White-Club/nascon/app/modules/activity/infrastructure/repositories"
	"github.com/Black-And-White-Club/nascon/app/shared/events"
)

// Record describes one delivered bus message.
type Record struct {
	MessageID     string
	Topic         string
	CorrelationID string
	Event         events.DomainEvent
}

// Service defines the activity feed operations.
type Service interface {
	Record(ctx context.Context, rec Record) error
	Recent(ctx context.Context, limit int) ([]activitydb.Entry, error)
}

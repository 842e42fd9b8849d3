package activitydb

import (
	"time"

	"github.com/uptrace/bun"
)

// Entry is one domain event as recorded in the activity feed.
type Entry struct {
	bun.BaseModel `bun:"table:activity_feed,alias:af"`
	ActivityID    int64     `bun:"activity_id,pk,autoincrement" json:"ActivityID"`
	MessageID     string    `bun:"message_id,notnull" json:"-"`
	Topic         string    `bun:"topic,notnull" json:"Topic"`
	EntityID      int64     `bun:"entity_id,notnull" json:"EntityID"`
	ActorID       *int64    `bun:"actor_id" json:"ActorID"`
	EventID       *int64    `bun:"event_id" json:"EventID"`
	Summary       string    `bun:"summary,notnull" json:"Summary"`
	CorrelationID *string   `bun:"correlation_id" json:"CorrelationID"`
	CreatedAt     time.Time `bun:"created_at,notnull" json:"CreatedAt"`
}

package judgedb

import (
	"time"

	"github.com/uptrace/bun"
)

// Assignment authorizes a judge to score one event.
type Assignment struct {
	bun.BaseModel `bun:"table:judge_assignments,alias:ja"`
	AssignmentID  int64     `bun:"assignment_id,pk,autoincrement" json:"AssignmentID"`
	JudgeID       int64     `bun:"judge_id,notnull" json:"JudgeID"`
	EventID       int64     `bun:"event_id,notnull" json:"EventID"`
	AssignedAt    time.Time `bun:"assigned_at,notnull,default:current_timestamp" json:"AssignedAt"`
}

// AssignmentDetail is an assignment joined with its event and venue.
type AssignmentDetail struct {
	AssignmentID  int64     `bun:"assignment_id" json:"AssignmentID"`
	EventID       int64     `bun:"event_id" json:"EventID"`
	EventName     string    `bun:"event_name" json:"EventName"`
	EventType     string    `bun:"event_type" json:"EventType"`
	EventDateTime time.Time `bun:"event_date_time" json:"EventDateTime"`
	VenueName     *string   `bun:"venue_name" json:"VenueName"`
	AssignedAt    time.Time `bun:"assigned_at" json:"AssignedAt"`
}

package scoredb

import (
	"time"

	"github.com/uptrace/bun"
)

// Score is one judge's mark for one participant in one round of an event.
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:s"`
	ScoreID       int64     `bun:"score_id,pk,autoincrement" json:"ScoreID"`
	JudgeID       int64     `bun:"judge_id,notnull" json:"JudgeID"`
	ParticipantID int64     `bun:"participant_id,notnull" json:"ParticipantID"`
	EventID       int64     `bun:"event_id,notnull" json:"EventID"`
	Round         string    `bun:"round,notnull" json:"Round"`
	Score         float64   `bun:"score,notnull" json:"Score"`
	SubmittedAt   time.Time `bun:"submitted_at,notnull,default:current_timestamp" json:"SubmittedAt"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"UpdatedAt"`
}

// JudgeScore is a score joined with the participant's name.
type JudgeScore struct {
	ScoreID       int64     `bun:"score_id" json:"ScoreID"`
	ParticipantID int64     `bun:"participant_id" json:"ParticipantID"`
	FullName      string    `bun:"full_name" json:"FullName"`
	Round         string    `bun:"round" json:"Round"`
	Score         float64   `bun:"score" json:"Score"`
	UpdatedAt     time.Time `bun:"updated_at" json:"UpdatedAt"`
}

package eventqueue

import "time"

// ReminderKind is the river job kind for event reminders.
const ReminderKind = "event_reminder"

// EventReminderJob fires ahead of an event and announces it on the event bus.
type EventReminderJob struct {
	EventID       int64     `json:"event_id"`
	EventName     string    `json:"event_name"`
	EventDateTime time.Time `json:"event_date_time"`
}

// Kind returns the job type identifier for River.
func (EventReminderJob) Kind() string { return ReminderKind }

// JobInfo describes a scheduled job.
type JobInfo struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"kind"`
	State       string    `json:"state"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

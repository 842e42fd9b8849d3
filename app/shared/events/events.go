// Package events lists the domain topics published on the event bus.
package events

import "time"

const (
	EventCreated        = "event.created"
	EventUpdated        = "event.updated"
	EventDeleted        = "event.deleted"
	EventReminderDue    = "event.reminder.due"
	VenueCreated        = "venue.created"
	RegistrationCreated = "registration.created"
	TeamCreated         = "team.created"
	JudgeAssigned       = "judge.assigned"
	JudgeUnassigned     = "judge.unassigned"
	ScoreSubmitted      = "score.submitted"
	PaymentRecorded     = "payment.recorded"
	SponsorshipSigned   = "sponsorship.signed"
	AccommodationBooked = "accommodation.requested"
	UserRegistered      = "user.registered"
)

// All is every topic the activity feed listens to.
var All = []string{
	EventCreated, EventUpdated, EventDeleted, EventReminderDue,
	VenueCreated, RegistrationCreated, TeamCreated,
	JudgeAssigned, JudgeUnassigned, ScoreSubmitted,
	PaymentRecorded, SponsorshipSigned, AccommodationBooked, UserRegistered,
}

// DomainEvent is the payload of every domain topic.
type DomainEvent struct {
	EntityID   int64     `json:"entity_id"`
	ActorID    *int64    `json:"actor_id,omitempty"`
	EventID    *int64    `json:"event_id,omitempty"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}

package activityhandlers

import (
	"net/http"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Handlers covers the feed's bus consumer and its HTTP endpoint.
type Handlers interface {
	HandleDomainEvent(msg *message.Message) error
	HandleList(w http.ResponseWriter, r *http.Request)
}

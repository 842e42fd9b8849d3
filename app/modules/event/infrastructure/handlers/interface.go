package eventhandlers

import "net/http"

// Handlers defines the HTTP endpoints of the event module.
type Handlers interface {
	HandleListEvents(w http.ResponseWriter, r *http.Request)
	HandleGetEvent(w http.ResponseWriter, r *http.Request)
	HandleCreateEvent(w http.ResponseWriter, r *http.Request)
	HandleUpdateEvent(w http.ResponseWriter, r *http.Request)
	HandleDeleteEvent(w http.ResponseWriter, r *http.Request)
	HandleListJudges(w http.ResponseWriter, r *http.Request)
}

package registrationhandlers

import "net/http"

// Handlers defines the HTTP endpoints of the registration module.
type Handlers interface {
	HandleRegister(w http.ResponseWriter, r *http.Request)
	HandleCount(w http.ResponseWriter, r *http.Request)
	HandleGetRegistration(w http.ResponseWriter, r *http.Request)
	HandleListParticipants(w http.ResponseWriter, r *http.Request)
	HandleListUserRegistrations(w http.ResponseWriter, r *http.Request)
	HandleCreateTeam(w http.ResponseWriter, r *http.Request)
	HandleListUserTeams(w http.ResponseWriter, r *http.Request)
}

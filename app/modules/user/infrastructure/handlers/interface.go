package userhandlers

import "net/http"

// Handlers defines the HTTP endpoints of the user module.
type Handlers interface {
	HandleRegister(w http.ResponseWriter, r *http.Request)
	HandleGetUser(w http.ResponseWriter, r *http.Request)
	HandleListJudges(w http.ResponseWriter, r *http.Request)
}

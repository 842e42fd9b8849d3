package accommodationhandlers

import "net/http"

// Handlers defines the HTTP endpoints of the accommodation module.
type Handlers interface {
	HandleRequest(w http.ResponseWriter, r *http.Request)
	HandleListUserAccommodation(w http.ResponseWriter, r *http.Request)
	HandleUpdate(w http.ResponseWriter, r *http.Request)
	HandleDelete(w http.ResponseWriter, r *http.Request)
	HandleSearch(w http.ResponseWriter, r *http.Request)
	HandleReport(w http.ResponseWriter, r *http.Request)
}

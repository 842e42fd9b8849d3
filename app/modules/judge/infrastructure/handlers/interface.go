package judgehandlers

import "net/http"

// Handlers defines the HTTP endpoints of the judge module.
type Handlers interface {
	HandleAssign(w http.ResponseWriter, r *http.Request)
	HandleUnassign(w http.ResponseWriter, r *http.Request)
	HandleListAssignments(w http.ResponseWriter, r *http.Request)
}

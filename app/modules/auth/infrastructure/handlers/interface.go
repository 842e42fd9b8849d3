package authhandlers

import "net/http"

// Handlers defines the HTTP endpoints of the auth module.
type Handlers interface {
	HandleLogin(w http.ResponseWriter, r *http.Request)
}

package leaderboardhandlers

import "net/http"

// Handlers defines the HTTP endpoints of the leaderboard module.
type Handlers interface {
	HandleLeaderboard(w http.ResponseWriter, r *http.Request)
	HandleExport(w http.ResponseWriter, r *http.Request)
}

package scorehandlers

import "net/http"

// Handlers defines the HTTP endpoints of the score module.
type Handlers interface {
	HandleSubmitScore(w http.ResponseWriter, r *http.Request)
	HandleJudgeScores(w http.ResponseWriter, r *http.Request)
	HandleCoverage(w http.ResponseWriter, r *http.Request)
}

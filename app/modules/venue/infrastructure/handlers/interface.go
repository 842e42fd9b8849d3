package venuehandlers

import "net/http"

// Handlers defines the HTTP endpoints of the venue module.
type Handlers interface {
	HandleListVenues(w http.ResponseWriter, r *http.Request)
	HandleGetVenue(w http.ResponseWriter, r *http.Request)
	HandleCreateVenue(w http.ResponseWriter, r *http.Request)
	HandleUpdateVenue(w http.ResponseWriter, r *http.Request)
	HandleDeleteVenue(w http.ResponseWriter, r *http.Request)
	HandleAvailability(w http.ResponseWriter, r *http.Request)
	HandleSchedules(w http.ResponseWriter, r *http.Request)
	HandleUtilization(w http.ResponseWriter, r *http.Request)
	HandleUtilizationChart(w http.ResponseWriter, r *http.Request)
}

package financehandlers

import "net/http"

// Handlers defines the HTTP endpoints of the finance module.
type Handlers interface {
	HandleRecordPayment(w http.ResponseWriter, r *http.Request)
	HandleListUserPayments(w http.ResponseWriter, r *http.Request)

	HandlePackages(w http.ResponseWriter, r *http.Request)
	HandleSignContract(w http.ResponseWriter, r *http.Request)
	HandleListContracts(w http.ResponseWriter, r *http.Request)
	HandleListSponsorContracts(w http.ResponseWriter, r *http.Request)
	HandleUpdateBranding(w http.ResponseWriter, r *http.Request)
	HandleStatistics(w http.ResponseWriter, r *http.Request)

	HandleSummary(w http.ResponseWriter, r *http.Request)
	HandleReport(w http.ResponseWriter, r *http.Request)
	HandleExportReport(w http.ResponseWriter, r *http.Request)
}

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oseuis57/web-ecovision/internal/model"
	"github.com/oseuis57/web-ecovision/util"
	"github.com/oseuis57/web-ecovision/util/values"
)

func (api *API) ReportRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.SubmitReport))
	mux.Method(http.MethodGet, "/", Handler(api.ListReports))
	mux.Method(http.MethodGet, "/stats", Handler(api.GetReportStats))
	mux.Method(http.MethodGet, "/filters", Handler(api.GetReportFilters))
	mux.Method(http.MethodGet, "/{reportID}", Handler(api.GetReportByID))
	mux.Method(http.MethodPatch, "/{reportID}/status", Handler(api.UpdateReportStatus))
	mux.Method(http.MethodPost, "/{reportID}/assign", Handler(api.AssignTeam))

	return mux
}

// SubmitReport stores a classified draft as a new pending report. A
// draft may carry its (type, level) pair directly or reference a
// completed classification by token; either way a draft whose
// classification has not finished is rejected.
func (api *API) SubmitReport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.SubmitReportRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if validateErr := util.ValidateStruct(req); validateErr != nil {
		return respondWithError(validateErr, "invalid report location", values.Unprocessable, &tc)
	}

	report, status, message, err := api.SubmitReportHelper(req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

// ListReports returns the report set newest-first, optionally narrowed
// by the type query parameter the same way the map sidebar narrows its
// list.
func (api *API) ListReports(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	typeFilter := r.URL.Query().Get("type")
	reports, filters, status, message, err := api.ListReportsHelper(typeFilter)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data: map[string]interface{}{
			"reports": reports,
			"filters": filters,
		},
	}
}

func (api *API) GetReportByID(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	reportID := chi.URLParam(r, "reportID")
	report, status, message, err := api.GetReportHelper(reportID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

// UpdateReportStatus overwrites a report's triage status. Transitions
// are never rejected; the only failure is an unknown id, which leaves
// the store untouched.
func (api *API) UpdateReportStatus(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.UpdateStatusRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	reportID := chi.URLParam(r, "reportID")
	report, status, message, err := api.UpdateReportStatusHelper(reportID, req.Status)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       report,
	}
}

// AssignTeam notifies a response team about a report. The
// acknowledgement is the whole effect; the report itself is not
// mutated.
func (api *API) AssignTeam(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req model.AssignTeamRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if !util.NotBlank(req.TeamName) || !util.NotBlank(req.TeamContact) {
		return respondWithError(errMissingTeamFields, "team name and contact are required", values.Unprocessable, &tc)
	}

	reportID := chi.URLParam(r, "reportID")
	ack, status, message, err := api.AssignTeamHelper(reportID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       ack,
	}
}

// GetReportStats returns the triage aggregates derived from the
// current report set.
func (api *API) GetReportStats(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	summary, status, message, err := api.GetReportStatsHelper()
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       summary,
	}
}

// GetReportFilters lists the selectable type-filter values for the
// current report set.
func (api *API) GetReportFilters(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	filters, status, message, err := api.ListReportFiltersHelper()
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       filters,
	}
}

package rest

import (
	"fmt"

	"github.com/oseuis57/web-ecovision/internal/filter"
	"github.com/oseuis57/web-ecovision/internal/model"
	"github.com/oseuis57/web-ecovision/internal/stats"
	"github.com/oseuis57/web-ecovision/internal/store"
	"github.com/oseuis57/web-ecovision/util/values"
	"github.com/oseuis57/web-ecovision/util/websockets"
	"github.com/pkg/errors"
)

var errMissingTeamFields = errors.New("missing team fields")

func (api *API) SubmitReportHelper(req model.SubmitReportRequest) (model.Report, string, string, error) {
	if req.ClassificationToken != "" {
		typ, level, err := api.Deps.Classifier.Consume(req.ClassificationToken)
		if err != nil {
			return model.Report{}, values.Unprocessable, "Classification has not completed", err
		}
		req.Type = typ
		req.Level = level
	}

	report, err := api.Deps.Store.Submit(req)
	if err != nil {
		if errors.Is(err, store.ErrIncompleteSubmission) {
			return model.Report{}, values.Unprocessable, "Report is missing its classification", err
		}
		return model.Report{}, values.Error, "Failed to submit report", err
	}

	api.Deps.WebSocket.BroadcastEvent(websockets.Event{
		Type:     websockets.EventReportCreated,
		ReportID: report.ID,
		Report:   &report,
	})
	return report, values.Created, "Report submitted successfully", nil
}

func (api *API) ListReportsHelper(typeFilter string) ([]model.Report, []string, string, string, error) {
	reports := api.Deps.Store.All()

	f := filter.New()
	f.Set(typeFilter)
	visible := f.Visible(reports)

	return visible, filter.Options(reports), values.Success, "Reports fetched successfully", nil
}

func (api *API) GetReportHelper(reportID string) (model.Report, string, string, error) {
	report, err := api.Deps.Store.Get(reportID)
	if err != nil {
		return model.Report{}, values.NotFound, "Report not found", err
	}
	return report, values.Success, "Report fetched successfully", nil
}

func (api *API) UpdateReportStatusHelper(reportID string, status model.Status) (model.Report, string, string, error) {
	if !status.Valid() {
		return model.Report{}, values.Unprocessable, "Unknown report status", errors.Errorf("unknown status %q", status)
	}

	report, err := api.Deps.Store.UpdateStatus(reportID, status)
	if err != nil {
		if errors.Is(err, store.ErrReportNotFound) {
			return model.Report{}, values.NotFound, "Report not found", err
		}
		return model.Report{}, values.Error, "Failed to update report status", err
	}

	api.Deps.WebSocket.BroadcastEvent(websockets.Event{
		Type:     websockets.EventReportStatusChanged,
		ReportID: report.ID,
		Report:   &report,
	})
	return report, values.Success, "Report status updated successfully", nil
}

func (api *API) AssignTeamHelper(reportID string, req model.AssignTeamRequest) (model.AssignTeamResponse, string, string, error) {
	report, err := api.Deps.Store.Get(reportID)
	if err != nil {
		return model.AssignTeamResponse{}, values.NotFound, "Report not found", err
	}

	ack := model.AssignTeamResponse{
		ReportID:    report.ID,
		TeamName:    req.TeamName,
		TeamContact: req.TeamContact,
		Message: fmt.Sprintf("Equipo %q asignado al reporte #%s. Contacto: %s",
			req.TeamName, report.ID, req.TeamContact),
	}

	api.Deps.WebSocket.BroadcastEvent(websockets.Event{
		Type:     websockets.EventTeamAssigned,
		ReportID: report.ID,
		Message:  ack.Message,
	})
	return ack, values.Success, "Team assigned successfully", nil
}

func (api *API) GetReportStatsHelper() (stats.Summary, string, string, error) {
	summary := stats.Compute(api.Deps.Store.All())
	return summary, values.Success, "Report stats computed successfully", nil
}

func (api *API) ListReportFiltersHelper() ([]string, string, string, error) {
	return filter.Options(api.Deps.Store.All()), values.Success, "Report filters fetched successfully", nil
}

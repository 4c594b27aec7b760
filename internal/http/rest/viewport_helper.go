package rest

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oseuis57/web-ecovision/internal/geo"
	"github.com/oseuis57/web-ecovision/internal/viewport"
	"github.com/oseuis57/web-ecovision/util"
	"github.com/oseuis57/web-ecovision/util/tracing"
	"github.com/oseuis57/web-ecovision/util/values"
)

type viewportSession = viewport.Session

// withViewport runs a camera mutation under the session lock and
// returns the resulting state. Pan, zoom and drag never fail; the only
// error is an unknown session.
func (api *API) withViewport(r *http.Request, tc *tracing.Context, mutate func(*viewportSession)) *ServerResponse {
	session, err := api.Deps.Viewports.Get(chi.URLParam(r, "viewportID"))
	if err != nil {
		return respondWithError(err, "Viewport not found", values.NotFound, tc)
	}

	session.Lock()
	mutate(session)
	state := session.View.State()
	filterValue := session.Filter.Value()
	session.Unlock()

	return &ServerResponse{
		Message:    "Viewport updated",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"id":     session.ID,
			"state":  state,
			"filter": filterValue,
		},
	}
}

// visibleMarkers projects the session's visible reports onto the map
// plane. Callers hold the session lock.
func (api *API) visibleMarkers(session *viewportSession) []viewport.Marker {
	visible := session.Filter.Visible(api.Deps.Store.All())

	markers := make([]viewport.Marker, 0, len(visible))
	for _, report := range visible {
		pos, err := api.Deps.Projector.Project(report.Location.Latitude, report.Location.Longitude)
		if err != nil {
			// Stored reports are validated on submit; an invalid one
			// here is a bug worth hearing about, not worth a 500.
			log.Printf("skipping report %s with unprojectable location: %v", report.ID, err)
			continue
		}
		markers = append(markers, viewport.Marker{ID: report.ID, Pos: pos})
	}
	return markers
}

// renderedMarker is a marker composed with the camera transform.
type renderedMarker struct {
	ID       string    `json:"id"`
	Plane    geo.Point `json:"plane"`
	Rendered geo.Point `json:"rendered"`
}

// renderedMarkers composes each visible marker with the current
// camera: rendered = pan + plane * zoom. Callers hold the session
// lock.
func (api *API) renderedMarkers(session *viewportSession) []renderedMarker {
	markers := api.visibleMarkers(session)

	rendered := make([]renderedMarker, 0, len(markers))
	for _, m := range markers {
		rendered = append(rendered, renderedMarker{
			ID:       m.ID,
			Plane:    m.Pos,
			Rendered: session.View.Render(m.Pos),
		})
	}
	return rendered
}

// overlayShape encodes the visible report coordinates newest-first.
// Callers hold the session lock.
func (api *API) overlayShape(session *viewportSession) string {
	visible := session.Filter.Visible(api.Deps.Store.All())

	coords := make([][]float64, 0, len(visible))
	for _, report := range visible {
		coords = append(coords, []float64{report.Location.Latitude, report.Location.Longitude})
	}
	return util.EncodeOverlay(coords)
}

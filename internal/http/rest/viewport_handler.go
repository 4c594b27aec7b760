package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oseuis57/web-ecovision/internal/geo"
	"github.com/oseuis57/web-ecovision/util"
	"github.com/oseuis57/web-ecovision/util/values"
)

func (api *API) ViewportRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/", Handler(api.OpenViewport))
	mux.Method(http.MethodGet, "/{viewportID}", Handler(api.GetViewport))
	mux.Method(http.MethodDelete, "/{viewportID}", Handler(api.CloseViewport))

	mux.Method(http.MethodPost, "/{viewportID}/pan", Handler(api.SetViewportPan))
	mux.Method(http.MethodPost, "/{viewportID}/zoom", Handler(api.SetViewportZoom))
	mux.Method(http.MethodPost, "/{viewportID}/zoom/in", Handler(api.ViewportZoomIn))
	mux.Method(http.MethodPost, "/{viewportID}/zoom/out", Handler(api.ViewportZoomOut))
	mux.Method(http.MethodPost, "/{viewportID}/wheel", Handler(api.ViewportWheel))
	mux.Method(http.MethodPost, "/{viewportID}/drag/begin", Handler(api.ViewportBeginDrag))
	mux.Method(http.MethodPost, "/{viewportID}/drag/move", Handler(api.ViewportDrag))
	mux.Method(http.MethodPost, "/{viewportID}/drag/end", Handler(api.ViewportEndDrag))
	mux.Method(http.MethodPost, "/{viewportID}/click", Handler(api.ViewportClick))
	mux.Method(http.MethodPost, "/{viewportID}/select", Handler(api.ViewportSelect))
	mux.Method(http.MethodPost, "/{viewportID}/filter", Handler(api.SetViewportFilter))

	mux.Method(http.MethodGet, "/{viewportID}/markers", Handler(api.GetViewportMarkers))
	mux.Method(http.MethodGet, "/{viewportID}/overlay", Handler(api.GetViewportOverlay))

	return mux
}

type pointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type zoomRequest struct {
	Zoom float64 `json:"zoom"`
}

type wheelRequest struct {
	DeltaY float64 `json:"delta_y"`
}

type selectRequest struct {
	ReportID string `json:"report_id"`
}

type filterRequest struct {
	Type string `json:"type"`
}

// OpenViewport creates a map-view session with default camera state.
func (api *API) OpenViewport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	session := api.Deps.Viewports.Open()

	session.Lock()
	state := session.View.State()
	session.Unlock()

	return &ServerResponse{
		Message:    "Viewport opened",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data: map[string]interface{}{
			"id":     session.ID,
			"state":  state,
			"filter": session.Filter.Value(),
		},
	}
}

func (api *API) GetViewport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	session, err := api.Deps.Viewports.Get(chi.URLParam(r, "viewportID"))
	if err != nil {
		return respondWithError(err, "Viewport not found", values.NotFound, &tc)
	}

	session.Lock()
	state := session.View.State()
	filterValue := session.Filter.Value()
	session.Unlock()

	return &ServerResponse{
		Message:    "Viewport fetched successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"id":     session.ID,
			"state":  state,
			"filter": filterValue,
		},
	}
}

// CloseViewport tears the session down; its camera state is discarded.
func (api *API) CloseViewport(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	if err := api.Deps.Viewports.Close(chi.URLParam(r, "viewportID")); err != nil {
		return respondWithError(err, "Viewport not found", values.NotFound, &tc)
	}

	return &ServerResponse{
		Message:    "Viewport closed",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) SetViewportPan(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req pointRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.View.SetPan(req.X, req.Y)
	})
}

// SetViewportZoom writes an absolute zoom. Out-of-range values are
// saturated, never rejected.
func (api *API) SetViewportZoom(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req zoomRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.View.SetZoom(req.Zoom)
	})
}

func (api *API) ViewportZoomIn(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)
	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.View.ZoomIn()
	})
}

func (api *API) ViewportZoomOut(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)
	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.View.ZoomOut()
	})
}

func (api *API) ViewportWheel(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req wheelRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.View.Wheel(req.DeltaY)
	})
}

func (api *API) ViewportBeginDrag(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req pointRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.View.BeginDrag(geo.Point{X: req.X, Y: req.Y})
	})
}

func (api *API) ViewportDrag(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req pointRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.View.Drag(geo.Point{X: req.X, Y: req.Y})
	})
}

// ViewportEndDrag terminates a drag. The release may come from
// anywhere, including outside the map surface, so it carries no
// coordinates and is always accepted.
func (api *API) ViewportEndDrag(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)
	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.View.EndDrag()
	})
}

// ViewportClick routes a primary-button press: a press on a marker
// selects it and never starts a drag, a press on open map starts one.
func (api *API) ViewportClick(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req pointRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	session, err := api.Deps.Viewports.Get(chi.URLParam(r, "viewportID"))
	if err != nil {
		return respondWithError(err, "Viewport not found", values.NotFound, &tc)
	}

	session.Lock()
	markers := api.visibleMarkers(session)
	id, hit := session.View.PointerDown(geo.Point{X: req.X, Y: req.Y}, markers)
	state := session.View.State()
	session.Unlock()

	return &ServerResponse{
		Message:    "Click handled",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"state":    state,
			"hit":      hit,
			"selected": id,
		},
	}
}

// ViewportSelect sets or clears the selection explicitly; an empty
// report_id returns to the list view.
func (api *API) ViewportSelect(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req selectRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.View.Select(req.ReportID)
	})
}

// SetViewportFilter narrows the session's visible report set by type.
func (api *API) SetViewportFilter(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	var req filterRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	return api.withViewport(r, &tc, func(s *viewportSession) {
		s.Filter.Set(req.Type)
	})
}

// GetViewportMarkers returns the rendered positions of the session's
// visible reports under the current camera.
func (api *API) GetViewportMarkers(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	session, err := api.Deps.Viewports.Get(chi.URLParam(r, "viewportID"))
	if err != nil {
		return respondWithError(err, "Viewport not found", values.NotFound, &tc)
	}

	session.Lock()
	rendered := api.renderedMarkers(session)
	state := session.View.State()
	session.Unlock()

	return &ServerResponse{
		Message:    "Markers rendered successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"state":   state,
			"markers": rendered,
		},
	}
}

// GetViewportOverlay returns the visible report coordinates as an
// encoded polyline, a compact payload for map overlays.
func (api *API) GetViewportOverlay(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracingFromRequest(r)

	session, err := api.Deps.Viewports.Get(chi.URLParam(r, "viewportID"))
	if err != nil {
		return respondWithError(err, "Viewport not found", values.NotFound, &tc)
	}

	session.Lock()
	shape := api.overlayShape(session)
	session.Unlock()

	return &ServerResponse{
		Message:    "Overlay encoded successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       map[string]string{"shape": shape},
	}
}

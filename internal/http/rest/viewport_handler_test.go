package rest

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/oseuis57/web-ecovision/internal/model"
	"github.com/oseuis57/web-ecovision/util"
)

func openViewport(t *testing.T, handler http.Handler) string {
	t.Helper()

	rec, resp := doJSON(t, handler, http.MethodPost, "/viewports", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("open viewport returned %d: %v", rec.Code, resp)
	}
	return resp["data"].(map[string]interface{})["id"].(string)
}

func viewportState(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	return resp["data"].(map[string]interface{})["state"].(map[string]interface{})
}

func TestViewportDragAndZoomFlow(t *testing.T) {
	api := newTestAPI()
	handler := api.SetupServerHandler()
	id := openViewport(t, handler)

	doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/drag/begin", id),
		map[string]float64{"x": 100, "y": 100})
	doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/drag/move", id),
		map[string]float64{"x": 130, "y": 160})
	_, resp := doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/drag/end", id), nil)

	state := viewportState(t, resp)
	pan := state["pan"].(map[string]interface{})
	if pan["x"].(float64) != 30 || pan["y"].(float64) != 60 {
		t.Errorf("pan after drag = %v; want (30, 60)", pan)
	}

	// Zoom leaves the pan untouched.
	_, resp = doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/zoom", id),
		map[string]float64{"zoom": 2})
	state = viewportState(t, resp)
	pan = state["pan"].(map[string]interface{})
	if pan["x"].(float64) != 30 || pan["y"].(float64) != 60 {
		t.Errorf("pan after zoom = %v; want (30, 60)", pan)
	}
	if state["zoom"].(float64) != 2 {
		t.Errorf("zoom = %v; want 2", state["zoom"])
	}

	// Absolute zoom saturates instead of failing.
	_, resp = doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/zoom", id),
		map[string]float64{"zoom": 50})
	if got := viewportState(t, resp)["zoom"].(float64); got != 3 {
		t.Errorf("zoom = %v; want clamped 3", got)
	}
}

func TestViewportMarkersFollowCamera(t *testing.T) {
	api := newTestAPI()
	handler := api.SetupServerHandler()
	report := submitDraft(t, handler) // at the projection center -> plane (50, 50)
	id := openViewport(t, handler)

	doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/pan", id),
		map[string]float64{"x": 30, "y": 60})
	doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/zoom", id),
		map[string]float64{"zoom": 2})

	_, resp := doJSON(t, handler, http.MethodGet, fmt.Sprintf("/viewports/%s/markers", id), nil)
	markers := resp["data"].(map[string]interface{})["markers"].([]interface{})
	if len(markers) != 1 {
		t.Fatalf("markers = %v; want 1", markers)
	}
	marker := markers[0].(map[string]interface{})
	if marker["id"].(string) != report.ID {
		t.Errorf("marker id = %v; want %s", marker["id"], report.ID)
	}
	rendered := marker["rendered"].(map[string]interface{})
	// pan + plane*zoom = (30+100, 60+100)
	if rendered["x"].(float64) != 130 || rendered["y"].(float64) != 160 {
		t.Errorf("rendered = %v; want (130, 160)", rendered)
	}
}

func TestViewportClickSelectsMarker(t *testing.T) {
	api := newTestAPI()
	handler := api.SetupServerHandler()
	report := submitDraft(t, handler) // plane (50, 50)
	id := openViewport(t, handler)

	_, resp := doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/click", id),
		map[string]float64{"x": 55, "y": 45})
	data := resp["data"].(map[string]interface{})
	if hit := data["hit"].(bool); !hit {
		t.Fatal("click near the marker did not hit")
	}
	state := data["state"].(map[string]interface{})
	if state["selected_report_id"].(string) != report.ID {
		t.Errorf("selected = %v; want %s", state["selected_report_id"], report.ID)
	}
	if state["dragging"].(bool) {
		t.Error("marker click started a drag")
	}

	// A click on open map starts a drag and keeps the selection.
	_, resp = doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/click", id),
		map[string]float64{"x": 800, "y": 800})
	data = resp["data"].(map[string]interface{})
	state = data["state"].(map[string]interface{})
	if !state["dragging"].(bool) {
		t.Error("open-map click did not start a drag")
	}
	if state["selected_report_id"].(string) != report.ID {
		t.Error("open-map click cleared the selection")
	}

	// Only an explicit empty selection clears.
	_, resp = doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/select", id),
		map[string]string{"report_id": ""})
	state = viewportState(t, resp)
	if _, stillSelected := state["selected_report_id"]; stillSelected {
		t.Errorf("selection not cleared: %v", state)
	}
}

func TestViewportFilterNarrowsMarkersAndOverlay(t *testing.T) {
	api := newTestAPI()
	handler := api.SetupServerHandler()
	report := submitDraft(t, handler)
	id := openViewport(t, handler)

	_, resp := doJSON(t, handler, http.MethodGet, fmt.Sprintf("/viewports/%s/overlay", id), nil)
	shape := resp["data"].(map[string]interface{})["shape"].(string)
	coords, err := util.DecodeOverlay(shape)
	if err != nil {
		t.Fatalf("overlay shape does not decode: %v", err)
	}
	if len(coords) != 1 {
		t.Fatalf("overlay holds %d coords; want 1", len(coords))
	}

	doJSON(t, handler, http.MethodPost, fmt.Sprintf("/viewports/%s/filter", id),
		map[string]string{"type": string(model.TypeAir)})

	_, resp = doJSON(t, handler, http.MethodGet, fmt.Sprintf("/viewports/%s/markers", id), nil)
	if markers, ok := resp["data"].(map[string]interface{})["markers"].([]interface{}); ok && len(markers) != 0 {
		t.Errorf("filtered markers = %v; want none (report %s is %s)", markers, report.ID, report.Type)
	}

	_, resp = doJSON(t, handler, http.MethodGet, fmt.Sprintf("/viewports/%s/overlay", id), nil)
	if shape := resp["data"].(map[string]interface{})["shape"].(string); shape != "" {
		t.Errorf("filtered overlay = %q; want empty", shape)
	}
}

func TestViewportLifecycle(t *testing.T) {
	api := newTestAPI()
	handler := api.SetupServerHandler()
	id := openViewport(t, handler)

	rec, _ := doJSON(t, handler, http.MethodGet, "/viewports/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get viewport returned %d", rec.Code)
	}

	rec, _ = doJSON(t, handler, http.MethodDelete, "/viewports/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("close viewport returned %d", rec.Code)
	}

	rec, _ = doJSON(t, handler, http.MethodGet, "/viewports/"+id, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after close returned %d; want 404", rec.Code)
	}

	rec, _ = doJSON(t, handler, http.MethodPost, "/viewports/"+id+"/zoom/in", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("mutating a closed viewport returned %d; want 404", rec.Code)
	}
}

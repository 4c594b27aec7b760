package viewport

import (
	"github.com/oseuis57/web-ecovision/internal/geo"
)

// Options are the camera tunables. Zero values fall back to the
// defaults the map was tuned with.
type Options struct {
	ZoomMin        float64
	ZoomMax        float64
	WheelZoomStep  float64
	ButtonZoomStep float64
	HitRadius      float64
}

const (
	defaultZoomMin        = 0.5
	defaultZoomMax        = 3.0
	defaultWheelZoomStep  = 0.1
	defaultButtonZoomStep = 0.2
	defaultHitRadius      = 24
)

func (o Options) withDefaults() Options {
	if o.ZoomMin == 0 {
		o.ZoomMin = defaultZoomMin
	}
	if o.ZoomMax == 0 {
		o.ZoomMax = defaultZoomMax
	}
	if o.WheelZoomStep == 0 {
		o.WheelZoomStep = defaultWheelZoomStep
	}
	if o.ButtonZoomStep == 0 {
		o.ButtonZoomStep = defaultButtonZoomStep
	}
	if o.HitRadius == 0 {
		o.HitRadius = defaultHitRadius
	}
	return o
}

// Marker pairs a report id with its fixed projected plane position.
type Marker struct {
	ID  string    `json:"id"`
	Pos geo.Point `json:"pos"`
}

// State is a snapshot of the camera for callers.
type State struct {
	Pan              geo.Point `json:"pan"`
	Zoom             float64   `json:"zoom"`
	SelectedReportID string    `json:"selected_report_id,omitempty"`
	Dragging         bool      `json:"dragging"`
}

// Controller owns one map view's camera: pan offset, zoom factor, drag
// state and selection. It interprets pointer and wheel input and
// composes the projection with the camera transform. Methods are not
// safe for concurrent use; a Controller belongs to exactly one view.
type Controller struct {
	opts Options

	pan      geo.Point
	zoom     float64
	selected string
	dragging bool
	anchor   geo.Point
}

func NewController(opts Options) *Controller {
	return &Controller{opts: opts.withDefaults(), zoom: 1}
}

func (c *Controller) State() State {
	return State{
		Pan:              c.pan,
		Zoom:             c.zoom,
		SelectedReportID: c.selected,
		Dragging:         c.dragging,
	}
}

func (c *Controller) Pan() geo.Point { return c.pan }

func (c *Controller) Zoom() float64 { return c.zoom }

func (c *Controller) Selected() string { return c.selected }

func (c *Controller) Dragging() bool { return c.dragging }

// SetPan moves the camera directly. Pan is unrestricted.
func (c *Controller) SetPan(x, y float64) {
	c.pan = geo.Point{X: x, Y: y}
}

// SetZoom writes the zoom factor, saturating into the allowed range.
// Out-of-range values are clamped, never rejected.
func (c *Controller) SetZoom(zoom float64) {
	c.zoom = clamp(zoom, c.opts.ZoomMin, c.opts.ZoomMax)
}

// Wheel applies one discrete scroll notch: scrolling down zooms out,
// anything else zooms in.
func (c *Controller) Wheel(deltaY float64) {
	if deltaY > 0 {
		c.SetZoom(c.zoom - c.opts.WheelZoomStep)
	} else {
		c.SetZoom(c.zoom + c.opts.WheelZoomStep)
	}
}

func (c *Controller) ZoomIn() {
	c.SetZoom(c.zoom + c.opts.ButtonZoomStep)
}

func (c *Controller) ZoomOut() {
	c.SetZoom(c.zoom - c.opts.ButtonZoomStep)
}

// BeginDrag enters the dragging state, anchoring the pointer so that
// subsequent moves translate the pan directly.
func (c *Controller) BeginDrag(pointer geo.Point) {
	c.dragging = true
	c.anchor = pointer.Sub(c.pan)
}

// Drag updates the pan while a drag is active; input outside a drag is
// ignored.
func (c *Controller) Drag(pointer geo.Point) {
	if !c.dragging {
		return
	}
	c.pan = pointer.Sub(c.anchor)
}

// EndDrag leaves the dragging state. Releases are accepted from
// anywhere, including outside the view surface, and are idempotent; a
// drag that ends off-screen must still terminate.
func (c *Controller) EndDrag() {
	c.dragging = false
}

// Render composes a projected point with the camera: pan + P * zoom,
// with the transform origin at the viewport's visual center. A marker's
// rendered position is a pure function of (pan, zoom, projected point),
// which is what keeps it pinned to its geographic coordinate.
func (c *Controller) Render(p geo.Point) geo.Point {
	return c.pan.Add(p.Scale(c.zoom))
}

// Select records the selection. Selecting replaces any previous
// selection; the empty id clears it. Pan and zoom never clear a
// selection, only an explicit empty Select does.
func (c *Controller) Select(reportID string) {
	c.selected = reportID
}

// PointerDown routes a primary-button press: a press on a marker
// selects it and is consumed there, a press on open map starts a drag.
// The returned id is the hit marker, if any.
func (c *Controller) PointerDown(pointer geo.Point, markers []Marker) (string, bool) {
	if id, ok := c.hitTest(pointer, markers); ok {
		c.Select(id)
		return id, true
	}
	c.BeginDrag(pointer)
	return "", false
}

// hitTest finds the nearest rendered marker within the hit radius. The
// radius scales with zoom, matching markers drawn inside the
// transformed plane.
func (c *Controller) hitTest(pointer geo.Point, markers []Marker) (string, bool) {
	radius := c.opts.HitRadius * c.zoom
	bestID, bestDist := "", radius*radius
	hit := false
	for _, m := range markers {
		d := pointer.Sub(c.Render(m.Pos))
		if dist := d.X*d.X + d.Y*d.Y; dist <= bestDist {
			bestID, bestDist = m.ID, dist
			hit = true
		}
	}
	return bestID, hit
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

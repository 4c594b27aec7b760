package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/pkg/errors"
)

// ErrInvalidCoordinate reports a latitude/longitude outside the valid
// range or a non-finite value. It is a precondition violation surfaced
// to the caller, never silently clamped.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Point is a position on the projected map plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Projector maps geographic coordinates onto a local plane around a
// fixed reference point: an equirectangular approximation, accurate at
// city scale and increasingly distorted far from the center or near the
// poles. That limitation is documented behavior, not a defect.
type Projector struct {
	CenterLat float64
	CenterLng float64
	Scale     float64
	OriginX   float64
	OriginY   float64
}

// Project converts (lat, lng) to plane coordinates. It is pure and
// deterministic; the only failure mode is an invalid input coordinate.
func (p Projector) Project(lat, lng float64) (Point, error) {
	if err := ValidateLatLng(lat, lng); err != nil {
		return Point{}, err
	}
	return Point{
		X: p.OriginX + (lng-p.CenterLng)*p.Scale,
		Y: p.OriginY + (p.CenterLat-lat)*p.Scale,
	}, nil
}

// ValidateLatLng rejects non-finite values and coordinates outside
// [-90,90] x [-180,180].
func ValidateLatLng(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return errors.Wrapf(ErrInvalidCoordinate, "non-finite lat=%v lng=%v", lat, lng)
	}
	if !s2.LatLngFromDegrees(lat, lng).IsValid() {
		return errors.Wrapf(ErrInvalidCoordinate, "out of range lat=%v lng=%v", lat, lng)
	}
	return nil
}

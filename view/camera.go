package view

import "github.com/jakecoffman/cp"

const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 5.0
)

// Point is a 2D position in either screen or world space.
type Point = cp.Vector

// ZoomLimits bounds the camera zoom.
type ZoomLimits struct {
	Min float64
	Max float64
}

// DefaultZoomLimits returns the stock [0.1, 5] range.
func DefaultZoomLimits() ZoomLimits {
	return ZoomLimits{Min: DefaultMinZoom, Max: DefaultMaxZoom}
}

// Clamp limits z to the zoom range.
func (l ZoomLimits) Clamp(z float64) float64 {
	return cp.Clamp(z, l.Min, l.Max)
}

// Camera maps world coordinates onto the screen. The render pass scales by
// Zoom and then translates by the offset in zoomed space, so
// screen = (world + offset) * zoom.
type Camera struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

// NewCamera returns a camera at the origin with the given zoom.
func NewCamera(zoom float64) Camera {
	return Camera{Zoom: zoom}
}

// ScreenToWorld returns the world point under the screen point p.
func (c Camera) ScreenToWorld(p Point) Point {
	return Point{X: p.X/c.Zoom - c.OffsetX, Y: p.Y/c.Zoom - c.OffsetY}
}

// WorldToScreen applies the render transform to p.
func (c Camera) WorldToScreen(p Point) Point {
	return Point{X: (p.X + c.OffsetX) * c.Zoom, Y: (p.Y + c.OffsetY) * c.Zoom}
}

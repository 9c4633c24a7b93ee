// Package render draws the grid through a canvas-style transform stack.
package render

import "image/color"

// Surface is a 2D drawing target with a current transform. Scale and
// Translate compose like an HTML canvas: each call applies to coordinates
// before the transforms already in place.
type Surface interface {
	Size() (w, h int)
	ResetTransform()
	Scale(sx, sy float64)
	Translate(tx, ty float64)
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, clr color.Color)
}

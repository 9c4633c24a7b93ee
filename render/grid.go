package render

import (
	"image/color"

	"github.com/milk9111/gridview/view"
)

// Palette holds the fill colours for cells.
type Palette struct {
	Selected color.Color
	Default  color.Color
}

// DefaultPalette returns black for selected cells and light grey otherwise.
func DefaultPalette() Palette {
	return Palette{
		Selected: color.RGBA{0x00, 0x00, 0x00, 0xff},
		Default:  color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	}
}

// Renderer paints the grid for a camera and selection.
type Renderer struct {
	Grid    view.Grid
	Palette Palette
}

func NewRenderer(grid view.Grid, palette Palette) *Renderer {
	return &Renderer{Grid: grid, Palette: palette}
}

// Draw repaints every cell. The transform is reset first so nothing carries
// over from the previous frame.
func (r *Renderer) Draw(s Surface, cam view.Camera, sel *view.Selection) {
	s.ResetTransform()
	s.Scale(cam.Zoom, cam.Zoom)
	s.Translate(cam.OffsetX, cam.OffsetY)

	w, h := s.Size()
	tl := cam.ScreenToWorld(view.Point{X: 0, Y: 0})
	br := cam.ScreenToWorld(view.Point{X: float64(w), Y: float64(h)})
	s.ClearRect(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y)

	for x := 0; x < r.Grid.Columns; x++ {
		for y := 0; y < r.Grid.Rows; y++ {
			cell := view.Cell{X: x, Y: y}
			clr := r.Palette.Default
			if sel.Contains(cell) {
				clr = r.Palette.Selected
			}
			cx, cy, cw, ch := r.Grid.Bounds(cell)
			s.FillRect(cx, cy, cw, ch, clr)
		}
	}
}

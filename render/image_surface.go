package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface draws onto an *ebiten.Image. Cleared regions are filled with
// Background.
type ImageSurface struct {
	Background color.Color

	img *ebiten.Image
	geo ebiten.GeoM
}

func NewImageSurface(background color.Color) *ImageSurface {
	return &ImageSurface{Background: background}
}

// SetTarget switches the destination image, typically the screen passed to Draw.
func (s *ImageSurface) SetTarget(img *ebiten.Image) {
	s.img = img
}

func (s *ImageSurface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) ResetTransform() {
	s.geo.Reset()
}

func (s *ImageSurface) Scale(sx, sy float64) {
	var g ebiten.GeoM
	g.Scale(sx, sy)
	g.Concat(s.geo)
	s.geo = g
}

func (s *ImageSurface) Translate(tx, ty float64) {
	var g ebiten.GeoM
	g.Translate(tx, ty)
	g.Concat(s.geo)
	s.geo = g
}

// Transform returns the current transform.
func (s *ImageSurface) Transform() ebiten.GeoM {
	return s.geo
}

func (s *ImageSurface) ClearRect(x, y, w, h float64) {
	if s.img == nil {
		return
	}
	x0, y0, x1, y1 := s.project(x, y, w, h)
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	r = r.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	sub, ok := s.img.SubImage(r).(*ebiten.Image)
	if !ok {
		return
	}
	if s.Background == nil {
		sub.Clear()
		return
	}
	sub.Fill(s.Background)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, clr color.Color) {
	if s.img == nil {
		return
	}
	x0, y0, x1, y1 := s.project(x, y, w, h)
	vector.DrawFilledRect(s.img, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), clr, false)
}

// project maps a rectangle through the transform. Only scale and translate
// are ever applied, so the result stays axis aligned.
func (s *ImageSurface) project(x, y, w, h float64) (x0, y0, x1, y1 float64) {
	x0, y0 = s.geo.Apply(x, y)
	x1, y1 = s.geo.Apply(x+w, y+h)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return x0, y0, x1, y1
}

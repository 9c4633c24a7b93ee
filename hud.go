package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gridview/view"
	"golang.org/x/image/font/basicfont"
)

const controlsText = "drag: pan  wheel/pinch: zoom  click: select  F1: hud  Home: reset  Ctrl+C: copy  Esc: quit"

// HUD is a status panel anchored to the bottom left of the window.
type HUD struct {
	ui      *ebitenui.UI
	status  *widget.Text
	visible bool
}

func NewHUD(visible bool) *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	status := widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)
	controls := widget.NewText(
		widget.TextOpts.Text(controlsText, &face, color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionEnd}),
		),
	)
	panel.AddChild(status)
	panel.AddChild(controls)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &HUD{
		ui:      &ebitenui.UI{Container: root},
		status:  status,
		visible: visible,
	}
}

func (h *HUD) Visible() bool {
	return h.visible
}

func (h *HUD) SetVisible(v bool) {
	h.visible = v
}

func (h *HUD) Update(c *view.Controller) {
	if !h.visible {
		return
	}
	h.status.Label = statusLine(c.Camera(), c.Selection())
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if !h.visible {
		return
	}
	h.ui.Draw(screen)
}

func statusLine(cam view.Camera, sel *view.Selection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "zoom %.2fx  offset (%.1f, %.1f)  selected %d", cam.Zoom, cam.OffsetX, cam.OffsetY, sel.Len())
	if last, ok := sel.Last(); ok {
		fmt.Fprintf(&b, "  last (%d,%d)", last.X, last.Y)
	}
	return b.String()
}

package main

import (
	"github.com/milk9111/gridview/config"
	"github.com/milk9111/gridview/render"
)

type visibility interface {
	Visible() bool
	SetVisible(bool)
}

// reloadTargets is the running state a config reload may change.
type reloadTargets struct {
	renderer *render.Renderer
	surface  *render.ImageSurface
	hud      visibility
}

// applyReload copies the live settings of next into cur and onto t: the
// palette always, the HUD flag only when the file changed it, so a colour
// edit keeps --no-hud and F1 toggles. It reports whether next also differs
// in settings that only apply on restart. cur is left untouched on error.
func applyReload(cur, next *config.Config, t reloadTargets) (restart bool, err error) {
	pal, err := next.Palette()
	if err != nil {
		return false, err
	}

	t.renderer.Palette = renderPalette(pal)
	t.surface.Background = pal.Background
	if next.HUD != cur.HUD {
		t.hud.SetVisible(next.HUD)
	}

	restart = next.Grid != cur.Grid || next.Zoom != cur.Zoom || next.Input != cur.Input || next.Window != cur.Window
	cur.Colors = next.Colors
	cur.HUD = next.HUD
	return restart, nil
}

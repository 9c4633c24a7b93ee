package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridview/config"
	"github.com/milk9111/gridview/input"
	"github.com/milk9111/gridview/render"
	"github.com/milk9111/gridview/view"
)

type Options struct {
	ConfigPath  string
	Debug       bool
	Watch       bool
	BaseMonitor bool
	HideHUD     bool
}

type Game struct {
	cfg   *config.Config
	debug bool

	poller     *input.Poller
	translator *input.Translator
	controller *view.Controller
	renderer   *render.Renderer
	surface    *render.ImageSurface
	hud        *HUD
	clip       textWriter
	watcher    *config.Watcher
}

func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	pal, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	settings := settingsFromConfig(cfg)
	controller := view.NewController(settings)
	controller.OnSelect = func(c view.Cell) {
		log.Print(selectLogLine(settings.Grid, c))
	}

	g := &Game{
		cfg:        cfg,
		debug:      opts.Debug,
		poller:     input.NewPoller(),
		translator: input.NewTranslator(cfg.Input.WheelStep),
		controller: controller,
		renderer:   render.NewRenderer(settings.Grid, renderPalette(pal)),
		surface:    render.NewImageSurface(pal.Background),
		hud:        NewHUD(cfg.HUD && !opts.HideHUD),
	}

	if clip, err := newSystemClipboard(); err != nil {
		log.Printf("[clipboard] unavailable: %v", err)
	} else {
		g.clip = clip
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath)
		if err != nil {
			log.Printf("[config] watch %s: %v", opts.ConfigPath, err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func settingsFromConfig(cfg *config.Config) view.Settings {
	return view.Settings{
		Grid: view.Grid{
			Columns:  cfg.Grid.Columns,
			Rows:     cfg.Grid.Rows,
			CellSize: cfg.Grid.CellSize,
		},
		Zoom:              view.ZoomLimits{Min: cfg.Zoom.Min, Max: cfg.Zoom.Max},
		InitialZoom:       cfg.Zoom.Initial,
		ScrollSensitivity: cfg.Input.ScrollSensitivity,
	}
}

func selectLogLine(grid view.Grid, c view.Cell) string {
	if !grid.Contains(c) {
		return fmt.Sprintf("[select] cell x=%d y=%d (outside %dx%d grid)", c.X, c.Y, grid.Columns, grid.Rows)
	}
	return fmt.Sprintf("[select] cell x=%d y=%d", c.X, c.Y)
}

func renderPalette(p config.Palette) render.Palette {
	return render.Palette{Selected: p.Selected, Default: p.Default}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.hud.SetVisible(!g.hud.Visible())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.controller.ResetView()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && (ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)) {
		g.copySelection()
	}

	for _, ev := range g.translator.Translate(g.poller.Poll()) {
		input.Dispatch(ev, g.controller)
	}

	g.hud.Update(g.controller)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	st := g.controller.State()
	g.surface.SetTarget(screen)
	g.renderer.Draw(g.surface, st.Camera, &st.Selection)

	g.hud.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// LayoutF sizes the screen to the window so the drawing surface always
// matches the viewport.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) copySelection() {
	if g.clip == nil {
		return
	}
	sel := g.controller.Selection()
	if sel.Len() == 0 {
		return
	}
	g.clip.WriteText(sel.Text())
	log.Printf("[clipboard] copied %d cells", sel.Len())
}

// pollConfig applies pending config file changes without blocking.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadConfig(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("[config] watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadConfig(path string) {
	next, err := config.Load(path)
	if err != nil {
		log.Printf("[config] reload %s: %v", path, err)
		return
	}
	restart, err := applyReload(g.cfg, next, reloadTargets{renderer: g.renderer, surface: g.surface, hud: g.hud})
	if err != nil {
		log.Printf("[config] reload %s: %v", path, err)
		return
	}
	if restart {
		log.Printf("[config] %s: grid, zoom, input and window changes apply on restart", path)
	}
	log.Printf("[config] reloaded %s", path)
}

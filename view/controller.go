package view

// DefaultScrollSensitivity scales a wheel delta into a zoom delta.
const DefaultScrollSensitivity = 0.001

// Gesture is the transient state of the interaction in progress.
type Gesture struct {
	Dragging  bool
	HasMoved  bool
	DragStart Point
	LastZoom  float64
	Pinch     PinchTracker
}

// State is everything the viewer mutates at runtime.
type State struct {
	Camera    Camera
	Selection Selection
	Gesture   Gesture
}

// Settings are fixed for the lifetime of a Controller.
type Settings struct {
	Grid              Grid
	Zoom              ZoomLimits
	InitialZoom       float64
	ScrollSensitivity float64
}

// DefaultSettings returns a 100x100 grid of 8px cells at zoom 1.
func DefaultSettings() Settings {
	return Settings{
		Grid:              DefaultGrid(),
		Zoom:              DefaultZoomLimits(),
		InitialZoom:       1,
		ScrollSensitivity: DefaultScrollSensitivity,
	}
}

// Controller owns the view state and applies input to it.
type Controller struct {
	settings Settings
	state    State

	// OnSelect, if set, is called after a cell is appended to the selection.
	OnSelect func(Cell)
}

// NewController creates a controller with the camera at the origin.
func NewController(s Settings) *Controller {
	zoom := s.Zoom.Clamp(s.InitialZoom)
	c := &Controller{settings: s}
	c.state.Camera = NewCamera(zoom)
	c.state.Gesture.LastZoom = zoom
	return c
}

// State returns the live state. Callers on the game goroutine may read it
// freely; mutation should go through the controller.
func (c *Controller) State() *State {
	return &c.state
}

// Settings returns the fixed settings the controller was built with.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Camera returns a copy of the current camera.
func (c *Controller) Camera() Camera {
	return c.state.Camera
}

// Selection returns the live selection.
func (c *Controller) Selection() *Selection {
	return &c.state.Selection
}

// BeginDrag captures the world point under p so that it stays under the
// pointer while dragging.
func (c *Controller) BeginDrag(p Point) {
	g := &c.state.Gesture
	g.DragStart = c.state.Camera.ScreenToWorld(p)
	g.Dragging = true
	g.HasMoved = false
}

// UpdateDrag pans the camera so DragStart sits under p. Ignored unless a
// drag is in progress.
func (c *Controller) UpdateDrag(p Point) {
	g := &c.state.Gesture
	if !g.Dragging {
		return
	}
	g.HasMoved = true
	cam := &c.state.Camera
	cam.OffsetX = p.X/cam.Zoom - g.DragStart.X
	cam.OffsetY = p.Y/cam.Zoom - g.DragStart.Y
}

// EndDrag finishes the interaction and anchors the next pinch at the
// current zoom.
func (c *Controller) EndDrag() {
	g := &c.state.Gesture
	g.Dragging = false
	g.HasMoved = false
	g.Pinch.Reset()
	g.LastZoom = c.state.Camera.Zoom
}

// AdjustZoomByDelta adds delta to the zoom. Ignored while dragging.
func (c *Controller) AdjustZoomByDelta(delta float64) {
	if c.state.Gesture.Dragging || delta == 0 {
		return
	}
	cam := &c.state.Camera
	cam.Zoom = c.settings.Zoom.Clamp(cam.Zoom + delta)
}

// AdjustZoomByFactor sets the zoom to factor times the zoom captured at the
// start of the gesture, so repeated samples do not compound. Ignored while
// dragging.
func (c *Controller) AdjustZoomByFactor(factor float64) {
	if c.state.Gesture.Dragging || factor == 0 {
		return
	}
	cam := &c.state.Camera
	cam.Zoom = c.settings.Zoom.Clamp(factor * c.state.Gesture.LastZoom)
}

// Select appends the cell under the screen point p.
func (c *Controller) Select(p Point) Cell {
	cell := c.settings.Grid.CellAt(c.state.Camera.ScreenToWorld(p))
	c.state.Selection.Add(cell)
	if c.OnSelect != nil {
		c.OnSelect(cell)
	}
	return cell
}

// PointerDown starts a press.
func (c *Controller) PointerDown(p Point) {
	c.BeginDrag(p)
}

// PointerMove pans while a press is held.
func (c *Controller) PointerMove(p Point) {
	c.UpdateDrag(p)
}

// PointerUp ends a press. A press released without any movement selects the
// cell under p.
func (c *Controller) PointerUp(p Point) {
	moved := c.state.Gesture.HasMoved
	c.EndDrag()
	if !moved {
		c.Select(p)
	}
}

// Pinch feeds one two-finger sample. A pinch cancels any drag and counts as
// movement, so lifting the fingers afterwards never selects a cell.
func (c *Controller) Pinch(a, b Point) {
	g := &c.state.Gesture
	g.Dragging = false
	g.HasMoved = true
	factor, ok := g.Pinch.Sample(a, b)
	if !ok {
		g.LastZoom = c.state.Camera.Zoom
		return
	}
	c.AdjustZoomByFactor(factor)
}

// PinchEnd clears the pinch anchor when fewer than two touches remain.
func (c *Controller) PinchEnd() {
	c.state.Gesture.Pinch.Reset()
}

// Wheel applies a browser-style wheel delta.
func (c *Controller) Wheel(deltaY float64) {
	c.AdjustZoomByDelta(deltaY * c.settings.ScrollSensitivity)
}

// ResetView returns the camera to the origin at the initial zoom. The
// selection is left untouched.
func (c *Controller) ResetView() {
	zoom := c.settings.Zoom.Clamp(c.settings.InitialZoom)
	c.state.Camera = NewCamera(zoom)
	c.state.Gesture = Gesture{LastZoom: zoom}
}

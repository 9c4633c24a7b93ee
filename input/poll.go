package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// Poller reads device state from ebiten. Call Poll once per Update.
type Poller struct {
	touchIDs    []ebiten.TouchID
	releasedIDs []ebiten.TouchID
}

func NewPoller() *Poller {
	return &Poller{}
}

func (p *Poller) Poll() Snapshot {
	mx, my := ebiten.CursorPosition()
	s := Snapshot{
		Cursor:    cp.Vector{X: float64(mx), Y: float64(my)},
		MouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, Touch{ID: int(id), Pos: cp.Vector{X: float64(x), Y: float64(y)}})
	}

	// released touches no longer have a current position
	p.releasedIDs = inpututil.AppendJustReleasedTouchIDs(p.releasedIDs[:0])
	for _, id := range p.releasedIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.Released = append(s.Released, Touch{ID: int(id), Pos: cp.Vector{X: float64(x), Y: float64(y)}})
	}

	_, s.WheelY = ebiten.Wheel()
	return s
}

package view

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/spheregrid"
)

// inputPoller turns ebiten's polled input state into engine events. A press
// only starts a gesture inside the container; moves and releases are
// tracked window-wide so a drag can leave the container and still end
// cleanly.
type inputPoller struct {
	mouseDown bool
	mouseSeen bool
	lastX     float64
	lastY     float64
	inside    bool

	touchActive bool
	touchID     ebiten.TouchID
	touchX      float64
	touchY      float64
	touchBuf    []ebiten.TouchID
}

// poll samples mouse and touch state once and feeds the resulting events
// to e. (ox, oy) is the container origin in window coordinates.
func (p *inputPoller) poll(e *spheregrid.Engine, ox, oy, size float64) {
	p.pollMouse(e, ox, oy, size)
	p.pollTouch(e, ox, oy, size)
}

func inContainer(x, y, size float64) bool {
	return x >= 0 && y >= 0 && x <= size && y <= size
}

func (p *inputPoller) pollMouse(e *spheregrid.Engine, ox, oy, size float64) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx)-ox, float64(my)-oy
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if !p.mouseSeen || x != p.lastX || y != p.lastY {
		inside := inContainer(x, y, size)
		if inside || p.mouseDown {
			e.HandleEvent(spheregrid.InputEvent{Type: spheregrid.EventPointerMove, X: x, Y: y})
		}
		if p.inside && !inside {
			e.HandleEvent(spheregrid.InputEvent{Type: spheregrid.EventPointerLeave, X: x, Y: y})
		}
		p.inside = inside
		p.lastX, p.lastY = x, y
		p.mouseSeen = true
	}

	switch {
	case pressed && !p.mouseDown:
		p.mouseDown = true
		if inContainer(x, y, size) {
			e.HandleEvent(spheregrid.InputEvent{Type: spheregrid.EventPointerDown, X: x, Y: y})
		}
	case !pressed && p.mouseDown:
		p.mouseDown = false
		e.HandleEvent(spheregrid.InputEvent{Type: spheregrid.EventPointerUp, X: x, Y: y})
	}
}

// pollTouch follows the primary touch only: the first touch seen while no
// touch gesture is active. Additional fingers are ignored.
func (p *inputPoller) pollTouch(e *spheregrid.Engine, ox, oy, size float64) {
	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])

	if p.touchActive {
		if !slices.Contains(p.touchBuf, p.touchID) {
			p.touchActive = false
			e.HandleEvent(spheregrid.InputEvent{Type: spheregrid.EventTouchEnd, X: p.touchX, Y: p.touchY})
			return
		}
		tx, ty := ebiten.TouchPosition(p.touchID)
		x, y := float64(tx)-ox, float64(ty)-oy
		if x != p.touchX || y != p.touchY {
			p.touchX, p.touchY = x, y
			e.HandleEvent(spheregrid.InputEvent{Type: spheregrid.EventTouchMove, X: x, Y: y})
		}
		return
	}

	if len(p.touchBuf) == 0 {
		return
	}
	id := p.touchBuf[0]
	tx, ty := ebiten.TouchPosition(id)
	x, y := float64(tx)-ox, float64(ty)-oy
	if !inContainer(x, y, size) {
		return
	}
	p.touchActive = true
	p.touchID = id
	p.touchX, p.touchY = x, y
	e.HandleEvent(spheregrid.InputEvent{Type: spheregrid.EventTouchStart, X: x, Y: y})
}

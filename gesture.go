package spheregrid

import "math"

const defaultDragDeadZone = 4.0 // pixels

// GesturePhase is the state of the single-pointer orbit gesture.
type GesturePhase uint8

const (
	GestureIdle GesturePhase = iota
	GestureDragging
)

// String returns "idle" or "dragging".
func (p GesturePhase) String() string {
	if p == GestureDragging {
		return "dragging"
	}
	return "idle"
}

// gesture tracks one press-move-release sequence. Mouse and touch share the
// transition table; a sequence only accepts events from the family that
// started it.
type gesture struct {
	phase    GesturePhase
	touch    bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	hitIndex int  // item under the press, -1 for none
	moved    bool // travelled beyond the dead zone
	deadZone float64
}

func newGesture() gesture {
	return gesture{hitIndex: -1, deadZone: defaultDragDeadZone}
}

// press enters Dragging. Returns false when already dragging or the
// coordinate is not finite.
func (g *gesture) press(x, y float64, touch bool) bool {
	if g.phase == GestureDragging || !isFinite(x) || !isFinite(y) {
		return false
	}
	g.phase = GestureDragging
	g.touch = touch
	g.startX, g.startY = x, y
	g.lastX, g.lastY = x, y
	g.hitIndex = -1
	g.moved = false
	return true
}

// accepts reports whether a move or release from the given family belongs to
// the active sequence.
func (g *gesture) accepts(touch bool) bool {
	return g.phase == GestureDragging && g.touch == touch
}

// move converts the delta since the last coordinate into a rotation delta,
// applies it to rot immediately and stores it as the new velocity. Events
// whose delta is not finite are dropped without updating the last coordinate.
func (g *gesture) move(x, y float64, cfg Config, rot *Rotation) bool {
	dx := x - g.lastX
	dy := y - g.lastY
	if !isFinite(dx) || !isFinite(dy) {
		return false
	}

	dPitch := -dy * cfg.DragSensitivity
	dYaw := dx * cfg.DragSensitivity
	rot.Apply(dPitch, dYaw, cfg.MaxRotationSpeed)
	rot.SetVelocity(dPitch, dYaw, cfg.MaxRotationSpeed)

	g.lastX, g.lastY = x, y
	if !g.moved && math.Hypot(x-g.startX, y-g.startY) > g.deadZone {
		g.moved = true
	}
	return true
}

// release returns to Idle. Velocity is left untouched so momentum carries.
// Returns whether the sequence qualifies as a click and the item pressed.
func (g *gesture) release() (click bool, hit int) {
	click, hit = !g.moved, g.hitIndex
	g.phase = GestureIdle
	g.hitIndex = -1
	g.moved = false
	return click, hit
}

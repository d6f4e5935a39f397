package spheregrid

import "math"

// Vec2 is a 2D vector used for container-local coordinates and offsets.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a camera-space position. Y increases downward on screen and Z
// increases toward the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// RotateY rotates v about the vertical axis by angle radians.
func (v Vec3) RotateY(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateX rotates v about the horizontal axis by angle radians.
func (v Vec3) RotateX(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// State reports what the engine can currently hand to a renderer.
type State uint8

const (
	StateLoading  State = iota // constructed, not mounted; nothing is projected
	StateEmpty                 // mounted with zero items
	StateReady                 // mounted with a generated layout
	StateDisposed              // torn down; all input and ticks are ignored
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StateReady:
		return "ready"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of host input event.
type EventType uint8

const (
	EventPointerDown EventType = iota // a pointer button was pressed
	EventPointerMove                  // the pointer moved (pressed or hovering)
	EventPointerUp                    // the pointer button was released
	EventTouchStart                   // the primary touch point went down
	EventTouchMove                    // the primary touch point moved
	EventTouchEnd                     // the primary touch point lifted
	EventPointerLeave                 // the pointer left the container
)

// String returns the event name used in test scripts and logs.
func (t EventType) String() string {
	switch t {
	case EventPointerDown:
		return "pointer-down"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerUp:
		return "pointer-up"
	case EventTouchStart:
		return "touch-start"
	case EventTouchMove:
		return "touch-move"
	case EventTouchEnd:
		return "touch-end"
	case EventPointerLeave:
		return "pointer-leave"
	default:
		return "unknown"
	}
}

// InputEvent is one pointer or touch event in container-local coordinates.
type InputEvent struct {
	Type EventType
	X, Y float64
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

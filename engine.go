package spheregrid

import (
	"cmp"
	"errors"
	"math/rand/v2"
	"slices"
	"time"
)

// ErrDisposed is returned by operations on an engine that has been torn down.
var ErrDisposed = errors.New("spheregrid: engine disposed")

// SelectEvent is delivered when the user clicks or taps an item.
type SelectEvent struct {
	Index int
	Item  Item
}

// RenderItem is everything a renderer needs to paint one visible item.
// ScreenX and ScreenY are the item center in container-local pixels.
type RenderItem struct {
	Index      int
	Item       Item
	ScreenX    float64
	ScreenY    float64
	PixelSize  float64
	Opacity    float64
	ZIndex     int
	PaintScale float64 // hover multiplier on top of PixelSize; 1 at rest
	Hovered    bool
}

// Frame is one frame of renderer input. Items are visible items only, in
// paint order (ascending ZIndex).
type Frame struct {
	State         State
	ContainerSize float64
	Perspective   float64
	Rotation      Rotation
	Items         []RenderItem
}

// Engine is one interactive sphere session. All methods must be called from a
// single goroutine; use Loop to drive an engine from a ticker.
type Engine struct {
	cfg    Config
	radius float64
	items  []Item

	positions []SphericalPosition
	rng       *rand.Rand

	rot      Rotation
	gesture  gesture
	hover    hoverTracker
	selected int

	handlers handlerRegistry

	injectQueue []InputEvent
	testRunner  *TestRunner

	mounted  bool
	disposed bool
	ticks    uint64
	stats    debugStats
}

// NewEngine creates an engine in the Loading state. Call Mount to generate
// the layout and start accepting input.
func NewEngine(cfg Config, items []Item) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Engine{
		cfg:      cfg,
		radius:   cfg.Radius(),
		items:    slices.Clone(items),
		rng:      NewRand(seed),
		rot:      Rotation{Pitch: NormalizeAngle(cfg.InitialPitch), Yaw: NormalizeAngle(cfg.InitialYaw)},
		gesture:  newGesture(),
		hover:    newHoverTracker(),
		selected: -1,
	}
}

// Mount generates the layout. Mounting twice is a no-op.
func (e *Engine) Mount() error {
	if e.disposed {
		return ErrDisposed
	}
	if e.mounted {
		return nil
	}
	e.mounted = true
	e.regenerate()
	Logger().Info("spheregrid: mounted", "items", len(e.items), "radius", e.radius)
	return nil
}

// Dispose tears the engine down. Callbacks are dropped, pending input is
// discarded, and every later Tick or HandleEvent is ignored.
func (e *Engine) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true
	e.handlers = handlerRegistry{}
	e.injectQueue = nil
	e.testRunner = nil
	e.hover.reset()
	e.gesture = newGesture()
	Logger().Info("spheregrid: disposed", "ticks", e.ticks)
}

// State reports the engine lifecycle state.
func (e *Engine) State() State {
	switch {
	case e.disposed:
		return StateDisposed
	case !e.mounted:
		return StateLoading
	case len(e.items) == 0:
		return StateEmpty
	default:
		return StateReady
	}
}

// Config returns the construction parameters.
func (e *Engine) Config() Config { return e.cfg }

// Items returns the current items. The returned slice MUST NOT be mutated.
func (e *Engine) Items() []Item { return e.items }

// Positions returns the current layout, index-aligned with Items.
func (e *Engine) Positions() []SphericalPosition { return slices.Clone(e.positions) }

// Rotation returns the current orientation and velocity.
func (e *Engine) Rotation() Rotation { return e.rot }

// SetRotation replaces the orientation and velocity, enforcing the angle
// range and speed limit.
func (e *Engine) SetRotation(r Rotation) {
	e.rot.Pitch = NormalizeAngle(r.Pitch)
	e.rot.Yaw = NormalizeAngle(r.Yaw)
	e.rot.SetVelocity(r.PitchVelocity, r.YawVelocity, e.cfg.MaxRotationSpeed)
}

// Phase returns the gesture state.
func (e *Engine) Phase() GesturePhase { return e.gesture.phase }

// Hovered returns the hovered item index, or -1.
func (e *Engine) Hovered() int { return e.hover.current }

// SetItems replaces the item set. The layout is regenerated when the count
// changes; selection and hover are cleared when their index no longer exists.
func (e *Engine) SetItems(items []Item) {
	if e.disposed {
		return
	}
	countChanged := len(items) != len(e.items)
	e.items = slices.Clone(items)
	if e.selected >= len(e.items) {
		e.ClearSelection()
	}
	if countChanged {
		e.hover.reset()
	}
	if e.mounted && countChanged {
		e.regenerate()
	}
}

func (e *Engine) regenerate() {
	gen := LayoutGenerator{Radius: e.radius, Rand: e.rng}
	e.positions = gen.Generate(len(e.items))
	Logger().Debug("spheregrid: layout generated", "count", len(e.positions))
}

// HandleEvent runs one host input event through the gesture state machine.
func (e *Engine) HandleEvent(ev InputEvent) {
	if e.disposed || !e.mounted {
		return
	}
	touch := ev.Type == EventTouchStart || ev.Type == EventTouchMove || ev.Type == EventTouchEnd

	switch ev.Type {
	case EventPointerDown, EventTouchStart:
		if !e.gesture.press(ev.X, ev.Y, touch) {
			if !isFinite(ev.X) || !isFinite(ev.Y) {
				Logger().Warn("spheregrid: dropped non-finite press", "type", ev.Type.String())
			}
			return
		}
		e.rot.SetVelocity(0, 0, e.cfg.MaxRotationSpeed)
		e.gesture.hitIndex = e.HitTest(ev.X, ev.Y)
		Logger().Debug("spheregrid: drag start", "x", ev.X, "y", ev.Y, "hit", e.gesture.hitIndex)

	case EventPointerMove, EventTouchMove:
		if e.gesture.accepts(touch) {
			if !e.gesture.move(ev.X, ev.Y, e.cfg, &e.rot) {
				Logger().Warn("spheregrid: dropped non-finite move", "type", ev.Type.String())
			}
		}
		if !touch && isFinite(ev.X) && isFinite(ev.Y) {
			e.hover.set(e.HitTest(ev.X, ev.Y))
		}

	case EventPointerUp, EventTouchEnd:
		if !e.gesture.accepts(touch) {
			return
		}
		x, y := ev.X, ev.Y
		if touch || !isFinite(x) || !isFinite(y) {
			x, y = e.gesture.lastX, e.gesture.lastY
		}
		click, hit := e.gesture.release()
		Logger().Debug("spheregrid: drag end", "click", click, "pitchVelocity", e.rot.PitchVelocity, "yawVelocity", e.rot.YawVelocity)
		if click && hit >= 0 && e.HitTest(x, y) == hit {
			e.selectIndex(hit)
		}

	case EventPointerLeave:
		e.hover.set(-1)
	}
}

// Tick advances the simulation one frame: scripted input first, then
// auto-rotation and momentum, then hover transitions.
func (e *Engine) Tick() {
	if e.disposed || !e.mounted {
		return
	}
	var t0 time.Time
	if e.cfg.Debug {
		t0 = time.Now()
	}

	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.processInjectedInput()

	e.rot.Tick(e.cfg, e.gesture.phase == GestureDragging)
	e.hover.update(e.cfg.FrameDuration)
	e.ticks++

	if e.cfg.Debug {
		e.stats.tickTime = time.Since(t0)
	}
}

// World projects the current layout. It returns nil unless the engine is
// Ready.
func (e *Engine) World() []WorldPosition {
	if e.State() != StateReady {
		return nil
	}
	return Project(e.rot, e.positions, e.radius)
}

// Frame builds renderer input for the current state. Hidden items are
// omitted.
func (e *Engine) Frame() Frame {
	f := Frame{
		State:         e.State(),
		ContainerSize: e.cfg.ContainerSize,
		Perspective:   e.cfg.Perspective,
		Rotation:      e.rot,
	}
	if f.State != StateReady {
		return f
	}

	var t0 time.Time
	if e.cfg.Debug {
		t0 = time.Now()
	}
	f.Items = e.renderItems()
	if e.cfg.Debug {
		e.stats.projectTime = time.Since(t0)
		e.stats.projected = len(e.positions)
		e.stats.visible = len(f.Items)
		e.debugLog()
	}
	return f
}

func (e *Engine) renderItems() []RenderItem {
	world := e.World()
	center := e.cfg.Center()
	base := e.cfg.BaseItemSize()
	items := make([]RenderItem, 0, len(world))
	for i, w := range world {
		if !w.Visible {
			continue
		}
		paint := 1.0
		if p := e.hover.progress(i); p > 0 {
			paint = 1 + (HoverBoost(w.Scale, e.cfg.HoverScale)-1)*p
		}
		items = append(items, RenderItem{
			Index:      i,
			Item:       e.items[i],
			ScreenX:    center.X + w.X,
			ScreenY:    center.Y + w.Y,
			PixelSize:  base * w.Scale,
			Opacity:    w.FadeOpacity,
			ZIndex:     w.ZIndex,
			PaintScale: paint,
			Hovered:    i == e.hover.current,
		})
	}
	slices.SortStableFunc(items, func(a, b RenderItem) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	return items
}

// HitTest returns the index of the topmost item whose painted circle
// contains (x, y), or -1.
func (e *Engine) HitTest(x, y float64) int {
	if e.State() != StateReady {
		return -1
	}
	items := e.renderItems()
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.Opacity <= 0 {
			continue
		}
		c := HitCircle{CenterX: it.ScreenX, CenterY: it.ScreenY, Radius: it.PixelSize * it.PaintScale / 2}
		if c.Contains(x, y) {
			return it.Index
		}
	}
	return -1
}

// Selected returns the selected item, if any.
func (e *Engine) Selected() (SelectEvent, bool) {
	if e.selected < 0 || e.selected >= len(e.items) {
		return SelectEvent{Index: -1}, false
	}
	return SelectEvent{Index: e.selected, Item: e.items[e.selected]}, true
}

// Select marks index as selected and notifies OnSelect handlers. Out of range
// indexes are ignored.
func (e *Engine) Select(index int) {
	if e.disposed || index < 0 || index >= len(e.items) {
		return
	}
	e.selectIndex(index)
}

func (e *Engine) selectIndex(index int) {
	e.selected = index
	ev := SelectEvent{Index: index, Item: e.items[index]}
	Logger().Info("spheregrid: item selected", "index", index, "id", ev.Item.ID)
	for _, h := range slices.Clone(e.handlers.selectFns) {
		h.fn(ev)
	}
}

// ClearSelection drops the selection and notifies OnClear handlers. It does
// nothing when nothing is selected.
func (e *Engine) ClearSelection() {
	if e.selected < 0 {
		return
	}
	e.selected = -1
	Logger().Info("spheregrid: selection cleared")
	for _, h := range slices.Clone(e.handlers.clearFns) {
		h.fn()
	}
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

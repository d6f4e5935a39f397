package spheregrid

import (
	"fmt"
	"math"
	"testing"
)

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: fmt.Sprintf("item-%d", i), Image: fmt.Sprintf("%d.png", i), Label: fmt.Sprintf("Item %d", i)}
	}
	return items
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.InitialPitch = 0
	cfg.InitialYaw = 0
	return cfg
}

func mountedEngine(t *testing.T, cfg Config, n int) *Engine {
	t.Helper()
	e := NewEngine(cfg, testItems(n))
	if err := e.Mount(); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return e
}

// topmost returns the painted-last item of the current frame.
func topmost(t *testing.T, e *Engine) RenderItem {
	t.Helper()
	items := e.Frame().Items
	if len(items) == 0 {
		t.Fatal("no visible items")
	}
	return items[len(items)-1]
}

// --- Lifecycle ---

func TestEngineStates(t *testing.T) {
	e := NewEngine(testConfig(), testItems(3))
	if got := e.State(); got != StateLoading {
		t.Fatalf("before Mount: %v, want loading", got)
	}
	f := e.Frame()
	if f.State != StateLoading || len(f.Items) != 0 || e.World() != nil {
		t.Errorf("loading engine projected %d items", len(f.Items))
	}

	if err := e.Mount(); err != nil {
		t.Fatal(err)
	}
	if got := e.State(); got != StateReady {
		t.Errorf("after Mount: %v, want ready", got)
	}
	if len(e.Positions()) != 3 {
		t.Errorf("positions = %d, want 3", len(e.Positions()))
	}

	e.SetItems(nil)
	if got := e.State(); got != StateEmpty {
		t.Errorf("no items: %v, want empty", got)
	}
	if f := e.Frame(); len(f.Items) != 0 || f.State != StateEmpty {
		t.Errorf("empty frame = %+v", f)
	}
	e.Tick()

	e.Dispose()
	if got := e.State(); got != StateDisposed {
		t.Errorf("after Dispose: %v, want disposed", got)
	}
	if err := e.Mount(); err != ErrDisposed {
		t.Errorf("Mount after Dispose = %v, want ErrDisposed", err)
	}
}

func TestEngineEmptyMount(t *testing.T) {
	e := mountedEngine(t, testConfig(), 0)
	if e.State() != StateEmpty {
		t.Fatalf("state = %v, want empty", e.State())
	}
	if got := e.HitTest(200, 200); got != -1 {
		t.Errorf("HitTest on empty engine = %d", got)
	}
}

func TestSetItemsRegeneratesOnCountChange(t *testing.T) {
	e := mountedEngine(t, testConfig(), 5)
	before := e.Positions()

	renamed := testItems(5)
	renamed[0].Label = "renamed"
	e.SetItems(renamed)
	after := e.Positions()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("layout changed although the count did not")
		}
	}

	e.SetItems(testItems(8))
	if len(e.Positions()) != 8 {
		t.Errorf("positions = %d, want 8", len(e.Positions()))
	}
}

func TestSetItemsBeforeMount(t *testing.T) {
	e := NewEngine(testConfig(), nil)
	e.SetItems(testItems(4))
	if len(e.Positions()) != 0 {
		t.Error("layout generated before Mount")
	}
	if err := e.Mount(); err != nil {
		t.Fatal(err)
	}
	if len(e.Positions()) != 4 {
		t.Errorf("positions = %d, want 4", len(e.Positions()))
	}
}

func TestNewEngineDerivesRadius(t *testing.T) {
	cfg := testConfig()
	cfg.ContainerSize = 500
	cfg.SphereRadius = 0
	e := mountedEngine(t, cfg, 3)
	for _, p := range e.Positions() {
		if p.Radius != 250 {
			t.Errorf("radius = %v, want 250", p.Radius)
		}
	}
}

// --- Gestures ---

func TestDragRightChangesYawByClampedDelta(t *testing.T) {
	tests := []struct {
		name     string
		maxSpeed float64
		want     float64
	}{
		{"clamped", 5, 5},
		{"unclamped", 100, 50},
		{"tight", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.DragSensitivity = 0.5
			cfg.MaxRotationSpeed = tt.maxSpeed
			e := mountedEngine(t, cfg, 12)

			e.HandleEvent(InputEvent{Type: EventPointerDown, X: 100, Y: 200})
			e.HandleEvent(InputEvent{Type: EventPointerMove, X: 200, Y: 200})

			r := e.Rotation()
			if r.Yaw != tt.want {
				t.Errorf("yaw = %v, want %v", r.Yaw, tt.want)
			}
			if r.Pitch != 0 {
				t.Errorf("pitch = %v, want 0", r.Pitch)
			}
			if r.YawVelocity != tt.want || r.PitchVelocity != 0 {
				t.Errorf("velocity = (%v, %v), want (0, %v)", r.PitchVelocity, r.YawVelocity, tt.want)
			}
		})
	}
}

func TestDragUpTiltsPitchPositive(t *testing.T) {
	e := mountedEngine(t, testConfig(), 12)
	e.HandleEvent(InputEvent{Type: EventPointerDown, X: 200, Y: 200})
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: 200, Y: 196})
	if got := e.Rotation().Pitch; got != 2 {
		t.Errorf("pitch = %v, want 2", got)
	}
}

func TestGestureTransitions(t *testing.T) {
	e := mountedEngine(t, testConfig(), 12)
	e.SetRotation(Rotation{PitchVelocity: 3, YawVelocity: 3})

	if e.Phase() != GestureIdle {
		t.Fatalf("phase = %v, want idle", e.Phase())
	}
	e.HandleEvent(InputEvent{Type: EventPointerDown, X: 10, Y: 10})
	if e.Phase() != GestureDragging {
		t.Fatalf("phase = %v, want dragging", e.Phase())
	}
	if !e.Rotation().Resting() {
		t.Error("press did not zero velocity")
	}

	e.HandleEvent(InputEvent{Type: EventPointerMove, X: 16, Y: 10})
	e.HandleEvent(InputEvent{Type: EventPointerUp, X: 16, Y: 10})
	if e.Phase() != GestureIdle {
		t.Errorf("phase = %v, want idle", e.Phase())
	}
	if got := e.Rotation().YawVelocity; got != 3 {
		t.Errorf("velocity after release = %v, want 3 retained", got)
	}

	// Momentum carries the release velocity on the next tick.
	yaw := e.Rotation().Yaw
	e.Tick()
	if got := e.Rotation().Yaw; math.Abs(got-(yaw+3)) > 1e-12 {
		t.Errorf("yaw after tick = %v, want %v", got, yaw+3)
	}
}

func TestMoveWithoutPressDoesNotRotate(t *testing.T) {
	e := mountedEngine(t, testConfig(), 12)
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: 10, Y: 10})
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: 300, Y: 300})
	if r := e.Rotation(); r.Yaw != 0 || r.Pitch != 0 {
		t.Errorf("hover rotated the sphere: %+v", r)
	}
}

func TestTouchFollowsSameTransitions(t *testing.T) {
	e := mountedEngine(t, testConfig(), 12)
	e.HandleEvent(InputEvent{Type: EventTouchStart, X: 50, Y: 50})
	e.HandleEvent(InputEvent{Type: EventTouchMove, X: 54, Y: 50})
	if got := e.Rotation().Yaw; got != 2 {
		t.Errorf("yaw = %v, want 2", got)
	}

	// Mouse events do not steer a touch gesture.
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: 400, Y: 50})
	e.HandleEvent(InputEvent{Type: EventPointerUp, X: 400, Y: 50})
	if e.Phase() != GestureDragging {
		t.Fatal("mouse release ended a touch gesture")
	}
	if got := e.Rotation().Yaw; got != 2 {
		t.Errorf("yaw = %v after mouse move, want 2", got)
	}

	e.HandleEvent(InputEvent{Type: EventTouchEnd})
	if e.Phase() != GestureIdle {
		t.Error("touch end did not release")
	}
}

func TestNonFiniteInputIgnored(t *testing.T) {
	e := mountedEngine(t, testConfig(), 12)

	e.HandleEvent(InputEvent{Type: EventPointerDown, X: math.NaN(), Y: 0})
	if e.Phase() != GestureIdle {
		t.Fatal("NaN press started a drag")
	}

	e.HandleEvent(InputEvent{Type: EventPointerDown, X: 10, Y: 10})
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: math.Inf(1), Y: 10})
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: 10, Y: math.NaN()})
	r := e.Rotation()
	if r.Yaw != 0 || r.Pitch != 0 || math.IsNaN(r.Yaw) {
		t.Errorf("non-finite move changed rotation: %+v", r)
	}

	// The last good coordinate is kept.
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: 12, Y: 10})
	if got := e.Rotation().Yaw; got != 1 {
		t.Errorf("yaw = %v, want 1", got)
	}
}

func TestDisposedEngineIgnoresInput(t *testing.T) {
	e := mountedEngine(t, testConfig(), 12)
	e.Dispose()
	e.HandleEvent(InputEvent{Type: EventPointerDown, X: 10, Y: 10})
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: 100, Y: 10})
	e.Tick()
	if r := e.Rotation(); r.Yaw != 0 {
		t.Errorf("disposed engine rotated: %+v", r)
	}
}

// --- Frame output ---

func TestFrameItemsSortedAndVisible(t *testing.T) {
	cfg := testConfig()
	cfg.InitialPitch, cfg.InitialYaw = 15, 15
	e := mountedEngine(t, cfg, 60)
	f := e.Frame()

	world := e.World()
	visible := 0
	for _, w := range world {
		if w.Visible {
			visible++
		}
	}
	if len(f.Items) != visible {
		t.Errorf("frame has %d items, %d visible", len(f.Items), visible)
	}
	for i := 1; i < len(f.Items); i++ {
		if f.Items[i-1].ZIndex > f.Items[i].ZIndex {
			t.Fatalf("items not in paint order at %d", i)
		}
	}

	base := cfg.BaseItemSize()
	center := cfg.Center()
	for _, it := range f.Items {
		w := world[it.Index]
		if it.ScreenX != center.X+w.X || it.ScreenY != center.Y+w.Y {
			t.Errorf("item %d screen = (%v, %v)", it.Index, it.ScreenX, it.ScreenY)
		}
		if it.PixelSize != base*w.Scale {
			t.Errorf("item %d pixel size = %v, want %v", it.Index, it.PixelSize, base*w.Scale)
		}
		if it.Opacity != w.FadeOpacity || it.PaintScale != 1 {
			t.Errorf("item %d opacity/paint = %v/%v", it.Index, it.Opacity, it.PaintScale)
		}
		if it.Item.ID != fmt.Sprintf("item-%d", it.Index) {
			t.Errorf("item %d carries %q", it.Index, it.Item.ID)
		}
	}
	if f.Perspective != cfg.Perspective || f.ContainerSize != cfg.ContainerSize {
		t.Errorf("frame config passthrough = %v/%v", f.Perspective, f.ContainerSize)
	}
}

// --- Selection ---

func TestClickSelectsTopmostItem(t *testing.T) {
	e := mountedEngine(t, testConfig(), 20)
	top := topmost(t, e)

	var got []SelectEvent
	e.OnSelect(func(ev SelectEvent) { got = append(got, ev) })

	e.HandleEvent(InputEvent{Type: EventPointerDown, X: top.ScreenX, Y: top.ScreenY})
	e.HandleEvent(InputEvent{Type: EventPointerUp, X: top.ScreenX, Y: top.ScreenY})

	if len(got) != 1 || got[0].Index != top.Index || got[0].Item.ID != top.Item.ID {
		t.Fatalf("select events = %+v, want one for %d", got, top.Index)
	}
	sel, ok := e.Selected()
	if !ok || sel.Index != top.Index {
		t.Errorf("Selected = %+v, %v", sel, ok)
	}

	cleared := 0
	e.OnClear(func() { cleared++ })
	e.ClearSelection()
	e.ClearSelection()
	if cleared != 1 {
		t.Errorf("clear fired %d times, want 1", cleared)
	}
	if _, ok := e.Selected(); ok {
		t.Error("selection survived ClearSelection")
	}
}

func TestDragDoesNotSelect(t *testing.T) {
	cfg := testConfig()
	cfg.DragSensitivity = 0 // keep items in place while the pointer travels
	e := mountedEngine(t, cfg, 20)
	top := topmost(t, e)

	selected := 0
	e.OnSelect(func(SelectEvent) { selected++ })

	e.HandleEvent(InputEvent{Type: EventPointerDown, X: top.ScreenX, Y: top.ScreenY})
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: top.ScreenX + 20, Y: top.ScreenY})
	e.HandleEvent(InputEvent{Type: EventPointerMove, X: top.ScreenX, Y: top.ScreenY})
	e.HandleEvent(InputEvent{Type: EventPointerUp, X: top.ScreenX, Y: top.ScreenY})
	if selected != 0 {
		t.Errorf("drag selected %d times", selected)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	e := mountedEngine(t, testConfig(), 20)
	a, b := 0, 0
	ha := e.OnSelect(func(SelectEvent) { a++ })
	e.OnSelect(func(SelectEvent) { b++ })

	e.Select(0)
	ha.Remove()
	ha.Remove()
	e.Select(1)
	e.Select(99)

	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1 and 2", a, b)
	}
	CallbackHandle{}.Remove()
}

func TestHandlerRemovesItselfDuringDispatch(t *testing.T) {
	e := mountedEngine(t, testConfig(), 5)

	onceCalls, selects := 0, 0
	var once CallbackHandle
	once = e.OnSelect(func(SelectEvent) {
		onceCalls++
		once.Remove()
	})
	e.OnSelect(func(SelectEvent) { selects++ })

	var onceClear CallbackHandle
	clears := 0
	onceClear = e.OnClear(func() { onceClear.Remove() })
	e.OnClear(func() { clears++ })

	e.Select(0)
	e.Select(1)
	e.ClearSelection()
	e.Select(2)
	e.ClearSelection()

	if onceCalls != 1 {
		t.Errorf("one-shot handler ran %d times, want 1", onceCalls)
	}
	if selects != 3 {
		t.Errorf("second select handler ran %d times, want 3", selects)
	}
	if clears != 2 {
		t.Errorf("second clear handler ran %d times, want 2", clears)
	}
}

func TestShrinkingItemsClearsSelection(t *testing.T) {
	e := mountedEngine(t, testConfig(), 10)
	e.Select(8)
	e.SetItems(testItems(5))
	if _, ok := e.Selected(); ok {
		t.Error("selection points past the item set")
	}
}

// --- Hover ---

func TestHoverBoostEasesInAndOut(t *testing.T) {
	e := mountedEngine(t, testConfig(), 20)
	top := topmost(t, e)

	e.HandleEvent(InputEvent{Type: EventPointerMove, X: top.ScreenX, Y: top.ScreenY})
	if e.Hovered() != top.Index {
		t.Fatalf("hovered = %d, want %d", e.Hovered(), top.Index)
	}

	paintOf := func() RenderItem {
		for _, it := range e.Frame().Items {
			if it.Index == top.Index {
				return it
			}
		}
		t.Fatal("hovered item vanished")
		return RenderItem{}
	}

	e.Tick()
	mid := paintOf()
	if !mid.Hovered || mid.PaintScale <= 1 {
		t.Errorf("after one tick paint scale = %v, want > 1", mid.PaintScale)
	}

	for i := 0; i < 30; i++ {
		e.Tick()
	}
	w := e.World()[top.Index]
	want := HoverBoost(w.Scale, e.Config().HoverScale)
	if got := paintOf().PaintScale; math.Abs(got-want) > 1e-6 {
		t.Errorf("settled paint scale = %v, want %v", got, want)
	}
	if e.World()[top.Index].Scale != w.Scale {
		t.Error("hover changed the projected scale")
	}

	e.HandleEvent(InputEvent{Type: EventPointerLeave})
	for i := 0; i < 30; i++ {
		e.Tick()
	}
	if got := paintOf(); got.PaintScale != 1 || got.Hovered {
		t.Errorf("after leave paint scale = %v hovered = %v", got.PaintScale, got.Hovered)
	}
}

// --- Auto-rotate ---

func TestAutoRotateRunsDuringDrag(t *testing.T) {
	cfg := testConfig()
	cfg.AutoRotate = true
	cfg.AutoRotateSpeed = 0.5
	e := mountedEngine(t, cfg, 12)

	e.HandleEvent(InputEvent{Type: EventPointerDown, X: 10, Y: 10})
	for i := 0; i < 4; i++ {
		e.Tick()
	}
	if got := e.Rotation().Yaw; math.Abs(got-2) > 1e-12 {
		t.Errorf("yaw = %v, want 2 from auto-rotate alone", got)
	}
}

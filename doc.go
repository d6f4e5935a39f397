// Package spheregrid is an interactive 3D sphere layout engine for item
// galleries.
//
// It places a fixed set of items on a sphere, lets the user orbit the sphere
// with drag or touch gestures that carry momentum, and projects every item
// to container-local screen coordinates each frame with depth-based scale,
// fade, stacking order and culling. The engine draws nothing; a renderer
// (see the view package for an [Ebitengine] host) paints whatever [Frame]
// returns.
//
// # Quick start
//
//	engine := spheregrid.NewEngine(spheregrid.DefaultConfig(), items)
//	if err := engine.Mount(); err != nil {
//		return err
//	}
//	engine.OnSelect(func(ev spheregrid.SelectEvent) {
//		fmt.Println("selected", ev.Item.ID)
//	})
//
//	// Once per display refresh:
//	engine.Tick()
//	for _, it := range engine.Frame().Items {
//		draw(it.Item, it.ScreenX, it.ScreenY, it.PixelSize*it.PaintScale, it.Opacity)
//	}
//
// Feed host input through [Engine.HandleEvent] in container-local
// coordinates. Touch events follow the same rules as the mouse, using the
// primary touch point only.
//
// # Threading
//
// An Engine is single-threaded. Either call it from the host's own frame
// loop (as view.Game does from ebiten's Update), or hand it to a [Loop],
// which owns a ticker and a goroutine and serializes ticks and posted input
// onto it. [Loop.Stop] guarantees no tick runs after it returns.
//
// # Rotation model
//
// Each tick adds the auto-rotate speed to yaw, dragging or not. When no drag
// is active the current velocity is applied and then multiplied by the
// momentum decay, snapping to zero below 0.01 degrees per tick. Dragging
// applies deltas immediately and records them as the release velocity.
// Steps are per tick, not per second.
//
// [Ebitengine]: https://ebitengine.org
package spheregrid

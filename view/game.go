package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/spheregrid"
)

// eagerImages is how many leading items have their thumbnails loaded before
// the first frame; the rest load on first draw.
const eagerImages = 3

// Game implements ebiten.Game around one engine. Each Update is one engine
// tick, so ebiten's TPS is the frame clock.
type Game struct {
	engine  *spheregrid.Engine
	images  *ImageCache
	cfg     RunConfig
	input   inputPoller
	caption *captionRenderer
	fps     fpsOverlay
	shots   screenshotQueue

	// container origin inside the window
	originX, originY float64
}

// NewGame mounts engine and prepares rendering resources.
func NewGame(engine *spheregrid.Engine, images *ImageCache, cfg RunConfig) (*Game, error) {
	size := engine.Config().ContainerSize
	cfg.applyDefaults(size)

	if err := engine.Mount(); err != nil {
		return nil, fmt.Errorf("view: mount: %w", err)
	}
	caption, err := newCaptionRenderer()
	if err != nil {
		return nil, fmt.Errorf("view: caption font: %w", err)
	}

	g := &Game{
		engine:  engine,
		images:  images,
		cfg:     cfg,
		caption: caption,
		shots:   screenshotQueue{dir: cfg.ScreenshotDir, format: cfg.ScreenshotFormat},
		originX: (float64(cfg.Width) - size) / 2,
		originY: 0,
	}
	if images != nil {
		images.Preload(engine.Items(), eagerImages)
	}
	if cfg.Script != nil {
		cfg.Script.Screenshot = g.shots.request
		engine.SetTestRunner(cfg.Script)
	}
	return g, nil
}

// Update polls input and advances the engine one tick.
func (g *Game) Update() error {
	if g.engine.State() == spheregrid.StateDisposed {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.engine.ClearSelection()
	}

	g.input.poll(g.engine, g.originX, g.originY, g.engine.Config().ContainerSize)
	g.engine.Tick()
	if g.cfg.OnUpdate != nil {
		g.cfg.OnUpdate()
	}

	if g.cfg.ShowFPS {
		g.fps.update(1 / float64(ebiten.TPS()))
	}
	if g.cfg.Script != nil && g.cfg.ExitOnScriptDone && g.cfg.Script.Done() && g.shots.empty() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)

	f := g.engine.Frame()
	switch f.State {
	case spheregrid.StateLoading:
		ebitenutil.DebugPrintAt(screen, "Loading...", int(g.originX)+8, int(g.originY)+8)
	case spheregrid.StateEmpty:
		ebitenutil.DebugPrintAt(screen, "No images provided", int(g.originX)+8, int(g.originY)+8)
	case spheregrid.StateReady:
		drawFrame(screen, f, g.images, g.originX, g.originY)
	}

	if sel, ok := g.engine.Selected(); ok {
		top := g.originY + f.ContainerSize
		g.caption.draw(screen, sel.Item, 0, top, float64(g.cfg.Width), captionHeight)
	}
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
	g.shots.flush(screen)
}

// Layout returns the fixed window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

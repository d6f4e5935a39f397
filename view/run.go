package view

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/spheregrid"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// Background fills the window each frame. The zero value is a dark slate.
	Background color.Color

	ShowFPS bool

	// ScreenshotDir receives screenshots requested by the test script.
	// Defaults to "screenshots".
	ScreenshotDir string
	// ScreenshotFormat is "png" (default) or "webp".
	ScreenshotFormat string

	// Script, when set, drives scripted input. ExitOnScriptDone closes the
	// window once every step has run.
	Script           *spheregrid.TestRunner
	ExitOnScriptDone bool

	// OnUpdate runs after every engine tick, on the game goroutine.
	OnUpdate func()
}

var defaultBackground = color.NRGBA{R: 0x1c, G: 0x1f, B: 0x2b, A: 0xff}

func (c *RunConfig) applyDefaults(containerSize float64) {
	if c.Width <= 0 {
		c.Width = int(containerSize)
	}
	if c.Height <= 0 {
		c.Height = int(containerSize) + captionHeight
	}
	if c.Background == nil {
		c.Background = defaultBackground
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	if c.ScreenshotFormat == "" {
		c.ScreenshotFormat = formatPNG
	}
}

// Run opens a window and blocks until it is closed. The engine is mounted
// before the first frame and disposed when Run returns.
func Run(engine *spheregrid.Engine, images *ImageCache, cfg RunConfig) error {
	defer engine.Dispose()

	g, err := NewGame(engine, images, cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

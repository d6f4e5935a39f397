package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows FPS and TPS in the top-left corner, refreshed every
// ~0.5 seconds.
type fpsOverlay struct {
	elapsed float64
	label   string
}

func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.label != "" && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *fpsOverlay) draw(dst *ebiten.Image) {
	ebitenutil.DebugPrint(dst, o.label)
}

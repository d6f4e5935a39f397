package spheregrid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// hoverDuration is the enlarge/shrink transition length in seconds.
const hoverDuration = 0.2

// hoverAnim eases one item's hover progress between 0 (rest) and 1 (fully
// boosted).
type hoverAnim struct {
	progress float64
	tween    *gween.Tween
}

// hoverTracker owns the hovered index and the in-flight transitions. An item
// that loses hover keeps animating back to rest while the new one grows.
type hoverTracker struct {
	current int
	anims   map[int]*hoverAnim
}

func newHoverTracker() hoverTracker {
	return hoverTracker{current: -1, anims: make(map[int]*hoverAnim)}
}

// set changes the hovered index; -1 clears hover.
func (h *hoverTracker) set(index int) {
	if index == h.current {
		return
	}
	if h.current >= 0 {
		h.retarget(h.current, 0)
	}
	h.current = index
	if index >= 0 {
		h.retarget(index, 1)
	}
}

func (h *hoverTracker) retarget(index int, to float64) {
	a, ok := h.anims[index]
	if !ok {
		a = &hoverAnim{}
		h.anims[index] = a
	}
	a.tween = gween.New(float32(a.progress), float32(to), hoverDuration, ease.OutQuad)
}

// update advances every transition by dt seconds and drops finished
// transitions that have returned to rest.
func (h *hoverTracker) update(dt float64) {
	for i, a := range h.anims {
		if a.tween == nil {
			continue
		}
		v, done := a.tween.Update(float32(dt))
		a.progress = float64(v)
		if done {
			a.tween = nil
			if i != h.current && a.progress <= 0 {
				delete(h.anims, i)
			}
		}
	}
}

// progress returns the eased hover amount for index in [0, 1].
func (h *hoverTracker) progress(index int) float64 {
	if a, ok := h.anims[index]; ok {
		return clamp(a.progress, 0, 1)
	}
	return 0
}

func (h *hoverTracker) reset() {
	h.current = -1
	clear(h.anims)
}

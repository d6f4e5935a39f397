package spheregrid

// InjectPress queues a pointer press at container-local (x, y). Queued events
// are consumed one per Tick, before the momentum step.
func (e *Engine) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, InputEvent{Type: EventPointerDown, X: x, Y: y})
}

// InjectMove queues a pointer move. Between InjectPress and InjectRelease it
// drags; otherwise it hovers.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, InputEvent{Type: EventPointerMove, X: x, Y: y})
}

// InjectRelease queues a pointer release.
func (e *Engine) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, InputEvent{Type: EventPointerUp, X: x, Y: y})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (e *Engine) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), linearly interpolated moves,
// a move onto (toX, toY), and a release there. The sequence consumes
// `frames` ticks; the minimum is 3 (press, move, release).
func (e *Engine) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}

// PendingInput returns the number of queued synthetic events.
func (e *Engine) PendingInput() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one queued event and handles it.
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	ev := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
	e.HandleEvent(ev)
	return true
}

package spheregrid

type selectHandler struct {
	id uint32
	fn func(SelectEvent)
}

type clearHandler struct {
	id uint32
	fn func()
}

type handlerRegistry struct {
	selectFns []selectHandler
	clearFns  []clearHandler
	nextID    uint32
}

type callbackKind uint8

const (
	callbackSelect callbackKind = iota
	callbackClear
)

// CallbackHandle allows removing a registered engine callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind callbackKind
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing after the engine was disposed, is harmless.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case callbackSelect:
		h.reg.selectFns = removeHandler(h.reg.selectFns, h.id, func(s selectHandler) uint32 { return s.id })
	case callbackClear:
		h.reg.clearFns = removeHandler(h.reg.clearFns, h.id, func(c clearHandler) uint32 { return c.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// OnSelect registers a callback fired when an item is clicked or tapped.
func (e *Engine) OnSelect(fn func(SelectEvent)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.selectFns = append(e.handlers.selectFns, selectHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: callbackSelect}
}

// OnClear registers a callback fired when the selection is cleared.
func (e *Engine) OnClear(fn func()) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	e.handlers.clearFns = append(e.handlers.clearFns, clearHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &e.handlers, kind: callbackClear}
}

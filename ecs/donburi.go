package ecs

import (
	"github.com/phanxgames/spheregrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionKind distinguishes a new selection from a cleared one.
type SelectionKind uint8

const (
	Selected SelectionKind = iota
	Cleared
)

// SelectionEvent is published for each engine select or clear. Index is -1
// and Item is zero for Cleared.
type SelectionEvent struct {
	Kind  SelectionKind
	Index int
	Item  spheregrid.Item
}

// SelectionEventType is the Donburi event type carrying SelectionEvent.
var SelectionEventType = events.NewEventType[SelectionEvent]()

// Bind publishes e's selection changes into world. The returned function
// removes both engine callbacks.
func Bind(world donburi.World, e *spheregrid.Engine) (unbind func()) {
	sel := e.OnSelect(func(ev spheregrid.SelectEvent) {
		SelectionEventType.Publish(world, SelectionEvent{Kind: Selected, Index: ev.Index, Item: ev.Item})
	})
	clr := e.OnClear(func() {
		SelectionEventType.Publish(world, SelectionEvent{Kind: Cleared, Index: -1})
	})
	return func() {
		sel.Remove()
		clr.Remove()
	}
}

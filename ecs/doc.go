// Package ecs bridges spheregrid selection into a [Donburi] world.
//
// [Bind] registers engine callbacks that publish a [SelectionEvent] for every
// select and clear. Events are queued by Donburi and delivered when the
// world's events are processed, typically once per game update:
//
//	unbind := ecs.Bind(world, engine)
//	defer unbind()
//	ecs.SelectionEventType.Subscribe(world, onSelection)
//	...
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

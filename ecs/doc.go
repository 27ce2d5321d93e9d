// Package ecs plugs glint players into a [Donburi] world.
//
// Attach a *glint.Player to an entity with [Attach], start transitions with
// [Play], and call [Update] once per frame from a system. Finished
// transitions are published as [CompletedEvent] values on
// [CompletedEventType]; drain them with ProcessEvents as with any Donburi
// event.
//
// Usage:
//
//	p := glint.NewPlayer(owner)
//	p.SetRenderers(nil)
//	ecs.Attach(world, entity, p)
//	ecs.Play(world, entity, flash)
//	// each frame:
//	ecs.Update(world, dt)
//	ecs.CompletedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

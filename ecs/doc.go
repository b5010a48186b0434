// Package ecs bridges bough node lifecycle events into an ECS.
//
// Attach a store to a scene and drain events from your systems:
//
//	world := donburi.NewWorld()
//	scene.SetEntityStore(ecs.NewDonburiStore(world))
//	ecs.LifecycleEventType.Subscribe(world, onLifecycle)
//	// each tick:
//	ecs.LifecycleEventType.ProcessEvents(world)
package ecs

package ecs

import (
	"github.com/phanxgames/bough"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for bough lifecycle events.
// Subscribe to this in your ECS systems to learn when nodes enter and leave
// the rendered tree.
var LifecycleEventType = events.NewEventType[bough.LifecycleEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) bough.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event bough.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}

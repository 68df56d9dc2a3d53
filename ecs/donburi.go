package ecs

import (
	"github.com/phanxgames/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TriggerEventType is the Donburi event type for sapling sprite triggers.
var TriggerEventType = events.NewEventType[sapling.TriggerEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Triggers
// are published to TriggerEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) sapling.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sapling.TriggerEvent) {
	TriggerEventType.Publish(s.world, event)
}

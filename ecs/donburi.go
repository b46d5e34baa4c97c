package ecs

import (
	"github.com/phanxgames/willowgui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for willowgui interaction
// events. Subscribe to this in your ECS systems to receive touch, click and
// cancel events after they have bubbled through the element tree.
var InteractionEventType = events.NewEventType[willowgui.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) willowgui.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event willowgui.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

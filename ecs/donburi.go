package ecs

import (
	"github.com/phanxgames/vflow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// FlowEventType is the Donburi event type for vflow events.
var FlowEventType = events.NewEventType[vflow.Event]()

// FlowData attaches a flow to an entity.
type FlowData struct {
	Flow *vflow.Flow
}

// FlowComponent is the component holding FlowData.
var FlowComponent = donburi.NewComponentType[FlowData]()

var flowQuery = donburi.NewQuery(filter.Contains(FlowComponent))

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Flow events
// are published to FlowEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) vflow.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event vflow.Event) {
	FlowEventType.Publish(s.world, event)
}

// UpdateFlows advances every flow attached with FlowComponent by dt seconds
// and runs their pending layouts.
func UpdateFlows(world donburi.World, dt float32) {
	flowQuery.Each(world, func(entry *donburi.Entry) {
		if data := FlowComponent.Get(entry); data.Flow != nil {
			data.Flow.Update(dt)
		}
	})
}

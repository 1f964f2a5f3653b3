// Package ecs provides ECS adapters for vflow.
//
// [NewDonburiSink] bridges flow events (cells created, recycled and
// disposed, position changes, layout passes) into a [Donburi] world as typed
// events. Subscribe to [FlowEventType] in your ECS systems to receive them.
// [FlowComponent] attaches a flow to an entity so that [UpdateFlows] can
// drive every flow in the world from one system.
//
// Usage:
//
//	flow.SetEventSink(ecs.NewDonburiSink(world))
//	entry := world.Entry(world.Create(ecs.FlowComponent))
//	ecs.FlowComponent.SetValue(entry, ecs.FlowData{Flow: flow})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

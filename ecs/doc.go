// Package ecs provides ECS adapters for willowgui's event dispatch.
//
// The primary adapter is [NewDonburiSink], which forwards every dispatched
// willowgui event (touch start, move, end, click and cancel) into a
// [Donburi] world as a typed event. Subscribe to [InteractionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sys.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package ecs provides ECS adapters for sapling's sprite triggers.
//
// The primary adapter is [NewDonburiStore], which forwards every trigger a
// sprite matches (key presses and clicks) into a [Donburi] world as typed
// events. Subscribe to [TriggerEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	win.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

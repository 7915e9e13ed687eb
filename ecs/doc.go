// Package ecs provides ECS adapters for scrollkit.
//
// [NewDonburiStore] bridges scrollkit interaction events (touches, row
// selection, goal moves) into a [Donburi] world as typed events. Subscribe
// to [InteractionEventType] in your ECS systems to receive them.
// [PublishGoalMoves] wraps an agent delegate so goal moves reach the same
// store, and [GoalSync] mirrors agent goals into entities.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	a := agent.New(ecs.PublishGoalMoves(myDelegate, store, scene.Clock))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

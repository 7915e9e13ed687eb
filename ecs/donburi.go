package ecs

import (
	"github.com/phanxgames/scrollkit"
	"github.com/phanxgames/scrollkit/agent"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for scrollkit interaction
// events. Subscribe to this in your ECS systems to receive touch, row
// selection and goal move events.
var InteractionEventType = events.NewEventType[scrollkit.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) scrollkit.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event scrollkit.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// goalDelegate forwards every agent.Delegate call to the wrapped delegate
// and additionally publishes goal moves to a store.
type goalDelegate struct {
	agent.Delegate
	store scrollkit.EntityStore
	clock func() float64
}

// PublishGoalMoves wraps d so every goal position change is also emitted to
// store as an EventGoalMoved, with Source set to the goal key. clock, when
// non-nil, stamps the events (Scene.Clock fits). A nil d wraps
// agent.DefaultDelegate.
func PublishGoalMoves(d agent.Delegate, store scrollkit.EntityStore, clock func() float64) agent.Delegate {
	if d == nil {
		d = agent.DefaultDelegate{}
	}
	return &goalDelegate{Delegate: d, store: store, clock: clock}
}

func (g *goalDelegate) PositionChanged(a *agent.Agent, key string, from, to scrollkit.Vec2) {
	g.Delegate.PositionChanged(a, key, from, to)
	if g.store == nil || from == to {
		return
	}
	var now float64
	if g.clock != nil {
		now = g.clock()
	}
	g.store.EmitEvent(scrollkit.InteractionEvent{
		Type:    scrollkit.EventGoalMoved,
		Source:  key,
		GlobalX: to.X,
		GlobalY: to.Y,
		DeltaX:  to.X - from.X,
		DeltaY:  to.Y - from.Y,
		Time:    now,
	})
}

package ecs

import (
	"github.com/phanxgames/scrollkit"
	"github.com/phanxgames/scrollkit/agent"

	"github.com/yohamta/donburi"
)

// GoalState is the per-entity snapshot of one agent goal.
type GoalState struct {
	Key      string
	Position scrollkit.Vec2
	Velocity scrollkit.Vec2
	Hold     bool
	Moving   bool
}

// GoalComponent holds a GoalState on entities created by GoalSync.
var GoalComponent = donburi.NewComponentType[GoalState]()

// GoalSync mirrors an agent's goals into a Donburi world: one entity per
// goal, created and removed as goals come and go, refreshed on Update.
// Register it with Scene.AddUpdater after the agent so it sees the frame's
// final positions.
type GoalSync struct {
	world    donburi.World
	agent    *agent.Agent
	entities map[string]donburi.Entity
}

// NewGoalSync creates a sync for a into world. Entities are created on the
// first Update.
func NewGoalSync(world donburi.World, a *agent.Agent) *GoalSync {
	return &GoalSync{world: world, agent: a, entities: make(map[string]donburi.Entity)}
}

// Entity returns the entity mirroring goal key.
func (s *GoalSync) Entity(key string) (donburi.Entity, bool) {
	e, ok := s.entities[key]
	return e, ok
}

// Update refreshes every goal entity. dt is unused; it makes GoalSync a
// scrollkit.Updater.
func (s *GoalSync) Update(float64) {
	live := make(map[string]bool, len(s.entities))
	for _, key := range s.agent.Goals() {
		live[key] = true
		e, ok := s.entities[key]
		if !ok || !s.world.Valid(e) {
			e = s.world.Create(GoalComponent)
			s.entities[key] = e
		}
		pos, _ := s.agent.Position(key)
		vel, _ := s.agent.Velocity(key)
		hold, _ := s.agent.IsHold(key)
		GoalComponent.SetValue(s.world.Entry(e), GoalState{
			Key:      key,
			Position: pos,
			Velocity: vel,
			Hold:     hold,
			Moving:   s.agent.IsMoving(key),
		})
	}
	for key, e := range s.entities {
		if live[key] {
			continue
		}
		if s.world.Valid(e) {
			s.world.Remove(e)
		}
		delete(s.entities, key)
	}
}

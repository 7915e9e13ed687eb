package agent

import "github.com/phanxgames/scrollkit"

// Dragger lets the primary pointer pick up one goal and throw it. It is a
// scrollkit.TouchReceiver: register it with Scene.AddTouchReceiver. Goal
// positions are read in the surface node's local space.
//
// While the finger is down the goal is held and follows it, softened at the
// edges of its area. On release the goal is let go with the velocity of the
// last finger segment.
type Dragger struct {
	// GrabRadius limits how far from the goal a touch may begin. 0 accepts
	// touches anywhere on the surface.
	GrabRadius float64
	// ReleaseScale multiplies the release velocity. 0 means 1.
	ReleaseScale float64

	agent   *Agent
	key     string
	surface *scrollkit.Node
	size    scrollkit.Vec2

	active   bool
	grab     scrollkit.Vec2 // finger offset from the goal at touch down
	last     scrollkit.TouchSample
	velocity scrollkit.Vec2
}

// NewDragger creates a dragger moving goal key of a over a surface of the
// given size.
func NewDragger(a *Agent, key string, surface *scrollkit.Node, size scrollkit.Vec2) *Dragger {
	return &Dragger{agent: a, key: key, surface: surface, size: size}
}

// Node returns the surface node.
func (d *Dragger) Node() *scrollkit.Node { return d.surface }

// Size returns the surface size.
func (d *Dragger) Size() scrollkit.Vec2 { return d.size }

// Active reports whether the goal is currently being dragged.
func (d *Dragger) Active() bool { return d.active }

// TouchBegan picks up the goal when the touch starts within GrabRadius.
func (d *Dragger) TouchBegan(t scrollkit.TouchSample) bool {
	pos, ok := d.agent.Position(d.key)
	if !ok {
		return false
	}
	if d.GrabRadius > 0 && t.Pos.Dist(pos) > d.GrabRadius {
		return false
	}
	d.agent.SetHold(d.key, true)
	d.active = true
	d.grab = t.Pos.Sub(pos)
	d.last = t
	d.velocity = scrollkit.Vec2{}
	return true
}

// TouchMoved drags the held goal along with the finger.
func (d *Dragger) TouchMoved(t scrollkit.TouchSample) bool {
	if !d.active {
		return false
	}
	d.follow(t)
	return true
}

// TouchEnded lets the goal go with the last segment's velocity.
func (d *Dragger) TouchEnded(t scrollkit.TouchSample) bool {
	if !d.active {
		return false
	}
	d.follow(t)
	d.active = false
	d.agent.SetHold(d.key, false)

	scale := d.ReleaseScale
	if scale == 0 {
		scale = 1
	}
	d.agent.SetVelocity(d.key, d.velocity.Scale(scale))
	return true
}

// TouchCancelled releases the goal where it is, without velocity.
func (d *Dragger) TouchCancelled() {
	if !d.active {
		return
	}
	d.active = false
	d.agent.SetHold(d.key, false)
}

func (d *Dragger) follow(t scrollkit.TouchSample) {
	if t.Pos == d.last.Pos {
		return
	}
	dt := t.Time - d.last.Time
	if dt > 0 {
		d.velocity = t.Pos.Sub(d.last.Pos).Scale(1 / dt)
	}
	d.agent.SetMovementTo(d.key, t.Pos.Sub(d.grab), dt)
	d.last = t
}

package agent

import (
	"math"
	"sort"

	"github.com/phanxgames/scrollkit"
)

// AdsorptionSpeed is the speed, per unit of edge inset, at which edge
// adsorption pulls a goal.
const AdsorptionSpeed = 1500.0

// ScriptedSpeed derives the duration of MoveTo and MoveBy: the straight-line
// distance divided by this speed.
const ScriptedSpeed = 1000.0

// holdBendScale widens the outward margin when bending held positions.
const holdBendScale = 1.25

// holdBendPeak is the root of x·tan(x) = 1. Past it d·cos(k·d) starts to
// fall, so the overshoot fed into the bend is capped at holdBendPeak/k.
const holdBendPeak = 0.8603335890193797

// goal is the physics state of one named point.
type goal struct {
	key      string
	position scrollkit.Vec2
	move     scrollkit.Vec2 // velocity requested by the host, damped each tick
	adsorb   scrollkit.Vec2 // velocity from edge adsorption
	hold     bool
	script   *scrollkit.Vec2Tween
}

// Agent animates named 2D goals with damped velocity, edge adsorption and
// scripted moves, all shaped by its Delegate. Call Update once per frame.
type Agent struct {
	delegate Delegate
	goals    map[string]*goal
	updating bool
}

// New creates an agent and adds every goal d enumerates. A nil d behaves
// like DefaultDelegate.
func New(d Delegate) *Agent {
	a := &Agent{goals: make(map[string]*goal)}
	a.SetDelegate(d)
	return a
}

// SetDelegate replaces the delegate and rebuilds the goals from it.
func (a *Agent) SetDelegate(d Delegate) {
	a.delegate = d
	clear(a.goals)
	dd := a.d()
	keys := dd.GoalKeys(a)
	n := min(dd.GoalCount(a), len(keys))
	for _, key := range keys[:max(n, 0)] {
		a.AddGoal(key)
	}
}

// Delegate returns the installed delegate, or nil.
func (a *Agent) Delegate() Delegate { return a.delegate }

func (a *Agent) d() Delegate {
	if a.delegate == nil {
		return DefaultDelegate{}
	}
	return a.delegate
}

// --- Goals ---

// AddGoal creates the goal key at its delegate start position. No-op if it
// already exists.
func (a *Agent) AddGoal(key string) {
	if _, ok := a.goals[key]; ok {
		return
	}
	a.goals[key] = &goal{key: key, position: a.d().StartPosition(a, key)}
}

// RemoveGoal deletes the goal key.
func (a *Agent) RemoveGoal(key string) {
	delete(a.goals, key)
}

// Goals returns the goal keys in sorted order.
func (a *Agent) Goals() []string {
	keys := make([]string, 0, len(a.goals))
	for k := range a.goals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset returns every goal to its start position, stopped and released.
func (a *Agent) Reset() {
	for _, key := range a.Goals() {
		a.ResetGoal(key)
	}
}

// ResetGoal returns one goal to its start position, stopped and released.
func (a *Agent) ResetGoal(key string) {
	g := a.goals[key]
	if g == nil {
		return
	}
	a.setPosition(g, a.d().StartPosition(a, key))
	g.move = scrollkit.Vec2{}
	g.adsorb = scrollkit.Vec2{}
	g.script = nil
	g.hold = false
}

// --- Queries ---

// Position returns the goal's current position.
func (a *Agent) Position(key string) (scrollkit.Vec2, bool) {
	g := a.goals[key]
	if g == nil {
		return scrollkit.Vec2{}, false
	}
	return g.position, true
}

// Velocity returns the goal's effective velocity: requested plus adsorption.
func (a *Agent) Velocity(key string) (scrollkit.Vec2, bool) {
	g := a.goals[key]
	if g == nil {
		return scrollkit.Vec2{}, false
	}
	return g.move.Add(g.adsorb), true
}

// IsHold reports whether the goal is held. ok is false for unknown goals.
func (a *Agent) IsHold(key string) (hold, ok bool) {
	g := a.goals[key]
	if g == nil {
		return false, false
	}
	return g.hold, true
}

// IsMoving reports whether a scripted move is in flight for the goal.
func (a *Agent) IsMoving(key string) bool {
	g := a.goals[key]
	return g != nil && g.script != nil
}

// DistanceToEdges returns the goal's signed distance to each edge of its
// scroll area, positive inside.
func (a *Agent) DistanceToEdges(key string) (scrollkit.EdgeInsets, bool) {
	g := a.goals[key]
	if g == nil {
		return scrollkit.EdgeInsets{}, false
	}
	return scrollkit.DistanceToEdges(g.position, a.d().ScrollArea(a, key)), true
}

// MovementArea returns the goal's scroll area widened by the adsorption
// margin on every edge whose mode pulls from outside.
func (a *Agent) MovementArea(key string) scrollkit.Rect {
	d := a.d()
	area := d.ScrollArea(a, key)
	m := d.AdsorptionMargin(a, key)
	modes := d.EdgeModes(a, key)
	if modes.Top.out() {
		area.Y -= m.Top
		area.Height += m.Top
	}
	if modes.Left.out() {
		area.X -= m.Left
		area.Width += m.Left
	}
	if modes.Bottom.out() {
		area.Height += m.Bottom
	}
	if modes.Right.out() {
		area.Width += m.Right
	}
	return area
}

// --- Motion requests ---

// SetVelocity sets the goal's requested velocity, clamped per axis to the
// delegate's limits: magnitudes above the maximum are cut to it and those
// below the minimum become zero. Ignored for unknown, held or scripted goals.
func (a *Agent) SetVelocity(key string, v scrollkit.Vec2) {
	g := a.goals[key]
	if g == nil {
		return
	}
	a.setVelocity(g, v)
}

func (a *Agent) setVelocity(g *goal, v scrollkit.Vec2) {
	if g.hold || g.script != nil {
		return
	}
	d := a.d()
	lo, hi := d.MinVelocity(a, g.key), d.MaxVelocity(a, g.key)
	g.move = scrollkit.Vec2{
		X: clampAxis(v.X, lo.X, hi.X),
		Y: clampAxis(v.Y, lo.Y, hi.Y),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	switch abs := math.Abs(v); {
	case abs > hi:
		return math.Copysign(hi, v)
	case abs < lo:
		return 0
	default:
		return v
	}
}

// SetHold holds or releases a goal. Holding stops it: both velocities are
// zeroed and any scripted move is dropped. Releasing re-evaluates edge
// adsorption so a goal let go near an edge is pulled at once.
func (a *Agent) SetHold(key string, hold bool) {
	g := a.goals[key]
	if g == nil {
		return
	}
	g.hold = hold
	if hold {
		g.move = scrollkit.Vec2{}
		g.adsorb = scrollkit.Vec2{}
		g.script = nil
		return
	}
	a.updateAdsorption(g)
}

// SetMovementTo places the goal at to, as resolved against its area, then
// sets its velocity to the displacement over duration seconds. Held goals
// are only placed. Ignored for unknown or scripted goals.
func (a *Agent) SetMovementTo(key string, to scrollkit.Vec2, duration float64) {
	g := a.goals[key]
	if g == nil || g.script != nil {
		return
	}
	displacement := to.Sub(g.position)
	a.setPosition(g, a.arrivalPosition(g, to))
	if duration > 0 {
		a.setVelocity(g, displacement.Scale(1/duration))
	}
}

// SetMovementBy is SetMovementTo relative to the current position.
func (a *Agent) SetMovementBy(key string, by scrollkit.Vec2, duration float64) {
	g := a.goals[key]
	if g == nil {
		return
	}
	a.SetMovementTo(key, g.position.Add(by), duration)
}

// MoveTo starts a scripted move to dest at ScriptedSpeed.
func (a *Agent) MoveTo(key string, dest scrollkit.Vec2) {
	g := a.goals[key]
	if g == nil {
		return
	}
	a.MoveToDuration(key, dest, dest.Dist(g.position)/ScriptedSpeed)
}

// MoveToDuration starts a scripted move to dest taking duration seconds.
// Both velocities are zeroed for the move. Ignored for unknown or held goals
// and while another scripted move is in flight. A duration <= 0 places the
// goal at once.
func (a *Agent) MoveToDuration(key string, dest scrollkit.Vec2, duration float64) {
	g := a.goals[key]
	if g == nil || g.hold || g.script != nil {
		return
	}
	g.move = scrollkit.Vec2{}
	g.adsorb = scrollkit.Vec2{}
	if duration <= 0 {
		a.setPosition(g, dest)
		return
	}
	g.script = scrollkit.NewVec2Tween(g.position, dest, float32(duration), nil)
}

// MoveBy starts a scripted move by the given displacement at ScriptedSpeed.
func (a *Agent) MoveBy(key string, by scrollkit.Vec2) {
	g := a.goals[key]
	if g == nil {
		return
	}
	a.MoveTo(key, g.position.Add(by))
}

// MoveByDuration starts a scripted move by the given displacement.
func (a *Agent) MoveByDuration(key string, by scrollkit.Vec2, duration float64) {
	g := a.goals[key]
	if g == nil {
		return
	}
	a.MoveToDuration(key, g.position.Add(by), duration)
}

// --- Boundary resolution ---

// ArrivalPosition resolves where the goal would actually land if it moved
// to dest this tick. Unknown goals report false.
func (a *Agent) ArrivalPosition(key string, dest scrollkit.Vec2) (scrollkit.Vec2, bool) {
	g := a.goals[key]
	if g == nil {
		return scrollkit.Vec2{}, false
	}
	return a.arrivalPosition(g, dest), true
}

// arrivalPosition applies the boundary rules in order: free movement inside
// the interior, soft bending for held goals, free movement outside, and
// stopping at the first edge crossed otherwise.
func (a *Agent) arrivalPosition(g *goal, dest scrollkit.Vec2) scrollkit.Vec2 {
	area := a.d().ScrollArea(a, g.key)
	loc := scrollkit.LocationOf(g.position, area)
	curIn := loc == scrollkit.InArea
	destIn := scrollkit.LocationOf(dest, area) == scrollkit.InArea

	if curIn && destIn {
		return dest
	}
	if g.hold {
		return a.heldPosition(g, dest, area)
	}
	if !curIn && !destIn {
		return dest
	}
	// Leaving an edge inward crosses nothing.
	if loc == scrollkit.OnEdge {
		return dest
	}
	if p, ok := scrollkit.SegmentRectIntersection(g.position, dest, area); ok {
		return p
	}
	return dest
}

// heldPosition bends each axis of dest that lies beyond the area so that
// dragging further out yields less and less, then keeps the result inside
// the movement area.
func (a *Agent) heldPosition(g *goal, dest scrollkit.Vec2, area scrollkit.Rect) scrollkit.Vec2 {
	m := a.d().AdsorptionMargin(a, g.key)
	dist := scrollkit.DistanceToEdges(dest, area)
	p := dest

	switch {
	case dist.Left < 0:
		p.X = area.X - bend(-dist.Left, m.Left)
	case dist.Right < 0:
		p.X = area.X + area.Width + bend(-dist.Right, m.Right)
	}
	switch {
	case dist.Top < 0:
		p.Y = area.Y - bend(-dist.Top, m.Top)
	case dist.Bottom < 0:
		p.Y = area.Y + area.Height + bend(-dist.Bottom, m.Bottom)
	}

	movement := a.MovementArea(g.key)
	if scrollkit.LocationOf(p, movement) == scrollkit.OutOfArea {
		p = scrollkit.ClampToRect(p, movement)
	}
	return p
}

// bend maps an overshoot d past an edge with outward margin onto a shorter
// distance. With no margin the overshoot is returned unchanged.
func bend(d, margin float64) float64 {
	if margin <= 0 {
		return d
	}
	k := math.Pi / (2 * holdBendScale * margin)
	d = math.Min(d, holdBendPeak/k)
	return d * math.Cos(k*d)
}

// --- Edge adsorption ---

// updateAdsorption recomputes the adsorption velocity from the goal's
// distance to each edge. Ignored for held or scripted goals.
func (a *Agent) updateAdsorption(g *goal) {
	if g.hold || g.script != nil {
		return
	}
	in := a.adsorptionInsets(g)
	g.adsorb = scrollkit.Vec2{
		X: (in.Left + in.Right) * AdsorptionSpeed,
		Y: (in.Top + in.Bottom) * AdsorptionSpeed,
	}
}

// adsorptionInsets returns, per edge, the unit direction in which that edge
// currently pulls the goal along its axis, or zero.
func (a *Agent) adsorptionInsets(g *goal) scrollkit.EdgeInsets {
	d := a.d()
	dist := scrollkit.DistanceToEdges(g.position, d.ScrollArea(a, g.key))
	pad := d.AdsorptionPadding(a, g.key)
	margin := d.AdsorptionMargin(a, g.key)
	modes := d.EdgeModes(a, g.key)

	var in scrollkit.EdgeInsets
	in.Top = edgePull(modes.Top, dist.Top, pad.Top, margin.Top, -1)
	in.Left = edgePull(modes.Left, dist.Left, pad.Left, margin.Left, -1)
	in.Bottom = edgePull(modes.Bottom, dist.Bottom, pad.Bottom, margin.Bottom, 1)
	in.Right = edgePull(modes.Right, dist.Right, pad.Right, margin.Right, 1)
	return in
}

// edgePull evaluates one edge. outward is the axis direction that points
// from inside the area across the edge.
func edgePull(mode EdgeMode, dist, pad, margin, outward float64) float64 {
	if mode.in() && dist > 0 && dist <= pad {
		return outward
	}
	if mode.out() && dist < 0 && -dist <= margin {
		return -outward
	}
	return 0
}

// --- Frame update ---

// Update advances every goal by dt seconds. Held goals are skipped.
// Scripted moves step along their tween and stop exactly at the
// destination. Other goals with a non-zero velocity move to their resolved
// arrival position, then have their requested velocity damped and their
// adsorption re-evaluated. Nested calls from delegate callbacks are ignored.
func (a *Agent) Update(dt float64) {
	if a.updating {
		return
	}
	a.updating = true
	defer func() { a.updating = false }()

	for _, key := range a.Goals() {
		g := a.goals[key]
		if g == nil || g.hold {
			continue
		}
		if g.script != nil {
			a.stepScript(g, dt)
			continue
		}
		a.stepVelocity(g, dt)
	}
}

func (a *Agent) stepScript(g *goal, dt float64) {
	s := g.script
	a.setPosition(g, s.Update(dt))
	if s.Done && g.script == s {
		g.script = nil
		a.updateAdsorption(g)
	}
}

func (a *Agent) stepVelocity(g *goal, dt float64) {
	total := g.move.Add(g.adsorb)
	if total.IsZero() {
		return
	}
	a.setPosition(g, a.arrivalPosition(g, g.position.Add(total.Scale(dt))))

	ratio := a.d().DampingRatio(a, g.key)
	a.setVelocity(g, scrollkit.Vec2{
		X: g.move.X * math.Pow(1-ratio.X, dt),
		Y: g.move.Y * math.Pow(1-ratio.Y, dt),
	})
	a.updateAdsorption(g)
}

func (a *Agent) setPosition(g *goal, p scrollkit.Vec2) {
	from := g.position
	g.position = p
	a.d().PositionChanged(a, g.key, from, p)
}

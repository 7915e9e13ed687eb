package agent

import (
	"math"

	"github.com/phanxgames/scrollkit"
)

// EdgeMode selects how a goal is pulled at one edge of its scroll area.
type EdgeMode uint8

const (
	EdgeNone EdgeMode = iota // no pull
	EdgeIn                   // pull toward the edge while inside, within the padding
	EdgeOut                  // pull back in while outside, within the margin
	EdgeBoth                 // both of the above
)

func (m EdgeMode) in() bool  { return m == EdgeIn || m == EdgeBoth }
func (m EdgeMode) out() bool { return m == EdgeOut || m == EdgeBoth }

// EdgeModes holds one EdgeMode per edge. Top is the edge at the area's
// minimum Y.
type EdgeModes struct {
	Top, Left, Bottom, Right EdgeMode
}

// Delegate supplies goal geometry and limits and observes goal moves.
// Embed DefaultDelegate to implement only what you need.
type Delegate interface {
	// GoalCount and GoalKeys enumerate the goals created on New and
	// SetDelegate. Only the first GoalCount keys are used.
	GoalCount(a *Agent) int
	GoalKeys(a *Agent) []string

	ScrollArea(a *Agent, key string) scrollkit.Rect
	StartPosition(a *Agent, key string) scrollkit.Vec2

	// DampingRatio is the per-axis fraction of velocity lost per second.
	DampingRatio(a *Agent, key string) scrollkit.Vec2
	MinVelocity(a *Agent, key string) scrollkit.Vec2
	MaxVelocity(a *Agent, key string) scrollkit.Vec2

	EdgeModes(a *Agent, key string) EdgeModes
	// AdsorptionPadding is the inward distance per edge within which EdgeIn
	// pulls; AdsorptionMargin the outward distance within which EdgeOut
	// pulls back. The margin also widens the movement area on Out edges.
	AdsorptionPadding(a *Agent, key string) scrollkit.EdgeInsets
	AdsorptionMargin(a *Agent, key string) scrollkit.EdgeInsets

	PositionChanged(a *Agent, key string, from, to scrollkit.Vec2)
}

// UnboundedArea is the default scroll area: large enough that no
// reachable position leaves it.
var UnboundedArea = scrollkit.Rect{
	X:      -math.MaxFloat64 / 4,
	Y:      -math.MaxFloat64 / 4,
	Width:  math.MaxFloat64 / 2,
	Height: math.MaxFloat64 / 2,
}

// DefaultDelegate has no goals, an unbounded area, unbounded velocity, no
// damping and no edge adsorption.
type DefaultDelegate struct{}

func (DefaultDelegate) GoalCount(*Agent) int                           { return 0 }
func (DefaultDelegate) GoalKeys(*Agent) []string                       { return nil }
func (DefaultDelegate) ScrollArea(*Agent, string) scrollkit.Rect       { return UnboundedArea }
func (DefaultDelegate) StartPosition(*Agent, string) scrollkit.Vec2    { return scrollkit.Vec2{} }
func (DefaultDelegate) DampingRatio(*Agent, string) scrollkit.Vec2     { return scrollkit.Vec2{} }
func (DefaultDelegate) MinVelocity(*Agent, string) scrollkit.Vec2      { return scrollkit.Vec2{} }
func (DefaultDelegate) EdgeModes(*Agent, string) EdgeModes             { return EdgeModes{} }

func (DefaultDelegate) PositionChanged(*Agent, string, scrollkit.Vec2, scrollkit.Vec2) {}

func (DefaultDelegate) MaxVelocity(*Agent, string) scrollkit.Vec2 {
	return scrollkit.Vec2{X: math.MaxFloat64, Y: math.MaxFloat64}
}

func (DefaultDelegate) AdsorptionPadding(*Agent, string) scrollkit.EdgeInsets {
	return scrollkit.EdgeInsets{}
}

func (DefaultDelegate) AdsorptionMargin(*Agent, string) scrollkit.EdgeInsets {
	return scrollkit.EdgeInsets{}
}

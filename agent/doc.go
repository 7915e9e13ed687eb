// Package agent animates named 2D points ("goals") with damped velocity,
// magnetic edge adsorption, scripted moves and holds.
//
// Every goal lives in a scroll area supplied by a [Delegate]. Inside the
// area a goal moves freely; a goal crossing into or out of it stops at the
// first edge it meets. While held (for example under a finger, see
// [Dragger]) a goal may be pulled past the area, with growing resistance,
// into the margin configured for edges whose [EdgeMode] pulls from outside.
//
// Usage:
//
//	a := agent.New(myDelegate)
//	a.SetVelocity("puck", scrollkit.Vec2{X: 400})
//	// each frame:
//	a.Update(dt)
package agent

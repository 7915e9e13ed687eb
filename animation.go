package scrollkit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Vec2Tween animates a point from one position to another. Call Update(dt)
// each frame and read the returned position. When the tween finishes the
// result is exactly the destination, regardless of float32 rounding inside
// the easing.
//
// There is no global animation manager; owners call Update themselves.
type Vec2Tween struct {
	from, to Vec2
	x, y     *gween.Tween
	Done     bool
}

// NewVec2Tween creates a tween from from to to over duration seconds using
// fn. A nil fn means linear easing. A duration <= 0 yields a tween that is
// already done.
func NewVec2Tween(from, to Vec2, duration float32, fn ease.TweenFunc) *Vec2Tween {
	if fn == nil {
		fn = ease.Linear
	}
	t := &Vec2Tween{from: from, to: to}
	if duration <= 0 {
		t.Done = true
		return t
	}
	// Each axis animates its offset from the start so the float32 tween
	// keeps precision for large coordinates.
	d := to.Sub(from)
	t.x = gween.New(0, float32(d.X), duration, fn)
	t.y = gween.New(0, float32(d.Y), duration, fn)
	return t
}

// From returns the start point.
func (t *Vec2Tween) From() Vec2 { return t.from }

// To returns the destination.
func (t *Vec2Tween) To() Vec2 { return t.to }

// Update advances the tween by dt seconds and returns the current position.
func (t *Vec2Tween) Update(dt float64) Vec2 {
	if t.Done {
		return t.to
	}
	dx, xDone := t.x.Update(float32(dt))
	dy, yDone := t.y.Update(float32(dt))
	if xDone && yDone {
		t.Done = true
		return t.to
	}
	return Vec2{t.from.X + float64(dx), t.from.Y + float64(dy)}
}

package scrollkit

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TouchSample is one pointer observation in table-local coordinates.
// Time is in seconds on any monotonic clock shared by a gesture's samples.
type TouchSample struct {
	Pos  Vec2
	Time float64
}

// scrollState is the table's gesture and momentum state.
type scrollState struct {
	touching bool
	first    TouchSample
	last     TouchSample
	maxDist  float64 // farthest the finger strayed from first

	// last finger displacement along Y and the time it took
	segDY, segDT float64

	velocity    float64 // momentum, offset units per second
	restoring   float64 // spring-back, offset units per second
	outOfBounds float64 // <0 above the top, >0 below the bottom

	tween *gween.Tween
}

// ScrollOffset returns how far the content is scrolled down. 0 shows the
// top of the content; MaxScrollOffset shows its bottom. While elastically
// overscrolled the value lies outside that range.
func (tv *TableView) ScrollOffset() float64 { return -tv.foreground.Y }

func (tv *TableView) setOffset(off float64) {
	tv.foreground.SetPosition(0, -off)
}

// OutOfBoundsDistance returns how far the content is pulled past an edge:
// negative above the top, positive below the bottom, zero in bounds.
func (tv *TableView) OutOfBoundsDistance() float64 { return tv.scroll.outOfBounds }

// Velocity returns the current momentum and spring-back velocities.
func (tv *TableView) Velocity() (momentum, restoring float64) {
	return tv.scroll.velocity, tv.scroll.restoring
}

// IsTouching reports whether a gesture is in progress.
func (tv *TableView) IsTouching() bool { return tv.scroll.touching }

// ScrollBy moves the content by dy and clamps the result to the content
// bounds. Any overscroll is discarded.
func (tv *TableView) ScrollBy(dy float64) {
	tv.SetScrollOffset(tv.ScrollOffset() + dy)
}

// SetScrollOffset moves the content to off, clamped to the content bounds.
func (tv *TableView) SetScrollOffset(off float64) {
	off = math.Min(math.Max(off, 0), tv.MaxScrollOffset())
	tv.setOffset(off)
	tv.scroll.outOfBounds = 0
	tv.scroll.restoring = 0
}

// ScrollToRow animates the content so the item at index sits at the top of
// the window, or as close as the content bounds allow. A duration <= 0
// jumps immediately. A nil fn means linear easing.
func (tv *TableView) ScrollToRow(index IndexPath, duration float32, fn ease.TweenFunc) {
	it := tv.items.get(index)
	if it == nil {
		return
	}
	target := math.Min(math.Max(it.top(), 0), tv.MaxScrollOffset())
	tv.stopScrolling()
	if duration <= 0 {
		tv.SetScrollOffset(target)
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	tv.scroll.tween = gween.New(float32(tv.ScrollOffset()), float32(target), duration, fn)
}

// IsAnimating reports whether a ScrollToRow animation is running.
func (tv *TableView) IsAnimating() bool { return tv.scroll.tween != nil }

func (tv *TableView) advanceScrollAnimation(dt float64) bool {
	tw := tv.scroll.tween
	if tw == nil {
		return false
	}
	v, done := tw.Update(float32(dt))
	tv.SetScrollOffset(float64(v))
	if done {
		tv.scroll.tween = nil
	}
	return true
}

// stopScrolling cancels animation and momentum.
func (tv *TableView) stopScrolling() {
	tv.scroll.tween = nil
	tv.scroll.velocity = 0
	tv.scroll.restoring = 0
}

// --- Elastic motion ---

// moveBy moves the content by d in elastic mode. In bounds the move is
// applied as is. Out of bounds a drag is resisted by cos(out*pi/height), a
// move that crosses back over the violated edge stops exactly on it, and a
// drag that would exceed the overscroll limit is dropped. The offset never
// goes further than the limit past either edge.
func (tv *TableView) moveBy(d float64, dragging bool) {
	off := tv.ScrollOffset()
	maxOff := tv.MaxScrollOffset()
	out := tv.scroll.outOfBounds
	limit := tv.cfg.MaxOverscrollFraction * tv.height

	if out == 0 {
		off += d
	} else {
		if dragging && tv.height > 0 {
			d *= math.Cos(out * math.Pi / tv.height)
		}
		switch {
		case out < 0 && off+d > 0:
			off = 0
		case out > 0 && off+d < maxOff:
			off = maxOff
		case dragging && math.Abs(out+d) > limit:
		default:
			off += d
		}
	}
	off = math.Min(math.Max(off, -limit), maxOff+limit)
	tv.setOffset(off)

	switch {
	case off < 0:
		tv.scroll.outOfBounds = off
	case off > maxOff:
		tv.scroll.outOfBounds = off - maxOff
	default:
		tv.scroll.outOfBounds = 0
	}
}

// setVelocity sets the momentum. Values inside the dead zone, or any value
// while the content is out of bounds, become zero. The spring-back velocity
// is re-derived from the current overscroll.
func (tv *TableView) setVelocity(v float64) {
	s := &tv.scroll
	if s.outOfBounds != 0 || math.Abs(v) <= tv.cfg.VelocityDeadZone {
		v = 0
	}
	s.velocity = v

	restore := tv.cfg.RestoreSpeed * tv.height
	switch {
	case s.outOfBounds > 0:
		s.restoring = -restore
	case s.outOfBounds < 0:
		s.restoring = restore
	default:
		s.restoring = 0
	}
}

// momentum damps the fling, then integrates fling plus spring-back.
func (tv *TableView) momentum(dt float64) {
	tv.setVelocity(tv.scroll.velocity * math.Pow(1-tv.cfg.DampingRatio, dt))
	if total := tv.scroll.velocity + tv.scroll.restoring; total != 0 {
		tv.moveBy(total*dt, false)
	}
}

// --- Touch handling ---

// TouchBegan starts a gesture. It returns false when the table neither
// scrolls nor selects, leaving the touch to other receivers.
func (tv *TableView) TouchBegan(t TouchSample) bool {
	if !tv.allowsSelection && !tv.allowsScroll {
		return false
	}
	s := &tv.scroll
	s.touching = true
	s.tween = nil
	s.first, s.last = t, t
	s.maxDist = 0
	s.segDY, s.segDT = 0, 0
	return true
}

// TouchMoved continues a gesture, scrolling by the negated finger travel.
func (tv *TableView) TouchMoved(t TouchSample) bool {
	if !tv.allowsSelection && !tv.allowsScroll {
		return false
	}
	s := &tv.scroll
	s.maxDist = math.Max(s.maxDist, t.Pos.Dist(s.first.Pos))
	if tv.allowsScroll {
		dy := t.Pos.Y - s.last.Pos.Y
		tv.dragBy(-dy)
		s.segDY, s.segDT = dy, t.Time-s.last.Time
	}
	s.last = t
	return true
}

// TouchEnded finishes a gesture. A touch that stayed within SelectSlop of
// where it began selects the row under its starting point. In elastic mode
// the last drag segment becomes momentum.
func (tv *TableView) TouchEnded(t TouchSample) bool {
	s := &tv.scroll
	if !tv.allowsSelection && !tv.allowsScroll {
		s.touching = false
		return false
	}
	s.maxDist = math.Max(s.maxDist, t.Pos.Dist(s.first.Pos))

	if tv.allowsSelection && s.maxDist <= tv.cfg.SelectSlop {
		if index, ok := tv.IndexPathAt(s.first.Pos); ok {
			tv.setSelection(index, true)
		}
	}

	if tv.allowsScroll {
		if dy := t.Pos.Y - s.last.Pos.Y; dy != 0 {
			tv.dragBy(-dy)
			s.segDY, s.segDT = dy, t.Time-s.last.Time
		}
		if tv.cfg.Mode == ScrollElastic {
			v := 0.0
			if s.segDT > 0 {
				v = -s.segDY * tv.cfg.ReleaseVelocityScale / s.segDT
			}
			tv.setVelocity(v)
		}
	}
	s.last = t
	s.touching = false
	return true
}

// TouchCancelled abandons a gesture without selecting or flinging. Any
// overscroll springs back.
func (tv *TableView) TouchCancelled() {
	tv.scroll.touching = false
	if tv.cfg.Mode == ScrollElastic {
		tv.setVelocity(0)
	}
}

func (tv *TableView) dragBy(d float64) {
	if tv.cfg.Mode == ScrollClamped {
		tv.ScrollBy(d)
		return
	}
	tv.moveBy(d, true)
}

package scrollkit

import "math"

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// Location classifies a point relative to a rectangle.
type Location int

const (
	OutOfArea Location = iota - 1 // beyond at least one edge
	OnEdge                        // on an edge, inside otherwise
	InArea                        // strictly inside every edge
)

// DistanceToEdges returns the signed distance from p to each edge of area.
// Values are positive while p is inside that edge and negative beyond it.
func DistanceToEdges(p Vec2, area Rect) EdgeInsets {
	left := p.X - area.X
	top := p.Y - area.Y
	return EdgeInsets{
		Top:    top,
		Left:   left,
		Bottom: area.Height - top,
		Right:  area.Width - left,
	}
}

// LocationOf classifies p against area.
func LocationOf(p Vec2, area Rect) Location {
	d := DistanceToEdges(p, area)
	switch {
	case d.Top > 0 && d.Left > 0 && d.Bottom > 0 && d.Right > 0:
		return InArea
	case d.Top < 0 || d.Left < 0 || d.Bottom < 0 || d.Right < 0:
		return OutOfArea
	default:
		return OnEdge
	}
}

// InfiniteRatio is returned by DivisionRatio when the dividing value coincides
// with the segment end and the segment is not degenerate. The crossing
// then lies at infinity.
const InfiniteRatio = math.MaxFloat64

// DivisionRatio returns λ such that value = (a + λ·b) / (1 + λ), i.e. the
// ratio in which value divides the interval from a to b. Ratios in [0, ∞)
// lie between a and b. A degenerate interval whose ends both equal value
// yields 0; value == b with a != b yields InfiniteRatio.
func DivisionRatio(value, a, b float64) float64 {
	if value == b {
		if a == b {
			return 0
		}
		return InfiniteRatio
	}
	return (value - a) / (b - value)
}

// intersectionSlop absorbs rounding when testing whether a computed crossing
// lies within an edge's extent.
const intersectionSlop = 1e-9

// SegmentRectIntersection returns the first point where the segment from a
// to b crosses an edge of r, walking from a toward b. ok is false when the
// segment never reaches an edge.
func SegmentRectIntersection(a, b Vec2, r Rect) (p Vec2, ok bool) {
	best := math.Inf(1)
	consider := func(ratio float64, q Vec2, alongX bool) {
		if ratio < 0 || ratio == InfiniteRatio || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			return
		}
		if alongX {
			if q.X < r.X-intersectionSlop || q.X > r.X+r.Width+intersectionSlop {
				return
			}
		} else if q.Y < r.Y-intersectionSlop || q.Y > r.Y+r.Height+intersectionSlop {
			return
		}
		if ratio < best {
			best = ratio
			p = q
			ok = true
		}
	}
	divide := func(from, to, ratio float64) float64 {
		return (from + to*ratio) / (1 + ratio)
	}

	// Horizontal edges.
	for _, y := range [2]float64{r.Y, r.Y + r.Height} {
		ratio := DivisionRatio(y, a.Y, b.Y)
		consider(ratio, Vec2{divide(a.X, b.X, ratio), y}, true)
	}
	// Vertical edges.
	for _, x := range [2]float64{r.X, r.X + r.Width} {
		ratio := DivisionRatio(x, a.X, b.X)
		consider(ratio, Vec2{x, divide(a.Y, b.Y, ratio)}, false)
	}
	return p, ok
}

// ClampToRect moves p onto the nearest point of r when it lies outside.
func ClampToRect(p Vec2, r Rect) Vec2 {
	return Vec2{
		X: math.Max(r.X, math.Min(p.X, r.X+r.Width)),
		Y: math.Max(r.Y, math.Min(p.Y, r.Y+r.Height)),
	}
}

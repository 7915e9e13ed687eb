package scrollkit

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// ColorClear is fully transparent black.
var ColorClear = Color{}

// RGBA converts the color to a premultiplied color.RGBA for host drawing code.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, velocities and
// directions throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// EdgeInsets holds one value per rectangle edge. Top is the edge at the
// rectangle's minimum Y, Bottom the edge at its maximum Y.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// NodeType distinguishes content behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no content of its own
	NodeTypeSprite                    // solid rectangle of Width x Height
	NodeTypeText                      // single-line label measured with a Font
)

// EventType identifies a kind of interaction event forwarded to an EntityStore.
type EventType uint8

const (
	EventTouchBegan    EventType = iota // primary pointer went down over a receiver
	EventTouchMoved                     // primary pointer moved while down
	EventTouchEnded                     // primary pointer was released
	EventRowSelected                    // a table row became the selection
	EventRowDeselected                  // a table row stopped being the selection
	EventGoalMoved                      // an agent goal changed position
)

// TextAlign controls horizontal label alignment relative to the node origin.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // text starts at the node origin
	TextAlignCenter                  // text is centered on the node origin
	TextAlignRight                   // text ends at the node origin
)

package scrollkit

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sin, cos := math.Sincos(n.Rotation)
	return [6]float64{
		cos * n.ScaleX,
		sin * n.ScaleX,
		-sin * n.ScaleY,
		cos * n.ScaleY,
		n.X,
		n.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformRect returns the axis-aligned bounds of r after applying m.
func transformRect(m [6]float64, r Rect) Rect {
	x0, y0 := transformPoint(m, r.X, r.Y)
	x1, y1 := transformPoint(m, r.X+r.Width, r.Y)
	x2, y2 := transformPoint(m, r.X+r.Width, r.Y+r.Height)
	x3, y3 := transformPoint(m, r.X, r.Y+r.Height)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// updateWorldTransform recomputes a node's worldTransform.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	markSubtreeDirty(n)
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	markSubtreeDirty(n)
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate
// space, using the transforms refreshed by the last Scene.Update.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(n.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.worldTransform, lx, ly)
}

// --- Bounds ---

// contentRect returns the node's own content rectangle in local space and
// whether the node has any content at all.
func (n *Node) contentRect() (Rect, bool) {
	switch n.Type {
	case NodeTypeSprite:
		return Rect{X: -n.Width / 2, Y: -n.Height / 2, Width: n.Width, Height: n.Height}, true
	case NodeTypeText:
		if n.TextBlock == nil {
			return Rect{}, false
		}
		w, h := n.TextBlock.Measure()
		var x float64
		switch n.TextBlock.Align {
		case TextAlignCenter:
			x = -w / 2
		case TextAlignRight:
			x = -w
		}
		return Rect{X: x, Y: -h / 2, Width: w, Height: h}, true
	default:
		return Rect{}, false
	}
}

// Frame returns the node's own content bounds in its parent's coordinate
// space, ignoring children.
func (n *Node) Frame() Rect {
	r, ok := n.contentRect()
	if !ok {
		return Rect{X: n.X, Y: n.Y}
	}
	return transformRect(computeLocalTransform(n), r)
}

// AccumulatedFrame returns the bounds of the node's content and every
// visible descendant, in the parent's coordinate space. A node with no
// content anywhere in its subtree reports a zero-size rect at its position.
func (n *Node) AccumulatedFrame() Rect {
	local, ok := n.accumulatedLocal()
	if !ok {
		return Rect{X: n.X, Y: n.Y}
	}
	return transformRect(computeLocalTransform(n), local)
}

// accumulatedLocal unions content bounds in the node's own space.
func (n *Node) accumulatedLocal() (Rect, bool) {
	bounds, ok := n.contentRect()
	for _, child := range n.children {
		if !child.Visible {
			continue
		}
		cb, cok := child.accumulatedLocal()
		if !cok {
			continue
		}
		cb = transformRect(computeLocalTransform(child), cb)
		if ok {
			bounds = bounds.Union(cb)
		} else {
			bounds, ok = cb, true
		}
	}
	return bounds, ok
}

// AccumulatedHeight is shorthand for AccumulatedFrame().Height.
func (n *Node) AccumulatedHeight() float64 {
	return n.AccumulatedFrame().Height
}

package scrollkit

// Label layout shared by cells and section headers/footers.
const (
	labelInset         = 20.0 // distance from the component's left edge to the label
	labelVerticalSlack = 20.0 // added to the label's line height when measuring
)

var (
	defaultCellBackground  = Color{1, 1, 1, 1}
	defaultTableBackground = Color{0.84, 0.84, 0.84, 1}
)

// Component is the content unit placed in a table slot: a background layer
// with a foreground layer drawn above it. Custom content goes into
// Foreground(); its accumulated height is what the table measures when the
// delegate asks for AutomaticDimension.
type Component struct {
	node       *Node
	background *Node
	foreground *Node
	bgNode     *Node
	table      *TableView

	// measure overrides the foreground measurement for built-in styles.
	measure func() float64
}

func (c *Component) init(table *TableView, name string) {
	c.table = table
	c.node = NewContainer(name)
	c.background = NewContainer(name + " background")
	c.foreground = NewContainer(name + " foreground")
	c.node.AddChild(c.background)
	c.node.AddChild(c.foreground)
	c.node.UserData = c
}

// Node returns the component's root node.
func (c *Component) Node() *Node { return c.node }

// Table returns the table the component was created for.
func (c *Component) Table() *TableView { return c.table }

// Foreground returns the layer custom content should be added to.
func (c *Component) Foreground() *Node { return c.foreground }

// Background returns the node currently filling the background slot.
func (c *Component) Background() *Node { return c.bgNode }

// SetBackground replaces the background node. The previous occupant is
// detached first; n (when non-nil) is then attached at the component origin
// and owned by the component.
func (c *Component) SetBackground(n *Node) {
	if c.bgNode != nil {
		c.bgNode.RemoveFromParent()
	}
	c.bgNode = n
	if n != nil {
		n.SetPosition(0, 0)
		c.background.AddChild(n)
	}
}

// ContentHeight returns the measured height of the component's content.
func (c *Component) ContentHeight() float64 {
	if c.measure != nil {
		return c.measure()
	}
	return c.foregroundHeight()
}

func (c *Component) foregroundHeight() float64 {
	return c.foreground.AccumulatedHeight()
}

// Size returns the table width and the measured content height.
func (c *Component) Size() Vec2 {
	return Vec2{X: c.width(), Y: c.ContentHeight()}
}

func (c *Component) width() float64 {
	if c.table == nil {
		return 0
	}
	return c.table.width
}

// fitBackground scales the background node so its accumulated bounds cover
// (w, h). Dimensions that currently measure zero are left alone.
func (c *Component) fitBackground(w, h float64) {
	if c.bgNode != nil {
		fitNode(c.bgNode, w, h)
	}
}

func fitNode(n *Node, w, h float64) {
	if n.Type == NodeTypeSprite && len(n.children) == 0 && n.Rotation == 0 {
		// Plain rectangles are resized directly, which also covers ones
		// that start out with zero size.
		n.Width, n.Height = w, h
		n.ScaleX, n.ScaleY = 1, 1
		markSubtreeDirty(n)
		return
	}
	f := n.AccumulatedFrame()
	if f.Width > 0 {
		n.ScaleX = w * n.ScaleX / f.Width
	}
	if f.Height > 0 {
		n.ScaleY = h * n.ScaleY / f.Height
	}
	markSubtreeDirty(n)
}

// newLabel builds the single-line label used by the label styles.
func (c *Component) newLabel(font Font) *Node {
	w := c.width()
	label := NewText("label", "", font)
	label.TextBlock.Align = TextAlignLeft
	if w > 2*labelInset {
		label.TextBlock.MaxWidth = w - 2*labelInset
	}
	label.SetPosition(labelInset-w/2, 0)
	c.foreground.AddChild(label)
	return label
}

// labelHeight measures a label-style component.
func (c *Component) labelHeight(label *Node) float64 {
	_, h := label.TextBlock.Measure()
	return max(h+labelVerticalSlack, DefaultCellHeight, c.foregroundHeight())
}

// --- Cell ---

// CellStyle selects the built-in layout of a Cell.
type CellStyle uint8

const (
	CellStyleLabel  CellStyle = iota // one left-aligned label
	CellStyleSplit                   // left and right content slots
	CellStyleCustom                  // a single free-form content slot
)

// Cell is a row component.
type Cell struct {
	Component

	style   CellStyle
	label   *Node
	left    *Node
	right   *Node
	content *Node
}

// NewCell creates a cell for tv in the given style with a white background.
// Label cells use tv.LabelFont.
func NewCell(tv *TableView, style CellStyle) *Cell {
	c := &Cell{style: style}
	c.init(tv, "cell")

	w := c.width()
	switch style {
	case CellStyleLabel:
		var font Font
		if tv != nil {
			font = tv.LabelFont
		}
		c.label = c.newLabel(font)
		c.measure = func() float64 { return c.labelHeight(c.label) }
	case CellStyleSplit:
		c.left = NewContainer("left")
		c.right = NewContainer("right")
		c.left.SetPosition(-w/4, 0)
		c.right.SetPosition(w/4, 0)
		c.foreground.AddChild(c.left)
		c.foreground.AddChild(c.right)
	default:
		c.style = CellStyleCustom
		c.content = NewContainer("content")
		c.foreground.AddChild(c.content)
	}

	c.SetBackground(NewSprite("cell background", w, c.ContentHeight(), defaultCellBackground))
	return c
}

// Style returns the cell's layout style.
func (c *Cell) Style() CellStyle { return c.style }

// Label returns the label node of a CellStyleLabel cell, or nil.
func (c *Cell) Label() *Node { return c.label }

// SetText sets the label text of a CellStyleLabel cell. No-op for other styles.
func (c *Cell) SetText(s string) {
	if c.label != nil {
		c.label.TextBlock.SetContent(s)
	}
}

// Left returns the left slot of a CellStyleSplit cell, or nil.
func (c *Cell) Left() *Node { return c.left }

// Right returns the right slot of a CellStyleSplit cell, or nil.
func (c *Cell) Right() *Node { return c.right }

// Content returns the content slot of a CellStyleCustom cell, or nil.
func (c *Cell) Content() *Node { return c.content }

// LeftSize returns the width of the left partition and the cell height.
// Zero for non-split cells.
func (c *Cell) LeftSize() Vec2 {
	if c.style != CellStyleSplit {
		return Vec2{}
	}
	w := c.width()
	return Vec2{X: (c.left.X + w/2) * 2, Y: c.ContentHeight()}
}

// RightSize returns the width of the right partition and the cell height.
// Zero for non-split cells.
func (c *Cell) RightSize() Vec2 {
	if c.style != CellStyleSplit {
		return Vec2{}
	}
	w := c.width()
	return Vec2{X: (w/2 - c.right.X) * 2, Y: c.ContentHeight()}
}

// SetSplitWidthAbsolute partitions a split cell into a left part of width
// left and a right part of width right, each slot centered in its part.
// No-op unless left+right fits within the table width.
func (c *Cell) SetSplitWidthAbsolute(left, right float64) {
	if c.style != CellStyleSplit {
		return
	}
	w := c.width()
	if left+right > w {
		return
	}
	c.left.SetPosition(left/2-w/2, 0)
	c.right.SetPosition(w/2-right/2, 0)
}

// SetSplitWidthFraction partitions a split cell by fractions of the table
// width. No-op unless left+right <= 1.
func (c *Cell) SetSplitWidthFraction(left, right float64) {
	if c.style != CellStyleSplit {
		return
	}
	if left+right > 1 {
		return
	}
	w := c.width()
	c.left.SetPosition(w*(left-1)/2, 0)
	c.right.SetPosition(w*(1-right)/2, 0)
}

// --- SectionHeadFoot ---

// SectionStyle selects the built-in layout of a section header or footer.
type SectionStyle uint8

const (
	SectionStyleLabel  SectionStyle = iota // one left-aligned label
	SectionStyleCustom                     // a single free-form content slot
)

// SectionHeadFoot is a section header or footer component.
type SectionHeadFoot struct {
	Component

	style   SectionStyle
	label   *Node
	content *Node
}

// NewSectionHeadFoot creates a header/footer for tv. Label headers use
// tv.HeaderFont, falling back to tv.LabelFont. No background is installed.
func NewSectionHeadFoot(tv *TableView, style SectionStyle) *SectionHeadFoot {
	h := &SectionHeadFoot{style: style}
	h.init(tv, "section")

	switch style {
	case SectionStyleLabel:
		var font Font
		if tv != nil {
			font = tv.HeaderFont
			if font == nil {
				font = tv.LabelFont
			}
		}
		h.label = h.newLabel(font)
		h.measure = func() float64 { return h.labelHeight(h.label) }
	default:
		h.style = SectionStyleCustom
		h.content = NewContainer("content")
		h.foreground.AddChild(h.content)
	}
	return h
}

// Style returns the header/footer layout style.
func (h *SectionHeadFoot) Style() SectionStyle { return h.style }

// Label returns the label node of a SectionStyleLabel component, or nil.
func (h *SectionHeadFoot) Label() *Node { return h.label }

// SetText sets the label text. No-op for custom components.
func (h *SectionHeadFoot) SetText(s string) {
	if h.label != nil {
		h.label.TextBlock.SetContent(s)
	}
}

// Content returns the content slot of a custom component, or nil.
func (h *SectionHeadFoot) Content() *Node { return h.content }

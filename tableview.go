package scrollkit

import "math"

// ScrollMode selects how a table responds to drags.
type ScrollMode uint8

const (
	// ScrollElastic lets drags pull past the content edges with growing
	// resistance, carries momentum after release, and springs back.
	ScrollElastic ScrollMode = iota
	// ScrollClamped applies drags directly and never leaves the content bounds.
	ScrollClamped
)

// TableConfig sizes a table and tunes its scrolling. Zero-valued tuning
// fields take the defaults shown by DefaultTableConfig.
type TableConfig struct {
	Width, Height float64
	Mode          ScrollMode

	// DampingRatio is the fraction of momentum lost per second.
	DampingRatio float64
	// ReleaseVelocityScale converts the last drag segment (distance over
	// elapsed time) into momentum on release.
	ReleaseVelocityScale float64
	// VelocityDeadZone zeroes momentum whose magnitude does not exceed it.
	VelocityDeadZone float64
	// MaxOverscrollFraction caps how far past an edge the content may be
	// pulled, as a fraction of the table height.
	MaxOverscrollFraction float64
	// RestoreSpeed is the spring-back speed, in table heights per second.
	RestoreSpeed float64
	// SelectSlop is the largest finger travel that still counts as a tap.
	SelectSlop float64
}

// DefaultTableConfig returns a config for a table of the given size.
func DefaultTableConfig(width, height float64) TableConfig {
	return TableConfig{
		Width:                 width,
		Height:                height,
		Mode:                  ScrollElastic,
		DampingRatio:          0.8,
		ReleaseVelocityScale:  0.01,
		VelocityDeadZone:      100,
		MaxOverscrollFraction: 0.4,
		RestoreSpeed:          2,
		SelectSlop:            10,
	}
}

func (c TableConfig) withDefaults() TableConfig {
	d := DefaultTableConfig(c.Width, c.Height)
	c.Width = math.Max(c.Width, 0)
	c.Height = math.Max(c.Height, 0)
	if c.DampingRatio == 0 {
		c.DampingRatio = d.DampingRatio
	}
	if c.ReleaseVelocityScale == 0 {
		c.ReleaseVelocityScale = d.ReleaseVelocityScale
	}
	if c.VelocityDeadZone == 0 {
		c.VelocityDeadZone = d.VelocityDeadZone
	}
	if c.MaxOverscrollFraction == 0 {
		c.MaxOverscrollFraction = d.MaxOverscrollFraction
	}
	if c.RestoreSpeed == 0 {
		c.RestoreSpeed = d.RestoreSpeed
	}
	if c.SelectSlop == 0 {
		c.SelectSlop = d.SelectSlop
	}
	return c
}

// section holds the components a data source produced for one section.
type section struct {
	header *SectionHeadFoot
	cells  []*Cell
	footer *SectionHeadFoot
}

// TableView is a vertically scrolling list of sections, each with an
// optional header, rows, and an optional footer. All components are built
// on ReloadData; the table lays them out top-down on a scroll layer and
// re-flows the visible part every frame so heights may change after the
// first measurement.
//
// Coordinates passed to and returned from a TableView are table-local:
// (0, 0) is the top-left corner and (Width, Height) the bottom-right.
type TableView struct {
	// LabelFont is used by label-style cells created with NewCell.
	LabelFont Font
	// HeaderFont is used by label-style headers and footers; nil falls back
	// to LabelFont.
	HeaderFont Font

	cfg           TableConfig
	width, height float64

	node       *Node
	background *Node
	foreground *Node // scroll layer; Y is the negated scroll offset
	bgNode     *Node

	dataSource DataSource
	delegate   Delegate
	store      EntityStore

	sections []section
	items    *layoutIndex

	allowsSelection bool
	allowsScroll    bool
	selected        IndexPath
	hasSelection    bool

	relayingOut  bool
	lastRelayout int
	firstHint    IndexPath

	scroll scrollState
}

// NewTableView creates an empty table. Set a data source to fill it.
func NewTableView(cfg TableConfig) *TableView {
	cfg = cfg.withDefaults()
	tv := &TableView{
		cfg:             cfg,
		width:           cfg.Width,
		height:          cfg.Height,
		node:            NewContainer("table"),
		background:      NewContainer("table background"),
		foreground:      NewContainer("table foreground"),
		items:           newLayoutIndex(),
		allowsSelection: true,
		allowsScroll:    true,
	}
	tv.node.UserData = tv
	tv.node.AddChild(tv.background)
	tv.node.AddChild(tv.foreground)
	bg := NewSprite("table background", tv.width, tv.height, defaultTableBackground)
	bg.SetPosition(tv.width/2, tv.height/2)
	tv.bgNode = bg
	tv.background.AddChild(bg)
	return tv
}

// Node returns the table's root node. Add it to a scene graph to place the table.
func (tv *TableView) Node() *Node { return tv.node }

// Size returns the table's width and height.
func (tv *TableView) Size() Vec2 { return Vec2{tv.width, tv.height} }

// Config returns the effective configuration.
func (tv *TableView) Config() TableConfig { return tv.cfg }

// SetBackground replaces the node drawn behind the rows, scaled to cover the
// table. The previous background is detached first; nil removes it.
func (tv *TableView) SetBackground(n *Node) {
	if tv.bgNode != nil {
		tv.bgNode.RemoveFromParent()
	}
	tv.bgNode = n
	if n == nil {
		return
	}
	n.SetPosition(tv.width/2, tv.height/2)
	fitNode(n, tv.width, tv.height)
	tv.background.AddChild(n)
}

// Background returns the current background node, or nil.
func (tv *TableView) Background() *Node { return tv.bgNode }

// SetEntityStore forwards selection changes to store. nil disables forwarding.
func (tv *TableView) SetEntityStore(store EntityStore) { tv.store = store }

// --- Data source & delegate ---

// SetDataSource installs ds and reloads the table.
func (tv *TableView) SetDataSource(ds DataSource) {
	tv.dataSource = ds
	tv.ReloadData()
}

// DataSource returns the installed data source.
func (tv *TableView) DataSource() DataSource { return tv.dataSource }

// SetDelegate installs d and runs a full layout pass.
func (tv *TableView) SetDelegate(d Delegate) {
	tv.delegate = d
	tv.layout()
}

// Delegate returns the installed delegate.
func (tv *TableView) Delegate() Delegate { return tv.delegate }

// AllowsSelection reports whether rows can be selected.
func (tv *TableView) AllowsSelection() bool { return tv.allowsSelection }

// SetAllowsSelection enables or disables selection. Disabling it clears the
// current selection, firing the deselect callback.
func (tv *TableView) SetAllowsSelection(allow bool) {
	tv.allowsSelection = allow
	if !allow {
		tv.setSelection(IndexPath{}, false)
	}
}

// AllowsScroll reports whether drags scroll the table.
func (tv *TableView) AllowsScroll() bool { return tv.allowsScroll }

// SetAllowsScroll enables or disables scrolling by touch.
func (tv *TableView) SetAllowsScroll(allow bool) { tv.allowsScroll = allow }

// --- Reload & layout ---

// ReloadData rebuilds every section from the data source and lays the table
// out from the top. The scroll position and the selection are reset. No
// deselect callback fires for the dropped selection.
func (tv *TableView) ReloadData() {
	tv.selected, tv.hasSelection = IndexPath{}, false
	tv.items.each(func(_ IndexPath, it *layoutItem) bool {
		it.setContent(nil)
		return true
	})
	tv.items.clear()
	tv.sections = tv.sections[:0]

	if ds := tv.dataSource; ds != nil {
		count := 1
		if sds, ok := ds.(SectionDataSource); ok {
			count = max(sds.NumberOfSections(tv), 1)
		}
		hfs, _ := ds.(HeaderFooterDataSource)
		for s := 0; s < count; s++ {
			var sec section
			if hfs != nil {
				sec.header = hfs.HeaderForSection(tv, s)
				sec.footer = hfs.FooterForSection(tv, s)
			}
			rows := max(ds.NumberOfRows(tv, s), 0)
			sec.cells = make([]*Cell, 0, rows)
			for r := 0; r < rows; r++ {
				sec.cells = append(sec.cells, ds.CellForRow(tv, IndexPath{Section: s, Row: r}))
			}
			tv.sections = append(tv.sections, sec)
		}
	}
	tv.initLayoutItems()
}

// initLayoutItems builds one layout item per index path from tv.sections.
func (tv *TableView) initLayoutItems() {
	for s, sec := range tv.sections {
		header := newLayoutItem(itemHeader, tv, HeaderIndex(s))
		if sec.header != nil {
			header.setContent(&sec.header.Component)
		}
		tv.items.put(HeaderIndex(s), header)

		for r, cell := range sec.cells {
			index := IndexPath{Section: s, Row: r}
			it := newLayoutItem(itemCell, tv, index)
			if cell != nil {
				it.setContent(&cell.Component)
			}
			tv.items.put(index, it)
		}

		footer := newLayoutItem(itemFooter, tv, FooterIndex(s))
		if sec.footer != nil {
			footer.setContent(&sec.footer.Component)
		}
		tv.items.put(FooterIndex(s), footer)
	}
	tv.layout()
}

// layout is the full layout pass: every item is measured and stacked from
// the top of the content, and the scroll position returns to the top.
func (tv *TableView) layout() {
	tv.foreground.RemoveChildren()
	tv.stopScrolling()
	tv.setOffset(0)
	tv.scroll.outOfBounds = 0

	top := 0.0
	tv.items.each(func(p IndexPath, it *layoutItem) bool {
		it.setHeight(tv.resolveHeight(p, it))
		it.node.SetPosition(tv.width/2, top+it.height/2)
		tv.foreground.AddChild(it.node)
		top += it.height
		return true
	})
}

// relayoutVisible re-measures the first visible item and everything after
// it, restacking them below the first visible item's current top edge.
// Items above stay untouched. Nested calls are ignored.
func (tv *TableView) relayoutVisible() {
	if tv.relayingOut {
		return
	}
	first, ok := tv.firstVisible()
	if !ok {
		tv.lastRelayout = 0
		return
	}
	tv.relayingOut = true
	defer func() { tv.relayingOut = false }()

	count := 0
	top := tv.items.get(first).top()
	tv.items.from(first, func(p IndexPath, it *layoutItem) bool {
		it.setHeight(tv.resolveHeight(p, it))
		it.node.SetPosition(tv.width/2, top+it.height/2)
		top += it.height
		count++
		return true
	})
	tv.lastRelayout = count
}

// resolveHeight picks an item's height: an explicit delegate height, else
// the content's measured height, else the default for the item's kind.
func (tv *TableView) resolveHeight(p IndexPath, it *layoutItem) float64 {
	h := AutomaticDimension
	if d := tv.delegate; d != nil {
		switch it.kind {
		case itemHeader:
			h = d.HeightForHeader(tv, p.Section)
		case itemFooter:
			h = d.HeightForFooter(tv, p.Section)
		default:
			h = d.HeightForRow(tv, p)
		}
	}
	if h != AutomaticDimension {
		return math.Max(h, 0)
	}
	if it.content != nil {
		return it.content.ContentHeight()
	}
	if it.kind == itemFooter {
		return 0
	}
	return DefaultCellHeight
}

// --- Queries ---

// NumberOfSections returns the section count built by the last reload.
func (tv *TableView) NumberOfSections() int { return len(tv.sections) }

// NumberOfRows returns the row count of section, or 0 when out of range.
func (tv *TableView) NumberOfRows(section int) int {
	if section < 0 || section >= len(tv.sections) {
		return 0
	}
	return len(tv.sections[section].cells)
}

// CellForRow returns the cell at index, or nil when out of range.
func (tv *TableView) CellForRow(index IndexPath) *Cell {
	if index.Section < 0 || index.Section >= len(tv.sections) {
		return nil
	}
	cells := tv.sections[index.Section].cells
	if index.Row < 0 || index.Row >= len(cells) {
		return nil
	}
	return cells[index.Row]
}

// SectionHeader returns the header of section, or nil.
func (tv *TableView) SectionHeader(section int) *SectionHeadFoot {
	if section < 0 || section >= len(tv.sections) {
		return nil
	}
	return tv.sections[section].header
}

// SectionFooter returns the footer of section, or nil.
func (tv *TableView) SectionFooter(section int) *SectionHeadFoot {
	if section < 0 || section >= len(tv.sections) {
		return nil
	}
	return tv.sections[section].footer
}

// IndexPathForCell returns the index path of cell.
func (tv *TableView) IndexPathForCell(cell *Cell) (IndexPath, bool) {
	if cell == nil {
		return IndexPath{}, false
	}
	for s, sec := range tv.sections {
		for r, c := range sec.cells {
			if c == cell {
				return IndexPath{Section: s, Row: r}, true
			}
		}
	}
	return IndexPath{}, false
}

// LayoutHeight returns the resolved height of the item at index.
func (tv *TableView) LayoutHeight(index IndexPath) (float64, bool) {
	it := tv.items.get(index)
	if it == nil {
		return 0, false
	}
	return it.height, true
}

// LayoutTop returns the distance from the top of the content to the top
// edge of the item at index.
func (tv *TableView) LayoutTop(index IndexPath) (float64, bool) {
	it := tv.items.get(index)
	if it == nil {
		return 0, false
	}
	return it.top(), true
}

// ContentHeight returns the sum of all resolved item heights.
func (tv *TableView) ContentHeight() float64 {
	total := 0.0
	tv.items.each(func(_ IndexPath, it *layoutItem) bool {
		total += it.height
		return true
	})
	return total
}

// MaxScrollOffset returns the largest in-bounds scroll offset.
func (tv *TableView) MaxScrollOffset() float64 {
	return math.Max(0, tv.ContentHeight()-tv.height)
}

// --- Visibility ---

// visibleWindow returns the span of content currently shown.
func (tv *TableView) visibleWindow() (top, bottom float64) {
	off := tv.ScrollOffset()
	return off, off + tv.height
}

func (tv *TableView) itemVisible(it *layoutItem) bool {
	top, bottom := tv.visibleWindow()
	return it.top() < bottom && it.bottom() > top
}

// IsVisible reports whether any part of the item at index is inside the
// table's window. Headers and footers are addressed with HeaderIndex and
// FooterIndex.
func (tv *TableView) IsVisible(index IndexPath) bool {
	it := tv.items.get(index)
	return it != nil && tv.itemVisible(it)
}

// VisibleIndexPaths returns every visible item, headers and footers
// included, in order.
func (tv *TableView) VisibleIndexPaths() []IndexPath {
	var out []IndexPath
	tv.items.each(func(p IndexPath, it *layoutItem) bool {
		if tv.itemVisible(it) {
			out = append(out, p)
		}
		return true
	})
	return out
}

// VisibleRows returns the visible rows in order, without headers or footers.
func (tv *TableView) VisibleRows() []IndexPath {
	var out []IndexPath
	for _, p := range tv.VisibleIndexPaths() {
		if p.IsRow() {
			out = append(out, p)
		}
	}
	return out
}

// firstVisible finds the first item reaching into the window. Items are
// stacked in index order; the walk starts at the previous answer and moves
// toward the window top.
func (tv *TableView) firstVisible() (IndexPath, bool) {
	it, ok := tv.items.seek(tv.firstHint)
	if !ok {
		return IndexPath{}, false
	}
	top, _ := tv.visibleWindow()

	if _, item := entry(&it); item.bottom() > top {
		for it.Prev() {
			if _, item := entry(&it); item.bottom() <= top {
				break
			}
		}
		it.Next()
	} else {
		for {
			if !it.Next() {
				return IndexPath{}, false
			}
			if _, item := entry(&it); item.bottom() > top {
				break
			}
		}
	}

	p, item := entry(&it)
	if !tv.itemVisible(item) {
		return IndexPath{}, false
	}
	tv.firstHint = p
	return p, true
}

// --- Hit testing ---

// IndexPathAt returns the row under the table-local point p. Points outside
// the table, or over a header or footer, report false.
func (tv *TableView) IndexPathAt(p Vec2) (IndexPath, bool) {
	if p.X < 0 || p.X > tv.width || p.Y < 0 || p.Y > tv.height {
		return IndexPath{}, false
	}
	y := p.Y + tv.ScrollOffset()

	var hit IndexPath
	found := false
	tv.items.each(func(ip IndexPath, it *layoutItem) bool {
		if y >= it.top() && y <= it.bottom() {
			hit, found = ip, true
			return false
		}
		return true
	})
	if !found || !hit.IsRow() {
		return IndexPath{}, false
	}
	return hit, true
}

// --- Selection ---

// Selected returns the selected row.
func (tv *TableView) Selected() (IndexPath, bool) {
	return tv.selected, tv.hasSelection
}

// SelectRow selects the row at index. With scrollTo, a row outside the window
// is first scrolled into view (clamped to the content bounds). Ignored when
// selection is disabled or index is out of range.
func (tv *TableView) SelectRow(index IndexPath, scrollTo bool) {
	if !tv.allowsSelection || tv.CellForRow(index) == nil {
		return
	}
	if scrollTo && !tv.IsVisible(index) {
		it := tv.items.get(index)
		off := tv.ScrollOffset()
		target := it.top()
		if it.top() >= off {
			target = it.bottom() - tv.height
		}
		tv.ScrollBy(target - off)
	}
	tv.setSelection(index, true)
}

// ClearSelection deselects the current row, if any.
func (tv *TableView) ClearSelection() {
	tv.setSelection(IndexPath{}, false)
}

// setSelection commits a new selection. The previous selection (if any) is
// always deselected first, then the new one (if any) selected, even when
// both are the same row.
func (tv *TableView) setSelection(index IndexPath, has bool) {
	prev, hadPrev := tv.selected, tv.hasSelection
	tv.selected, tv.hasSelection = index, has
	if !has {
		tv.selected = IndexPath{}
	}

	if hadPrev {
		if tv.delegate != nil {
			tv.delegate.DidDeselectRow(tv, prev)
		}
		tv.emit(EventRowDeselected, prev)
	}
	if has {
		if tv.delegate != nil {
			tv.delegate.DidSelectRow(tv, index)
		}
		tv.emit(EventRowSelected, index)
	}
}

func (tv *TableView) emit(t EventType, index IndexPath) {
	if tv.store == nil {
		return
	}
	tv.store.EmitEvent(InteractionEvent{
		Type:   t,
		Source: tv.node.Name,
		Index:  index,
	})
}

// --- Frame update ---

// Update advances the table by dt seconds: any scroll animation, the
// incremental layout pass, and momentum/spring-back while no finger is down.
func (tv *TableView) Update(dt float64) {
	animating := tv.advanceScrollAnimation(dt)
	if !tv.relayingOut {
		tv.relayoutVisible()
	}
	if !animating && !tv.scroll.touching && tv.cfg.Mode == ScrollElastic {
		tv.momentum(dt)
	}
}

// LastRelayoutCount returns how many items the most recent incremental
// layout pass re-measured.
func (tv *TableView) LastRelayoutCount() int { return tv.lastRelayout }

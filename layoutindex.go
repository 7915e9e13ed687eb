package scrollkit

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// itemKind distinguishes the three roles a layout item can play.
type itemKind uint8

const (
	itemHeader itemKind = iota
	itemCell
	itemFooter
)

// layoutItem is the positioned, sized wrapper around one component at one
// index path. Its node lives on the table's scroll layer; Y is the item's
// center measured from the top of the content.
type layoutItem struct {
	kind    itemKind
	table   *TableView
	node    *Node
	content *Component
	height  float64
}

func newLayoutItem(kind itemKind, table *TableView, index IndexPath) *layoutItem {
	it := &layoutItem{
		kind:   kind,
		table:  table,
		node:   NewContainer("layout " + index.String()),
		height: AutomaticDimension,
	}
	it.node.UserData = index
	return it
}

// setContent detaches the previous content (if any) from the item, then
// attaches c as an owned child at the item origin.
func (it *layoutItem) setContent(c *Component) {
	if it.content != nil {
		it.content.node.RemoveFromParent()
	}
	it.content = c
	if c != nil {
		c.node.SetPosition(0, 0)
		it.node.AddChild(c.node)
	}
}

// setHeight stores a resolved height, resizing the content's background when
// the value changes.
func (it *layoutItem) setHeight(h float64) {
	if it.height == h {
		return
	}
	it.height = h
	if it.content != nil {
		it.content.fitBackground(it.table.width, h)
	}
}

func (it *layoutItem) top() float64    { return it.node.Y - it.height/2 }
func (it *layoutItem) bottom() float64 { return it.node.Y + it.height/2 }

// layoutIndex is the sorted map from index path to layout item.
type layoutIndex struct {
	t *rbt.Tree
}

func compareIndexPaths(a, b any) int {
	return a.(IndexPath).Compare(b.(IndexPath))
}

func newLayoutIndex() *layoutIndex {
	return &layoutIndex{t: rbt.NewWith(compareIndexPaths)}
}

func (x *layoutIndex) put(p IndexPath, it *layoutItem) { x.t.Put(p, it) }

func (x *layoutIndex) get(p IndexPath) *layoutItem {
	v, ok := x.t.Get(p)
	if !ok {
		return nil
	}
	return v.(*layoutItem)
}

func (x *layoutIndex) clear() { x.t.Clear() }

func (x *layoutIndex) len() int { return x.t.Size() }

// each calls fn for every item in index order, stopping early when fn
// returns false. Callers that mutate heights or positions do so through the
// items themselves; the key set never changes during a walk.
func (x *layoutIndex) each(fn func(IndexPath, *layoutItem) bool) {
	it := x.t.Iterator()
	for it.Next() {
		if !fn(it.Key().(IndexPath), it.Value().(*layoutItem)) {
			return
		}
	}
}

// from walks items whose index path is >= start, in order.
func (x *layoutIndex) from(start IndexPath, fn func(IndexPath, *layoutItem) bool) {
	it, ok := x.seek(start)
	if !ok {
		return
	}
	if p, _ := entry(&it); p.Less(start) {
		return
	}
	for {
		p, item := entry(&it)
		if !fn(p, item) || !it.Next() {
			return
		}
	}
}

// seek positions an iterator on the first item at or after start. When
// every key is before start it lands on the last item instead. An empty
// index reports false.
func (x *layoutIndex) seek(start IndexPath) (rbt.Iterator, bool) {
	if node, ok := x.t.Ceiling(start); ok {
		return x.t.IteratorAt(node), true
	}
	it := x.t.Iterator()
	return it, it.Last()
}

// entry returns the key and item under a positioned iterator.
func entry(it *rbt.Iterator) (IndexPath, *layoutItem) {
	return it.Key().(IndexPath), it.Value().(*layoutItem)
}

package scrollkit

import (
	"sort"
	"testing"
)

func TestIndexPathOrdering(t *testing.T) {
	paths := []IndexPath{
		FooterIndex(1),
		{Section: 1, Row: 0},
		FooterIndex(0),
		HeaderIndex(1),
		{Section: 0, Row: 2},
		HeaderIndex(0),
		{Section: 0, Row: 0},
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].Less(paths[j]) })

	want := []IndexPath{
		HeaderIndex(0),
		{Section: 0, Row: 0},
		{Section: 0, Row: 2},
		FooterIndex(0),
		HeaderIndex(1),
		{Section: 1, Row: 0},
		FooterIndex(1),
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("order[%d] = %v, want %v (full: %v)", i, paths[i], want[i], paths)
		}
	}
}

func TestIndexPathCompare(t *testing.T) {
	a := IndexPath{Section: 2, Row: 3}
	if a.Compare(a) != 0 {
		t.Error("Compare to self should be 0")
	}
	if a.Compare(IndexPath{Section: 2, Row: 4}) != -1 {
		t.Error("row order")
	}
	if a.Compare(IndexPath{Section: 1, Row: 99}) != 1 {
		t.Error("section order")
	}
}

func TestIndexPathKinds(t *testing.T) {
	h, f, r := HeaderIndex(0), FooterIndex(0), IndexPath{Row: 5}
	if !h.IsHeader() || h.IsRow() || h.IsFooter() {
		t.Errorf("header kinds wrong for %v", h)
	}
	if !f.IsFooter() || f.IsRow() {
		t.Errorf("footer kinds wrong for %v", f)
	}
	if !r.IsRow() || r.IsHeader() {
		t.Errorf("row kinds wrong for %v", r)
	}
}

func TestIndexPathString(t *testing.T) {
	tests := []struct {
		p    IndexPath
		want string
	}{
		{IndexPath{Section: 1, Row: 4}, "[1 4]"},
		{HeaderIndex(2), "[2 header]"},
		{FooterIndex(0), "[0 footer]"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLayoutIndexFrom(t *testing.T) {
	x := newLayoutIndex()
	for _, p := range []IndexPath{HeaderIndex(0), {Row: 0}, {Row: 1}, FooterIndex(0)} {
		x.put(p, &layoutItem{})
	}
	if x.len() != 4 {
		t.Fatalf("len = %d, want 4", x.len())
	}

	var seen []IndexPath
	x.from(IndexPath{Row: 1}, func(p IndexPath, _ *layoutItem) bool {
		seen = append(seen, p)
		return true
	})
	if len(seen) != 2 || seen[0] != (IndexPath{Row: 1}) || seen[1] != FooterIndex(0) {
		t.Errorf("from(row 1) = %v", seen)
	}

	seen = seen[:0]
	x.from(IndexPath{Row: 5}, func(p IndexPath, _ *layoutItem) bool {
		seen = append(seen, p)
		return true
	})
	if len(seen) != 1 || seen[0] != FooterIndex(0) {
		t.Errorf("from(row 5) = %v, want only the footer", seen)
	}
	x.from(HeaderIndex(1), func(p IndexPath, _ *layoutItem) bool {
		t.Errorf("from past the end visited %v", p)
		return true
	})
	n := 0
	x.from(HeaderIndex(0), func(IndexPath, *layoutItem) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Errorf("from stopped after %d items, want 2", n)
	}

	if x.get(IndexPath{Row: 7}) != nil {
		t.Error("get of a missing path should be nil")
	}
	x.clear()
	if x.len() != 0 {
		t.Error("clear should empty the index")
	}
	x.from(IndexPath{}, func(p IndexPath, _ *layoutItem) bool {
		t.Errorf("empty index visited %v", p)
		return true
	})
}

package scrollkit

import (
	"fmt"
	"math"
)

// Reserved row values that address a section's header and footer. They sort
// before row 0 and after every real row respectively.
const (
	HeaderRow = math.MinInt
	FooterRow = math.MaxInt
)

// IndexPath addresses one item of a table: a section header, a row, or a
// section footer.
type IndexPath struct {
	Section int
	Row     int
}

// HeaderIndex returns the index path of the header of section.
func HeaderIndex(section int) IndexPath { return IndexPath{Section: section, Row: HeaderRow} }

// FooterIndex returns the index path of the footer of section.
func FooterIndex(section int) IndexPath { return IndexPath{Section: section, Row: FooterRow} }

// IsHeader reports whether p addresses a section header.
func (p IndexPath) IsHeader() bool { return p.Row == HeaderRow }

// IsFooter reports whether p addresses a section footer.
func (p IndexPath) IsFooter() bool { return p.Row == FooterRow }

// IsRow reports whether p addresses a concrete row.
func (p IndexPath) IsRow() bool { return p.Row != HeaderRow && p.Row != FooterRow }

// Compare orders index paths by section, then row. It returns -1, 0 or +1.
func (p IndexPath) Compare(q IndexPath) int {
	switch {
	case p.Section < q.Section:
		return -1
	case p.Section > q.Section:
		return 1
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before q.
func (p IndexPath) Less(q IndexPath) bool { return p.Compare(q) < 0 }

func (p IndexPath) String() string {
	switch {
	case p.IsHeader():
		return fmt.Sprintf("[%d header]", p.Section)
	case p.IsFooter():
		return fmt.Sprintf("[%d footer]", p.Section)
	default:
		return fmt.Sprintf("[%d %d]", p.Section, p.Row)
	}
}

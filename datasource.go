package scrollkit

// AutomaticDimension asks the table to measure an item's height from its
// content. It is compared by exact equality; every real height is >= 0.
const AutomaticDimension = -1.0

// DefaultCellHeight is used for rows and headers that request
// AutomaticDimension but have no content to measure.
const DefaultCellHeight = 44.0

// DataSource supplies the table's content. Cells are built eagerly on
// ReloadData, one call per row.
type DataSource interface {
	NumberOfRows(tv *TableView, section int) int
	CellForRow(tv *TableView, index IndexPath) *Cell
}

// SectionDataSource is implemented by data sources with more than one
// section. Without it the table has exactly one section.
type SectionDataSource interface {
	NumberOfSections(tv *TableView) int
}

// HeaderFooterDataSource is implemented by data sources that supply section
// headers or footers. Either method may return nil.
type HeaderFooterDataSource interface {
	HeaderForSection(tv *TableView, section int) *SectionHeadFoot
	FooterForSection(tv *TableView, section int) *SectionHeadFoot
}

// Delegate provides item heights and receives selection callbacks.
// Embed NopDelegate to implement only the methods you need.
type Delegate interface {
	HeightForRow(tv *TableView, index IndexPath) float64
	HeightForHeader(tv *TableView, section int) float64
	HeightForFooter(tv *TableView, section int) float64
	DidSelectRow(tv *TableView, index IndexPath)
	DidDeselectRow(tv *TableView, index IndexPath)
}

// NopDelegate measures every item automatically and ignores selection.
type NopDelegate struct{}

func (NopDelegate) HeightForRow(*TableView, IndexPath) float64 { return AutomaticDimension }
func (NopDelegate) HeightForHeader(*TableView, int) float64    { return AutomaticDimension }
func (NopDelegate) HeightForFooter(*TableView, int) float64    { return AutomaticDimension }
func (NopDelegate) DidSelectRow(*TableView, IndexPath)         {}
func (NopDelegate) DidDeselectRow(*TableView, IndexPath)       {}

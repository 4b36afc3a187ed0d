package parser

import (
	"math"

	"github.com/xuri/excelize/v2"
)

// Column widths and row heights that excelize measures in pixels when
// nothing is set on the sheet.
const (
	defaultColWidthChars  = 9.140625
	defaultColWidthPixels = 64
	defaultRowHeightPt    = 15
	defaultRowHeightPx    = 20
)

// sheetMetrics converts column widths and row heights to pixels the way
// excelize does when it places a two-cell anchor, so a chart rendered at
// W x H reads back as W x H. A nil file measures every cell at the
// defaults.
type sheetMetrics struct {
	f     *excelize.File
	props map[string]excelize.SheetPropsOptions
}

func newSheetMetrics(f *excelize.File) *sheetMetrics {
	return &sheetMetrics{f: f, props: make(map[string]excelize.SheetPropsOptions)}
}

func (m *sheetMetrics) sheetProps(sheet string) excelize.SheetPropsOptions {
	if p, ok := m.props[sheet]; ok {
		return p
	}
	p, _ := m.f.GetSheetProps(sheet)
	m.props[sheet] = p
	return p
}

// colPixels returns the width of the 1-based column col.
func (m *sheetMetrics) colPixels(sheet string, col int) int {
	if m == nil || m.f == nil {
		return defaultColWidthPixels
	}
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return defaultColWidthPixels
	}
	width, err := m.f.GetColWidth(sheet, name)
	if err != nil {
		return defaultColWidthPixels
	}
	if width == defaultColWidthChars && !positive(m.sheetProps(sheet).DefaultColWidth) {
		return defaultColWidthPixels
	}
	if width == 0 {
		return 0
	}
	return int(width*8 + 0.5)
}

// rowPixels returns the height of the 1-based row row.
func (m *sheetMetrics) rowPixels(sheet string, row int) int {
	if m == nil || m.f == nil {
		return defaultRowHeightPx
	}
	height, err := m.f.GetRowHeight(sheet, row)
	if err != nil {
		return defaultRowHeightPx
	}
	if height == defaultRowHeightPt && !positive(m.sheetProps(sheet).DefaultRowHeight) {
		return defaultRowHeightPx
	}
	return int(math.Ceil(4.0 / 3.4 * height))
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}

package models

// SeriesRef represents series metadata recovered from a chart part.
type SeriesRef struct {
	// Name is the series display name.
	Name string `json:"name,omitempty"`
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// CategoryRange is the range reference for the category labels.
	CategoryRange string `json:"category_range,omitempty"`
	// ValueRange is the range reference for the values.
	ValueRange string `json:"value_range,omitempty"`
}

// DataRow is one row of the data block written next to a chart.
type DataRow struct {
	// Label is the segment label.
	Label string `json:"label"`
	// Count is the raw value.
	Count int `json:"count"`
	// Share is the value as a percentage of the block total.
	Share float64 `json:"share"`
}

// ChartSummary is what the workbook parser recovers for one chart.
type ChartSummary struct {
	// Sheet is the sheet (render surface) holding the chart.
	Sheet string `json:"sheet"`
	// Name is the drawing object name.
	Name string `json:"name,omitempty"`
	// Kind is the chart kind, or empty when the plot type has no ChartKind.
	Kind ChartKind `json:"kind,omitempty"`
	// PlotType is the raw OOXML plot element (e.g., pieChart).
	PlotType string `json:"plot_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// TitleFontSize is the title font size in points (0 if unset).
	TitleFontSize float64 `json:"title_font_size,omitempty"`
	// LegendFontSize is the legend font size in points (0 if unset).
	LegendFontSize float64 `json:"legend_font_size,omitempty"`
	// Anchor is the top-left cell the chart is anchored to.
	Anchor string `json:"anchor,omitempty"`
	// W is the chart width in pixels (0 if unknown).
	W int `json:"w,omitempty"`
	// H is the chart height in pixels (0 if unknown).
	H int `json:"h,omitempty"`
	// Series is the list of series included in the chart.
	Series []SeriesRef `json:"series"`
	// Rows is the data block found on the sheet.
	Rows []DataRow `json:"rows,omitempty"`
}

// DataBlockHeader is the header row of the data block the workbook
// renderer writes at A1 of each surface sheet.
var DataBlockHeader = []string{"Label", "Count", "Share (%)"}

package render

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/donechart-go/pkg/donechart"
	"github.com/ukaji3/donechart-go/pkg/donechart/models"
	"github.com/ukaji3/donechart-go/pkg/donechart/parser"
	"github.com/xuri/excelize/v2"
)

func saveWorkbook(t *testing.T, wb *Workbook) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.xlsx")
	require.NoError(t, wb.SaveAs(path))
	return path
}

func TestWorkbook_RenderPie(t *testing.T) {
	wb := NewWorkbook(WorkbookOptions{})
	defer wb.Close()

	cfg := buildConfig(t, 3, 1, donechart.Options{})
	require.NoError(t, wb.Render("done_percentage", cfg))
	path := saveWorkbook(t, wb)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"done_percentage"}, f.GetSheetList())

	rows, err := parser.ExtractDataBlock(f, "done_percentage")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Done", rows[0].Label)
	assert.Equal(t, 3, rows[0].Count)
	assert.InDelta(t, 75.0, rows[0].Share, 0.01)
	assert.Equal(t, "Not Done", rows[1].Label)
	assert.Equal(t, 1, rows[1].Count)

	charts, err := parser.ExtractCharts(path)
	require.NoError(t, err)
	require.Len(t, charts["done_percentage"], 1)

	chart := charts["done_percentage"][0]
	assert.Equal(t, models.KindPie, chart.Kind)
	assert.Equal(t, "pieChart", chart.PlotType)
	assert.Equal(t, donechart.DefaultTitleText, chart.Title)
	assert.InDelta(t, 20.0, chart.TitleFontSize, 0.01)
	assert.InDelta(t, 18.0, chart.LegendFontSize, 0.01)
	assert.Equal(t, ChartAnchor, chart.Anchor)
	require.Len(t, chart.Series, 1)
	assert.Equal(t, "'done_percentage'!$B$2:$B$3", chart.Series[0].ValueRange)
	assert.Equal(t, "'done_percentage'!$A$2:$A$3", chart.Series[0].CategoryRange)
}

func TestWorkbook_RenderBarOneSeriesPerSegment(t *testing.T) {
	wb := NewWorkbook(WorkbookOptions{Width: 640, Height: 400})
	defer wb.Close()

	cfg := buildConfig(t, 2, 6, donechart.Options{Kind: models.KindBar, Colors: []string{"#00ff00", "tomato"}})
	require.NoError(t, wb.Render("Sprint 4", cfg))
	path := saveWorkbook(t, wb)

	charts, err := parser.ExtractCharts(path)
	require.NoError(t, err)
	require.Len(t, charts["Sprint 4"], 1)

	chart := charts["Sprint 4"][0]
	assert.Equal(t, models.KindBar, chart.Kind)
	require.Len(t, chart.Series, 2)
	assert.Equal(t, "'Sprint 4'!$B$2", chart.Series[0].ValueRange)
	assert.Equal(t, "'Sprint 4'!$B$3", chart.Series[1].ValueRange)
}

func TestWorkbook_MultipleSurfaces(t *testing.T) {
	wb := NewWorkbook(WorkbookOptions{})
	defer wb.Close()

	require.NoError(t, wb.Render("alpha", buildConfig(t, 1, 1, donechart.Options{})))
	require.NoError(t, wb.Render("beta", buildConfig(t, 0, 4, donechart.Options{Kind: models.KindDoughnut})))
	assert.Equal(t, []string{"alpha", "beta"}, wb.Surfaces())

	var buf bytes.Buffer
	_, err := wb.WriteTo(&buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"alpha", "beta"}, f.GetSheetList())
}

func TestWorkbook_Errors(t *testing.T) {
	wb := NewWorkbook(WorkbookOptions{})
	defer wb.Close()

	cfg := buildConfig(t, 1, 1, donechart.Options{})

	assert.ErrorIs(t, wb.Render("", cfg), ErrMissingSurface)

	polar := buildConfig(t, 1, 1, donechart.Options{Kind: models.KindPolarArea})
	assert.ErrorIs(t, wb.Render("polar", polar), ErrUnsupportedKind)

	require.NoError(t, wb.Render("tasks", cfg))
	assert.ErrorIs(t, wb.Render("Tasks", cfg), ErrSurfaceExists)

	// Sheet names cannot contain brackets.
	var renderErr *RenderError
	assert.ErrorAs(t, wb.Render("bad[name]", cfg), &renderErr)

	assert.Equal(t, []string{"tasks"}, wb.Surfaces())
}

func TestWorkbook_ChartSizeReadsBack(t *testing.T) {
	tests := []struct {
		name          string
		opts          WorkbookOptions
		width, height int
	}{
		{"defaults", WorkbookOptions{}, defaultChartWidth, defaultChartHeight},
		{"explicit", WorkbookOptions{Width: 640, Height: 400}, 640, 400},
		{"uneven", WorkbookOptions{Width: 333, Height: 257}, 333, 257},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := NewWorkbook(tt.opts)
			defer wb.Close()

			// The first surface reuses the template sheet, the second is new.
			require.NoError(t, wb.Render("first", buildConfig(t, 1, 2, donechart.Options{})))
			require.NoError(t, wb.Render("second", buildConfig(t, 3, 4, donechart.Options{Kind: models.KindBar})))
			path := saveWorkbook(t, wb)

			charts, err := parser.ExtractCharts(path)
			require.NoError(t, err)
			for _, sheet := range []string{"first", "second"} {
				require.Len(t, charts[sheet], 1, sheet)
				assert.Equal(t, ChartAnchor, charts[sheet][0].Anchor, sheet)
				assert.Equal(t, tt.width, charts[sheet][0].W, sheet)
				assert.Equal(t, tt.height, charts[sheet][0].H, sheet)
			}
		})
	}
}

func TestWorkbookSupports(t *testing.T) {
	assert.True(t, WorkbookSupports(models.KindPie))
	assert.True(t, WorkbookSupports(models.KindDoughnut))
	assert.True(t, WorkbookSupports(models.KindBar))
	assert.False(t, WorkbookSupports(models.KindPolarArea))
	assert.False(t, WorkbookSupports("radar"))
}

package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/donechart-go/internal/log"
	"github.com/ukaji3/donechart-go/pkg/donechart"
	"github.com/ukaji3/donechart-go/pkg/donechart/models"
	"github.com/xuri/excelize/v2"
)

// ChartAnchor is the cell the chart's top-left corner is anchored to,
// to the right of the data block.
const ChartAnchor = "E2"

const (
	defaultChartWidth  = 480
	defaultChartHeight = 320
)

// workbookChartTypes maps chart kinds to excelize chart types. Kinds not
// listed cannot be drawn in a workbook.
var workbookChartTypes = map[models.ChartKind]excelize.ChartType{
	models.KindPie:      excelize.Pie,
	models.KindDoughnut: excelize.Doughnut,
	models.KindBar:      excelize.Col,
}

// WorkbookSupports reports whether the workbook renderer can draw kind.
func WorkbookSupports(kind models.ChartKind) bool {
	_, ok := workbookChartTypes[kind]
	return ok
}

// WorkbookOptions configures the workbook renderer.
type WorkbookOptions struct {
	// Width is the chart width in pixels (default 480).
	Width uint
	// Height is the chart height in pixels (default 320).
	Height uint
	// LegendPosition is bottom, left, right, top or top_right (default top).
	LegendPosition string
}

// Workbook renders each surface as a sheet holding a data block and a
// native spreadsheet chart. It is not safe for concurrent use.
type Workbook struct {
	f        *excelize.File
	opts     WorkbookOptions
	surfaces []string
	logger   zerolog.Logger
}

// NewWorkbook creates a workbook renderer backed by a new, empty file.
func NewWorkbook(opts WorkbookOptions) *Workbook {
	if opts.Width == 0 {
		opts.Width = defaultChartWidth
	}
	if opts.Height == 0 {
		opts.Height = defaultChartHeight
	}
	if opts.LegendPosition == "" {
		opts.LegendPosition = "top"
	}
	return &Workbook{
		f:      excelize.NewFile(),
		opts:   opts,
		logger: log.WithComponent("render.workbook"),
	}
}

// Surfaces returns the rendered surfaces in render order.
func (w *Workbook) Surfaces() []string {
	return append([]string(nil), w.surfaces...)
}

// Render implements Renderer. The surface id becomes the sheet name.
func (w *Workbook) Render(surfaceID string, cfg models.ChartConfig) error {
	if err := checkSurface(surfaceID, "workbook"); err != nil {
		return err
	}
	chartType, ok := workbookChartTypes[cfg.Kind()]
	if !ok {
		return NewRenderError(surfaceID, "workbook", fmt.Errorf("%w: %q", ErrUnsupportedKind, cfg.Kind()))
	}
	for _, s := range w.surfaces {
		if strings.EqualFold(s, surfaceID) {
			return NewRenderError(surfaceID, "workbook", ErrSurfaceExists)
		}
	}

	fills, err := resolveFills(cfg.Colors())
	if err != nil {
		return NewRenderError(surfaceID, "workbook", err)
	}
	if err := w.addSheet(surfaceID); err != nil {
		return NewRenderError(surfaceID, "workbook", err)
	}
	if err := w.writeDataBlock(surfaceID, cfg, fills); err != nil {
		return NewRenderError(surfaceID, "workbook", err)
	}
	if err := w.f.AddChart(surfaceID, ChartAnchor, w.chartFor(surfaceID, chartType, cfg, fills)); err != nil {
		return NewRenderError(surfaceID, "workbook", fmt.Errorf("add chart: %w", err))
	}

	w.surfaces = append(w.surfaces, surfaceID)
	w.logger.Debug().
		Str("surface", surfaceID).
		Str("kind", string(cfg.Kind())).
		Int("total", cfg.Total()).
		Msg("chart rendered")
	return nil
}

// addSheet reuses the default sheet for the first surface.
func (w *Workbook) addSheet(name string) error {
	if len(w.surfaces) == 0 {
		return w.f.SetSheetName(w.f.GetSheetName(0), name)
	}
	_, err := w.f.NewSheet(name)
	return err
}

// writeDataBlock writes the header and one label/count/share row per
// segment, shading each label cell with its segment color.
func (w *Workbook) writeDataBlock(sheet string, cfg models.ChartConfig, fills []string) error {
	header := make([]interface{}, len(models.DataBlockHeader))
	for i, h := range models.DataBlockHeader {
		header[i] = h
	}
	if err := w.f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	labels, values, shares := cfg.Labels(), cfg.Values(), cfg.Shares()
	for i := range labels {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{labels[i], values[i], math.Round(shares[i]*100) / 100}
		if err := w.f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}

		style, err := w.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fills[i]}},
		})
		if err != nil {
			return fmt.Errorf("label style: %w", err)
		}
		if err := w.f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("label style: %w", err)
		}
	}
	return nil
}

// chartFor builds the excelize chart. Pie and doughnut charts use one
// series and vary colors per point; bar charts use one series per
// segment so each bar carries its own fill.
func (w *Workbook) chartFor(sheet string, chartType excelize.ChartType, cfg models.ChartConfig, fills []string) *excelize.Chart {
	ref := sheetRef(sheet)
	n := cfg.Len()

	chart := &excelize.Chart{
		Type:      chartType,
		Dimension: excelize.ChartDimension{Width: w.opts.Width, Height: w.opts.Height},
		Legend: excelize.ChartLegend{
			Position: w.opts.LegendPosition,
			Font:     &excelize.Font{Size: float64(cfg.LegendFontSize())},
		},
	}
	if title := cfg.TitleText(); title != "" {
		chart.Title = []excelize.RichTextRun{{
			Text: title,
			Font: &excelize.Font{Bold: true, Size: float64(cfg.TitleFontSize())},
		}}
	}

	if chartType == excelize.Col {
		vary := false
		chart.VaryColors = &vary
		for i := 0; i < n; i++ {
			row := i + 2
			chart.Series = append(chart.Series, excelize.ChartSeries{
				Name:       fmt.Sprintf("%s!$A$%d", ref, row),
				Categories: fmt.Sprintf("%s!$B$1", ref),
				Values:     fmt.Sprintf("%s!$B$%d", ref, row),
				Fill:       excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fills[i]}},
			})
		}
		return chart
	}

	vary := true
	chart.VaryColors = &vary
	chart.PlotArea = excelize.ChartPlotArea{ShowPercent: true}
	chart.Series = []excelize.ChartSeries{{
		Name:       fmt.Sprintf("%s!$B$1", ref),
		Categories: fmt.Sprintf("%s!$A$2:$A$%d", ref, n+1),
		Values:     fmt.Sprintf("%s!$B$2:$B$%d", ref, n+1),
	}}
	return chart
}

// SaveAs writes the workbook to path.
func (w *Workbook) SaveAs(path string) error {
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	w.logger.Info().Str("path", path).Int("surfaces", len(w.surfaces)).Msg("workbook saved")
	return nil
}

// WriteTo writes the workbook to wr.
func (w *Workbook) WriteTo(wr io.Writer) (int64, error) {
	return w.f.WriteTo(wr)
}

// Close releases the underlying file.
func (w *Workbook) Close() error {
	return w.f.Close()
}

func resolveFills(colors []string) ([]string, error) {
	fills := make([]string, len(colors))
	for i, c := range colors {
		hex, err := donechart.ResolveColor(c)
		if err != nil {
			return nil, err
		}
		fills[i] = "#" + hex
	}
	return fills, nil
}

// sheetRef quotes a sheet name for use in a range formula.
func sheetRef(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

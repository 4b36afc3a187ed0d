package parser

import (
	"archive/zip"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/ukaji3/donechart-go/pkg/donechart/models"
	"github.com/xuri/excelize/v2"
)

// PlotKindMap maps OOXML plot elements to chart kinds. Plot types with no
// ChartKind are still reported through ChartSummary.PlotType.
var PlotKindMap = map[string]models.ChartKind{
	"pieChart":      models.KindPie,
	"pie3DChart":    models.KindPie,
	"ofPieChart":    models.KindPie,
	"doughnutChart": models.KindDoughnut,
	"barChart":      models.KindBar,
	"bar3DChart":    models.KindBar,
	"radarChart":    "",
	"lineChart":     "",
	"line3DChart":   "",
	"areaChart":     "",
	"area3DChart":   "",
	"scatterChart":  "",
	"bubbleChart":   "",
	"surfaceChart":  "",
	"stockChart":    "",
}

// cellPoint is an xdr:from or xdr:to marker. Offsets are in EMU.
type cellPoint struct {
	col, row       int
	colOff, rowOff int64
}

// chartAnchor holds what the drawing part says about one chart.
type chartAnchor struct {
	kind      string
	name      string
	chartPath string
	from, to  *cellPoint
	// extent from xdr:ext, in EMU; zero when absent.
	cx, cy int64
}

// cell returns the anchor cell name, or "" without a from marker.
func (ca chartAnchor) cell() string {
	if ca.from == nil {
		return ""
	}
	// Markers are zero-based.
	name, err := excelize.CoordinatesToCellName(ca.from.col+1, ca.from.row+1)
	if err != nil {
		return ""
	}
	return name
}

// size returns the chart size in pixels. Two-cell anchors are measured
// across the cells they span; other anchors use their extent.
func (ca chartAnchor) size(sheet string, m *sheetMetrics) (int, int) {
	if ca.kind == "twoCellAnchor" && ca.from != nil && ca.to != nil {
		w := EMUToPixels(ca.to.colOff) - EMUToPixels(ca.from.colOff)
		for c := ca.from.col; c < ca.to.col; c++ {
			w += m.colPixels(sheet, c+1)
		}
		h := EMUToPixels(ca.to.rowOff) - EMUToPixels(ca.from.rowOff)
		for r := ca.from.row; r < ca.to.row; r++ {
			h += m.rowPixels(sheet, r+1)
		}
		return max(w, 0), max(h, 0)
	}
	return EMUToPixels(ca.cx), EMUToPixels(ca.cy)
}

// ExtractCharts returns the charts found in an xlsx file, keyed by sheet.
// Parts that cannot be read are skipped.
func ExtractCharts(xlsxPath string) (map[string][]models.ChartSummary, error) {
	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ExtractChartsFromFile(f, xlsxPath)
}

// ExtractChartsFromFile is ExtractCharts for a workbook the caller already
// opened from xlsxPath. f supplies column widths and row heights.
func ExtractChartsFromFile(f *excelize.File, xlsxPath string) (map[string][]models.ChartSummary, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return extractCharts(&r.Reader, newSheetMetrics(f))
}

func extractCharts(r *zip.Reader, m *sheetMetrics) (map[string][]models.ChartSummary, error) {
	sheets, err := sheetPaths(r)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.ChartSummary)
	for sheetName, sheetPath := range sheets {
		sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
		if err != nil || sheetRelsXML == nil {
			continue
		}

		for _, rel := range parseRels(sheetRelsXML) {
			if !strings.Contains(rel.typ, "drawing") {
				continue
			}
			drawingPath := resolveRelativePath(rel.target, "xl/drawings")
			for _, ca := range chartAnchors(r, drawingPath) {
				chartXML, err := readZipFile(r, ca.chartPath)
				if err != nil || chartXML == nil {
					continue
				}
				summary := parseChartXML(chartXML)
				summary.Sheet = sheetName
				summary.Name = ca.name
				summary.Anchor = ca.cell()
				summary.W, summary.H = ca.size(sheetName, m)
				result[sheetName] = append(result[sheetName], summary)
			}
		}
	}

	return result, nil
}

// chartAnchors lists the charts placed by a drawing part.
func chartAnchors(r *zip.Reader, drawingPath string) []chartAnchor {
	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return nil
	}

	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return nil
	}
	chartPaths := make(map[string]string)
	for _, rel := range parseRels(relsXML) {
		if strings.Contains(rel.typ, "chart") {
			chartPaths[rel.id] = resolveRelativePath(rel.target, "xl/charts")
		}
	}

	var result []chartAnchor
	decoder := xml.NewDecoder(strings.NewReader(string(drawingXML)))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
			rID, ca := parseAnchor(decoder)
			if path, ok := chartPaths[rID]; ok {
				ca.kind = se.Name.Local
				ca.chartPath = path
				result = append(result, ca)
			}
		}
	}

	return result
}

// parseAnchor parses one drawing anchor and returns the chart
// relationship id it refers to, if any.
func parseAnchor(decoder *xml.Decoder) (rID string, ca chartAnchor) {
	walkElement(decoder, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "from":
			ca.from = parseCellPoint(decoder)
			return true
		case "to":
			ca.to = parseCellPoint(decoder)
			return true
		case "cNvPr":
			ca.name = attr(se, "name")
		case "ext":
			// xdr:ext of oneCellAnchor and absoluteAnchor comes before the
			// graphic frame's a:ext, which is usually zero.
			if cx, cy := parseExtent(se); cx > 0 && cy > 0 && ca.cx == 0 {
				ca.cx, ca.cy = cx, cy
			}
		case "chart":
			rID = attr(se, "id")
		}
		return false
	})
	return rID, ca
}

func parseExtent(se xml.StartElement) (int64, int64) {
	cx, err := strconv.ParseInt(attr(se, "cx"), 10, 64)
	if err != nil {
		return 0, 0
	}
	cy, err := strconv.ParseInt(attr(se, "cy"), 10, 64)
	if err != nil {
		return 0, 0
	}
	return cx, cy
}

// parseCellPoint reads an xdr:from or xdr:to marker.
func parseCellPoint(decoder *xml.Decoder) *cellPoint {
	var p cellPoint
	walkElement(decoder, func(se xml.StartElement) bool {
		txt, err := readElementText(decoder)
		if err != nil {
			return true
		}
		n, err := strconv.ParseInt(strings.TrimSpace(txt), 10, 64)
		if err != nil {
			return true
		}
		switch se.Name.Local {
		case "col":
			p.col = int(n)
		case "row":
			p.row = int(n)
		case "colOff":
			p.colOff = n
		case "rowOff":
			p.rowOff = n
		}
		return true
	})
	return &p
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte) models.ChartSummary {
	var summary models.ChartSummary
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &summary)
		}
	}

	if summary.PlotType == "" {
		summary.PlotType = "unknown"
	}
	return summary
}

// parseChartElement parses the c:chart element.
func parseChartElement(decoder *xml.Decoder, summary *models.ChartSummary) {
	walkElement(decoder, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "title":
			summary.Title, summary.TitleFontSize = parseTitle(decoder)
		case "plotArea":
			summary.PlotType, summary.Series = parsePlotArea(decoder)
			summary.Kind = PlotKindMap[summary.PlotType]
		case "legend":
			summary.LegendFontSize = firstSz(decoder, "defRPr")
		default:
			return false
		}
		return true
	})
}

// parseTitle returns the title text and the first run font size.
func parseTitle(decoder *xml.Decoder) (string, float64) {
	var sb strings.Builder
	var size float64
	walkElement(decoder, func(se xml.StartElement) bool {
		switch se.Name.Local {
		case "rPr":
			if size == 0 {
				size = parseSz(se)
			}
		case "t":
			if txt, err := readElementText(decoder); err == nil {
				sb.WriteString(txt)
			}
			return true
		}
		return false
	})
	return strings.TrimSpace(sb.String()), size
}

// firstSz returns the size of the first element named local.
func firstSz(decoder *xml.Decoder, local string) float64 {
	var size float64
	walkElement(decoder, func(se xml.StartElement) bool {
		if se.Name.Local == local && size == 0 {
			size = parseSz(se)
		}
		return false
	})
	return size
}

func parseSz(se xml.StartElement) float64 {
	v, err := strconv.ParseFloat(attr(se, "sz"), 64)
	if err != nil {
		return 0
	}
	return fontSizeFromSz(v)
}

// parsePlotArea returns the first plot type and its series.
func parsePlotArea(decoder *xml.Decoder) (plotType string, series []models.SeriesRef) {
	walkElement(decoder, func(se xml.StartElement) bool {
		if _, ok := PlotKindMap[se.Name.Local]; !ok || plotType != "" {
			return false
		}
		plotType = se.Name.Local
		walkElement(decoder, func(se xml.StartElement) bool {
			if se.Name.Local != "ser" {
				return false
			}
			series = append(series, parseSeries(decoder))
			return true
		})
		return true
	})
	return plotType, series
}

// parseSeries reads the name and the category and value ranges of c:ser.
// Cached values are ignored except for a literal series name.
func parseSeries(decoder *xml.Decoder) models.SeriesRef {
	var s models.SeriesRef
	walkElement(decoder, func(se xml.StartElement) bool {
		var ref *string
		switch se.Name.Local {
		case "tx":
			s.Name = firstText(decoder, "v", &s.NameRange)
			return true
		case "cat":
			ref = &s.CategoryRange
		case "val":
			ref = &s.ValueRange
		default:
			return false
		}
		firstText(decoder, "", ref)
		return true
	})
	return s
}

// firstText consumes the current element. It stores the first c:f formula
// in *formula and returns the first text of an element named local.
func firstText(decoder *xml.Decoder, local string, formula *string) string {
	var text string
	walkElement(decoder, func(se xml.StartElement) bool {
		switch {
		case se.Name.Local == "f":
			if txt, err := readElementText(decoder); err == nil && *formula == "" {
				*formula = strings.TrimSpace(txt)
			}
		case local != "" && se.Name.Local == local:
			if txt, err := readElementText(decoder); err == nil && text == "" {
				text = strings.TrimSpace(txt)
			}
		default:
			return false
		}
		return true
	})
	return text
}

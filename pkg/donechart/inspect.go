package donechart

import (
	"sort"

	"github.com/ukaji3/donechart-go/internal/log"
	"github.com/ukaji3/donechart-go/pkg/donechart/models"
	"github.com/ukaji3/donechart-go/pkg/donechart/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads the charts of a rendered workbook together with the data
// block of each chart's sheet. A data block that cannot be read is logged
// and leaves Rows empty; the chart metadata is still returned.
func Inspect(path string) (map[string][]models.ChartSummary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	charts, err := parser.ExtractChartsFromFile(f, path)
	if err != nil {
		return nil, err
	}

	logger := log.WithComponent("inspect")
	for sheetName, summaries := range charts {
		rows, err := parser.ExtractDataBlock(f, sheetName)
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Str("sheet", sheetName).Msg("data block unreadable")
			rows = nil
		}
		for i := range summaries {
			summaries[i].Rows = rows
		}
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].Name < summaries[j].Name
		})
		charts[sheetName] = summaries
	}

	return charts, nil
}

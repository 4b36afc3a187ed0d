// Package output serializes chart configurations and workbook summaries.
package output

import (
	"encoding/json"
	"path/filepath"

	"github.com/ukaji3/donechart-go/pkg/donechart/models"
)

// ToJSON marshals v, indenting with two spaces when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ConfigToJSON marshals a chart configuration.
func ConfigToJSON(cfg models.ChartConfig, pretty bool) ([]byte, error) {
	return ToJSON(cfg, pretty)
}

// InspectReport is the JSON form of an inspected workbook.
type InspectReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Charts maps sheet name to the charts found on it.
	Charts map[string][]models.ChartSummary `json:"charts"`
}

// SummariesToJSON marshals the charts found in the workbook at path.
func SummariesToJSON(path string, charts map[string][]models.ChartSummary, pretty bool) ([]byte, error) {
	if charts == nil {
		charts = map[string][]models.ChartSummary{}
	}
	return ToJSON(InspectReport{
		BookName: filepath.Base(path),
		Charts:   charts,
	}, pretty)
}

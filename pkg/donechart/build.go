package donechart

import (
	"strconv"
	"strings"

	"github.com/ukaji3/donechart-go/pkg/donechart/models"
)

// segmentCount is the number of segments in a done/not-done chart.
const segmentCount = 2

// Build assembles the chart configuration for a done/not-done split.
// Counts must be non-negative; options are resolved against the defaults
// and validated before anything is assembled.
func Build(done, notDone int, opts Options) (models.ChartConfig, error) {
	if done < 0 {
		return models.ChartConfig{}, NewInputError("done", strconv.Itoa(done), "must not be negative")
	}
	if notDone < 0 {
		return models.ChartConfig{}, NewInputError("not_done", strconv.Itoa(notDone), "must not be negative")
	}

	resolved := opts.Resolve()
	if err := resolved.Validate(); err != nil {
		return models.ChartConfig{}, err
	}

	return models.NewChartConfig(
		resolved.Labels,
		[]int{done, notDone},
		resolved.Colors,
		resolved.Kind,
		resolved.TitleText,
		resolved.TitleFontSize,
		resolved.LegendFontSize,
	)
}

// ParseCount converts caller supplied text (a template value, a flag) to
// a count. Surrounding whitespace is ignored.
func ParseCount(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewInputError(field, raw, "not a whole number")
	}
	if n < 0 {
		return 0, NewInputError(field, raw, "must not be negative")
	}
	return n, nil
}

// BuildFromStrings parses both counts and builds the chart configuration.
func BuildFromStrings(done, notDone string, opts Options) (models.ChartConfig, error) {
	d, err := ParseCount("done", done)
	if err != nil {
		return models.ChartConfig{}, err
	}
	n, err := ParseCount("not_done", notDone)
	if err != nil {
		return models.ChartConfig{}, err
	}
	return Build(d, n, opts)
}

// Package models defines the chart data structures shared by the builder,
// the renderers and the workbook parser.
package models

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// ChartKind is the kind of chart to draw.
type ChartKind string

const (
	// KindPie draws a pie chart.
	KindPie ChartKind = "pie"
	// KindDoughnut draws a pie chart with a hole in the middle.
	KindDoughnut ChartKind = "doughnut"
	// KindBar draws vertical bars, one per label.
	KindBar ChartKind = "bar"
	// KindPolarArea draws a polar area chart.
	KindPolarArea ChartKind = "polarArea"
)

// ChartKinds lists every supported kind in display order.
var ChartKinds = []ChartKind{KindPie, KindDoughnut, KindBar, KindPolarArea}

// Valid reports whether k is a supported kind.
func (k ChartKind) Valid() bool {
	return slices.Contains(ChartKinds, k)
}

func (k ChartKind) String() string {
	return string(k)
}

// ParseChartKind parses a kind name case-insensitively.
func ParseChartKind(s string) (ChartKind, error) {
	for _, k := range ChartKinds {
		if strings.EqualFold(string(k), strings.TrimSpace(s)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown chart kind %q", s)
}

// ChartConfig describes what to draw, independent of how it is drawn.
// It is immutable: accessors return copies, so a config handed to a
// renderer cannot be changed behind the caller's back.
type ChartConfig struct {
	labels         []string
	values         []int
	colors         []string
	kind           ChartKind
	titleText      string
	titleFontSize  int
	legendFontSize int
}

// NewChartConfig assembles a ChartConfig. It copies every slice and
// rejects mismatched lengths, negative values and unknown kinds. Labels,
// colors and font sizes are checked by donechart.Build, which is the
// entry point callers should prefer.
func NewChartConfig(labels []string, values []int, colors []string, kind ChartKind,
	titleText string, titleFontSize, legendFontSize int) (ChartConfig, error) {
	if len(labels) != len(values) || len(labels) != len(colors) {
		return ChartConfig{}, fmt.Errorf("mismatched chart shape: %d labels, %d values, %d colors",
			len(labels), len(values), len(colors))
	}
	for i, v := range values {
		if v < 0 {
			return ChartConfig{}, fmt.Errorf("value %d of %q is negative: %d", i, labels[i], v)
		}
	}
	if !kind.Valid() {
		return ChartConfig{}, fmt.Errorf("unknown chart kind %q", kind)
	}
	return ChartConfig{
		labels:         slices.Clone(labels),
		values:         slices.Clone(values),
		colors:         slices.Clone(colors),
		kind:           kind,
		titleText:      titleText,
		titleFontSize:  titleFontSize,
		legendFontSize: legendFontSize,
	}, nil
}

// Labels returns the segment labels.
func (c ChartConfig) Labels() []string { return slices.Clone(c.labels) }

// Values returns the segment values, in label order.
func (c ChartConfig) Values() []int { return slices.Clone(c.values) }

// Colors returns the segment colors, in label order.
func (c ChartConfig) Colors() []string { return slices.Clone(c.colors) }

// Kind returns the chart kind.
func (c ChartConfig) Kind() ChartKind { return c.kind }

// TitleText returns the title; empty means no title is displayed.
func (c ChartConfig) TitleText() string { return c.titleText }

// TitleFontSize returns the title font size in points.
func (c ChartConfig) TitleFontSize() int { return c.titleFontSize }

// LegendFontSize returns the legend font size in points.
func (c ChartConfig) LegendFontSize() int { return c.legendFontSize }

// Len returns the number of segments.
func (c ChartConfig) Len() int { return len(c.labels) }

// Total returns the sum of all values.
func (c ChartConfig) Total() int {
	total := 0
	for _, v := range c.values {
		total += v
	}
	return total
}

// Shares returns each value as a percentage of Total. All shares are zero
// when the total is zero.
func (c ChartConfig) Shares() []float64 {
	shares := make([]float64, len(c.values))
	total := c.Total()
	if total == 0 {
		return shares
	}
	for i, v := range c.values {
		shares[i] = float64(v) * 100 / float64(total)
	}
	return shares
}

// Equal reports whether two configs describe the same chart.
func (c ChartConfig) Equal(other ChartConfig) bool {
	return c.kind == other.kind &&
		c.titleText == other.titleText &&
		c.titleFontSize == other.titleFontSize &&
		c.legendFontSize == other.legendFontSize &&
		slices.Equal(c.labels, other.labels) &&
		slices.Equal(c.values, other.values) &&
		slices.Equal(c.colors, other.colors)
}

// chartConfigJSON is the wire form of ChartConfig.
type chartConfigJSON struct {
	Labels         []string  `json:"labels"`
	Values         []int     `json:"values"`
	Colors         []string  `json:"colors"`
	Kind           ChartKind `json:"kind"`
	TitleText      string    `json:"title_text,omitempty"`
	TitleFontSize  int       `json:"title_font_size"`
	LegendFontSize int       `json:"legend_font_size"`
}

// MarshalJSON implements json.Marshaler.
func (c ChartConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(chartConfigJSON{
		Labels:         c.labels,
		Values:         c.values,
		Colors:         c.colors,
		Kind:           c.kind,
		TitleText:      c.titleText,
		TitleFontSize:  c.titleFontSize,
		LegendFontSize: c.legendFontSize,
	})
}

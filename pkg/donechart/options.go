// Package donechart builds "done vs. not done" chart configurations and
// hands them to renderers.
package donechart

import (
	"slices"
	"strings"

	"github.com/ukaji3/donechart-go/pkg/donechart/models"
)

const (
	// DefaultKind is the chart kind used when Options.Kind is empty.
	DefaultKind = models.KindPie
	// DefaultTitleText is the title used when Options.TitleText is empty.
	DefaultTitleText = "Tasks Done (%)"
	// DefaultTitleFontSize is the title font size in points.
	DefaultTitleFontSize = 20
	// DefaultLegendFontSize is the legend font size in points.
	DefaultLegendFontSize = 18
)

// DefaultLabels returns the segment labels, done first.
func DefaultLabels() []string {
	return []string{"Done", "Not Done"}
}

// DefaultColors returns the segment colors, done first.
func DefaultColors() []string {
	return []string{"green", "red"}
}

// Options configures the cosmetic side of a chart. Zero fields take the
// package defaults.
type Options struct {
	// Kind is the chart kind (pie, doughnut, bar, polarArea).
	Kind models.ChartKind
	// Labels overrides the two segment labels, done first.
	Labels []string
	// Colors overrides the two segment colors, done first.
	Colors []string
	// TitleText is the chart title.
	TitleText string
	// HideTitle suppresses the title entirely.
	HideTitle bool
	// TitleFontSize is the title font size in points.
	TitleFontSize int
	// LegendFontSize is the legend font size in points.
	LegendFontSize int
}

// DefaultOptions returns the options of the task page chart.
func DefaultOptions() Options {
	return Options{
		Kind:           DefaultKind,
		Labels:         DefaultLabels(),
		Colors:         DefaultColors(),
		TitleText:      DefaultTitleText,
		TitleFontSize:  DefaultTitleFontSize,
		LegendFontSize: DefaultLegendFontSize,
	}
}

// Resolve returns a copy of o with every zero field replaced by its default.
func (o Options) Resolve() Options {
	r := o
	if r.Kind == "" {
		r.Kind = DefaultKind
	}
	if r.Labels == nil {
		r.Labels = DefaultLabels()
	} else {
		r.Labels = slices.Clone(r.Labels)
	}
	if r.Colors == nil {
		r.Colors = DefaultColors()
	} else {
		r.Colors = slices.Clone(r.Colors)
	}
	if r.HideTitle {
		r.TitleText = ""
	} else if r.TitleText == "" {
		r.TitleText = DefaultTitleText
	}
	if r.TitleFontSize == 0 {
		r.TitleFontSize = DefaultTitleFontSize
	}
	if r.LegendFontSize == 0 {
		r.LegendFontSize = DefaultLegendFontSize
	}
	return r
}

// Validate checks resolved options and reports every problem at once.
// The error wraps ErrInvalidOptions.
func (o Options) Validate() error {
	verr := &OptionsError{}

	if !o.Kind.Valid() {
		verr.add("kind", o.Kind, "unknown chart kind %q", o.Kind)
	}
	if len(o.Labels) != segmentCount {
		verr.add("labels", o.Labels, "need exactly %d labels, got %d", segmentCount, len(o.Labels))
	}
	for i, l := range o.Labels {
		if strings.TrimSpace(l) == "" {
			verr.add("labels", o.Labels, "label %d is empty", i)
		}
	}
	if len(o.Colors) != segmentCount {
		verr.add("colors", o.Colors, "need exactly %d colors, got %d", segmentCount, len(o.Colors))
	}
	for _, c := range o.Colors {
		if _, err := ResolveColor(c); err != nil {
			verr.add("colors", c, "unusable color %q", c)
		}
	}
	if o.TitleFontSize <= 0 {
		verr.add("title.font_size", o.TitleFontSize, "must be positive")
	}
	if o.LegendFontSize <= 0 {
		verr.add("legend.font_size", o.LegendFontSize, "must be positive")
	}

	return verr.err()
}

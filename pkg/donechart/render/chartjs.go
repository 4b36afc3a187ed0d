package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/ukaji3/donechart-go/internal/log"
	"github.com/ukaji3/donechart-go/pkg/donechart/models"
)

// ChartJSDocument is one rendered surface: the target canvas id and the
// object passed to `new Chart(ctx, config)`.
type ChartJSDocument struct {
	Target string        `json:"target"`
	Config ChartJSConfig `json:"config"`
}

// ChartJSConfig mirrors the Chart.js configuration object.
type ChartJSConfig struct {
	Type    string         `json:"type"`
	Data    ChartJSData    `json:"data"`
	Options ChartJSOptions `json:"options"`
}

// ChartJSData is the data section of a Chart.js configuration.
type ChartJSData struct {
	Labels   []string         `json:"labels"`
	Datasets []ChartJSDataset `json:"datasets"`
}

// ChartJSDataset is a single dataset.
type ChartJSDataset struct {
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// ChartJSOptions holds the plugin options the chart uses.
type ChartJSOptions struct {
	Plugins ChartJSPlugins `json:"plugins"`
}

// ChartJSPlugins configures the title and legend plugins.
type ChartJSPlugins struct {
	Title  ChartJSTitle  `json:"title"`
	Legend ChartJSLegend `json:"legend"`
}

// ChartJSTitle configures the title plugin.
type ChartJSTitle struct {
	Display bool        `json:"display"`
	Text    string      `json:"text,omitempty"`
	Font    ChartJSFont `json:"font"`
}

// ChartJSLegend configures the legend plugin.
type ChartJSLegend struct {
	Labels struct {
		Font ChartJSFont `json:"font"`
	} `json:"labels"`
}

// ChartJSFont is a Chart.js font.
type ChartJSFont struct {
	Size int `json:"size"`
}

// ChartJS writes one Chart.js document per Render call to an io.Writer,
// each followed by a newline.
type ChartJS struct {
	w      io.Writer
	indent string
	logger zerolog.Logger
}

// NewChartJS creates a Chart.js renderer. A non-empty indent pretty-prints
// each document.
func NewChartJS(w io.Writer, indent string) *ChartJS {
	return &ChartJS{
		w:      w,
		indent: indent,
		logger: log.WithComponent("render.chartjs"),
	}
}

// ChartJSDocumentFor converts a config to its Chart.js document.
func ChartJSDocumentFor(surfaceID string, cfg models.ChartConfig) ChartJSDocument {
	doc := ChartJSDocument{
		Target: surfaceID,
		Config: ChartJSConfig{
			Type: string(cfg.Kind()),
			Data: ChartJSData{
				Labels: cfg.Labels(),
				Datasets: []ChartJSDataset{{
					Data:            cfg.Values(),
					BackgroundColor: cfg.Colors(),
				}},
			},
		},
	}
	doc.Config.Options.Plugins.Title = ChartJSTitle{
		Display: cfg.TitleText() != "",
		Text:    cfg.TitleText(),
		Font:    ChartJSFont{Size: cfg.TitleFontSize()},
	}
	doc.Config.Options.Plugins.Legend.Labels.Font = ChartJSFont{Size: cfg.LegendFontSize()}
	return doc
}

// Render implements Renderer.
func (r *ChartJS) Render(surfaceID string, cfg models.ChartConfig) error {
	if err := checkSurface(surfaceID, "chartjs"); err != nil {
		return err
	}
	if !cfg.Kind().Valid() {
		return NewRenderError(surfaceID, "chartjs", fmt.Errorf("%w: %q", ErrUnsupportedKind, cfg.Kind()))
	}

	enc := json.NewEncoder(r.w)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(ChartJSDocumentFor(surfaceID, cfg)); err != nil {
		return NewRenderError(surfaceID, "chartjs", err)
	}

	r.logger.Debug().
		Str("surface", surfaceID).
		Str("kind", string(cfg.Kind())).
		Int("total", cfg.Total()).
		Msg("chart rendered")
	return nil
}

package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/donechart-go/pkg/donechart"
	"github.com/ukaji3/donechart-go/pkg/donechart/models"
)

func buildConfig(t *testing.T, done, notDone int, opts donechart.Options) models.ChartConfig {
	t.Helper()
	cfg, err := donechart.Build(done, notDone, opts)
	require.NoError(t, err)
	return cfg
}

func TestChartJS_Render(t *testing.T) {
	var buf bytes.Buffer
	r := NewChartJS(&buf, "")

	cfg := buildConfig(t, 5, 10, donechart.Options{})
	require.NoError(t, r.Render("done_percentage", cfg))

	assert.JSONEq(t, `{
		"target": "done_percentage",
		"config": {
			"type": "pie",
			"data": {
				"labels": ["Done", "Not Done"],
				"datasets": [{"data": [5, 10], "backgroundColor": ["green", "red"]}]
			},
			"options": {
				"plugins": {
					"title": {"display": true, "text": "Tasks Done (%)", "font": {"size": 20}},
					"legend": {"labels": {"font": {"size": 18}}}
				}
			}
		}
	}`, buf.String())
}

func TestChartJS_HiddenTitle(t *testing.T) {
	cfg := buildConfig(t, 1, 1, donechart.Options{HideTitle: true})
	doc := ChartJSDocumentFor("c", cfg)

	assert.False(t, doc.Config.Options.Plugins.Title.Display)
	assert.Empty(t, doc.Config.Options.Plugins.Title.Text)
}

func TestChartJS_OneDocumentPerCall(t *testing.T) {
	var buf bytes.Buffer
	r := NewChartJS(&buf, "  ")

	require.NoError(t, r.Render("first", buildConfig(t, 1, 2, donechart.Options{})))
	require.NoError(t, r.Render("second", buildConfig(t, 3, 4, donechart.Options{Kind: models.KindBar})))

	dec := json.NewDecoder(strings.NewReader(buf.String()))
	var targets []string
	for dec.More() {
		var doc ChartJSDocument
		require.NoError(t, dec.Decode(&doc))
		targets = append(targets, doc.Target)
	}
	assert.Equal(t, []string{"first", "second"}, targets)
}

func TestChartJS_Errors(t *testing.T) {
	var buf bytes.Buffer
	r := NewChartJS(&buf, "")

	err := r.Render("", buildConfig(t, 1, 1, donechart.Options{}))
	assert.True(t, errors.Is(err, ErrMissingSurface))

	// The zero config has no kind.
	err = r.Render("s", models.ChartConfig{})
	assert.True(t, errors.Is(err, ErrUnsupportedKind))

	var renderErr *RenderError
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "chartjs", renderErr.Backend)
	assert.Zero(t, buf.Len())
}

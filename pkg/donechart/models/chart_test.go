package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustConfig(t *testing.T, values []int) ChartConfig {
	t.Helper()
	cfg, err := NewChartConfig([]string{"Done", "Not Done"}, values, []string{"green", "red"},
		KindPie, "Tasks", 20, 18)
	require.NoError(t, err)
	return cfg
}

func TestNewChartConfig_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		values []int
		colors []string
	}{
		{"short values", []string{"a", "b"}, []int{1}, []string{"x", "y"}},
		{"short colors", []string{"a", "b"}, []int{1, 2}, []string{"x"}},
		{"long labels", []string{"a", "b", "c"}, []int{1, 2}, []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChartConfig(tt.labels, tt.values, tt.colors, KindPie, "", 1, 1)
			assert.Error(t, err)
		})
	}
}

func TestNewChartConfig_RejectsInvalid(t *testing.T) {
	labels, colors := []string{"Done", "Not Done"}, []string{"green", "red"}

	_, err := NewChartConfig(labels, []int{3, -1}, colors, KindPie, "", 20, 18)
	assert.ErrorContains(t, err, "negative")

	_, err = NewChartConfig(labels, []int{3, 1}, colors, "radar", "", 20, 18)
	assert.ErrorContains(t, err, "unknown chart kind")

	_, err = NewChartConfig(labels, []int{0, 0}, colors, KindBar, "", 20, 18)
	assert.NoError(t, err)
}

func TestChartConfig_Immutable(t *testing.T) {
	labels := []string{"Done", "Not Done"}
	values := []int{3, 4}
	cfg, err := NewChartConfig(labels, values, []string{"green", "red"}, KindPie, "", 20, 18)
	require.NoError(t, err)

	labels[0] = "changed"
	values[0] = 99
	got := cfg.Values()
	got[1] = 42

	assert.Equal(t, []string{"Done", "Not Done"}, cfg.Labels())
	assert.Equal(t, []int{3, 4}, cfg.Values())
}

func TestChartConfig_Shares(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []float64
	}{
		{"quarter", []int{1, 3}, []float64{25, 75}},
		{"all done", []int{7, 0}, []float64{100, 0}},
		{"empty", []int{0, 0}, []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := mustConfig(t, tt.values)
			assert.InDeltaSlice(t, tt.want, cfg.Shares(), 1e-9)
		})
	}
}

func TestChartConfig_Equal(t *testing.T) {
	a := mustConfig(t, []int{5, 10})
	b := mustConfig(t, []int{5, 10})
	c := mustConfig(t, []int{10, 5})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, 15, a.Total())
	assert.Equal(t, 2, a.Len())
}

func TestChartConfig_MarshalJSON(t *testing.T) {
	cfg := mustConfig(t, []int{5, 10})

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"labels": ["Done", "Not Done"],
		"values": [5, 10],
		"colors": ["green", "red"],
		"kind": "pie",
		"title_text": "Tasks",
		"title_font_size": 20,
		"legend_font_size": 18
	}`, string(data))
}

func TestParseChartKind(t *testing.T) {
	tests := []struct {
		input   string
		want    ChartKind
		wantErr bool
	}{
		{"pie", KindPie, false},
		{"Doughnut", KindDoughnut, false},
		{" bar ", KindBar, false},
		{"polararea", KindPolarArea, false},
		{"radar", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseChartKind(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "ParseChartKind(%q)", tt.input)
			continue
		}
		require.NoError(t, err, "ParseChartKind(%q)", tt.input)
		assert.Equal(t, tt.want, got)
		assert.True(t, got.Valid())
	}
}

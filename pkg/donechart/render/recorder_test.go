package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/donechart-go/pkg/donechart"
	"github.com/ukaji3/donechart-go/pkg/donechart/models"
)

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	_, ok := rec.Last()
	assert.False(t, ok)

	cfg := buildConfig(t, 4, 6, donechart.Options{})
	var r Renderer = rec
	require.NoError(t, r.Render("tasks", cfg))

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "tasks", last.SurfaceID)
	if diff := cmp.Diff(cfg, last.Config); diff != "" {
		t.Errorf("recorded config mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorder_Err(t *testing.T) {
	boom := errors.New("canvas gone")
	rec := &Recorder{Err: boom}

	err := rec.Render("tasks", buildConfig(t, 1, 1, donechart.Options{}))
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, rec.Calls)

	assert.ErrorIs(t, (&Recorder{}).Render("", buildConfig(t, 1, 1, donechart.Options{})), ErrMissingSurface)
}

func TestRecorder_Next(t *testing.T) {
	wb := NewWorkbook(WorkbookOptions{})
	defer wb.Close()
	rec := &Recorder{Next: wb}

	require.NoError(t, rec.Render("tasks", buildConfig(t, 2, 2, donechart.Options{})))
	assert.Equal(t, []string{"tasks"}, wb.Surfaces())

	polar := buildConfig(t, 1, 1, donechart.Options{Kind: models.KindPolarArea})
	assert.ErrorIs(t, rec.Render("polar", polar), ErrUnsupportedKind)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, "tasks", rec.Calls[0].SurfaceID)
}

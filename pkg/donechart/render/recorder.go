package render

import "github.com/ukaji3/donechart-go/pkg/donechart/models"

// Call is one recorded Render call.
type Call struct {
	SurfaceID string
	Config    models.ChartConfig
}

// Recorder keeps every successful Render call in memory. The CLI uses it
// for dry runs in front of an unsaved backend; tests use it in place of a
// drawing backend.
type Recorder struct {
	Calls []Call
	// Err, when set, is returned (wrapped) from every Render call.
	Err error
	// Next, when set, renders each call first. Calls it rejects are not
	// recorded.
	Next Renderer
}

// Render implements Renderer.
func (r *Recorder) Render(surfaceID string, cfg models.ChartConfig) error {
	if err := checkSurface(surfaceID, "recorder"); err != nil {
		return err
	}
	if r.Err != nil {
		return NewRenderError(surfaceID, "recorder", r.Err)
	}
	if r.Next != nil {
		if err := r.Next.Render(surfaceID, cfg); err != nil {
			return err
		}
	}
	r.Calls = append(r.Calls, Call{SurfaceID: surfaceID, Config: cfg})
	return nil
}

// Last returns the most recent call.
func (r *Recorder) Last() (Call, bool) {
	if len(r.Calls) == 0 {
		return Call{}, false
	}
	return r.Calls[len(r.Calls)-1], true
}

var (
	_ Renderer = (*Recorder)(nil)
	_ Renderer = (*ChartJS)(nil)
	_ Renderer = (*Workbook)(nil)
)

// Package render turns chart configurations into something a user can
// look at.
package render

import (
	"errors"
	"fmt"

	"github.com/ukaji3/donechart-go/pkg/donechart/models"
)

// Renderer draws a chart configuration onto a named surface.
type Renderer interface {
	Render(surfaceID string, cfg models.ChartConfig) error
}

// ErrMissingSurface indicates an empty surface id.
var ErrMissingSurface = errors.New("missing render surface")

// ErrUnsupportedKind indicates a chart kind the backend cannot draw.
var ErrUnsupportedKind = errors.New("unsupported chart kind")

// ErrSurfaceExists indicates a surface that was already rendered to.
var ErrSurfaceExists = errors.New("surface already rendered")

// RenderError represents a failed Render call.
type RenderError struct {
	Surface string
	Backend string // "chartjs", "workbook", "recorder"
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error on surface %q (%s): %v", e.Surface, e.Backend, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(surface, backend string, err error) *RenderError {
	return &RenderError{
		Surface: surface,
		Backend: backend,
		Err:     err,
	}
}

// checkSurface rejects an empty surface id.
func checkSurface(surfaceID, backend string) error {
	if surfaceID == "" {
		return NewRenderError(surfaceID, backend, ErrMissingSurface)
	}
	return nil
}

package donechart

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput indicates a count that is negative or not a number.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidOptions indicates display options that cannot produce a chart.
var ErrInvalidOptions = errors.New("invalid options")

// InputError represents a rejected count.
type InputError struct {
	Field string // "done", "not_done"
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s count %q: %v", e.Field, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError wrapping ErrInvalidInput.
func NewInputError(field, value, reason string) *InputError {
	return &InputError{
		Field: field,
		Value: value,
		Err:   fmt.Errorf("%w: %s", ErrInvalidInput, reason),
	}
}

// FieldError is a single rejected option.
type FieldError struct {
	Field   string
	Value   any
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// OptionsError bundles every problem found in an Options value.
type OptionsError struct {
	Fields []FieldError
}

func (e *OptionsError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("%v: %s", ErrInvalidOptions, strings.Join(msgs, "; "))
}

func (e *OptionsError) Unwrap() error {
	return ErrInvalidOptions
}

// add records a problem with one field.
func (e *OptionsError) add(field string, value any, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// err returns nil when nothing was recorded.
func (e *OptionsError) err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

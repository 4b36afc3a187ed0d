package donechart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/donechart-go/pkg/donechart/models"
	"gopkg.in/yaml.v3"
)

// FileOptions is the YAML layout of an options file.
type FileOptions struct {
	Kind   string   `yaml:"kind,omitempty"`
	Labels []string `yaml:"labels,omitempty"`
	Colors []string `yaml:"colors,omitempty"`
	Title  struct {
		Text     string `yaml:"text,omitempty"`
		FontSize int    `yaml:"font_size,omitempty"`
		Hidden   bool   `yaml:"hidden,omitempty"`
	} `yaml:"title,omitempty"`
	Legend struct {
		FontSize int `yaml:"font_size,omitempty"`
	} `yaml:"legend,omitempty"`
}

// Options converts the file layout to Options. Missing keys stay zero so
// that Resolve can apply the defaults.
func (f FileOptions) Options() (Options, error) {
	opts := Options{
		Labels:         f.Labels,
		Colors:         f.Colors,
		TitleText:      f.Title.Text,
		HideTitle:      f.Title.Hidden,
		TitleFontSize:  f.Title.FontSize,
		LegendFontSize: f.Legend.FontSize,
	}
	if f.Kind != "" {
		kind, err := models.ParseChartKind(f.Kind)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
		opts.Kind = kind
	}
	return opts, nil
}

// LoadOptions reads an options file. Unknown keys and trailing documents
// are rejected. An empty file yields zero Options.
func LoadOptions(path string) (Options, error) {
	// #nosec G304 -- the options path comes from the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes an options document.
func ParseOptions(data []byte) (Options, error) {
	var fileOpts FileOptions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&fileOpts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}
		return Options{}, fmt.Errorf("%w: parse options: %v", ErrInvalidOptions, err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: options file contains multiple documents or trailing content", ErrInvalidOptions)
	}

	return fileOpts.Options()
}

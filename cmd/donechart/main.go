// Package main provides the CLI entry point for donechart.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/donechart-go/internal/log"
	"github.com/ukaji3/donechart-go/pkg/donechart"
	"github.com/ukaji3/donechart-go/pkg/donechart/models"
	"github.com/ukaji3/donechart-go/pkg/donechart/output"
	"github.com/ukaji3/donechart-go/pkg/donechart/render"
)

// defaultSurface is the canvas id used by the task page.
const defaultSurface = "done_percentage"

const (
	formatChartJS = "chartjs"
	formatXLSX    = "xlsx"
)

// chartFlags holds the inputs shared by build and render.
type chartFlags struct {
	done           string
	notDone        string
	configPath     string
	kind           string
	title          string
	hideTitle      bool
	titleFontSize  int
	legendFontSize int
	colors         []string
	labels         []string
	pretty         bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "donechart",
		Short: "Build done/not-done chart configurations",
		Long: `donechart builds a chart configuration from a done count and a
not-done count, and renders it as a Chart.js document or an xlsx chart.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(log.Config{Level: logLevel})
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default: $LOG_LEVEL or info)")

	rootCmd.AddCommand(newBuildCmd(), newRenderCmd(), newInspectCmd())
	return rootCmd
}

func addChartFlags(cmd *cobra.Command, cf *chartFlags) {
	fs := cmd.Flags()
	fs.StringVar(&cf.done, "done", "", "Number of done tasks")
	fs.StringVar(&cf.notDone, "not-done", "", "Number of tasks not done")
	fs.StringVar(&cf.configPath, "config", "", "YAML options file")
	fs.StringVar(&cf.kind, "kind", "", "Chart kind: pie, doughnut, bar, polarArea")
	fs.StringVar(&cf.title, "title", "", "Chart title")
	fs.BoolVar(&cf.hideTitle, "no-title", false, "Do not display a title")
	fs.IntVar(&cf.titleFontSize, "title-size", 0, "Title font size in points")
	fs.IntVar(&cf.legendFontSize, "legend-size", 0, "Legend font size in points")
	fs.StringSliceVar(&cf.colors, "colors", nil, "Segment colors, done first (e.g. green,red)")
	fs.StringSliceVar(&cf.labels, "labels", nil, "Segment labels, done first")
	fs.BoolVar(&cf.pretty, "pretty", false, "Pretty-print JSON output")
	_ = cmd.MarkFlagRequired("done")
	_ = cmd.MarkFlagRequired("not-done")
}

// options layers explicitly set flags over the optional options file.
func (cf *chartFlags) options(cmd *cobra.Command) (donechart.Options, error) {
	var opts donechart.Options
	if cf.configPath != "" {
		loaded, err := donechart.LoadOptions(cf.configPath)
		if err != nil {
			return donechart.Options{}, err
		}
		opts = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("kind") {
		kind, err := models.ParseChartKind(cf.kind)
		if err != nil {
			return donechart.Options{}, fmt.Errorf("%w: %v", donechart.ErrInvalidOptions, err)
		}
		opts.Kind = kind
	}
	if fs.Changed("title") {
		opts.TitleText = cf.title
	}
	if fs.Changed("no-title") {
		opts.HideTitle = cf.hideTitle
	}
	if fs.Changed("title-size") {
		opts.TitleFontSize = cf.titleFontSize
		if cf.titleFontSize == 0 {
			return donechart.Options{}, fmt.Errorf("%w: title size must be positive", donechart.ErrInvalidOptions)
		}
	}
	if fs.Changed("legend-size") {
		opts.LegendFontSize = cf.legendFontSize
		if cf.legendFontSize == 0 {
			return donechart.Options{}, fmt.Errorf("%w: legend size must be positive", donechart.ErrInvalidOptions)
		}
	}
	if fs.Changed("colors") {
		opts.Colors = cf.colors
	}
	if fs.Changed("labels") {
		opts.Labels = cf.labels
	}
	return opts, nil
}

// config builds the chart configuration from the flags.
func (cf *chartFlags) config(cmd *cobra.Command) (models.ChartConfig, error) {
	opts, err := cf.options(cmd)
	if err != nil {
		return models.ChartConfig{}, err
	}
	return donechart.BuildFromStrings(cf.done, cf.notDone, opts)
}

func newBuildCmd() *cobra.Command {
	cf := &chartFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Print the chart configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.config(cmd)
			if err != nil {
				return err
			}
			jsonData, err := output.ConfigToJSON(cfg, cf.pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
	addChartFlags(cmd, cf)
	return cmd
}

func newRenderCmd() *cobra.Command {
	cf := &chartFlags{}
	var (
		format     string
		surface    string
		outputPath string
		dryRun     bool
		width      uint
		height     uint
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart as a Chart.js document or an xlsx chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.config(cmd)
			if err != nil {
				return err
			}

			outFormat := strings.ToLower(format)
			switch outFormat {
			case formatChartJS:
			case formatXLSX:
				if outputPath == "" {
					return fmt.Errorf("--output is required for xlsx")
				}
				if !render.WorkbookSupports(cfg.Kind()) {
					return render.NewRenderError(surface, "workbook",
						fmt.Errorf("%w: %q", render.ErrUnsupportedKind, cfg.Kind()))
				}
			default:
				return fmt.Errorf("invalid format: %s (must be chartjs or xlsx)", format)
			}
			wbOpts := render.WorkbookOptions{Width: width, Height: height}

			if dryRun {
				return dryRunRender(cfg, outFormat, surface, wbOpts)
			}
			if outFormat == formatChartJS {
				return renderChartJS(cmd, cfg, surface, outputPath, cf.pretty)
			}
			wb := render.NewWorkbook(wbOpts)
			defer wb.Close()
			if err := wb.Render(surface, cfg); err != nil {
				return err
			}
			return wb.SaveAs(outputPath)
		},
	}
	addChartFlags(cmd, cf)
	cmd.Flags().StringVar(&format, "format", "chartjs", "Output format: chartjs, xlsx")
	cmd.Flags().StringVar(&surface, "surface", defaultSurface, "Target surface (canvas id or sheet name)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout, required for xlsx)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Build and validate without writing anything")
	cmd.Flags().UintVar(&width, "width", 0, "xlsx chart width in pixels")
	cmd.Flags().UintVar(&height, "height", 0, "xlsx chart height in pixels")
	return cmd
}

// dryRunRender renders through the real backend in memory and writes
// nothing.
func dryRunRender(cfg models.ChartConfig, format, surface string, wbOpts render.WorkbookOptions) error {
	var backend render.Renderer
	if format == formatXLSX {
		wb := render.NewWorkbook(wbOpts)
		defer wb.Close()
		backend = wb
	} else {
		backend = render.NewChartJS(io.Discard, "")
	}

	rec := &render.Recorder{Next: backend}
	if err := rec.Render(surface, cfg); err != nil {
		return err
	}
	call, _ := rec.Last()
	logger := log.WithComponent("cli")
	logger.Info().
		Str("surface", call.SurfaceID).
		Str("format", format).
		Int("total", call.Config.Total()).
		Msg("dry run, nothing written")
	return nil
}

// renderChartJS encodes the document before touching outputPath, so a
// failed render leaves no file behind.
func renderChartJS(cmd *cobra.Command, cfg models.ChartConfig, surface, outputPath string, pretty bool) error {
	indent := ""
	if pretty {
		indent = "  "
	}

	var buf bytes.Buffer
	if err := render.NewChartJS(&buf, indent).Render(surface, cfg); err != nil {
		return err
	}

	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newInspectCmd() *cobra.Command {
	var pretty bool
	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "List the charts and data blocks of a rendered workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			if _, err := os.Stat(inputPath); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", inputPath)
			}

			charts, err := donechart.Inspect(inputPath)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			jsonData, err := output.SummariesToJSON(inputPath, charts, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

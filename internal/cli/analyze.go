package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/analysis"
	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/image"
)

type analyzeOptions struct {
	threshold    float64
	alphaCutoff  int
	dominant     int
	paletteSize  int
	separation   float64
	maxDimension int
	maxGradients int
	variations   bool
	format       string
	output       string
	preview      bool
}

// newAnalyzeCmd represents the analyze command.
func newAnalyzeCmd(a *app) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <image|directory>...",
		Short: "Extract dominant colours, palettes and gradients from images",
		Long: `Analyse one or more images and report their dominant colours.

Pixels below the alpha cutoff are ignored. Remaining colours are merged
greedily: each colour joins the first cluster whose representative is closer
than the threshold. The most frequent colours drive palette generation and a
well separated subset drives gradient generation.

Directories are scanned (non-recursively) for supported images and every
image is analysed concurrently.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF, AVIF

Examples:
  # Analyse an image
  swatch analyze wallpaper.jpg

  # Merge more aggressively and keep the top 8 colours
  swatch analyze --threshold 50 --dominant 8 wallpaper.png

  # Export CSS custom properties for the balanced palette and gradients
  swatch analyze --format css --output theme.css wallpaper.jpg

  # JSON report for every image in a directory, xz compressed
  swatch analyze --format json --output report.json.xz ~/Pictures/wallpapers`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, a, opts, args)
		},
	}

	defaults := a.cfg
	cmd.Flags().Float64Var(&opts.threshold, "threshold", defaults.Threshold, "RGB distance below which colours merge")
	cmd.Flags().IntVar(&opts.alphaCutoff, "alpha-cutoff", defaults.AlphaCutoff, "ignore pixels with alpha below this value (0-255)")
	cmd.Flags().IntVarP(&opts.dominant, "dominant", "d", defaults.Dominant, "number of dominant colours to report")
	cmd.Flags().IntVar(&opts.paletteSize, "palette-size", defaults.PaletteSize, "maximum size of the balanced palette")
	cmd.Flags().Float64Var(&opts.separation, "separation", defaults.Separation, "minimum RGB distance between balanced palette colours")
	cmd.Flags().IntVar(&opts.maxDimension, "max-dimension", defaults.MaxDimension, "downscale images larger than this before analysis (0 = off)")
	cmd.Flags().IntVar(&opts.maxGradients, "max-gradients", defaults.MaxGradients, "maximum number of gradients to generate")
	cmd.Flags().BoolVar(&opts.variations, "variations", defaults.Variations, "include directional gradient variations")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json, css, scss)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout; .xz/.gz suffix compresses)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")

	return cmd
}

// applyFlags overrides configuration with explicitly set flags.
func (o *analyzeOptions) applyFlags(cmd *cobra.Command, a *app) {
	f := cmd.Flags()
	if f.Changed("threshold") {
		a.cfg.Threshold = o.threshold
	}
	if f.Changed("alpha-cutoff") {
		a.cfg.AlphaCutoff = o.alphaCutoff
	}
	if f.Changed("dominant") {
		a.cfg.Dominant = o.dominant
	}
	if f.Changed("palette-size") {
		a.cfg.PaletteSize = o.paletteSize
	}
	if f.Changed("separation") {
		a.cfg.Separation = o.separation
	}
	if f.Changed("max-dimension") {
		a.cfg.MaxDimension = o.maxDimension
	}
	if f.Changed("max-gradients") {
		a.cfg.MaxGradients = o.maxGradients
	}
	if f.Changed("variations") {
		a.cfg.Variations = o.variations
	}
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, a *app, opts *analyzeOptions, args []string) error {
	opts.applyFlags(cmd, a)

	var format export.Format
	if opts.format != "text" {
		f, err := export.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		format = f
	}

	analyzer, err := analysis.New(a.cfg, analysis.WithLogger(a.logger))
	if err != nil {
		return err
	}

	paths, err := image.ExpandPaths(args)
	if err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}
	a.logger.Debug("analysing images", "count", len(paths), "threshold", a.cfg.Threshold)

	results := analyzer.AnalyzeAll(cmd.Context(), paths)

	var reports []*analysis.Report
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			a.logger.Error("analysis failed", "path", r.Path, "error", r.Err)
			continue
		}
		reports = append(reports, r.Report)
	}

	if len(reports) > 0 {
		data, err := renderReports(reports, format, previewEnabled(cmd, opts.preview && opts.output == ""))
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, a.logger, opts.output, data); err != nil {
			return err
		}
	}

	if failed > 0 {
		if len(paths) == 1 {
			return results[0].Err
		}
		return fmt.Errorf("%d of %d images failed to analyse", failed, len(paths))
	}
	return nil
}

// renderReports formats reports; format is empty for plain text.
func renderReports(reports []*analysis.Report, format export.Format, preview bool) ([]byte, error) {
	switch format {
	case "":
		var buf bytes.Buffer
		for i, r := range reports {
			if i > 0 {
				buf.WriteString("\n")
			}
			writeReport(&buf, r, preview)
		}
		return buf.Bytes(), nil
	case export.FormatJSON:
		if len(reports) == 1 {
			return export.Report(reports[0], format)
		}
		return export.JSON(reports)
	default:
		var buf bytes.Buffer
		for _, r := range reports {
			data, err := export.Report(r, format)
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		return buf.Bytes(), nil
	}
}

// writeReport writes a human-readable analysis report.
func writeReport(w io.Writer, r *analysis.Report, preview bool) {
	fmt.Fprintf(w, "Source: %s (%dx%d, %d of %d pixels analysed)\n",
		r.Source, r.Width, r.Height, r.ValidPixels, r.TotalPixels)

	if r.Empty() {
		fmt.Fprintln(w, "No opaque pixels found")
		return
	}

	fmt.Fprintf(w, "Average: %s  %s\n", r.Average.Hex(), r.Average.Name)
	fmt.Fprintf(w, "Clusters: %d\n", len(r.Colors))

	fmt.Fprintln(w, "\nDominant colours:")
	for _, c := range r.Dominant {
		swatchLine(w, c.Color, preview, fmt.Sprintf("%6.2f%%  ", c.Percentage))
	}

	fmt.Fprintln(w, "\nBalanced palette:")
	for _, c := range r.Balanced {
		swatchLine(w, c.Color, preview, fmt.Sprintf("%6.2f%%  ", c.Percentage))
	}

	fmt.Fprintln(w, "\nPalettes:")
	for _, p := range r.Palettes {
		fmt.Fprintf(w, "  %-20s %s\n", p.Name, strings.Join(p.Hex(), " "))
	}

	if len(r.Gradients) > 0 {
		fmt.Fprintln(w, "\nGradients:")
		t := NewTable([]string{"NAME", "CSS"})
		for _, g := range r.Gradients {
			t.AddRow([]string{g.Name(), g.CSS()})
		}
		fmt.Fprint(w, t.Render())
	}
}

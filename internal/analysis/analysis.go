// Package analysis runs the full extraction pipeline for an image: decode,
// cluster, pick dominant and balanced colours, then derive palettes and
// gradients from them.
package analysis

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/cluster"
	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/gradient"
	imageloader "github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/palette"
)

// Report is the result of analysing one image.
type Report struct {
	Source      string                  `json:"source"`
	Width       int                     `json:"width"`
	Height      int                     `json:"height"`
	TotalPixels int                     `json:"totalPixels"`
	ValidPixels int                     `json:"validPixels"`
	Average     *colour.Swatch          `json:"average,omitempty"`
	Colors      []cluster.AnalyzedColor `json:"colors"`
	Dominant    []cluster.AnalyzedColor `json:"dominant"`
	Balanced    []cluster.AnalyzedColor `json:"balanced"`
	Palettes    []palette.Palette       `json:"palettes"`
	Gradients   []gradient.Gradient     `json:"gradients"`
}

// Empty reports whether no pixel survived the alpha cutoff.
func (r *Report) Empty() bool {
	return r.ValidPixels == 0
}

// Analyzer holds the configuration for analysis requests. It keeps no state
// between calls and is safe for concurrent use.
type Analyzer struct {
	cfg       config.Config
	loader    imageloader.Loader
	extractor cluster.Extractor
	logger    hclog.Logger
}

// Option customises an Analyzer.
type Option func(*Analyzer)

// WithLoader replaces the file loader.
func WithLoader(l imageloader.Loader) Option {
	return func(a *Analyzer) { a.loader = l }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l hclog.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l.Named("analysis")
		}
	}
}

// New creates an Analyzer from cfg.
func New(cfg config.Config, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	extractor, err := cluster.NewExtractor(cluster.ExtractorConfig{
		Algorithm:   cluster.AlgorithmGreedy,
		Threshold:   cfg.Threshold,
		AlphaCutoff: uint8(cfg.AlphaCutoff),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}

	a := &Analyzer{
		cfg: cfg,
		loader: imageloader.NewFileLoader(imageloader.Options{
			MaxFileSize:  cfg.MaxFileSize,
			MaxDimension: cfg.MaxDimension,
		}),
		extractor: extractor,
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// AnalyzeFile loads and analyses the image at path. Decode failures are
// returned as errors and no partial report is produced.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*Report, error) {
	start := time.Now()
	a.logger.Debug("loading image", "path", path)

	img, err := a.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}

	report, err := a.AnalyzeImage(ctx, path, img)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("analysis complete", "path", path,
		"clusters", len(report.Colors), "valid_pixels", report.ValidPixels,
		"elapsed", time.Since(start))
	return report, nil
}

// AnalyzeImage analyses an already decoded image.
func (a *Analyzer) AnalyzeImage(ctx context.Context, source string, img image.Image) (*Report, error) {
	res, err := a.extractor.Extract(img)
	if err != nil {
		return nil, fmt.Errorf("failed to extract colours: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := img.Bounds()
	return a.build(source, b.Dx(), b.Dy(), res), nil
}

// AnalyzePixels analyses a raw RGBA buffer. A nil buffer yields an empty report.
func (a *Analyzer) AnalyzePixels(source string, px *cluster.Pixels) *Report {
	if px == nil {
		px = &cluster.Pixels{}
	}
	res := cluster.Run(px, a.cfg.ClusterOptions())
	return a.build(source, px.Width, px.Height, &res)
}

func (a *Analyzer) build(source string, width, height int, res *cluster.Result) *Report {
	report := &Report{
		Source:      source,
		Width:       width,
		Height:      height,
		TotalPixels: res.TotalPixels,
		ValidPixels: res.ValidPixels,
		Colors:      res.Colors,
	}

	avg, ok := res.Average()
	if !ok {
		a.logger.Warn("no opaque pixels in image", "source", source, "alpha_cutoff", a.cfg.AlphaCutoff)
		return report
	}
	sw := colour.NewSwatch(avg)
	report.Average = &sw

	report.Dominant = res.Dominant(a.cfg.Dominant)
	report.Balanced = res.Balanced(a.cfg.Separation, a.cfg.PaletteSize)

	if p, ok := palette.Dominant(cluster.Colours(report.Dominant)); ok {
		report.Palettes = append(report.Palettes, p)
	}
	report.Palettes = append(report.Palettes, palette.Generate(report.Dominant[0].Color)...)

	report.Gradients = gradient.Generate(cluster.Colours(report.Balanced), a.cfg.GradientOptions(source))

	a.logger.Trace("report built", "source", source,
		"dominant", len(report.Dominant), "balanced", len(report.Balanced),
		"palettes", len(report.Palettes), "gradients", len(report.Gradients))
	return report
}

// BatchResult is the outcome of analysing one path in a batch.
type BatchResult struct {
	Path   string
	Report *Report
	Err    error
}

// AnalyzeAll analyses paths concurrently. Results are returned in the order
// of paths. Each request builds its own accumulators.
func (a *Analyzer) AnalyzeAll(ctx context.Context, paths []string) []BatchResult {
	results := make([]BatchResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	workers := min(runtime.NumCPU(), len(paths))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				report, err := a.AnalyzeFile(ctx, paths[i])
				results[i] = BatchResult{Path: paths[i], Report: report, Err: err}
			}
		}()
	}

	for i := range paths {
		if ctx.Err() != nil {
			results[i] = BatchResult{Path: paths[i], Err: ctx.Err()}
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

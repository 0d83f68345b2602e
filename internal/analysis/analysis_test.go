package analysis

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/cluster"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/palette"
)

// memLoader serves decoded images from memory.
type memLoader map[string]image.Image

func (m memLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, ok := m[path]
	if !ok {
		return nil, fmt.Errorf("image file not found: %s", path)
	}
	return img, nil
}

// halves returns a w x h image with a red left half and a blue right half.
func halves(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			c := color.NRGBA{R: 255, A: 255}
			if x >= w/2 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func newAnalyzer(t *testing.T, opts ...Option) *Analyzer {
	t.Helper()
	opts = append([]Option{WithLogger(hclog.NewNullLogger())}, opts...)
	a, err := New(config.Default(), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Threshold = -1
	if _, err := New(cfg); err == nil {
		t.Error("New() expected error for invalid config")
	}
}

func TestAnalyzePixels(t *testing.T) {
	px, err := cluster.NewPixels(2, 2, []uint8{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	})
	if err != nil {
		t.Fatal(err)
	}

	r := newAnalyzer(t).AnalyzePixels("buffer", px)

	if r.Empty() {
		t.Fatal("report should not be empty")
	}
	if r.Width != 2 || r.Height != 2 || r.TotalPixels != 4 || r.ValidPixels != 4 {
		t.Errorf("report dimensions = %+v", r)
	}
	if len(r.Colors) != 2 || r.Colors[0].Percentage != 50 || r.Colors[1].Percentage != 50 {
		t.Errorf("Colors = %+v, want two clusters at 50%%", r.Colors)
	}
	if r.Average == nil || r.Average.G != 0 || r.Average.R < 127 || r.Average.R > 128 {
		t.Errorf("Average = %+v, want about #7F007F", r.Average)
	}
	if len(r.Dominant) != 2 || len(r.Balanced) != 2 {
		t.Errorf("dominant = %d, balanced = %d; want 2 and 2", len(r.Dominant), len(r.Balanced))
	}

	var schemes []palette.Scheme
	for _, p := range r.Palettes {
		schemes = append(schemes, p.Scheme)
	}
	want := append([]palette.Scheme{palette.SchemeDominant}, palette.Schemes()...)
	if diff := cmp.Diff(want, schemes); diff != "" {
		t.Errorf("palette schemes mismatch (-want +got):\n%s", diff)
	}
	if r.Palettes[1].Base.Hex() != "#FF0000" {
		t.Errorf("schemes should derive from the top colour, got base %s", r.Palettes[1].Base.Hex())
	}

	if len(r.Gradients) == 0 {
		t.Error("expected gradients from two balanced colours")
	}
}

func TestAnalyzePixelsNil(t *testing.T) {
	r := newAnalyzer(t).AnalyzePixels("nil", nil)
	if !r.Empty() || r.Width != 0 || r.Height != 0 || r.TotalPixels != 0 {
		t.Errorf("AnalyzePixels(nil) = %+v, want empty report", r)
	}
}

func TestAnalyzePixelsNoOpaquePixels(t *testing.T) {
	px, err := cluster.NewPixels(2, 1, []uint8{255, 0, 0, 0, 0, 0, 255, 20})
	if err != nil {
		t.Fatal(err)
	}

	r := newAnalyzer(t).AnalyzePixels("clear", px)

	if !r.Empty() {
		t.Error("report should be empty")
	}
	if r.Average != nil {
		t.Errorf("Average = %+v, want nil", r.Average)
	}
	if len(r.Colors) != 0 || len(r.Palettes) != 0 || len(r.Gradients) != 0 {
		t.Errorf("empty report has derived data: %+v", r)
	}
}

func TestAnalyzeFile(t *testing.T) {
	a := newAnalyzer(t, WithLoader(memLoader{"halves.png": halves(10, 4)}))

	r, err := a.AnalyzeFile(context.Background(), "halves.png")
	if err != nil {
		t.Fatalf("AnalyzeFile() error = %v", err)
	}
	if r.Source != "halves.png" || r.Width != 10 || r.Height != 4 {
		t.Errorf("report header = %s %dx%d", r.Source, r.Width, r.Height)
	}
	if len(r.Colors) != 2 {
		t.Errorf("got %d colours, want 2", len(r.Colors))
	}

	if _, err := a.AnalyzeFile(context.Background(), "missing.png"); err == nil {
		t.Error("AnalyzeFile() expected error for missing image")
	}
}

func TestAnalyzeAll(t *testing.T) {
	loader := memLoader{}
	var paths []string
	for i := range 6 {
		p := fmt.Sprintf("img-%d.png", i)
		loader[p] = halves(4+i*2, 2)
		paths = append(paths, p)
	}
	paths = append(paths, "missing.png")

	results := newAnalyzer(t, WithLoader(loader)).AnalyzeAll(context.Background(), paths)

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Errorf("result %d is for %s, want %s", i, res.Path, paths[i])
		}
	}
	for _, res := range results[:6] {
		if res.Err != nil || res.Report == nil {
			t.Errorf("%s: err = %v", res.Path, res.Err)
			continue
		}
		if res.Report.Source != res.Path {
			t.Errorf("%s: report source = %s", res.Path, res.Report.Source)
		}
	}
	if last := results[6]; last.Err == nil || last.Report != nil {
		t.Errorf("missing image: %+v, want an error and no report", last)
	}
}

func TestAnalyzeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newAnalyzer(t, WithLoader(memLoader{"a.png": halves(2, 2), "b.png": halves(2, 2)}))
	for _, res := range a.AnalyzeAll(ctx, []string{"a.png", "b.png"}) {
		if !errors.Is(res.Err, context.Canceled) {
			t.Errorf("%s: err = %v, want context.Canceled", res.Path, res.Err)
		}
		if res.Report != nil {
			t.Errorf("%s: cancelled analysis returned a report", res.Path)
		}
	}

	if got := a.AnalyzeAll(context.Background(), nil); len(got) != 0 {
		t.Errorf("AnalyzeAll(nil) = %v", got)
	}
}

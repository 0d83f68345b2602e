package cluster

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/swatch/internal/colour"
)

// pixelsOf builds a 1-row opaque buffer from hex colours.
func pixelsOf(t *testing.T, hexes ...string) *Pixels {
	t.Helper()
	data := make([]uint8, 0, len(hexes)*4)
	for _, h := range hexes {
		c := colour.MustParse(h)
		data = append(data, c.R, c.G, c.B, 255)
	}
	px, err := NewPixels(len(hexes), 1, data)
	if err != nil {
		t.Fatalf("NewPixels() error = %v", err)
	}
	return px
}

func TestRunTwoByTwo(t *testing.T) {
	data := []uint8{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	px, err := NewPixels(2, 2, data)
	if err != nil {
		t.Fatalf("NewPixels() error = %v", err)
	}

	res := Run(px, Options{Threshold: 10, AlphaCutoff: 128})

	want := []AnalyzedColor{
		{Color: colour.Color{R: 255}, Count: 2, Percentage: 50},
		{Color: colour.Color{B: 255}, Count: 2, Percentage: 50},
	}
	if diff := cmp.Diff(want, res.Colors); diff != "" {
		t.Errorf("Run() colours mismatch (-want +got):\n%s", diff)
	}
	if res.ValidPixels != 4 || res.TotalPixels != 4 {
		t.Errorf("pixels = %d valid / %d total, want 4 / 4", res.ValidPixels, res.TotalPixels)
	}

	avg, ok := res.Average()
	if !ok {
		t.Fatal("Average() reported no data")
	}
	// The exact mean is 127.5; either neighbour is acceptable.
	if avg.R < 127 || avg.R > 128 || avg.G != 0 || avg.B < 127 || avg.B > 128 {
		t.Errorf("Average() = %s, want about #7F007F", avg.Hex())
	}
}

func TestRunMergesWithinThreshold(t *testing.T) {
	px := pixelsOf(t, "#FF0000", "#FA0000", "#FF0000", "#0000FF", "#F00000")

	res := Run(px, Options{Threshold: 30})

	want := []AnalyzedColor{
		{Color: colour.Color{R: 255}, Count: 4, Percentage: 80},
		{Color: colour.Color{B: 255}, Count: 1, Percentage: 20},
	}
	if diff := cmp.Diff(want, res.Colors); diff != "" {
		t.Errorf("Run() mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFirstSeenRepresentative(t *testing.T) {
	// The darker red is seen first so it represents the cluster even though
	// the brighter red is more frequent.
	px := pixelsOf(t, "#F00000", "#FF0000", "#FF0000", "#FF0000")

	res := Run(px, Options{Threshold: 30})
	if len(res.Colors) != 1 {
		t.Fatalf("got %d clusters, want 1", len(res.Colors))
	}
	if got := res.Colors[0].Hex(); got != "#F00000" {
		t.Errorf("representative = %s, want #F00000", got)
	}
}

func TestRunThresholdIsStrict(t *testing.T) {
	// Distance between these two is exactly 30.
	px := pixelsOf(t, "#000000", "#1E0000")

	if got := len(Run(px, Options{Threshold: 30}).Colors); got != 2 {
		t.Errorf("threshold 30: got %d clusters, want 2", got)
	}
	if got := len(Run(px, Options{Threshold: 30.5}).Colors); got != 1 {
		t.Errorf("threshold 30.5: got %d clusters, want 1", got)
	}
}

func TestRunTiesKeepCreationOrder(t *testing.T) {
	px := pixelsOf(t, "#00FF00", "#0000FF", "#FF0000", "#FF0000", "#0000FF", "#00FF00")

	res := Run(px, Options{Threshold: 10})
	got := make([]string, len(res.Colors))
	for i, c := range res.Colors {
		got[i] = c.Hex()
	}
	want := []string{"#00FF00", "#0000FF", "#FF0000"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAlphaCutoff(t *testing.T) {
	data := []uint8{
		255, 0, 0, 255,
		0, 255, 0, 127,
		0, 0, 255, 128,
		0, 0, 0, 0,
	}
	px, err := NewPixels(4, 1, data)
	if err != nil {
		t.Fatalf("NewPixels() error = %v", err)
	}

	res := Run(px, Options{Threshold: 10, AlphaCutoff: 128})
	if res.ValidPixels != 2 {
		t.Errorf("ValidPixels = %d, want 2", res.ValidPixels)
	}
	if res.TotalPixels != 4 {
		t.Errorf("TotalPixels = %d, want 4", res.TotalPixels)
	}
	for _, c := range res.Colors {
		if c.Color == (colour.Color{G: 255}) {
			t.Error("pixel below the alpha cutoff was counted")
		}
	}
}

func TestRunNoValidPixels(t *testing.T) {
	px, err := NewPixels(2, 1, []uint8{255, 0, 0, 0, 0, 255, 0, 10})
	if err != nil {
		t.Fatalf("NewPixels() error = %v", err)
	}

	res := Run(px, DefaultOptions())
	if len(res.Colors) != 0 {
		t.Errorf("got %d colours, want none", len(res.Colors))
	}
	if _, ok := res.Average(); ok {
		t.Error("Average() should report no data")
	}

	empty := Run(nil, DefaultOptions())
	if empty.TotalPixels != 0 || len(empty.Colors) != 0 {
		t.Errorf("Run(nil) = %+v, want zero result", empty)
	}
}

// jittered returns pixels around five well separated base colours, each
// repeated with small per-channel offsets.
func jittered(t *testing.T) *Pixels {
	t.Helper()
	bases := []colour.Color{
		{R: 200, G: 30, B: 30},
		{R: 30, G: 200, B: 30},
		{R: 30, G: 30, B: 200},
		{R: 220, G: 220, B: 220},
		{R: 20, G: 20, B: 20},
	}
	var data []uint8
	for i := range 90 {
		b := bases[i%len(bases)]
		j := uint8(i / len(bases))
		data = append(data, b.R+j%3, b.G+(j/3)%3, b.B, 255)
	}
	px, err := NewPixels(90, 1, data)
	if err != nil {
		t.Fatalf("NewPixels() error = %v", err)
	}
	return px
}

// Well separated groups collapse monotonically as the threshold grows.
func TestRunThresholdMonotonicSeparated(t *testing.T) {
	px := jittered(t)

	prev := math.MaxInt
	for _, threshold := range []float64{0, 1, 5, 10, 50, 150, 500} {
		n := len(Run(px, Options{Threshold: threshold}).Colors)
		if n > prev {
			t.Errorf("threshold %v produced %d clusters, more than %d at a lower threshold", threshold, n, prev)
		}
		prev = n
	}

	if got := len(Run(px, Options{Threshold: 10}).Colors); got != 5 {
		t.Errorf("threshold 10: got %d clusters, want 5", got)
	}
	if got := len(Run(px, Options{Threshold: 500}).Colors); got != 1 {
		t.Errorf("threshold 500: got %d clusters, want 1", got)
	}
}

func TestRunThresholdOrderDependence(t *testing.T) {
	// B is exactly 10 from A; C and D are 9 from B but about 13.45 from A.
	px, err := NewPixels(4, 1, []uint8{
		100, 100, 100, 255,
		110, 100, 100, 255,
		110, 109, 100, 255,
		110, 91, 100, 255,
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		threshold float64
		want      []string
	}{
		{10, []string{"#6E6464", "#646464"}},
		{11, []string{"#646464", "#6E6D64", "#6E5B64"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.threshold), func(t *testing.T) {
			var got []string
			for _, c := range Run(px, Options{Threshold: tt.threshold}).Colors {
				got = append(got, c.Hex())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("clusters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunPercentagesSumTo100(t *testing.T) {
	for _, threshold := range []float64{0, 5, 50} {
		res := Run(jittered(t), Options{Threshold: threshold})

		var total float64
		var count int
		for _, c := range res.Colors {
			total += c.Percentage
			count += c.Count
		}
		if math.Abs(total-100) > 1e-9 {
			t.Errorf("threshold %v: percentages sum to %v, want 100", threshold, total)
		}
		if count != res.ValidPixels {
			t.Errorf("threshold %v: counts sum to %d, want %d", threshold, count, res.ValidPixels)
		}
	}
}

func TestDominant(t *testing.T) {
	res := Run(pixelsOf(t, "#FF0000", "#FF0000", "#FF0000", "#00FF00", "#00FF00", "#0000FF"), Options{Threshold: 10})

	if got := res.Dominant(0); got != nil {
		t.Errorf("Dominant(0) = %v, want nil", got)
	}
	got := Colours(res.Dominant(2))
	want := []colour.Color{{R: 255}, {G: 255}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Dominant(2) mismatch (-want +got):\n%s", diff)
	}
	if n := len(res.Dominant(10)); n != 3 {
		t.Errorf("Dominant(10) returned %d colours, want 3", n)
	}
}

func TestBalanced(t *testing.T) {
	// #E60000 is 25 away from red: a separate cluster at threshold 10, but
	// too close to red for a balanced palette.
	px := pixelsOf(t,
		"#FF0000", "#FF0000", "#FF0000", "#FF0000",
		"#E60000", "#E60000", "#E60000",
		"#0000FF", "#0000FF",
		"#00FF00",
	)
	res := Run(px, Options{Threshold: 10})
	if len(res.Colors) != 4 {
		t.Fatalf("got %d clusters, want 4", len(res.Colors))
	}

	got := Colours(res.Balanced(DefaultSeparation, DefaultPaletteSize))
	want := []colour.Color{{R: 255}, {B: 255}, {G: 255}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Balanced() mismatch (-want +got):\n%s", diff)
	}

	if n := len(res.Balanced(DefaultSeparation, 2)); n != 2 {
		t.Errorf("Balanced(max=2) returned %d colours, want 2", n)
	}
}

func TestAnalyzedColorJSON(t *testing.T) {
	a := AnalyzedColor{Color: colour.Color{R: 255}, Count: 1, Percentage: 100.0 / 3}
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["hex"] != "#FF0000" || got["name"] != "Red" {
		t.Errorf("unexpected colour fields: %s", data)
	}
	if got["percentage"] != 33.33 {
		t.Errorf("percentage = %v, want 33.33", got["percentage"])
	}
	if got["count"] != float64(1) {
		t.Errorf("count = %v, want 1", got["count"])
	}
}

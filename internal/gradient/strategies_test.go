package gradient

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/swatch/internal/colour"
)

var (
	red  = colour.Color{R: 255}
	lime = colour.Color{G: 255}
	blue = colour.Color{B: 255}
)

func names(gradients []Gradient) []string {
	out := make([]string, len(gradients))
	for i, g := range gradients {
		out[i] = g.Name()
	}
	return out
}

func byName(t *testing.T, gradients []Gradient, name string) Gradient {
	t.Helper()
	for _, g := range gradients {
		if g.Name() == name {
			return g
		}
	}
	t.Fatalf("no gradient named %q in %v", name, names(gradients))
	return Gradient{}
}

func TestGenerateTooFewColours(t *testing.T) {
	for _, colors := range [][]colour.Color{nil, {red}} {
		got := Generate(colors, DefaultOptions())
		if got == nil || len(got) != 0 {
			t.Errorf("Generate(%d colours) = %v, want empty", len(colors), got)
		}
	}
}

func TestGenerateTwoColours(t *testing.T) {
	got := Generate([]colour.Color{red, blue}, Options{IncludeVariations: false})

	want := []string{"Basic 1", "Rainbow", "Lightness", "Smooth", "Radial Center", "Radial Corner", "Stripes", "Fade"}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Fatalf("gradient names mismatch (-want +got):\n%s", diff)
	}

	basic := got[0]
	if basic.Type() != TypeLinear || basic.Direction() != "to right" {
		t.Errorf("Basic 1 = %s %s", basic.Type(), basic.Direction())
	}
	stops := basic.Stops()
	if len(stops) != 2 || stops[0].Position != 0 || stops[1].Position != 100 {
		t.Errorf("Basic 1 stops = %+v, want two stops at 0 and 100", stops)
	}
	if got := basic.CSS(); got != "linear-gradient(to right, #FF0000 0%, #0000FF 100%)" {
		t.Errorf("Basic 1 CSS = %q", got)
	}
}

func TestGenerateThreeColours(t *testing.T) {
	got := Generate([]colour.Color{blue, red, lime}, Options{IncludeVariations: false})

	want := []string{
		"Basic 1", "Basic 2", "Spectrum", "Rainbow", "Lightness", "Smooth",
		"Radial Center", "Radial Corner", "Conic", "Stripes", "Fade",
	}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Fatalf("gradient names mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name string
		css  string
	}{
		{"Basic 2", "linear-gradient(to right, #FF0000 0%, #00FF00 100%)"},
		{"Spectrum", "linear-gradient(to right, #0000FF 0%, #FF0000 50%, #00FF00 100%)"},
		{"Rainbow", "linear-gradient(45deg, #FF0000 0%, #00FF00 50%, #0000FF 100%)"},
		{"Conic", "conic-gradient(from 0deg at 50% 50%, #0000FF 0deg, #FF0000 120deg, #00FF00 240deg)"},
		{"Stripes", "linear-gradient(to right, #0000FF 0%, #0000FF 33.33%, #FF0000 33.33%, #FF0000 66.67%, #00FF00 66.67%, #00FF00 100%)"},
		{"Fade", "linear-gradient(to right, #0000FFFF 0%, #FF000080 50%, #00FF00FF 100%)"},
		{"Radial Corner", "radial-gradient(circle at top left, #0000FF 0%, #FF0000 50%, #00FF00 100%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if css := byName(t, got, tt.name).CSS(); css != tt.css {
				t.Errorf("CSS() = %q\nwant    %q", css, tt.css)
			}
		})
	}
}

func TestSmoothInterpolatesShortArc(t *testing.T) {
	got := Generate([]colour.Color{red, blue}, Options{})
	smooth := byName(t, got, "Smooth")

	want := "linear-gradient(135deg, #FF0000 0%, #FF0080 25%, #FF00FF 50%, #8000FF 75%, #0000FF 100%)"
	if css := smooth.CSS(); css != want {
		t.Errorf("Smooth CSS = %q\nwant %q", css, want)
	}
}

func TestGenerateVariations(t *testing.T) {
	got := Generate([]colour.Color{red, blue}, DefaultOptions())

	var variations []string
	for _, g := range got {
		if g.IsVariation() {
			variations = append(variations, g.Name())
		}
	}
	want := []string{
		"Basic 1 (to bottom)",
		"Basic 1 (to top right)",
		"Basic 1 (to bottom left)",
		"Basic 1 (90deg)",
		"Rainbow (to bottom)",
		"Rainbow (to top right)",
	}
	if diff := cmp.Diff(want, variations); diff != "" {
		t.Errorf("variations mismatch (-want +got):\n%s", diff)
	}

	v := byName(t, got, "Basic 1 (90deg)")
	if css := v.CSS(); css != "linear-gradient(90deg, #FF0000 0%, #0000FF 100%)" {
		t.Errorf("variation CSS = %q", css)
	}
}

func TestGenerateMaxCount(t *testing.T) {
	colors := []colour.Color{red, lime, blue, colour.White, colour.Black, colour.MustParse("#3B82F6")}

	if n := len(Generate(colors, DefaultOptions())); n != DefaultMaxCount {
		t.Errorf("default options produced %d gradients, want %d", n, DefaultMaxCount)
	}
	if n := len(Generate(colors, Options{MaxCount: 4})); n != 4 {
		t.Errorf("MaxCount 4 produced %d gradients", n)
	}
}

func TestGenerateInvariants(t *testing.T) {
	colors := []colour.Color{red, lime, blue, colour.MustParse("#F59E0B")}
	got := Generate(colors, Options{IncludeVariations: true, MaxCount: 100})

	ids := make(map[string]bool)
	for _, g := range got {
		if ids[g.ID()] {
			t.Errorf("duplicate id %s for %s", g.ID(), g.Name())
		}
		ids[g.ID()] = true

		stops := g.Stops()
		for i := 1; i < len(stops); i++ {
			if stops[i].Position < stops[i-1].Position {
				t.Errorf("%s: stop %d at %v is before %v", g.Name(), i, stops[i].Position, stops[i-1].Position)
			}
		}
	}
}

func TestGenerateStableIDs(t *testing.T) {
	colors := []colour.Color{red, blue}

	a := Generate(colors, Options{Name: "sunset"})
	b := Generate(colors, Options{Name: "sunset"})
	c := Generate(colors, Options{Name: "ocean"})

	for i := range a {
		if a[i].ID() != b[i].ID() {
			t.Errorf("%s: id changed between runs", a[i].Name())
		}
		if a[i].ID() == c[i].ID() {
			t.Errorf("%s: id should depend on the collection name", a[i].Name())
		}
	}
}

func TestHueSorted(t *testing.T) {
	in := []colour.Color{blue, red, lime}
	got := HueSorted(in)

	if diff := cmp.Diff([]colour.Color{red, lime, blue}, got); diff != "" {
		t.Errorf("HueSorted() mismatch (-want +got):\n%s", diff)
	}
	if in[0] != blue {
		t.Error("HueSorted modified its input")
	}

	for i := 1; i < len(got); i++ {
		if got[i].HSL().H < got[i-1].HSL().H {
			t.Errorf("hue decreased at index %d", i)
		}
	}
}

func TestLightnessSorted(t *testing.T) {
	gray := colour.Color{R: 128, G: 128, B: 128}
	got := LightnessSorted([]colour.Color{colour.White, gray, colour.Black})

	if diff := cmp.Diff([]colour.Color{colour.Black, gray, colour.White}, got); diff != "" {
		t.Errorf("LightnessSorted() mismatch (-want +got):\n%s", diff)
	}
}

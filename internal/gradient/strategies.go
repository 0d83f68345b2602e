package gradient

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Generation parameters.
const (
	DefaultMaxCount = 20
	DefaultName     = "Generated"

	smoothSteps        = 5
	radialColours      = 3
	variationSources   = 3
	maxVariations      = 6
	fadeHalfOpacity    = 0.5
	directionToRight   = "to right"
	directionToBottom  = "to bottom"
	directionRainbow   = "45deg"
	directionSmooth    = "135deg"
	shapeRadialCenter  = "circle at center"
	shapeRadialCorner  = "circle at top left"
	conicStartAndFocus = "from 0deg at 50% 50%"
)

// variationDirections are the alternate directions applied to linear gradients.
var variationDirections = []string{"to bottom", "to top right", "to bottom left", "90deg"}

// idNamespace scopes gradient ids generated by this package.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/jmylchreest/swatch/gradient"))

// Options controls gradient generation.
type Options struct {
	// IncludeVariations re-emits some linear gradients with alternate directions.
	IncludeVariations bool
	// MaxCount truncates the result. Zero or less uses DefaultMaxCount.
	MaxCount int
	// Name scopes the generated ids and names the collection.
	Name string
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		IncludeVariations: true,
		MaxCount:          DefaultMaxCount,
		Name:              DefaultName,
	}
}

// builder accumulates gradients for one Generate call.
type builder struct {
	name string
	out  []Gradient
}

func (b *builder) add(key, name string, typ Type, direction string, stops []Stop, variation bool) {
	id := uuid.NewSHA1(idNamespace, []byte(b.name+"/"+key)).String()
	g, err := New(id, name, typ, direction, stops, variation)
	if err != nil {
		// Generated stops are always valid; a failure here is a programming error.
		panic(fmt.Sprintf("gradient %s: %v", key, err))
	}
	b.out = append(b.out, g)
}

// Generate builds gradients from colors using every strategy in a fixed
// order, then truncates to opts.MaxCount. Fewer than two colours produce an
// empty result.
func Generate(colors []colour.Color, opts Options) []Gradient {
	if len(colors) < 2 {
		return []Gradient{}
	}
	if opts.MaxCount <= 0 {
		opts.MaxCount = DefaultMaxCount
	}
	if opts.Name == "" {
		opts.Name = DefaultName
	}

	b := &builder{name: opts.Name}
	basic(b, colors)
	spectrum(b, colors)
	rainbow(b, colors)
	lightness(b, colors)
	smooth(b, colors)
	radial(b, colors)
	conic(b, colors)
	stripes(b, colors)
	fade(b, colors)
	if opts.IncludeVariations {
		variations(b)
	}

	if len(b.out) > opts.MaxCount {
		b.out = b.out[:opts.MaxCount]
	}
	return b.out
}

// evenStops spaces colours evenly over [0, limit].
func evenStops(colors []colour.Color, limit float64) []Stop {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) * limit / float64(len(colors)-1)
		}
		stops[i] = Stop{Color: c, Position: pos}
	}
	return stops
}

// basic emits one linear gradient per adjacent pair.
func basic(b *builder, colors []colour.Color) {
	for i := 0; i < len(colors)-1; i++ {
		b.add(fmt.Sprintf("basic-%d", i), fmt.Sprintf("Basic %d", i+1), TypeLinear, directionToRight, []Stop{
			{Color: colors[i], Position: 0},
			{Color: colors[i+1], Position: 100},
		}, false)
	}
}

// spectrum uses every colour as an evenly spaced stop.
func spectrum(b *builder, colors []colour.Color) {
	if len(colors) < 3 {
		return
	}
	b.add("spectrum", "Spectrum", TypeLinear, directionToRight, evenStops(colors, 100), false)
}

// rainbow orders colours by ascending hue.
func rainbow(b *builder, colors []colour.Color) {
	b.add("rainbow", "Rainbow", TypeLinear, directionRainbow, evenStops(HueSorted(colors), 100), false)
}

// lightness orders colours from dark to light, top to bottom.
func lightness(b *builder, colors []colour.Color) {
	b.add("lightness", "Lightness", TypeLinear, directionToBottom, evenStops(LightnessSorted(colors), 100), false)
}

// smooth interpolates between the first and last colour in HSL space.
func smooth(b *builder, colors []colour.Color) {
	first, last := colors[0], colors[len(colors)-1]
	steps := make([]colour.Color, smoothSteps)
	for i := range steps {
		steps[i] = colour.Interpolate(first, last, float64(i)/float64(smoothSteps-1))
	}
	b.add("smooth", "Smooth", TypeLinear, directionSmooth, evenStops(steps, 100), false)
}

// radial emits centre and corner radial gradients from the first three colours.
func radial(b *builder, colors []colour.Color) {
	stops := evenStops(colors[:min(radialColours, len(colors))], 100)
	b.add("radial-center", "Radial Center", TypeRadial, shapeRadialCenter, stops, false)
	b.add("radial-corner", "Radial Corner", TypeRadial, shapeRadialCorner, stops, false)
}

// conic spaces all colours around the circle.
func conic(b *builder, colors []colour.Color) {
	if len(colors) < 3 {
		return
	}
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		stops[i] = Stop{Color: c, Position: float64(i) * 360 / float64(len(colors))}
	}
	b.add("conic", "Conic", TypeConic, conicStartAndFocus, stops, false)
}

// stripes gives each colour a solid band. Band edges repeat the position so
// neighbouring colours do not blend.
func stripes(b *builder, colors []colour.Color) {
	n := float64(len(colors))
	stops := make([]Stop, 0, 2*len(colors))
	for i, c := range colors {
		stops = append(stops,
			Stop{Color: c, Position: float64(i) * 100 / n},
			Stop{Color: c, Position: float64(i+1) * 100 / n},
		)
	}
	b.add("stripes", "Stripes", TypeLinear, directionToRight, stops, false)
}

// fade alternates full and half opacity stops.
func fade(b *builder, colors []colour.Color) {
	stops := evenStops(colors, 100)
	for i := range stops {
		op := 1.0
		if i%2 == 1 {
			op = fadeHalfOpacity
		}
		stops[i].Opacity = &op
	}
	b.add("fade", "Fade", TypeLinear, directionToRight, stops, false)
}

// variations re-emits the first linear gradients with alternate directions.
func variations(b *builder) {
	var sources []Gradient
	for _, g := range b.out {
		if g.typ == TypeLinear && !g.variation {
			sources = append(sources, g)
			if len(sources) == variationSources {
				break
			}
		}
	}

	count := 0
	for _, src := range sources {
		for _, dir := range variationDirections {
			if count == maxVariations {
				return
			}
			if dir == src.direction {
				continue
			}
			key := fmt.Sprintf("%s/variation/%s", src.id, dir)
			b.add(key, fmt.Sprintf("%s (%s)", src.name, dir), TypeLinear, dir, src.stops, true)
			count++
		}
	}
}

// HueSorted returns a copy of colors ordered by ascending hue.
func HueSorted(colors []colour.Color) []colour.Color {
	out := slices.Clone(colors)
	slices.SortStableFunc(out, func(a, b colour.Color) int {
		return compareFloat(a.HSL().H, b.HSL().H)
	})
	return out
}

// LightnessSorted returns a copy of colors ordered by ascending lightness.
func LightnessSorted(colors []colour.Color) []colour.Color {
	out := slices.Clone(colors)
	slices.SortStableFunc(out, func(a, b colour.Color) int {
		return compareFloat(a.HSL().L, b.HSL().L)
	})
	return out
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

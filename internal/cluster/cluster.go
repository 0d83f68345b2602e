package cluster

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/jmylchreest/swatch/internal/colour"
)

const (
	// DefaultThreshold is the RGB distance below which two colours are merged.
	DefaultThreshold = 30.0

	// DefaultAlphaCutoff discards pixels with alpha below this value.
	DefaultAlphaCutoff = 128

	// DefaultSeparation is the minimum RGB distance between members of a balanced palette.
	DefaultSeparation = 80.0

	// DefaultPaletteSize caps the size of a balanced palette.
	DefaultPaletteSize = 8
)

// Options controls a clustering run.
type Options struct {
	// Threshold is the merge distance. A colour joins the first cluster whose
	// representative is strictly closer than Threshold.
	Threshold float64

	// AlphaCutoff discards pixels whose alpha is below it.
	AlphaCutoff uint8
}

// DefaultOptions returns the default clustering options.
func DefaultOptions() Options {
	return Options{
		Threshold:   DefaultThreshold,
		AlphaCutoff: DefaultAlphaCutoff,
	}
}

// AnalyzedColor is a cluster representative with its share of the valid pixels.
type AnalyzedColor struct {
	colour.Color
	Count      int
	Percentage float64
}

// MarshalJSON renders the colour with its hex, rgb, hsl and name forms.
func (a AnalyzedColor) MarshalJSON() ([]byte, error) {
	j := a.Color.JSON()
	j.Name = a.Name()
	return json.Marshal(struct {
		colour.ColorJSON
		Count      int     `json:"count"`
		Percentage float64 `json:"percentage"`
	}{j, a.Count, math.Round(a.Percentage*100) / 100})
}

// Result is the outcome of one clustering run.
type Result struct {
	// Colors are sorted by descending pixel count.
	Colors      []AnalyzedColor
	ValidPixels int
	TotalPixels int

	average colour.Color
}

// Average returns the mean colour over all valid pixels. The second result
// is false when no pixel survived the alpha cutoff.
func (r *Result) Average() (colour.Color, bool) {
	if r.ValidPixels == 0 {
		return colour.Color{}, false
	}
	return r.average, true
}

// clusterAcc accumulates pixels for one representative colour.
type clusterAcc struct {
	rep   colour.Color
	count int
}

// Run clusters the pixels in px.
//
// Pixels are scanned once in row-major order. Exact colours are counted in
// first-seen order, then merged greedily: each exact colour joins the first
// existing cluster whose representative is within opts.Threshold, otherwise
// it starts a new cluster and becomes its representative. Representatives
// are never recomputed, so the outcome depends on scan order. Clusters are
// finally sorted by descending count with ties kept in creation order.
//
// The cluster count is not monotone in the threshold: a larger threshold can
// fold an early colour into a previous cluster, leaving later colours that it
// would have absorbed to start clusters of their own.
func Run(px *Pixels, opts Options) Result {
	res := Result{}
	if px == nil {
		return res
	}
	res.TotalPixels = px.Len()

	counts := make(map[colour.Color]int)
	var order []colour.Color
	var sumR, sumG, sumB int

	for i := range res.TotalPixels {
		r, g, b, a := px.At(i)
		if a < opts.AlphaCutoff {
			continue
		}
		c := colour.Color{R: r, G: g, B: b}
		if _, seen := counts[c]; !seen {
			order = append(order, c)
		}
		counts[c]++
		sumR += int(r)
		sumG += int(g)
		sumB += int(b)
		res.ValidPixels++
	}

	if res.ValidPixels == 0 {
		return res
	}

	var clusters []*clusterAcc
	for _, c := range order {
		var target *clusterAcc
		for _, cl := range clusters {
			if colour.Distance(c, cl.rep) < opts.Threshold {
				target = cl
				break
			}
		}
		if target == nil {
			target = &clusterAcc{rep: c}
			clusters = append(clusters, target)
		}
		target.count += counts[c]
	}

	res.Colors = make([]AnalyzedColor, len(clusters))
	for i, cl := range clusters {
		res.Colors[i] = AnalyzedColor{
			Color:      cl.rep,
			Count:      cl.count,
			Percentage: float64(cl.count) / float64(res.ValidPixels) * 100,
		}
	}
	slices.SortStableFunc(res.Colors, func(a, b AnalyzedColor) int {
		return b.Count - a.Count
	})

	n := float64(res.ValidPixels)
	res.average = colour.Color{
		R: colour.RoundChannel(float64(sumR) / n),
		G: colour.RoundChannel(float64(sumG) / n),
		B: colour.RoundChannel(float64(sumB) / n),
	}

	return res
}

// Dominant returns the k most frequent colours.
func (r *Result) Dominant(k int) []AnalyzedColor {
	if k <= 0 {
		return nil
	}
	return slices.Clone(r.Colors[:min(k, len(r.Colors))])
}

// Balanced walks the colours from most to least frequent and keeps a colour
// only if it is further than minSeparation from every colour kept so far,
// stopping once maxSize colours are kept.
func (r *Result) Balanced(minSeparation float64, maxSize int) []AnalyzedColor {
	var kept []AnalyzedColor
	for _, c := range r.Colors {
		if len(kept) >= maxSize {
			break
		}
		distinct := true
		for _, k := range kept {
			if colour.Distance(c.Color, k.Color) <= minSeparation {
				distinct = false
				break
			}
		}
		if distinct {
			kept = append(kept, c)
		}
	}
	return kept
}

// Colours returns the plain colours of a list of analyzed colours.
func Colours(list []AnalyzedColor) []colour.Color {
	out := make([]colour.Color, len(list))
	for i, c := range list {
		out[i] = c.Color
	}
	return out
}

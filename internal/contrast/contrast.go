// Package contrast evaluates WCAG 2.x contrast between colours and searches
// for accessible alternatives.
package contrast

import (
	"encoding/json"
	"math"
	"slices"

	"github.com/jmylchreest/swatch/internal/colour"
)

// WCAG thresholds.
const (
	RatioAAA     = 7.0
	RatioAA      = 4.5
	RatioAALarge = 3.0
)

// Level is the WCAG conformance level met by a contrast ratio.
type Level int

const (
	LevelFail Level = iota
	LevelAALarge
	LevelAA
	LevelAAA
)

// String returns the display name of the level.
func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	case LevelAALarge:
		return "AA Large"
	default:
		return "Fail"
	}
}

// MarshalJSON renders the level by name.
func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// Classify returns the highest level met by ratio.
func Classify(ratio float64) Level {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA
	case ratio >= RatioAA:
		return LevelAA
	case ratio >= RatioAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// Compliance lists which content kinds pass at a level.
type Compliance struct {
	NormalText   bool `json:"normalText"`
	LargeText    bool `json:"largeText"`
	UIComponents bool `json:"uiComponents"`
}

// Compliance returns the pass flags for the level.
func (l Level) Compliance() Compliance {
	switch l {
	case LevelAAA, LevelAA:
		return Compliance{NormalText: true, LargeText: true, UIComponents: true}
	case LevelAALarge:
		return Compliance{LargeText: true, UIComponents: true}
	default:
		return Compliance{}
	}
}

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c colour.Color) float64 {
	return colour.Luminance(c)
}

// Ratio returns the WCAG contrast ratio between a and b, in [1, 21].
func Ratio(a, b colour.Color) float64 {
	return colour.ContrastRatio(a, b)
}

// Result is the contrast evaluation of two colours.
type Result struct {
	Ratio float64 `json:"ratio"`
	Level Level   `json:"level"`
	Compliance
}

// Evaluate computes the contrast ratio between a and b and classifies it.
func Evaluate(a, b colour.Color) Result {
	r := Ratio(a, b)
	l := Classify(r)
	return Result{Ratio: r, Level: l, Compliance: l.Compliance()}
}

// RoundedRatio returns the ratio rounded to two decimals for display.
func (r Result) RoundedRatio() float64 {
	return math.Round(r.Ratio*100) / 100
}

// Suggestion search parameters.
const (
	grayStep       = 17
	maxSuggestions = 5
)

// Suggestion is a candidate colour that meets a target ratio against a base colour.
type Suggestion struct {
	Color colour.Color `json:"-"`
	Hex   string       `json:"hex"`
	Ratio float64      `json:"ratio"`
	Level Level        `json:"level"`
}

// Candidates returns the colours SuggestAlternatives tries, in order:
// white, black, then grays from 0 to 255 in steps of 17, skipping repeats.
func Candidates() []colour.Color {
	out := []colour.Color{colour.White, colour.Black}
	for v := 0; v <= 255; v += grayStep {
		g := colour.Color{R: uint8(v), G: uint8(v), B: uint8(v)}
		if !slices.Contains(out, g) {
			out = append(out, g)
		}
	}
	return out
}

// SuggestAlternatives returns up to five candidates whose contrast against
// base is at least target, highest ratio first. Candidates with equal ratios
// keep their search order.
func SuggestAlternatives(base colour.Color, target float64) []Suggestion {
	var found []Suggestion
	for _, c := range Candidates() {
		r := Ratio(base, c)
		if r >= target {
			found = append(found, Suggestion{Color: c, Hex: c.Hex(), Ratio: r, Level: Classify(r)})
		}
	}
	slices.SortStableFunc(found, func(a, b Suggestion) int {
		switch {
		case a.Ratio > b.Ratio:
			return -1
		case a.Ratio < b.Ratio:
			return 1
		default:
			return 0
		}
	})
	return found[:min(len(found), maxSuggestions)]
}

// Package gradient synthesises CSS gradients from a set of colours.
package gradient

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Type is the gradient geometry.
type Type string

const (
	TypeLinear Type = "linear"
	TypeRadial Type = "radial"
	TypeConic  Type = "conic"
)

// maxPosition returns the exclusive (conic) or inclusive upper bound for stop positions.
func (t Type) maxPosition() float64 {
	if t == TypeConic {
		return 360
	}
	return 100
}

func (t Type) unit() string {
	if t == TypeConic {
		return "deg"
	}
	return "%"
}

// Stop is a colour at a position along the gradient. Position is a percentage
// for linear and radial gradients and an angle in degrees for conic ones.
type Stop struct {
	Color    colour.Color
	Position float64
	// Opacity is optional; when set the colour is rendered with an alpha suffix.
	Opacity *float64
}

// Text renders the stop colour, with a two digit alpha suffix when Opacity is set.
func (s Stop) Text() string {
	if s.Opacity == nil {
		return s.Color.Hex()
	}
	return fmt.Sprintf("%s%02X", s.Color.Hex(), colour.RoundChannel(*s.Opacity*255))
}

// Gradient is an immutable gradient definition. Its CSS and preview strings
// are derived from the type, direction and stops on every call.
type Gradient struct {
	id        string
	name      string
	typ       Type
	direction string
	stops     []Stop
	variation bool
}

// New creates a gradient, checking that it has at least one stop, that
// positions are in range and never decrease, and that opacities are in [0, 1].
func New(id, name string, typ Type, direction string, stops []Stop, variation bool) (Gradient, error) {
	switch typ {
	case TypeLinear, TypeRadial, TypeConic:
	default:
		return Gradient{}, fmt.Errorf("unknown gradient type: %s", typ)
	}
	if err := checkDirection(direction); err != nil {
		return Gradient{}, err
	}
	if len(stops) == 0 {
		return Gradient{}, fmt.Errorf("gradient needs at least one stop")
	}

	limit := typ.maxPosition()
	prev := math.Inf(-1)
	for i, s := range stops {
		if s.Position < 0 || s.Position > limit || (typ == TypeConic && s.Position == limit) {
			return Gradient{}, fmt.Errorf("stop %d position %g out of range for %s gradient", i, s.Position, typ)
		}
		if s.Position < prev {
			return Gradient{}, fmt.Errorf("stop %d position %g is before previous stop at %g", i, s.Position, prev)
		}
		if s.Opacity != nil && (*s.Opacity < 0 || *s.Opacity > 1) {
			return Gradient{}, fmt.Errorf("stop %d opacity %g out of range [0, 1]", i, *s.Opacity)
		}
		prev = s.Position
	}

	cp := make([]Stop, len(stops))
	copy(cp, stops)

	return Gradient{
		id:        id,
		name:      name,
		typ:       typ,
		direction: direction,
		stops:     cp,
		variation: variation,
	}, nil
}

// ID returns the stable gradient identifier.
func (g Gradient) ID() string { return g.id }

// Name returns the display name.
func (g Gradient) Name() string { return g.name }

// Type returns the gradient geometry.
func (g Gradient) Type() Type { return g.typ }

// Direction returns the direction (linear), shape and position (radial) or
// start angle and centre (conic) descriptor.
func (g Gradient) Direction() string { return g.direction }

// IsVariation reports whether the gradient is a re-direction of another one.
func (g Gradient) IsVariation() bool { return g.variation }

// Stops returns a copy of the stops.
func (g Gradient) Stops() []Stop {
	cp := make([]Stop, len(g.stops))
	copy(cp, g.stops)
	return cp
}

// WithDirection returns a copy of the gradient with a new direction.
// The stop list is shared unchanged.
func (g Gradient) WithDirection(direction string) (Gradient, error) {
	if err := checkDirection(direction); err != nil {
		return Gradient{}, err
	}
	g.direction = direction
	return g, nil
}

func checkDirection(direction string) error {
	if strings.TrimSpace(direction) == "" {
		return fmt.Errorf("gradient direction cannot be empty")
	}
	return nil
}

// CSS renders the gradient with explicit stop positions.
func (g Gradient) CSS() string {
	parts := make([]string, len(g.stops))
	for i, s := range g.stops {
		parts[i] = s.Text() + " " + formatNumber(s.Position) + g.typ.unit()
	}
	return g.render(parts)
}

// Preview renders the gradient with bare colour stops, leaving spacing to the renderer.
func (g Gradient) Preview() string {
	parts := make([]string, len(g.stops))
	for i, s := range g.stops {
		parts[i] = s.Text()
	}
	return g.render(parts)
}

func (g Gradient) render(stops []string) string {
	return fmt.Sprintf("%s-gradient(%s, %s)", g.typ, g.direction, strings.Join(stops, ", "))
}

// formatNumber prints a position with at most two decimals.
func formatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

type stopJSON struct {
	Color    string   `json:"color"`
	Position float64  `json:"position"`
	Opacity  *float64 `json:"opacity,omitempty"`
}

type gradientJSON struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      Type       `json:"type"`
	Direction string     `json:"direction"`
	Stops     []stopJSON `json:"stops"`
	Variation bool       `json:"variation,omitempty"`
	CSS       string     `json:"css"`
	Preview   string     `json:"preview"`
}

// MarshalJSON includes the rendered CSS and preview strings.
func (g Gradient) MarshalJSON() ([]byte, error) {
	stops := make([]stopJSON, len(g.stops))
	for i, s := range g.stops {
		stops[i] = stopJSON{Color: s.Color.Hex(), Position: math.Round(s.Position*100) / 100, Opacity: s.Opacity}
	}
	return json.Marshal(gradientJSON{
		ID:        g.id,
		Name:      g.name,
		Type:      g.typ,
		Direction: g.direction,
		Stops:     stops,
		Variation: g.variation,
		CSS:       g.CSS(),
		Preview:   g.Preview(),
	})
}

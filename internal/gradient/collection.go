package gradient

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/swatch/internal/colour"
)

// ErrTooFewColours is returned when a collection is requested from fewer than two colours.
var ErrTooFewColours = errors.New("at least two colours are required to generate gradients")

// Collection is a named set of gradients generated from one colour list.
type Collection struct {
	Name      string         `json:"name"`
	Colors    []colour.Color `json:"-"`
	Gradients []Gradient     `json:"gradients"`
}

// NewCollection parses texts and generates a gradient collection. Unlike
// Generate, under-specified input is reported as an error.
func NewCollection(name string, texts []string, opts Options) (*Collection, error) {
	if len(texts) < 2 {
		return nil, ErrTooFewColours
	}
	colors, err := colour.ParseAll(texts)
	if err != nil {
		return nil, fmt.Errorf("invalid colour: %w", err)
	}
	if name == "" {
		name = DefaultName
	}
	opts.Name = name

	return &Collection{
		Name:      name,
		Colors:    colors,
		Gradients: Generate(colors, opts),
	}, nil
}

// Hex returns the source colours as hex strings.
func (c *Collection) Hex() []string {
	out := make([]string, len(c.Colors))
	for i, col := range c.Colors {
		out[i] = col.Hex()
	}
	return out
}

// Len returns the number of gradients in the collection.
func (c *Collection) Len() int {
	return len(c.Gradients)
}

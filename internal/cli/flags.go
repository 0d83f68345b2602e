package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
)

// colourList is a pflag.Value holding colours given as a comma-separated
// list or by repeating the flag. Commas inside rgb(...) do not split.
type colourList struct {
	texts []string
}

var _ pflag.Value = (*colourList)(nil)

func (l *colourList) String() string {
	return strings.Join(l.texts, ",")
}

// Set validates every colour in value and appends them. Nothing is
// appended if any colour is invalid.
func (l *colourList) Set(value string) error {
	parts := splitColours(value)
	for _, part := range parts {
		if _, err := colour.Parse(part); err != nil {
			return err
		}
	}
	l.texts = append(l.texts, parts...)
	return nil
}

func (l *colourList) Type() string {
	return "colours"
}

// splitColours splits s on commas that are not inside parentheses.
func splitColours(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = appendTrimmed(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return appendTrimmed(parts, s[start:])
}

func appendTrimmed(parts []string, s string) []string {
	if t := strings.TrimSpace(s); t != "" {
		parts = append(parts, t)
	}
	return parts
}

// Package export serialises analysis reports and gradient collections as
// JSON, CSS custom properties with utility classes, or a SCSS map.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/jmylchreest/swatch/internal/analysis"
	"github.com/jmylchreest/swatch/internal/gradient"
)

//go:embed *.tmpl
var templates embed.FS

// Format is an export format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
)

// Formats returns the supported export formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSS, FormatSCSS}
}

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	for _, valid := range Formats() {
		if f == valid {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format: %s (supported: json, css, scss)", name)
}

// Variable is a named stylesheet value.
type Variable struct {
	Name  string
	Value string
}

// Sheet is the data rendered by the stylesheet templates.
type Sheet struct {
	Title     string
	Colors    []Variable
	Gradients []Variable
}

// collectionJSON is the JSON shape of a gradient collection.
type collectionJSON struct {
	Name      string              `json:"name"`
	Colors    []string            `json:"colors"`
	Count     int                 `json:"count"`
	Gradients []gradient.Gradient `json:"gradients"`
}

// Report renders an analysis report in the given format.
func Report(r *analysis.Report, format Format) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}
	if format == FormatJSON {
		return marshal(r)
	}

	sheet := Sheet{Title: r.Source}
	for i, c := range r.Balanced {
		sheet.Colors = append(sheet.Colors, Variable{Name: fmt.Sprintf("color-%d", i+1), Value: c.Hex()})
	}
	sheet.Gradients = gradientVariables(r.Gradients)
	return renderSheet(sheet, format)
}

// Collection renders a gradient collection in the given format.
func Collection(c *gradient.Collection, format Format) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("collection cannot be nil")
	}
	if format == FormatJSON {
		return marshal(collectionJSON{
			Name:      c.Name,
			Colors:    c.Hex(),
			Count:     c.Len(),
			Gradients: c.Gradients,
		})
	}

	sheet := Sheet{Title: c.Name}
	for i, h := range c.Hex() {
		sheet.Colors = append(sheet.Colors, Variable{Name: fmt.Sprintf("color-%d", i+1), Value: h})
	}
	sheet.Gradients = gradientVariables(c.Gradients)
	return renderSheet(sheet, format)
}

// JSON renders any value as indented JSON.
func JSON(v any) ([]byte, error) {
	return marshal(v)
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return append(data, '\n'), nil
}

func gradientVariables(gradients []gradient.Gradient) []Variable {
	vars := make([]Variable, 0, len(gradients))
	seen := make(map[string]int)
	for _, g := range gradients {
		name := "gradient-" + Slug(g.Name())
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s-%d", name, n)
		}
		vars = append(vars, Variable{Name: name, Value: g.CSS()})
	}
	return vars
}

func renderSheet(sheet Sheet, format Format) ([]byte, error) {
	var file string
	switch format {
	case FormatCSS:
		file = "stylesheet.css.tmpl"
	case FormatSCSS:
		file = "map.scss.tmpl"
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}

	tmplContent, err := templates.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s template: %w", format, err)
	}

	tmpl, err := template.New(file).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", format, err)
	}

	sheet.Title = commentText.Replace(sheet.Title)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, sheet); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", format, err)
	}
	return buf.Bytes(), nil
}

// commentText keeps a title inside a single-line /* */ or // comment.
var commentText = strings.NewReplacer("*/", "* /", "\r", " ", "\n", " ")

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a display name to a lower-case, dash-separated identifier.
func Slug(name string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

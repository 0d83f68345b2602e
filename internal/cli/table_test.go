package cli

import (
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable([]string{"HEX", "RGB", "NAME"})

	if table == nil {
		t.Fatal("NewTable returned nil")
	}
	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
	if table.Len() != 0 {
		t.Errorf("Expected no rows, got %d", table.Len())
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"HEX", "NAME"})

	table.AddRow([]string{"#FF0000", "Red"})
	table.AddRow([]string{"#00FF00"})
	table.AddRow([]string{"#0000FF", "Blue", "Extra"})

	if table.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", table.Len())
	}
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected short row to be padded, got %q", table.rows[1])
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected long row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"NAME", "CSS"})
	table.AddRow([]string{"Basic 1", "linear-gradient(to right, #FF0000 0%, #0000FF 100%)"})
	table.AddRow([]string{"Radial Center", "radial-gradient(circle at center, #FF0000 0%, #0000FF 100%)"})

	want := "NAME" + strings.Repeat(" ", 11) + "CSS\n" +
		strings.Repeat("-", 13) + "  " + strings.Repeat("-", 59) + "\n" +
		"Basic 1" + strings.Repeat(" ", 8) + "linear-gradient(to right, #FF0000 0%, #0000FF 100%)\n" +
		"Radial Center  radial-gradient(circle at center, #FF0000 0%, #0000FF 100%)\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	table := &Table{headers: []string{}, rows: make([][]string, 0), padding: 2}
	if output := table.Render(); output != "" {
		t.Errorf("Expected empty string for empty table, got: %q", output)
	}

	output := NewTable([]string{"Column1", "Column2"}).Render()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and separator lines, got %q", output)
	}
	if !strings.Contains(lines[1], "-------") {
		t.Errorf("Expected separator line with dashes, got: %q", lines[1])
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	table := NewTable([]string{"COLOUR", "NAME"})
	table.AddRow([]string{"\x1b[48;2;255;0;0m    \x1b[0m #FF0000", "Red"})
	table.AddRow([]string{"#0000FF", "Blue"})

	lines := strings.Split(table.Render(), "\n")
	if got := lines[1]; got != "------------  ----" {
		t.Errorf("separator = %q, escape codes should not count towards width", got)
	}
	if want := "#0000FF" + strings.Repeat(" ", 7) + "Blue"; lines[3] != want {
		t.Errorf("row = %q, want plain cell padded to 12 columns", lines[3])
	}
}

func TestTableWithSpecialCharacters(t *testing.T) {
	table := NewTable([]string{"Name", "Symbol"})
	table.AddRow([]string{"Test", "→ →"})
	table.AddRow([]string{"Special", "★ ☆"})

	output := table.Render()
	if !strings.Contains(output, "→") || !strings.Contains(output, "★") {
		t.Errorf("Output should contain special characters: %q", output)
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"→", 3, "→  "},
	}

	for _, tt := range tests {
		result := padRight(tt.input, tt.width)
		if result != tt.expected {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

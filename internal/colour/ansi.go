package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// SupportsANSIColours reports whether f is a terminal that should receive
// 24-bit colour escape codes. NO_COLOR always disables output.
func SupportsANSIColours(f *os.File) bool {
	if DisableColourOutput || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Preview returns an ANSI-coloured block for a colour.
// Width specifies how many characters wide the colour block should be.
func Preview(c Color, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour block with centred text drawn in
// whichever of black or white contrasts better with the colour.
func PreviewWithText(c Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := Black
	if ContrastRatio(c, White) > ContrastRatio(c, Black) {
		fg = White
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgCode := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bg + fgCode + displayText + ansiReset
}

// FormatWithPreview formats a colour with its preview block and hex code.
// When preview is false only the hex code is returned.
func FormatWithPreview(c Color, width int, preview bool) string {
	if !preview {
		return c.Hex()
	}
	return fmt.Sprintf("%s %s", Preview(c, width), c.Hex())
}

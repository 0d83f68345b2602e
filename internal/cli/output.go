package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/compression"
)

// writeOutput writes data to path, or to the command's stdout when path is empty.
// Paths ending in .xz or .gz are compressed.
func writeOutput(cmd *cobra.Command, logger hclog.Logger, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	logger.Debug("writing output", "path", path, "format", compression.FormatFor(path))
	if err := compression.WriteFile(path, data); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("wrote output", "path", path)
	return nil
}

// previewEnabled reports whether colour blocks should be drawn on the command's stdout.
func previewEnabled(cmd *cobra.Command, requested bool) bool {
	if !requested {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return colour.SupportsANSIColours(f)
}

// swatchLine writes a colour as "#RRGGBB  <extra>Name", optionally with a preview block.
func swatchLine(w io.Writer, c colour.Color, preview bool, extra string) {
	fmt.Fprintf(w, "  %s  %s%s\n", colour.FormatWithPreview(c, 4, preview), extra, c.Name())
}

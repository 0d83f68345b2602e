// Package compression writes and reads export files, compressing them with
// xz or gzip when the file name asks for it.
package compression

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/swatch/internal/security"
)

// maxDecompressedSize bounds ReadFile output.
const maxDecompressedSize = 100 * 1024 * 1024

// Format is a compression format selected by file extension.
type Format string

const (
	FormatNone Format = ""
	FormatXz   Format = "xz"
	FormatGzip Format = "gzip"
)

// FormatFor returns the compression format implied by path.
func FormatFor(path string) Format {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xz"):
		return FormatXz
	case strings.HasSuffix(lower, ".gz"):
		return FormatGzip
	default:
		return FormatNone
	}
}

// Compress compresses data with the given format.
func Compress(data []byte, format Format) ([]byte, error) {
	var buf bytes.Buffer
	var w io.WriteCloser

	switch format {
	case FormatNone:
		return data, nil
	case FormatXz:
		xzw, err := xz.NewWriter(&buf)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		w = xzw
	case FormatGzip:
		w = gzip.NewWriter(&buf)
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish compression: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte, format Format) ([]byte, error) {
	var r io.Reader

	switch format {
	case FormatNone:
		return data, nil
	case FormatXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	case FormatGzip:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	default:
		return nil, fmt.Errorf("unsupported compression format: %s", format)
	}

	out, err := io.ReadAll(security.NewLimitedReader(r, maxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}
	return out, nil
}

// WriteFile writes data to path, compressing it when path ends in .xz or .gz.
func WriteFile(path string, data []byte) error {
	out, err := Compress(data, FormatFor(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil { // #nosec G306 - Export files need standard read permissions
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadFile reads path, decompressing it when path ends in .xz or .gz.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified export path
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decompress(data, FormatFor(path))
}

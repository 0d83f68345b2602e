// Package security provides input validation utilities for Swatch.
package security

import (
	"fmt"
	"io"
	"mime"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultMaxImageSize is the largest image file accepted for analysis (10 MiB).
const DefaultMaxImageSize int64 = 10 << 20

// allowedImageTypes lists the media types that can be decoded for analysis.
var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
	"image/avif",
}

// AllowedImageTypes returns the accepted image media types.
func AllowedImageTypes() []string {
	return slices.Clone(allowedImageTypes)
}

// RejectedFileError explains why a candidate image file was not accepted.
type RejectedFileError struct {
	Reason string
}

func (e *RejectedFileError) Error() string {
	return e.Reason
}

// ValidateImageFile checks a candidate file's declared media type and size
// against the image allow-list and maxSize. A maxSize of zero uses
// DefaultMaxImageSize. It returns a *RejectedFileError with a human-readable
// reason when the file is not accepted.
func ValidateImageFile(mediaType string, size, maxSize int64) error {
	if maxSize <= 0 {
		maxSize = DefaultMaxImageSize
	}

	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil || mt == "" {
		return &RejectedFileError{Reason: fmt.Sprintf("unrecognised file type %q", mediaType)}
	}
	mt = strings.ToLower(mt)
	if mt == "image/jpg" {
		mt = "image/jpeg"
	}

	if !slices.Contains(allowedImageTypes, mt) {
		return &RejectedFileError{Reason: fmt.Sprintf(
			"unsupported file type %s (supported: %s)", mt, strings.Join(allowedImageTypes, ", "))}
	}

	if size <= 0 {
		return &RejectedFileError{Reason: "file is empty"}
	}

	if size > maxSize {
		return &RejectedFileError{Reason: fmt.Sprintf(
			"file is too large: %s (maximum: %s)",
			humanize.IBytes(uint64(size)), humanize.IBytes(uint64(maxSize)))}
	}

	return nil
}

// SafeUint8 safely converts an integer to uint8 with bounds checking.
// Values outside 0-255 are clamped to the valid range.
func SafeUint8(val int) uint8 {
	if val < 0 {
		return 0
	}
	if val > 255 {
		return 255
	}
	return uint8(val)
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Reading past the limit returns an error rather than silently truncating.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, fmt.Errorf("file size limit exceeded")
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

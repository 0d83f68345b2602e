// Package image loads image files and decodes them into pixels for analysis.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "github.com/gen2brain/avif" // Register AVIF format
	_ "golang.org/x/image/bmp"    // Register BMP format
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format

	"github.com/jmylchreest/swatch/internal/security"
)

// ErrDecode wraps every failure to turn file bytes into pixels.
var ErrDecode = errors.New("failed to decode image")

// sniffLen is the number of bytes inspected to detect the media type.
const sniffLen = 512

// extensionTypes covers formats that content sniffing does not recognise.
var extensionTypes = map[string]string{
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".bmp":  "image/bmp",
	".avif": "image/avif",
	".webp": "image/webp",
}

// Options configures the loader.
type Options struct {
	// MaxFileSize is the largest accepted file in bytes. Zero uses security.DefaultMaxImageSize.
	MaxFileSize int64

	// MaxDimension downscales images whose width or height exceeds it,
	// using nearest-neighbour sampling so no new colours are introduced.
	// Zero disables downscaling.
	MaxDimension int
}

// Loader handles loading images from the local filesystem.
type Loader interface {
	// Load validates, reads and decodes the image at path.
	Load(ctx context.Context, path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct {
	opts Options
}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader(opts Options) *FileLoader {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = security.DefaultMaxImageSize
	}
	return &FileLoader{opts: opts}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF, AVIF.
// A cancelled context stops the load and no image is returned.
func (l *FileLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(file, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	header = header[:n]

	if err := security.ValidateImageFile(DetectMediaType(path, header), info.Size(), l.opts.MaxFileSize); err != nil {
		return nil, err
	}

	body := io.MultiReader(bytes.NewReader(header), security.NewLimitedReader(file, l.opts.MaxFileSize+1-int64(n)))
	img, err := Decode(ctx, body)
	if err != nil {
		return nil, err
	}

	return Downscale(img, l.opts.MaxDimension), nil
}

// Decode decodes an image from r. It returns an error wrapping ErrDecode
// on failure and never returns a partial image.
func Decode(ctx context.Context, r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w (format: %s): %w", ErrDecode, format, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return img, nil
}

// DetectMediaType sniffs the media type from the file header, falling back
// to the file extension for formats the sniffer does not know. An empty
// header is typed by extension alone.
func DetectMediaType(path string, header []byte) string {
	if len(header) == 0 {
		if mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); mt != "" {
			return mt
		}
	}
	mt := http.DetectContentType(header)
	if strings.HasPrefix(mt, "image/") {
		return mt
	}
	if ext, ok := extensionTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ext
	}
	return mt
}

// Downscale shrinks img so neither side exceeds maxDimension, keeping the
// aspect ratio. Images already within bounds, or a maxDimension of zero,
// are returned unchanged.
func Downscale(img image.Image, maxDimension int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxDimension <= 0 || (w <= maxDimension && h <= maxDimension) {
		return img
	}

	scale := float64(maxDimension) / float64(max(w, h))
	nw := max(1, int(float64(w)*scale))
	nh := max(1, int(float64(h)*scale))

	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff", ".avif"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectoryForImages scans a directory and returns all image files in
// name order. It does not recurse into subdirectories, but follows symlinks.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// For symlinks, stat the target to determine if it's a file.
		info, err := os.Stat(fullPath)
		if err != nil {
			continue
		}
		if info.IsDir() {
			continue
		}
		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}

	return imageFiles, nil
}

// ExpandPaths replaces every directory in paths with the images it contains.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to access path: %w", err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		files, err := ScanDirectoryForImages(p)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}

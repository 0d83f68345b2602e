// Package cluster groups the pixels of a decoded image into dominant colours.
package cluster

import (
	"fmt"
	"image"
	"image/draw"
)

// Pixels is a decoded image as a flat, row-major RGBA byte buffer
// (4 bytes per pixel, non-premultiplied alpha).
type Pixels struct {
	Width  int
	Height int
	Data   []uint8
}

// NewPixels wraps a flat RGBA buffer, checking that its length matches the dimensions.
func NewPixels(width, height int, data []uint8) (*Pixels, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("pixel buffer has %d bytes, want %d for %dx%d RGBA", len(data), width*height*4, width, height)
	}
	return &Pixels{Width: width, Height: height, Data: data}, nil
}

// FromImage converts any image into a Pixels buffer.
func FromImage(img image.Image) *Pixels {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	n := 4 * bounds.Dx() * bounds.Dy()
	// SubImage keeps the parent buffer's tail, so Pix may run past the bounds.
	if !ok || nrgba.Stride != 4*bounds.Dx() || bounds.Min != (image.Point{}) || len(nrgba.Pix) < n {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return &Pixels{Width: bounds.Dx(), Height: bounds.Dy(), Data: nrgba.Pix[:n]}
}

// Len returns the number of pixels in the buffer.
func (p *Pixels) Len() int {
	return len(p.Data) / 4
}

// At returns the RGBA values of the i-th pixel in row-major order.
func (p *Pixels) At(i int) (r, g, b, a uint8) {
	o := i * 4
	return p.Data[o], p.Data[o+1], p.Data[o+2], p.Data[o+3]
}

// Package image1bit provides a 1-bit image format with vertical byte
// packing, matching the page-organized RAM of SSD1306-class displays.
//
// Each byte holds 8 vertically stacked pixels; bit 0 is the topmost row.
// This package provides the Bit color type and the VerticalLSB image
// implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Bit is a 1-bit color: a pixel is either On or Off.
type Bit bool

// Possible bit values.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the bit to standard RGBA: opaque white when On, opaque
// black when Off.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "on"
	}
	return "off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B, thresholded
	// at half intensity.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image where each byte packs 8 vertically stacked
// pixels, least significant bit on top. The byte layout is the one
// page-organized display controllers expect: byte (y/8)*Stride + x, bit
// y%8.
type VerticalLSB struct {
	Pix    []byte          // Pixel data, one byte per column per page
	Stride int             // Bytes per page row (the width in columns)
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// Heights that are not a multiple of 8 round the buffer up to whole pages;
// the bits past the height are never addressed.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &VerticalLSB{Rect: r}
	}

	pages := (h + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*pages),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit at (x, y). Out-of-bounds coordinates return Off.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: each byte holds 8 vertically stacked pixels of one
// column, bit 0 on top.
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	dy := y - p.Rect.Min.Y
	offset = (dy/8)*p.Stride + (x - p.Rect.Min.X)
	mask = 1 << uint(dy&7)
	return
}

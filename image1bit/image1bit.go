// Package image1bit provides a 1-bit monochrome image format matching the IS31FL3728 column registers.
//
// Each matrix column is stored in one byte with the top row in the most
// significant bit. This package provides the Bit color type, the VerticalMSB
// image implementation and a Pixel iterator.
package image1bit

import (
	"image"
	"image/color"
	"iter"
)

// MaxHeight is the number of rows a single column byte can hold.
const MaxHeight = 8

// Bit represents a single LED: On (lit) or Off (dark).
type Bit bool

const (
	On  = Bit(true)
	Off = Bit(false)
)

// RGBA converts the Bit color to standard RGBA.
// On is opaque white, Off is opaque black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}
	// Same luma weights as color.GrayModel, 16-bit range.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit. Transparent colors are Off, everything
// else is On when its luminance is at least half scale.
var BitModel = color.ModelFunc(toBit)

// VerticalMSB is a 1-bit image where each byte holds one column.
// Bit 7 of Pix[x] is the pixel at (x, Rect.Min.Y).
type VerticalMSB struct {
	Pix  []byte          // One byte per column
	Rect image.Rectangle // Image bounds
}

// NewVerticalMSB creates a new VerticalMSB image with the specified bounds.
// The height must not exceed MaxHeight.
func NewVerticalMSB(r image.Rectangle) *VerticalMSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalMSB{Rect: r}
	}
	if h > MaxHeight {
		panic("image1bit: height must be at most 8")
	}
	return &VerticalMSB{
		Pix:  make([]byte, w),
		Rect: r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalMSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalMSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalMSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalMSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	if offset >= len(p.Pix) {
		return Off
	}
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalMSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
func (p *VerticalMSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if offset >= len(p.Pix) {
		return
	}
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// pixOffset returns the column byte and bit mask for the pixel at (x, y).
func (p *VerticalMSB) pixOffset(x, y int) (offset int, mask byte) {
	offset = x - p.Rect.Min.X
	mask = 0x80 >> uint(y-p.Rect.Min.Y)
	return
}

// Pixel is a single colored coordinate.
type Pixel struct {
	image.Point
	C Bit
}

// Pixels yields every point of r inside img's bounds, converted through BitModel.
// Points are visited row by row.
func Pixels(img image.Image, r image.Rectangle) iter.Seq[Pixel] {
	r = r.Intersect(img.Bounds())
	return func(yield func(Pixel) bool) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				c := BitModel.Convert(img.At(x, y)).(Bit)
				if !yield(Pixel{Point: image.Pt(x, y), C: c}) {
					return
				}
			}
		}
	}
}

package is31fl3728

import (
	"image"
	"image/color"
	"iter"

	"github.com/flavioheleno/is31fl3728/image1bit"
	"periph.io/x/conn/v3/display"
)

var _ display.Drawer = (*Dev)(nil)

// ColorModel returns the color model of the matrix.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the matrix, one pixel per LED.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.cols, d.rows)
}

// Draw draws src onto the matrix.
// The dst rectangle specifies the destination region on the matrix.
// The src image is positioned at src point sp within the destination.
//
// Pixels outside dst are turned off and the whole matrix is rewritten. An
// empty dst writes nothing.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	// Fast path: the source already holds the column bytes
	if img, ok := src.(*image1bit.VerticalMSB); ok {
		if dst == d.Bounds() && sp == (image.Point{}) && img.Rect == d.Bounds() && len(img.Pix) == d.cols {
			return d.DrawColumns(img.Pix)
		}
	}

	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}
	delta := sp.Sub(dst.Min)
	srcRect := dst.Add(delta)

	return d.DrawPixels(func(yield func(image1bit.Pixel) bool) {
		for p := range image1bit.Pixels(src, srcRect) {
			p.Point = p.Point.Sub(delta)
			if !yield(p) {
				return
			}
		}
	})
}

// DrawPixels rasterizes pixels and writes every column followed by one
// update. Pixels outside the matrix are ignored, as are Off pixels: the
// matrix starts from a dark frame.
func (d *Dev) DrawPixels(pixels iter.Seq[image1bit.Pixel]) error {
	var buf [MaxColumns]byte
	bounds := d.Bounds()
	for p := range pixels {
		if p.C == image1bit.Off || !p.In(bounds) {
			continue
		}
		buf[p.X] |= 0x80 >> uint(p.Y)
	}
	return d.DrawColumns(buf[:d.cols])
}

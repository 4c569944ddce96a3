package is31fl3728

import (
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/flavioheleno/is31fl3728/image1bit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// columnsOf extracts the column payloads of a frame and checks the trailing update.
func columnsOf(t *testing.T, w [][]byte) []byte {
	t.Helper()
	require.NotEmpty(t, w)
	assert.Equal(t, []byte{0x0C, 0x00}, w[len(w)-1])
	out := make([]byte, 0, len(w)-1)
	for i, op := range w[:len(w)-1] {
		assert.Equal(t, byte(i+1), op[0])
		out = append(out, op[1])
	}
	return out
}

func TestDevBounds(t *testing.T) {
	tests := []struct {
		dims MatrixDimensions
		want image.Rectangle
	}{
		{M8x8, image.Rect(0, 0, 8, 8)},
		{M7x9, image.Rect(0, 0, 9, 7)},
		{M6x10, image.Rect(0, 0, 10, 6)},
		{M5x11, image.Rect(0, 0, 11, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.dims.String(), func(t *testing.T) {
			d, _ := newTestDev(t, &Opts{Dimensions: tt.dims})
			assert.Equal(t, tt.want, d.Bounds())
		})
	}
}

func TestDevColorModel(t *testing.T) {
	d, _ := newTestDev(t, nil)
	assert.Equal(t, image1bit.BitModel, d.ColorModel())
}

func TestDrawPixels(t *testing.T) {
	d, r := newTestDev(t, nil)

	pixels := []image1bit.Pixel{
		{Point: image.Pt(0, 0), C: image1bit.On},
		{Point: image.Pt(1, 7), C: image1bit.On},
		{Point: image.Pt(3, 2), C: image1bit.Off},
		{Point: image.Pt(8, 0), C: image1bit.On},
		{Point: image.Pt(-1, 3), C: image1bit.On},
		{Point: image.Pt(2, 8), C: image1bit.On},
		{Point: image.Pt(2, -1), C: image1bit.On},
		{Point: image.Pt(0, 0), C: image1bit.On},
	}
	require.NoError(t, d.DrawPixels(slices.Values(pixels)))

	assert.Equal(t, []byte{0x80, 0x01, 0, 0, 0, 0, 0, 0}, columnsOf(t, writes(t, r)))
}

func TestDrawPixelsWideMatrix(t *testing.T) {
	d, r := newTestDev(t, &Opts{Dimensions: M5x11})

	pixels := []image1bit.Pixel{
		{Point: image.Pt(10, 4), C: image1bit.On},
		{Point: image.Pt(10, 5), C: image1bit.On},
		{Point: image.Pt(11, 0), C: image1bit.On},
	}
	require.NoError(t, d.DrawPixels(slices.Values(pixels)))

	want := make([]byte, 11)
	want[10] = 0x08
	assert.Equal(t, want, columnsOf(t, writes(t, r)))
}

func TestDrawPixelsEmpty(t *testing.T) {
	d, r := newTestDev(t, &Opts{Dimensions: M6x10})

	require.NoError(t, d.DrawPixels(slices.Values([]image1bit.Pixel(nil))))

	assert.Equal(t, make([]byte, 10), columnsOf(t, writes(t, r)))
}

func TestDrawGray(t *testing.T) {
	d, r := newTestDev(t, nil)

	src := image.NewGray(image.Rect(0, 0, 8, 8))
	for i, row := range heart {
		for x := 0; x < 8; x++ {
			if row&(0x80>>x) != 0 {
				src.SetGray(x, i, color.Gray{Y: 0xFF})
			}
		}
	}
	require.NoError(t, d.Draw(d.Bounds(), src, image.Point{}))

	assert.Equal(t, heartColumns[:], columnsOf(t, writes(t, r)))
}

func TestDrawOffset(t *testing.T) {
	d, r := newTestDev(t, &Opts{Dimensions: M5x11})

	src := image.NewGray(image.Rect(0, 0, 3, 3))
	src.SetGray(1, 1, color.Gray{Y: 0xFF})
	require.NoError(t, d.Draw(image.Rect(4, 2, 7, 5), src, image.Point{}))

	want := make([]byte, 11)
	want[5] = 0x10
	assert.Equal(t, want, columnsOf(t, writes(t, r)))
}

func TestDrawSourcePoint(t *testing.T) {
	d, r := newTestDev(t, nil)

	src := image1bit.NewVerticalMSB(image.Rect(0, 0, 4, 4))
	src.SetBit(3, 3, image1bit.On)
	src.SetBit(0, 0, image1bit.On)
	require.NoError(t, d.Draw(d.Bounds(), src, image.Pt(2, 2)))

	// Only (3,3) falls inside the source window, it lands on (1,1).
	assert.Equal(t, []byte{0, 0x40, 0, 0, 0, 0, 0, 0}, columnsOf(t, writes(t, r)))
}

func TestDrawFastPath(t *testing.T) {
	d, r := newTestDev(t, &Opts{Dimensions: M7x9})

	src := image1bit.NewVerticalMSB(d.Bounds())
	copy(src.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, d.Draw(d.Bounds(), src, image.Point{}))

	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, columnsOf(t, writes(t, r)))
}

func TestDrawEmptyDestination(t *testing.T) {
	d, r := newTestDev(t, nil)

	require.NoError(t, d.Draw(image.Rect(20, 20, 30, 30), image.NewGray(image.Rect(0, 0, 8, 8)), image.Point{}))

	assert.Empty(t, r.Ops)
}

func TestDrawUniform(t *testing.T) {
	d, r := newTestDev(t, &Opts{Dimensions: M6x10})

	require.NoError(t, d.Draw(d.Bounds(), image.NewUniform(color.White), image.Point{}))

	want := make([]byte, 10)
	for i := range want {
		want[i] = 0xFC
	}
	assert.Equal(t, want, columnsOf(t, writes(t, r)))
}

func TestDrawPixelsOnOffMix(t *testing.T) {
	d, r := newTestDev(t, &Opts{Dimensions: M7x9})

	pixels := []image1bit.Pixel{
		{Point: image.Pt(8, 6), C: image1bit.On},
		{Point: image.Pt(8, 0), C: image1bit.Off},
		{Point: image.Pt(4, 3), C: image1bit.On},
	}
	require.NoError(t, d.DrawPixels(slices.Values(pixels)))

	want := make([]byte, 9)
	want[4] = 0x10
	want[8] = 0x02
	assert.Equal(t, want, columnsOf(t, writes(t, r)))
}

func TestDrawMismatchedPixLength(t *testing.T) {
	tests := []struct {
		name string
		pix  []byte
		want []byte
	}{
		{"short", []byte{0xFF, 0x81, 0x18}, []byte{0xFF, 0x81, 0x18, 0, 0, 0, 0, 0}},
		{"long", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := newTestDev(t, nil)

			src := &image1bit.VerticalMSB{Pix: tt.pix, Rect: d.Bounds()}
			require.NoError(t, d.Draw(d.Bounds(), src, image.Point{}))

			assert.Equal(t, tt.want, columnsOf(t, writes(t, r)))
		})
	}
}

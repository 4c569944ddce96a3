// Package is31fl3728 controls an IS31FL3728 LED matrix driver via I²C.
//
// The IS31FL3728 drives up to 88 LEDs arranged as 8x8, 7x9, 6x10 or 5x11.
//
// See the examples for how to use this package.
package is31fl3728

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddress is the bus address with the AD pin tied to GND.
const DefaultAddress uint16 = 0x60

// Register addresses.
const (
	regConfiguration  byte = 0x00
	regUpdateColumn   byte = 0x0C
	regLightingEffect byte = 0x0D
	regAudioEQ        byte = 0x0F
)

// Register bits.
const (
	configAudioInput byte = 0b0_0000_1_00
	configShutdown   byte = 0b1_0000_0_00
	intensityMask    byte = 0b0_000_1111
	gainMask         byte = 0b0_111_0000
	audioEQEnable    byte = 0b0_1_000000
)

const (
	defaultConfiguration  byte = 0
	defaultLightingEffect      = byte(DefaultAudioInputGain) | byte(DefaultLightingIntensity)
)

// ErrIncorrectMatrixSize is returned by DrawBitmap on a geometry other than 8x8.
var ErrIncorrectMatrixSize = errors.New("is31fl3728: bitmap requires an 8x8 matrix")

// ColumnError is returned when a column number is outside 1..Max.
type ColumnError struct {
	Column int
	Max    int
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("is31fl3728: invalid column number %d, must be between 1 and %d", e.Column, e.Max)
}

// Opts is the configuration for the IS31FL3728.
type Opts struct {
	// Matrix geometry (default: M8x8)
	Dimensions MatrixDimensions

	// Enable the audio input, the matrix then reacts to the audio signal
	AudioInput bool

	// Optional logger, register writes are logged at debug level
	Logger *zap.Logger
}

// Dev is the device handle for the IS31FL3728.
type Dev struct {
	// Communication
	c conn.Conn

	// Matrix geometry
	dimensions MatrixDimensions
	audioInput bool
	rows, cols int

	// Shadow registers, always equal to the last value written to the chip
	config   byte
	lighting byte

	log *zap.Logger
}

// NewI2C creates a new IS31FL3728 device connected via I²C at addr.
//
// opts can be nil to use defaults (8x8 matrix, audio input off).
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	return New(&i2c.Dev{Bus: b, Addr: addr}, opts)
}

// New creates a new IS31FL3728 device writing its registers through c.
//
// Every register access is a single c.Tx call with a nil read buffer. The
// device takes ownership of c.
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Dimensions: M8x8}
	}

	rows, cols, ok := opts.Dimensions.Size()
	if !ok {
		return nil, fmt.Errorf("is31fl3728: unsupported matrix dimensions %d", byte(opts.Dimensions))
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dev{
		c:          c,
		dimensions: opts.Dimensions,
		audioInput: opts.AudioInput,
		rows:       rows,
		cols:       cols,
		config:     defaultConfiguration,
		lighting:   defaultLightingEffect,
		log:        log.With(zap.String("dev", "is31fl3728"), zap.Stringer("size", opts.Dimensions)),
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init writes the configuration register when it differs from the power-on value.
func (d *Dev) init() error {
	configuration := byte(d.dimensions)
	if d.audioInput {
		configuration |= configAudioInput
	}
	if configuration == d.config {
		return nil
	}
	if err := d.writeRegister("configuration", regConfiguration, configuration); err != nil {
		return err
	}
	d.config = configuration
	return nil
}

// writeRegister sends a single addressed register write.
func (d *Dev) writeRegister(name string, reg, value byte) error {
	if ce := d.log.Check(zap.DebugLevel, "write"); ce != nil {
		ce.Write(zap.String("reg", name), zap.Uint8("addr", reg), zap.String("value", fmt.Sprintf("%08b", value)))
	}
	if err := d.c.Tx([]byte{reg, value}, nil); err != nil {
		return fmt.Errorf("is31fl3728: write %s: %w", name, err)
	}
	return nil
}

// Rows returns the number of rows of the matrix.
func (d *Dev) Rows() int {
	return d.rows
}

// Cols returns the number of columns of the matrix.
func (d *Dev) Cols() int {
	return d.cols
}

// Dimensions returns the matrix geometry.
func (d *Dev) Dimensions() MatrixDimensions {
	return d.dimensions
}

// Update copies the temporary column registers to the displayed ones.
// Columns sent with SendColumn become visible only after Update.
func (d *Dev) Update() error {
	return d.writeRegister("update", regUpdateColumn, 0)
}

// SendColumn writes column data to the temporary register of column n.
// Column numbers start at 1.
func (d *Dev) SendColumn(n int, column byte) error {
	if n < 1 || n > d.cols {
		return &ColumnError{Column: n, Max: d.cols}
	}
	return d.writeRegister(columnNames[n], byte(n), column)
}

var columnNames = [MaxColumns + 1]string{
	"", "column 1", "column 2", "column 3", "column 4", "column 5", "column 6",
	"column 7", "column 8", "column 9", "column 10", "column 11",
}

// DrawColumn sends column n and updates the display.
// Column numbers start at 1.
func (d *Dev) DrawColumn(n int, column byte) error {
	if err := d.SendColumn(n, column); err != nil {
		return err
	}
	return d.Update()
}

// DrawColumns sends columns[i] to column i+1 and updates the display once.
//
// It stops at the first failure. Columns already sent stay in the temporary
// registers until the next successful Update.
func (d *Dev) DrawColumns(columns []byte) error {
	for i, column := range columns {
		if err := d.SendColumn(i+1, column); err != nil {
			return err
		}
	}
	return d.Update()
}

// DrawBitmap draws an 8x8 picture given as rows, bit 7 being the leftmost
// pixel. This is the format of most LED matrix editors, e.g.
// https://xantorohara.github.io/led-matrix-editor/
func (d *Dev) DrawBitmap(rows [8]byte) error {
	if d.dimensions != M8x8 {
		return ErrIncorrectMatrixSize
	}
	columns := Transpose(rows)
	return d.DrawColumns(columns[:])
}

// Transpose converts 8 row bytes into 8 column bytes.
//
// Bit 7-c of rows[r] becomes bit 7-r of column c, so the top-left pixel stays
// in bit 7 of the first column.
func Transpose(rows [8]byte) [8]byte {
	var columns [8]byte
	columnMask := byte(0b1000_0000)
	for c := 0; c < 8; c++ {
		var column byte
		for r := 0; r < 8; r++ {
			pixel := rows[r] & columnMask
			if c < r {
				column |= pixel >> (r - c)
			} else {
				column |= pixel << (c - r)
			}
		}
		columns[c] = column
		columnMask >>= 1
	}
	return columns
}

// Clear turns every LED off. Use SoftwareShutdown to blank the matrix while
// keeping the picture.
func (d *Dev) Clear() error {
	return d.fillColumns(0x00)
}

// Fill turns every LED on.
func (d *Dev) Fill() error {
	// Bits below the last row are ignored by the chip.
	return d.fillColumns(0xFF)
}

func (d *Dev) fillColumns(column byte) error {
	for n := 1; n <= d.cols; n++ {
		if err := d.SendColumn(n, column); err != nil {
			return err
		}
	}
	return d.Update()
}

// updateLightingEffect writes the lighting effect register when it changed.
func (d *Dev) updateLightingEffect(value byte) error {
	if value == d.lighting {
		return nil
	}
	if err := d.writeRegister("lighting effect", regLightingEffect, value); err != nil {
		return err
	}
	d.lighting = value
	return nil
}

// SetIntensity sets the row current. The audio input gain is kept.
// Nothing is written when the intensity is already set.
func (d *Dev) SetIntensity(l LightingIntensity) error {
	return d.updateLightingEffect(d.lighting&^intensityMask | byte(l)&intensityMask)
}

// SetAudioInputGain sets the audio input gain. The intensity is kept.
// Nothing is written when the gain is already set.
func (d *Dev) SetAudioInputGain(g AudioInputGain) error {
	return d.updateLightingEffect(d.lighting&^gainMask | byte(g)&gainMask)
}

// Intensity returns the intensity last written to the chip.
func (d *Dev) Intensity() LightingIntensity {
	return LightingIntensity(d.lighting & intensityMask)
}

// AudioInputGain returns the audio input gain last written to the chip.
func (d *Dev) AudioInputGain() AudioInputGain {
	return AudioInputGain(d.lighting & gainMask)
}

// AudioEQEnable enables the audio equalizer.
func (d *Dev) AudioEQEnable() error {
	return d.writeRegister("audio eq", regAudioEQ, audioEQEnable)
}

// AudioEQDisable disables the audio equalizer.
func (d *Dev) AudioEQDisable() error {
	return d.writeRegister("audio eq", regAudioEQ, 0)
}

// SoftwareShutdown turns the matrix output off. Registers are kept, use
// SoftwareOn to show the picture again.
func (d *Dev) SoftwareShutdown() error {
	return d.writeConfig(d.config | configShutdown)
}

// SoftwareOn turns the matrix output on.
func (d *Dev) SoftwareOn() error {
	return d.writeConfig(d.config &^ configShutdown)
}

// writeConfig always writes, shutdown and on are explicit requests.
func (d *Dev) writeConfig(configuration byte) error {
	if err := d.writeRegister("configuration", regConfiguration, configuration); err != nil {
		return err
	}
	d.config = configuration
	return nil
}

// Halt turns the matrix output off.
// It implements conn.Resource.
func (d *Dev) Halt() error {
	return d.SoftwareShutdown()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("is31fl3728.Dev{%dx%d}", d.cols, d.rows)
}

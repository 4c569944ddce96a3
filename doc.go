// Package is31fl3728 controls an IS31FL3728 LED matrix driver via I²C.
//
// The IS31FL3728 drives a single-color LED matrix of 8x8, 7x9, 6x10 or 5x11
// LEDs. Each matrix column is one register, written as a byte where bit 7 is
// the top row. This driver implements the display.Drawer interface from
// periph.io.
//
// # Chip Characteristics
//
// - 4 matrix geometries, selected at initialization
// - 15 row current levels from 5mA to 75mA
// - Audio input with 8 gain levels and an equalizer mode
// - Software shutdown keeping the displayed picture
// - Double buffered columns: writes go to temporary registers and become
// visible on Update
//
// # Hardware Connection
//
// Connect the IS31FL3728 to your system via I²C:
//
//	Chip Pin → System Pin
//	GND      → GND
//	VCC      → 3.3V
//	SDA      → I²C Data (SDA)
//	SCL      → I²C Clock (SCL)
//	AD       → GND, VCC, SCL or SDA (address 0x60 to 0x63)
//
// # Basic Usage
//
// Example of creating and using the matrix:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"github.com/flavioheleno/is31fl3728"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//
//		// Create device
//		dev, _ := is31fl3728.NewI2C(bus, is31fl3728.DefaultAddress, &is31fl3728.Opts{
//			Dimensions: is31fl3728.M8x8,
//		})
//		defer dev.Halt()
//
//		// Draw a heart, one byte per row, bit 7 on the left
//		dev.DrawBitmap([8]byte{0x00, 0x66, 0xFF, 0xFF, 0xFF, 0x7E, 0x3C, 0x18})
//		dev.SetIntensity(is31fl3728.C20mA)
//	}
//
// # Drawing Modes
//
// ## Column Writes
//
// Columns are numbered from 1. SendColumn only fills the temporary register,
// Update shows every pending column at once:
//
//	dev.SendColumn(1, 0b1000_0001)
//	dev.SendColumn(2, 0b0100_0010)
//	dev.Update()
//
// DrawColumn and DrawColumns combine both steps. Clear and Fill set every
// column.
//
// ## Bitmaps
//
// DrawBitmap takes 8 rows as exported by LED matrix editors and transposes
// them to columns. It needs an 8x8 matrix.
//
// ## Images
//
// Draw accepts any image.Image. Colors are converted with image1bit.BitModel,
// pixels outside the matrix are clipped:
//
//	img := image1bit.NewVerticalMSB(dev.Bounds())
//	img.SetBit(0, 0, image1bit.On)
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// DrawPixels accepts a sequence of pixels instead.
//
// # Intensity and Audio
//
// SetIntensity and SetAudioInputGain share the lighting effect register. The
// driver keeps a copy of it and skips writes that would not change it, so
// calling SetIntensity in an animation loop costs nothing when the level
// stays the same. LightingIntensity.Next and Prev wrap around for fades.
//
// # Errors
//
// Column numbers outside the matrix return a *ColumnError and
// DrawBitmap on a non 8x8 matrix returns ErrIncorrectMatrixSize, both before
// any bus traffic. Bus failures are wrapped and returned; the driver never
// retries.
//
// # Datasheet
//
// https://www.lumissil.com/assets/pdf/core/IS31FL3728_DS.pdf
package is31fl3728

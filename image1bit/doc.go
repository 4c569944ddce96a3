// Package image1bit provides a 1-bit monochrome image format for the IS31FL3728 LED matrix driver.
//
// The IS31FL3728 stores one byte per matrix column. Bit 7 is the top row and
// bit 0 the bottom one, so a column never holds more than 8 pixels.
//
// Memory layout example for a 3x4 image:
//
//	        col 0  col 1  col 2
//	row 0   on     off    on
//	row 1   on     on     off
//	row 2   off    on     off
//	row 3   off    off    on
//	Bytes:  0xC0   0x60   0x90
//
// This package provides:
//
// - Bit: A color type representing a lit or dark LED
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalMSB: An image.Image implementation matching the column registers
// - Pixel and Pixels: a coordinate/color pair and an iterator over an image
//
// Example usage:
//
//	// Create an 8x8 image
//	img := image1bit.NewVerticalMSB(image.Rect(0, 0, 8, 8))
//
//	// Light a pixel
//	img.SetBit(2, 3, image1bit.On)
//
//	// Get a pixel
//	println(img.BitAt(2, 3)) // Output: true
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit

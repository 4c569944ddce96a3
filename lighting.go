package is31fl3728

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// MatrixDimensions selects one of the matrix geometries the chip can scan.
// The value is the matrix size code of the configuration register.
type MatrixDimensions byte

const (
	M8x8  MatrixDimensions = 0b00 // 8 rows, 8 columns
	M7x9  MatrixDimensions = 0b01 // 7 rows, 9 columns
	M6x10 MatrixDimensions = 0b10 // 6 rows, 10 columns
	M5x11 MatrixDimensions = 0b11 // 5 rows, 11 columns
)

// MaxColumns is the widest column count across all geometries.
const MaxColumns = 11

// Size returns the (rows, columns) pair of the geometry.
// ok is false for values outside the four supported geometries.
func (m MatrixDimensions) Size() (rows, cols int, ok bool) {
	switch m {
	case M8x8:
		return 8, 8, true
	case M7x9:
		return 7, 9, true
	case M6x10:
		return 6, 10, true
	case M5x11:
		return 5, 11, true
	}
	return 0, 0, false
}

func (m MatrixDimensions) String() string {
	rows, cols, ok := m.Size()
	if !ok {
		return fmt.Sprintf("MatrixDimensions(%d)", byte(m))
	}
	return fmt.Sprintf("%dx%d", rows, cols)
}

// LightingIntensity is the row current setting of the lighting effect
// register (bits 0-3).
type LightingIntensity byte

const (
	C05mA LightingIntensity = 0b1000
	C10mA LightingIntensity = 0b1001
	C15mA LightingIntensity = 0b1010
	C20mA LightingIntensity = 0b1011
	C25mA LightingIntensity = 0b1100
	C30mA LightingIntensity = 0b1101
	C35mA LightingIntensity = 0b1110
	C40mA LightingIntensity = 0b0000
	C45mA LightingIntensity = 0b0001
	C50mA LightingIntensity = 0b0010
	C55mA LightingIntensity = 0b0011
	C60mA LightingIntensity = 0b0100
	C65mA LightingIntensity = 0b0101
	C70mA LightingIntensity = 0b0110
	C75mA LightingIntensity = 0b0111
)

// DefaultLightingIntensity is the power-on intensity of the chip.
const DefaultLightingIntensity = C40mA

// intensities lists every level from dimmest to brightest.
var intensities = [...]LightingIntensity{
	C05mA, C10mA, C15mA, C20mA, C25mA, C30mA, C35mA, C40mA,
	C45mA, C50mA, C55mA, C60mA, C65mA, C70mA, C75mA,
}

// index returns the position of l in intensities, or -1.
func (l LightingIntensity) index() int {
	for i, v := range intensities {
		if v == l {
			return i
		}
	}
	return -1
}

// Next returns the next brighter level. C75mA wraps to C05mA.
func (l LightingIntensity) Next() LightingIntensity {
	i := l.index()
	if i < 0 {
		return DefaultLightingIntensity
	}
	return intensities[(i+1)%len(intensities)]
}

// Prev returns the next dimmer level. C05mA wraps to C75mA.
func (l LightingIntensity) Prev() LightingIntensity {
	i := l.index()
	if i < 0 {
		return DefaultLightingIntensity
	}
	return intensities[(i+len(intensities)-1)%len(intensities)]
}

// Current returns the row current selected by the level.
func (l LightingIntensity) Current() physic.ElectricCurrent {
	i := l.index()
	if i < 0 {
		return 0
	}
	return physic.ElectricCurrent(5*(i+1)) * physic.MilliAmpere
}

func (l LightingIntensity) String() string {
	i := l.index()
	if i < 0 {
		return fmt.Sprintf("LightingIntensity(%#04b)", byte(l))
	}
	return fmt.Sprintf("%dmA", 5*(i+1))
}

// AudioInputGain is the audio input gain setting of the lighting effect
// register (bits 4-6).
type AudioInputGain byte

const (
	G00dB     AudioInputGain = 0b0_000_0000
	G03dB     AudioInputGain = 0b0_001_0000
	G06dB     AudioInputGain = 0b0_010_0000
	G09dB     AudioInputGain = 0b0_011_0000
	G12dB     AudioInputGain = 0b0_100_0000
	G15dB     AudioInputGain = 0b0_101_0000
	G18dB     AudioInputGain = 0b0_110_0000
	GMinus6dB AudioInputGain = 0b0_111_0000
)

// DefaultAudioInputGain is the power-on gain of the chip.
const DefaultAudioInputGain = G00dB

// gains lists every gain from lowest to highest.
var gains = [...]AudioInputGain{
	GMinus6dB, G00dB, G03dB, G06dB, G09dB, G12dB, G15dB, G18dB,
}

func (g AudioInputGain) index() int {
	for i, v := range gains {
		if v == g {
			return i
		}
	}
	return -1
}

// Next returns the next higher gain. G18dB wraps to GMinus6dB.
func (g AudioInputGain) Next() AudioInputGain {
	i := g.index()
	if i < 0 {
		return DefaultAudioInputGain
	}
	return gains[(i+1)%len(gains)]
}

// Prev returns the next lower gain. GMinus6dB wraps to G18dB.
func (g AudioInputGain) Prev() AudioInputGain {
	i := g.index()
	if i < 0 {
		return DefaultAudioInputGain
	}
	return gains[(i+len(gains)-1)%len(gains)]
}

// Decibels returns the gain in dB.
func (g AudioInputGain) Decibels() int {
	if g == GMinus6dB {
		return -6
	}
	return 3 * int(g>>4)
}

func (g AudioInputGain) String() string {
	if g.index() < 0 {
		return fmt.Sprintf("AudioInputGain(%#02x)", byte(g))
	}
	return fmt.Sprintf("%+ddB", g.Decibels())
}

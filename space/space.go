// Package space defines the color-space value types exchanged with The Color API.
//
// Every space exists twice: once with the scaled channel values the service
// reports (0-255 for RGB, 0-100 for saturation and lightness, and so on) and
// once with the 0.0-1.0 fractions. Both are carried together by Color.
package space

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrUnsupported is returned when a color space cannot be used to query the service.
var ErrUnsupported = errors.New("color space is not supported as a query")

// Number is the set of channel value types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Color holds the scaled and fractional representations of one color in one space.
type Color[S, F any] struct {
	// Values are the scaled channel values.
	Values S `json:"values" yaml:"values"`
	// Fraction are the same channels expressed as 0.0-1.0 fractions.
	Fraction F `json:"fraction" yaml:"fraction"`
}

// Of pairs a scaled value with its fractional counterpart.
func Of[S, F any](values S, fraction F) Color[S, F] {
	return Color[S, F]{Values: values, Fraction: fraction}
}

type (
	RGBColor  = Color[RGB[uint16], RGB[float64]]
	HSLColor  = Color[HSL[uint16], HSL[float64]]
	HSVColor  = Color[HSV[uint16], HSV[float64]]
	CMYKColor = Color[CMYK[uint16], CMYK[float64]]
	XYZColor  = Color[XYZ[uint16], XYZ[float64]]
)

// RGB is the red, green, blue color space.
type RGB[T Number] struct {
	Red   T `json:"red" yaml:"red"`
	Green T `json:"green" yaml:"green"`
	Blue  T `json:"blue" yaml:"blue"`
}

// HSL is the hue, saturation, lightness color space.
type HSL[T Number] struct {
	H T `json:"h" yaml:"h"`
	S T `json:"s" yaml:"s"`
	L T `json:"l" yaml:"l"`
}

// HSV is the hue, saturation, value color space.
type HSV[T Number] struct {
	H T `json:"h" yaml:"h"`
	S T `json:"s" yaml:"s"`
	V T `json:"v" yaml:"v"`
}

// CMYK is the cyan, magenta, yellow, key (black) color space.
type CMYK[T Number] struct {
	C T `json:"c" yaml:"c"`
	M T `json:"m" yaml:"m"`
	Y T `json:"y" yaml:"y"`
	K T `json:"k" yaml:"k"`
}

// XYZ is the CIE 1931 color space.
type XYZ[T Number] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
}

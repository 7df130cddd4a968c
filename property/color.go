// Package property holds the translated results of Color API requests.
//
// A Color or Scheme is either the zero value, meaning no data has been
// received yet, or a verbatim copy of a decoded response.
package property

import (
	"github.com/colorful-cli/colorful/schema"
	"github.com/colorful-cli/colorful/space"
)

// Hex is the hexadecimal (HTML) notation of a color.
type Hex struct {
	// Value includes the leading '#', e.g. #01A1B1.
	Value string `json:"value" yaml:"value"`
	// Clean is Value without the '#', e.g. 01A1B1.
	Clean string `json:"clean" yaml:"clean"`
}

// Name is the closest named color the service knows about.
type Name struct {
	Value           string `json:"value" yaml:"value"`
	ClosestNamedHex string `json:"closestNamedHex" yaml:"closestNamedHex"`
	// ExactMatch reports whether the color is the named color itself.
	ExactMatch bool `json:"exactMatch" yaml:"exactMatch"`
	// Distance to the closest named color.
	Distance int `json:"distance" yaml:"distance"`
}

// Image links to rendered previews.
type Image struct {
	// Bare is the preview without text.
	Bare string `json:"bare" yaml:"bare"`
	// Named is the preview with the color name printed on it.
	Named string `json:"named" yaml:"named"`
}

// Color is a single color described across every color space the service reports.
type Color struct {
	Hex      Hex             `json:"hex" yaml:"hex"`
	RGB      space.RGBColor  `json:"rgb" yaml:"rgb"`
	HSL      space.HSLColor  `json:"hsl" yaml:"hsl"`
	HSV      space.HSVColor  `json:"hsv" yaml:"hsv"`
	CMYK     space.CMYKColor `json:"cmyk" yaml:"cmyk"`
	XYZ      space.XYZColor  `json:"xyz" yaml:"xyz"`
	Name     Name            `json:"name" yaml:"name"`
	Image    Image           `json:"image" yaml:"image"`
	// Contrast is the hex color readable on top of this one.
	Contrast string `json:"contrast" yaml:"contrast"`
	// Self is the service path that describes this color.
	Self string `json:"self" yaml:"self"`
}

// NewColor returns an empty color.
func NewColor() Color {
	return Color{}
}

// FromResponse copies every field of a decoded response.
func FromResponse(r *schema.Color) Color {
	return Color{
		Hex: Hex{
			Value: r.Hex.Value,
			Clean: r.Hex.Clean,
		},
		RGB: space.Of(
			space.RGB[uint16]{Red: r.RGB.R, Green: r.RGB.G, Blue: r.RGB.B},
			space.RGB[float64]{Red: r.RGB.Fraction.R, Green: r.RGB.Fraction.G, Blue: r.RGB.Fraction.B},
		),
		HSL: space.Of(
			space.HSL[uint16]{H: r.HSL.H, S: r.HSL.S, L: r.HSL.L},
			space.HSL[float64]{H: r.HSL.Fraction.H, S: r.HSL.Fraction.S, L: r.HSL.Fraction.L},
		),
		HSV: space.Of(
			space.HSV[uint16]{H: r.HSV.H, S: r.HSV.S, V: r.HSV.V},
			space.HSV[float64]{H: r.HSV.Fraction.H, S: r.HSV.Fraction.S, V: r.HSV.Fraction.V},
		),
		CMYK: space.Of(
			space.CMYK[uint16]{C: r.CMYK.C, M: r.CMYK.M, Y: r.CMYK.Y, K: r.CMYK.K},
			space.CMYK[float64]{C: r.CMYK.Fraction.C, M: r.CMYK.Fraction.M, Y: r.CMYK.Fraction.Y, K: r.CMYK.Fraction.K},
		),
		XYZ: space.Of(
			space.XYZ[uint16]{X: r.XYZ.X, Y: r.XYZ.Y, Z: r.XYZ.Z},
			space.XYZ[float64]{X: r.XYZ.Fraction.X, Y: r.XYZ.Fraction.Y, Z: r.XYZ.Fraction.Z},
		),
		Name: Name{
			Value:           r.Name.Value,
			ClosestNamedHex: r.Name.ClosestNamedHex,
			ExactMatch:      r.Name.ExactMatchName,
			Distance:        r.Name.Distance,
		},
		Image: Image{
			Bare:  r.Image.Bare,
			Named: r.Image.Named,
		},
		Contrast: r.Contrast.Value,
		Self:     r.Links.Self.Href,
	}
}

// String returns the name of the color.
func (c Color) String() string {
	return c.Name.Value
}

// Query returns the request parameter that selects this color again.
func (c Color) Query() (string, error) {
	return c.RGB.Values.Query()
}

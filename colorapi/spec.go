package colorapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colorful-cli/colorful/space"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Spec is a color description the service can identify.
type Spec interface {
	// Query returns the request parameters selecting the color, without a leading '?'.
	Query() (string, error)
}

type rgbSpec struct {
	space.RGB[int]
}

// RGB selects a color by its red, green and blue channels (0-255).
// Values are sent as given.
func RGB(r, g, b int) Spec {
	return rgbSpec{space.RGB[int]{Red: r, Green: g, Blue: b}}
}

type cmykSpec struct {
	space.CMYK[int]
}

// CMYK selects a color by its cyan, magenta, yellow and key components (0-100).
func CMYK(c, m, y, k int) Spec {
	return cmykSpec{space.CMYK[int]{C: c, M: m, Y: y, K: k}}
}

type hslSpec struct {
	space.HSL[int]
	unit rune
}

// HSL selects a color by hue, saturation and lightness.
// The unit is appended to saturation and lightness and defaults to '%'.
func HSL(h, s, l int, unit mo.Option[rune]) Spec {
	return hslSpec{
		HSL:  space.HSL[int]{H: h, S: s, L: l},
		unit: unit.OrElse('%'),
	}
}

func (s hslSpec) Query() (string, error) {
	return s.HSL.QueryUnit(string(s.unit))
}

type hsvSpec struct {
	space.HSV[int]
	unit rune
}

// HSV describes a color by hue, saturation and value.
// The service does not accept it, so its Query always fails with space.ErrUnsupported.
func HSV(h, s, v int, unit mo.Option[rune]) Spec {
	return hsvSpec{
		HSV:  space.HSV[int]{H: h, S: s, V: v},
		unit: unit.OrElse('%'),
	}
}

func (s hsvSpec) Query() (string, error) {
	return s.HSV.QueryUnit(string(s.unit))
}

type hexSpec string

// Hex selects a color by its hexadecimal notation, with or without the leading '#'.
func Hex(hex string) Spec {
	return hexSpec(hex)
}

func (h hexSpec) Query() (string, error) {
	clean := strings.TrimPrefix(strings.TrimSpace(string(h)), "#")
	if clean == "" {
		return "", fmt.Errorf("hex: empty value: %w", ErrInvalidSpec)
	}

	if _, err := colorful.Hex("#" + clean); err != nil {
		return "", fmt.Errorf("hex %q: %w", string(h), ErrInvalidSpec)
	}

	return "hex=" + clean, nil
}

// Kinds accepted by ParseSpec.
const (
	KindRGB  = "rgb"
	KindCMYK = "cmyk"
	KindHSL  = "hsl"
	KindHSV  = "hsv"
	KindHex  = "hex"
)

// Kinds lists every kind accepted by ParseSpec.
var Kinds = []string{KindRGB, KindCMYK, KindHSL, KindHSV, KindHex}

// ParseSpec parses a comma-separated list of components, e.g. "255,0,0" for rgb.
// For hex the value is taken as is.
func ParseSpec(kind, value string, unit mo.Option[rune]) (Spec, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == KindHex {
		return Hex(value), nil
	}

	want, ok := map[string]int{
		KindRGB:  3,
		KindCMYK: 4,
		KindHSL:  3,
		KindHSV:  3,
	}[kind]
	if !ok {
		return nil, fmt.Errorf("unknown color kind %q, expected one of %s: %w",
			kind, strings.Join(Kinds, ", "), ErrInvalidSpec)
	}

	parts := strings.Split(value, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("%s expects %d components, got %d: %w", kind, want, len(parts), ErrInvalidSpec)
	}

	values := make([]int, 0, want)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.TrimRight(p, "%°")
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%s component %q: %w", kind, p, ErrInvalidSpec)
		}
		values = append(values, n)
	}

	switch kind {
	case KindRGB:
		return RGB(values[0], values[1], values[2]), nil
	case KindCMYK:
		return CMYK(values[0], values[1], values[2], values[3]), nil
	case KindHSL:
		return HSL(values[0], values[1], values[2], unit), nil
	default:
		return HSV(values[0], values[1], values[2], unit), nil
	}
}

// MustParseSpec is like ParseSpec but panics on error.
func MustParseSpec(kind, value string) Spec {
	return lo.Must(ParseSpec(kind, value, mo.None[rune]()))
}

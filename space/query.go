package space

import (
	"fmt"
	"strings"
)

// Percent is the default unit appended to saturation, lightness and value components.
const Percent = "%"

// notation renders fn(v1,v2,...) with an optional per-component suffix.
func notation[T Number](fn string, suffixes []string, values ...T) string {
	var b strings.Builder
	b.WriteString(fn)
	b.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, v)
		if i < len(suffixes) {
			b.WriteString(suffixes[i])
		}
	}
	b.WriteByte(')')
	return b.String()
}

func query(name, value string) string {
	return name + "=" + value
}

// String returns the rgb(r,g,b) notation.
func (c RGB[T]) String() string {
	return notation("rgb", nil, c.Red, c.Green, c.Blue)
}

// Query returns the request parameter selecting this color, rgb=rgb(r,g,b).
func (c RGB[T]) Query() (string, error) {
	return query("rgb", c.String()), nil
}

// String returns the hsl(h,s%,l%) notation.
func (c HSL[T]) String() string {
	return c.WithUnit(Percent)
}

// WithUnit returns the hsl notation with unit appended to saturation and lightness.
func (c HSL[T]) WithUnit(unit string) string {
	return notation("hsl", []string{"", unit, unit}, c.H, c.S, c.L)
}

// Query returns hsl=hsl(h,s%,l%).
func (c HSL[T]) Query() (string, error) {
	return c.QueryUnit(Percent)
}

// QueryUnit returns the hsl query with the given unit on saturation and lightness.
func (c HSL[T]) QueryUnit(unit string) (string, error) {
	return query("hsl", c.WithUnit(unit)), nil
}

// String returns the hsv(h,s%,v%) notation.
func (c HSV[T]) String() string {
	return c.WithUnit(Percent)
}

// WithUnit returns the hsv notation with unit appended to saturation and value.
func (c HSV[T]) WithUnit(unit string) string {
	return notation("hsv", []string{"", unit, unit}, c.H, c.S, c.V)
}

// Query always fails: the service does not accept hsv as an input.
func (c HSV[T]) Query() (string, error) {
	return c.QueryUnit(Percent)
}

// QueryUnit always fails, see Query.
func (c HSV[T]) QueryUnit(unit string) (string, error) {
	return "", fmt.Errorf("hsv %s: %w", c.WithUnit(unit), ErrUnsupported)
}

// String returns the cmyk(c,m,y,k) notation.
func (c CMYK[T]) String() string {
	return notation("cmyk", nil, c.C, c.M, c.Y, c.K)
}

// Query returns cmyk=cmyk(c,m,y,k).
func (c CMYK[T]) Query() (string, error) {
	return query("cmyk", c.String()), nil
}

// String returns the XYZ(x,y,z) notation.
func (c XYZ[T]) String() string {
	return notation("XYZ", nil, c.X, c.Y, c.Z)
}

// Query always fails: XYZ can only be sent to the service as a JSON payload.
func (c XYZ[T]) Query() (string, error) {
	return "", fmt.Errorf("xyz %s: %w", c.String(), ErrUnsupported)
}

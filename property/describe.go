package property

import (
	"fmt"
	"strings"
)

// channel is one line of the verbose layout.
type channel struct {
	label    string
	value    any
	fraction any
}

func section(b *strings.Builder, title string, channels ...channel) {
	b.WriteString(title)
	b.WriteString(":")
	for _, ch := range channels {
		fmt.Fprintf(b, "\n\t%s: %v\t(Fraction: %v)", ch.label, ch.value, ch.fraction)
	}
}

// Describe returns the name of the color, or with verbose set, every color space
// in the order Name, RGB, CMYK, HSV, HSL, XYZ.
func (c Color) Describe(verbose bool) string {
	if !verbose {
		return c.String()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Name:\n\tValue: %s\n\tClosest Named Match: %s\n\tExact Match: %t\n\tDistance: %d\n",
		c.Name.Value, c.Name.ClosestNamedHex, c.Name.ExactMatch, c.Name.Distance)

	rgb := c.RGB
	section(&b, "RGB",
		channel{"R", rgb.Values.Red, rgb.Fraction.Red},
		channel{"G", rgb.Values.Green, rgb.Fraction.Green},
		channel{"B", rgb.Values.Blue, rgb.Fraction.Blue},
	)
	b.WriteByte('\n')

	cmyk := c.CMYK
	section(&b, "CMYK",
		channel{"C", cmyk.Values.C, cmyk.Fraction.C},
		channel{"M", cmyk.Values.M, cmyk.Fraction.M},
		channel{"Y", cmyk.Values.Y, cmyk.Fraction.Y},
		channel{"K", cmyk.Values.K, cmyk.Fraction.K},
	)
	b.WriteByte('\n')

	hsv := c.HSV
	section(&b, "HSV",
		channel{"H", hsv.Values.H, hsv.Fraction.H},
		channel{"S", hsv.Values.S, hsv.Fraction.S},
		channel{"V", hsv.Values.V, hsv.Fraction.V},
	)
	b.WriteByte('\n')

	hsl := c.HSL
	section(&b, "HSL",
		channel{"H", hsl.Values.H, hsl.Fraction.H},
		channel{"S", hsl.Values.S, hsl.Fraction.S},
		channel{"L", hsl.Values.L, hsl.Fraction.L},
	)
	b.WriteByte('\n')

	xyz := c.XYZ
	section(&b, "XYZ",
		channel{"X", xyz.Values.X, xyz.Fraction.X},
		channel{"Y", xyz.Values.Y, xyz.Fraction.Y},
		channel{"Z", xyz.Values.Z, xyz.Fraction.Z},
	)

	return b.String()
}

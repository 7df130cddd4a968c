package property

import (
	"fmt"
	"strings"

	"github.com/colorful-cli/colorful/schema"
	"github.com/samber/lo"
)

// SchemeLinks point at every scheme mode available for the seed.
type SchemeLinks struct {
	Monochrome         string `json:"monochrome" yaml:"monochrome"`
	MonochromeDark     string `json:"monochromeDark" yaml:"monochromeDark"`
	MonochromeLight    string `json:"monochromeLight" yaml:"monochromeLight"`
	Analogic           string `json:"analogic" yaml:"analogic"`
	Complement         string `json:"complement" yaml:"complement"`
	AnalogicComplement string `json:"analogicComplement" yaml:"analogicComplement"`
	Triad              string `json:"triad" yaml:"triad"`
	Quad               string `json:"quad" yaml:"quad"`
}

// Links of a scheme.
type Links struct {
	// Self is the path that produced this scheme.
	Self    string      `json:"self" yaml:"self"`
	Schemes SchemeLinks `json:"schemes" yaml:"schemes"`
}

// Scheme is a palette generated by the service from a seed color.
type Scheme struct {
	Mode  string `json:"mode" yaml:"mode"`
	Count int    `json:"count" yaml:"count"`
	// Colors are kept in the order the service generated them.
	Colors []Color `json:"colors" yaml:"colors"`
	Seed   Color   `json:"seed" yaml:"seed"`
	Image  Image   `json:"image" yaml:"image"`
	Links  Links   `json:"links" yaml:"links"`
}

// NewScheme returns an empty scheme.
func NewScheme() Scheme {
	return Scheme{Colors: []Color{}}
}

// SchemeFromResponse copies a decoded scheme, translating every color with FromResponse.
func SchemeFromResponse(r *schema.Scheme) Scheme {
	preview := r.Preview()

	return Scheme{
		Mode:  r.Mode,
		Count: int(r.Count),
		Colors: lo.Map(r.Colors, func(c schema.Color, _ int) Color {
			return FromResponse(&c)
		}),
		Seed: FromResponse(&r.Seed),
		Image: Image{
			Bare:  preview.Bare,
			Named: preview.Named,
		},
		Links: Links{
			Self: r.Links.Self,
			Schemes: SchemeLinks{
				Monochrome:         r.Links.Schemes.Monochrome,
				MonochromeDark:     r.Links.Schemes.MonochromeDark,
				MonochromeLight:    r.Links.Schemes.MonochromeLight,
				Analogic:           r.Links.Schemes.Analogic,
				Complement:         r.Links.Schemes.Complement,
				AnalogicComplement: r.Links.Schemes.AnalogicComplement,
				Triad:              r.Links.Schemes.Triad,
				Quad:               r.Links.Schemes.Quad,
			},
		},
	}
}

// String returns the mode and color count, e.g. "triad (3)".
func (s Scheme) String() string {
	return fmt.Sprintf("%s (%d)", s.Mode, s.Count)
}

// Describe lists the seed and every color of the scheme, each through Color.Describe.
func (s Scheme) Describe(verbose bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Scheme: %s\nSeed: %s\n", s, s.Seed.Describe(false))
	for i, c := range s.Colors {
		fmt.Fprintf(&b, "\n#%d %s", i+1, c.Hex.Value)
		if verbose {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(c.Describe(verbose))
	}

	return b.String()
}

// Package schema mirrors the JSON payloads returned by The Color API.
package schema

// Color is the payload of the /id endpoint and of every entry of a scheme.
type Color struct {
	Hex      Hex      `json:"hex"`
	RGB      RGB      `json:"rgb"`
	HSL      HSL      `json:"hsl"`
	HSV      HSV      `json:"hsv"`
	Name     Name     `json:"name"`
	CMYK     CMYK     `json:"cmyk"`
	XYZ      XYZ      `json:"XYZ"`
	Image    Image    `json:"image"`
	Contrast Contrast `json:"contrast"`
	Links    Links    `json:"_links"`
}

type Hex struct {
	// Value includes the leading '#'.
	Value string `json:"value"`
	// Clean is Value without the leading '#'.
	Clean string `json:"clean"`
}

type RGB struct {
	Fraction RGBFraction `json:"fraction"`
	R        uint16      `json:"r"`
	G        uint16      `json:"g"`
	B        uint16      `json:"b"`
	Value    string      `json:"value"`
}

type RGBFraction struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type HSL struct {
	Fraction HSLFraction `json:"fraction"`
	H        uint16      `json:"h"`
	S        uint16      `json:"s"`
	L        uint16      `json:"l"`
	Value    string      `json:"value"`
}

type HSLFraction struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type HSV struct {
	Fraction HSVFraction `json:"fraction"`
	H        uint16      `json:"h"`
	S        uint16      `json:"s"`
	V        uint16      `json:"v"`
	Value    string      `json:"value"`
}

type HSVFraction struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

type CMYK struct {
	Fraction CMYKFraction `json:"fraction"`
	C        uint16       `json:"c"`
	M        uint16       `json:"m"`
	Y        uint16       `json:"y"`
	K        uint16       `json:"k"`
	Value    string       `json:"value"`
}

type CMYKFraction struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

type XYZ struct {
	Fraction XYZFraction `json:"fraction"`
	X        uint16      `json:"X"`
	Y        uint16      `json:"Y"`
	Z        uint16      `json:"Z"`
	Value    string      `json:"value"`
}

type XYZFraction struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
	Z float64 `json:"Z"`
}

// Name describes the closest named color known to the service.
type Name struct {
	Value           string `json:"value"`
	ClosestNamedHex string `json:"closest_named_hex"`
	ExactMatchName  bool   `json:"exact_match_name"`
	Distance        int    `json:"distance"`
}

// Image links to rendered previews of a color or scheme.
type Image struct {
	Bare  string `json:"bare"`
	Named string `json:"named"`
}

type Contrast struct {
	Value string `json:"value"`
}

type Links struct {
	Self Link `json:"self"`
}

type Link struct {
	Href string `json:"href"`
}

// Scheme is the payload of the /scheme endpoint.
type Scheme struct {
	Mode   string      `json:"mode"`
	Count  Count       `json:"count"`
	Colors []Color     `json:"colors"`
	Seed   Color       `json:"seed"`
	Image  *Image      `json:"image,omitempty"`
	Images *Image      `json:"images,omitempty"`
	Links  SchemeLinks `json:"_links"`
}

// Preview returns the scheme preview links.
// The live service names the object "image"; older documentation calls it "images".
func (s *Scheme) Preview() Image {
	switch {
	case s.Images != nil:
		return *s.Images
	case s.Image != nil:
		return *s.Image
	default:
		return Image{}
	}
}

// SchemeLinks point at the current scheme and at every other mode for the same seed.
type SchemeLinks struct {
	Self    string      `json:"self"`
	Schemes SchemeModes `json:"schemes"`
}

type SchemeModes struct {
	Monochrome         string `json:"monochrome"`
	MonochromeDark     string `json:"monochrome-dark"`
	MonochromeLight    string `json:"monochrome-light"`
	Analogic           string `json:"analogic"`
	Complement         string `json:"complement"`
	AnalogicComplement string `json:"analogic-complement"`
	Triad              string `json:"triad"`
	Quad               string `json:"quad"`
}

package render

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/colorful-cli/colorful/property"
	"github.com/colorful-cli/colorful/schema"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func red() property.Color {
	var r schema.Color
	lo.Must0(schema.Unmarshal(lo.Must(os.ReadFile("testdata/red.json")), &r))
	return property.FromResponse(&r)
}

func monochrome() property.Scheme {
	var r schema.Scheme
	lo.Must0(schema.Unmarshal(lo.Must(os.ReadFile("testdata/scheme.json")), &r))
	return property.SchemeFromResponse(&r)
}

func TestSwatch(t *testing.T) {
	Convey("Swatch", t, func() {
		Convey("fills the requested width", func() {
			s := Swatch("#FF0000", "#ffffff", "Red", 6)
			So(lipgloss.Width(s), ShouldEqual, 6)
			So(s, ShouldContainSubstring, "Red")
		})

		Convey("truncates a long label", func() {
			So(lipgloss.Width(Swatch("#FF0000", "", "Free Speech Red", 4)), ShouldEqual, 4)
		})

		Convey("falls back to the label for a malformed color", func() {
			So(Swatch("red", "", "Red", 6), ShouldEqual, "Red")
		})

		Convey("is disabled with a zero width", func() {
			So(Swatch("#FF0000", "", "Red", 0), ShouldEqual, "Red")
		})
	})
}

func TestColor(t *testing.T) {
	Convey("Given red", t, func() {
		c := red()

		Convey("the short form is one line with hex and name", func() {
			out := Color(c, Options{SwatchWidth: 4})
			So(out, ShouldContainSubstring, "#FF0000 Red")
			So(out, ShouldNotContainSubstring, "\n")
		})

		Convey("the verbose form indents the description", func() {
			out := Color(c, Options{Verbose: true})
			lines := strings.Split(out, "\n")
			So(lines[0], ShouldEqual, "#FF0000 Red")
			So(lines[1], ShouldEqual, "  Name:")
			So(out, ShouldContainSubstring, "\n  RGB:")
			So(out, ShouldContainSubstring, "\n  XYZ:")
		})

		Convey("a narrow terminal truncates the line", func() {
			out := Color(c, Options{Width: 10})
			So(lipgloss.Width(out), ShouldBeLessThanOrEqualTo, 10)
			So(out, ShouldEndWith, "…")
		})
	})
}

func TestScheme(t *testing.T) {
	Convey("Given a monochrome scheme", t, func() {
		out := Scheme(monochrome(), Options{})
		lines := strings.Split(out, "\n")

		Convey("the header names the mode and size", func() {
			So(lines[0], ShouldEqual, "Monochrome scheme, 4 colors")
			So(lines[1], ShouldEqual, "seed #FF0000 Red")
		})

		Convey("colors follow in order", func() {
			So(lines[2:], ShouldResemble, []string{
				"#330000 Dark Tan",
				"#800000 Maroon",
				"#CC0000 Free Speech Red",
				"#FF3333 Red Orange",
			})
		})
	})
}

func TestEncode(t *testing.T) {
	Convey("Encode", t, func() {
		c := red()

		Convey("writes indented JSON", func() {
			var buf bytes.Buffer
			So(Encode(&buf, c, FormatJSON), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "\n  \"hex\"")

			var out map[string]any
			So(json.Unmarshal(buf.Bytes(), &out), ShouldBeNil)
			So(out["contrast"], ShouldEqual, "#ffffff")
		})

		Convey("writes YAML", func() {
			var buf bytes.Buffer
			So(Encode(&buf, c, FormatYAML), ShouldBeNil)

			var out struct {
				Name struct {
					Value string `yaml:"value"`
				} `yaml:"name"`
				RGB struct {
					Values struct {
						Red int `yaml:"red"`
					} `yaml:"values"`
				} `yaml:"rgb"`
			}
			So(yaml.Unmarshal(buf.Bytes(), &out), ShouldBeNil)
			So(out.Name.Value, ShouldEqual, "Red")
			So(out.RGB.Values.Red, ShouldEqual, 255)
		})

		Convey("refuses text", func() {
			So(Encode(&bytes.Buffer{}, c, FormatText), ShouldNotBeNil)
		})
	})
}

func TestParseFormat(t *testing.T) {
	Convey("ParseFormat", t, func() {
		f, err := ParseFormat(" JSON ")
		So(err, ShouldBeNil)
		So(f, ShouldEqual, FormatJSON)

		_, err = ParseFormat("xml")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "text, json, yaml")
	})
}

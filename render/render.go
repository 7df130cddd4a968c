// Package render turns colors and schemes into terminal text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/colorful-cli/colorful/property"
	"github.com/colorful-cli/colorful/style"
	"github.com/colorful-cli/colorful/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every accepted format.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a format name, ignoring case.
func ParseFormat(name string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(name))
	if !lo.Contains(Formats, format) {
		return "", fmt.Errorf("unknown format %q, expected one of %s", name, strings.Join(Formats, ", "))
	}
	return format, nil
}

// Options tune text output.
type Options struct {
	Verbose bool
	// SwatchWidth is the number of cells painted with the color. Zero disables swatches.
	SwatchWidth int
	// Width truncates single-line output. Zero disables truncation.
	Width int
}

// Swatch paints width cells with hex, writing label on top in contrast.
// A malformed hex renders the label alone.
func Swatch(hex, contrast, label string, width int) string {
	bg, ok := style.Hex(hex)
	if !ok || width <= 0 {
		return label
	}

	fg, ok := style.Hex(contrast)
	if !ok {
		fg = style.Readable(hex)
	}

	label = truncate.String(label, uint(width))
	return style.Colored(fg, bg).
		Width(width).
		Align(lipgloss.Center).
		Render(label)
}

func line(c property.Color, opts Options) string {
	text := fmt.Sprintf("%s %s", c.Hex.Value, c.Name.Value)
	if opts.Width > 0 {
		// account for the swatch and the space after it
		room := util.Max(opts.Width-opts.SwatchWidth-1, 1)
		text = truncate.StringWithTail(text, uint(room), "…")
	}

	if opts.SwatchWidth <= 0 {
		return text
	}
	return Swatch(c.Hex.Value, c.Contrast, "", opts.SwatchWidth) + " " + text
}

// Color renders a single color: one line, or with Verbose the full description indented under it.
func Color(c property.Color, opts Options) string {
	if !opts.Verbose {
		return line(c, opts)
	}

	return line(c, opts) + "\n" + indent.String(c.Describe(true), 2)
}

// Scheme renders the seed followed by every color of the scheme in order.
func Scheme(s property.Scheme, opts Options) string {
	var b strings.Builder

	header := fmt.Sprintf("%s scheme, %s", util.Capitalize(s.Mode), util.Quantify(len(s.Colors), "color", "colors"))
	b.WriteString(style.Bold(header))
	b.WriteString("\n")
	b.WriteString(style.Faint("seed") + " " + line(s.Seed, Options{SwatchWidth: opts.SwatchWidth, Width: opts.Width}))

	for _, c := range s.Colors {
		b.WriteString("\n")
		b.WriteString(Color(c, opts))
	}

	return b.String()
}

// Encode writes v to w in format. Text is not an encoding and is rejected.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("cannot encode as %q", format)
	}
}

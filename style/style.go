// Package style wraps lipgloss into small string-to-string renderers.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ANSI colors used by the CLI.
var (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")
	Gray   = lipgloss.Color("8")
)

// Fallback foregrounds for swatches without a contrast color.
var (
	Light = lipgloss.Color("#ffffff")
	Dark  = lipgloss.Color("#000000")
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored returns a style with the given foreground and background.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Tag renders s as a padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Hex returns the lipgloss color for a "#rrggbb" value. ok is false when hex is malformed.
func Hex(hex string) (c lipgloss.Color, ok bool) {
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return "", false
	}
	return lipgloss.Color(parsed.Hex()), true
}

// Readable picks white or black text for a background, whichever contrasts more.
func Readable(background string) lipgloss.Color {
	parsed, err := colorful.Hex(background)
	if err != nil {
		return Light
	}

	_, _, l := parsed.Hcl()
	if l > 0.6 {
		return Dark
	}
	return Light
}

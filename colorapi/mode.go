package colorapi

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Mode is the algorithm the service uses to generate a scheme.
type Mode int

const (
	Monochrome Mode = iota + 1
	MonochromeDark
	MonochromeLight
	Analogic
	Complement
	AnalogicComplement
	Triad
	Quad
)

var modeNames = map[Mode]string{
	Monochrome:         "monochrome",
	MonochromeDark:     "monochrome-dark",
	MonochromeLight:    "monochrome-light",
	Analogic:           "analogic",
	Complement:         "complement",
	AnalogicComplement: "analogic-complement",
	Triad:              "triad",
	Quad:               "quad",
}

// Modes lists every mode in declaration order.
var Modes = []Mode{
	Monochrome,
	MonochromeDark,
	MonochromeLight,
	Analogic,
	Complement,
	AnalogicComplement,
	Triad,
	Quad,
}

// DefaultMode is what the service generates when no mode is requested.
const DefaultMode = Analogic

// String returns the name the service expects in the mode parameter.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ModeNames returns the wire names of every mode.
func ModeNames() []string {
	return lo.Map(Modes, func(m Mode, _ int) string {
		return m.String()
	})
}

func normalizeMode(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// ParseMode accepts a mode by its wire name ("monochrome-dark") or its
// camel-case name ("monochromeDark"), ignoring case.
func ParseMode(name string) (Mode, error) {
	normalized := normalizeMode(name)
	for _, m := range Modes {
		if normalizeMode(m.String()) == normalized {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown mode %q, did you mean %s?", name, closestMode(name))
}

// closestMode prefers modes the name is a fuzzy subsequence of, then the smallest edit distance.
func closestMode(name string) string {
	candidates := ModeNames()
	if matches := fuzzy.FindFold(name, candidates); len(matches) > 0 {
		candidates = matches
	}

	name = strings.ToLower(name)
	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

package colorapi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/colorful-cli/colorful/util"
	"github.com/samber/mo"
)

// Endpoints of the service, relative to the base URL.
const (
	IdentifyPath = "/id"
	SchemePath   = "/scheme"
)

// SchemeOptions tune scheme generation. Absent options are left to the service.
type SchemeOptions struct {
	Mode mo.Option[Mode]
	// Count is sent as its absolute value.
	Count mo.Option[int]
}

func endpoint(base, path, query string) string {
	return strings.TrimRight(base, "/") + path + "?" + query
}

// IdentifyURL returns the URL describing the color selected by spec.
func IdentifyURL(base string, spec Spec) (string, error) {
	query, err := spec.Query()
	if err != nil {
		return "", err
	}

	return endpoint(base, IdentifyPath, query), nil
}

// SchemeURL returns the URL of the scheme seeded by spec.
// Mode is appended before count.
func SchemeURL(base string, spec Spec, opts SchemeOptions) (string, error) {
	query, err := spec.Query()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(query)

	if mode, ok := opts.Mode.Get(); ok {
		if !mode.Valid() {
			return "", fmt.Errorf("%s: %w", mode, ErrInvalidSpec)
		}
		b.WriteString("&mode=")
		b.WriteString(mode.String())
	}

	if count, ok := opts.Count.Get(); ok {
		b.WriteString("&count=")
		b.WriteString(strconv.Itoa(util.Abs(count)))
	}

	return endpoint(base, SchemePath, b.String()), nil
}

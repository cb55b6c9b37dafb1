package render

import (
	"flag"
	"fmt"
	"strings"
)

// Format is an output documentation format.
type Format string

const (
	// RST renders reStructuredText for Sphinx.
	RST Format = "rst"

	// Markdown renders CommonMark.
	Markdown Format = "markdown"
)

// Formats lists the supported formats.
var Formats = []Format{RST, Markdown}

var _ flag.Getter = (*Format)(nil)

// Get returns the value of the Format.
// This is to comply with the [flag.Getter] interface.
func (f *Format) Get() any { return *f }

// String returns the name of this format.
func (f Format) String() string { return string(f) }

// Set receives a command line value.
func (f *Format) Set(s string) error {
	switch v := Format(strings.TrimSpace(strings.ToLower(s))); v {
	case RST, Markdown:
		*f = v
		return nil
	case "md":
		*f = Markdown
		return nil
	default:
		return fmt.Errorf("unknown format %q: valid values are %q", s, Formats)
	}
}

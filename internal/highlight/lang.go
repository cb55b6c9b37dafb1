package highlight

import (
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// DefaultLanguage is the label used for code blocks
// when none is specified.
const DefaultLanguage = "cpp"

// Language is a programming language that has a lexer.
type Language struct {
	// Name is the lexer's display name, e.g. "C++".
	Name string

	// Aliases are short identifiers for the language,
	// e.g. "cpp" and "c++".
	Aliases []string
}

// Lookup finds a language by name, alias, or file extension.
// It reports false if no lexer is registered for it.
func Lookup(name string) (*Language, bool) {
	if len(name) == 0 {
		return nil, false
	}

	lexer := lexers.Get(name)
	if lexer == nil {
		return nil, false
	}

	cfg := lexer.Config()
	return &Language{
		Name:    cfg.Name,
		Aliases: cfg.Aliases,
	}, true
}

// Label returns the identifier to use for name in a code directive.
//
// If name is an alias of a known language, it's returned in lower case.
// If name otherwise identifies a known language (by display name or file
// extension), the language's first alias is returned.
// Unknown names are returned as-is and Label reports false.
func Label(name string) (string, bool) {
	lang, ok := Lookup(name)
	if !ok {
		return name, false
	}

	lower := strings.ToLower(name)
	if slices.Contains(lang.Aliases, lower) || len(lang.Aliases) == 0 {
		return lower, true
	}
	return lang.Aliases[0], true
}

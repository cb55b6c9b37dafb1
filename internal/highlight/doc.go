// Package highlight resolves the language labels
// attached to rendered code blocks.
// It uses the Chroma lexer registry to do this work,
// whose names and aliases follow Pygments,
// the highlighter used by Sphinx.
package highlight

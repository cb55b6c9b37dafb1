// Package block finds documentation and code example blocks
// embedded in source file comments.
//
// Two kinds of blocks are recognized:
//
//	/**rst
//	reStructuredText markup
//	*/
//
//	///```cpp
//	example code
//	///```
//
// Delimiters must start at the beginning of a line.
// Windows ("\r\n") and old Mac ("\r") line endings
// are read as "\n".
// Blocks of both kinds are returned together,
// ordered by their position in the source.
package block

import (
	"bytes"
	"cmp"
	"fmt"
	"regexp"
	"slices"
)

// Kind identifies the category of a block.
type Kind int

const (
	// Markup is free-form documentation markup,
	// to be copied to the output as-is.
	Markup Kind = iota + 1

	// Code is an example code snippet,
	// to be wrapped in a code directive.
	Code
)

func (k Kind) String() string {
	switch k {
	case Markup:
		return "markup"
	case Code:
		return "code"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Block is a region extracted from a source file.
type Block struct {
	Kind Kind

	// Offset is the byte offset in the source
	// where Content begins,
	// after line endings have been normalized.
	// It's used only to order blocks.
	Offset int

	// Content is the text between the delimiters,
	// excluding the delimiters themselves.
	Content []byte
}

// List is a list of blocks.
type List []*Block

// Sort orders the list by offset.
// Blocks with the same offset keep their relative order.
func (l List) Sort() {
	slices.SortStableFunc(l, func(a, b *Block) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
}

// Count reports the number of blocks of the given kind.
func (l List) Count(k Kind) int {
	var n int
	for _, b := range l {
		if b.Kind == k {
			n++
		}
	}
	return n
}

// Grammar describes how to find blocks of one kind.
type Grammar struct {
	Kind Kind

	// Pattern must have exactly one capture group
	// holding the block's content.
	// Everything that follows the group in the match
	// is treated as the closing delimiter,
	// which should be anchored to the start of a line.
	Pattern *regexp.Regexp
}

var (
	// MarkupGrammar matches text between a line starting with "/**rst"
	// and the next line starting with "*/".
	//
	// The rest of the opening line is part of the content.
	MarkupGrammar = &Grammar{
		Kind:    Markup,
		Pattern: regexp.MustCompile(`(?ms)^/\*\*rst(.*?)^\*/`),
	}

	// CodeGrammar matches lines between a line that reads "///```cpp"
	// and the next line starting with "///```".
	CodeGrammar = &Grammar{
		Kind:    Code,
		Pattern: regexp.MustCompile("(?ms)^///```cpp\n(.*?)^///```"),
	}
)

// DefaultGrammars lists the grammars used by [Extract].
var DefaultGrammars = []*Grammar{MarkupGrammar, CodeGrammar}

// Extract finds all blocks in src recognized by [DefaultGrammars],
// and returns them in the order they appear.
func Extract(src []byte) List {
	return ExtractWith(src, DefaultGrammars...)
}

// ExtractWith finds all blocks in src recognized by the given grammars,
// and returns them in the order they appear.
//
// Line endings in src are normalized to "\n" before scanning,
// so returned blocks may not alias src.
func ExtractWith(src []byte, grammars ...*Grammar) List {
	src = normalizeNewlines(src)

	var blocks List
	for _, g := range grammars {
		blocks = append(blocks, Scan(src, g)...)
	}
	blocks.Sort()
	return blocks
}

var (
	_crlf = []byte("\r\n")
	_cr   = []byte("\r")
	_lf   = []byte("\n")
)

// normalizeNewlines replaces "\r\n" and lone "\r" with "\n".
// src is returned unchanged if it has no carriage returns.
func normalizeNewlines(src []byte) []byte {
	if bytes.IndexByte(src, '\r') < 0 {
		return src
	}
	src = bytes.ReplaceAll(src, _crlf, _lf)
	return bytes.ReplaceAll(src, _cr, _lf)
}

// Scan finds all blocks in src that match the given grammar.
//
// An opening delimiter without a matching closing delimiter
// produces nothing.
func Scan(src []byte, g *Grammar) List {
	var blocks List
	for pos := 0; pos < len(src); {
		loc := g.Pattern.FindSubmatchIndex(src[pos:])
		if loc == nil || loc[2] < 0 {
			break
		}

		start, end := pos+loc[2], pos+loc[3]
		blocks = append(blocks, &Block{
			Kind:    g.Kind,
			Offset:  start,
			Content: src[start:end:end],
		})

		// The closing delimiter is left unconsumed.
		// Scanning resumes at the start of its line
		// so that it may also open the next block.
		if end > pos {
			pos = end
		} else {
			pos += max(loc[1], 1) // empty match; don't spin
		}
	}
	return blocks
}

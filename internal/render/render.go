// Package render writes extracted blocks as documentation markup.
package render

import (
	"bufio"
	"cmp"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"go.abhg.dev/docextract/internal/block"
	"go.abhg.dev/docextract/internal/highlight"
	"go.abhg.dev/docextract/internal/linebuf"
)

// Notice is the text of the comment written before every block
// to mark the output as generated.
const Notice = "This document is generated by docextract and should not be modified by hand"

// Indent is the prefix added to every line of a code block.
const Indent = "  "

var _newline = []byte("\n")

// style holds the format-specific pieces of the output.
type style struct {
	notice    string // comment holding the notice; one %s
	codeOpen  string // start of a code directive; one %s for the language
	codeClose string // end of a code directive
}

var _styles = map[Format]style{
	RST: {
		notice:    ".. %s\n",
		codeOpen:  ".. code-block:: %s\n\n",
		codeClose: "\n",
	},
	Markdown: {
		notice:    "<!-- %s -->\n",
		codeOpen:  "```%s\n",
		codeClose: "```\n\n",
	},
}

// Renderer renders a list of blocks into a documentation format.
//
// The zero value renders reStructuredText
// with code blocks labeled as C++.
type Renderer struct {
	// Format is the output format.
	// Defaults to RST.
	Format Format

	// Lang is the language label attached to code blocks.
	// Defaults to highlight.DefaultLanguage.
	Lang string
}

// Render writes the given blocks to w in order.
//
// Each block is preceded by a comment holding [Notice].
// Markup blocks are written verbatim.
// Code blocks are wrapped in a code directive
// with every line indented by [Indent].
func (r *Renderer) Render(w io.Writer, blocks block.List) error {
	sty, ok := _styles[cmp.Or(r.Format, RST)]
	if !ok {
		return errtrace.Errorf("unsupported format %q", r.Format)
	}
	lang := cmp.Or(r.Lang, highlight.DefaultLanguage)

	// bufio.Writer holds on to the first write error
	// and reports it from Flush.
	bw := bufio.NewWriter(w)
	for _, b := range blocks {
		fmt.Fprintf(bw, sty.notice, Notice)
		switch b.Kind {
		case block.Markup:
			_, _ = bw.Write(b.Content)
			_, _ = bw.Write(_newline)

		case block.Code:
			fmt.Fprintf(bw, sty.codeOpen, lang)
			writeIndented(bw, b.Content)
			_, _ = bw.WriteString(sty.codeClose)

		default:
			return errtrace.Errorf("unsupported block kind %v at offset %d", b.Kind, b.Offset)
		}
	}

	return errtrace.Wrap(bw.Flush())
}

// writeIndented writes content to w with every line prefixed by Indent.
// A trailing newline is added if content doesn't end with one.
func writeIndented(w io.Writer, content []byte) {
	iw, flush := linebuf.Prefix(w, Indent)
	_, _ = iw.Write(content)
	_ = flush() // errors are retained by w
}

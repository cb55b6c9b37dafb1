package main

import (
	"io"
	"log"

	"braces.dev/errtrace"
	"go.abhg.dev/docextract/internal/block"
	"go.abhg.dev/docextract/internal/render"
)

// Extractor finds documentation blocks in a source file.
type Extractor interface {
	Extract(src []byte) block.List
}

// extractorFunc adapts a function into an [Extractor].
type extractorFunc func([]byte) block.List

func (f extractorFunc) Extract(src []byte) block.List { return f(src) }

var _ Extractor = extractorFunc(block.Extract)

// Renderer renders extracted blocks into a documentation format.
type Renderer interface {
	Render(io.Writer, block.List) error
}

var _ Renderer = (*render.Renderer)(nil)

// Generator generates a documentation file from a source file.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log       *log.Logger // required
	Extractor Extractor   // required
	Renderer  Renderer    // required
}

// Generate extracts blocks from src and renders them to w.
// The name is used only for logging.
func (g *Generator) Generate(w io.Writer, name string, src []byte) error {
	blocks := g.Extractor.Extract(src)
	g.Log.Printf("Found %d blocks in %v (%d markup, %d code)",
		len(blocks), name, blocks.Count(block.Markup), blocks.Count(block.Code))
	for _, b := range blocks {
		g.Log.Printf("  %v block at offset %d (%d bytes)", b.Kind, b.Offset, len(b.Content))
	}

	return errtrace.Wrap(g.Renderer.Render(w, blocks))
}

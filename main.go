// docextract generates a documentation file
// from blocks embedded in the comments of a source file.
//
// See the -help output for usage.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/docextract/internal/block"
	"go.abhg.dev/docextract/internal/errdefer"
	"go.abhg.dev/docextract/internal/highlight"
	"go.abhg.dev/docextract/internal/render"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("docextract: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("create debug log: %w", err))
	}
	defer errdefer.Call(&err, closeDebug)
	debugLog := log.New(debugw, "", 0)

	lang, ok := highlight.Label(opts.Lang)
	if !ok {
		cmd.log.Printf("warning: no lexer found for language %q", opts.Lang)
	}
	debugLog.Printf("Using format %v with language %q", opts.Format, lang)

	// The input is read in full before any output is created
	// so that a bad input path leaves no trace.
	src, err := os.ReadFile(opts.Input)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("open input: %w", err))
	}

	out, closeOut, err := opts.Output.Create(cmd.Stdout)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("create output: %w", err))
	}
	defer errdefer.Call(&err, closeOut)

	gen := Generator{
		Log:       debugLog,
		Extractor: extractorFunc(block.Extract),
		Renderer: &render.Renderer{
			Format: opts.Format,
			Lang:   lang,
		},
	}
	if err := gen.Generate(out, opts.Input, src); err != nil {
		return errtrace.Wrap(fmt.Errorf("render: %w", err))
	}
	return nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/docextract/internal/flagvalue"
	"go.abhg.dev/docextract/internal/highlight"
	"go.abhg.dev/docextract/internal/render"
)

// _envPrefix is the prefix for environment variables
// that supply flag values, e.g. DOCEXTRACT_LANG.
const _envPrefix = "DOCEXTRACT"

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for docextract.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	Output flagvalue.File
	Format render.Format
	Lang   string

	Input string
}

// cliParser parses the command line arguments for docextract.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("docextract", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	p := params{
		Format: render.RST,
	}

	// Output:
	flag.Var(&p.Output, "o", "")
	flag.Var(&p.Format, "format", "")
	flag.StringVar(&p.Lang, "lang", highlight.DefaultLanguage, "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()

	// The FlagSet reports its own errors and then prints usage.
	// Everything else (environment, config file) is reported here.
	var reported bool
	usage := flag.Usage
	flag.Usage = func() {
		reported = true
		usage()
	}

	// Precedence: command line, then environment, then config file.
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix(_envPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		if !reported {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "docextract", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil && h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	switch len(args) {
	case 1:
		p.Input = args[0]
	case 0:
		fmt.Fprintln(cmd.Stderr, "Please provide an input file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	default:
		fmt.Fprintf(cmd.Stderr, "Expected exactly one input file, got %d: %q\n", len(args), args)
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

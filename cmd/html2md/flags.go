package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command line flags.
type cliFlags struct {
	output  string
	config  string
	preview string
	quiet   bool
	verbose bool
	version bool
	help    bool
}

const usageText = `Usage: html2md [flags] [input.html]

Converts HTML to Markdown. Reads the given file, or stdin when no file
(or "-") is given, and writes Markdown to stdout or --output.

Flags:
`

// newFlagSet builds the flag set bound to fl.
func newFlagSet(fl *cliFlags, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("html2md", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, usageText)
		fs.PrintDefaults()
	}

	fs.StringVarP(&fl.output, "output", "o", "", "output file (default: stdout)")
	fs.StringVar(&fl.config, "config", "", "YAML config file")
	fs.StringVar(&fl.preview, "preview", "", "also write an HTML preview of the Markdown to this file")
	fs.BoolVarP(&fl.quiet, "quiet", "q", false, "suppress warnings")
	fs.BoolVarP(&fl.verbose, "verbose", "v", false, "verbose output to stderr")
	fs.BoolVar(&fl.version, "version", false, "print version and exit")

	return fs
}

// parseFlags parses args (without the program name) and returns the
// flags and remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fl := &cliFlags{}
	fs := newFlagSet(fl, io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fl.help = true
			return fl, nil, nil
		}
		return nil, nil, err
	}
	return fl, fs.Args(), nil
}

// printUsage writes the full usage text to w.
func printUsage(w io.Writer) {
	fs := newFlagSet(&cliFlags{}, w)
	fs.Usage()
}

package main

import (
	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	extensions    []string
	extensionsSet bool // -x given at all; distinguishes "none" from "explicitly none"
	output        string
	standalone    bool
	webEnv        bool
	quiet         bool
	version       bool
}

// parseFlags parses args (including the program name) and returns the
// flags plus positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringArrayVarP(&f.extensions, "extension", "x", nil,
		"extension token, repeatable (e.g. -x tables -x 'toc(permalink=True)')")
	fs.StringVarP(&f.output, "output", "o", "",
		"output file (default: stdout)")
	fs.BoolVar(&f.standalone, "standalone", false,
		"wrap the body in a complete HTML5 document with stylesheet and scripts")
	fs.BoolVar(&f.webEnv, "webenv", false,
		"reference MathJax from its CDN instead of the local installation")
	fs.BoolVarP(&f.quiet, "quiet", "q", false,
		"suppress extension warnings")
	fs.BoolVar(&f.version, "version", false,
		"print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	f.extensionsSet = fs.Changed("extension")
	return f, fs.Args(), nil
}

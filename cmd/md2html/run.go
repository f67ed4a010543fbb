package main

import (
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	md2html "github.com/alnah/go-md2html"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("usage: md2html [flags] <input.md>")
	ErrInvalidExtension = errors.New("file must have a markdown extension (.md, .mkd, .mkdn, .mdown, .markdown)")
)

// markdownExtensions are the input file suffixes accepted by the CLI.
var markdownExtensions = []string{".md", ".mkd", ".mkdn", ".mdwn", ".mdown", ".markdown"}

// htmlTemplate wraps the produced fragment in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
%s%s</head>
<body>
%s
</body>
</html>
`

// run parses arguments, converts the input file, and writes the result.
func run(args []string, stdout, stderr io.Writer) error {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintln(stdout, "md2html "+Version)
		return nil
	}

	if len(positional) != 1 {
		return ErrUsage
	}
	inputPath := positional[0]

	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided by design
	if err != nil {
		return fmt.Errorf("reading markdown file: %w", err)
	}

	opts := []md2html.Option{md2html.WithFilename(inputPath)}
	if flags.extensionsSet {
		opts = append(opts, md2html.WithExtensions(flags.extensions))
	}
	if !flags.quiet {
		opts = append(opts, md2html.WithWarnFunc(func(warning error) {
			fmt.Fprintln(stderr, "warning:", warning)
		}))
	}

	markup, err := md2html.New(opts...)
	if err != nil {
		return err
	}

	doc, err := markup.Convert(string(content))
	if err != nil {
		return err
	}

	out := doc.Body
	if flags.standalone {
		out = renderStandalone(doc, flags.webEnv)
	}

	if flags.output == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}
	if err := os.WriteFile(flags.output, []byte(out), 0o644); err != nil { // #nosec G306 -- rendered HTML is not sensitive
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// validateMarkdownExtension checks the input file suffix.
func validateMarkdownExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range markdownExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidExtension, path)
}

// renderStandalone assembles a complete HTML5 document from a conversion
// result.
func renderStandalone(doc *md2html.ConvertedDocument, webEnv bool) string {
	title := doc.Title
	if title == "" {
		title = "Document"
	}

	var head strings.Builder
	if doc.Stylesheet != "" {
		head.WriteString("<style>\n")
		head.WriteString(doc.Stylesheet)
		head.WriteString("</style>\n")
	}

	js := doc.JavaScript(webEnv)
	if js != "" {
		js += "\n"
	}

	return fmt.Sprintf(htmlTemplate,
		html.EscapeString(title),
		head.String(),
		js,
		strings.TrimRight(doc.Body, "\n"),
	)
}

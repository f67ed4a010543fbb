// Package metaext is a goldmark extension that reads a plain metadata block
// from the head of a document: consecutive "Key: value" lines ending at the
// first blank line. The block is removed from the rendered output and the
// fields are exposed through the parser context.
//
// This is the plain-text cousin of YAML front matter. Keys are
// case-insensitive; continuation lines indented by four spaces or a tab are
// folded into the previous field.
package metaext

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var contextKey = parser.NewContextKey()

var keyRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Extension wires the metadata transformer into a goldmark instance.
type Extension struct{}

// Meta is the shared extension instance; it carries no state.
var Meta = &Extension{}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(&transformer{}, 0),
		),
	)
}

type transformer struct{}

// Transform inspects the first paragraph of the document. If every line is
// a "Key: value" field (or an indented continuation), the paragraph is
// consumed as metadata; otherwise the document is left untouched.
func (t *transformer) Transform(doc *gast.Document, reader text.Reader, pc parser.Context) {
	para, ok := doc.FirstChild().(*gast.Paragraph)
	if !ok {
		return
	}

	source := reader.Source()
	fields := map[string]string{}
	lastKey := ""

	lines := para.Lines()
	for i := 0; i < lines.Len(); i++ {
		// Paragraph segments have their indentation stripped; walk back to
		// the line start so continuation indents stay visible.
		seg := lines.At(i)
		start := seg.Start
		for start > 0 && source[start-1] != '\n' {
			start--
		}
		line := strings.TrimRight(string(source[start:seg.Stop]), "\r\n")
		if lastKey != "" && (strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")) {
			fields[lastKey] += " " + strings.TrimSpace(line)
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found || !keyRe.MatchString(key) {
			return
		}
		lastKey = strings.ToLower(key)
		fields[lastKey] = strings.TrimSpace(value)
	}

	if len(fields) == 0 {
		return
	}
	pc.Set(contextKey, fields)
	doc.RemoveChild(doc, para)
}

// Get returns the metadata fields parsed from the document head, or nil if
// the document has none. Keys are lowercased.
func Get(pc parser.Context) map[string]string {
	v := pc.Get(contextKey)
	if v == nil {
		return nil
	}
	return v.(map[string]string)
}

// Title returns the "title" field, or an empty string.
func Title(pc parser.Context) string {
	return Get(pc)["title"]
}

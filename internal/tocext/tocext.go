// Package tocext is a goldmark extension for heading anchors: it enables
// automatic heading IDs and can append a permalink anchor to every heading,
// the way documentation sites mark linkable sections.
package tocext

import (
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// defaultPermalinkText is the pilcrow conventionally used for header links.
const defaultPermalinkText = "¶"

// Extension wires heading IDs and optional permalink anchors into a
// goldmark instance.
type Extension struct {
	permalink     bool
	permalinkText string
}

// Option configures an Extension.
type Option func(*Extension)

// WithPermalink appends an anchor link to each heading.
func WithPermalink(enabled bool) Option {
	return func(e *Extension) { e.permalink = enabled }
}

// WithPermalinkText overrides the anchor text.
func WithPermalinkText(text string) Option {
	return func(e *Extension) { e.permalinkText = text }
}

// New creates a toc extension.
func New(opts ...Option) *Extension {
	e := &Extension{permalinkText: defaultPermalinkText}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithAutoHeadingID())
	if e.permalink {
		m.Parser().AddOptions(
			parser.WithASTTransformers(
				util.Prioritized(&permalinkTransformer{text: e.permalinkText}, 100),
			),
		)
	}
}

type permalinkTransformer struct {
	text string
}

func (t *permalinkTransformer) Transform(doc *gast.Document, reader text.Reader, pc parser.Context) {
	_ = gast.Walk(doc, func(n gast.Node, entering bool) (gast.WalkStatus, error) {
		if !entering {
			return gast.WalkContinue, nil
		}
		heading, ok := n.(*gast.Heading)
		if !ok {
			return gast.WalkContinue, nil
		}
		id, ok := heading.AttributeString("id")
		if !ok {
			return gast.WalkContinue, nil
		}
		idBytes, ok := id.([]byte)
		if !ok {
			return gast.WalkContinue, nil
		}

		link := gast.NewLink()
		link.Destination = append([]byte("#"), idBytes...)
		link.Title = []byte("Permanent link")
		link.AppendChild(link, gast.NewString([]byte(t.text)))
		heading.AppendChild(heading, link)
		return gast.WalkContinue, nil
	})
}

// Package mathext is a goldmark extension that recognizes TeX math
// delimiters and renders them as the MathJax script markers
// (<script type="math/tex">) that downstream viewers already understand.
//
// Display math ($$...$$, \[...\], and $$ fence blocks) is always
// recognized. Single-dollar inline math is opt-in because plain prose uses
// $ for currency.
package mathext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Extension wires the math parsers and renderer into a goldmark instance.
type Extension struct {
	inlineDollar bool
}

// Option configures an Extension.
type Option func(*Extension)

// WithInlineDollar enables $...$ as an inline math delimiter.
func WithInlineDollar(enabled bool) Option {
	return func(e *Extension) { e.inlineDollar = enabled }
}

// New creates a math extension.
func New(opts ...Option) *Extension {
	e := &Extension{}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(
			util.Prioritized(&blockParser{}, 701),
		),
		parser.WithInlineParsers(
			util.Prioritized(&inlineDollarParser{enableDollar: e.inlineDollar}, 501),
			util.Prioritized(&inlineBracketParser{}, 502),
		),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(NewHTMLRenderer(), 501),
		),
	)
}

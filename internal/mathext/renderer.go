package mathext

import (
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

const (
	inlineOpen  = `<script type="math/tex">`
	displayOpen = `<script type="math/tex; mode=display">`
	scriptClose = `</script>`
)

// HTMLRenderer renders math nodes as MathJax script markers. TeX content is
// written verbatim: browsers treat script bodies as raw text, and MathJax
// expects unescaped TeX.
type HTMLRenderer struct{}

// NewHTMLRenderer creates a renderer for math nodes.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindInline, r.renderInline)
	reg.Register(KindBlock, r.renderBlock)
}

func (r *HTMLRenderer) renderInline(w util.BufWriter, source []byte, n gast.Node, entering bool) (gast.WalkStatus, error) {
	if !entering {
		return gast.WalkContinue, nil
	}
	if n.(*Inline).Display {
		_, _ = w.WriteString(displayOpen)
	} else {
		_, _ = w.WriteString(inlineOpen)
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		segment := c.(*gast.Text).Segment
		_, _ = w.Write(segment.Value(source))
	}
	_, _ = w.WriteString(scriptClose)
	return gast.WalkSkipChildren, nil
}

func (r *HTMLRenderer) renderBlock(w util.BufWriter, source []byte, n gast.Node, entering bool) (gast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<p>\n" + displayOpen + "\n")
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			_, _ = w.Write(line.Value(source))
		}
	} else {
		_, _ = w.WriteString(scriptClose + "\n</p>\n")
	}
	return gast.WalkContinue, nil
}

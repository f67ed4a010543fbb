package mathext

import (
	"strconv"

	gast "github.com/yuin/goldmark/ast"
)

// KindInline is the node kind of inline math spans.
var KindInline = gast.NewNodeKind("MathInline")

// Inline is a TeX math span inside a paragraph. Display marks spans written
// with display delimiters ($$...$$ or \[...\]).
type Inline struct {
	gast.BaseInline
	Display bool
}

// NewInline creates an inline math node.
func NewInline(display bool) *Inline {
	return &Inline{Display: display}
}

// Dump implements ast.Node.Dump.
func (n *Inline) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, map[string]string{
		"Display": strconv.FormatBool(n.Display),
	}, nil)
}

// Kind implements ast.Node.Kind.
func (n *Inline) Kind() gast.NodeKind {
	return KindInline
}

// KindBlock is the node kind of $$ fenced math blocks.
var KindBlock = gast.NewNodeKind("MathBlock")

// Block is a display math block fenced by $$ lines. Its content is raw TeX;
// no inline markdown parsing happens inside.
type Block struct {
	gast.BaseBlock
}

// NewBlock creates a math block node.
func NewBlock() *Block {
	return &Block{}
}

// Dump implements ast.Node.Dump.
func (n *Block) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, nil, nil)
}

// Kind implements ast.Node.Kind.
func (n *Block) Kind() gast.NodeKind {
	return KindBlock
}

// IsRaw reports that block content must not be parsed as inline markdown.
func (n *Block) IsRaw() bool {
	return true
}

package mathext

import (
	"bytes"

	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// inlineDollarParser parses $...$ (when enabled) and $$...$$ spans within a
// single line.
type inlineDollarParser struct {
	enableDollar bool
}

func (p *inlineDollarParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *inlineDollarParser) Parse(parent gast.Node, block text.Reader, pc parser.Context) gast.Node {
	line, startSegment := block.PeekLine()

	opener := 1
	if len(line) > 1 && line[1] == '$' {
		opener = 2
	}
	if opener == 1 && !p.enableDollar {
		return nil
	}

	closer := bytes.Index(line[opener:], line[:opener])
	if closer <= 0 {
		return nil
	}
	content := line[opener : opener+closer]
	if opener == 1 && (content[0] == ' ' || content[len(content)-1] == ' ') {
		// "$5 and $6" is prose, not math
		return nil
	}

	node := NewInline(opener == 2)
	seg := text.NewSegment(startSegment.Start+opener, startSegment.Start+opener+closer)
	node.AppendChild(node, gast.NewTextSegment(seg))
	block.Advance(opener*2 + closer)
	return node
}

// inlineBracketParser parses \(...\) and \[...\] spans within a single line.
type inlineBracketParser struct{}

func (p *inlineBracketParser) Trigger() []byte {
	return []byte{'\\'}
}

func (p *inlineBracketParser) Parse(parent gast.Node, block text.Reader, pc parser.Context) gast.Node {
	line, startSegment := block.PeekLine()
	if len(line) < 4 {
		return nil
	}

	var closing []byte
	display := false
	switch line[1] {
	case '(':
		closing = []byte{'\\', ')'}
	case '[':
		closing = []byte{'\\', ']'}
		display = true
	default:
		return nil
	}

	idx := bytes.Index(line[2:], closing)
	if idx < 0 {
		return nil
	}

	node := NewInline(display)
	seg := text.NewSegment(startSegment.Start+2, startSegment.Start+2+idx)
	node.AppendChild(node, gast.NewTextSegment(seg))
	block.Advance(2 + idx + 2)
	return node
}

var blockDelimiter = []byte("$$")

// blockParser parses display math fenced by lines containing only $$.
type blockParser struct{}

func (p *blockParser) Trigger() []byte {
	return []byte{'$'}
}

func (p *blockParser) Open(parent gast.Node, reader text.Reader, pc parser.Context) (gast.Node, parser.State) {
	line, segment := reader.PeekLine()
	if !bytes.Equal(bytes.TrimSpace(line), blockDelimiter) {
		return nil, parser.NoChildren
	}
	reader.Advance(segment.Len() - 1)
	return NewBlock(), parser.NoChildren
}

func (p *blockParser) Continue(node gast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, segment := reader.PeekLine()
	if bytes.Equal(bytes.TrimSpace(line), blockDelimiter) {
		reader.Advance(segment.Len() - 1)
		return parser.Close
	}
	node.Lines().Append(segment)
	return parser.Continue | parser.NoChildren
}

func (p *blockParser) Close(node gast.Node, reader text.Reader, pc parser.Context) {
}

func (p *blockParser) CanInterruptParagraph() bool {
	return false
}

func (p *blockParser) CanAcceptIndentedLine() bool {
	return false
}

// Package extcfg parses user-supplied extension tokens: the per-document
// Required-Extensions directive, call-like configuration tokens such as
// toc(permalink=True), and plain-text extension list files.
//
// Configuration values are restricted to a literal grammar (booleans,
// numbers, strings, and literal sequences of these). Nothing in a token is
// ever evaluated, so a hostile configuration line cannot execute code.
package extcfg

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformed indicates a token whose parenthesized argument list is not a
// literal-only keyword expression.
var ErrMalformed = errors.New("malformed extension configuration")

// Config maps configuration keys to literal values: bool, int64, float64,
// string, nil, or []any of these.
type Config = map[string]any

// Parse splits an extension token into its raw name and configuration.
// Bare names yield an empty Config. Call-like tokens must consist of
// keyword arguments with literal values; anything else (bare identifier
// references, nested calls, positional arguments) is rejected with an
// error wrapping ErrMalformed.
func Parse(token string) (string, Config, error) {
	p := &parser{input: token}
	p.skipSpaces()

	name := p.readIdent()
	if name == "" {
		return "", nil, fmt.Errorf("%w: %q: missing extension name", ErrMalformed, token)
	}

	p.skipSpaces()
	if p.eof() {
		return name, Config{}, nil
	}

	if p.peek() != '(' {
		return "", nil, fmt.Errorf("%w: %q: unexpected character %q after name", ErrMalformed, token, p.peek())
	}

	cfg, err := p.readKeywordArgs()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrMalformed, token, err)
	}

	p.skipSpaces()
	if !p.eof() {
		return "", nil, fmt.Errorf("%w: %q: trailing characters after argument list", ErrMalformed, token)
	}

	return name, cfg, nil
}

// parser is a recursive-descent scanner over a single token string.
type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

func (p *parser) skipSpaces() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

// readIdent consumes a dotted identifier: letters, digits, '_' and '.'.
func (p *parser) readIdent() string {
	start := p.pos
	for !p.eof() && isIdentChar(p.peek()) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '.'
}

// readKeywordArgs consumes "(key=value, ...)" and returns the mapping.
// A trailing comma before the closing parenthesis is accepted.
func (p *parser) readKeywordArgs() (Config, error) {
	p.pos++ // consume '('
	cfg := Config{}

	for {
		p.skipSpaces()
		if p.eof() {
			return nil, errors.New("unterminated argument list")
		}
		if p.peek() == ')' {
			p.pos++
			return cfg, nil
		}

		key := p.readIdent()
		if key == "" {
			return nil, fmt.Errorf("expected keyword argument, found %q", p.peek())
		}

		p.skipSpaces()
		if p.eof() || p.peek() != '=' {
			return nil, fmt.Errorf("argument %q is not a keyword argument", key)
		}
		p.pos++ // consume '='

		p.skipSpaces()
		value, err := p.readValue()
		if err != nil {
			return nil, err
		}
		cfg[key] = value

		p.skipSpaces()
		if p.eof() {
			return nil, errors.New("unterminated argument list")
		}
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			// closed on next iteration
		default:
			return nil, fmt.Errorf("unexpected character %q after value of %q", p.peek(), key)
		}
	}
}

// readValue consumes one literal value.
func (p *parser) readValue() (any, error) {
	if p.eof() {
		return nil, errors.New("missing value")
	}
	switch c := p.peek(); {
	case c == '\'' || c == '"':
		return p.readString()
	case c == '[':
		return p.readSequence('[', ']')
	case c == '(':
		return p.readSequence('(', ')')
	case c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.':
		return p.readNumber()
	case isIdentChar(c):
		return p.readKeywordValue()
	default:
		return nil, fmt.Errorf("value starting with %q is not a literal", c)
	}
}

// readKeywordValue accepts the literal keywords of both spellings the token
// sources use in the wild: Python-style True/False/None and Go-style
// true/false/nil. Any other identifier is a reference, not a literal.
func (p *parser) readKeywordValue() (any, error) {
	word := p.readIdent()
	switch word {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	case "None", "nil":
		return nil, nil
	default:
		return nil, fmt.Errorf("identifier %q is not a literal value", word)
	}
}

func (p *parser) readString() (string, error) {
	quote := p.peek()
	p.pos++
	var out []byte
	for !p.eof() {
		c := p.peek()
		p.pos++
		switch c {
		case quote:
			return string(out), nil
		case '\\':
			if p.eof() {
				return "", errors.New("unterminated string escape")
			}
			e := p.peek()
			p.pos++
			switch e {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			default:
				// \\, \', \" and anything else: keep the escaped character.
				out = append(out, e)
			}
		default:
			out = append(out, c)
		}
	}
	return "", errors.New("unterminated string literal")
}

// readNumber consumes an integer or floating point literal. Integers come
// back as int64, everything else as float64.
func (p *parser) readNumber() (any, error) {
	start := p.pos
	if p.peek() == '-' || p.peek() == '+' {
		p.pos++
	}
	for !p.eof() {
		c := p.peek()
		if c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' {
			p.pos++
			continue
		}
		if (c == '-' || c == '+') && (p.input[p.pos-1] == 'e' || p.input[p.pos-1] == 'E') {
			p.pos++
			continue
		}
		break
	}
	lit := p.input[start:p.pos]
	if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("%q is not a number literal", lit)
}

// readSequence consumes a list or tuple literal. Both come back as []any;
// the distinction carries no meaning for extension configuration.
func (p *parser) readSequence(opener, closer byte) (any, error) {
	p.pos++ // consume opener
	items := []any{}
	for {
		p.skipSpaces()
		if p.eof() {
			return nil, fmt.Errorf("unterminated sequence starting with %q", opener)
		}
		if p.peek() == closer {
			p.pos++
			return items, nil
		}
		v, err := p.readValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)

		p.skipSpaces()
		if p.eof() {
			return nil, fmt.Errorf("unterminated sequence starting with %q", opener)
		}
		switch p.peek() {
		case ',':
			p.pos++
		case closer:
			// closed on next iteration
		default:
			return nil, fmt.Errorf("unexpected character %q in sequence", p.peek())
		}
	}
}

// Package parse turns source text into syntax trees.
//
// Tokens are separated by whitespace. Integers become pushes, and anything
// that is not a control keyword becomes a word:
//
//	: name ... ;                definition
//	if ... then                 conditional
//	if ... else ... then        conditional with alternative
//	do ... loop                 counted loop
//	." text"                    print a string
//	( comment )  \ comment      ignored
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jcorbin/treeforth/internal/syntax"
)

// Pos is a 1-based line and column within parsed source.
type Pos struct {
	Line int
	Col  int
}

func (pos Pos) String() string { return fmt.Sprintf("%v:%v", pos.Line, pos.Col) }

// SyntaxError reports source that can never parse, no matter what follows.
type SyntaxError struct {
	Pos
	Mess string
}

func (err *SyntaxError) Error() string { return fmt.Sprintf("%v: %v", err.Pos, err.Mess) }

// IncompleteError reports source that ended inside a construct; more input
// may complete it.
type IncompleteError struct {
	Pos
	Construct string
}

func (err *IncompleteError) Error() string {
	return fmt.Sprintf("%v: unterminated %q", err.Pos, err.Construct)
}

// IsIncomplete returns true if err means that the source just needs more input.
func IsIncomplete(err error) bool {
	var ie *IncompleteError
	return errors.As(err, &ie)
}

// Line parses src, which may span several lines, into a top-level sequence.
func Line(src string) (syntax.Sequence, error) {
	p := parser{src: src, line: 1, col: 1}
	seq, _, err := p.phrase("", Pos{})
	return seq, err
}

var terminators = map[string]bool{
	";":    true,
	"else": true,
	"then": true,
	"loop": true,
}

type parser struct {
	src  string
	off  int
	line int
	col  int
}

// phrase parses nodes until one of ends is scanned, returning the end found.
// An empty construct means top level, where only the end of input ends.
func (p *parser) phrase(construct string, start Pos, ends ...string) (seq syntax.Sequence, end string, err error) {
	seq = syntax.Sequence{}
	for {
		tok, pos, ok := p.token()
		if !ok {
			if construct != "" {
				return nil, "", &IncompleteError{start, construct}
			}
			return seq, "", nil
		}
		for _, end := range ends {
			if tok == end {
				return seq, end, nil
			}
		}
		if terminators[tok] {
			return nil, "", &SyntaxError{pos, fmt.Sprintf("unexpected %q", tok)}
		}
		node, err := p.node(tok, pos)
		if err != nil {
			return nil, "", err
		}
		if node != nil {
			seq = append(seq, node)
		}
	}
}

func (p *parser) node(tok string, pos Pos) (syntax.Node, error) {
	switch tok {
	case ":":
		body, _, err := p.phrase(":", pos, ";")
		if err != nil {
			return nil, err
		}
		return syntax.Definition{Body: body}, nil

	case "if":
		cons, end, err := p.phrase("if", pos, "else", "then")
		if err != nil {
			return nil, err
		}
		cond := syntax.Conditional{Consequent: cons}
		if end == "else" {
			alt, _, err := p.phrase("if", pos, "then")
			if err != nil {
				return nil, err
			}
			cond.Alternative = alt
		}
		return cond, nil

	case "do":
		body, _, err := p.phrase("do", pos, "loop")
		if err != nil {
			return nil, err
		}
		return syntax.CountedLoop{Body: body}, nil

	case `."`:
		s, ok := p.until('"')
		if !ok {
			return nil, &SyntaxError{pos, "unterminated string"}
		}
		return syntax.PrintString(s), nil

	case "(":
		if _, ok := p.until(')'); !ok {
			return nil, &IncompleteError{pos, "("}
		}
		return nil, nil

	case `\`:
		p.until('\n')
		return nil, nil
	}

	n, err := strconv.ParseInt(tok, 10, 64)
	if err == nil {
		return syntax.Push(n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return nil, &SyntaxError{pos, fmt.Sprintf("number %v out of range", tok)}
	}
	return syntax.Word(tok), nil
}

// token scans the next whitespace delimited token, consuming the single
// delimiter that follows it.
func (p *parser) token() (tok string, pos Pos, ok bool) {
	for p.off < len(p.src) {
		r, _ := utf8.DecodeRuneInString(p.src[p.off:])
		if !unicode.IsSpace(r) {
			break
		}
		p.advance()
	}
	if p.off >= len(p.src) {
		return "", Pos{p.line, p.col}, false
	}
	pos = Pos{p.line, p.col}
	start := p.off
	for p.off < len(p.src) {
		r, _ := utf8.DecodeRuneInString(p.src[p.off:])
		if unicode.IsSpace(r) {
			break
		}
		p.advance()
	}
	tok = p.src[start:p.off]
	if p.off < len(p.src) && p.src[p.off] != '\n' {
		p.advance()
	}
	return tok, pos, true
}

// until consumes text up to and including delim, returning the text before it.
func (p *parser) until(delim rune) (string, bool) {
	i := strings.IndexRune(p.src[p.off:], delim)
	if i < 0 {
		for p.off < len(p.src) {
			p.advance()
		}
		return "", false
	}
	start := p.off
	end := start + i
	for p.off < end {
		p.advance()
	}
	p.advance()
	return p.src[start:end], true
}

func (p *parser) advance() {
	r, n := utf8.DecodeRuneInString(p.src[p.off:])
	p.off += n
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
}

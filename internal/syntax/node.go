// Package syntax defines the parsed form of a program: a small closed set of
// node types that the evaluator walks. Nodes carry no behavior beyond
// rendering themselves back into source-like text; every well-formedness
// check happens when a node is executed.
package syntax

import (
	"strconv"
	"strings"
)

// Node is one of Sequence, Push, PrintString, Word, Definition,
// Conditional, or CountedLoop.
type Node interface {
	String() string
	node()
}

// Sequence is a phrase: nodes executed left to right.
type Sequence []Node

// Push pushes a literal value onto the stack.
type Push int64

// PrintString displays its text.
type PrintString string

// Word names a built-in or user-defined operation, resolved when executed.
type Word string

// Definition compiles a new word. Its Body should be a Sequence whose first
// element is the Word naming the definition.
type Definition struct {
	Body Node
}

// Conditional pops a flag and runs Consequent if it is true, Alternative
// otherwise. Either branch may be nil.
type Conditional struct {
	Consequent  Node
	Alternative Node
}

// CountedLoop runs Body once for each index in a range taken from the stack.
type CountedLoop struct {
	Body Node
}

func (Sequence) node()    {}
func (Push) node()        {}
func (PrintString) node() {}
func (Word) node()        {}
func (Definition) node()  {}
func (Conditional) node() {}
func (CountedLoop) node() {}

func (seq Sequence) String() string {
	var sb strings.Builder
	seq.writeTo(&sb)
	return sb.String()
}

func (seq Sequence) writeTo(sb *strings.Builder) {
	for i, n := range seq {
		if i > 0 {
			sb.WriteByte(' ')
		}
		writeNode(sb, n)
	}
}

func (p Push) String() string         { return strconv.FormatInt(int64(p), 10) }
func (ps PrintString) String() string { return `." ` + string(ps) + `"` }
func (w Word) String() string         { return string(w) }

func (def Definition) String() string {
	var sb strings.Builder
	sb.WriteString(":")
	writeBody(&sb, def.Body)
	sb.WriteString(" ;")
	return sb.String()
}

func (cond Conditional) String() string {
	var sb strings.Builder
	sb.WriteString("if")
	writeBody(&sb, cond.Consequent)
	if cond.Alternative != nil {
		sb.WriteString(" else")
		writeBody(&sb, cond.Alternative)
	}
	sb.WriteString(" then")
	return sb.String()
}

func (loop CountedLoop) String() string {
	var sb strings.Builder
	sb.WriteString("do")
	writeBody(&sb, loop.Body)
	sb.WriteString(" loop")
	return sb.String()
}

func writeBody(sb *strings.Builder, body Node) {
	if seq, ok := body.(Sequence); ok && len(seq) == 0 {
		return
	}
	if body != nil {
		sb.WriteByte(' ')
		writeNode(sb, body)
	}
}

func writeNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case nil:
		sb.WriteString("<nil>")
	case Sequence:
		n.writeTo(sb)
	default:
		sb.WriteString(n.String())
	}
}

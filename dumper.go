package main

import (
	"fmt"
	"io"

	"github.com/jcorbin/treeforth/internal/eval"
	"github.com/jcorbin/treeforth/internal/syntax"
)

type sessionDumper struct {
	ev  *eval.Evaluator
	out io.Writer
}

func (dump sessionDumper) dump() {
	fmt.Fprintf(dump.out, "# Session Dump\n")
	dump.dumpStack()
	dump.dumpDict()
}

func (dump sessionDumper) dumpStack() {
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.ev.Stack())
}

func (dump sessionDumper) dumpDict() {
	words := dump.ev.Words()
	if len(words) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Dictionary\n")
	for _, name := range words {
		phrase, _ := dump.ev.Lookup(name)
		def := syntax.Definition{Body: append(syntax.Sequence{syntax.Word(name)}, phrase...)}
		fmt.Fprintf(dump.out, "  %v\n", def)
	}
}

// Dump writes the session's operand stack and dictionary to w.
func (sess *Session) Dump(w io.Writer) {
	sessionDumper{sess.ev, w}.dump()
}

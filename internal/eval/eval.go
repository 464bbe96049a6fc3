// Package eval executes syntax trees against an operand stack and a
// dictionary of user defined words.
package eval

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jcorbin/treeforth/internal/syntax"
)

// DefaultDepthLimit bounds how deeply nodes may nest during execution, which
// mostly matters for recursive words.
const DefaultDepthLimit = 10000

// Forth truth values.
const (
	True  int64 = -1
	False int64 = 0
)

// Evaluator holds the state of one interpreter session. It is not safe for
// concurrent use; independent sessions each need their own Evaluator.
type Evaluator struct {
	logging
	out    io.Writer
	report func(err error)

	stack []int64
	dict  map[string]syntax.Sequence

	// loops holds the index of every active counted loop, innermost last.
	loops []int64

	depth      int
	depthLimit int
}

// New creates an Evaluator with an empty stack and dictionary.
func New(opts ...Option) *Evaluator {
	ev := &Evaluator{
		out:        io.Discard,
		dict:       make(map[string]syntax.Sequence),
		depthLimit: DefaultDepthLimit,
	}
	Options(opts...).apply(ev)
	if ev.report == nil {
		ev.report = ev.printError
	}
	return ev
}

// Exec executes one node. Failures inside a Sequence are reported and do not
// stop its remaining elements, so executing a Sequence only fails when the
// depth limit unwinds through it; any other node returns its own failure.
func (ev *Evaluator) Exec(node syntax.Node) error {
	if ev.depthLimit > 0 && ev.depth >= ev.depthLimit {
		return ErrDepthExceeded
	}
	ev.depth++
	defer func() { ev.depth-- }()

	if ev.logfn != nil {
		if _, isSeq := node.(syntax.Sequence); !isSeq {
			ev.logf(ev.depth, "exec %v -- s:%v", node, ev.stack)
		}
	}

	switch n := node.(type) {
	case syntax.Sequence:
		return ev.sequence(n)
	case syntax.Push:
		ev.push(int64(n))
		return nil
	case syntax.PrintString:
		ev.println(string(n))
		return nil
	case syntax.Word:
		return ev.word(string(n))
	case syntax.Definition:
		return ev.define(n)
	case syntax.Conditional:
		return ev.conditional(n)
	case syntax.CountedLoop:
		return ev.countedLoop(n)
	case nil:
		return errors.New("cannot execute nil node")
	default:
		return fmt.Errorf("cannot execute %T node", node)
	}
}

func (ev *Evaluator) sequence(seq syntax.Sequence) error {
	for _, n := range seq {
		err := ev.Exec(n)
		if err == nil {
			continue
		}
		// a blown depth limit unwinds to the outermost sequence, rather than
		// letting every level of a runaway recursion carry on
		if ev.depth > 1 && errors.Is(err, ErrDepthExceeded) {
			return err
		}
		ev.report(err)
	}
	return nil
}

func (ev *Evaluator) define(def syntax.Definition) error {
	body, ok := def.Body.(syntax.Sequence)
	if !ok || len(body) == 0 {
		return MalformedDefinitionError{def.Body}
	}
	name, ok := body[0].(syntax.Word)
	if !ok {
		return MalformedDefinitionError{def.Body}
	}
	phrase := append(syntax.Sequence(nil), body[1:]...)
	ev.dict[string(name)] = phrase
	ev.logf(ev.depth, "define %q as %v", string(name), phrase)
	return nil
}

func (ev *Evaluator) conditional(cond syntax.Conditional) error {
	if len(ev.stack) < 1 {
		return underflowError{"if", 1, len(ev.stack)}
	}
	branch := cond.Alternative
	if ev.pop() == True {
		branch = cond.Consequent
	}
	if branch == nil {
		return nil
	}
	if _, ok := branch.(syntax.Sequence); !ok {
		return MalformedBodyError{"if", branch}
	}
	return ev.Exec(branch)
}

func (ev *Evaluator) countedLoop(loop syntax.CountedLoop) error {
	body, ok := loop.Body.(syntax.Sequence)
	if !ok {
		return MalformedBodyError{"do-loop", loop.Body}
	}
	if len(ev.stack) < 2 {
		return underflowError{"do", 2, len(ev.stack)}
	}
	start := ev.pop()
	end := ev.pop()

	top := len(ev.loops)
	ev.loops = append(ev.loops, start)
	defer func() { ev.loops = ev.loops[:top] }()

	for n := start; n < end; n++ {
		ev.loops[top] = n
		if err := ev.Exec(body); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) word(name string) error {
	if b, defined := builtins[name]; defined {
		return b.call(ev, name)
	}
	if name == "" {
		return nil
	}
	if name == "i" && len(ev.loops) > 0 {
		ev.push(ev.loops[len(ev.loops)-1])
		return nil
	}
	if phrase, defined := ev.dict[name]; defined {
		return ev.Exec(phrase)
	}
	return UnknownWordError(name)
}

func (ev *Evaluator) push(val int64) {
	ev.stack = append(ev.stack, val)
}

func (ev *Evaluator) pop() (val int64) {
	i := len(ev.stack) - 1
	val, ev.stack = ev.stack[i], ev.stack[:i]
	return val
}

func (ev *Evaluator) println(s string) {
	io.WriteString(ev.out, s)
	io.WriteString(ev.out, "\n")
}

func (ev *Evaluator) printError(err error) {
	ev.println("error: " + err.Error())
}

// Stack returns a copy of the operand stack, bottom first.
func (ev *Evaluator) Stack() []int64 {
	return append([]int64(nil), ev.stack...)
}

// Lookup returns the phrase compiled for a user defined word.
func (ev *Evaluator) Lookup(name string) (syntax.Sequence, bool) {
	phrase, defined := ev.dict[name]
	return phrase, defined
}

// Words returns the names of all user defined words in sorted order.
func (ev *Evaluator) Words() []string {
	names := make([]string, 0, len(ev.dict))
	for name := range ev.dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatStack(stack []int64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, val := range stack {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(val, 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(depth int, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", strings.Repeat(">", depth), mess)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/treeforth/internal/eval"
	"github.com/jcorbin/treeforth/internal/fileinput"
	"github.com/jcorbin/treeforth/internal/flushio"
	"github.com/jcorbin/treeforth/internal/parse"
	"github.com/jcorbin/treeforth/internal/syntax"
)

// Session couples an evaluator to line oriented input: queued input streams
// are read first, followed by any line readers such as an interactive prompt.
type Session struct {
	logging
	input   fileinput.Input
	readers []LineReader
	out     flushio.WriteFlusher
	tees    []flushio.WriteFlusher

	depthLimit int
	ev         *eval.Evaluator
}

// LineReader provides input lines along with their location.
type LineReader interface {
	ReadLine() (string, fileinput.Location, error)
}

// continuer is implemented by line readers that prompt differently while a
// phrase spans several lines.
type continuer interface {
	SetContinued(cont bool)
}

// errLineAborted may be returned by a LineReader to discard any partially
// read phrase.
var errLineAborted = errors.New("line aborted")

var errQuit = errors.New("quit")

const quitLine = "quit"

// Close closes all input.
func (sess *Session) Close() (err error) {
	err = sess.input.Close()
	for _, lr := range sess.readers {
		if cl, ok := lr.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	sess.readers = nil
	return err
}

func (sess *Session) run(ctx context.Context) error {
	readers := append([]LineReader{&sess.input}, sess.readers...)
	for len(readers) > 0 {
		err := sess.runFrom(ctx, readers[0])
		if !errors.Is(err, io.EOF) {
			return err
		}
		readers = readers[1:]
	}
	return nil
}

func (sess *Session) runFrom(ctx context.Context, lr LineReader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		seq, loc, perr, err := sess.readPhrase(lr)
		if errors.Is(err, errLineAborted) {
			continue
		} else if err != nil {
			if ferr := sess.out.Flush(); ferr != nil {
				return ferr
			}
			return err
		}
		if perr != nil {
			fmt.Fprintf(sess.out, "error: %v\n", parseError(loc, perr))
		} else {
			sess.exec(seq, loc)
		}
		if err := sess.out.Flush(); err != nil {
			return err
		}
	}
}

// readPhrase reads and parses one line, plus continuation lines while the
// parser reports a construct left open. Parse failures are returned as perr,
// separately from read errors.
func (sess *Session) readPhrase(lr LineReader) (seq syntax.Sequence, loc fileinput.Location, perr, err error) {
	cont, _ := lr.(continuer)
	if cont != nil {
		defer cont.SetContinued(false)
	}

	line, loc, err := lr.ReadLine()
	if err != nil {
		return nil, loc, nil, err
	}
	if strings.TrimSpace(line) == quitLine {
		sess.logf("%v quit", loc)
		return nil, loc, nil, errQuit
	}

	src := line
	for {
		seq, perr = parse.Line(src)
		if !parse.IsIncomplete(perr) {
			return seq, loc, perr, nil
		}
		if cont != nil {
			cont.SetContinued(true)
		}
		line, _, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			// report what is left unterminated
			return nil, loc, perr, nil
		} else if err != nil {
			return nil, loc, nil, err
		}
		src += "\n" + line
	}
}

func (sess *Session) exec(seq syntax.Sequence, loc fileinput.Location) {
	sess.logf("%v %v", loc, seq)
	if err := sess.ev.Exec(seq); err != nil {
		fmt.Fprintf(sess.out, "error: %v\n", err)
	}
}

// parseError renders err relative to the location of the first line parsed.
func parseError(loc fileinput.Location, err error) string {
	var (
		se *parse.SyntaxError
		ie *parse.IncompleteError
	)
	switch {
	case errors.As(err, &se):
		return fmt.Sprintf("%v:%v:%v: %v", loc.Name, loc.Line+se.Line-1, se.Col, se.Mess)
	case errors.As(err, &ie):
		return fmt.Sprintf("%v:%v:%v: unterminated %q", loc.Name, loc.Line+ie.Line-1, ie.Col, ie.Construct)
	default:
		return fmt.Sprintf("%v: %v", loc, err)
	}
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}

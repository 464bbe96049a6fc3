package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/treeforth/internal/eval"
	"github.com/jcorbin/treeforth/internal/flushio"
	"github.com/jcorbin/treeforth/internal/panicerr"
)

// New creates a Session; its evaluator starts with an empty stack and
// dictionary.
func New(opts ...SessionOption) *Session {
	var sess Session
	SessionOptions(defaults...).apply(&sess)
	SessionOptions(opts...).apply(&sess)
	sess.out = flushio.Tee(append([]flushio.WriteFlusher{sess.out}, sess.tees...)...)
	sess.tees = nil
	sess.ev = eval.New(
		eval.WithOutput(sess.out),
		eval.WithLogf(sess.logfn),
		eval.WithDepthLimit(sess.depthLimit),
	)
	return &sess
}

// Run reads, parses, and executes lines until input runs out, a quit line is
// read, or ctx is done. Failures while executing are reported to the output
// and do not end the session.
func (sess *Session) Run(ctx context.Context) error {
	err := panicerr.Recover("session", func() error {
		return sess.run(ctx)
	})
	if cerr := sess.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, io.EOF) || errors.Is(err, errQuit) {
		err = nil
	}
	return err
}

func WithInput(rs ...io.Reader) SessionOption    { return inputOption(rs) }
func WithOutput(w io.Writer) SessionOption       { return outputOption{w} }
func WithTee(w io.Writer) SessionOption          { return teeOption{w} }
func WithDepthLimit(limit int) SessionOption     { return depthLimitOption(limit) }
func WithLineReader(lr LineReader) SessionOption { return lineReaderOption{lr} }

func WithLogf(logfn func(mess string, args ...interface{})) SessionOption { return withLogfn(logfn) }

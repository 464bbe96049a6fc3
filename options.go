package main

import (
	"io"

	"github.com/jcorbin/treeforth/internal/eval"
	"github.com/jcorbin/treeforth/internal/flushio"
)

// SessionOption configures a Session under New.
type SessionOption interface{ apply(sess *Session) }

// SessionOptions combines any number of options into one.
func SessionOptions(opts ...SessionOption) SessionOption { return sessionOptions(opts) }

var defaults = []SessionOption{
	withOutput(io.Discard),
	depthLimitOption(eval.DefaultDepthLimit),
}

type sessionOptions []SessionOption

func (opts sessionOptions) apply(sess *Session) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(sess)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(sess *Session) {
	sess.logfn = logfn
}

type inputOption []io.Reader
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type depthLimitOption int
type lineReaderOption struct{ LineReader }

func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (rs inputOption) apply(sess *Session) {
	sess.input.Queue = append(sess.input.Queue, rs...)
}

func (o outputOption) apply(sess *Session) {
	if sess.out != nil {
		sess.out.Flush()
	}
	sess.out = flushio.NewWriteFlusher(o.Writer)
}

// tees are joined to the output once all options are applied, so a later
// output option keeps them.
func (o teeOption) apply(sess *Session) {
	sess.tees = append(sess.tees, flushio.NewWriteFlusher(o.Writer))
}

func (lim depthLimitOption) apply(sess *Session) {
	sess.depthLimit = int(lim)
}

func (o lineReaderOption) apply(sess *Session) {
	sess.readers = append(sess.readers, o.LineReader)
}

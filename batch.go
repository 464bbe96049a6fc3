package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/treeforth/internal/fileinput"
)

// opener opens a named script.
type opener func(name string) (io.Reader, error)

// runBatch runs every script in its own Session, concurrently. Each session
// first reads the prelude scripts. Outputs are written to out in script
// order once all sessions are done; the first session error is returned.
func runBatch(ctx context.Context, out io.Writer, open opener, prelude, scripts []string, opts ...SessionOption) error {
	opts = withoutOutput(opts)
	outs := make([]bytes.Buffer, len(scripts))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range scripts {
		i, name := i, name
		eg.Go(func() error {
			var inputs []io.Reader
			for _, pre := range append(prelude[:len(prelude):len(prelude)], name) {
				r, err := open(pre)
				if err != nil {
					closeAll(inputs)
					return err
				}
				inputs = append(inputs, fileinput.Named(pre, r))
			}
			sess := New(append(opts[:len(opts):len(opts)],
				WithInput(inputs...),
				WithOutput(&outs[i]),
				withLogPrefix(name+": ", opts),
			)...)
			if err := sess.Run(ctx); err != nil {
				return fmt.Errorf("%v: %w", name, err)
			}
			return nil
		})
	}
	err := eg.Wait()
	for i := range outs {
		if _, werr := outs[i].WriteTo(out); err == nil {
			err = werr
		}
	}
	return err
}

// withLogPrefix prefixes messages sent to any logging function among opts.
func withLogPrefix(prefix string, opts []SessionOption) SessionOption {
	var logfn withLogfn
	for _, opt := range opts {
		if fn, ok := opt.(withLogfn); ok {
			logfn = fn
		}
	}
	if logfn == nil {
		return nil
	}
	return withLogfn(func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	})
}

// withoutOutput drops any output options, since each session writes to its
// own buffer.
func withoutOutput(opts []SessionOption) []SessionOption {
	var keep []SessionOption
	for _, opt := range opts {
		if _, isOutput := opt.(outputOption); !isOutput {
			keep = append(keep, opt)
		}
	}
	return keep
}

func closeAll(rs []io.Reader) {
	for _, r := range rs {
		if cl, ok := r.(io.Closer); ok {
			cl.Close()
		}
	}
}

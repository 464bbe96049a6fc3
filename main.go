package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"

	"github.com/jcorbin/treeforth/internal/logio"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)

	cfg, err := parseConfig(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		log.ErrorIf(err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.Timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var opts = []SessionOption{
		WithOutput(os.Stdout),
		WithDepthLimit(cfg.DepthLimit),
	}
	if cfg.Trace {
		opts = append(opts,
			WithLogf(log.Leveledf("TRACE")),
			WithTee(&logio.Writer{Logf: log.Leveledf("OUT")}),
		)
	}

	open := func(name string) (io.Reader, error) { return os.Open(name) }
	if cfg.Batch {
		log.ErrorIf(runBatch(ctx, os.Stdout, open, cfg.Prelude, cfg.Scripts, opts...))
	} else {
		log.ErrorIf(runSession(ctx, cfg, open, opts...))
	}
	stop()
	os.Exit(log.ExitCode())
}

// runSession runs one session over the prelude, then either the script
// arguments or standard input.
func runSession(ctx context.Context, cfg Config, open opener, opts ...SessionOption) error {
	names := append(cfg.Prelude[:len(cfg.Prelude):len(cfg.Prelude)], cfg.Scripts...)
	var inputs []io.Reader
	for _, name := range names {
		r, err := open(name)
		if err != nil {
			closeAll(inputs)
			return err
		}
		inputs = append(inputs, r)
	}
	opts = append(opts, WithInput(inputs...))

	if len(cfg.Scripts) == 0 {
		if !cfg.NoTTY && isInteractive() {
			opts = append(opts, WithLineReader(newPromptReader(cfg)))
		} else {
			opts = append(opts, WithInput(stdin{os.Stdin}))
		}
	}
	sess := New(opts...)
	err := sess.Run(ctx)
	if cfg.Dump {
		sess.Dump(os.Stderr)
	}
	return err
}

// stdin names standard input without closing it.
type stdin struct{ io.Reader }

func (stdin) Name() string { return promptName }

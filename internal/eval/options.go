package eval

import "io"

// Option configures an Evaluator under New.
type Option interface{ apply(ev *Evaluator) }

// Options combines any number of options into one.
func Options(opts ...Option) Option { return options(opts) }

// WithOutput sets where display words and failure reports are written.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithLogf enables execution tracing through the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return logfnOption(logfn) }

// WithReporter replaces the default failure reporting, which prints each
// failure caught by a sequence to the output.
func WithReporter(report func(err error)) Option { return reporterOption(report) }

// WithDepthLimit bounds nested execution; 0 disables the limit.
func WithDepthLimit(limit int) Option { return depthLimitOption(limit) }

// WithStack seeds the operand stack, bottom first.
func WithStack(values ...int64) Option { return stackOption(values) }

type options []Option
type outputOption struct{ io.Writer }
type logfnOption func(mess string, args ...interface{})
type reporterOption func(err error)
type depthLimitOption int
type stackOption []int64

func (opts options) apply(ev *Evaluator) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(ev)
		}
	}
}

func (o outputOption) apply(ev *Evaluator)        { ev.out = o.Writer }
func (logfn logfnOption) apply(ev *Evaluator)     { ev.logfn = logfn }
func (report reporterOption) apply(ev *Evaluator) { ev.report = report }
func (lim depthLimitOption) apply(ev *Evaluator)  { ev.depthLimit = int(lim) }
func (vals stackOption) apply(ev *Evaluator)      { ev.stack = append(ev.stack, vals...) }

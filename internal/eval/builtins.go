package eval

import "strconv"

// builtin describes a primitive word. Its op receives the top arity values of
// the stack, bottom first, and returns the values that replace them. The
// stack is only changed when op succeeds.
type builtin struct {
	arity int
	op    func(ev *Evaluator, args []int64) ([]int64, error)
}

func (b builtin) call(ev *Evaluator, name string) error {
	if len(ev.stack) < b.arity {
		return underflowError{name, b.arity, len(ev.stack)}
	}
	i := len(ev.stack) - b.arity
	results, err := b.op(ev, ev.stack[i:])
	if err != nil {
		return err
	}
	ev.stack = append(ev.stack[:len(ev.stack)-b.arity], results...)
	return nil
}

var builtins = map[string]builtin{
	"*":   binary(func(a, b int64) int64 { return a * b }),
	"+":   binary(func(a, b int64) int64 { return a + b }),
	"-":   binary(func(a, b int64) int64 { return a - b }),
	"/":   divisor(func(a, b int64) int64 { return a / b }),
	"mod": divisor(func(a, b int64) int64 { return a % b }),

	"=":   binary(func(a, b int64) int64 { return flag(a == b) }),
	"and": binary(func(a, b int64) int64 { return flag(a == True && b == True) }),
	"or":  binary(func(a, b int64) int64 { return flag(a == True || b == True) }),

	"invert": {1, func(_ *Evaluator, args []int64) ([]int64, error) {
		return []int64{flag(args[0] != True)}, nil
	}},

	"dup": {0, func(ev *Evaluator, _ []int64) ([]int64, error) {
		if i := len(ev.stack) - 1; i >= 0 {
			return []int64{ev.stack[i]}, nil
		}
		return nil, nil
	}},
	"swap": {2, func(_ *Evaluator, args []int64) ([]int64, error) {
		return []int64{args[1], args[0]}, nil
	}},
	"clear": {0, func(ev *Evaluator, _ []int64) ([]int64, error) {
		ev.stack = ev.stack[:0]
		return nil, nil
	}},

	".": {1, func(ev *Evaluator, args []int64) ([]int64, error) {
		ev.println(strconv.FormatInt(args[0], 10))
		return nil, nil
	}},
	".s": {0, func(ev *Evaluator, _ []int64) ([]int64, error) {
		ev.println(formatStack(ev.stack))
		return nil, nil
	}},
}

func binary(f func(a, b int64) int64) builtin {
	return builtin{2, func(_ *Evaluator, args []int64) ([]int64, error) {
		return []int64{f(args[0], args[1])}, nil
	}}
}

func divisor(f func(a, b int64) int64) builtin {
	return builtin{2, func(_ *Evaluator, args []int64) ([]int64, error) {
		if args[1] == 0 {
			return nil, ErrDivideByZero
		}
		return []int64{f(args[0], args[1])}, nil
	}}
}

func flag(b bool) int64 {
	if b {
		return True
	}
	return False
}

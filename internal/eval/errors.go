package eval

import (
	"errors"
	"fmt"

	"github.com/jcorbin/treeforth/internal/syntax"
)

var (
	ErrStackUnderflow = errors.New("stack underflow")
	ErrDivideByZero   = errors.New("divide by zero")
	ErrDepthExceeded  = errors.New("execution depth limit exceeded")
)

type underflowError struct {
	op   string
	need int
	have int
}

func (err underflowError) Error() string {
	return fmt.Sprintf("%v: stack underflow, need %v have %v", err.op, err.need, err.have)
}

func (err underflowError) Is(target error) bool { return target == ErrStackUnderflow }

// UnknownWordError names a word that matched no built-in, no dictionary
// entry, and no active loop counter.
type UnknownWordError string

func (name UnknownWordError) Error() string { return fmt.Sprintf("unknown word %q", string(name)) }

// MalformedDefinitionError carries the body of a definition that was not a
// sequence starting with the new word's name.
type MalformedDefinitionError struct {
	Body syntax.Node
}

func (err MalformedDefinitionError) Error() string {
	if err.Body == nil {
		return "malformed definition: missing body"
	}
	return fmt.Sprintf("malformed definition: %q", err.Body.String())
}

// MalformedBodyError reports a conditional branch or loop body that was not a
// sequence.
type MalformedBodyError struct {
	Construct string
	Body      syntax.Node
}

func (err MalformedBodyError) Error() string {
	if err.Body == nil {
		return fmt.Sprintf("malformed %v body: missing", err.Construct)
	}
	return fmt.Sprintf("malformed %v body: %T %q", err.Construct, err.Body, err.Body.String())
}

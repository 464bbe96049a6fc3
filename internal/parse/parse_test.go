package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/treeforth/internal/syntax"
)

type (
	seq  = syntax.Sequence
	push = syntax.Push
	word = syntax.Word
)

func Test_Line(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		want seq
	}{
		{"empty", "", seq{}},
		{"blank", "  \t ", seq{}},
		{"numbers", "1 -2 +3 0", seq{push(1), push(-2), push(3), push(0)}},
		{"extremes", "9223372036854775807 -9223372036854775808", seq{
			push(9223372036854775807), push(-9223372036854775808),
		}},
		{"words", "dup . .s - mod", seq{word("dup"), word("."), word(".s"), word("-"), word("mod")}},
		{"case kept", "DUP Dup", seq{word("DUP"), word("Dup")}},
		{"arithmetic", "10 3 -", seq{push(10), push(3), word("-")}},
		{"string", `." hello world" 1`, seq{syntax.PrintString("hello world"), push(1)}},
		{"empty string", `." "`, seq{syntax.PrintString("")}},
		{"string keeps spacing", `."  two  spaces"`, seq{syntax.PrintString(" two  spaces")}},
		{"paren comment", "1 ( ignore me ) 2", seq{push(1), push(2)}},
		{"multi-line paren comment", "1 ( ignore\nme ) 2", seq{push(1), push(2)}},
		{"line comment", "1 \\ the rest\n2", seq{push(1), push(2)}},
		{"definition", ": sq dup * ;", seq{
			syntax.Definition{Body: seq{word("sq"), word("dup"), word("*")}},
		}},
		{"empty definition", ": ;", seq{syntax.Definition{Body: seq{}}}},
		{"numeric definition name", ": 5 dup ;", seq{
			syntax.Definition{Body: seq{push(5), word("dup")}},
		}},
		{"if then", "-1 if 1 then", seq{
			push(-1),
			syntax.Conditional{Consequent: seq{push(1)}},
		}},
		{"if else then", "if 1 else 2 then", seq{
			syntax.Conditional{Consequent: seq{push(1)}, Alternative: seq{push(2)}},
		}},
		{"empty branches", "if else then", seq{
			syntax.Conditional{Consequent: seq{}, Alternative: seq{}},
		}},
		{"do loop", "10 0 do i . loop", seq{
			push(10), push(0),
			syntax.CountedLoop{Body: seq{word("i"), word(".")}},
		}},
		{"nested", `: fizz 16 1 do i 3 mod 0 = if ." fizz" else i . then loop ;`, seq{
			syntax.Definition{Body: seq{
				word("fizz"),
				push(16), push(1),
				syntax.CountedLoop{Body: seq{
					word("i"), push(3), word("mod"), push(0), word("="),
					syntax.Conditional{
						Consequent:  seq{syntax.PrintString("fizz")},
						Alternative: seq{word("i"), word(".")},
					},
				}},
			}},
		}},
		{"multiple lines", ": sq\n  dup *\n;", seq{
			syntax.Definition{Body: seq{word("sq"), word("dup"), word("*")}},
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Line(tc.src)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.String(), got.String())
		})
	}
}

func Test_Line_errors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		src        string
		err        string
		incomplete bool
	}{
		{"open definition", ": sq dup", `1:1: unterminated ":"`, true},
		{"open if", "1 if 2", `1:3: unterminated "if"`, true},
		{"open else", "if 1 else 2", `1:1: unterminated "if"`, true},
		{"open do", "3 0 do i", `1:5: unterminated "do"`, true},
		{"open inner", ": x do if ;", `1:11: unexpected ";"`, false},
		{"open if in definition", ": x if", `1:5: unterminated "if"`, true},
		{"open on later line", "1\n: x", `2:1: unterminated ":"`, true},
		{"stray semicolon", "1 ;", `1:3: unexpected ";"`, false},
		{"stray then", "then", `1:1: unexpected "then"`, false},
		{"stray else", "1 2 else", `1:5: unexpected "else"`, false},
		{"stray loop", ": x loop ;", `1:5: unexpected "loop"`, false},
		{"loop closing if", "if 1 loop", `1:6: unexpected "loop"`, false},
		{"open string", `." oops`, `1:1: unterminated string`, false},
		{"open comment", `1 ( oops`, `1:3: unterminated "("`, true},
		{"number range", "1 99999999999999999999", `1:3: number 99999999999999999999 out of range`, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Line(tc.src)
			require.Error(t, err)
			assert.EqualError(t, err, tc.err)
			assert.Equal(t, tc.incomplete, IsIncomplete(err), "expected incomplete")
		})
	}
}

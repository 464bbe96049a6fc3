package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_String(t *testing.T) {
	for _, tc := range []struct {
		name string
		node Node
		want string
	}{
		{"push", Push(-42), "-42"},
		{"word", Word("dup"), "dup"},
		{"print", PrintString("hello world"), `." hello world"`},
		{"empty sequence", Sequence{}, ""},
		{"sequence", Sequence{Push(1), Push(2), Word("+")}, "1 2 +"},
		{"definition", Definition{Sequence{Word("sq"), Word("dup"), Word("*")}}, ": sq dup * ;"},
		{"empty definition", Definition{Sequence{}}, ": ;"},
		{"nil definition", Definition{}, ": ;"},
		{"if then", Conditional{Consequent: Sequence{Push(1)}}, "if 1 then"},
		{"if else then", Conditional{
			Consequent:  Sequence{Push(1)},
			Alternative: Sequence{Push(2)},
		}, "if 1 else 2 then"},
		{"empty branches", Conditional{Consequent: Sequence{}, Alternative: Sequence{}}, "if else then"},
		{"loop", CountedLoop{Sequence{Word("i"), Word(".")}}, "do i . loop"},
		{"nested", Sequence{
			Definition{Sequence{
				Word("count"),
				Push(0),
				CountedLoop{Sequence{
					Word("i"),
					Push(2),
					Word("mod"),
					Push(0),
					Word("="),
					Conditional{Consequent: Sequence{Word("i"), Word(".")}},
				}},
			}},
		}, ": count 0 do i 2 mod 0 = if i . then loop ;"},
		{"nil in sequence", Sequence{Push(1), nil}, "1 <nil>"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.node.String())
		})
	}
}

func Test_equality(t *testing.T) {
	a := Sequence{Push(1), Conditional{Consequent: Sequence{Word("x")}}}
	b := Sequence{Push(1), Conditional{Consequent: Sequence{Word("x")}}}
	c := Sequence{Push(1), Conditional{Alternative: Sequence{Word("x")}}}
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

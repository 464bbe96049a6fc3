package fileinput

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeTracker struct {
	io.Reader
	closed int
}

func (ct *closeTracker) Close() error {
	ct.closed++
	return nil
}

func Test_Input(t *testing.T) {
	a := &closeTracker{Reader: strings.NewReader("1 2\r\n3\n")}
	b := &closeTracker{Reader: strings.NewReader("4\n\n5")}
	in := Input{Queue: []io.Reader{
		Named("a.fs", a),
		Named("b.fs", b),
	}}

	type line struct {
		text string
		loc  string
	}
	var got []line
	for {
		text, loc, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, line{text, loc.String()})
	}
	assert.Equal(t, []line{
		{"1 2", "a.fs:1"},
		{"3", "a.fs:2"},
		{"4", "b.fs:1"},
		{"", "b.fs:2"},
		{"5", "b.fs:3"},
	}, got)
	assert.Equal(t, 1, a.closed, "expected a to be closed once")
	assert.Equal(t, 1, b.closed, "expected b to be closed once")
	assert.Equal(t, "b.fs:3", in.Last().String())

	_, _, err := in.ReadLine()
	assert.Equal(t, io.EOF, err, "expected sticky EOF")
}

func Test_Input_unnamed(t *testing.T) {
	in := Input{Queue: []io.Reader{strings.NewReader("x")}}
	text, loc, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "x", text)
	assert.Equal(t, "<unnamed *strings.Reader>:1", loc.String())
}

func Test_Input_Close(t *testing.T) {
	a := &closeTracker{Reader: strings.NewReader("1\n2\n")}
	b := &closeTracker{Reader: strings.NewReader("3\n")}
	in := Input{Queue: []io.Reader{a, b}}
	_, _, err := in.ReadLine()
	require.NoError(t, err)
	require.NoError(t, in.Close())
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
	_, _, err = in.ReadLine()
	assert.Equal(t, io.EOF, err)
}

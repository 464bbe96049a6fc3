package logio

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("nope") }

func Test_Logger(t *testing.T) {
	var out strings.Builder
	var log Logger
	log.SetOutput(&out)

	log.Printf("INFO", "hello %v", "world")
	log.Leveledf("TRACE")("> exec %v", 42)
	log.Printf("", "bare\n")
	assert.Equal(t, 0, log.ExitCode())

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode())
	log.ErrorIf(errors.New("bad"))
	assert.Equal(t, 1, log.ExitCode())

	assert.Equal(t, strings.Join([]string{
		"INFO: hello world",
		"TRACE: > exec 42",
		"bare",
		"ERROR: bad",
		"",
	}, "\n"), out.String())
}

func Test_Logger_outputError(t *testing.T) {
	var log Logger
	log.Printf("INFO", "dropped")
	assert.Equal(t, 0, log.ExitCode(), "no output is not an error")

	log.SetOutput(failWriter{})
	log.Printf("INFO", "fails")
	assert.Equal(t, 2, log.ExitCode())
	log.Errorf("still %v", 2)
	assert.Equal(t, 2, log.ExitCode())
}

func Test_Writer(t *testing.T) {
	var lines []string
	lw := Writer{Logf: func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}}
	io.WriteString(&lw, "one\ntw")
	io.WriteString(&lw, "o\nthree")
	assert.Equal(t, []string{"one", "two"}, lines)
	assert.NoError(t, lw.Flush())
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/jcorbin/treeforth/internal/fileinput"
)

const promptName = "<stdin>"

// isInteractive returns true if both stdin and stdout are terminals.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// promptReader reads lines from the terminal with editing and history.
type promptReader struct {
	ln *liner.State

	prompt     string
	contPrompt string
	history    string

	cont bool
	eof  bool
	line int
}

func newPromptReader(cfg Config) *promptReader {
	pr := &promptReader{
		ln:         liner.NewLiner(),
		prompt:     cfg.Prompt,
		contPrompt: cfg.ContinuePrompt,
		history:    cfg.History,
	}
	pr.ln.SetCtrlCAborts(true)
	if pr.history != "" {
		if f, err := os.Open(pr.history); err == nil {
			pr.ln.ReadHistory(f)
			f.Close()
		}
	}
	return pr
}

func (pr *promptReader) SetContinued(cont bool) { pr.cont = cont }

func (pr *promptReader) ReadLine() (string, fileinput.Location, error) {
	if pr.eof {
		return "", pr.location(), io.EOF
	}
	prompt := pr.prompt
	if pr.cont {
		prompt = pr.contPrompt
	}
	line, err := pr.ln.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", pr.location(), errLineAborted
	} else if errors.Is(err, io.EOF) {
		pr.eof = true
		return "", pr.location(), io.EOF
	} else if err != nil {
		return "", pr.location(), err
	}
	pr.line++
	if strings.TrimSpace(line) != "" {
		pr.ln.AppendHistory(line)
	}
	return line, pr.location(), nil
}

func (pr *promptReader) location() fileinput.Location {
	return fileinput.Location{Name: promptName, Line: pr.line}
}

// Close saves history, then restores the terminal.
func (pr *promptReader) Close() error {
	var err error
	if pr.history != "" {
		var f *os.File
		if f, err = os.Create(pr.history); err == nil {
			_, err = pr.ln.WriteHistory(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}
	}
	if cerr := pr.ln.Close(); err == nil {
		err = cerr
	}
	return err
}

package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Each stream is closed, if it is an io.Closer, once it has
// been read to its end.
type Input struct {
	Queue []io.Reader

	r    io.Reader
	br   *bufio.Reader
	last Location
}

// Named gives r a name for use in line Locations.
func Named(name string, r io.Reader) io.Reader { return namedReader{r, name} }

// ReadLine returns the next line, without its line ending, and its Location.
// Returns io.EOF after every queued stream has been exhausted.
func (in *Input) ReadLine() (string, Location, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", in.last, io.EOF
		}
		line, err := in.br.ReadString('\n')
		if err == nil || (err == io.EOF && line != "") {
			in.last.Line++
			if err == io.EOF {
				in.closeIn()
			}
			return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), in.last, nil
		}
		in.closeIn()
		if err != io.EOF {
			return "", in.last, err
		}
	}
}

// Last returns the location of the most recently read line.
func (in *Input) Last() Location { return in.last }

// Close closes the current stream and any still queued.
func (in *Input) Close() (err error) {
	if in.r != nil {
		err = closeReader(in.r)
		in.r, in.br = nil, nil
	}
	for _, r := range in.Queue {
		if cerr := closeReader(r); err == nil {
			err = cerr
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.r = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.br = bufio.NewReader(in.r)
	in.last = Location{Name: nameOf(in.r)}
	return true
}

func (in *Input) closeIn() {
	if in.r != nil {
		closeReader(in.r)
	}
	in.r, in.br = nil, nil
}

func closeReader(r io.Reader) error {
	if cl, ok := r.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func (nr namedReader) Close() error { return closeReader(nr.Reader) }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

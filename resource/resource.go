package resource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"math"
	"strings"
)

// Read returns the contents of the named resource.
// A missing resource returns an error wrapping [ErrNotFound].
func Read(fsys fs.FS, name string) ([]byte, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("resource: read %s: %w", name, err)
	}
	return b, nil
}

// ReadString returns the contents of the named resource as a string.
func ReadString(fsys fs.FS, name string) (string, error) {
	b, err := Read(fsys, name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLines returns the lines of the named resource, without trailing line
// terminators (\n or \r\n). A trailing newline does not produce an empty
// final line. Lines of any length are returned whole.
func ReadLines(fsys fs.FS, name string) ([]string, error) {
	b, err := Read(fsys, name)
	if err != nil {
		return nil, err
	}
	return splitLines(string(b)), nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineIter reads a stream as a lazy sequence of lines.
//
// The sequence is forward-only and single-use; it ends at EOF or at the
// first read error. Because a sequence cannot carry an error itself, the
// terminal error is reported by [LineIter.Err], which callers check once
// iteration has finished — the same protocol as bufio.Scanner:
//
//	it := resource.NewLineIter(f)
//	for line := range it.Lines() {
//	    // ...
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
type LineIter struct {
	sc  *bufio.Scanner
	err error
}

// NewLineIter returns a LineIter reading from r. Reading happens as the
// sequence is consumed, so r must stay open until iteration finishes.
// Lines may be of any length; the internal buffer grows as needed.
func NewLineIter(r io.Reader) *LineIter {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return &LineIter{sc: sc}
}

// Lines returns the lazy line sequence, without trailing line terminators.
// Lines yielded before a read error are complete and correct; the error
// itself is available from [LineIter.Err] after the sequence ends.
func (it *LineIter) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it.sc.Scan() {
			if !yield(it.sc.Text()) {
				return
			}
		}
		if err := it.sc.Err(); err != nil {
			it.err = fmt.Errorf("resource: read lines: %w", err)
		}
	}
}

// Err returns the first error encountered while reading, or nil if the
// stream ended at EOF or iteration has not finished. The error wraps the
// underlying reader's error.
func (it *LineIter) Err() error { return it.err }

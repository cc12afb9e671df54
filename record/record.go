// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record reads marker-delimited sequence records, such as FASTA
// formatted contigs, into a header keyed collection.
package record

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"
)

// Marker is the first character of a header line.
const Marker = '>'

// maxLineLen bounds a single physical line. Unwrapped assemblies can hold
// a whole chromosome on one line.
const maxLineLen = 1 << 30

// Record is a single header and its concatenated sequence. The header
// retains its leading marker.
type Record struct {
	Header   string
	Sequence string
}

// LineReader is the line source consumed by a Scanner. *bufio.Scanner
// satisfies LineReader.
type LineReader interface {
	Scan() bool
	Text() string
	Err() error
}

// Lines is a LineReader over an in-memory slice of lines.
type Lines []string

type lineSlice struct {
	lines []string
	line  string
}

func (l *lineSlice) Scan() bool {
	if len(l.lines) == 0 {
		return false
	}
	l.line, l.lines = l.lines[0], l.lines[1:]
	return true
}
func (l *lineSlice) Text() string { return l.line }
func (l *lineSlice) Err() error   { return nil }

// Reader returns a LineReader yielding the lines of l in order.
func (l Lines) Reader() LineReader { return &lineSlice{lines: l} }

// Scanner is a forward-only iterator over the records of a line source.
// Lines preceding the first header are discarded.
type Scanner struct {
	lr LineReader

	header    string
	hasHeader bool
	seq       strings.Builder

	rec  Record
	done bool
	err  error
}

// NewScanner returns a Scanner reading lines from r.
func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLen)
	return NewLineScanner(sc)
}

// NewLineScanner returns a Scanner reading from the line source lr.
func NewLineScanner(lr LineReader) *Scanner {
	return &Scanner{lr: lr}
}

// Next advances the Scanner to the next record, which will then be available
// through the Record method. It returns false when the scan stops, either by
// reaching the end of the input or an error.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	for s.lr.Scan() {
		line := strings.TrimRightFunc(s.lr.Text(), unicode.IsSpace)
		if len(line) == 0 || line[0] != Marker {
			if s.hasHeader {
				s.seq.WriteString(line)
			}
			continue
		}
		ready := s.hasHeader
		if ready {
			s.emit()
		}
		s.header, s.hasHeader = line, true
		if ready {
			return true
		}
	}
	s.done = true
	s.err = s.lr.Err()
	if s.err != nil || !s.hasHeader {
		return false
	}
	s.emit()
	s.hasHeader = false
	return true
}

func (s *Scanner) emit() {
	s.rec = Record{Header: s.header, Sequence: s.seq.String()}
	s.seq.Reset()
}

// Record returns the most recent record read by a call to Next.
func (s *Scanner) Record() Record { return s.rec }

// Error returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Error() error { return s.err }

// ReadCollection reads all records from r into a new Collection. A read
// failure is returned as a *ResourceError.
func ReadCollection(r io.Reader) (*Collection, error) {
	c := NewCollection()
	sc := NewScanner(r)
	for sc.Next() {
		c.Set(sc.Record())
	}
	if err := sc.Error(); err != nil {
		return nil, &ResourceError{Op: "read", Err: err}
	}
	return c, nil
}

// ReadFile reads all records in the named file into a new Collection.
// The file is closed before ReadFile returns.
func ReadFile(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResourceError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	c, err := ReadCollection(f)
	if err != nil {
		err.(*ResourceError).Path = path
		return nil, err
	}
	return c, nil
}

// ResourceError records a failure to open or read an input.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Path == "" {
		return "record: " + e.Op + ": " + e.Err.Error()
	}
	return "record: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ResourceError) Unwrap() error { return e.Err }

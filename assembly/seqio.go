// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"errors"
	"io"
	"os"

	"github.com/biogo/biogo/io/seqio"

	"github.com/biogo/contigstats/record"
)

// NewFromSeqio returns the Statistics of the sequences read from r, which
// may be any biogo sequence reader, for example a FASTA or FASTQ reader.
// Sequences are keyed by a marker, their name and, if present, their
// description separated by a space.
func NewFromSeqio(r seqio.Reader) (*Statistics, error) {
	c := record.NewCollection()
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq()
		h := string(record.Marker) + s.Name()
		if d := s.Description(); d != "" {
			h += " " + d
		}
		b := make([]byte, 0, s.Len())
		for i := s.Start(); i < s.End(); i++ {
			b = append(b, byte(s.At(i).L))
		}
		c.Set(record.Record{Header: h, Sequence: string(b)})
	}
	if err := sc.Error(); err != nil {
		return nil, &record.ResourceError{Op: "read", Err: err}
	}
	return newStatistics(c)
}

// NewFromSeqioFile returns the Statistics of the sequences in the named
// file, read by the seqio.Reader returned by newReader. The file is closed
// before NewFromSeqioFile returns.
func NewFromSeqioFile(path string, newReader func(io.Reader) seqio.Reader) (*Statistics, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &record.ResourceError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	s, err := NewFromSeqio(newReader(f))
	var re *record.ResourceError
	if errors.As(err, &re) {
		re.Path = path
	}
	return s, err
}

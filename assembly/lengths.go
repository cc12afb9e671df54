// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/biogo/contigstats/record"
)

// DefaultLengthsFile is the conventional name of the contig length table.
const DefaultLengthsFile = "contigLengths.csv"

// WriteLengths writes one index,length row per contig to w in collection
// order. Rows are terminated by CRLF.
func (s *Statistics) WriteLengths(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	var err error
	s.contigs.Do(func(i int, r record.Record) {
		if err != nil {
			return
		}
		err = cw.Write([]string{strconv.Itoa(i), strconv.Itoa(len(r.Sequence))})
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// SaveLengths writes the contig length table to the named file.
func (s *Statistics) SaveLengths(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &record.ResourceError{Op: "create", Path: path, Err: err}
	}
	err = s.WriteLengths(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

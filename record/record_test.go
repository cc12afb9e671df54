// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func scanAll(sc *Scanner) []Record {
	var recs []Record
	for sc.Next() {
		recs = append(recs, sc.Record())
	}
	return recs
}

func (s *S) TestScanLines(c *check.C) {
	for i, t := range []struct {
		lines []string
		want  []Record
	}{
		{
			lines: []string{">seq1", "ACGT", "AC", ">seq2", "GGGG"},
			want: []Record{
				{Header: ">seq1", Sequence: "ACGTAC"},
				{Header: ">seq2", Sequence: "GGGG"},
			},
		},
		{
			lines: nil,
			want:  nil,
		},
		{
			lines: []string{"ACGT", "TTTT"},
			want:  nil,
		},
		{
			lines: []string{"NNNN", ">a desc", "AC  ", "GT\t", ">b"},
			want: []Record{
				{Header: ">a desc", Sequence: "ACGT"},
				{Header: ">b", Sequence: ""},
			},
		},
		{
			lines: []string{">a  ", "", "A", "", "C"},
			want: []Record{
				{Header: ">a", Sequence: "AC"},
			},
		},
		{
			lines: []string{">x", ">y", "T"},
			want: []Record{
				{Header: ">x", Sequence: ""},
				{Header: ">y", Sequence: "T"},
			},
		},
	} {
		got := scanAll(NewLineScanner(Lines(t.lines).Reader()))
		c.Check(got, check.DeepEquals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestScannerExhausted(c *check.C) {
	sc := NewScanner(strings.NewReader(">a\nAC\n"))
	c.Check(sc.Next(), check.Equals, true)
	c.Check(sc.Next(), check.Equals, false)
	c.Check(sc.Next(), check.Equals, false)
	c.Check(sc.Error(), check.IsNil)
}

func (s *S) TestScanCRLF(c *check.C) {
	got := scanAll(NewScanner(strings.NewReader(">a\r\nAC\r\nGT\r\n>b\r\nT")))
	c.Check(got, check.DeepEquals, []Record{
		{Header: ">a", Sequence: "ACGT"},
		{Header: ">b", Sequence: "T"},
	})
}

func (s *S) TestScanLongLine(c *check.C) {
	long := strings.Repeat("ACGT", 100000)
	got := scanAll(NewScanner(strings.NewReader(">long\n" + long + "\n")))
	c.Assert(got, check.HasLen, 1)
	c.Check(len(got[0].Sequence), check.Equals, len(long))
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func (s *S) TestReadCollectionError(c *check.C) {
	_, err := ReadCollection(failReader{})
	var re *ResourceError
	c.Assert(errors.As(err, &re), check.Equals, true)
	c.Check(re.Op, check.Equals, "read")
	c.Check(errors.Is(err, io.ErrUnexpectedEOF), check.Equals, true)
}

func (s *S) TestReadFile(c *check.C) {
	path := filepath.Join(c.MkDir(), "contigs.fa")
	err := os.WriteFile(path, []byte(">seq1\nACGT\nAC\n>seq2\nGGGG\n>seq1\nT\n"), 0o644)
	c.Assert(err, check.IsNil)

	col, err := ReadFile(path)
	c.Assert(err, check.IsNil)
	c.Check(col.Len(), check.Equals, 2)
	c.Check(col.Map(), check.DeepEquals, map[string]string{">seq1": "T", ">seq2": "GGGG"})

	var order []string
	col.Do(func(i int, r Record) { order = append(order, r.Header) })
	c.Check(order, check.DeepEquals, []string{">seq1", ">seq2"})
}

func (s *S) TestReadFileMissing(c *check.C) {
	path := filepath.Join(c.MkDir(), "absent.fa")
	_, err := ReadFile(path)
	var re *ResourceError
	c.Assert(errors.As(err, &re), check.Equals, true)
	c.Check(re.Op, check.Equals, "open")
	c.Check(re.Path, check.Equals, path)
	c.Check(errors.Is(err, os.ErrNotExist), check.Equals, true)
}

func (s *S) TestCollection(c *check.C) {
	col := NewCollection()
	col.Set(Record{Header: ">a", Sequence: "A"})
	col.Set(Record{Header: ">b", Sequence: "BB"})
	col.Set(Record{Header: ">a", Sequence: "AAA"})

	c.Check(col.Len(), check.Equals, 2)
	seq, ok := col.Get(">a")
	c.Check(ok, check.Equals, true)
	c.Check(seq, check.Equals, "AAA")
	_, ok = col.Get(">c")
	c.Check(ok, check.Equals, false)

	var got []Record
	col.Do(func(i int, r Record) { got = append(got, r) })
	c.Check(got, check.DeepEquals, []Record{
		{Header: ">a", Sequence: "AAA"},
		{Header: ">b", Sequence: "BB"},
	})
}

func (s *S) TestCollectionClone(c *check.C) {
	col := NewCollection()
	col.Set(Record{Header: ">a", Sequence: "A"})
	cl := col.Clone()
	cl.Set(Record{Header: ">a", Sequence: "AAA"})
	cl.Set(Record{Header: ">b", Sequence: "B"})

	c.Check(col.Map(), check.DeepEquals, map[string]string{">a": "A"})
	c.Check(cl.Map(), check.DeepEquals, map[string]string{">a": "AAA", ">b": "B"})
}

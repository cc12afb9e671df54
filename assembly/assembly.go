// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly computes summary statistics of assembled contigs:
// contig count, length extremes, mean length, total assembly length,
// N50 and L50, and coverage of an expected genome size.
//
// The N50 and L50 reported by Scores follow the historical contigstats
// definition: N50 is a position in the ascending sorted length list and
// L50 is a length. The conventional values are available from Standard.
package assembly

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/biogo/contigstats/record"
)

var (
	// ErrEmpty is returned when an input holds no records.
	ErrEmpty = errors.New("assembly: no records in input")

	// ErrInvalidArgument is returned when a caller supplied parameter
	// is outside its domain.
	ErrInvalidArgument = errors.New("assembly: invalid argument")
)

// Scores is a summary of contig lengths in base pairs.
type Scores struct {
	Contigs int
	Min     int
	Max     int
	Mean    float64
	N50     int
	L50     int
	Total   int
}

// Statistics holds an immutable collection of contigs.
type Statistics struct {
	contigs *record.Collection
}

// New returns the Statistics of the records held in the named file.
func New(path string) (*Statistics, error) {
	c, err := record.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newStatistics(c)
}

// NewFromReader returns the Statistics of the records read from r.
func NewFromReader(r io.Reader) (*Statistics, error) {
	c, err := record.ReadCollection(r)
	if err != nil {
		return nil, err
	}
	return newStatistics(c)
}

// NewFromCollection returns the Statistics of a copy of c. Later changes
// to c are not seen by the returned Statistics.
func NewFromCollection(c *record.Collection) (*Statistics, error) {
	if c == nil {
		return nil, ErrEmpty
	}
	return newStatistics(c.Clone())
}

// newStatistics takes ownership of c.
func newStatistics(c *record.Collection) (*Statistics, error) {
	if c.Len() == 0 {
		return nil, ErrEmpty
	}
	return &Statistics{contigs: c}, nil
}

// Contigs returns a copy of the contig collection.
func (s *Statistics) Contigs() *record.Collection { return s.contigs.Clone() }

// Lengths returns the contig lengths sorted in ascending order.
func (s *Statistics) Lengths() []int {
	lens := make([]int, 0, s.contigs.Len())
	s.contigs.Do(func(_ int, r record.Record) {
		lens = append(lens, len(r.Sequence))
	})
	sort.Ints(lens)
	return lens
}

// Scores computes the summary of the collection. Each call recomputes
// the summary from the contigs.
func (s *Statistics) Scores() Scores {
	lens := s.Lengths()

	var total int
	fl := make([]float64, len(lens))
	for i, l := range lens {
		total += l
		fl[i] = float64(l)
	}

	sc := Scores{
		Contigs: len(lens),
		Min:     lens[0],
		Max:     lens[len(lens)-1],
		Mean:    stat.Mean(fl, nil),
		Total:   total,
	}

	// Walk from the shortest contig, stopping at the first contig whose
	// preceding cumulative length already exceeds half the total.
	half := total / 2
	var csum int
	for i, l := range lens {
		if half < csum {
			sc.N50 = i
			sc.L50 = l
			break
		}
		csum += l
	}
	return sc
}

// N50 returns the N50 field of Scores.
func (s *Statistics) N50() int { return s.Scores().N50 }

// L50 returns the L50 field of Scores.
func (s *Statistics) L50() int { return s.Scores().L50 }

// MaxContigLength returns the length of the longest contig.
func (s *Statistics) MaxContigLength() int { return s.Scores().Max }

// MinContigLength returns the length of the shortest contig.
func (s *Statistics) MinContigLength() int { return s.Scores().Min }

// MeanContigLength returns the mean contig length.
func (s *Statistics) MeanContigLength() float64 { return s.Scores().Mean }

// Coverage returns the fraction of a genome of genomeSize bp covered by
// the total assembly length.
func (s *Statistics) Coverage(genomeSize float64) (float64, error) {
	if !(genomeSize > 0) || math.IsInf(genomeSize, 1) {
		return 0, fmt.Errorf("%w: genome size %v", ErrInvalidArgument, genomeSize)
	}
	return float64(s.Scores().Total) / genomeSize, nil
}

// Standard returns the conventional N50 and L50 of the collection: the
// length of the contig at which the cumulative length of contigs taken
// longest first reaches half the total, and the number of contigs taken.
func (s *Statistics) Standard() (n50, l50 int) {
	lens := s.Lengths()
	sort.Sort(sort.Reverse(sort.IntSlice(lens)))
	var total int
	for _, l := range lens {
		total += l
	}
	var csum int
	for i, l := range lens {
		csum += l
		if 2*csum >= total {
			return l, i + 1
		}
	}
	return 0, 0
}

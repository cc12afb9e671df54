// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/check.v1"
	"gonum.org/v1/gonum/stat"
)

func nonEmpty(c *check.C, path string) {
	fi, err := os.Stat(path)
	c.Assert(err, check.IsNil)
	c.Check(fi.Size() > 0, check.Equals, true, check.Commentf("%s is empty", path))
}

func (s *S) TestHistogram(c *check.C) {
	st := withLengths(c, 10, 200, 30, 4000, 50, 60, 700)
	dir := c.MkDir()

	for i, opt := range []HistogramOptions{
		{},
		{Bins: 5},
		{Bins: 3, Limit: 4},
	} {
		path := filepath.Join(dir, DefaultHistogramFile)
		c.Check(st.Histogram(path, opt), check.IsNil, check.Commentf("Test %d", i))
		nonEmpty(c, path)
		c.Assert(os.Remove(path), check.IsNil)
	}

	svg := filepath.Join(dir, "hist.svg")
	c.Check(st.Histogram(svg, HistogramOptions{}), check.IsNil)
	nonEmpty(c, svg)

	for _, opt := range []HistogramOptions{{Bins: -1}, {Limit: -1}} {
		err := st.Histogram(filepath.Join(dir, "bad.png"), opt)
		c.Check(errors.Is(err, ErrInvalidArgument), check.Equals, true, check.Commentf("%+v", opt))
	}
}

func (s *S) TestHistogramLimit(c *check.C) {
	st := withLengths(c, 9, 1, 5, 3, 7)
	c.Check([]float64(st.values(0)), check.DeepEquals, []float64{1, 3, 5, 7, 9})
	c.Check([]float64(st.values(3)), check.DeepEquals, []float64{1, 3, 5})
	c.Check([]float64(st.values(LegacyHistogramLimit)), check.DeepEquals, []float64{1, 3, 5, 7, 9})
}

func (s *S) TestBoxPlot(c *check.C) {
	st := withLengths(c, 12, 50, 7, 300, 41, 41, 1000)
	path := filepath.Join(c.MkDir(), DefaultBoxPlotFile)
	c.Check(st.BoxPlot(path), check.IsNil)
	nonEmpty(c, path)

	v := st.values(0)
	med := stat.Quantile(0.5, stat.Empirical, v, nil)
	c.Check(med, check.Equals, 41.0)
}

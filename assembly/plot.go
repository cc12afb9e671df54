// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// DefaultHistogramFile is the conventional name of the length histogram.
	DefaultHistogramFile = "contig_histogram.png"

	// DefaultBoxPlotFile is the conventional name of the length box plot.
	DefaultBoxPlotFile = "contig_boxplot.png"

	// LegacyHistogramLimit is the number of shortest contigs plotted by
	// earlier releases of the histogram.
	LegacyHistogramLimit = 540000
)

// Rendered image dimensions.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// HistogramOptions controls histogram rendering.
type HistogramOptions struct {
	// Bins is the number of histogram bins. Zero selects 50.
	Bins int

	// Limit restricts the plot to the Limit shortest contigs.
	// Zero plots all contigs.
	Limit int
}

func (s *Statistics) values(limit int) plotter.Values {
	lens := s.Lengths()
	if limit > 0 && limit < len(lens) {
		lens = lens[:limit]
	}
	v := make(plotter.Values, len(lens))
	for i, l := range lens {
		v[i] = float64(l)
	}
	return v
}

// Histogram renders a histogram of contig lengths to the named file. The
// image format is taken from the file extension.
func (s *Statistics) Histogram(path string, opt HistogramOptions) error {
	if opt.Bins == 0 {
		opt.Bins = 50
	}
	if opt.Bins < 0 {
		return fmt.Errorf("%w: histogram bins %d", ErrInvalidArgument, opt.Bins)
	}
	if opt.Limit < 0 {
		return fmt.Errorf("%w: histogram limit %d", ErrInvalidArgument, opt.Limit)
	}

	h, err := plotter.NewHist(s.values(opt.Limit), opt.Bins)
	if err != nil {
		return fmt.Errorf("assembly: histogram: %w", err)
	}

	p := plot.New()
	p.Title.Text = "Contigs histogram"
	p.X.Label.Text = "Sequence Length (bp)"
	p.Y.Label.Text = "Count"
	p.Add(h)

	if err := p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("assembly: save histogram: %w", err)
	}
	return nil
}

// BoxPlot renders a box plot of contig lengths to the named file. The
// image format is taken from the file extension.
func (s *Statistics) BoxPlot(path string) error {
	b, err := plotter.NewBoxPlot(vg.Points(40), 0, s.values(0))
	if err != nil {
		return fmt.Errorf("assembly: box plot: %w", err)
	}

	p := plot.New()
	p.Title.Text = "Contig lengths"
	p.Y.Label.Text = "Sequence Length (bp)"
	p.NominalX("contigs")
	p.Add(b)

	if err := p.Save(plotHeight, plotHeight, path); err != nil {
		return fmt.Errorf("assembly: save box plot: %w", err)
	}
	return nil
}

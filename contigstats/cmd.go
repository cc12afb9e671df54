// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/biogo/contigstats/assembly"
)

type options struct {
	in      string
	format  string
	verbose bool

	stdin io.Reader
	log   *log.Logger
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	o := &options{log: logger}

	var standard bool
	root := &cobra.Command{
		Use:   "contigstats",
		Short: "Assembly statistics of a contig file.",
		Long: `contigstats reports the number of contigs, their minimum, maximum and
mean length, N50, L50 and the total assembly length.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			o.stdin = cmd.InOrStdin()
			if o.verbose {
				o.log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runScores(cmd.OutOrStdout(), standard)
		},
	}
	root.PersistentFlags().StringVarP(&o.in, "in", "i", "", "input contig file, defaults to stdin")
	root.PersistentFlags().StringVar(&o.format, "format", "fasta", "input format: fasta or fastq")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log progress")
	root.Flags().BoolVar(&standard, "standard", false, "also print the conventional N50 and L50")

	root.AddCommand(
		scoresCmd(o),
		lengthsCmd(o),
		histCmd(o),
		boxplotCmd(o),
		coverageCmd(o),
	)
	return root
}

func scoresCmd(o *options) *cobra.Command {
	var standard bool
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Print the summary statistics of the assembly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runScores(cmd.OutOrStdout(), standard)
		},
	}
	cmd.Flags().BoolVar(&standard, "standard", false, "also print the conventional N50 and L50")
	return cmd
}

func lengthsCmd(o *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "lengths",
		Short: "Write an index,length table of the contigs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.load()
			if err != nil {
				return err
			}
			o.log.Info("writing contig lengths", "file", out)
			return s.SaveLengths(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", assembly.DefaultLengthsFile, "output CSV file")
	return cmd
}

func histCmd(o *options) *cobra.Command {
	var (
		out string
		opt assembly.HistogramOptions
	)
	cmd := &cobra.Command{
		Use:   "hist",
		Short: "Plot a histogram of contig lengths.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.load()
			if err != nil {
				return err
			}
			o.log.Info("plotting contig length histogram", "file", out, "bins", opt.Bins)
			return s.Histogram(out, opt)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", assembly.DefaultHistogramFile, "output image file")
	cmd.Flags().IntVar(&opt.Bins, "bins", 50, "number of histogram bins")
	cmd.Flags().IntVar(&opt.Limit, "limit", 0,
		fmt.Sprintf("plot only the shortest n contigs, 0 plots all (earlier releases used %d)", assembly.LegacyHistogramLimit))
	return cmd
}

func boxplotCmd(o *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "boxplot",
		Short: "Plot a box plot of contig lengths.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.load()
			if err != nil {
				return err
			}
			o.log.Info("plotting contig length box plot", "file", out)
			return s.BoxPlot(out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", assembly.DefaultBoxPlotFile, "output image file")
	return cmd
}

func coverageCmd(o *options) *cobra.Command {
	var size float64
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Print the fraction of an expected genome covered by the assembly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.load()
			if err != nil {
				return err
			}
			cov, err := s.Coverage(size)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "coverage\t%g\n", cov)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&size, "genome-size", "g", 0, "expected genome size (bp)")
	if err := cmd.MarkFlagRequired("genome-size"); err != nil {
		panic(err)
	}
	return cmd
}

func (o *options) runScores(w io.Writer, standard bool) error {
	s, err := o.load()
	if err != nil {
		return err
	}
	sc := s.Scores()
	fmt.Fprintf(w, "contigs\t%d\n", sc.Contigs)
	fmt.Fprintf(w, "min\t%d\n", sc.Min)
	fmt.Fprintf(w, "max\t%d\n", sc.Max)
	fmt.Fprintf(w, "mean\t%.2f\n", sc.Mean)
	fmt.Fprintf(w, "n50\t%d\n", sc.N50)
	fmt.Fprintf(w, "l50\t%d\n", sc.L50)
	fmt.Fprintf(w, "total\t%d\n", sc.Total)
	if standard {
		n50, l50 := s.Standard()
		fmt.Fprintf(w, "standard_n50\t%d\n", n50)
		fmt.Fprintf(w, "standard_l50\t%d\n", l50)
	}
	return nil
}

func newFastqReader(r io.Reader) seqio.Reader {
	return fastq.NewReader(r, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger))
}

// load reads the input named by the options into assembly statistics.
func (o *options) load() (*assembly.Statistics, error) {
	switch o.format {
	case "fasta":
		if o.in == "" {
			o.log.Debug("reading sequences from stdin")
			return assembly.NewFromReader(o.stdin)
		}
		o.log.Debug("reading sequences", "file", o.in)
		return assembly.New(o.in)
	case "fastq":
		if o.in == "" {
			o.log.Debug("reading fastq sequences from stdin")
			return assembly.NewFromSeqio(newFastqReader(o.stdin))
		}
		o.log.Debug("reading fastq sequences", "file", o.in)
		return assembly.NewFromSeqioFile(o.in, newFastqReader)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", assembly.ErrInvalidArgument, o.format)
	}
}

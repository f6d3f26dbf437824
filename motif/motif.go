// Package motif enumerates the approximate repeated motifs of a sequence.
//
// A motif is a pattern over the sequence's alphabet whose length falls in
// [MinLength, MaxLength] and which has at least MinFrequency approximate
// occurrences, where an occurrence is any substring within MaxDistance of
// the pattern under the configured character pair distance. Enumeration is a
// depth first postorder walk of the candidate trie (package cast), pruning
// branches whose frequency has already fallen below MinFrequency.
package motif

import (
	"bufio"
	"fmt"
	"io"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/timtadh/seqmine/cast"
	"github.com/timtadh/seqmine/distance"
	"github.com/timtadh/seqmine/suffixtree"
)

type Mode int

const (
	Silent Mode = iota
	Statistics
	Motifs
)

func (m Mode) String() string {
	switch m {
	case Silent:
		return "silent"
	case Statistics:
		return "statistics"
	case Motifs:
		return "motif"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps the command line mode names onto Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "silent":
		return Silent, nil
	case "statistics":
		return Statistics, nil
	case "motif":
		return Motifs, nil
	}
	return 0, errors.Errorf("unknown mode %v (expected silent, statistics, or motif)", name)
}

// maximum motif length tracked individually by the histogram; longer motifs
// share the last bucket
const histMax = 100

type Options struct {
	MinLength    int
	MaxLength    int
	MinFrequency int
	MaxDistance  float64
	Mode         Mode
	Measure      distance.Measure
	Verbose      bool
}

func (o *Options) defaults() {
	if o.MinLength == 0 {
		o.MinLength = 1
	}
	if o.MaxLength == 0 {
		o.MaxLength = 20
	}
	if o.MinFrequency == 0 {
		o.MinFrequency = 2
	}
	if o.Measure == nil {
		o.Measure = distance.Hamming
	}
}

// Extractor owns one extraction run: the walker, the histogram, and the
// output sink.
type Extractor struct {
	opts   Options
	search *cast.Search
	hist   [histMax + 1]int
	out    *bufio.Writer
}

// Extract mines seq and writes the report to out. Zero valued options take
// the documented defaults (length 1 to 20, frequency 2, distance 0, Hamming,
// silent mode).
func Extract(seq []byte, opts Options, out io.Writer) error {
	opts.defaults()
	begin := time.Now()
	tree := suffixtree.New(seq)
	if opts.Verbose {
		errors.Logf("INFO", "indexed %v bytes, alphabet size %v", tree.Len(), len(tree.Alphabet()))
	}
	e := &Extractor{
		opts:   opts,
		search: cast.NewSearch(tree, opts.MaxDistance, opts.Measure),
		out:    bufio.NewWriter(out),
	}
	if e.opts.Mode >= Motifs {
		fmt.Fprintln(e.out, "# Motif Models (motif : frequency : [list of occurrences]):")
	}
	e.extract()
	e.stats()
	if opts.Verbose {
		errors.Logf("INFO", "extraction took %v", time.Since(begin))
	}
	return e.out.Flush()
}

// promising: descending below the current motif can still produce valid
// motifs. Frequency only shrinks as the motif grows, so a branch below the
// frequency threshold is dead; length is capped by MaxLength. MinLength does
// not matter here since short prefixes lead to long motifs.
func (e *Extractor) promising() bool {
	return e.search.Frequency() >= e.opts.MinFrequency &&
		e.search.Length() <= e.opts.MaxLength
}

// valid: the current motif itself should be reported.
func (e *Extractor) valid() bool {
	return e.search.Length() >= e.opts.MinLength &&
		e.search.Length() <= e.opts.MaxLength &&
		e.search.Frequency() >= e.opts.MinFrequency
}

// extract runs the depth first search, emitting motifs in postorder: a node
// is reported once its whole subtree has been explored and the walker is
// ascending out of it.
func (e *Extractor) extract() {
	for {
		if e.promising() {
			e.search.GoDown()
			continue
		}
		for !e.search.GoRight() {
			if !e.search.GoUp() {
				return
			}
			if e.valid() {
				e.report()
				e.collect()
			}
		}
	}
}

// report writes one motif record: the motif, its frequency, and the list of
// all occurrence positions.
func (e *Extractor) report() {
	if e.opts.Mode < Motifs {
		return
	}
	fmt.Fprintf(e.out, "%s %d [", e.search.Motif(), e.search.Frequency())
	for _, pos := range e.search.Occurrences() {
		fmt.Fprintf(e.out, " %d", pos)
	}
	fmt.Fprint(e.out, " ]\n")
}

func (e *Extractor) collect() {
	if e.opts.Mode < Statistics {
		return
	}
	length := e.search.Length()
	if length > histMax {
		length = histMax
	}
	e.hist[length]++
}

// stats writes the motif length histogram.
func (e *Extractor) stats() {
	if e.opts.Mode < Statistics {
		return
	}
	fmt.Fprintln(e.out, "# Statistics (motif length : number of motifs):")
	sum := 0
	for length, count := range e.hist {
		if count != 0 {
			fmt.Fprintf(e.out, "# %d : %d\n", length, count)
			sum += count
		}
	}
	fmt.Fprintf(e.out, "# total number of motifs: %d\n", sum)
}

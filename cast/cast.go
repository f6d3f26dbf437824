// Package cast implements the cache aware search space traversal over the
// virtual trie of candidate motifs.
//
// The trie is never materialized. The walker keeps a stack of frames, a root
// frame plus one per character of the current motif, and for each frame a
// frontier: the
// suffix tree nodes whose represented strings approximately match the motif
// so far, each with its accumulated distance. Extending the motif by one
// character advances every frontier entry one character deeper into the
// suffix tree instead of rescanning the sequence.
//
// Frames live in one slice and all frontiers share a single occurrence
// arena: a frame's frontier is occs[lo:hi]. GoDown appends, GoUp truncates,
// so the working set stays contiguous.
package cast

import (
	"github.com/timtadh/seqmine/distance"
	"github.com/timtadh/seqmine/suffixtree"
)

// Occurrence is one frontier entry: a suffix tree node together with the
// accumulated distance between the current motif and the first Length
// characters of the node's represented string. Dist never exceeds the
// search's maximum distance.
type Occurrence struct {
	Node suffixtree.Node
	Dist float64
}

// frame is one node of the virtual trie: the alphabet index of the character
// it appended to its parent (len(alphabet) for the root), the aggregated
// approximate frequency, the motif length, and its frontier occs[lo:hi].
type frame struct {
	alphabetIndex int
	frequency     int
	length        int32
	lo, hi        int
}

// Search is the walker state. The current motif is spelled by the alphabet
// indices of frames[1:].
type Search struct {
	tree     *suffixtree.Tree
	maxDist  float64
	measure  distance.Measure
	alphabet []byte
	frames   []frame
	occs     []Occurrence
}

// NewSearch places the walker at the root of the trie: the empty motif,
// whose single frontier entry is the suffix tree root at distance 0.
func NewSearch(t *suffixtree.Tree, maxDist float64, measure distance.Measure) *Search {
	s := &Search{
		tree:     t,
		maxDist:  maxDist,
		measure:  measure,
		alphabet: t.Alphabet(),
		frames:   make([]frame, 0, 64),
		occs:     make([]Occurrence, 0, 256),
	}
	s.occs = append(s.occs, Occurrence{Node: t.Root(), Dist: 0.0})
	s.frames = append(s.frames, frame{
		alphabetIndex: len(s.alphabet), // sentinel marking the root
		frequency:     t.Freq(t.Root()),
		length:        0,
		lo:            0,
		hi:            1,
	})
	return s
}

// GoDown extends the motif with the first character of the alphabet.
func (s *Search) GoDown() bool {
	s.extend(0)
	return true
}

// GoRight replaces the last character of the motif with the next one in the
// alphabet. It fails on the last alphabet character and on the root.
func (s *Search) GoRight() bool {
	top := &s.frames[len(s.frames)-1]
	if top.alphabetIndex == len(s.alphabet)-1 || top.alphabetIndex == len(s.alphabet) {
		return false
	}
	next := top.alphabetIndex + 1
	s.GoUp()
	s.extend(next)
	return true
}

// GoUp removes the last character of the motif. It fails at the root.
func (s *Search) GoUp() bool {
	top := s.frames[len(s.frames)-1]
	if top.length == 0 {
		return false
	}
	s.frames = s.frames[:len(s.frames)-1]
	s.occs = s.occs[:top.lo]
	return true
}

// Length of the current motif.
func (s *Search) Length() int {
	return int(s.frames[len(s.frames)-1].length)
}

// Frequency is the approximate occurrence count of the current motif.
func (s *Search) Frequency() int {
	return s.frames[len(s.frames)-1].frequency
}

// Motif spells the current motif.
func (s *Search) Motif() []byte {
	motif := make([]byte, 0, len(s.frames)-1)
	for _, f := range s.frames[1:] {
		motif = append(motif, s.alphabet[f.alphabetIndex])
	}
	return motif
}

// Occurrences lists the starting positions of every approximate occurrence
// of the current motif, in frontier order then leaf order. Positions are not
// deduplicated.
func (s *Search) Occurrences() []int32 {
	top := s.frames[len(s.frames)-1]
	ret := make([]int32, 0, top.frequency)
	for _, oe := range s.occs[top.lo:top.hi] {
		ret = append(ret, s.tree.Occurrences(oe.Node)...)
	}
	return ret
}

// Frontier exposes the current frame's occurrence entries. The slice aliases
// the arena and is invalidated by the next walk operation.
func (s *Search) Frontier() []Occurrence {
	top := s.frames[len(s.frames)-1]
	return s.occs[top.lo:top.hi]
}

// Depth is the number of frames on the walker stack, counting the root.
func (s *Search) Depth() int {
	return len(s.frames)
}

// AlphabetSize is the fan out of the virtual trie.
func (s *Search) AlphabetSize() int {
	return len(s.alphabet)
}

// extend pushes the child frame reached by appending alphabet[a] to the
// current motif. Each parent frontier entry either advances within the edge
// it sits on (when the node's represented string is longer than the motif)
// or branches to the node's children (when they are the same length, the
// entry sits exactly on the node). Entries whose accumulated distance would
// pass the maximum are dropped; leaves that cannot extend are dropped.
func (s *Search) extend(a int) {
	parent := s.frames[len(s.frames)-1]
	c := s.alphabet[a]
	t := s.tree
	lo := len(s.occs)
	freq := 0
	for i := parent.lo; i < parent.hi; i++ {
		oe := s.occs[i]
		if t.RepLen(oe.Node) == parent.length {
			if t.IsLeaf(oe.Node) {
				continue
			}
			for child := t.FirstChild(oe.Node); child != suffixtree.None; child = t.NextSibling(child) {
				d := oe.Dist
				if ec := t.ParentEdgeFirstChar(child); ec != c {
					d += s.measure(ec, c)
				}
				if d <= s.maxDist {
					s.occs = append(s.occs, Occurrence{Node: child, Dist: d})
					freq += t.Freq(child)
				}
			}
		} else {
			d := oe.Dist
			k := parent.length - t.ParentRepLen(oe.Node)
			if ec := t.ParentEdgeCharAt(oe.Node, k); ec != c {
				d += s.measure(ec, c)
			}
			if d <= s.maxDist {
				s.occs = append(s.occs, Occurrence{Node: oe.Node, Dist: d})
				freq += t.Freq(oe.Node)
			}
		}
	}
	s.frames = append(s.frames, frame{
		alphabetIndex: a,
		frequency:     freq,
		length:        parent.length + 1,
		lo:            lo,
		hi:            len(s.occs),
	})
}

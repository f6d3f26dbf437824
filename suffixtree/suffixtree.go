// Package suffixtree builds an annotated suffix tree of a byte sequence and
// freezes it into flat arrays for traversal.
//
// The tree is built with Ukkonen's algorithm over the sequence plus a
// terminator byte, then frozen: nodes become int32 indices into parallel
// arrays, children are linked in canonical order (sorted by the first byte
// of their incoming edge, terminator least, which is suffix array order),
// and the suffix start positions of all leaves are laid out in one
// contiguous array so that the occurrences of any node are a subslice.
//
// Each node carries two annotations fixed at build time: Freq, the number of
// leaves below it (the exact occurrence count of its represented string),
// and RepLen, the length of the string spelled from the root to it. The
// terminator never counts toward RepLen and terminator edges are hidden from
// child enumeration: a suffix that has run out cannot extend a pattern. The
// leaves behind those edges still count toward Freq and Occurrences, except
// the root's leaf for the empty suffix, which counts toward neither.
package suffixtree

import (
	"sort"
)

// Node is an index into the tree's node arrays.
type Node = int32

// None marks a missing node (no child, no sibling, no parent).
const None Node = -1

// Terminator ends the internal text. The input sequence is formed from
// whitespace separated tokens, so a newline can never occur in it.
const Terminator byte = '\n'

type Tree struct {
	text    []byte // sequence plus Terminator
	seqLen  int32
	start   []int32 // incoming edge label is text[start:end)
	end     []int32
	parent  []Node
	child   []Node // first child in canonical order, terminator edges hidden
	sibling []Node
	rlen    []int32
	freq    []int32
	occLo   []int32
	occHi   []int32
	occ     []int32 // leaf suffix starts in canonical DFS order
	sigma   []byte  // first characters of the root's visible edges
}

// New builds the annotated tree of s. The sequence must not contain the
// Terminator byte.
func New(s []byte) *Tree {
	text := make([]byte, 0, len(s)+1)
	text = append(text, s...)
	text = append(text, Terminator)
	b := ukkonen(text)
	return b.freeze(text, int32(len(s)))
}

func (t *Tree) Root() Node { return 0 }

// Len is the length of the sequence the tree indexes.
func (t *Tree) Len() int { return int(t.seqLen) }

// Alphabet is the ordered set of first characters of the edges leaving the
// root.
func (t *Tree) Alphabet() []byte { return t.sigma }

func (t *Tree) FirstChild(n Node) Node  { return t.child[n] }
func (t *Tree) NextSibling(n Node) Node { return t.sibling[n] }

func (t *Tree) IsLeaf(n Node) bool { return t.end[n] == int32(len(t.text)) }

// ParentEdgeFirstChar is the first character of the edge entering n. Not
// defined for the root.
func (t *Tree) ParentEdgeFirstChar(n Node) byte { return t.text[t.start[n]] }

// ParentEdgeCharAt is the k-th character (0-based) of the edge entering n,
// for 0 <= k < RepLen(n) - ParentRepLen(n).
func (t *Tree) ParentEdgeCharAt(n Node, k int32) byte { return t.text[t.start[n]+k] }

// RepLen is the length of the string spelled root to n.
func (t *Tree) RepLen(n Node) int32 { return t.rlen[n] }

// ParentRepLen is RepLen of n's parent.
func (t *Tree) ParentRepLen(n Node) int32 { return t.rlen[t.parent[n]] }

// Freq is the number of leaves below n, not counting the empty-suffix leaf,
// which is the exact occurrence count of the string spelled root to n.
func (t *Tree) Freq(n Node) int { return int(t.freq[n]) }

// Occurrences returns the starting positions of every suffix below n, in
// canonical leaf order. The slice aliases the tree; callers must not mutate
// it.
func (t *Tree) Occurrences(n Node) []int32 { return t.occ[t.occLo[n]:t.occHi[n]] }

// construction

const open = int32(1) << 30

type unode struct {
	start, end int32
	link       int32
	next       map[byte]int32
}

type builder struct {
	text  []byte
	nodes []unode
}

func (b *builder) newNode(start, end int32) int32 {
	b.nodes = append(b.nodes, unode{start: start, end: end, next: make(map[byte]int32)})
	return int32(len(b.nodes) - 1)
}

// ukkonen runs the online construction over text, whose final byte must be
// unique, so that every suffix ends at its own leaf.
func ukkonen(text []byte) *builder {
	b := &builder{text: text, nodes: make([]unode, 0, 2*len(text))}
	b.newNode(0, 0) // root
	var needLink int32
	anode, aedge, alen := int32(0), int32(0), int32(0)
	remainder := int32(0)

	addLink := func(n int32) {
		if needLink > 0 {
			b.nodes[needLink].link = n
		}
		needLink = n
	}
	edgeLen := func(n, pos int32) int32 {
		e := b.nodes[n].end
		if e > pos+1 {
			e = pos + 1
		}
		return e - b.nodes[n].start
	}

	for p := 0; p < len(text); p++ {
		pos := int32(p)
		c := text[pos]
		needLink = 0
		remainder++
		for remainder > 0 {
			if alen == 0 {
				aedge = pos
			}
			nxt, has := b.nodes[anode].next[text[aedge]]
			if !has {
				leaf := b.newNode(pos, open)
				b.nodes[anode].next[text[aedge]] = leaf
				addLink(anode)
			} else {
				if l := edgeLen(nxt, pos); alen >= l {
					aedge += l
					alen -= l
					anode = nxt
					continue
				}
				if text[b.nodes[nxt].start+alen] == c {
					alen++
					addLink(anode)
					break
				}
				split := b.newNode(b.nodes[nxt].start, b.nodes[nxt].start+alen)
				b.nodes[anode].next[text[aedge]] = split
				leaf := b.newNode(pos, open)
				b.nodes[split].next[c] = leaf
				b.nodes[nxt].start += alen
				b.nodes[split].next[text[b.nodes[nxt].start]] = nxt
				addLink(split)
			}
			remainder--
			if anode == 0 && alen > 0 {
				alen--
				aedge = pos - remainder + 1
			} else if anode != 0 {
				anode = b.nodes[anode].link
			}
		}
	}
	return b
}

// freeze lays the builder's nodes out as the final arrays and assigns the
// annotations in a single non-recursive walk.
func (b *builder) freeze(text []byte, seqLen int32) *Tree {
	n := len(b.nodes)
	m := int32(len(text))
	t := &Tree{
		text:    text,
		seqLen:  seqLen,
		start:   make([]int32, n),
		end:     make([]int32, n),
		parent:  make([]Node, n),
		child:   make([]Node, n),
		sibling: make([]Node, n),
		rlen:    make([]int32, n),
		freq:    make([]int32, n),
		occLo:   make([]int32, n),
		occHi:   make([]int32, n),
		occ:     make([]int32, 0, int(seqLen)),
	}

	// canonical child order: terminator edge first, then ascending byte
	key := func(c int32) int {
		ch := text[b.nodes[c].start]
		if ch == Terminator {
			return -1
		}
		return int(ch)
	}
	kids := make([][]int32, n)
	for i := range b.nodes {
		u := &b.nodes[i]
		t.start[i] = u.start
		t.end[i] = u.end
		if u.end == open {
			t.end[i] = m
		}
		t.parent[i] = None
		t.child[i] = None
		t.sibling[i] = None
		if len(u.next) == 0 {
			continue
		}
		cs := make([]int32, 0, len(u.next))
		for _, c := range u.next {
			cs = append(cs, c)
		}
		sort.Slice(cs, func(x, y int) bool { return key(cs[x]) < key(cs[y]) })
		kids[i] = cs
	}

	// visible sibling links skip terminator edges
	for i := range kids {
		var prev Node = None
		for _, c := range kids[i] {
			if text[t.start[c]] == Terminator {
				continue
			}
			if prev == None {
				t.child[i] = c
			} else {
				t.sibling[prev] = c
			}
			prev = c
		}
	}

	type frame struct {
		n    Node
		next int
	}
	stack := make([]frame, 1, 64)
	stack[0] = frame{n: 0}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.next == 0 {
			t.occLo[f.n] = int32(len(t.occ))
			if len(kids[f.n]) == 0 {
				if ss := t.start[f.n] - t.rlen[t.parentOrRoot(f.n)]; ss < seqLen {
					t.occ = append(t.occ, ss)
				}
			}
		}
		if f.next < len(kids[f.n]) {
			c := kids[f.n][f.next]
			f.next++
			t.parent[c] = f.n
			el := t.end[c] - t.start[c]
			if t.end[c] == m {
				el-- // leaf edges carry the terminator
			}
			t.rlen[c] = t.rlen[f.n] + el
			stack = append(stack, frame{n: c})
		} else {
			t.occHi[f.n] = int32(len(t.occ))
			t.freq[f.n] = t.occHi[f.n] - t.occLo[f.n]
			stack = stack[:len(stack)-1]
		}
	}

	for c := t.child[0]; c != None; c = t.sibling[c] {
		t.sigma = append(t.sigma, text[t.start[c]])
	}
	return t
}

func (t *Tree) parentOrRoot(n Node) Node {
	if p := t.parent[n]; p != None {
		return p
	}
	return 0
}

package suffixtree

import (
	"math/rand"
	"sort"
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
)

// lookup walks the tree along p and returns the node whose represented
// string has p as a prefix.
func lookup(t *Tree, p []byte) (Node, bool) {
	n := t.Root()
	depth := 0
	for depth < len(p) {
		var c Node
		for c = t.FirstChild(n); c != None; c = t.NextSibling(c) {
			if t.ParentEdgeFirstChar(c) == p[depth] {
				break
			}
		}
		if c == None {
			return None, false
		}
		edgeLen := t.RepLen(c) - t.ParentRepLen(c)
		for k := int32(0); k < edgeLen && depth < len(p); k++ {
			if t.ParentEdgeCharAt(c, k) != p[depth] {
				return None, false
			}
			depth++
		}
		n = c
	}
	return n, true
}

func positions(s, p []byte) []int32 {
	pos := make([]int32, 0)
	for i := 0; i+len(p) <= len(s); i++ {
		if string(s[i:i+len(p)]) == string(p) {
			pos = append(pos, int32(i))
		}
	}
	return pos
}

func sorted(xs []int32) []int32 {
	ys := append([]int32(nil), xs...)
	sort.Slice(ys, func(i, j int) bool { return ys[i] < ys[j] })
	return ys
}

func TestAlphabet(t *testing.T) {
	assert.Equal(t, []byte("AB"), New([]byte("ABAB")).Alphabet())
	assert.Equal(t, []byte("ABC"), New([]byte("ABCABC")).Alphabet())
	assert.Equal(t, []byte("A"), New([]byte("AAAA")).Alphabet())
	assert.Equal(t, []byte("ABC"), New([]byte("CBCBAA")).Alphabet())
	assert.Empty(t, New(nil).Alphabet())
}

func TestStructureABAB(t *testing.T) {
	tree := New([]byte("ABAB"))
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, 4, tree.Freq(tree.Root()))
	assert.Equal(t, int32(0), tree.RepLen(tree.Root()))

	a, ok := lookup(tree, []byte("A"))
	assert.True(t, ok)
	// path compressed: both occurrences of A continue with B
	assert.Equal(t, int32(2), tree.RepLen(a))
	assert.Equal(t, 2, tree.Freq(a))
	assert.False(t, tree.IsLeaf(a))
	assert.Equal(t, []int32{0, 2}, sorted(tree.Occurrences(a)))

	b, ok := lookup(tree, []byte("B"))
	assert.True(t, ok)
	assert.Equal(t, int32(1), tree.RepLen(b))
	assert.Equal(t, 2, tree.Freq(b))
	assert.Equal(t, []int32{1, 3}, sorted(tree.Occurrences(b)))

	abab, ok := lookup(tree, []byte("ABAB"))
	assert.True(t, ok)
	assert.True(t, tree.IsLeaf(abab))
	assert.Equal(t, 1, tree.Freq(abab))
	assert.Equal(t, []int32{0}, sorted(tree.Occurrences(abab)))

	_, ok = lookup(tree, []byte("BB"))
	assert.False(t, ok)
}

func TestStructureAAAA(t *testing.T) {
	tree := New([]byte("AAAA"))
	for l := 1; l <= 4; l++ {
		p := make([]byte, l)
		for i := range p {
			p[i] = 'A'
		}
		n, ok := lookup(tree, p)
		assert.True(t, ok)
		assert.Equal(t, 5-l, tree.Freq(n), "freq of %s", p)
	}
	a, _ := lookup(tree, []byte("A"))
	assert.Equal(t, []int32{0, 1, 2, 3}, sorted(tree.Occurrences(a)))
	aaa, _ := lookup(tree, []byte("AAA"))
	assert.Equal(t, []int32{0, 1}, sorted(tree.Occurrences(aaa)))
}

// every substring must be findable with the exact occurrence set; the
// visible children of every node must have distinct first characters in
// ascending order.
func TestAgainstNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabets := []string{"A", "AB", "ABC", "ACGT"}
	for round := 0; round < 50; round++ {
		sigma := alphabets[round%len(alphabets)]
		n := 1 + rng.Intn(40)
		s := make([]byte, n)
		for i := range s {
			s[i] = sigma[rng.Intn(len(sigma))]
		}
		tree := New(s)
		assert.Equal(t, len(s), tree.Len())
		assert.Equal(t, len(s), tree.Freq(tree.Root()))
		for i := 0; i < len(s); i++ {
			for j := i + 1; j <= len(s); j++ {
				p := s[i:j]
				node, ok := lookup(tree, p)
				if !assert.True(t, ok, "%q not found in tree of %q", p, s) {
					continue
				}
				want := positions(s, p)
				assert.Equal(t, len(want), tree.Freq(node), "freq of %q in %q", p, s)
				assert.True(t, tree.RepLen(node) >= int32(len(p)))
				assert.Equal(t, want, sorted(tree.Occurrences(node)), "occurrences of %q in %q", p, s)
			}
		}
		checkChildOrder(t, tree, tree.Root())
	}
}

func checkChildOrder(t *testing.T, tree *Tree, n Node) {
	last := -1
	for c := tree.FirstChild(n); c != None; c = tree.NextSibling(c) {
		ch := int(tree.ParentEdgeFirstChar(c))
		assert.True(t, ch > last, "children out of order")
		last = ch
		assert.Equal(t, n, tree.parent[c])
		assert.True(t, tree.RepLen(c) > tree.RepLen(n))
		assert.Equal(t, tree.RepLen(n), tree.ParentRepLen(c))
		checkChildOrder(t, tree, c)
	}
}

func TestEmptySequence(t *testing.T) {
	tree := New(nil)
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Freq(tree.Root()))
	assert.Equal(t, None, tree.FirstChild(tree.Root()))
}

// the occurrence slices of sibling subtrees partition the parent's slice
func TestOccurrenceIntervals(t *testing.T) {
	tree := New([]byte("MISSISSIPPI"))
	var walk func(n Node)
	walk = func(n Node) {
		if tree.IsLeaf(n) {
			return
		}
		total := 0
		for c := tree.FirstChild(n); c != None; c = tree.NextSibling(c) {
			total += tree.Freq(c)
			walk(c)
		}
		// hidden terminator leaves account for any difference
		assert.True(t, total <= tree.Freq(n))
		assert.True(t, tree.Freq(n)-total <= 1)
	}
	walk(tree.Root())
}

// Package distance provides the character pair distance measures used to
// admit approximate motif occurrences: plain Hamming and the SAX MINDIST of
// Lin et al. for symbolic aggregate approximation alphabets.
package distance

import (
	"math"
)

import (
	"github.com/timtadh/data-structures/errors"
)

// Measure maps a pair of characters to a non-negative distance. Measures
// must be pure and total with m(a, a) == 0.
type Measure func(a, b byte) float64

// Hamming is 1 for differing characters and 0 otherwise.
func Hamming(a, b byte) float64 {
	if a != b {
		return 1.0
	}
	return 0.0
}

// SAXMinDist builds the MINDIST measure for an ordered SAX alphabet. The
// breakpoints are the i/k quantiles of the standard normal distribution for
// i in [1, k). Symbols i < j are dist(i, j) = beta[j-1] - beta[i] apart;
// characters outside the alphabet are at distance 0 from everything.
func SAXMinDist(alphabet string) (Measure, error) {
	if len(alphabet) == 0 {
		return nil, errors.Errorf("empty SAX alphabet")
	}
	index := make(map[byte]int, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		if _, has := index[alphabet[i]]; has {
			return nil, errors.Errorf("the SAX alphabet can only consist of unique characters (got %q)", alphabet)
		}
		index[alphabet[i]] = i
	}
	k := len(alphabet)
	breakpoints := make([]float64, k-1)
	for i := 1; i < k; i++ {
		breakpoints[i-1] = normalQuantile(float64(i) / float64(k))
	}
	var lookup [256][256]float64
	for a, i := range index {
		for b, j := range index {
			lo, hi := i, j
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo != hi {
				lookup[a][b] = breakpoints[hi-1] - breakpoints[lo]
			}
		}
	}
	return func(a, b byte) float64 {
		return lookup[a][b]
	}, nil
}

// normalQuantile inverts the standard normal CDF.
func normalQuantile(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

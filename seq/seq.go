// Package seq loads the input sequence: whitespace separated tokens read
// from a stream and concatenated, with no separator inserted between them.
package seq

import (
	"bufio"
	"io"
)

// an input token may be long; let the scanner grow its buffer well past the
// bufio default
const maxTokenSize = 64 * 1024 * 1024

// Read consumes the stream and returns the concatenated sequence. An empty
// stream yields an empty (non-nil) sequence.
func Read(r io.Reader) ([]byte, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	s.Split(bufio.ScanWords)
	seq := make([]byte, 0, 1024)
	for s.Scan() {
		seq = append(seq, s.Bytes()...)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return seq, nil
}

package cmd

import (
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Input opens the file at path for reading. Files ending in .gz are
// decompressed transparently. The returned closeall must be called when the
// reader is no longer needed.
func Input(path string) (reader io.Reader, closeall func(), err error) {
	freader, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		greader, err := gzip.NewReader(freader)
		if err != nil {
			freader.Close()
			return nil, nil, err
		}
		return greader, func() {
			greader.Close()
			freader.Close()
		}, nil
	}
	return freader, func() {
		freader.Close()
	}, nil
}

// Stdin presents standard input with the same shape as Input.
func Stdin() (reader io.Reader, closeall func(), err error) {
	return os.Stdin, func() {}, nil
}

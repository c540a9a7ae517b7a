// Package corpus streams whitespace separated tokens from a cleaned corpus.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// maxToken bounds a single token; lines may be of any length.
const maxToken = 1 << 20

// Reader yields tokens one at a time, exactly as they appear in the source.
type Reader struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxToken)
	scanner.Split(bufio.ScanWords)
	return &Reader{scanner: scanner}
}

// Open opens the corpus file at path for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	r := NewReader(f)
	r.closer = f
	return r, nil
}

// Scan advances to the next token. It returns false at the end of the
// input or on a read error, which is then reported by Err.
func (r *Reader) Scan() bool {
	return r.scanner.Scan()
}

func (r *Reader) Token() string {
	return r.scanner.Text()
}

func (r *Reader) Err() error {
	return r.scanner.Err()
}

func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// core/paf/reader.go
package paf

import (
	"bufio"
	"fmt"
	"io"
)

// Source yields alignment records in input order; io.EOF ends the stream.
type Source interface {
	Next() (Record, error)
}

// Reader reads PAF lines from an io.Reader.
type Reader struct {
	sc   *bufio.Scanner
	name string
	ln   int
}

// NewReader returns a PAF reader. name is used in error messages.
func NewReader(r io.Reader, name string) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 256 * 1024 * 1024 // cs tags of ultra-long reads
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc, name: name}
}

// Next returns the next record, skipping blank lines.
func (r *Reader) Next() (Record, error) {
	for r.sc.Scan() {
		r.ln++
		line := r.sc.Text()
		if line == "" || line == "\r" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return Record{}, fmt.Errorf("%s:%d: %w", r.name, r.ln, err)
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("%s: %w", r.name, err)
	}
	return Record{}, io.EOF
}

// core/fastx/reader.go
package fastx

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrMalformedRecord reports a header line that is not ">name" or "@name".
	ErrMalformedRecord = errors.New("malformed sequence record")
	// ErrMissingSequenceLine reports a header with nothing after it.
	ErrMissingSequenceLine = errors.New("missing sequence line")
)

// Record is one named sequence.
type Record struct {
	Name string
	Seq  []byte
}

// Reader yields FASTA or FASTQ records with a single sequence line each.
type Reader struct {
	sc   *bufio.Scanner
	name string
	ln   int
}

func NewReader(r io.Reader, name string) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 256 * 1024 * 1024 // single-line ultra-long reads
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc, name: name}
}

func (r *Reader) line() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	r.ln++
	return strings.TrimSuffix(r.sc.Text(), "\r"), true
}

// Next returns the next record or io.EOF.
func (r *Reader) Next() (Record, error) {
	var hdr string
	for {
		l, ok := r.line()
		if !ok {
			if err := r.sc.Err(); err != nil {
				return Record{}, fmt.Errorf("%s: %w", r.name, err)
			}
			return Record{}, io.EOF
		}
		if l != "" {
			hdr = l
			break
		}
	}
	name, fastq, ok := parseHeader(hdr)
	if !ok {
		return Record{}, fmt.Errorf("%s:%d: %w: %q", r.name, r.ln, ErrMalformedRecord, truncate(hdr, 40))
	}
	seq, ok := r.line()
	if !ok {
		if err := r.sc.Err(); err != nil {
			return Record{}, fmt.Errorf("%s: %w", r.name, err)
		}
		return Record{}, fmt.Errorf("%s:%d: %w for %q", r.name, r.ln, ErrMissingSequenceLine, name)
	}
	if fastq {
		r.line()
		r.line()
	}
	return Record{Name: name, Seq: []byte(seq)}, nil
}

// parseHeader accepts ">name ..." or "@name ..." where name is the first
// whitespace-free token directly after the marker.
func parseHeader(l string) (name string, fastq, ok bool) {
	if len(l) < 2 || (l[0] != '>' && l[0] != '@') {
		return "", false, false
	}
	rest := l[1:]
	end := strings.IndexAny(rest, " \t")
	if end == 0 {
		return "", false, false
	}
	if end > 0 {
		rest = rest[:end]
	}
	return rest, l[0] == '@', true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

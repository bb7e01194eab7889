// core/paf/parse.go
package paf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// ErrMalformedAlignment reports an alignment line that cannot be tokenized.
var ErrMalformedAlignment = errors.New("malformed alignment")

// ParseLine tokenizes one tab-separated PAF line.
func ParseLine(line string) (Record, error) {
	f := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(f) < 12 {
		return Record{}, fmt.Errorf("%w: %d columns, want at least 12", ErrMalformedAlignment, len(f))
	}
	var (
		r    Record
		ints [9]int
	)
	cols := [9]int{1, 2, 3, 6, 7, 8, 9, 10, 11}
	for i, c := range cols {
		v, err := strconv.Atoi(f[c])
		if err != nil {
			return Record{}, fmt.Errorf("%w: column %d: %v", ErrMalformedAlignment, c+1, err)
		}
		ints[i] = v
	}
	mapq, err := safecast.Conv[uint8](ints[8])
	if err != nil {
		return Record{}, fmt.Errorf("%w: mapping quality %d: %v", ErrMalformedAlignment, ints[8], err)
	}
	if f[4] != "+" && f[4] != "-" {
		return Record{}, fmt.Errorf("%w: strand %q", ErrMalformedAlignment, f[4])
	}
	r = Record{
		QName: f[0], QLen: ints[0], QStart: ints[1], QEnd: ints[2],
		Strand: f[4][0],
		TName:  f[5], TLen: ints[3], TStart: ints[4], TEnd: ints[5],
		Matches: ints[6], BlockLen: ints[7], MapQ: mapq,
	}
	if len(f) > 12 {
		r.Tags = f[12:]
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate checks that both spans lie inside their sequences.
func (r Record) Validate() error {
	if r.QName == "" {
		return fmt.Errorf("%w: empty read name", ErrMalformedAlignment)
	}
	if r.QStart < 0 || r.QStart > r.QEnd || r.QEnd > r.QLen {
		return fmt.Errorf("%w: read span [%d,%d) outside length %d", ErrMalformedAlignment, r.QStart, r.QEnd, r.QLen)
	}
	if r.TStart < 0 || r.TStart > r.TEnd || r.TEnd > r.TLen {
		return fmt.Errorf("%w: target span [%d,%d) outside length %d", ErrMalformedAlignment, r.TStart, r.TEnd, r.TLen)
	}
	if r.Matches < 0 || r.BlockLen < 0 {
		return fmt.Errorf("%w: negative match count or block length", ErrMalformedAlignment)
	}
	return nil
}

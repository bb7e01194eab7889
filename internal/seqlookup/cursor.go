// Package seqlookup finds read sequences in a forward-only record stream
// that is co-ordered with the alignment groups.
package seqlookup

import (
	"errors"
	"fmt"
	"io"

	"utec-core/fastx"
	"utec/internal/runutil"
)

var (
	// ErrSequenceNotFound means the stream ended before the name appeared.
	ErrSequenceNotFound = errors.New("sequence not found")
	// ErrLengthMismatch means the record's length differs from the length
	// declared by its alignments.
	ErrLengthMismatch = errors.New("sequence length mismatch")
)

// StreamOrderingError reports a lookup for a record that was already passed
// over, i.e. the two inputs are not in the same order.
type StreamOrderingError struct {
	Name string
}

func (e *StreamOrderingError) Error() string {
	return fmt.Sprintf("sequence %q was skipped earlier: alignments and sequences are not in the same order", e.Name)
}

// Source yields sequence records; io.EOF ends the stream.
type Source interface {
	Next() (fastx.Record, error)
}

// Cursor scans a Source forward and never rewinds.
type Cursor struct {
	src     Source
	skipped *runutil.LRUSet[string]
	eof     bool
}

// NewCursor wraps src. capacity bounds how many skipped names are
// remembered for ordering checks (<= 0 selects the default).
func NewCursor(src Source, capacity int) *Cursor {
	return &Cursor{src: src, skipped: runutil.NewLRUSet[string](capacity)}
}

// Find advances to the record called name. Records passed over on the way
// are remembered so that a later request for one of them fails fast.
func (c *Cursor) Find(name string, wantLen int) (fastx.Record, error) {
	if c.skipped.Has(name) {
		return fastx.Record{}, &StreamOrderingError{Name: name}
	}
	for !c.eof {
		rec, err := c.src.Next()
		if errors.Is(err, io.EOF) {
			c.eof = true
			break
		}
		if err != nil {
			return fastx.Record{}, err
		}
		if rec.Name != name {
			c.skipped.Add(rec.Name)
			continue
		}
		if len(rec.Seq) != wantLen {
			return rec, fmt.Errorf("%w: %q has %d bases, alignments declare %d", ErrLengthMismatch, name, len(rec.Seq), wantLen)
		}
		return rec, nil
	}
	return fastx.Record{}, fmt.Errorf("%w: %q", ErrSequenceNotFound, name)
}

// core/edit/extract.go
package edit

import (
	"errors"
	"fmt"
)

// ErrInconsistentDifference reports a difference string that does not replay
// onto the alignment's declared span.
var ErrInconsistentDifference = errors.New("inconsistent difference string")

// token is one lexical unit of a cs difference string.
type token struct {
	op  byte // ':', '=', '*', '+', '-'
	n   int  // run length for ':'
	seq string
}

// scan walks a lower-cased cs string and calls fn for every token.
// Bytes that start no token are skipped.
func scan(cs string, fn func(token) error) error {
	i := 0
	for i < len(cs) {
		c := cs[i]
		switch c {
		case ':':
			j := i + 1
			n := 0
			for j < len(cs) && cs[j] >= '0' && cs[j] <= '9' {
				n = n*10 + int(cs[j]-'0')
				j++
			}
			if j == i+1 {
				i++
				continue
			}
			if err := fn(token{op: ':', n: n}); err != nil {
				return err
			}
			i = j
		case '*', '+', '-', '=':
			j := i + 1
			for j < len(cs) && cs[j] >= 'a' && cs[j] <= 'z' {
				j++
			}
			if j == i+1 {
				i++
				continue
			}
			if err := fn(token{op: c, seq: cs[i+1 : j]}); err != nil {
				return err
			}
			i = j
		default:
			i++
		}
	}
	return nil
}

// Extract replays one alignment's difference string from read position start
// and appends the resulting events to dst. Match runs and insertions advance
// the read axis by their length, substitutions by one and deletions by zero.
// The replay must end exactly at end.
func Extract(cs string, start, end, aln int, dst []Event) ([]Event, error) {
	x := start
	err := scan(cs, func(t token) error {
		switch t.op {
		case ':':
			dst = append(dst, Event{Start: x, End: x + t.n, Kind: Match, Aln: aln})
			x += t.n
		case '=':
			dst = append(dst, Event{Start: x, End: x + len(t.seq), Kind: Match, Aln: aln})
			x += len(t.seq)
		case '*':
			if len(t.seq) < 2 {
				return fmt.Errorf("%w: substitution %q at %d needs two bases", ErrInconsistentDifference, "*"+t.seq, x)
			}
			dst = append(dst, Event{Start: x, End: x + 1, Kind: Substitution, Aln: aln, Payload: []byte{t.seq[1]}})
			x++
		case '+':
			dst = append(dst, Event{Start: x, End: x + len(t.seq), Kind: Insertion, Aln: aln})
			x += len(t.seq)
		case '-':
			dst = append(dst, Event{Start: x, End: x, Kind: Deletion, Aln: aln, Payload: []byte(t.seq)})
		}
		return nil
	})
	if err != nil {
		return dst, err
	}
	if x != end {
		return dst, fmt.Errorf("%w: replay ends at %d, alignment ends at %d", ErrInconsistentDifference, x, end)
	}
	return dst, nil
}

// Stats sums a difference string into PAF-style match count and block length.
func Stats(cs string) (matches, blockLen int) {
	_ = scan(cs, func(t token) error {
		switch t.op {
		case ':':
			matches += t.n
			blockLen += t.n
		case '=':
			matches += len(t.seq)
			blockLen += len(t.seq)
		case '*':
			blockLen++
		case '+', '-':
			blockLen += len(t.seq)
		}
		return nil
	})
	return matches, blockLen
}

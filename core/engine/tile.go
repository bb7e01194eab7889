// core/engine/tile.go
package engine

import (
	"bytes"
	"errors"
	"fmt"

	"utec-core/edit"
)

// ErrInternalConsistency reports a corrected sequence whose byte count
// disagrees with its tracked length.
var ErrInternalConsistency = errors.New("internal consistency failure")

// outBuf accumulates corrected bases; n tracks what callers claim to have
// appended and must equal len(b) at the end of a run.
type outBuf struct {
	b []byte
	n int
}

func (o *outBuf) add(p []byte) {
	o.n += len(p)
	o.b = append(o.b, p...)
}

func (o *outBuf) check() error {
	if o.n != len(o.b) {
		return fmt.Errorf("%w: tracked %d bytes, wrote %d", ErrInternalConsistency, o.n, len(o.b))
	}
	return nil
}

// tile is the read interval owned by one alignment.
type tile struct {
	Window
	aln int
	out []byte
}

// tiles partitions the selected summaries' spans left to right. Each
// alignment owns at most one tile; summaries adding no new coverage get none.
func tiles(sums []Summary, nAln int) (byAln, order []*tile) {
	byAln = make([]*tile, nAln)
	end := 0
	for i, s := range sums {
		if i > 0 && s.End <= end {
			continue
		}
		st := s.Start
		if i > 0 {
			st = end
		}
		t := &tile{Window: Window{st, s.End}, aln: s.Aln}
		byAln[s.Aln] = t
		order = append(order, t)
		end = s.End
	}
	return byAln, order
}

// Tile replays the scheduled events through the tiles of sums and returns
// the corrected bases. Match runs copy the raw bases they share with their
// tile, substitutions and deletions starting inside their tile emit their
// payload, insertions emit nothing. Output is laid out in tile order.
func Tile(sums []Summary, nAln int, seq []byte, ev []edit.Event, softMask bool) ([]byte, error) {
	byAln, order := tiles(sums, nAln)

	emitted := 0
	for _, e := range ev {
		t := byAln[e.Aln]
		if t == nil {
			continue
		}
		switch e.Kind {
		case edit.Match:
			lo, hi := max(e.Start, t.Start), min(e.End, t.End)
			if lo >= hi {
				continue
			}
			if hi > len(seq) {
				return nil, fmt.Errorf("%w: match [%d,%d) past read end %d", ErrInternalConsistency, lo, hi, len(seq))
			}
			t.out = append(t.out, seq[lo:hi]...)
			emitted += hi - lo
		case edit.Substitution, edit.Deletion:
			if e.Start < t.Start || e.Start >= t.End {
				continue
			}
			p := e.Payload
			if !softMask {
				p = bytes.ToUpper(p)
			}
			t.out = append(t.out, p...)
			emitted += len(p)
		}
	}

	out := outBuf{b: make([]byte, 0, emitted)}
	for _, t := range order {
		out.add(t.out)
	}
	if out.n != emitted {
		return nil, fmt.Errorf("%w: emitted %d bytes, assembled %d", ErrInternalConsistency, emitted, out.n)
	}
	if err := out.check(); err != nil {
		return nil, err
	}
	return out.b, nil
}

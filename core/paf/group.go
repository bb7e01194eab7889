// core/paf/group.go
package paf

import (
	"errors"
	"io"
)

// Grouper collects consecutive records sharing a read name. Records whose
// read is shorter than MinReadLen or whose block is shorter than MinBlockLen
// are dropped before grouping.
type Grouper struct {
	src         Source
	MinReadLen  int
	MinBlockLen int

	pending *Record
	done    bool
}

func NewGrouper(src Source, minReadLen, minBlockLen int) *Grouper {
	return &Grouper{src: src, MinReadLen: minReadLen, MinBlockLen: minBlockLen}
}

// Next returns the next non-empty group, or io.EOF.
func (g *Grouper) Next() ([]Record, error) {
	for {
		group, err := g.nextRun()
		if err != nil {
			return nil, err
		}
		if len(group) > 0 {
			return group, nil
		}
	}
}

// nextRun returns the kept records of the next run of equal names. The run
// may be empty when every record was pre-dropped.
func (g *Grouper) nextRun() ([]Record, error) {
	if g.done && g.pending == nil {
		return nil, io.EOF
	}
	var (
		name  string
		group []Record
		seen  bool
	)
	if g.pending != nil {
		name, seen = g.pending.QName, true
		group = g.keep(group, *g.pending)
		g.pending = nil
	}
	for !g.done {
		rec, err := g.src.Next()
		if errors.Is(err, io.EOF) {
			g.done = true
			break
		}
		if err != nil {
			return nil, err
		}
		if seen && rec.QName != name {
			g.pending = &rec
			return group, nil
		}
		name, seen = rec.QName, true
		group = g.keep(group, rec)
	}
	if !seen {
		return nil, io.EOF
	}
	return group, nil
}

func (g *Grouper) keep(dst []Record, r Record) []Record {
	if r.QLen < g.MinReadLen || r.BlockLen < g.MinBlockLen {
		return dst
	}
	return append(dst, r)
}

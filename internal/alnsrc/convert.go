// internal/alnsrc/convert.go
package alnsrc

import (
	"fmt"
	"strings"

	"github.com/biogo/hts/sam"

	"utec-core/edit"
	"utec-core/paf"
)

var (
	csTag = sam.NewTag("cs")
	nmTag = sam.NewTag("NM")
)

// FromSAM converts a mapped SAM record into a PAF record on the read's own
// axis. Unmapped records and records without a reference report ok=false.
func FromSAM(r *sam.Record) (rec paf.Record, ok bool, err error) {
	if r.Flags&sam.Unmapped != 0 || r.Ref == nil {
		return paf.Record{}, false, nil
	}

	var qlen, aligned, lead, trail, block, eq, mm, m int
	leading := true
	for _, op := range r.Cigar {
		t, n := op.Type(), op.Len()
		clip := t == sam.CigarSoftClipped || t == sam.CigarHardClipped
		switch {
		case clip && leading:
			lead += n
		case clip:
			trail += n
		default:
			leading = false
			if trail > 0 {
				return paf.Record{}, false, fmt.Errorf("%w: clip inside CIGAR %v", paf.ErrMalformedAlignment, r.Cigar)
			}
		}
		if t == sam.CigarHardClipped {
			qlen += n
		} else {
			qlen += n * t.Consumes().Query
		}
		switch t {
		case sam.CigarMatch:
			m += n
		case sam.CigarEqual:
			eq += n
		case sam.CigarMismatch:
			mm += n
		}
		switch t {
		case sam.CigarMatch, sam.CigarEqual, sam.CigarMismatch, sam.CigarInsertion:
			aligned += n
			block += n
		case sam.CigarDeletion:
			block += n
		}
	}

	rec = paf.Record{
		QName:  r.Name,
		QLen:   qlen,
		Strand: '+',
		TName:  r.Ref.Name(),
		TLen:   r.Ref.Len(),
		TStart: r.Pos,
		TEnd:   r.End(),
		MapQ:   r.MapQ,
	}
	rec.QStart = lead
	if r.Flags&sam.Reverse != 0 {
		rec.Strand = '-'
		rec.QStart = trail
	}
	rec.QEnd = rec.QStart + aligned

	if cs, ok := auxString(r, csTag); ok {
		rec.Tags = append(rec.Tags, "cs:Z:"+cs)
		rec.Matches, rec.BlockLen = edit.Stats(strings.ToLower(cs))
	} else {
		rec.BlockLen = block
		switch nm, ok := auxInt(r, nmTag); {
		case ok:
			rec.Matches = max(block-nm, 0)
		case eq+mm > 0:
			rec.Matches = eq
		default:
			rec.Matches = m
		}
	}
	if err := rec.Validate(); err != nil {
		return paf.Record{}, false, err
	}
	return rec, true, nil
}

func auxString(r *sam.Record, tag sam.Tag) (string, bool) {
	a := r.AuxFields.Get(tag)
	if a == nil {
		return "", false
	}
	s, ok := a.Value().(string)
	return s, ok
}

func auxInt(r *sam.Record, tag sam.Tag) (int, bool) {
	a := r.AuxFields.Get(tag)
	if a == nil {
		return 0, false
	}
	switch v := a.Value().(type) {
	case int8:
		return int(v), true
	case uint8:
		return int(v), true
	case int16:
		return int(v), true
	case uint16:
		return int(v), true
	case int32:
		return int(v), true
	case uint32:
		return int(v), true
	}
	return 0, false
}

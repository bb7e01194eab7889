// core/paf/record.go
package paf

import "strings"

// Record is one pairwise alignment. Q* fields describe the read being
// corrected, T* fields the overlapping sequence.
type Record struct {
	QName    string
	QLen     int
	QStart   int
	QEnd     int
	Strand   byte // '+' or '-'
	TName    string
	TLen     int
	TStart   int
	TEnd     int
	Matches  int
	BlockLen int
	MapQ     uint8
	Tags     []string
}

// Identity is the fraction of matching bases over the alignment block.
func (r Record) Identity() float64 {
	if r.BlockLen == 0 {
		return 0
	}
	return float64(r.Matches) / float64(r.BlockLen)
}

// Clips returns the unaligned overhang at the start and end of the
// alignment. On the reverse strand the target ends are swapped.
func (r Record) Clips() (start, end int) {
	if r.Strand == '+' {
		return min(r.QStart, r.TStart), min(r.QLen-r.QEnd, r.TLen-r.TEnd)
	}
	return min(r.QStart, r.TLen-r.TEnd), min(r.QLen-r.QEnd, r.TStart)
}

// DiffString returns the lower-cased cs:Z difference string, if present.
func (r Record) DiffString() (string, bool) {
	for _, t := range r.Tags {
		if !strings.HasPrefix(t, "cs:Z:") {
			continue
		}
		v := t[len("cs:Z:"):]
		if i := strings.IndexAny(v, " \t\r\n"); i >= 0 {
			v = v[:i]
		}
		if v == "" {
			continue
		}
		return strings.ToLower(v), true
	}
	return "", false
}

// core/engine/select.go
package engine

import (
	"cmp"
	"slices"
)

// Window is the contiguous read region chosen for correction.
type Window struct {
	Start int
	End   int
}

func (w Window) Len() int { return w.End - w.Start }

// consistent is the haplotype filter: an alignment is kept when it has no
// support data at all, or when its discordant length stays below ratio of
// its total het+discordant length.
func consistent(s Summary, ratio float64) bool {
	if s.HetLen == 0 && s.DiscLen == 0 {
		return true
	}
	return float64(s.DiscLen) < float64(s.HetLen+s.DiscLen)*ratio
}

// Select applies the haplotype filter, then restricts the survivors to the
// longest connected component of their read spans. Ties keep the earliest
// component. The result is sorted by start; ok is false when nothing
// survives the haplotype filter.
func Select(sums []Summary, ratio float64) (kept []Summary, win Window, ok bool) {
	for _, s := range sums {
		if consistent(s, ratio) {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil, Window{}, false
	}
	slices.SortStableFunc(kept, func(a, b Summary) int { return cmp.Compare(a.Start, b.Start) })

	st, en := kept[0].Start, kept[0].End
	var best Window
	maxEnd := en
	for _, s := range kept[1:] {
		if s.Start > en {
			if en-st > best.Len() {
				best = Window{st, en}
			}
			st, en = s.Start, s.End
		} else {
			en = max(en, s.End)
		}
		maxEnd = max(maxEnd, s.End)
	}
	if en-st > best.Len() {
		best = Window{st, en}
	}
	if st == kept[0].Start && en == maxEnd {
		return kept, Window{st, en}, true
	}

	pruned := kept[:0:0]
	for _, s := range kept {
		if s.Start < best.End && s.End > best.Start {
			pruned = append(pruned, s)
		}
	}
	return pruned, best, true
}

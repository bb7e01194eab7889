// core/edit/event.go
package edit

import (
	"cmp"
	"slices"
)

// Kind is the type of an edit event. The numeric value is the tie-break
// priority between events starting at the same read position.
type Kind int8

const (
	Deletion     Kind = -1
	Match        Kind = 0
	Substitution Kind = 1
	Insertion    Kind = 2
)

func (k Kind) String() string {
	switch k {
	case Deletion:
		return "deletion"
	case Match:
		return "match"
	case Substitution:
		return "substitution"
	case Insertion:
		return "insertion"
	}
	return "unknown"
}

// Event is one edit on the read axis: a half-open interval [Start, End),
// the index of the alignment it came from, and the bases carried by
// substitutions and deletions.
type Event struct {
	Start   int
	End     int
	Kind    Kind
	Aln     int
	Payload []byte
}

// Len is the span of the event on the read axis.
func (e Event) Len() int { return e.End - e.Start }

// Compare orders events by start, then kind priority.
func Compare(a, b Event) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind, b.Kind)
}

// Sort merges the events of all alignments of one read into schedule order.
// Equal keys keep their original relative order.
func Sort(ev []Event) {
	slices.SortStableFunc(ev, Compare)
}

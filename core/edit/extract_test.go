package edit

import (
	"errors"
	"testing"
)

func TestExtractMatchSubMatch(t *testing.T) {
	ev, err := Extract(":5*ac:3", 0, 9, 0, nil)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	want := []Event{
		{Start: 0, End: 5, Kind: Match},
		{Start: 5, End: 6, Kind: Substitution, Payload: []byte("c")},
		{Start: 6, End: 9, Kind: Match},
	}
	if len(ev) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(ev), len(want), ev)
	}
	for i := range want {
		g, w := ev[i], want[i]
		if g.Start != w.Start || g.End != w.End || g.Kind != w.Kind || string(g.Payload) != string(w.Payload) {
			t.Errorf("event %d = %+v, want %+v", i, g, w)
		}
	}
}

// Insertions advance the read axis by their length, deletions by nothing.
func TestExtractIndelAxisBookkeeping(t *testing.T) {
	ev, err := Extract(":3+gg:2-tt:1", 10, 18, 4, nil)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(ev) != 5 {
		t.Fatalf("got %d events: %+v", len(ev), ev)
	}
	ins := ev[1]
	if ins.Kind != Insertion || ins.Start != 13 || ins.End != 15 || ins.Payload != nil {
		t.Errorf("insertion = %+v", ins)
	}
	del := ev[3]
	if del.Kind != Deletion || del.Start != 17 || del.End != 17 || string(del.Payload) != "tt" {
		t.Errorf("deletion = %+v", del)
	}
	if last := ev[4]; last.Start != 17 || last.End != 18 {
		t.Errorf("last match = %+v", last)
	}
	for _, e := range ev {
		if e.Aln != 4 {
			t.Fatalf("alignment index not carried: %+v", e)
		}
	}
}

func TestExtractEndMismatch(t *testing.T) {
	_, err := Extract(":5-ac:3", 0, 10, 0, nil)
	if !errors.Is(err, ErrInconsistentDifference) {
		t.Fatalf("want ErrInconsistentDifference, got %v", err)
	}
}

func TestExtractShortSubstitution(t *testing.T) {
	_, err := Extract(":2*a:2", 0, 5, 0, nil)
	if !errors.Is(err, ErrInconsistentDifference) {
		t.Fatalf("want ErrInconsistentDifference, got %v", err)
	}
}

func TestExtractLongFormAndUnknownBytes(t *testing.T) {
	ev, err := Extract("=acgt~*ga:2", 0, 7, 1, nil)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(ev) != 3 || ev[0].Kind != Match || ev[0].End != 4 || ev[1].Kind != Substitution || ev[1].Start != 4 {
		t.Fatalf("unexpected events: %+v", ev)
	}
}

func TestExtractAppends(t *testing.T) {
	ev, _ := Extract(":4", 0, 4, 0, nil)
	ev, err := Extract(":2*ct:1", 1, 5, 1, ev)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(ev) != 4 || ev[0].Aln != 0 || ev[3].Aln != 1 {
		t.Fatalf("append lost events: %+v", ev)
	}
}

func TestStats(t *testing.T) {
	m, b := Stats(":10*ag+ac:5-t")
	if m != 15 || b != 19 {
		t.Fatalf("Stats = (%d,%d), want (15,19)", m, b)
	}
}

package engine

import (
	"errors"
	"testing"

	"utec-core/edit"
)

func TestTilesPartition(t *testing.T) {
	byAln, order := tiles([]Summary{sum(2, 0, 50), sum(0, 10, 40), sum(1, 30, 90), sum(3, 60, 120)}, 4)
	want := []Window{{0, 50}, {50, 90}, {90, 120}}
	if len(order) != len(want) {
		t.Fatalf("got %d tiles", len(order))
	}
	for i, w := range want {
		if order[i].Window != w {
			t.Errorf("tile %d = %+v, want %+v", i, order[i].Window, w)
		}
	}
	if byAln[0] != nil {
		t.Error("contained alignment got a tile")
	}
}

func TestTileOutputFollowsReadOrder(t *testing.T) {
	seq := seqOf(150)
	ev := []edit.Event{
		{Start: 0, End: 90, Kind: edit.Match, Aln: 0},
		{Start: 90, End: 91, Kind: edit.Substitution, Aln: 0, Payload: []byte("g")},
		{Start: 91, End: 100, Kind: edit.Match, Aln: 0},
		{Start: 50, End: 150, Kind: edit.Match, Aln: 1},
	}
	edit.Sort(ev)
	got, err := Tile([]Summary{sum(0, 0, 100), sum(1, 50, 150)}, 2, seq, ev, false)
	if err != nil {
		t.Fatalf("tile: %v", err)
	}
	want := string(seq[:90]) + "G" + string(seq[91:])
	if string(got) != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestTileSkipsEditsOutsideTile(t *testing.T) {
	seq := seqOf(40)
	ev := []edit.Event{
		{Start: 0, End: 20, Kind: edit.Match, Aln: 0},
		{Start: 10, End: 15, Kind: edit.Match, Aln: 1},
		{Start: 15, End: 16, Kind: edit.Substitution, Aln: 1, Payload: []byte("t")},
		{Start: 16, End: 40, Kind: edit.Match, Aln: 1},
	}
	edit.Sort(ev)
	got, err := Tile([]Summary{sum(0, 0, 20), sum(1, 10, 40)}, 2, seq, ev, false)
	if err != nil {
		t.Fatalf("tile: %v", err)
	}
	if string(got) != string(seq) {
		t.Fatalf("edit before tile start leaked: %s", got)
	}
}

func TestOutBufCheck(t *testing.T) {
	var o outBuf
	o.add([]byte("ACG"))
	if err := o.check(); err != nil {
		t.Fatalf("check: %v", err)
	}
	o.n++
	if err := o.check(); !errors.Is(err, ErrInternalConsistency) {
		t.Fatalf("want ErrInternalConsistency, got %v", err)
	}
}

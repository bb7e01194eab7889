// core/engine/support.go
package engine

import (
	"utec-core/edit"
	"utec-core/paf"
)

// Summary is the per-alignment support record used for evidence selection.
type Summary struct {
	Start     int // read-axis span of the alignment
	End       int
	Aln       int // index into the filtered alignment list
	HetCount  int // match runs that carried a heterozygous substitution
	HetLen    int
	DiscCount int // own substitutions falling inside another alignment's match run
	DiscLen   int
	Identity  float64
	Matches   int
}

type span struct{ start, end int }

// discordance is one substitution that lands inside a matching run of
// another alignment, with the length of that run.
type discordance struct{ pos, runLen int }

// Analyze scans the scheduled events with a pointer to the current longest
// match run and returns one Summary per alignment. A substitution starting
// inside an active run of at least minMatchLen records het support on the
// run's alignment and a discordance on the substitution's alignment.
func Analyze(ev []edit.Event, alns []paf.Record, minMatchLen int) []Summary {
	het := make([][]span, len(alns))
	disc := make([][]discordance, len(alns))

	active := -1
	for i, e := range ev {
		switch e.Kind {
		case edit.Match:
			if active < 0 || e.Start != ev[active].Start || e.End > ev[active].End {
				active = i
			}
		case edit.Substitution:
			if active < 0 || e.Start >= ev[active].End {
				continue
			}
			run := ev[active]
			if run.Len() < minMatchLen {
				continue
			}
			hl := het[run.Aln]
			if len(hl) == 0 || hl[len(hl)-1].start != run.Start {
				het[run.Aln] = append(hl, span{run.Start, run.End})
			}
			disc[e.Aln] = append(disc[e.Aln], discordance{pos: e.Start, runLen: run.Len()})
		}
	}

	out := make([]Summary, len(alns))
	for i, a := range alns {
		s := Summary{
			Start: a.QStart, End: a.QEnd, Aln: i,
			HetCount: len(het[i]), DiscCount: len(disc[i]),
			Identity: a.Identity(), Matches: a.Matches,
		}
		for _, h := range het[i] {
			s.HetLen += h.end - h.start
		}
		for _, d := range disc[i] {
			s.DiscLen += d.runLen
		}
		out[i] = s
	}
	return out
}

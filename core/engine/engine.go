// core/engine/engine.go
package engine

import (
	"fmt"

	"utec-core/edit"
	"utec-core/paf"
)

// Config holds the per-read correction parameters.
type Config struct {
	MinBlockLen int
	MinIdentity float64
	MaxClipLen  int
	MinMatchLen int     // shortest match run that counts as het support
	MaxRatio0   float64 // tolerated discordant fraction in the haplotype filter
	SoftMask    bool    // emit substituted/deleted bases in lower case
}

// Engine corrects one read at a time from its overlap alignments.
type Engine struct {
	cfg Config
}

// New creates a new Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// Thresholds returns the Alignment Filter limits of the engine.
func (e *Engine) Thresholds() paf.Thresholds {
	return paf.Thresholds{MinBlockLen: e.cfg.MinBlockLen, MinIdentity: e.cfg.MinIdentity, MaxClipLen: e.cfg.MaxClipLen}
}

// Result is the outcome of correcting one read.
type Result struct {
	Name       string
	ReadLen    int
	Alignments []paf.Record // alignments that passed the filter
	Summaries  []Summary    // selected evidence, sorted by start
	Window     Window
	Seq        []byte // corrected bases over Window
	Corrected  bool
	Warnings   []string
}

// Correct runs filter, event extraction, scheduling, support analysis,
// evidence selection and tiling for one read. seq is the raw read; every
// alignment in alns must describe that read.
func (e *Engine) Correct(name string, seq []byte, alns []paf.Record) (Result, error) {
	res := Result{Name: name, ReadLen: len(seq)}
	res.Alignments = paf.Filter(alns, e.Thresholds())
	if len(res.Alignments) == 0 {
		return res, nil
	}

	var ev []edit.Event
	for i, a := range res.Alignments {
		cs, ok := a.DiffString()
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("no cs tag for read %q (alignment to %q)", a.QName, a.TName))
			continue
		}
		var err error
		ev, err = edit.Extract(cs, a.QStart, a.QEnd, i, ev)
		if err != nil {
			return res, fmt.Errorf("read %q, alignment to %q: %w", a.QName, a.TName, err)
		}
	}
	edit.Sort(ev)

	sums := Analyze(ev, res.Alignments, e.cfg.MinMatchLen)
	kept, win, ok := Select(sums, e.cfg.MaxRatio0)
	if !ok {
		return res, nil
	}
	res.Summaries, res.Window = kept, win

	out, err := Tile(kept, len(res.Alignments), seq, ev, e.cfg.SoftMask)
	if err != nil {
		return res, fmt.Errorf("read %q: %w", name, err)
	}
	res.Seq, res.Corrected = out, true
	return res, nil
}

// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"utec-core/edit"
	"utec-core/engine"
	"utec-core/fastx"
	"utec-core/paf"
	"utec/internal/alnsrc"
	"utec/internal/cmdutil"
	"utec/internal/config"
	"utec/internal/seqlookup"
	"utec/internal/writers"
)

// Options are the resolved inputs of one correction run.
type Options struct {
	AlnFile string
	SeqFile string
	Format  string // alignment format, see alnsrc
	Output  string // writers format; Params.Debug selects the debug table instead

	Params config.Params
	Quiet  bool
}

// errWriterStopped tells the read loop that the writer goroutine has exited.
var errWriterStopped = errors.New("writer stopped")

// Run corrects every read group in the alignment stream and writes the
// results to stdout. It returns the process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options) int {
	p := o.Params

	src, alnCloser, err := alnsrc.Open(o.AlnFile, o.Format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}
	defer alnCloser.Close()

	seqRC, err := fastx.Open(o.SeqFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}
	defer seqRC.Close()
	cursor := seqlookup.NewCursor(fastx.NewReader(seqRC, o.SeqFile), 0)

	eng := engine.New(engine.Config{
		MinBlockLen: p.MinBlockLen,
		MinIdentity: p.MinIdentity,
		MaxClipLen:  p.MaxClipLen,
		MinMatchLen: p.MinMatchLen,
		MaxRatio0:   p.MaxRatio0,
		SoftMask:    p.SoftMask,
	})

	format := o.Output
	if p.Debug {
		format = writers.FormatDebug
	}
	outw := bufio.NewWriter(stdout)
	inCh, writeErr := writers.Start(outw, format, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		werr    error
		wDone   bool
		skipped int
	)
	grouper := paf.NewGrouper(src, p.MinReadLen, p.MinBlockLen)
	_, perr := cmdutil.RunStream[[]paf.Record](ctx, grouper.Next, func(group []paf.Record) error {
		name, qlen := group[0].QName, group[0].QLen
		if qlen < p.MinReadLen {
			return nil
		}
		res, err := correct(cursor, eng, name, qlen, group)
		if err != nil {
			if p.KeepGoing && perRead(err) {
				cmdutil.Warnf(stderr, o.Quiet, "skipping read %q: %v", name, err)
				skipped++
				return nil
			}
			return err
		}
		for _, w := range res.Warnings {
			cmdutil.Warnf(stderr, o.Quiet, "%s", w)
		}
		select {
		case inCh <- res:
			return nil
		case werr = <-writeErr:
			wDone = true
			return errWriterStopped
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)
	if !wDone {
		werr = <-writeErr
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintf(stderr, "error: %v\n", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintf(stderr, "error: %v\n", e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintf(stderr, "error: %v\n", perr)
		return 3
	}
	if skipped > 0 {
		cmdutil.Warnf(stderr, o.Quiet, "%d read(s) skipped", skipped)
	}
	return 0
}

func correct(c *seqlookup.Cursor, eng *engine.Engine, name string, qlen int, group []paf.Record) (engine.Result, error) {
	rec, err := c.Find(name, qlen)
	if err != nil {
		return engine.Result{}, err
	}
	return eng.Correct(name, rec.Seq, group)
}

// perRead reports whether err only concerns the current read.
func perRead(err error) bool {
	var oe *seqlookup.StreamOrderingError
	return errors.Is(err, edit.ErrInconsistentDifference) ||
		errors.Is(err, engine.ErrInternalConsistency) ||
		errors.Is(err, seqlookup.ErrSequenceNotFound) ||
		errors.Is(err, seqlookup.ErrLengthMismatch) ||
		errors.As(err, &oe)
}

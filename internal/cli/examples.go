// internal/cli/examples.go
package cli

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a short quickstart followed by a pointer to --help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s – quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, `  # all-vs-all overlaps with cs tags, then correct
  minimap2 -cx ava-ont --cs reads.fq reads.fq > ava.paf
  %[1]s ava.paf reads.fq > corrected.fa

  # relaxed thresholds for short test data, skipping bad reads
  %[1]s -l 1000 -b 500 -k ava.paf.gz reads.fa.gz > corrected.fa

  # SAM/BAM input carrying cs:Z tags, JSON lines output
  %[1]s -o jsonl aln.bam reads.fa > corrected.jsonl

  # inspect support summaries instead of correcting
  %[1]s -D ava.paf reads.fq | less
`, name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

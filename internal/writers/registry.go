// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"utec-core/engine"
)

// Output formats.
const (
	FormatFASTA = "fasta"
	FormatJSONL = "jsonl"
	FormatDebug = "debug"
)

// ResultWriters maps a format to its handler. Handlers consume in until it is
// closed and return the first write error. Register in init() blocks.
var ResultWriters = map[string]func(w io.Writer, in <-chan engine.Result) error{}

// Register installs fn for format (last wins).
func Register(format string, fn func(io.Writer, <-chan engine.Result) error) {
	ResultWriters[format] = fn
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, in <-chan engine.Result) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, in)
}

// Start runs the writer for format in its own goroutine. The caller sends
// results on the returned channel, closes it, and then reads the single
// error value. A writer that fails stops reading, so senders should select
// on the error channel as well.
func Start(out io.Writer, format string, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Write(format, out, in)
	}()
	return in, errCh
}

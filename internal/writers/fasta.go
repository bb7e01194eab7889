// internal/writers/fasta.go
package writers

import (
	"bufio"
	"io"

	"utec-core/engine"
)

func init() {
	Register(FormatFASTA, writeFASTA)
	Register(FormatDebug, writeDebug)
}

// writeFASTA emits ">name\nseq\n" for every corrected read; reads without a
// correction are silent.
func writeFASTA(w io.Writer, in <-chan engine.Result) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	for r := range in {
		if !r.Corrected {
			continue
		}
		bw.WriteByte('>')
		bw.WriteString(r.Name)
		bw.WriteByte('\n')
		bw.Write(r.Seq)
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

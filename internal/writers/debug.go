// internal/writers/debug.go
package writers

import (
	"bufio"
	"io"
	"strconv"

	"utec-core/engine"
)

// writeDebug prints, for every read with at least one filtered alignment,
//
//	>name  read_len  n_alignments
//
// followed by one row per selected summary:
//
//	start end aln h_count h_len d_count d_len identity matches target_name
//
// All separators are tabs.
func writeDebug(w io.Writer, in <-chan engine.Result) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	row := make([]byte, 0, 128)
	for r := range in {
		if len(r.Alignments) == 0 {
			continue
		}
		row = append(row[:0], '>')
		row = append(row, r.Name...)
		row = append(row, '\t')
		row = strconv.AppendInt(row, int64(r.ReadLen), 10)
		row = append(row, '\t')
		row = strconv.AppendInt(row, int64(len(r.Alignments)), 10)
		row = append(row, '\n')
		for _, s := range r.Summaries {
			row = appendSummary(row, s)
			row = append(row, '\t')
			row = append(row, r.Alignments[s.Aln].TName...)
			row = append(row, '\n')
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func appendSummary(b []byte, s engine.Summary) []byte {
	for i, v := range [...]int{s.Start, s.End, s.Aln, s.HetCount, s.HetLen, s.DiscCount, s.DiscLen} {
		if i > 0 {
			b = append(b, '\t')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	b = append(b, '\t')
	b = strconv.AppendFloat(b, s.Identity, 'g', -1, 64)
	b = append(b, '\t')
	return strconv.AppendInt(b, int64(s.Matches), 10)
}

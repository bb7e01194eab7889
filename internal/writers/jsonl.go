// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"utec-core/engine"
	"utec/internal/jsonlutil"
	"utec/pkg/api"
)

func init() {
	Register(FormatJSONL, func(w io.Writer, in <-chan engine.Result) error {
		return jsonlutil.Drain(w, in, func(enc *json.Encoder, r engine.Result) error {
			if !r.Corrected {
				return nil
			}
			return enc.Encode(ToAPIRead(r))
		}, IsBrokenPipe)
	})
}

// ToAPIRead converts a corrected read to its v1 wire form.
func ToAPIRead(r engine.Result) api.CorrectedReadV1 {
	out := api.CorrectedReadV1{
		Name:    r.Name,
		ReadLen: r.ReadLen,
		Start:   r.Window.Start,
		End:     r.Window.End,
		Seq:     string(r.Seq),
	}
	if len(r.Summaries) > 0 {
		out.Support = make([]api.SupportV1, len(r.Summaries))
	}
	for i, s := range r.Summaries {
		a := r.Alignments[s.Aln]
		out.Support[i] = api.SupportV1{
			Target:    a.TName,
			Strand:    string(a.Strand),
			Start:     s.Start,
			End:       s.End,
			HetCount:  s.HetCount,
			HetLen:    s.HetLen,
			DiscCount: s.DiscCount,
			DiscLen:   s.DiscLen,
			Identity:  s.Identity,
			Matches:   s.Matches,
		}
	}
	return out
}

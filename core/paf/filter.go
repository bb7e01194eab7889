// core/paf/filter.go
package paf

// Thresholds are the Alignment Filter limits.
type Thresholds struct {
	MinBlockLen int
	MinIdentity float64
	MaxClipLen  int
}

// Keep reports whether a single record passes the thresholds.
func (th Thresholds) Keep(r Record) bool {
	if r.BlockLen < th.MinBlockLen {
		return false
	}
	if float64(r.Matches) < float64(r.BlockLen)*th.MinIdentity {
		return false
	}
	c0, c1 := r.Clips()
	return c0 <= th.MaxClipLen && c1 <= th.MaxClipLen
}

// Filter returns the records passing th, in their original order.
// The input slice is not modified.
func Filter(recs []Record, th Thresholds) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if th.Keep(r) {
			out = append(out, r)
		}
	}
	return out
}

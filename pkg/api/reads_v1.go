// pkg/api/reads_v1.go
package api

// CorrectedReadV1 is the stable JSONL schema for one corrected read.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CorrectedReadV1 struct {
	Name    string      `json:"name"`
	ReadLen int         `json:"read_len"`
	Start   int         `json:"start"` // coverage window on the read, 0-based half-open
	End     int         `json:"end"`
	Seq     string      `json:"seq"`
	Support []SupportV1 `json:"support,omitempty"`
}

// SupportV1 describes one overlap selected as evidence for a corrected read.
type SupportV1 struct {
	Target    string  `json:"target"`
	Strand    string  `json:"strand"` // "+" | "-"
	Start     int     `json:"start"`
	End       int     `json:"end"`
	HetCount  int     `json:"h_count"`
	HetLen    int     `json:"h_len"`
	DiscCount int     `json:"d_count"`
	DiscLen   int     `json:"d_len"`
	Identity  float64 `json:"identity"`
	Matches   int     `json:"matches"`
}

// Package alnsrc opens alignment streams in PAF, SAM or BAM form and
// presents them as paf.Source.
package alnsrc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"

	"utec-core/fastx"
	"utec-core/paf"
)

// Formats accepted by Open.
const (
	Auto = "auto"
	PAF  = "paf"
	SAM  = "sam"
	BAM  = "bam"
)

// Detect resolves Auto from the file name.
func Detect(path, format string) string {
	if format != Auto && format != "" {
		return format
	}
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".bam"):
		return BAM
	case strings.HasSuffix(strings.TrimSuffix(lower, ".gz"), ".sam"):
		return SAM
	default:
		return PAF
	}
}

// Open returns a record source for path ("-" is stdin) and the closer that
// releases it.
func Open(path, format string) (paf.Source, io.Closer, error) {
	switch f := Detect(path, format); f {
	case PAF:
		rc, err := fastx.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return paf.NewReader(rc, path), rc, nil
	case SAM:
		rc, err := fastx.Open(path)
		if err != nil {
			return nil, nil, err
		}
		sr, err := sam.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return &hts{r: sr, name: path}, rc, nil
	case BAM:
		// BGZF is read by bam itself, so the raw handle is used.
		var fh io.ReadCloser = os.Stdin
		if path != "-" {
			var err error
			if fh, err = os.Open(path); err != nil {
				return nil, nil, err
			}
		}
		br, err := bam.NewReader(fh, 1)
		if err != nil {
			fh.Close()
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return &hts{r: br, name: path}, closers{br, fh}, nil
	default:
		return nil, nil, fmt.Errorf("unknown alignment format %q", f)
	}
}

type closers []io.Closer

func (c closers) Close() error {
	var first error
	for _, x := range c {
		if err := x.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// recordReader is satisfied by *sam.Reader and *bam.Reader.
type recordReader interface {
	Read() (*sam.Record, error)
}

type hts struct {
	r    recordReader
	name string
	n    int
}

// Next returns the next mapped record converted to PAF form.
func (h *hts) Next() (paf.Record, error) {
	for {
		sr, err := h.r.Read()
		if err == io.EOF {
			return paf.Record{}, io.EOF
		}
		h.n++
		if err != nil {
			return paf.Record{}, fmt.Errorf("%s: record %d: %w", h.name, h.n, err)
		}
		rec, ok, err := FromSAM(sr)
		if err != nil {
			return paf.Record{}, fmt.Errorf("%s: record %d: %w", h.name, h.n, err)
		}
		if ok {
			return rec, nil
		}
	}
}

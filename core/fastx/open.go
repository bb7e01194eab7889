// core/fastx/open.go
package fastx

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path, "-" meaning stdin. Gzip input is detected
// by magic number (1F 8B) or a .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	var (
		fh     io.Reader
		closer io.Closer
	)
	if path == "-" {
		fh, closer = os.Stdin, io.NopCloser(nil)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		fh, closer = f, f
	}
	br := bufio.NewReaderSize(fh, 64*1024)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{closer}}, nil
}

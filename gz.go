package evilarc

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/pgzip"
)

// multithreadedGzipThreshold is the input size at which tar.gz output
// switches to the parallel gzip writer.
const multithreadedGzipThreshold = 1 << 20

// Gz facilitates gzip compression.
type Gz struct {
	// Use a fast parallel Gzip implementation. This is only
	// effective for large streams (about 1 MB or greater).
	Multithreaded bool
}

func (Gz) Name() string { return ".gz" }

func (gz Gz) OpenWriter(w io.Writer) (io.WriteCloser, error) {
	if gz.Multithreaded {
		return pgzip.NewWriterLevel(w, pgzip.DefaultCompression)
	}
	return gzip.NewWriterLevel(w, gzip.DefaultCompression)
}

package evilarc

import (
	"io"

	"github.com/andybalholm/brotli"
)

// Brotli facilitates brotli compression.
type Brotli struct{}

func (Brotli) Name() string { return ".br" }

func (Brotli) OpenWriter(w io.Writer) (io.WriteCloser, error) {
	return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
}

package evilarc

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// Lz4 facilitates LZ4 compression.
type Lz4 struct{}

func (Lz4) Name() string { return ".lz4" }

func (Lz4) OpenWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

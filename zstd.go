package evilarc

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Zstd facilitates Zstandard compression.
type Zstd struct{}

func (Zstd) Name() string { return ".zst" }

func (Zstd) OpenWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

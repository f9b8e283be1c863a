package evilarc

import (
	"io"

	"github.com/sorairolake/lzip-go"
)

// Lzip facilitates lzip compression.
type Lzip struct{}

func (Lzip) Name() string { return ".lz" }

func (Lzip) OpenWriter(w io.Writer) (io.WriteCloser, error) {
	return lzip.NewWriter(w), nil
}

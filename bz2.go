package evilarc

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

// Bz2 facilitates bzip2 compression.
type Bz2 struct{}

func (Bz2) Name() string { return ".bz2" }

func (Bz2) OpenWriter(w io.Writer) (io.WriteCloser, error) {
	return bzip2.NewWriter(w, nil)
}

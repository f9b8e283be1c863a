package evilarc

import (
	"io"

	"github.com/ulikunitz/xz"
)

// Xz facilitates xz compression.
type Xz struct{}

func (Xz) Name() string { return ".xz" }

func (Xz) OpenWriter(w io.Writer) (io.WriteCloser, error) {
	return xz.NewWriter(w)
}

package evilarc

import (
	"io"

	"github.com/golang/snappy"
)

// Sz facilitates Snappy compression, using the framed stream format.
type Sz struct{}

func (Sz) Name() string { return ".sz" }

func (Sz) OpenWriter(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

package evilarc

import (
	"context"
	"io"
)

// Compression is a compression format that can wrap a tar stream.
type Compression interface {
	// Name returns the file extension of the format, with leading dot.
	Name() string

	Compressor
}

// Compressor can compress data by wrapping a writer.
type Compressor interface {
	// OpenWriter wraps w with a new writer that compresses what is written.
	// The writer must be closed when writing is finished.
	OpenWriter(w io.Writer) (io.WriteCloser, error)
}

// Archiver can create a new archive.
type Archiver interface {
	// Archive writes an archive to output containing the given entries.
	//
	// Context cancellation must be honored.
	Archive(ctx context.Context, output io.Writer, entries []Entry) error
}

// Inserter can insert entries into an existing archive.
type Inserter interface {
	// Insert appends the entries to the archive in into, leaving
	// the entries already present intact.
	//
	// Context cancellation must be honored.
	Insert(ctx context.Context, into io.ReadWriteSeeker, entries []Entry) error
}

// Archival is an archive format that can be written.
type Archival interface {
	// Name returns the file extension of the format, with leading dot.
	Name() string

	Archiver
}

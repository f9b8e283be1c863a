package evilarc

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
)

// Tar writes tar archives.
type Tar struct {
	// If true, preserve only numeric user and group id
	NumericUIDGID bool
}

func (Tar) Name() string { return ".tar" }

func (t Tar) Archive(ctx context.Context, output io.Writer, entries []Entry) error {
	tw := tar.NewWriter(output)
	for _, e := range entries {
		if err := t.writeEntryToArchive(ctx, tw, e); err != nil {
			return combineErrors(err, tw.Close())
		}
	}
	return tw.Close()
}

func (t Tar) writeEntryToArchive(ctx context.Context, tw *tar.Writer, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err // honor context cancellation
	}

	name := e.nameInArchive()

	hdr, err := tar.FileInfoHeader(e, "")
	if err != nil {
		return fmt.Errorf("file %s: creating header: %w", name, err)
	}
	hdr.Name = name // complete path, since FileInfoHeader() only has base name
	if t.NumericUIDGID {
		hdr.Uname = ""
		hdr.Gname = ""
	}

	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("file %s: writing header: %w", name, err)
	}

	// only proceed to write a file body if there is actually a body
	if hdr.Typeflag != tar.TypeReg {
		return nil
	}

	if err := openAndCopyFile(e, tw); err != nil {
		return fmt.Errorf("file %s: writing data: %w", name, err)
	}

	return nil
}

// Insert appends entries to the tar archive in into. Tar files may end
// with any amount of zero padding, so the end of content is found by
// walking every header and computing where the last entry's data ends;
// the new entries overwrite the old trailer from the next block boundary.
func (t Tar) Insert(ctx context.Context, into io.ReadWriteSeeker, entries []Entry) error {
	var lastFileSize, lastStreamPos int64
	tr := tar.NewReader(into)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil && err != tar.ErrInsecurePath {
			return fmt.Errorf("reading existing archive: %w", err)
		}
		lastStreamPos, err = into.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		lastFileSize = hdr.Size
	}

	const blockSize = 512 // (as of Go 1.17, this is also a hard-coded const in the archive/tar package)
	newOffset := lastStreamPos + lastFileSize
	if rem := newOffset % blockSize; rem != 0 {
		newOffset += blockSize - rem // shift to next block boundary
	}
	if _, err := into.Seek(newOffset, io.SeekStart); err != nil {
		return err
	}

	tw := tar.NewWriter(into)
	for i, e := range entries {
		if err := t.writeEntryToArchive(ctx, tw, e); err != nil {
			return combineErrors(fmt.Errorf("appending file %d into archive: %s: %w", i, e.Name(), err), tw.Close())
		}
	}
	return tw.Close()
}

// CompressedTar writes tar archives through a compression format,
// e.g. tar.gz. Compressed streams cannot be appended to in place,
// so it has no Insert method.
type CompressedTar struct {
	Compression Compression
	Tar         Tar
}

// Name returns the tar extension followed by the compression extension.
func (ct CompressedTar) Name() string {
	return ct.Tar.Name() + ct.Compression.Name()
}

// Archive writes a tar stream of entries to output through the compressor.
func (ct CompressedTar) Archive(ctx context.Context, output io.Writer, entries []Entry) error {
	wc, err := ct.Compression.OpenWriter(output)
	if err != nil {
		return fmt.Errorf("opening %s compressor: %w", ct.Compression.Name(), err)
	}
	if err := ct.Tar.Archive(ctx, wc, entries); err != nil {
		return combineErrors(err, wc.Close())
	}
	return wc.Close()
}

// Interface guards
var (
	_ Archival = (*Tar)(nil)
	_ Inserter = (*Tar)(nil)
	_ Archival = (*CompressedTar)(nil)
)

package evilarc

import (
	"context"
	"fmt"
	"io"

	szip "github.com/STARRY-S/zip"
	"github.com/klauspost/compress/zip"
)

// Zip writes zip archives. JAR, WAR and EAR files are zip archives
// too and are written the same way.
type Zip struct{}

func (Zip) Name() string { return ".zip" }

func (z Zip) Archive(ctx context.Context, output io.Writer, entries []Entry) error {
	zw := zip.NewWriter(output)
	for i, e := range entries {
		if err := z.archiveOneEntry(ctx, zw, i, e); err != nil {
			return combineErrors(err, zw.Close())
		}
	}
	// the central directory is only written on close
	return zw.Close()
}

func (Zip) archiveOneEntry(ctx context.Context, zw *zip.Writer, idx int, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err // honor context cancellation
	}

	name := e.nameInArchive()

	hdr, err := zip.FileInfoHeader(e)
	if err != nil {
		return fmt.Errorf("getting info for file %d: %s: %w", idx, name, err)
	}
	hdr.Name = name // complete path, since FileInfoHeader() only has base name
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return fmt.Errorf("creating header for file %d: %s: %w", idx, name, err)
	}

	if err := openAndCopyFile(e, w); err != nil {
		return fmt.Errorf("writing file %d: %s: %w", idx, name, err)
	}

	return nil
}

// Insert appends entries to the zip archive in into. An existing
// entry with the same name is replaced.
func (z Zip) Insert(ctx context.Context, into io.ReadWriteSeeker, entries []Entry) error {
	zu, err := szip.NewUpdater(into)
	if err != nil {
		return fmt.Errorf("reading existing archive: %w", err)
	}

	for idx, e := range entries {
		if err := ctx.Err(); err != nil {
			return combineErrors(err, zu.Close()) // honor context cancellation
		}

		name := e.nameInArchive()

		hdr, err := szip.FileInfoHeader(e)
		if err != nil {
			return combineErrors(fmt.Errorf("getting info for file %d: %s: %w", idx, name, err), zu.Close())
		}
		hdr.Name = name
		hdr.Method = szip.Deflate

		w, err := zu.AppendHeader(hdr, szip.APPEND_MODE_OVERWRITE)
		if err != nil {
			return combineErrors(fmt.Errorf("inserting file header: %d: %s: %w", idx, name, err), zu.Close())
		}

		if err := openAndCopyFile(e, w); err != nil {
			return combineErrors(fmt.Errorf("writing file %d: %s: %w", idx, name, err), zu.Close())
		}
	}

	return zu.Close()
}

// Interface guards
var (
	_ Archival = (*Zip)(nil)
	_ Inserter = (*Zip)(nil)
)

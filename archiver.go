package evilarc

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Entry is a file to be put into an archive.
type Entry struct {
	fs.FileInfo

	// The path of the entry within the archive. It is written
	// as-is, including any parent-directory segments.
	NameInArchive string

	// A callback function that opens the file to read its
	// contents. The file must be closed when reading is
	// complete.
	Open func() (io.ReadCloser, error)
}

// EntryFromDisk returns an Entry that reads the regular file at
// fpath and is named nameInArchive.
func EntryFromDisk(fpath, nameInArchive string) (Entry, error) {
	info, err := os.Stat(fpath)
	if err != nil {
		return Entry{}, err
	}
	if !info.Mode().IsRegular() {
		return Entry{}, fmt.Errorf("%s: not a regular file", fpath)
	}
	return Entry{
		FileInfo:      info,
		NameInArchive: nameInArchive,
		Open:          func() (io.ReadCloser, error) { return os.Open(fpath) },
	}, nil
}

// nameInArchive returns the entry's archive name, falling
// back to the base name of the file.
func (e Entry) nameInArchive() string {
	if e.NameInArchive != "" {
		return e.NameInArchive
	}
	return e.Name()
}

// openAndCopyFile opens the entry and copies its contents to w.
func openAndCopyFile(e Entry, w io.Writer) error {
	if e.Open == nil {
		return fmt.Errorf("%s: no way to open file", e.nameInArchive())
	}
	fileReader, err := e.Open()
	if err != nil {
		return err
	}
	defer fileReader.Close()

	// When file is in use and size is being written to, creating the compressed
	// file will fail with "archive/tar: write too long." Using CopyN gracefully
	// handles this.
	_, err = io.CopyN(w, fileReader, e.Size())
	if err != nil && err != io.EOF {
		return err
	}
	return nil
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return !os.IsNotExist(err)
}

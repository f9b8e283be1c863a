package evilarc

import (
	"archive/tar"
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/dsnet/compress/bzip2"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/sorairolake/lzip-go"
	"github.com/ulikunitz/xz"
)

func checkErr(t *testing.T, err error, msgFmt string, args ...interface{}) {
	t.Helper()
	if err == nil {
		return
	}
	args = append(args, err)
	t.Fatalf(msgFmt+": %s", args...)
}

// archivedEntry is what a test reads back out of an archive.
type archivedEntry struct {
	Name string
	Body string
}

func writeInput(t *testing.T, dir, name, body string) string {
	t.Helper()
	fpath := filepath.Join(dir, name)
	checkErr(t, os.WriteFile(fpath, []byte(body), 0o644), "writing input %s", fpath)
	return fpath
}

func readZipEntries(t *testing.T, archivePath string) []archivedEntry {
	t.Helper()
	r, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		t.Fatalf("opening zip %s: %v", archivePath, err)
	}
	defer r.Close()

	var entries []archivedEntry
	for _, zf := range r.File {
		rc, err := zf.Open()
		checkErr(t, err, "opening %s in zip", zf.Name)
		body, err := io.ReadAll(rc)
		checkErr(t, err, "reading %s in zip", zf.Name)
		rc.Close()
		entries = append(entries, archivedEntry{Name: zf.Name, Body: string(body)})
	}
	return entries
}

func readTarEntries(t *testing.T, r io.Reader) ([]archivedEntry, []*tar.Header) {
	t.Helper()
	var entries []archivedEntry
	var headers []*tar.Header
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil && !errors.Is(err, tar.ErrInsecurePath) {
			t.Fatalf("reading tar header: %v", err)
		}
		body, err := io.ReadAll(tr)
		checkErr(t, err, "reading %s in tar", hdr.Name)
		entries = append(entries, archivedEntry{Name: hdr.Name, Body: string(body)})
		headers = append(headers, hdr)
	}
	return entries, headers
}

// openDecompressed opens the archive at archivePath and returns a
// reader of its decompressed tar stream.
func openDecompressed(t *testing.T, format Format, archivePath string) io.Reader {
	t.Helper()
	f, err := os.Open(archivePath)
	checkErr(t, err, "opening %s", archivePath)
	t.Cleanup(func() { f.Close() })

	var r io.Reader
	switch format {
	case FormatTar:
		r = f
	case FormatTarGz:
		r, err = gzip.NewReader(f)
	case FormatTarBz2:
		r, err = bzip2.NewReader(f, nil)
	case FormatTarXz:
		r, err = xz.NewReader(f)
	case FormatTarLz4:
		r = lz4.NewReader(f)
	case FormatTarZstd:
		var zr *zstd.Decoder
		zr, err = zstd.NewReader(f)
		if err == nil {
			t.Cleanup(zr.Close)
			r = zr
		}
	case FormatTarSz:
		r = snappy.NewReader(f)
	case FormatTarBr:
		r = brotli.NewReader(f)
	case FormatTarLz:
		r, err = lzip.NewReader(f)
	default:
		t.Fatalf("no decompressor for %s", format)
	}
	checkErr(t, err, "opening %s decompressor", format)
	return r
}

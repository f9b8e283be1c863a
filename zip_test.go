package evilarc

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestZipArchive(t *testing.T) {
	tmp := t.TempDir()
	entries := []Entry{
		testEntry(t, tmp, "evil.dll", "MZ\x90\x00", `..\..\WINDOWS\System32\evil.dll`),
		testEntry(t, tmp, "empty", "", "../empty"),
	}

	buf := new(bytes.Buffer)
	checkErr(t, Zip{}.Archive(context.Background(), buf, entries), "archiving")

	archivePath := filepath.Join(tmp, "test.zip")
	checkErr(t, os.WriteFile(archivePath, buf.Bytes(), 0o644), "writing archive")

	expect := []archivedEntry{
		{Name: `..\..\WINDOWS\System32\evil.dll`, Body: "MZ\x90\x00"},
		{Name: "../empty", Body: ""},
	}
	if diff := cmp.Diff(expect, readZipEntries(t, archivePath)); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestZipInsert(t *testing.T) {
	tmp := t.TempDir()
	archivePath := filepath.Join(tmp, "test.zip")

	f, err := os.Create(archivePath)
	checkErr(t, err, "creating archive")
	checkErr(t, Zip{}.Archive(context.Background(), f, []Entry{testEntry(t, tmp, "first", "one", "../first")}), "archiving")

	_, err = f.Seek(0, io.SeekStart)
	checkErr(t, err, "rewinding")
	checkErr(t, Zip{}.Insert(context.Background(), f, []Entry{testEntry(t, tmp, "second", "two", "../../second")}), "inserting")
	checkErr(t, f.Close(), "closing")

	expect := []archivedEntry{
		{Name: "../first", Body: "one"},
		{Name: "../../second", Body: "two"},
	}
	if diff := cmp.Diff(expect, readZipEntries(t, archivePath)); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestZipInsertReplacesSameName(t *testing.T) {
	tmp := t.TempDir()
	archivePath := filepath.Join(tmp, "test.zip")

	f, err := os.Create(archivePath)
	checkErr(t, err, "creating archive")
	checkErr(t, Zip{}.Archive(context.Background(), f, []Entry{
		testEntry(t, tmp, "first", "one", "../first"),
		testEntry(t, tmp, "second", "two", "../second"),
	}), "archiving")

	// the replaced entry is not the last one in the archive
	_, err = f.Seek(0, io.SeekStart)
	checkErr(t, err, "rewinding")
	checkErr(t, Zip{}.Insert(context.Background(), f, []Entry{testEntry(t, tmp, "first-again", "uno, longer than before", "../first")}), "inserting")
	checkErr(t, f.Close(), "closing")

	expect := []archivedEntry{
		{Name: "../first", Body: "uno, longer than before"},
		{Name: "../second", Body: "two"},
	}
	byName := cmpopts.SortSlices(func(a, b archivedEntry) bool { return a.Name < b.Name })
	if diff := cmp.Diff(expect, readZipEntries(t, archivePath), byName); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

package evilarc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an archive format an output path can resolve to.
type Format int

const (
	FormatUnknown Format = iota
	FormatZip
	FormatTar
	FormatTarGz
	FormatTarBz2
	FormatTarXz
	FormatTarLz4
	FormatTarZstd
	FormatTarSz
	FormatTarBr
	FormatTarLz
)

// formatsByExt maps a file extension, as returned by Ext, to its format.
var formatsByExt = map[string]Format{
	".zip":  FormatZip,
	".jar":  FormatZip,
	".war":  FormatZip,
	".ear":  FormatZip,
	".tar":  FormatTar,
	".gz":   FormatTarGz,
	".tgz":  FormatTarGz,
	".bz2":  FormatTarBz2,
	".tbz2": FormatTarBz2,
	".xz":   FormatTarXz,
	".txz":  FormatTarXz,
	".lz4":  FormatTarLz4,
	".tlz4": FormatTarLz4,
	".zst":  FormatTarZstd,
	".tzst": FormatTarZstd,
	".sz":   FormatTarSz,
	".tsz":  FormatTarSz,
	".br":   FormatTarBr,
	".lz":   FormatTarLz,
}

// Name returns the conventional extension of the format.
func (f Format) Name() string {
	switch f {
	case FormatZip:
		return ".zip"
	case FormatTar:
		return ".tar"
	case FormatTarGz, FormatTarBz2, FormatTarXz, FormatTarLz4,
		FormatTarZstd, FormatTarSz, FormatTarBr, FormatTarLz:
		return ".tar" + f.compression(0).Name()
	}
	return "unknown"
}

func (f Format) String() string { return f.Name() }

// compression returns the compressor wrapping the tar stream, or nil
// if the format is not a compressed tar. inputSize is the number of
// bytes about to be archived.
func (f Format) compression(inputSize int64) Compression {
	switch f {
	case FormatTarGz:
		return Gz{Multithreaded: inputSize >= multithreadedGzipThreshold}
	case FormatTarBz2:
		return Bz2{}
	case FormatTarXz:
		return Xz{}
	case FormatTarLz4:
		return Lz4{}
	case FormatTarZstd:
		return Zstd{}
	case FormatTarSz:
		return Sz{}
	case FormatTarBr:
		return Brotli{}
	case FormatTarLz:
		return Lzip{}
	}
	return nil
}

// archival returns the writer for the format.
func (f Format) archival(inputSize int64) (Archival, error) {
	switch f {
	case FormatZip:
		return Zip{}, nil
	case FormatTar:
		return Tar{}, nil
	case FormatTarGz, FormatTarBz2, FormatTarXz, FormatTarLz4,
		FormatTarZstd, FormatTarSz, FormatTarBr, FormatTarLz:
		return CompressedTar{Compression: f.compression(inputSize)}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrNoMatch, int(f))
}

// ResolveFormat returns the archive format for outputPath, chosen
// solely by its final extension. Matching is case-sensitive.
func ResolveFormat(outputPath string) (Format, error) {
	ext := Ext(outputPath)
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}
	return FormatUnknown, &Error{
		Kind: UnsupportedFormat,
		Path: outputPath,
		Err:  fmt.Errorf("%w: could not identify output archive format for %q", ErrNoMatch, ext),
	}
}

// Ext returns the final extension of fpath, including the dot. Leading
// dots of the base name do not start an extension, so ".zip" has none.
func Ext(fpath string) string {
	base := strings.TrimLeft(filepath.Base(fpath), ".")
	return filepath.Ext(base)
}

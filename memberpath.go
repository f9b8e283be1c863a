package evilarc

import (
	"path/filepath"
	"strings"
)

// BuildMemberPath returns the name the input file is stored under in
// the archive: depth parent-directory segments, then injectedPath
// terminated by the platform separator, then the base name of
// inputFile. A depth of 0 or less yields no traversal prefix.
//
// The result is deliberately not sanitized.
func BuildMemberPath(platform Platform, depth int, injectedPath, inputFile string) string {
	sep := platform.Separator()

	var sb strings.Builder
	for i := 0; i < depth; i++ {
		sb.WriteString("..")
		sb.WriteString(sep)
	}
	if injectedPath != "" {
		sb.WriteString(injectedPath)
		if !strings.HasSuffix(injectedPath, sep) {
			sb.WriteString(sep)
		}
	}
	sb.WriteString(filepath.Base(inputFile))
	return sb.String()
}

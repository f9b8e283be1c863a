package evilarc

// Platform selects the path separator used in the member path.
type Platform int

const (
	// Windows separates traversal segments with backslashes.
	Windows Platform = iota

	// Unix separates traversal segments with forward slashes.
	Unix
)

// ParsePlatform maps "win" to Windows and any other value to Unix.
// ok reports whether s was one of the recognized names, "win" or
// "unix"; an unrecognized value still resolves to Unix.
func ParsePlatform(s string) (p Platform, ok bool) {
	switch s {
	case "win":
		return Windows, true
	case "unix":
		return Unix, true
	}
	return Unix, false
}

// Separator returns the platform's path separator.
func (p Platform) Separator() string {
	if p == Windows {
		return `\`
	}
	return "/"
}

func (p Platform) String() string {
	if p == Windows {
		return "win"
	}
	return "unix"
}

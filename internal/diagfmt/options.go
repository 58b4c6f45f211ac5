package diagfmt

import (
	"path/filepath"

	"g5/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto prints the path as it was given.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	// BaseDir anchors PathModeRelative.
	BaseDir  string
	Color    bool
	PathMode PathMode
	// Context is the number of source lines shown above the error line.
	Context   uint8
	ShowNotes bool
	// HideSource suppresses the source excerpt and caret.
	HideSource bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	BaseDir          string
	Max              int // truncates the output, not the bag
	PathMode         PathMode
	IncludePositions bool
	IncludeNotes     bool
}

func formatPath(path string, mode PathMode, base string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		return source.RelativePath(path, base)
	case PathModeBasename:
		return source.BaseName(path)
	}
	return path
}

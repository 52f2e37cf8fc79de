// Package vfs synthesizes a virtual file system from extracted code blocks
// and groups it for display.
package vfs

import "strings"

// Per-file status while the owning session is live.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// RootFileName is the designated entry-point file. The sandbox renderer
// expects an entry point at exactly this path.
const RootFileName = "App.jsx"

// RootDir is the grouping key for files whose path has no directory part.
const RootDir = "root"

// File is one synthesized virtual file. Files are replaced wholesale on each
// synthesis pass, never mutated in place by anyone but the synthesizer.
type File struct {
	Path        string // forward-slash separated, unique within a snapshot
	Content     string // may be partial while the session streams
	Status      string
	LanguageTag string // fence tag the content arrived under
}

// Dir returns the file's grouping key: everything before the last slash, or
// RootDir when the path has none.
func (f *File) Dir() string {
	if i := strings.LastIndex(f.Path, "/"); i >= 0 {
		return f.Path[:i]
	}
	return RootDir
}

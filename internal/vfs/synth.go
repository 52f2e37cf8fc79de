package vfs

import (
	"fmt"

	"github.com/Tarun-Mittal-cell/genfs/internal/fence"
	"github.com/Tarun-Mittal-cell/genfs/internal/lang"
	"github.com/Tarun-Mittal-cell/genfs/internal/naming"
)

// Allocator pins generated fallback names to block ordinals so a file the
// user is viewing is never silently renamed between synthesis passes.
// One allocator lives for the duration of a session.
type Allocator struct {
	names map[int]string
}

// NewAllocator returns an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{names: make(map[int]string)}
}

// NameFor returns the fallback name for the block at the given 1-based
// document ordinal, assigning "Generated<N>.<ext>" on first sight and
// returning the same name on every later pass.
func (a *Allocator) NameFor(ordinal int, ext string) string {
	if name, ok := a.names[ordinal]; ok {
		return name
	}
	name := fmt.Sprintf("Generated%d.%s", ordinal, ext)
	a.names[ordinal] = name
	return name
}

// Synthesize converts extracted blocks into a fresh file set. The result
// replaces the previous set wholesale, which keeps every snapshot
// self-consistent with the buffer it was derived from.
//
// Each block gets a path from the naming heuristic, or the allocator's
// pinned fallback when the heuristic finds nothing or the derived name
// collides with an earlier block. If no block produced the root entry file,
// a placeholder is appended carrying the raw buffer so the renderer always
// has something live to show before any fence closes.
func Synthesize(blocks []fence.Block, rawBuffer string, alloc *Allocator) []*File {
	files := make([]*File, 0, len(blocks)+1)
	seen := make(map[string]bool, len(blocks)+1)

	for i, b := range blocks {
		ext := lang.ExtensionFor(b.LanguageTag)
		path, ok := naming.Derive(b.Content)
		if !ok || seen[path] {
			path = alloc.NameFor(i+1, ext)
		}
		if seen[path] {
			// Two blocks pinned to the same fallback cannot happen for
			// distinct ordinals; skip rather than emit a duplicate path.
			continue
		}
		seen[path] = true
		files = append(files, &File{
			Path:        path,
			Content:     b.Content,
			Status:      StatusProcessing,
			LanguageTag: b.LanguageTag,
		})
	}

	if !seen[RootFileName] {
		files = append(files, &File{
			Path:        RootFileName,
			Content:     rawBuffer,
			Status:      StatusProcessing,
			LanguageTag: "jsx",
		})
	}

	return files
}

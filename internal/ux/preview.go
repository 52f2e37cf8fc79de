package ux

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/Tarun-Mittal-cell/genfs/internal/lang"
	"github.com/Tarun-Mittal-cell/genfs/internal/vfs"
)

// Preview prints a file's content with syntax highlighting. The highlighter
// id comes from the registry; chroma falls back to plain text for ids it
// does not know, so this cannot fail on unrecognized content.
func Preview(w io.Writer, f *vfs.File) {
	fmt.Fprintf(w, "\n%s── %s ──%s\n", Bold, f.Path, Reset)
	id := lang.LanguageFor(extension(f.Path))
	if err := quick.Highlight(w, f.Content, id, "terminal256", "monokai"); err != nil {
		// Highlighting is cosmetic; fall back to the raw content.
		fmt.Fprint(w, f.Content)
	}
	if !strings.HasSuffix(f.Content, "\n") {
		fmt.Fprintln(w)
	}
}

func extension(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return ""
}

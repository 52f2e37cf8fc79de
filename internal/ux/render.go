// Package ux renders session snapshots as an ANSI file tree.
package ux

import (
	"fmt"
	"io"
	"time"

	"github.com/Tarun-Mittal-cell/genfs/internal/session"
	"github.com/Tarun-Mittal-cell/genfs/internal/vfs"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// ClearScreen resets the terminal before a live repaint.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// RenderTree prints the snapshot's directory-grouped file tree.
func RenderTree(w io.Writer, snap session.Snapshot) {
	fmt.Fprintf(w, "%sSession:%s %s  %s\n", Bold, Reset, snap.SessionID, statusBadge(snap.Status))

	for _, dir := range snap.DirsOrdered {
		fmt.Fprintf(w, "%s%s/%s\n", Cyan, dir, Reset)
		for _, f := range snap.ByDir[dir] {
			marker := "  "
			if f.Path == snap.SelectedPath {
				marker = fmt.Sprintf("%s→%s ", Yellow, Reset)
			}
			fmt.Fprintf(w, "  %s%-28s %s\n", marker, f.Path, fileBadge(f))
		}
	}

	st := snap.Stats
	fmt.Fprintf(w, "%s%d chunk(s), %d byte(s), %d block(s)%s\n", Dim, st.Chunks, st.Bytes, st.Blocks, Reset)
}

// RenderSummary prints the one-line terminal outcome of a session.
func RenderSummary(w io.Writer, snap session.Snapshot) {
	switch snap.Status {
	case session.StatusCompleted:
		fmt.Fprintf(w, "\n%s✓ %d file(s) in %s%s\n",
			Green, len(snap.Files), formatDuration(snap.Stats.Duration), Reset)
	case session.StatusErrored:
		fmt.Fprintf(w, "\n%s✗ generation failed%s\n", Red, Reset)
	}
}

func statusBadge(status string) string {
	switch status {
	case session.StatusStreaming:
		return Yellow + "streaming" + Reset
	case session.StatusCompleted:
		return Green + "completed" + Reset
	case session.StatusErrored:
		return Red + "errored" + Reset
	default:
		return Dim + status + Reset
	}
}

func fileBadge(f *vfs.File) string {
	if f.Status == vfs.StatusCompleted {
		return Green + "done" + Reset
	}
	return Yellow + "…" + Reset
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}

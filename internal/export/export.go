// Package export persists a terminal session snapshot to disk. The
// streaming pipeline never touches the file system; export runs once, with
// the final result, after a session completes.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Tarun-Mittal-cell/genfs/internal/lang"
	"github.com/Tarun-Mittal-cell/genfs/internal/session"
)

// ManifestName is the metadata file written alongside the exported tree.
const ManifestName = "manifest.json"

// Manifest records what a session produced.
type Manifest struct {
	SessionID string         `json:"session_id"`
	Status    string         `json:"status"`
	WrittenAt time.Time      `json:"written_at"`
	Chunks    int            `json:"chunks"`
	Bytes     int            `json:"bytes"`
	Duration  string         `json:"duration,omitempty"`
	Files     []ManifestFile `json:"files"`
}

// ManifestFile is one entry in the manifest.
type ManifestFile struct {
	Path     string `json:"path"`
	Language string `json:"language"`
	Status   string `json:"status"`
	Size     int    `json:"size"`
}

// Write persists every file in the snapshot under dir, plus a manifest.
// Paths in the snapshot are forward-slash separated and are rejected if
// they would escape dir.
func Write(dir string, snap session.Snapshot) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	manifest := Manifest{
		SessionID: snap.SessionID,
		Status:    snap.Status,
		WrittenAt: time.Now(),
		Chunks:    snap.Stats.Chunks,
		Bytes:     snap.Stats.Bytes,
	}
	if snap.Stats.Duration > 0 {
		manifest.Duration = snap.Stats.Duration.Round(time.Millisecond).String()
	}

	for _, f := range snap.Files {
		if err := checkPath(f.Path); err != nil {
			return fmt.Errorf("file %q: %w", f.Path, err)
		}
		target := filepath.Join(dir, filepath.FromSlash(f.Path))
		if parent := filepath.Dir(target); parent != dir {
			if err := os.MkdirAll(parent, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", parent, err)
			}
		}
		if err := writeFileAtomic(target, []byte(f.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", f.Path, err)
		}
		manifest.Files = append(manifest.Files, ManifestFile{
			Path:     f.Path,
			Language: lang.LanguageFor(extension(f.Path)),
			Status:   f.Status,
			Size:     len(f.Content),
		})
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(dir, ManifestName), data, 0644)
}

// checkPath rejects absolute paths and parent traversal.
func checkPath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	if strings.HasPrefix(path, "/") {
		return fmt.Errorf("absolute path not allowed")
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return fmt.Errorf("parent traversal not allowed")
		}
	}
	return nil
}

func extension(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return ""
}

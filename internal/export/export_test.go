package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tarun-Mittal-cell/genfs/internal/session"
	"github.com/Tarun-Mittal-cell/genfs/internal/vfs"
)

func sampleSnapshot() session.Snapshot {
	return session.Snapshot{
		SessionID: "abc-123",
		Status:    session.StatusCompleted,
		Files: []*vfs.File{
			{Path: "App.jsx", Content: "function App() {}", Status: vfs.StatusCompleted, LanguageTag: "jsx"},
			{Path: "styles/app.css", Content: ".app{}", Status: vfs.StatusCompleted, LanguageTag: "css"},
		},
	}
}

func TestWrite_FilesAndManifest(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir, sampleSnapshot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "App.jsx"))
	if err != nil {
		t.Fatalf("App.jsx not written: %v", err)
	}
	if string(data) != "function App() {}" {
		t.Fatalf("unexpected App.jsx content: %q", data)
	}

	if _, err := os.Stat(filepath.Join(dir, "styles", "app.css")); err != nil {
		t.Fatalf("nested file not written: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("manifest not valid json: %v", err)
	}
	if m.SessionID != "abc-123" {
		t.Fatalf("expected session id abc-123, got %q", m.SessionID)
	}
	if len(m.Files) != 2 {
		t.Fatalf("expected 2 manifest entries, got %d", len(m.Files))
	}
	if m.Files[0].Language != "jsx" {
		t.Fatalf("expected jsx language for App.jsx, got %q", m.Files[0].Language)
	}
	if m.Files[1].Language != "css" {
		t.Fatalf("expected css language, got %q", m.Files[1].Language)
	}
}

func TestWrite_RejectsTraversal(t *testing.T) {
	snap := session.Snapshot{
		Files: []*vfs.File{{Path: "../escape.js", Content: "x"}},
	}
	if err := Write(t.TempDir(), snap); err == nil {
		t.Fatal("expected error for parent traversal")
	}
}

func TestWrite_RejectsAbsolutePath(t *testing.T) {
	snap := session.Snapshot{
		Files: []*vfs.File{{Path: "/etc/passwd", Content: "x"}},
	}
	if err := Write(t.TempDir(), snap); err == nil {
		t.Fatal("expected error for absolute path")
	}
}

func TestWrite_NoLeftoverTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Write(dir, sampleSnapshot()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if filepath.Ext(path) == ".tmp" {
			t.Fatalf("leftover temp file: %s", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

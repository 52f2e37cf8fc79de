package session

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Tarun-Mittal-cell/genfs/internal/vfs"
)

// scriptedSource replays fixed chunks, then ends with err (io.EOF when nil).
type scriptedSource struct {
	chunks []string
	err    error
	i      int
}

func (s *scriptedSource) Next(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.i < len(s.chunks) {
		c := s.chunks[s.i]
		s.i++
		return []byte(c), nil
	}
	if s.err != nil {
		return nil, s.err
	}
	return nil, io.EOF
}

func findFile(snap Snapshot, path string) *vfs.File {
	for _, f := range snap.Files {
		if f.Path == path {
			return f
		}
	}
	return nil
}

func TestRun_EndToEnd(t *testing.T) {
	src := &scriptedSource{chunks: []string{
		"Here is your app:\n```jsx\nfunction Home() {",
		" return <div>Hi</div>; }\n```\n```css\n.app{color:red}\n```",
	}}

	var published []Snapshot
	sess := New(func(snap Snapshot) { published = append(published, snap) }, nil)

	snap, err := sess.Run(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q", snap.Status)
	}

	home := findFile(snap, "Home.jsx")
	if home == nil {
		t.Fatalf("missing Home.jsx; files: %v", paths(snap))
	}
	if home.Content != "function Home() { return <div>Hi</div>; }" {
		t.Fatalf("unexpected Home.jsx content: %q", home.Content)
	}
	css := findFile(snap, "Generated2.css")
	if css == nil {
		t.Fatalf("missing Generated2.css; files: %v", paths(snap))
	}
	if css.Content != ".app{color:red}" {
		t.Fatalf("unexpected css content: %q", css.Content)
	}
	// No block produced App.jsx, so the synthetic root must be present.
	if findFile(snap, vfs.RootFileName) == nil {
		t.Fatalf("missing synthetic %s; files: %v", vfs.RootFileName, paths(snap))
	}
	for _, f := range snap.Files {
		if f.Status != vfs.StatusCompleted {
			t.Fatalf("file %s not completed at end of stream", f.Path)
		}
	}

	// Initial snapshot plus one per chunk plus the terminal one.
	if len(published) != 4 {
		t.Fatalf("expected 4 published snapshots, got %d", len(published))
	}
}

func TestRun_TransportError_SingleErrorFile(t *testing.T) {
	src := &scriptedSource{
		chunks: []string{"```jsx\nfunction Home() {}\n```\n"},
		err:    errors.New("connection reset"),
	}
	sess := New(nil, nil)

	snap, err := sess.Run(context.Background(), src)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if snap.Status != StatusErrored {
		t.Fatalf("expected errored, got %q", snap.Status)
	}
	if len(snap.Files) != 1 {
		t.Fatalf("expected exactly 1 file after error, got %d", len(snap.Files))
	}
	f := snap.Files[0]
	if f.Path != ErrorFileName {
		t.Fatalf("expected %s, got %q", ErrorFileName, f.Path)
	}
	if f.Content != "Error: connection reset" {
		t.Fatalf("unexpected error content: %q", f.Content)
	}
	if snap.SelectedPath != ErrorFileName {
		t.Fatalf("expected error file selected, got %q", snap.SelectedPath)
	}
}

func TestRun_EmptyGeneration(t *testing.T) {
	src := &scriptedSource{chunks: []string{"no fences here, sorry"}}
	sess := New(nil, nil)

	snap, err := sess.Run(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q", snap.Status)
	}
	if len(snap.Files) != 1 || snap.Files[0].Path != vfs.RootFileName {
		t.Fatalf("expected only the root placeholder, got %v", paths(snap))
	}
	if snap.Files[0].Status != vfs.StatusCompleted {
		t.Fatal("expected the placeholder to be marked completed")
	}
}

func TestRun_SelectionFollowsFirstFile(t *testing.T) {
	src := &scriptedSource{chunks: []string{
		"```jsx\nfunction App() { return null; }\n```\n",
	}}

	var selections []string
	sess := New(func(snap Snapshot) { selections = append(selections, snap.SelectedPath) }, nil)

	snap, err := sess.Run(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The placeholder is selected first; once the real App.jsx replaces it
	// the selection sticks because the path is unchanged.
	if selections[0] != vfs.RootFileName {
		t.Fatalf("expected initial selection %s, got %q", vfs.RootFileName, selections[0])
	}
	if snap.SelectedPath != vfs.RootFileName {
		t.Fatalf("expected final selection %s, got %q", vfs.RootFileName, snap.SelectedPath)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sess := New(func(Snapshot) { t.Fatal("cancelled session must not publish") }, nil)

	_, err := sess.Run(ctx, &scriptedSource{chunks: []string{"x"}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_StatsRecorded(t *testing.T) {
	src := &scriptedSource{chunks: []string{"abc", "def"}}
	sess := New(nil, nil)

	snap, err := sess.Run(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Stats.Chunks != 2 {
		t.Fatalf("expected 2 chunks, got %d", snap.Stats.Chunks)
	}
	if snap.Stats.Bytes != 6 {
		t.Fatalf("expected 6 bytes, got %d", snap.Stats.Bytes)
	}
}

func TestManager_StartCancelsPrior(t *testing.T) {
	m := NewManager(nil)

	// A source that never ends until cancelled.
	blocking := &blockingSource{release: make(chan struct{})}
	_, done1 := m.Start(context.Background(), blocking, nil)

	// Starting a second session must cancel the first.
	_, done2 := m.Start(context.Background(), &scriptedSource{}, nil)

	select {
	case res := <-done1:
		if !errors.Is(res.Err, context.Canceled) {
			t.Fatalf("expected first session cancelled, got %v", res.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first session was not cancelled")
	}

	res := <-done2
	if res.Err != nil {
		t.Fatalf("second session failed: %v", res.Err)
	}
	if res.Snapshot.Status != StatusCompleted {
		t.Fatalf("expected second session completed, got %q", res.Snapshot.Status)
	}
}

// blockingSource blocks in Next until its context is cancelled.
type blockingSource struct {
	release chan struct{}
}

func (b *blockingSource) Next(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.release:
		return nil, io.EOF
	}
}

func paths(snap Snapshot) []string {
	var out []string
	for _, f := range snap.Files {
		out = append(out, f.Path)
	}
	return out
}

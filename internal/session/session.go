// Package session owns the per-request streaming state: the growing text
// buffer, the synthesized file set, the selection, and the status machine.
package session

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tarun-Mittal-cell/genfs/internal/fence"
	"github.com/Tarun-Mittal-cell/genfs/internal/source"
	"github.com/Tarun-Mittal-cell/genfs/internal/vfs"
)

// Session status values. A session moves idle → streaming → completed or
// errored; both end states are terminal.
const (
	StatusIdle      = "idle"
	StatusStreaming = "streaming"
	StatusCompleted = "completed"
	StatusErrored   = "errored"
)

// ErrorFileName is the synthetic file that replaces the set on transport
// failure.
const ErrorFileName = "error.txt"

// Snapshot is the complete view of a session published to the renderer
// after each processing pass. The slices and map are rebuilt per pass and
// never mutated afterwards.
type Snapshot struct {
	SessionID    string
	Status       string
	Files        []*vfs.File
	DirsOrdered  []string
	ByDir        map[string][]*vfs.File
	SelectedPath string
	Stats        Stats
}

// Publisher receives each snapshot. It runs on the session's own goroutine,
// between chunk reads, so it may touch the snapshot freely but should
// return promptly.
type Publisher func(Snapshot)

// Session holds the mutable state for one generation request. All state is
// owned by the single goroutine running Run; chunk reads are the only
// suspension points, so no locking is needed inside a session.
type Session struct {
	id       string
	buf      strings.Builder
	files    []*vfs.File
	dirs     []string
	byDir    map[string][]*vfs.File
	selected string
	status   string
	alloc    *vfs.Allocator
	stats    Stats
	publish  Publisher
	log      *zap.Logger
}

// New creates an idle session. A nil publisher discards snapshots; a nil
// logger discards logs.
func New(publish Publisher, log *zap.Logger) *Session {
	if publish == nil {
		publish = func(Snapshot) {}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		id:      uuid.NewString(),
		status:  StatusIdle,
		alloc:   vfs.NewAllocator(),
		publish: publish,
		log:     log,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Status returns the current session status.
func (s *Session) Status() string { return s.status }

// Run consumes src until clean end of stream, transport error, or context
// cancellation, publishing a snapshot after every chunk. It returns the
// terminal snapshot. On clean end every file is marked completed; on
// transport error the file set is replaced by a single error file and the
// error is returned. Cancellation publishes nothing further and returns
// ctx's error. Run may be called once per session.
func (s *Session) Run(ctx context.Context, src source.Source) (Snapshot, error) {
	s.start(ctx)

	for {
		chunk, err := src.Next(ctx)
		if len(chunk) > 0 {
			s.ingest(string(chunk))
			if ctx.Err() != nil {
				return s.snapshot(), ctx.Err()
			}
			s.publish(s.snapshot())
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s.complete(ctx), nil
			}
			if ctx.Err() != nil {
				return s.snapshot(), ctx.Err()
			}
			return s.fail(err), err
		}
	}
}

// start resets all state and publishes the initial snapshot: an empty
// buffer and the root placeholder, selected.
func (s *Session) start(ctx context.Context) {
	s.buf.Reset()
	s.alloc = vfs.NewAllocator()
	s.stats = Stats{}
	s.stats.begin()
	s.status = StatusStreaming
	s.resynthesize()
	s.log.Debug("session started", zap.String("session_id", s.id))
	if ctx.Err() == nil {
		s.publish(s.snapshot())
	}
}

// ingest appends a chunk and rebuilds files, grouping, and selection.
func (s *Session) ingest(chunk string) {
	s.buf.WriteString(chunk)
	s.stats.addChunk(len(chunk))
	s.resynthesize()
}

// resynthesize rederives the whole file set from the current buffer. The
// set is replaced wholesale so it always agrees with the buffer.
func (s *Session) resynthesize() {
	blocks := fence.Extract(s.buf.String())
	s.stats.Blocks = len(blocks)
	s.files = vfs.Synthesize(blocks, s.buf.String(), s.alloc)
	s.dirs, s.byDir = vfs.Group(s.files)
	s.fixSelection()
}

// fixSelection keeps the selection valid: if the selected path vanished
// from the new set (or nothing is selected), select the first file in
// directory order.
func (s *Session) fixSelection() {
	for _, f := range s.files {
		if f.Path == s.selected {
			return
		}
	}
	s.selected = ""
	for _, d := range s.dirs {
		if group := s.byDir[d]; len(group) > 0 {
			s.selected = group[0].Path
			return
		}
	}
}

// complete marks every file completed and publishes the terminal snapshot.
func (s *Session) complete(ctx context.Context) Snapshot {
	for _, f := range s.files {
		f.Status = vfs.StatusCompleted
	}
	s.status = StatusCompleted
	s.stats.end()
	s.log.Debug("session completed",
		zap.String("session_id", s.id),
		zap.Int("chunks", s.stats.Chunks),
		zap.Int("files", len(s.files)))
	snap := s.snapshot()
	if ctx.Err() == nil {
		s.publish(snap)
	}
	return snap
}

// fail discards the file set, synthesizes the single error file, and
// publishes the terminal snapshot. Transport failures are terminal: retry
// belongs to the caller starting a new session.
func (s *Session) fail(err error) Snapshot {
	s.files = []*vfs.File{{
		Path:        ErrorFileName,
		Content:     "Error: " + err.Error(),
		Status:      vfs.StatusCompleted,
		LanguageTag: "",
	}}
	s.dirs, s.byDir = vfs.Group(s.files)
	s.selected = ErrorFileName
	s.status = StatusErrored
	s.stats.end()
	s.log.Debug("session errored", zap.String("session_id", s.id), zap.Error(err))
	snap := s.snapshot()
	s.publish(snap)
	return snap
}

// snapshot copies the current state into an immutable view.
func (s *Session) snapshot() Snapshot {
	files := make([]*vfs.File, len(s.files))
	copy(files, s.files)
	dirs := make([]string, len(s.dirs))
	copy(dirs, s.dirs)
	byDir := make(map[string][]*vfs.File, len(s.byDir))
	for d, group := range s.byDir {
		g := make([]*vfs.File, len(group))
		copy(g, group)
		byDir[d] = g
	}
	return Snapshot{
		SessionID:    s.id,
		Status:       s.status,
		Files:        files,
		DirsOrdered:  dirs,
		ByDir:        byDir,
		SelectedPath: s.selected,
		Stats:        s.stats,
	}
}

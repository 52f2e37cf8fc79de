package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Tarun-Mittal-cell/genfs/internal/source"
)

// Result is the terminal outcome of a session's read loop.
type Result struct {
	Snapshot Snapshot
	Err      error
}

// Manager serializes sessions for one logical UI slot. Starting a new
// session cancels the previous reader loop before the new one begins, so an
// abandoned stream can never publish over its successor.
type Manager struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	log    *zap.Logger
}

// NewManager returns a manager. A nil logger discards logs.
func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{log: log}
}

// Start cancels any running session, then launches a new one reading from
// src on its own goroutine. The returned channel delivers the terminal
// result exactly once.
func (m *Manager) Start(ctx context.Context, src source.Source, publish Publisher) (*Session, <-chan Result) {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	sess := New(publish, m.log)
	done := make(chan Result, 1)
	go func() {
		snap, err := sess.Run(ctx, src)
		done <- Result{Snapshot: snap, Err: err}
	}()
	return sess, done
}

// Stop cancels the running session, if any.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

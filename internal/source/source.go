// Package source provides pull-based chunk sources for generation streams.
package source

import (
	"context"
	"io"
)

// DefaultChunkSize is the read size used when a caller passes zero.
const DefaultChunkSize = 4096

// Source delivers generation text one chunk at a time. Next returns io.EOF
// when the transport closes cleanly; any other error is terminal for the
// consuming session. Implementations are pull-based: the caller owns the
// pacing, so backpressure needs no extra machinery.
type Source interface {
	Next(ctx context.Context) ([]byte, error)
}

// ReaderSource adapts any io.Reader into a Source.
type ReaderSource struct {
	r   io.Reader
	buf []byte
}

// NewReaderSource wraps r, reading up to chunkSize bytes per Next call.
func NewReaderSource(r io.Reader, chunkSize int) *ReaderSource {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ReaderSource{r: r, buf: make([]byte, chunkSize)}
}

// Next reads the next chunk. The returned slice is a copy and remains valid
// after later calls.
func (s *ReaderSource) Next(ctx context.Context) ([]byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := s.r.Read(s.buf)
		if n > 0 {
			out := make([]byte, n)
			copy(out, s.buf[:n])
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		// Read returned (0, nil); try again.
	}
}

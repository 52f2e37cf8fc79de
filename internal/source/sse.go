package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// sseEvent is the provider event envelope carried on SSE data lines.
type sseEvent struct {
	Type  string    `json:"type"`
	Delta *sseDelta `json:"delta"`
}

// sseDelta holds the payload of content_block_delta events.
type sseDelta struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SSESource reads a text/event-stream feed of code-generation events and
// yields only the text deltas. Everything else on the wire — comments,
// event: lines, message boundaries, non-text deltas — is framing and is
// skipped. Malformed data lines are logged and skipped rather than
// surfaced; only the transport itself can fail the stream.
type SSESource struct {
	scanner *bufio.Scanner
	log     *zap.Logger
}

// NewSSESource wraps r. A nil logger discards debug output.
func NewSSESource(r io.Reader, log *zap.Logger) *SSESource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256*1024), 1024*1024)
	if log == nil {
		log = zap.NewNop()
	}
	return &SSESource{scanner: scanner, log: log}
}

// Next returns the next non-empty text delta, io.EOF at end of stream, or
// the transport error.
func (s *SSESource) Next(ctx context.Context) ([]byte, error) {
	for s.scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			// event:/id:/retry: lines carry no payload we need.
			continue
		}
		data = strings.TrimSpace(data)
		if data == "[DONE]" {
			return nil, io.EOF
		}
		if data == "" {
			continue
		}

		var event sseEvent
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			s.log.Debug("skipping malformed event", zap.Error(err))
			continue
		}
		if event.Type == "content_block_delta" && event.Delta != nil &&
			event.Delta.Type == "text_delta" && event.Delta.Text != "" {
			return []byte(event.Delta.Text), nil
		}
	}

	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading event stream: %w", err)
	}
	return nil, io.EOF
}

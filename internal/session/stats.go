package session

import "time"

// Stats tracks ingestion counters for one session.
type Stats struct {
	Chunks   int           // chunks received from the transport
	Bytes    int           // total bytes appended to the buffer
	Blocks   int           // complete fenced blocks in the last pass
	Started  time.Time     // when the session began streaming
	Duration time.Duration // wall time, set when the session reaches an end state
}

func (st *Stats) begin() {
	st.Started = time.Now()
}

func (st *Stats) addChunk(n int) {
	st.Chunks++
	st.Bytes += n
}

func (st *Stats) end() {
	if !st.Started.IsZero() {
		st.Duration = time.Since(st.Started)
	}
}

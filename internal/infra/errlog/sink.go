// Package errlog keeps a process-wide bounded record of recent request
// failures for diagnostics. It is a ring: appends are cheap, the oldest
// entries are evicted past capacity, and reads return a snapshot ordered
// most recent first.
package errlog

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultCapacity bounds the number of retained entries.
const DefaultCapacity = 100

// Entry is one recorded failure.
type Entry struct {
	Timestamp       time.Time `json:"timestamp"`
	SourceOperation string    `json:"sourceOperation"`
	Message         string    `json:"message"`
	StatusCode      int       `json:"statusCode"`
}

// Sink is a fixed-capacity failure ring. The zero value is not usable;
// construct with New.
type Sink struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	logger   *slog.Logger
}

// New creates a sink with the given capacity; values < 1 fall back to
// DefaultCapacity. Every recorded failure is also forwarded to the logger.
func New(capacity int, logger *slog.Logger) *Sink {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Sink{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
		logger:   logger,
	}
}

// Record appends a failure, evicting the oldest entries once the ring is
// full. The append and the size check happen under one lock, so concurrent
// writers cannot grow the ring past capacity.
func (s *Sink) Record(operation, message string, statusCode int) {
	entry := Entry{
		Timestamp:       time.Now().UTC(),
		SourceOperation: operation,
		Message:         message,
		StatusCode:      statusCode,
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	if overflow := len(s.entries) - s.capacity; overflow > 0 {
		s.entries = append(s.entries[:0], s.entries[overflow:]...)
	}
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Error("Request failed",
			slog.String("operation", operation),
			slog.String("message", message),
			slog.Int("status", statusCode),
		)
	}
}

// Snapshot returns the retained entries, most recent first. The result is a
// copy; reading never mutates the ring.
func (s *Sink) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	for i, entry := range s.entries {
		out[len(s.entries)-1-i] = entry
	}

	return out
}

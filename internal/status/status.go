// Package status carries human-readable progress from the orchestrator to
// whatever renders it. Publishers never block: a slow reader sees the most
// recent events, not a stalled run.
package status

import (
	"sync"
	"sync/atomic"
	"time"
)

// Level classifies an Event.
type Level int

// Event levels.
const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Event is one status update.
type Event struct {
	Time    time.Time
	State   string
	Level   Level
	Message string
}

// Sink receives events.
type Sink interface {
	Publish(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Publish calls f.
func (f SinkFunc) Publish(e Event) { f(e) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Info builds an informational event.
func Info(message string) Event { return newEvent(LevelInfo, message) }

// Warn builds a warning event.
func Warn(message string) Event { return newEvent(LevelWarn, message) }

// Error builds an error event.
func Error(message string) Event { return newEvent(LevelError, message) }

func newEvent(level Level, message string) Event {
	return Event{Time: time.Now(), Level: level, Message: message}
}

// Ensure returns sink, or Discard when sink is nil.
func Ensure(sink Sink) Sink {
	if sink == nil {
		return Discard
	}
	return sink
}

// Fanout publishes each event to every sink in order.
type Fanout []Sink

// Publish forwards e to each sink.
func (f Fanout) Publish(e Event) {
	for _, s := range f {
		if s != nil {
			s.Publish(e)
		}
	}
}

// Channel buffers events for a single reader. When the buffer is full the
// oldest event is dropped to make room.
type Channel struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
}

// NewChannel returns a Channel buffering up to size events.
func NewChannel(size int) *Channel {
	if size < 1 {
		size = 1
	}
	return &Channel{ch: make(chan Event, size)}
}

// Publish enqueues e without blocking. Events after Close are dropped.
func (c *Channel) Publish(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	for {
		select {
		case c.ch <- e:
			return
		default:
		}
		select {
		case <-c.ch:
		default:
		}
	}
}

// Events returns the receive side. It is closed by Close.
func (c *Channel) Events() <-chan Event {
	return c.ch
}

// Close ends the stream. It is safe to call more than once.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.ch)
}

// Board keeps the latest status line and the latest error line for pollers.
// Each value is replaced as a whole string, so a reader sees either the old
// or the new value.
type Board struct {
	status atomic.Pointer[string]
	err    atomic.Pointer[string]
}

// Publish overwrites the status line; error events also overwrite the error line.
func (b *Board) Publish(e Event) {
	message := e.Message
	b.status.Store(&message)
	if e.Level == LevelError {
		b.err.Store(&message)
	}
}

// Status returns the most recent status line.
func (b *Board) Status() string {
	if p := b.status.Load(); p != nil {
		return *p
	}
	return ""
}

// Err returns the most recent error line.
func (b *Board) Err() string {
	if p := b.err.Load(); p != nil {
		return *p
	}
	return ""
}

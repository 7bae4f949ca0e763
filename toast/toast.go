// Package toast queues transient user notifications. UI surfaces subscribe
// to the queue and render whatever is in it; entries dismiss themselves after
// their duration unless removed first.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// DefaultDuration is how long a toast stays up when the caller does not say.
const DefaultDuration = 5 * time.Second

// Toast is one queued notification.
type Toast struct {
	ID       string
	Level    Level
	Message  string
	Duration time.Duration
}

// Store holds the active notifications and notifies subscribers on change.
type Store struct {
	mu      sync.Mutex
	toasts  []Toast
	timers  map[string]*time.Timer
	subs    map[int]func([]Toast)
	nextSub int
}

// NewStore creates an empty notification queue.
func NewStore() *Store {
	return &Store{
		timers: make(map[string]*time.Timer),
		subs:   make(map[int]func([]Toast)),
	}
}

// Success enqueues a success toast with the default duration.
func (s *Store) Success(message string) string { return s.Push(LevelSuccess, message, DefaultDuration) }

// Error enqueues an error toast with the default duration.
func (s *Store) Error(message string) string { return s.Push(LevelError, message, DefaultDuration) }

// Info enqueues an info toast with the default duration.
func (s *Store) Info(message string) string { return s.Push(LevelInfo, message, DefaultDuration) }

// Warning enqueues a warning toast with the default duration.
func (s *Store) Warning(message string) string { return s.Push(LevelWarning, message, DefaultDuration) }

// Push enqueues a toast and returns its ID. A positive duration schedules
// automatic dismissal; zero or negative keeps it up until removed.
func (s *Store) Push(level Level, message string, duration time.Duration) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.toasts = append(s.toasts, Toast{ID: id, Level: level, Message: message, Duration: duration})
	if duration > 0 {
		s.timers[id] = time.AfterFunc(duration, func() { s.Remove(id) })
	}
	snapshot := s.snapshotLocked()
	subs := s.subsLocked()
	s.mu.Unlock()

	notify(subs, snapshot)
	return id
}

// Remove dismisses the toast with the given ID. Unknown IDs are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
	snapshot := s.snapshotLocked()
	subs := s.subsLocked()
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Clear dismisses everything.
func (s *Store) Clear() {
	s.mu.Lock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = nil
	subs := s.subsLocked()
	s.mu.Unlock()

	notify(subs, nil)
}

// Toasts returns a snapshot of the active notifications.
func (s *Store) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for queue changes and invokes it immediately with
// the current queue. The returned function unsubscribes.
func (s *Store) Subscribe(fn func([]Toast)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	fn(snapshot)

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotLocked() []Toast {
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

func (s *Store) subsLocked() []func([]Toast) {
	fns := make([]func([]Toast), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}

func notify(subs []func([]Toast), snapshot []Toast) {
	for _, fn := range subs {
		fn(snapshot)
	}
}

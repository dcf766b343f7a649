package store

import (
	"encoding/json"

	"go.uber.org/zap"
)

// State holds one JSON-persisted value behind a key. The in-memory value is
// the source of truth for the running session; the KV is written through on
// every Set once hydration has completed. Writes never happen before
// Hydrate, so an initial placeholder can not clobber a previously persisted
// value.
type State[T any] struct {
	kv       KV
	key      string
	log      *zap.SugaredLogger
	value    T
	hydrated bool
}

// NewState wraps key in kv with initial as the pre-hydration value.
func NewState[T any](kv KV, key string, initial T, log *zap.SugaredLogger) *State[T] {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &State[T]{kv: kv, key: key, log: log, value: initial}
}

// Hydrate performs the one-time initial load. A stored value replaces the
// initial one; a missing key, read failure or undecodable blob leaves the
// initial value in place. Either way the state is hydrated afterwards and
// repeated calls do nothing.
func (s *State[T]) Hydrate() {
	if s.hydrated {
		return
	}
	s.hydrated = true

	if !s.kv.Has(s.key) {
		return
	}
	raw, err := s.kv.Get(s.key)
	if err != nil {
		s.log.Warnw("reading persisted state failed, continuing in memory", "key", s.key, "error", err)
		return
	}
	var saved T
	if err := json.Unmarshal(raw, &saved); err != nil {
		s.log.Warnw("persisted state undecodable, continuing with initial value", "key", s.key, "error", err)
		return
	}
	s.value = saved
}

// Hydrated reports whether the initial load has completed.
func (s *State[T]) Hydrated() bool {
	return s.hydrated
}

// Get returns the current in-memory value.
func (s *State[T]) Get() T {
	return s.value
}

// Set replaces the value wholesale and, after hydration, writes it through.
// Write failures are logged and swallowed; the session keeps running on the
// in-memory value.
func (s *State[T]) Set(value T) {
	s.value = value
	if !s.hydrated {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warnw("encoding state failed, change not persisted", "key", s.key, "error", err)
		return
	}
	if err := s.kv.Set(s.key, raw); err != nil {
		s.log.Warnw("persisting state failed, change kept in memory", "key", s.key, "error", err)
	}
}

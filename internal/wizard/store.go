package wizard

import (
	"encoding/json"
	"sync"

	"github.com/wicaksn/sertika/internal/dcc"
)

// LoggedAction is one applied action as recorded in the store's log.
// Seq is a logical clock; ordering never uses wall time.
type LoggedAction struct {
	Seq     int64           `json:"seq"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// Store holds the canonical draft document and its action log.
// Safe for concurrent use; all writes are serialized.
type Store struct {
	mu    sync.Mutex
	doc   *dcc.Document
	seq   int64
	dirty bool
	log   []LoggedAction
}

// NewStore returns an empty store. The first dispatched action must be
// Init.
func NewStore() *Store {
	return &Store{}
}

// Dispatch applies an action to the draft. The action is applied to a
// clone of the current document and the clone swapped in only on
// success, so a failing action leaves the draft untouched. What gets
// applied is the action's log encoding decoded back, never the value
// the caller passed: the draft shares no slices or maps with it, and
// the live document is exactly what replaying the log produces.
func (s *Store) Dispatch(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kind, payload, err := EncodeAction(a)
	if err != nil {
		return err
	}
	logged, err := DecodeAction(kind, payload)
	if err != nil {
		return err
	}

	input := s.doc
	if input != nil {
		clone, err := input.Clone()
		if err != nil {
			return err
		}
		input = clone
	}

	next, err := logged.Apply(input)
	if err != nil {
		return err
	}

	s.seq++
	s.doc = next
	s.dirty = true
	s.log = append(s.log, LoggedAction{Seq: s.seq, Kind: kind, Payload: payload})
	return nil
}

// Document returns a clone of the current draft, or nil before Init.
func (s *Store) Document() (*dcc.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, nil
	}
	return s.doc.Clone()
}

// Seq returns the logical clock of the last applied action.
func (s *Store) Seq() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// Dirty reports whether actions were applied since the last MarkClean.
// The CLI uses this as its navigation guard: discarding or
// re-initializing a dirty draft prompts for confirmation first.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MarkClean clears the dirty flag, e.g. after the draft log has been
// persisted or the certificate submitted.
func (s *Store) MarkClean() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
}

// Log returns a copy of the applied-action log in seq order.
func (s *Store) Log() []LoggedAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LoggedAction, len(s.log))
	copy(out, s.log)
	return out
}

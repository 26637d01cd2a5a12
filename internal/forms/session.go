package forms

import "trackdesk/internal/catalog"

// PendingDeletion marks a delete request awaiting confirmation.
type PendingDeletion struct {
	Kind        catalog.Kind
	ID          string
	DisplayName string
}

// Session holds the transient per-user state of the console: at most one
// pending deletion per entity kind. Sessions belong to their caller and are
// never shared between users; a hosted deployment creates one per
// connection.
type Session struct {
	pending map[catalog.Kind]PendingDeletion
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{pending: make(map[catalog.Kind]PendingDeletion)}
}

// Pending returns the kind's pending deletion, if any.
func (s *Session) Pending(kind catalog.Kind) (PendingDeletion, bool) {
	p, ok := s.pending[kind]
	return p, ok
}

func (s *Session) setPending(p PendingDeletion) {
	s.pending[p.Kind] = p
}

func (s *Session) clearPending(kind catalog.Kind) {
	delete(s.pending, kind)
}

// ClearAll drops every pending marker, mirroring navigation away from a
// confirmation prompt.
func (s *Session) ClearAll() {
	s.pending = make(map[catalog.Kind]PendingDeletion)
}

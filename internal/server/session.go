package server

import (
	"errors"
	"sync"

	"github.com/ginjaninja78/efd-contribuicoes/internal/record"
)

// ErrNoDocument is returned before a ledger has been uploaded.
var ErrNoDocument = errors.New("no document loaded")

// Session holds the document being edited. Reads share the lock; edits are
// serialized so each one starts from the result of the previous.
type Session struct {
	mu  sync.RWMutex
	doc *record.Document
}

// Load replaces the current document.
func (s *Session) Load(doc *record.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}

// Current returns the current document. Documents are never modified, so
// the caller may keep using it after the lock is released.
func (s *Session) Current() (*record.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return nil, ErrNoDocument
	}
	return s.doc, nil
}

// Update replaces the document with the result of edit. On error the
// document is left as it was.
func (s *Session) Update(edit func(*record.Document) (*record.Document, error)) (*record.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil, ErrNoDocument
	}
	next, err := edit(s.doc)
	if err != nil {
		return nil, err
	}
	s.doc = next
	return next, nil
}

// Package session holds the application-wide state that outlives a single
// screen: one-shot notices and the active connection identity.
package session

import "sync"

// Kind classifies a one-shot notice.
type Kind int

const (
	Info Kind = iota
	Success
	Error
)

// Message is a notice shown once and then discarded.
type Message struct {
	Kind Kind
	Text string
}

// Credential identifies the active backend connection. DSN must be
// display-safe (no password).
type Credential struct {
	Name string
	User string
	DSN  string
}

// Store is safe for concurrent use; commands running off the UI goroutine
// may Flash into it.
type Store struct {
	mu         sync.Mutex
	pending    []Message
	credential *Credential
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Flash queues a notice for the next consumer.
func (s *Store) Flash(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, msg)
}

// ConsumeOneShotMessage pops the oldest queued notice. Each notice is
// returned exactly once.
func (s *Store) ConsumeOneShotMessage() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return Message{}, false
	}
	msg := s.pending[0]
	s.pending = s.pending[1:]
	return msg, true
}

// SetCredential records the active connection.
func (s *Store) SetCredential(c Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = &c
}

// Credential returns the active connection, if any.
func (s *Store) Credential() (Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.credential == nil {
		return Credential{}, false
	}
	return *s.credential, true
}

// ClearCredential forgets the active connection.
func (s *Store) ClearCredential() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = nil
}

package storage

import (
	"sync"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/service"
)

// SessionStorage provides in-memory storage for flashcard sessions by chat ID.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.FlashcardSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*service.FlashcardSession),
	}
}

// GetOrCreate returns the session of chatID, creating it with newSession if absent.
// The boolean reports whether a session was created.
func (s *SessionStorage) GetOrCreate(chatID int64, newSession func() *service.FlashcardSession) (*service.FlashcardSession, bool) {
	s.mu.RLock()
	session, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return session, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[chatID]; ok {
		return session, false
	}

	session = newSession()
	s.sessions[chatID] = session
	return session, true
}

// Get retrieves the session for a given chat ID.
func (s *SessionStorage) Get(chatID int64) (*service.FlashcardSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[chatID]
	return session, ok
}

// Delete closes and removes the session of a given chat ID.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	session, ok := s.sessions[chatID]
	delete(s.sessions, chatID)
	s.mu.Unlock()

	if ok {
		session.Close()
	}
}

// CloseAll closes every stored session and empties the storage.
func (s *SessionStorage) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[int64]*service.FlashcardSession)
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}

// Len returns the number of stored sessions.
func (s *SessionStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

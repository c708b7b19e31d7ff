package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/service"
)

type stubProvider struct{}

func (stubProvider) GetCategories(context.Context) ([]entities.Category, error) {
	return []entities.Category{{ID: 9, Name: "General Knowledge"}}, nil
}

func (stubProvider) GetQuestions(context.Context, int, int) ([]entities.Question, error) {
	return nil, nil
}

func newSession() *service.FlashcardSession {
	return service.NewFlashcardSession(stubProvider{}, zap.NewNop())
}

func TestGetOrCreate(t *testing.T) {
	storage := NewSessionStorage()

	first, created := storage.GetOrCreate(1, newSession)
	require.True(t, created)

	second, created := storage.GetOrCreate(1, newSession)
	assert.False(t, created)
	assert.Same(t, first, second)

	other, created := storage.GetOrCreate(2, newSession)
	assert.True(t, created)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, storage.Len())
}

func TestGetOrCreateConcurrent(t *testing.T) {
	storage := NewSessionStorage()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := storage.GetOrCreate(7, newSession); ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, storage.Len())
}

func TestGet(t *testing.T) {
	storage := NewSessionStorage()

	_, ok := storage.Get(1)
	assert.False(t, ok)

	created, _ := storage.GetOrCreate(1, newSession)
	got, ok := storage.Get(1)
	assert.True(t, ok)
	assert.Same(t, created, got)
}

func TestDeleteClosesSession(t *testing.T) {
	storage := NewSessionStorage()
	session, _ := storage.GetOrCreate(1, newSession)

	storage.Delete(1)

	_, ok := storage.Get(1)
	assert.False(t, ok)
	assert.ErrorIs(t, session.LoadCategories(context.Background()), service.ErrSessionClosed)

	storage.Delete(1)
}

func TestCloseAll(t *testing.T) {
	storage := NewSessionStorage()
	first, _ := storage.GetOrCreate(1, newSession)
	second, _ := storage.GetOrCreate(2, newSession)

	storage.CloseAll()

	assert.Equal(t, 0, storage.Len())
	_, err := first.AddFlashcard("q", "a")
	assert.ErrorIs(t, err, service.ErrSessionClosed)
	_, err = second.AddFlashcard("q", "a")
	assert.ErrorIs(t, err, service.ErrSessionClosed)
}

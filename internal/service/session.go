package service

import (
	"context"
	"math/rand"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/domain/entities"
)

// TriviaProvider fetches categories and raw questions from the external API.
type TriviaProvider interface {
	GetCategories(ctx context.Context) ([]entities.Category, error)
	GetQuestions(ctx context.Context, categoryID, amount int) ([]entities.Question, error)
}

// SessionOption customizes a FlashcardSession.
type SessionOption func(*FlashcardSession)

// WithClock replaces the time source used for flashcard IDs.
func WithClock(now func() time.Time) SessionOption {
	return func(s *FlashcardSession) {
		s.now = now
	}
}

// WithRand replaces the random source used to shuffle options.
func WithRand(rng *rand.Rand) SessionOption {
	return func(s *FlashcardSession) {
		s.rng = rng
	}
}

// FlashcardSession owns the category list and the flashcard list of one user.
// Network calls happen outside the lock; results are applied atomically.
type FlashcardSession struct {
	id       uuid.UUID
	provider TriviaProvider
	logger   *zap.Logger
	now      func() time.Time
	rng      *rand.Rand

	mu         sync.RWMutex
	categories []entities.Category
	flashcards []entities.Flashcard
	seq        uint64
	closed     bool
}

// NewFlashcardSession creates an empty session backed by provider.
func NewFlashcardSession(provider TriviaProvider, logger *zap.Logger, opts ...SessionOption) *FlashcardSession {
	s := &FlashcardSession{
		id:         uuid.New(),
		provider:   provider,
		now:        time.Now,
		categories: []entities.Category{},
		flashcards: []entities.Flashcard{},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = logger.With(zap.String("session_id", s.id.String()))

	return s
}

// ID returns the session identifier used in logs.
func (s *FlashcardSession) ID() uuid.UUID {
	return s.id
}

// LoadCategories replaces the category list with the provider's one.
// On failure the previous list is kept.
func (s *FlashcardSession) LoadCategories(ctx context.Context) error {
	if s.isClosed() {
		return ErrSessionClosed
	}

	categories, err := s.provider.GetCategories(ctx)
	if err != nil {
		return &FetchError{Op: "load categories", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Debug("discarding categories of closed session")
		return ErrSessionClosed
	}

	s.categories = append([]entities.Category{}, categories...)
	s.logger.Debug("categories loaded", zap.Int("count", len(categories)))

	return nil
}

// GenerateFlashcards fetches amount questions of categoryID and replaces the
// flashcard list with them. On failure the previous list is kept.
func (s *FlashcardSession) GenerateFlashcards(ctx context.Context, categoryID, amount int) ([]entities.Flashcard, error) {
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}

	if s.isClosed() {
		return nil, ErrSessionClosed
	}

	questions, err := s.provider.GetQuestions(ctx, categoryID, amount)
	if err != nil {
		return nil, &FetchError{Op: "generate flashcards", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Debug("discarding flashcards of closed session")
		return nil, ErrSessionClosed
	}

	createdAt := s.now()
	batch := make([]entities.Flashcard, 0, len(questions))
	for i, q := range questions {
		batch = append(batch, s.newGeneratedCard(i, createdAt, q))
	}
	s.flashcards = batch

	s.logger.Debug("flashcards generated",
		zap.Int("category_id", categoryID),
		zap.Int("requested", amount),
		zap.Int("received", len(batch)),
	)

	return cloneCards(batch), nil
}

// GenerateFlashcardsAsync runs GenerateFlashcards in its own goroutine and
// reports the outcome to done.
func (s *FlashcardSession) GenerateFlashcardsAsync(
	ctx context.Context,
	categoryID, amount int,
	done func([]entities.Flashcard, error),
) {
	go func() {
		cards, err := s.GenerateFlashcards(ctx, categoryID, amount)
		done(cards, err)
	}()
}

// ClearFlashcards empties the flashcard list.
func (s *FlashcardSession) ClearFlashcards() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flashcards = []entities.Flashcard{}
}

// AddFlashcard appends a user authored card. Both fields are trimmed and
// must not be empty.
func (s *FlashcardSession) AddFlashcard(question, answer string) (entities.Flashcard, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)

	if question == "" {
		return entities.Flashcard{}, &ValidationError{Field: "question", Reason: "must not be empty"}
	}
	if answer == "" {
		return entities.Flashcard{}, &ValidationError{Field: "answer", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return entities.Flashcard{}, ErrSessionClosed
	}

	card := entities.Flashcard{
		ID:       s.nextID(len(s.flashcards), s.now()),
		Question: question,
		Answer:   answer,
		Options:  []string{},
	}
	s.flashcards = append(s.flashcards, card)

	return card.Clone(), nil
}

// Categories returns a copy of the loaded categories.
func (s *FlashcardSession) Categories() []entities.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.categories)
}

// CategoryName resolves the display name of a loaded category.
func (s *FlashcardSession) CategoryName(id int) (string, bool) {
	if id == entities.CategoryAny {
		return entities.CategoryAnyName, true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c.Name, true
		}
	}

	return "", false
}

// Flashcards returns a copy of the current flashcards.
func (s *FlashcardSession) Flashcards() []entities.Flashcard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneCards(s.flashcards)
}

// Flashcard looks a card up by ID.
func (s *FlashcardSession) Flashcard(id string) (entities.Flashcard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, card := range s.flashcards {
		if card.ID == id {
			return card.Clone(), true
		}
	}

	return entities.Flashcard{}, false
}

// Close tears the session down. Responses arriving afterwards are discarded.
func (s *FlashcardSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

func (s *FlashcardSession) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closed
}

// newGeneratedCard must be called with mu held.
func (s *FlashcardSession) newGeneratedCard(position int, createdAt time.Time, q entities.Question) entities.Flashcard {
	answer := DecodeEntities(q.CorrectAnswer)

	options := make([]string, 0, len(q.IncorrectAnswers)+1)
	for _, wrong := range decodeAll(q.IncorrectAnswers) {
		// The answer has to stay unique among the options.
		if wrong == answer {
			s.logger.Warn("dropping incorrect answer equal to the correct one", zap.String("answer", answer))
			continue
		}
		options = append(options, wrong)
	}
	options = append(options, answer)

	return entities.Flashcard{
		ID:       s.nextID(position, createdAt),
		Question: DecodeEntities(q.Question),
		Answer:   answer,
		Options:  ShuffleOptions(s.rng, options),
	}
}

// nextID builds "<position>-<created millis>-<sequence>" in base 36.
// The per-session sequence keeps IDs unique across clear and regenerate.
// Must be called with mu held.
func (s *FlashcardSession) nextID(position int, createdAt time.Time) string {
	s.seq++

	return strconv.Itoa(position) + "-" +
		strconv.FormatInt(createdAt.UnixMilli(), 36) + "-" +
		strconv.FormatUint(s.seq, 36)
}

func cloneCards(cards []entities.Flashcard) []entities.Flashcard {
	cloned := make([]entities.Flashcard, 0, len(cards))
	for _, c := range cards {
		cloned = append(cloned, c.Clone())
	}
	return cloned
}

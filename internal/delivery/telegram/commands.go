package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/service"
)

// handleStart drops the chat's session and starts a fresh one.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.sessions.Delete(chatID)
		h.sessionFor(ctx, chatID)

		return h.send(newHTMLMessage(chatID, msgWelcome))
	}
}

// handleCategories lists categories, retrying the load if the list is empty.
func (h *Handler) handleCategories() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session := h.sessionFor(ctx, chatID)

		categories := session.Categories()
		if len(categories) == 0 {
			if err := session.LoadCategories(ctx); err != nil {
				return err
			}
			categories = session.Categories()
		}

		return h.send(newHTMLMessage(chatID, renderCategories(categories)))
	}
}

// handleGenerate opens the category picker, or generates right away when
// called as /generate <category_id> [amount].
func (h *Handler) handleGenerate(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session := h.sessionFor(ctx, chatID)

		if strings.TrimSpace(args) == "" {
			msg := newHTMLMessage(chatID, msgChooseCategory)
			msg.ReplyMarkup = buildCategoryKeyboard(session.Categories())
			return h.send(msg)
		}

		categoryID, amount, err := parseGenerateArgs(args, h.cfg.DefaultAmount)
		if err != nil {
			return err
		}

		// Only an already loaded list can tell a category is unknown.
		if len(session.Categories()) > 0 {
			if _, ok := session.CategoryName(categoryID); !ok {
				return errUnknownCategory
			}
		}

		if amount <= 0 {
			return &service.ValidationError{Field: "amount", Reason: "must be positive"}
		}

		if err := h.send(newPlainMessage(chatID, msgGenerating)); err != nil {
			return err
		}

		h.generate(ctx, chatID, session, categoryID, amount)
		return nil
	}
}

// generate starts an asynchronous generation and reports its result to the chat.
func (h *Handler) generate(ctx context.Context, chatID int64, session *service.FlashcardSession, categoryID, amount int) {
	categoryName, ok := session.CategoryName(categoryID)
	if !ok {
		categoryName = "category " + strconv.Itoa(categoryID)
	}

	session.GenerateFlashcardsAsync(ctx, categoryID, amount, func(cards []entities.Flashcard, err error) {
		if err != nil {
			h.reportError(chatID, err)
			return
		}

		h.logger.Info("flashcards generated",
			zap.Int64("chat_id", chatID),
			zap.Int("category_id", categoryID),
			zap.Int("count", len(cards)),
		)

		if len(cards) == 0 {
			_ = h.send(newPlainMessage(chatID, msgNoResults))
			return
		}

		if err := h.send(newHTMLMessage(chatID, fmt.Sprintf(msgGenerated, len(cards), esc(categoryName)))); err != nil {
			return
		}
		_ = h.sendCardPage(chatID, cards, 0, false)
	})
}

// handleCards shows the first flashcard of the chat.
func (h *Handler) handleCards() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		cards := h.sessionFor(ctx, chatID).Flashcards()
		if len(cards) == 0 {
			msg := newPlainMessage(chatID, msgNoCards)
			msg.ReplyMarkup = buildEmptyListKeyboard()
			return h.send(msg)
		}

		return h.sendCardPage(chatID, cards, 0, false)
	}
}

func (h *Handler) handleClear() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.sessionFor(ctx, chatID).ClearFlashcards()

		msg := newPlainMessage(chatID, msgCleared)
		msg.ReplyMarkup = buildEmptyListKeyboard()
		return h.send(msg)
	}
}

// handleAdd appends a custom flashcard given as "question | answer".
func (h *Handler) handleAdd(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		session := h.sessionFor(ctx, chatID)

		question, answer := parseAddArgs(args)
		if _, err := session.AddFlashcard(question, answer); err != nil {
			return err
		}

		return h.send(newPlainMessage(chatID, fmt.Sprintf(msgCardAdded, len(session.Flashcards()))))
	}
}

func (h *Handler) sendCardPage(chatID int64, cards []entities.Flashcard, index int, revealed bool) error {
	msg := newHTMLMessage(chatID, renderCard(cards, index, revealed))
	msg.ReplyMarkup = buildCardKeyboard(cards, index, revealed)
	return h.send(msg)
}

// parseGenerateArgs parses "<category_id|any> [amount]".
func parseGenerateArgs(args string, defaultAmount int) (int, int, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 2 {
		return 0, 0, errGenerateUsage
	}

	categoryID := entities.CategoryAny
	if !strings.EqualFold(fields[0], "any") {
		id, err := strconv.Atoi(fields[0])
		if err != nil || id < 0 {
			return 0, 0, errGenerateUsage
		}
		categoryID = id
	}

	amount := defaultAmount
	if len(fields) == 2 {
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, 0, &service.ValidationError{Field: "amount", Reason: "must be a whole number"}
		}
		amount = n
	}

	return categoryID, amount, nil
}

// parseAddArgs splits "question | answer". Trimming and emptiness checks are
// left to the session.
func parseAddArgs(args string) (string, string) {
	question, answer, _ := strings.Cut(args, "|")
	return question, answer
}

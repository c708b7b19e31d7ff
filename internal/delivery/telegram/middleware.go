package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/infra/opentdb"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/service"
)

var (
	errGenerateUsage   = errors.New("invalid generate arguments")
	errUnknownCategory = errors.New("unknown category")
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.reportError(chatID, err)
		}
		return nil
	}
}

// reportError turns an operation error into a user visible message.
func (h *Handler) reportError(chatID int64, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrSessionClosed):
		h.logger.Debug("result of closed session discarded", zap.Int64("chat_id", chatID))

	case errors.As(err, &validationErr):
		text := msgAddRequiresBoth
		if validationErr.Field == "amount" {
			text = msgInvalidAmount
		}
		_ = h.send(newPlainMessage(chatID, text))

	case errors.Is(err, errGenerateUsage):
		_ = h.send(newPlainMessage(chatID, msgUseGenerate))

	case errors.Is(err, errUnknownCategory):
		_ = h.send(newPlainMessage(chatID, msgInvalidCategory))

	case errors.Is(err, opentdb.ErrResponseCode):
		h.logger.Warn("trivia provider rejected request", zap.Int64("chat_id", chatID), zap.Error(err))
		_ = h.send(newPlainMessage(chatID, msgNoResults))

	case errors.Is(err, service.ErrFetch):
		h.logger.Warn("trivia fetch failed", zap.Int64("chat_id", chatID), zap.Error(err))
		_ = h.send(newPlainMessage(chatID, msgFetchFailed))

	default:
		h.logger.Error("handle error",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		_ = h.send(newPlainMessage(chatID, msgInternalError))
	}
}

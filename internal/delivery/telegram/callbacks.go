package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID
	cd := decodeCallback(cb.Data)

	var (
		notice string
		err    error
	)

	switch cd.Action {
	case actionGenerate:
		err = h.handleGenerateCallback(ctx, chatID, msgID, cd)
	case actionCard:
		notice, err = h.handleCardCallback(ctx, chatID, msgID, cd)
	case actionClear:
		err = h.handleClearCallback(ctx, chatID, msgID)
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
	}

	if err != nil {
		h.reportError(chatID, err)
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, notice)
}

func (h *Handler) handleGenerateCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) error {
	session := h.sessionFor(ctx, chatID)

	switch cd.param(0) {
	case generateMenu:
		kb := buildCategoryKeyboard(session.Categories())
		return h.send(newHTMLEdit(chatID, msgID, msgChooseCategory, &kb))

	case generateCategory:
		categoryID, ok := cd.intParam(1)
		if !ok {
			return fmt.Errorf("invalid category in callback %q", cd.Raw)
		}

		name, ok := session.CategoryName(categoryID)
		if !ok {
			return errUnknownCategory
		}

		kb := buildAmountKeyboard(categoryID, amountChoices(h.cfg.DefaultAmount, h.cfg.MaxAmount))
		return h.send(newHTMLEdit(chatID, msgID, fmt.Sprintf(msgChooseAmount, esc(name)), &kb))

	case generateAmount:
		categoryID, ok1 := cd.intParam(1)
		amount, ok2 := cd.intParam(2)
		if !ok1 || !ok2 {
			return fmt.Errorf("invalid amount callback %q", cd.Raw)
		}

		if err := h.send(newHTMLEdit(chatID, msgID, msgGenerating, nil)); err != nil {
			return err
		}

		h.generate(ctx, chatID, session, categoryID, amount)
		return nil

	default:
		return fmt.Errorf("unknown generate callback %q", cd.Raw)
	}
}

// handleCardCallback flips or pages a card. A card that disappeared after a
// clear or a new batch yields a notice instead of an error.
func (h *Handler) handleCardCallback(ctx context.Context, chatID int64, msgID int, cd callbackData) (string, error) {
	mode, cardID := cd.param(0), cd.param(1)
	if mode != cardShow && mode != cardHide {
		return "", fmt.Errorf("unknown card callback %q", cd.Raw)
	}

	cards := h.sessionFor(ctx, chatID).Flashcards()
	index := cardIndex(cards, cardID)
	if index < 0 {
		return msgCardGone, nil
	}

	revealed := mode == cardShow
	kb := buildCardKeyboard(cards, index, revealed)

	h.logger.Debug("card shown",
		zap.Int64("chat_id", chatID),
		zap.String("card_id", cardID),
		zap.String("position", strconv.Itoa(index+1)+"/"+strconv.Itoa(len(cards))),
		zap.Bool("revealed", revealed),
	)

	return "", h.send(newHTMLEdit(chatID, msgID, renderCard(cards, index, revealed), &kb))
}

func (h *Handler) handleClearCallback(ctx context.Context, chatID int64, msgID int) error {
	h.sessionFor(ctx, chatID).ClearFlashcards()

	kb := buildEmptyListKeyboard()
	return h.send(newHTMLEdit(chatID, msgID, msgCleared, &kb))
}

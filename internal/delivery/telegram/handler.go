package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/config"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/service"
)

type Handler struct {
	bot        BotAPI
	logger     *zap.Logger
	sessions   SessionStorage
	newSession func() *service.FlashcardSession
	cfg        config.Bot
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	sessions SessionStorage,
	newSession func() *service.FlashcardSession,
	cfg config.Bot,
) *Handler {
	return &Handler{
		bot:        bot,
		logger:     logger,
		sessions:   sessions,
		newSession: newSession,
		cfg:        cfg,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = h.cfg.UpdateTimeout

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		return
	}

	args := update.Message.CommandArguments()

	switch update.Message.Command() {
	case "start":
		_ = h.withErrorHandling(h.handleStart())(ctx, chatID)

	case "help":
		_ = h.send(newHTMLMessage(chatID, msgWelcome))

	case "categories":
		_ = h.withErrorHandling(h.handleCategories())(ctx, chatID)

	case "generate":
		_ = h.withErrorHandling(h.handleGenerate(args))(ctx, chatID)

	case "cards":
		_ = h.withErrorHandling(h.handleCards())(ctx, chatID)

	case "clear":
		_ = h.withErrorHandling(h.handleClear())(ctx, chatID)

	case "add":
		_ = h.withErrorHandling(h.handleAdd(args))(ctx, chatID)

	default:
		_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

// sessionFor returns the chat's session. A new session loads the category
// list once; a failure is reported but leaves the session usable.
func (h *Handler) sessionFor(ctx context.Context, chatID int64) *service.FlashcardSession {
	session, created := h.sessions.GetOrCreate(chatID, h.newSession)
	if !created {
		return session
	}

	h.logger.Info("session created",
		zap.Int64("chat_id", chatID),
		zap.String("session_id", session.ID().String()),
	)

	if err := session.LoadCategories(ctx); err != nil {
		h.logger.Warn("failed to load categories",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		_ = h.send(newPlainMessage(chatID, msgCategoriesFailed))
	}

	return session
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

func (h *Handler) answerCallback(callbackID, text string) {
	answer := tgbotapi.NewCallback(callbackID, text)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/config"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/delivery/telegram"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/infra/opentdb"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/logger"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/service"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start a new session",
		},
		{
			Command:     "generate",
			Description: "Generate flashcards (usage: /generate 9 10)",
		},
		{
			Command:     "cards",
			Description: "Browse flashcards",
		},
		{
			Command:     "add",
			Description: "Add a flashcard (usage: /add question | answer)",
		},
		{
			Command:     "clear",
			Description: "Remove all flashcards",
		},
		{
			Command:     "categories",
			Description: "List categories",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	_, err = bot.Request(tgbotapi.NewSetMyCommands(commands...))
	if err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	bot.Debug = cfg.Bot.Debug
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	triviaClient := opentdb.NewClient(cfg.Trivia.BaseURL, cfg.Trivia.Timeout, lg.Named("opentdb"))
	sessions := storage.NewSessionStorage()
	defer sessions.CloseAll()

	sessionLogger := lg.Named("session")
	newSession := func() *service.FlashcardSession {
		return service.NewFlashcardSession(triviaClient, sessionLogger)
	}

	handler := telegram.NewHandler(bot, lg.Named("telegram"), sessions, newSession, cfg.Bot)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("telegram handler failed", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}

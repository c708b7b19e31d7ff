package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/domain/entities"
)

const categoriesPerRow = 2

// buildCategoryKeyboard builds the category picker; "Any Category" comes first.
func buildCategoryKeyboard(categories []entities.Category) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 "+entities.CategoryAnyName, buildGenerateCategoryCallback(entities.CategoryAny)),
		),
	}

	var row []tgbotapi.InlineKeyboardButton
	for _, c := range categories {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(c.Name, buildGenerateCategoryCallback(c.ID)))
		if len(row) == categoriesPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildAmountKeyboard builds the amount picker for the chosen category.
func buildAmountKeyboard(categoryID int, amounts []int) tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	for _, n := range amounts {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(n), buildGenerateAmountCallback(categoryID, n)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("« Back to categories", buildGenerateMenuCallback()),
		),
	)
}

// buildCardKeyboard builds the flip, pagination and list controls of a card page.
func buildCardKeyboard(cards []entities.Flashcard, index int, revealed bool) tgbotapi.InlineKeyboardMarkup {
	card := cards[index]

	flip := tgbotapi.NewInlineKeyboardButtonData("👁 Show answer", buildCardCallback(card.ID, true))
	if revealed {
		flip = tgbotapi.NewInlineKeyboardButtonData("🙈 Hide answer", buildCardCallback(card.ID, false))
	}
	rows := [][]tgbotapi.InlineKeyboardButton{tgbotapi.NewInlineKeyboardRow(flip)}

	var nav []tgbotapi.InlineKeyboardButton
	if index > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildCardCallback(cards[index-1].ID, false)))
	}
	if index < len(cards)-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildCardCallback(cards[index+1].ID, false)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🎲 Generate", buildGenerateMenuCallback()),
		tgbotapi.NewInlineKeyboardButtonData("🗑 Clear", buildClearCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildEmptyListKeyboard offers generation when there is nothing to show.
func buildEmptyListKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Generate", buildGenerateMenuCallback()),
		),
	)
}

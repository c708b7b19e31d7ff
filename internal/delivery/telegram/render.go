package telegram

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/domain/entities"
)

// renderCard renders the card at index of cards. The answer is shown only
// when revealed is set; generated cards always list their options.
func renderCard(cards []entities.Flashcard, index int, revealed bool) string {
	card := cards[index]

	var sb strings.Builder
	fmt.Fprintf(&sb, "🃏 <b>Card %d/%d</b>", index+1, len(cards))
	if card.IsCustom() {
		sb.WriteString(" · <i>custom</i>")
	}
	sb.WriteString("\n\n")

	sb.WriteString("<b>")
	sb.WriteString(esc(card.Question))
	sb.WriteString("</b>\n")

	answerIdx := card.AnswerIndex()
	if len(card.Options) > 0 {
		sb.WriteString("\n")
		for i, opt := range card.Options {
			marker := strconv.Itoa(i+1) + "."
			if revealed && i == answerIdx {
				marker = "✅"
			}
			fmt.Fprintf(&sb, "%s %s\n", marker, esc(opt))
		}
	}

	if revealed {
		sb.WriteString("\n<b>Answer:</b> ")
		sb.WriteString(esc(card.Answer))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderCategories lists categories with the IDs accepted by /generate.
func renderCategories(categories []entities.Category) string {
	var sb strings.Builder
	sb.WriteString(msgCategoriesHeader)
	fmt.Fprintf(&sb, "\n<code>%d</code> — %s", entities.CategoryAny, esc(entities.CategoryAnyName))
	for _, c := range categories {
		fmt.Fprintf(&sb, "\n<code>%d</code> — %s", c.ID, esc(c.Name))
	}
	return sb.String()
}

// cardIndex returns the position of the card with id, or -1.
func cardIndex(cards []entities.Flashcard, id string) int {
	return slices.IndexFunc(cards, func(c entities.Flashcard) bool {
		return c.ID == id
	})
}

// amountChoices returns the amounts offered on the keyboard: a fixed set of
// presets plus the configured default, capped at max.
func amountChoices(defaultAmount, maxAmount int) []int {
	presets := []int{1, 5, 10, 15, 20, 30, 50}

	choices := make([]int, 0, len(presets)+1)
	for _, p := range append(presets, defaultAmount) {
		if p <= maxAmount && !slices.Contains(choices, p) {
			choices = append(choices, p)
		}
	}
	slices.Sort(choices)

	return choices
}

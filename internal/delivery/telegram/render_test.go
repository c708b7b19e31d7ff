package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/domain/entities"
)

func sampleCards() []entities.Flashcard {
	return []entities.Flashcard{
		{ID: "0-a-1", Question: "2+2=?", Answer: "4", Options: []string{"3", "4", "5"}},
		{ID: "1-a-2", Question: "Is <b> a tag?", Answer: "Yes & no", Options: []string{}},
	}
}

func TestRenderCardHidden(t *testing.T) {
	text := renderCard(sampleCards(), 0, false)

	assert.Contains(t, text, "Card 1/2")
	assert.Contains(t, text, "<b>2+2=?</b>")
	assert.Contains(t, text, "1. 3\n2. 4\n3. 5")
	assert.NotContains(t, text, "Answer:")
	assert.NotContains(t, text, "custom")
}

func TestRenderCardRevealed(t *testing.T) {
	text := renderCard(sampleCards(), 0, true)

	assert.Contains(t, text, "1. 3\n✅ 4\n3. 5")
	assert.Contains(t, text, "<b>Answer:</b> 4")
}

func TestRenderCustomCardEscapesHTML(t *testing.T) {
	hidden := renderCard(sampleCards(), 1, false)
	assert.Contains(t, hidden, "Card 2/2</b> · <i>custom</i>")
	assert.Contains(t, hidden, "Is &lt;b&gt; a tag?")
	assert.NotContains(t, hidden, "Answer:")

	revealed := renderCard(sampleCards(), 1, true)
	assert.Contains(t, revealed, "<b>Answer:</b> Yes &amp; no")
}

func TestRenderCategories(t *testing.T) {
	text := renderCategories([]entities.Category{
		{ID: 9, Name: "General Knowledge"},
		{ID: 11, Name: "Entertainment: Film & TV"},
	})

	assert.Contains(t, text, "<code>0</code> — Any Category")
	assert.Contains(t, text, "<code>9</code> — General Knowledge")
	assert.Contains(t, text, "<code>11</code> — Entertainment: Film &amp; TV")
}

func TestCardIndex(t *testing.T) {
	cards := sampleCards()

	assert.Equal(t, 1, cardIndex(cards, "1-a-2"))
	assert.Equal(t, -1, cardIndex(cards, "missing"))
	assert.Equal(t, -1, cardIndex(nil, "0-a-1"))
}

func TestAmountChoices(t *testing.T) {
	assert.Equal(t, []int{1, 5, 10, 15, 20, 30, 50}, amountChoices(10, 50))
	assert.Equal(t, []int{1, 5, 7, 10, 15, 20}, amountChoices(7, 20))
	assert.Equal(t, []int{1, 3}, amountChoices(3, 3))
}

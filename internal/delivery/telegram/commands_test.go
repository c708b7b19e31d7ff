package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/trivia-flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-flashcards-bot/internal/service"
)

func TestParseGenerateArgs(t *testing.T) {
	tests := []struct {
		args         string
		wantCategory int
		wantAmount   int
	}{
		{args: "9 10", wantCategory: 9, wantAmount: 10},
		{args: "9", wantCategory: 9, wantAmount: 7},
		{args: "any 3", wantCategory: entities.CategoryAny, wantAmount: 3},
		{args: "ANY", wantCategory: entities.CategoryAny, wantAmount: 7},
		{args: "  12   0 ", wantCategory: 12, wantAmount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			category, amount, err := parseGenerateArgs(tt.args, 7)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCategory, category)
			assert.Equal(t, tt.wantAmount, amount)
		})
	}
}

func TestParseGenerateArgsErrors(t *testing.T) {
	for _, args := range []string{"", "books 10", "-1 10", "9 10 11"} {
		_, _, err := parseGenerateArgs(args, 10)
		assert.ErrorIs(t, err, errGenerateUsage, "args %q", args)
	}

	_, _, err := parseGenerateArgs("9 ten", 10)
	var validationErr *service.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "amount", validationErr.Field)
}

func TestParseAddArgs(t *testing.T) {
	q, a := parseAddArgs(" What is 2+2? | 4 ")
	assert.Equal(t, " What is 2+2? ", q)
	assert.Equal(t, " 4 ", a)

	q, a = parseAddArgs("no separator")
	assert.Equal(t, "no separator", q)
	assert.Equal(t, "", a)

	q, a = parseAddArgs("a | b | c")
	assert.Equal(t, "a ", q)
	assert.Equal(t, " b | c", a)
}

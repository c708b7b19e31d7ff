// messages.go contains message templates for Telegram.

package telegram

// Error messages.
const (
	msgFetchFailed      = "⚠️ Could not reach the trivia service. Please try again."
	msgCategoriesFailed = "⚠️ Could not load categories. Only \"Any Category\" is available for now, use /categories to retry."
	msgAddRequiresBoth  = "Both Question and Answer fields are required.\nUsage: /add What is the capital of France? | Paris"
	msgInvalidAmount    = "The number of questions must be a positive whole number."
	msgInvalidCategory  = "Unknown category. Use /categories to see the available IDs."
	msgUseGenerate      = "Usage: /generate or /generate <category_id> <amount>, e.g. /generate 9 10."
	msgNoResults        = "The trivia service returned no questions for this request. Try a smaller amount or another category."
	msgCardGone         = "This flashcard is no longer available."
	msgInternalError    = "Something went wrong. Please try again later."
	msgUnknownCommand   = "Unknown command. Use /help to see what I can do."
)

const msgWelcome = "👋 <b>Trivia Flashcards</b>\n\n" +
	"I turn trivia questions into flashcards.\n\n" +
	"/generate — pick a category and the number of questions\n" +
	"/cards — browse your current flashcards\n" +
	"/add question | answer — add your own flashcard\n" +
	"/clear — remove all flashcards\n" +
	"/categories — list the categories\n" +
	"/start — start a new session\n" +
	"/help — show this message"

// Informational messages.
const (
	msgChooseCategory   = "📚 <b>Choose a category</b>"
	msgGenerating       = "⏳ Generating flashcards…"
	msgNoCards          = "You have no flashcards yet. Use /generate or /add to create some."
	msgCleared          = "🗑 All flashcards were removed."
	msgCardAdded        = "✅ Flashcard added. You now have %d flashcard(s)."
	msgGenerated        = "🎲 Generated %d flashcard(s) from <b>%s</b>."
	msgChooseAmount     = "📚 <b>%s</b>\n\nHow many questions?"
	msgCategoriesHeader = "📚 <b>Categories</b>\n\nUse the ID with /generate, e.g. /generate 9 10.\n"
)

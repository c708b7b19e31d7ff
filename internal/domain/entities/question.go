package entities

// Question is a raw question record returned by the trivia provider.
// All text fields arrive HTML entity encoded.
type Question struct {
	Category         string   `json:"category"`          // category name (entity encoded)
	Type             string   `json:"type"`              // "multiple" or "boolean"
	Difficulty       string   `json:"difficulty"`        // "easy", "medium" or "hard"
	Question         string   `json:"question"`          // question text (entity encoded)
	CorrectAnswer    string   `json:"correct_answer"`    // correct answer (entity encoded)
	IncorrectAnswers []string `json:"incorrect_answers"` // wrong answers (entity encoded)
}

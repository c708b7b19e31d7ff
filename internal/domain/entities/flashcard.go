package entities

import "slices"

// Flashcard is a question/answer unit shown to the user.
// Generated cards carry multiple choice options, custom cards do not.
type Flashcard struct {
	ID       string   `json:"id"`       // unique within the owning session
	Question string   `json:"question"` // decoded question text
	Answer   string   `json:"answer"`   // decoded correct answer
	Options  []string `json:"options"`  // shuffled choices, empty for custom cards
}

// IsCustom reports whether the card was authored by the user.
func (f Flashcard) IsCustom() bool {
	return len(f.Options) == 0
}

// AnswerIndex returns the position of the answer among the options, or -1.
func (f Flashcard) AnswerIndex() int {
	return slices.Index(f.Options, f.Answer)
}

// Clone returns a deep copy of the card.
func (f Flashcard) Clone() Flashcard {
	f.Options = slices.Clone(f.Options)
	if f.Options == nil {
		f.Options = []string{}
	}
	return f
}

package form

import (
	"strings"

	"github.com/alclearn/admin-console/internal/model"
)

// TrueFalseDraft is the editable shape of a true/false question. The answer
// is a boolean here and the literal string "True"/"False" on the wire.
type TrueFalseDraft struct {
	Text       string
	Difficulty model.Difficulty
	IsTrue     bool
}

// NewTrueFalseDraft returns the blank create-mode draft, defaulting to true.
func NewTrueFalseDraft() TrueFalseDraft {
	return TrueFalseDraft{
		Difficulty: model.DifficultyEasy,
		IsTrue:     true,
	}
}

// TrueFalseToForm converts an API item into its editable draft.
func TrueFalseToForm(item model.TrueFalseItem) TrueFalseDraft {
	return TrueFalseDraft{
		Text:       item.Text,
		Difficulty: item.Difficulty,
		IsTrue:     item.IsTrue,
	}
}

// Validate blocks submission with a user-facing message.
func (d *TrueFalseDraft) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return ValidationError("Please enter the question text.")
	}
	return nil
}

// ToWire serializes the draft, converting the answer to the string literal
// the API requires.
func (d TrueFalseDraft) ToWire(bookID int64) model.TrueFalsePayload {
	isTrue := "False"
	if d.IsTrue {
		isTrue = "True"
	}
	return model.TrueFalsePayload{
		Book:       bookID,
		Difficulty: d.Difficulty,
		Text:       strings.TrimSpace(d.Text),
		IsTrue:     isTrue,
	}
}

package form

import (
	"strings"

	"github.com/alclearn/admin-console/internal/model"
)

// MCQDraft is the editable shape of a multiple-choice question.
type MCQDraft struct {
	Text       string
	Difficulty model.Difficulty
	Choices    []model.Choice
}

// NewMCQDraft returns the blank create-mode draft: two empty choices, easy.
func NewMCQDraft() MCQDraft {
	return MCQDraft{
		Difficulty: model.DifficultyEasy,
		Choices: []model.Choice{
			{},
			{},
		},
	}
}

// MCQToForm converts an API item into its editable draft.
func MCQToForm(item model.MCQItem) MCQDraft {
	choices := make([]model.Choice, len(item.Choices))
	copy(choices, item.Choices)
	return MCQDraft{
		Text:       item.Text,
		Difficulty: item.Difficulty,
		Choices:    choices,
	}
}

// SetCorrect marks choice i correct and clears every other choice in the
// same operation. Multi-select is never possible.
func (d *MCQDraft) SetCorrect(i int) {
	for j := range d.Choices {
		d.Choices[j].IsCorrect = j == i
	}
}

// AddChoice appends an empty choice.
func (d *MCQDraft) AddChoice() {
	d.Choices = append(d.Choices, model.Choice{})
}

// RemoveChoice deletes choice i.
func (d *MCQDraft) RemoveChoice(i int) {
	if i < 0 || i >= len(d.Choices) {
		return
	}
	d.Choices = append(d.Choices[:i], d.Choices[i+1:]...)
}

// Validate blocks submission with a user-facing message.
func (d *MCQDraft) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return ValidationError("Please enter the question text.")
	}
	if len(d.Choices) < 2 {
		return ValidationError("Enter at least two choices.")
	}
	correct := false
	for _, c := range d.Choices {
		if c.IsCorrect {
			correct = true
		}
	}
	if !correct {
		return ValidationError("Mark one choice as correct.")
	}
	for _, c := range d.Choices {
		if strings.TrimSpace(c.Text) == "" {
			return ValidationError("Please fill in all choices.")
		}
	}
	return nil
}

// ToWire serializes the draft. Choice IDs are kept only when editing; their
// absence signals "create" to the backend.
func (d MCQDraft) ToWire(bookID int64, editing bool) model.MCQPayload {
	choices := make([]model.Choice, 0, len(d.Choices))
	for _, c := range d.Choices {
		wc := model.Choice{
			Text:      strings.TrimSpace(c.Text),
			IsCorrect: c.IsCorrect,
		}
		if editing {
			wc.ID = c.ID
		}
		choices = append(choices, wc)
	}
	return model.MCQPayload{
		Book:       bookID,
		Difficulty: d.Difficulty,
		Text:       strings.TrimSpace(d.Text),
		Choices:    choices,
	}
}

package form

import (
	"strings"

	"github.com/alclearn/admin-console/internal/model"
)

// ReadingQuestionDraft is one editable sub-question of a passage.
type ReadingQuestionDraft struct {
	Question      string
	Choices       []string
	CorrectAnswer string
}

// ReadingDraft is the editable shape of a reading passage.
type ReadingDraft struct {
	Title      string
	Content    string
	Difficulty model.Difficulty
	Questions  []ReadingQuestionDraft
}

func blankReadingQuestion() ReadingQuestionDraft {
	return ReadingQuestionDraft{Choices: []string{"", "", "", ""}}
}

// NewReadingDraft returns the blank create-mode draft with one empty
// four-choice sub-question.
func NewReadingDraft() ReadingDraft {
	return ReadingDraft{
		Difficulty: model.DifficultyEasy,
		Questions:  []ReadingQuestionDraft{blankReadingQuestion()},
	}
}

// ReadingToForm converts an API passage into its editable draft.
func ReadingToForm(item model.ReadingPassage) ReadingDraft {
	questions := make([]ReadingQuestionDraft, 0, len(item.Questions))
	for _, q := range item.Questions {
		choices := make([]string, len(q.Choices))
		copy(choices, q.Choices)
		questions = append(questions, ReadingQuestionDraft{
			Question:      q.Question,
			Choices:       choices,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	difficulty := item.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyEasy
	}
	return ReadingDraft{
		Title:      item.Title,
		Content:    item.Content,
		Difficulty: difficulty,
		Questions:  questions,
	}
}

// AddQuestion appends a blank sub-question.
func (d *ReadingDraft) AddQuestion() {
	d.Questions = append(d.Questions, blankReadingQuestion())
}

// RemoveQuestion deletes sub-question i.
func (d *ReadingDraft) RemoveQuestion(i int) {
	if i < 0 || i >= len(d.Questions) {
		return
	}
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
}

// SetChoice replaces choice ci of sub-question qi. If that choice was the
// selected correct answer and its text actually changes, the selection is
// cleared rather than left pointing at text that no longer exists among the
// choices; the user must reselect. Rewriting a choice with its own text is a
// no-op for the selection, so paging through an existing passage keeps it.
func (d *ReadingDraft) SetChoice(qi, ci int, text string) {
	if qi < 0 || qi >= len(d.Questions) {
		return
	}
	q := &d.Questions[qi]
	if ci < 0 || ci >= len(q.Choices) {
		return
	}
	if text != q.Choices[ci] && q.CorrectAnswer != "" && q.CorrectAnswer == q.Choices[ci] {
		q.CorrectAnswer = ""
	}
	q.Choices[ci] = text
}

// AnswerOptions lists the non-blank choices of sub-question qi, the valid
// values for its correct answer.
func (d *ReadingDraft) AnswerOptions(qi int) []string {
	if qi < 0 || qi >= len(d.Questions) {
		return nil
	}
	var opts []string
	for _, c := range d.Questions[qi].Choices {
		if strings.TrimSpace(c) != "" {
			opts = append(opts, c)
		}
	}
	return opts
}

// Validate blocks submission with a user-facing message.
func (d *ReadingDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ValidationError("Please enter the passage title.")
	}
	if strings.TrimSpace(d.Content) == "" {
		return ValidationError("Please enter the passage content.")
	}
	if len(d.Questions) == 0 {
		return ValidationError("Add at least one question to the passage.")
	}
	for _, q := range d.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return ValidationError("Please fill in every passage question.")
		}
		for _, c := range q.Choices {
			if strings.TrimSpace(c) == "" {
				return ValidationError("Please fill in all question choices.")
			}
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return ValidationError("Select the correct answer for every question.")
		}
		if !containsVerbatim(q.Choices, q.CorrectAnswer) {
			return ValidationError("The correct answer must be one of the question's choices.")
		}
	}
	return nil
}

func containsVerbatim(choices []string, answer string) bool {
	for _, c := range choices {
		if c == answer {
			return true
		}
	}
	return false
}

// ToWire serializes the draft, trimming the passage text and every
// sub-question and choice.
func (d ReadingDraft) ToWire(bookID int64, bookTitle string) model.ReadingPayload {
	questions := make([]model.ReadingSubQuestion, 0, len(d.Questions))
	for _, q := range d.Questions {
		choices := make([]string, len(q.Choices))
		for i, c := range q.Choices {
			choices[i] = strings.TrimSpace(c)
		}
		questions = append(questions, model.ReadingSubQuestion{
			Question:      strings.TrimSpace(q.Question),
			Choices:       choices,
			CorrectAnswer: strings.TrimSpace(q.CorrectAnswer),
		})
	}
	return model.ReadingPayload{
		Book:       bookID,
		BookTitle:  bookTitle,
		Title:      strings.TrimSpace(d.Title),
		Difficulty: d.Difficulty,
		Content:    strings.TrimSpace(d.Content),
		Questions:  questions,
	}
}

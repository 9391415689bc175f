package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alclearn/admin-console/internal/model"
)

func validReadingDraft() ReadingDraft {
	return ReadingDraft{
		Title:      "A Day at the Market",
		Content:    "Sara went to the market early in the morning.",
		Difficulty: model.DifficultyMedium,
		Questions: []ReadingQuestionDraft{
			{
				Question:      "When did Sara go?",
				Choices:       []string{"Morning", "Noon", "Evening", "Night"},
				CorrectAnswer: "Morning",
			},
		},
	}
}

func TestReadingSetChoiceClearsStaleAnswer(t *testing.T) {
	d := validReadingDraft()

	// Editing the choice the answer points at clears the selection.
	d.SetChoice(0, 0, "Dawn")
	assert.Equal(t, "Dawn", d.Questions[0].Choices[0])
	assert.Empty(t, d.Questions[0].CorrectAnswer)

	// Editing any other choice leaves the selection alone.
	d.Questions[0].CorrectAnswer = "Dawn"
	d.SetChoice(0, 1, "Midday")
	assert.Equal(t, "Dawn", d.Questions[0].CorrectAnswer)

	// Rewriting the selected choice with its own text is not an edit; the
	// selection survives a pass through an unchanged form.
	d.SetChoice(0, 0, "Dawn")
	assert.Equal(t, "Dawn", d.Questions[0].CorrectAnswer)
}

func TestReadingAnswerOptionsSkipBlanks(t *testing.T) {
	d := validReadingDraft()
	d.Questions[0].Choices = []string{"Morning", "  ", "Evening", ""}

	assert.Equal(t, []string{"Morning", "Evening"}, d.AnswerOptions(0))
	assert.Nil(t, d.AnswerOptions(3))
}

func TestReadingValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ReadingDraft)
		message string
	}{
		{
			name:   "valid draft passes",
			mutate: func(d *ReadingDraft) {},
		},
		{
			name:    "blank title",
			mutate:  func(d *ReadingDraft) { d.Title = " " },
			message: "Please enter the passage title.",
		},
		{
			name:    "blank content",
			mutate:  func(d *ReadingDraft) { d.Content = "" },
			message: "Please enter the passage content.",
		},
		{
			name:    "no questions",
			mutate:  func(d *ReadingDraft) { d.Questions = nil },
			message: "Add at least one question to the passage.",
		},
		{
			name:    "blank question",
			mutate:  func(d *ReadingDraft) { d.Questions[0].Question = "" },
			message: "Please fill in every passage question.",
		},
		{
			name:    "blank choice",
			mutate:  func(d *ReadingDraft) { d.Questions[0].Choices[2] = " " },
			message: "Please fill in all question choices.",
		},
		{
			name:    "no answer selected",
			mutate:  func(d *ReadingDraft) { d.Questions[0].CorrectAnswer = "" },
			message: "Select the correct answer for every question.",
		},
		{
			name:    "answer not among choices",
			mutate:  func(d *ReadingDraft) { d.Questions[0].CorrectAnswer = "Dawn" },
			message: "The correct answer must be one of the question's choices.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validReadingDraft()
			tt.mutate(&d)

			err := d.Validate()
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestReadingToWireTrimsEverything(t *testing.T) {
	d := validReadingDraft()
	d.Title = "  A Day at the Market  "
	d.Questions[0].Question = " When did Sara go? "
	d.Questions[0].Choices[0] = " Morning "
	d.Questions[0].CorrectAnswer = " Morning "

	wire := d.ToWire(4, "First Steps in English")

	assert.Equal(t, int64(4), wire.Book)
	assert.Equal(t, "First Steps in English", wire.BookTitle)
	assert.Equal(t, "A Day at the Market", wire.Title)
	assert.Equal(t, "When did Sara go?", wire.Questions[0].Question)
	assert.Equal(t, "Morning", wire.Questions[0].Choices[0])
	assert.Equal(t, "Morning", wire.Questions[0].CorrectAnswer)
}

func TestReadingToFormDefaultsDifficulty(t *testing.T) {
	d := ReadingToForm(model.ReadingPassage{Title: "P", Content: "C"})
	assert.Equal(t, model.DifficultyEasy, d.Difficulty)
}

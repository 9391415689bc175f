package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alclearn/admin-console/internal/model"
)

func TestTrueFalseToWireUsesStringLiterals(t *testing.T) {
	d := TrueFalseDraft{Text: "The sun rises in the east.", Difficulty: model.DifficultyEasy, IsTrue: true}
	assert.Equal(t, "True", d.ToWire(1).IsTrue)

	d.IsTrue = false
	assert.Equal(t, "False", d.ToWire(1).IsTrue)
}

func TestTrueFalseValidateRequiresText(t *testing.T) {
	d := TrueFalseDraft{Text: "  "}
	assert.EqualError(t, d.Validate(), "Please enter the question text.")

	d.Text = "A statement"
	assert.NoError(t, d.Validate())
}

func TestTrueFalseToFormRoundTrip(t *testing.T) {
	item := model.TrueFalseItem{Text: "S", Difficulty: model.DifficultyHard, IsTrue: true}
	d := TrueFalseToForm(item)

	assert.Equal(t, item.Text, d.Text)
	assert.Equal(t, item.Difficulty, d.Difficulty)
	assert.True(t, d.IsTrue)
}

package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alclearn/admin-console/internal/model"
)

func TestNewMatchingDraft(t *testing.T) {
	d := NewMatchingDraft()
	require.Len(t, d.Pairs, 2)
	assert.Equal(t, "A", d.Pairs[0].MatchKey)
	assert.Equal(t, "B", d.Pairs[1].MatchKey)
}

func TestMatchingAddPairUsesNextKey(t *testing.T) {
	d := NewMatchingDraft()
	d.AddPair()

	require.Len(t, d.Pairs, 3)
	assert.Equal(t, "C", d.Pairs[2].MatchKey)
}

func TestMatchingRemovePairRenumbersFromA(t *testing.T) {
	d := MatchingDraft{Pairs: []model.MatchingPair{
		{MatchKey: "A", LeftItem: "1"},
		{MatchKey: "B", LeftItem: "2"},
		{MatchKey: "C", LeftItem: "3"},
	}}

	d.RemovePair(0)

	require.Len(t, d.Pairs, 2)
	assert.Equal(t, "A", d.Pairs[0].MatchKey)
	assert.Equal(t, "2", d.Pairs[0].LeftItem)
	assert.Equal(t, "B", d.Pairs[1].MatchKey)
	assert.Equal(t, "3", d.Pairs[1].LeftItem)
}

func TestMatchingRemovePairOutOfRange(t *testing.T) {
	d := NewMatchingDraft()
	d.RemovePair(-1)
	d.RemovePair(5)
	assert.Len(t, d.Pairs, 2)
}

func TestMatchingValidate(t *testing.T) {
	valid := MatchingDraft{
		Text:       "Match the animal to its sound",
		Difficulty: model.DifficultyEasy,
		Pairs: []model.MatchingPair{
			{MatchKey: "A", LeftItem: "Dog", RightItem: "Bark"},
			{MatchKey: "B", LeftItem: "Cat", RightItem: "Meow"},
		},
	}

	tests := []struct {
		name    string
		mutate  func(*MatchingDraft)
		message string
	}{
		{
			name:   "valid draft passes",
			mutate: func(d *MatchingDraft) {},
		},
		{
			name:    "blank text",
			mutate:  func(d *MatchingDraft) { d.Text = "" },
			message: "Please enter the question text.",
		},
		{
			name:    "single pair",
			mutate:  func(d *MatchingDraft) { d.Pairs = d.Pairs[:1] },
			message: "Enter at least two pairs.",
		},
		{
			name:    "half-filled pair",
			mutate:  func(d *MatchingDraft) { d.Pairs[1].RightItem = "  " },
			message: "Please fill in both sides of every pair.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			d.Pairs = append([]model.MatchingPair(nil), valid.Pairs...)
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

func TestMatchingToWireEmitsPairsCount(t *testing.T) {
	d := MatchingDraft{
		Text:       "Match",
		Difficulty: model.DifficultyMedium,
		Pairs: []model.MatchingPair{
			{ID: 3, MatchKey: "A", LeftItem: " Dog ", RightItem: "Bark"},
			{ID: 4, MatchKey: "B", LeftItem: "Cat", RightItem: " Meow "},
		},
	}

	created := d.ToWire(2, false)
	assert.Equal(t, 2, created.PairsCount)
	assert.Equal(t, "Dog", created.Pairs[0].LeftItem)
	assert.Equal(t, "Meow", created.Pairs[1].RightItem)
	assert.Zero(t, created.Pairs[0].ID)

	edited := d.ToWire(2, true)
	assert.Equal(t, int64(3), edited.Pairs[0].ID)
	assert.Equal(t, int64(4), edited.Pairs[1].ID)
}

func TestMatchingWireShapeRoundTripEquivalence(t *testing.T) {
	// The same logical item arrives in both historical shapes; after
	// toForm and toWire the payloads must carry identical pair content.
	parallel := `{"id": 1, "text": "Sounds", "difficulty": "easy",
		"matching_pairs": [{"left_item": ["Dog", "Cat"]}, {"right_item": ["Bark", "Meow"]}]}`
	flat := `{"id": 2, "text": "Sounds", "difficulty": "easy",
		"matching_pairs": [
			{"match_key": "A", "left_item": "Dog", "right_item": "Bark"},
			{"match_key": "B", "left_item": "Cat", "right_item": "Meow"}
		]}`

	var fromParallel, fromFlat model.MatchingItem
	require.NoError(t, json.Unmarshal([]byte(parallel), &fromParallel))
	require.NoError(t, json.Unmarshal([]byte(flat), &fromFlat))

	wireParallel := MatchingToForm(fromParallel).ToWire(7, false)
	wireFlat := MatchingToForm(fromFlat).ToWire(7, false)

	assert.Equal(t, wireFlat.Pairs, wireParallel.Pairs)
	assert.Equal(t, wireFlat.PairsCount, wireParallel.PairsCount)
	assert.Equal(t, "A", wireParallel.Pairs[0].MatchKey)
	assert.Equal(t, "B", wireParallel.Pairs[1].MatchKey)
}

func TestMatchingToFormFallsBackWhenPairless(t *testing.T) {
	item := model.MatchingItem{Text: "orphan", Difficulty: model.DifficultyHard}

	d := MatchingToForm(item)

	assert.Equal(t, "orphan", d.Text)
	assert.Equal(t, model.DifficultyHard, d.Difficulty)
	require.Len(t, d.Pairs, 2)
	assert.Equal(t, "A", d.Pairs[0].MatchKey)
}

func TestMatchingToFormFillsMissingKeys(t *testing.T) {
	item := model.MatchingItem{
		Text: "keys",
		Pairs: model.PairList{
			{LeftItem: "Dog", RightItem: "Bark"},
			{LeftItem: "Cat", RightItem: "Meow"},
		},
	}

	d := MatchingToForm(item)

	assert.Equal(t, "A", d.Pairs[0].MatchKey)
	assert.Equal(t, "B", d.Pairs[1].MatchKey)
}

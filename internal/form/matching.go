package form

import (
	"strings"

	"github.com/alclearn/admin-console/internal/model"
)

// MatchingDraft is the editable shape of a matching question. Pair keys run
// A, B, C… matching array position, with no gaps.
type MatchingDraft struct {
	Text       string
	Difficulty model.Difficulty
	Pairs      []model.MatchingPair
}

// NewMatchingDraft returns the blank create-mode draft with two empty pairs.
func NewMatchingDraft() MatchingDraft {
	return MatchingDraft{
		Difficulty: model.DifficultyEasy,
		Pairs: []model.MatchingPair{
			{MatchKey: "A"},
			{MatchKey: "B"},
		},
	}
}

// MatchingToForm converts an API item into its editable draft. The PairList
// decoder has already collapsed both wire shapes to the flat form; items
// that somehow arrive without pairs fall back to the blank two-pair draft.
func MatchingToForm(item model.MatchingItem) MatchingDraft {
	if len(item.Pairs) == 0 {
		d := NewMatchingDraft()
		d.Text = item.Text
		d.Difficulty = item.Difficulty
		return d
	}
	pairs := make([]model.MatchingPair, len(item.Pairs))
	copy(pairs, item.Pairs)
	for i := range pairs {
		if pairs[i].MatchKey == "" {
			pairs[i].MatchKey = model.MatchKeyForIndex(i)
		}
	}
	return MatchingDraft{
		Text:       item.Text,
		Difficulty: item.Difficulty,
		Pairs:      pairs,
	}
}

// AddPair appends an empty pair with the next sequential key.
func (d *MatchingDraft) AddPair() {
	d.Pairs = append(d.Pairs, model.MatchingPair{
		MatchKey: model.MatchKeyForIndex(len(d.Pairs)),
	})
}

// RemovePair deletes pair i and renumbers the remaining keys from A with no
// gaps.
func (d *MatchingDraft) RemovePair(i int) {
	if i < 0 || i >= len(d.Pairs) {
		return
	}
	d.Pairs = append(d.Pairs[:i], d.Pairs[i+1:]...)
	for j := range d.Pairs {
		d.Pairs[j].MatchKey = model.MatchKeyForIndex(j)
	}
}

// Validate blocks submission with a user-facing message.
func (d *MatchingDraft) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return ValidationError("Please enter the question text.")
	}
	if len(d.Pairs) < 2 {
		return ValidationError("Enter at least two pairs.")
	}
	for _, p := range d.Pairs {
		if strings.TrimSpace(p.LeftItem) == "" || strings.TrimSpace(p.RightItem) == "" {
			return ValidationError("Please fill in both sides of every pair.")
		}
	}
	return nil
}

// ToWire serializes the draft, emitting pairs_count alongside the pair
// array. Pair IDs are kept only when editing.
func (d MatchingDraft) ToWire(bookID int64, editing bool) model.MatchingPayload {
	pairs := make([]model.MatchingPair, 0, len(d.Pairs))
	for _, p := range d.Pairs {
		wp := model.MatchingPair{
			MatchKey:  p.MatchKey,
			LeftItem:  strings.TrimSpace(p.LeftItem),
			RightItem: strings.TrimSpace(p.RightItem),
		}
		if editing {
			wp.ID = p.ID
		}
		pairs = append(pairs, wp)
	}
	return model.MatchingPayload{
		Book:       bookID,
		Difficulty: d.Difficulty,
		Text:       strings.TrimSpace(d.Text),
		Pairs:      pairs,
		PairsCount: len(pairs),
	}
}

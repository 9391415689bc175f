package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairListDecodeFlat(t *testing.T) {
	raw := `[
		{"id": 11, "match_key": "A", "left_item": "Hot", "right_item": "Cold"},
		{"id": 12, "match_key": "B", "left_item": "Up", "right_item": "Down"}
	]`

	var pairs PairList
	require.NoError(t, json.Unmarshal([]byte(raw), &pairs))

	require.Len(t, pairs, 2)
	assert.Equal(t, MatchingPair{ID: 11, MatchKey: "A", LeftItem: "Hot", RightItem: "Cold"}, pairs[0])
	assert.Equal(t, MatchingPair{ID: 12, MatchKey: "B", LeftItem: "Up", RightItem: "Down"}, pairs[1])
}

func TestPairListDecodeFlatFillsMissingKeys(t *testing.T) {
	raw := `[
		{"left_item": "Hot", "right_item": "Cold"},
		{"left_item": "Up", "right_item": "Down"},
		{"left_item": "Wet", "right_item": "Dry"}
	]`

	var pairs PairList
	require.NoError(t, json.Unmarshal([]byte(raw), &pairs))

	require.Len(t, pairs, 3)
	assert.Equal(t, "A", pairs[0].MatchKey)
	assert.Equal(t, "B", pairs[1].MatchKey)
	assert.Equal(t, "C", pairs[2].MatchKey)
}

func TestPairListDecodeParallel(t *testing.T) {
	raw := `[
		{"left_item": ["Dog", "Cat"]},
		{"right_item": ["Bark", "Meow"]}
	]`

	var pairs PairList
	require.NoError(t, json.Unmarshal([]byte(raw), &pairs))

	require.Len(t, pairs, 2)
	assert.Equal(t, MatchingPair{MatchKey: "A", LeftItem: "Dog", RightItem: "Bark"}, pairs[0])
	assert.Equal(t, MatchingPair{MatchKey: "B", LeftItem: "Cat", RightItem: "Meow"}, pairs[1])
}

func TestPairListDecodeParallelShortRightColumn(t *testing.T) {
	raw := `[
		{"left_item": ["Dog", "Cat", "Cow"]},
		{"right_item": ["Bark"]}
	]`

	var pairs PairList
	require.NoError(t, json.Unmarshal([]byte(raw), &pairs))

	require.Len(t, pairs, 3)
	assert.Equal(t, "Bark", pairs[0].RightItem)
	assert.Empty(t, pairs[1].RightItem)
	assert.Empty(t, pairs[2].RightItem)
}

func TestPairListBothShapesConverge(t *testing.T) {
	flat := `[
		{"match_key": "A", "left_item": "Dog", "right_item": "Bark"},
		{"match_key": "B", "left_item": "Cat", "right_item": "Meow"}
	]`
	parallel := `[
		{"left_item": ["Dog", "Cat"]},
		{"right_item": ["Bark", "Meow"]}
	]`

	var fromFlat, fromParallel PairList
	require.NoError(t, json.Unmarshal([]byte(flat), &fromFlat))
	require.NoError(t, json.Unmarshal([]byte(parallel), &fromParallel))

	assert.Equal(t, fromFlat, fromParallel)
}

func TestPairListDecodeEmpty(t *testing.T) {
	var pairs PairList
	require.NoError(t, json.Unmarshal([]byte(`[]`), &pairs))
	assert.Empty(t, pairs)
}

func TestPairListDecodeRejectsNonArray(t *testing.T) {
	var pairs PairList
	assert.Error(t, json.Unmarshal([]byte(`{"left_item": "Dog"}`), &pairs))
}

func TestMatchKeyForIndex(t *testing.T) {
	assert.Equal(t, "A", MatchKeyForIndex(0))
	assert.Equal(t, "B", MatchKeyForIndex(1))
	assert.Equal(t, "Z", MatchKeyForIndex(25))
}

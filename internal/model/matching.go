package model

import (
	"encoding/json"
	"fmt"
)

// MatchingPair is one left/right pair of a matching question. MatchKey values
// run A, B, C… matching array position.
type MatchingPair struct {
	ID        int64  `json:"id,omitempty"`
	MatchKey  string `json:"match_key"`
	LeftItem  string `json:"left_item"`
	RightItem string `json:"right_item"`
}

// MatchKeyForIndex returns the sequential letter key for a pair position.
func MatchKeyForIndex(i int) string {
	return string(rune('A' + i))
}

// PairList decodes the two historical wire shapes of matching_pairs:
//
//   - flat: [{"match_key":"A","left_item":"x","right_item":"y"}, …]
//   - parallel: [{"left_item":["x1","x2"]}, {"right_item":["y1","y2"]}]
//
// Both converge to the flat per-pair form; keys are assigned sequentially
// when the wire omits them.
type PairList []MatchingPair

// flatWirePair and parallelWireColumns are the two explicit decode variants.
type flatWirePair struct {
	ID        int64  `json:"id,omitempty"`
	MatchKey  string `json:"match_key"`
	LeftItem  string `json:"left_item"`
	RightItem string `json:"right_item"`
}

type parallelWireColumns struct {
	LeftItem  []string `json:"left_item"`
	RightItem []string `json:"right_item"`
}

func (p *PairList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("matching_pairs: %w", err)
	}
	if len(raw) == 0 {
		*p = nil
		return nil
	}

	if isParallelShape(raw[0]) {
		return p.decodeParallel(raw)
	}
	return p.decodeFlat(raw)
}

// isParallelShape reports whether the first element carries left_item as an
// array, which marks the parallel two-column shape.
func isParallelShape(first json.RawMessage) bool {
	var probe struct {
		LeftItem json.RawMessage `json:"left_item"`
	}
	if err := json.Unmarshal(first, &probe); err != nil {
		return false
	}
	for _, b := range probe.LeftItem {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}

func (p *PairList) decodeParallel(raw []json.RawMessage) error {
	var left parallelWireColumns
	if err := json.Unmarshal(raw[0], &left); err != nil {
		return fmt.Errorf("matching_pairs left column: %w", err)
	}
	var right parallelWireColumns
	if len(raw) > 1 {
		if err := json.Unmarshal(raw[1], &right); err != nil {
			return fmt.Errorf("matching_pairs right column: %w", err)
		}
	}

	pairs := make(PairList, 0, len(left.LeftItem))
	for i, l := range left.LeftItem {
		pair := MatchingPair{
			MatchKey: MatchKeyForIndex(i),
			LeftItem: l,
		}
		if i < len(right.RightItem) {
			pair.RightItem = right.RightItem[i]
		}
		pairs = append(pairs, pair)
	}
	*p = pairs
	return nil
}

func (p *PairList) decodeFlat(raw []json.RawMessage) error {
	pairs := make(PairList, 0, len(raw))
	for i, r := range raw {
		var fp flatWirePair
		if err := json.Unmarshal(r, &fp); err != nil {
			return fmt.Errorf("matching_pairs[%d]: %w", i, err)
		}
		key := fp.MatchKey
		if key == "" {
			key = MatchKeyForIndex(i)
		}
		pairs = append(pairs, MatchingPair{
			ID:        fp.ID,
			MatchKey:  key,
			LeftItem:  fp.LeftItem,
			RightItem: fp.RightItem,
		})
	}
	*p = pairs
	return nil
}

// MatchingItem is a matching question with its normalized pair list.
type MatchingItem struct {
	ID         int64      `json:"id"`
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
	Pairs      PairList   `json:"matching_pairs"`
}

// MatchingPayload is the create/update wire shape for a matching question.
// PairsCount is derivable redundancy the backend expects.
type MatchingPayload struct {
	Book       int64          `json:"book"`
	Difficulty Difficulty     `json:"difficulty"`
	Text       string         `json:"text"`
	Pairs      []MatchingPair `json:"input_matching_pairs"`
	PairsCount int            `json:"pairs_count"`
}

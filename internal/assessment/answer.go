package assessment

import (
	"fmt"
)

// Answer records the selection for one question. Score is derived from the
// selected option values and the question weight at creation time and is
// never mutated independently.
type Answer struct {
	QuestionID        string   `json:"questionId"`
	SelectedOptionIDs []string `json:"selectedOptionIds"`
	Score             float64  `json:"score"`
}

// Answer builds a scored answer for the question from the selected option
// ids. Single-choice questions must select exactly one option; every id must
// belong to the question.
func (q *Question) Answer(optionIDs ...string) (*Answer, error) {
	if q.Type == SingleChoice && len(optionIDs) != 1 {
		return nil, fmt.Errorf("question %s: single-choice requires exactly one selection, got %d", q.ID, len(optionIDs))
	}

	score := 0.0
	selected := make([]string, 0, len(optionIDs))
	for _, id := range optionIDs {
		opt, ok := q.Option(id)
		if !ok {
			return nil, fmt.Errorf("question %s: unknown option %s", q.ID, id)
		}
		score += opt.Value
		selected = append(selected, id)
	}

	return &Answer{
		QuestionID:        q.ID,
		SelectedOptionIDs: selected,
		Score:             score * q.Weight,
	}, nil
}

package assessment

import (
	"fmt"
)

// QuestionType distinguishes how many options an answer may select.
type QuestionType string

const (
	SingleChoice   QuestionType = "single-choice"
	MultipleChoice QuestionType = "multiple-choice"
)

// Section routes a phase 2 question into one of the three sub-scores.
type Section string

const (
	SectionAutomationMaturity Section = "automation-maturity"
	SectionAIOpportunity      Section = "ai-opportunity"
	SectionPeopleAdoption     Section = "people-adoption"
)

// AnswerOption is one selectable choice of a question. Value contributes to
// scoring, Tags only to recommendation aggregation.
type AnswerOption struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Value float64  `json:"value"`
	Tags  []string `json:"tags,omitempty"`
}

// Question is a single catalog entry. Weight multiplies the summed values of
// the selected options when an answer is scored.
type Question struct {
	ID          string         `json:"id"`
	Phase       int            `json:"phase"`
	Section     Section        `json:"section,omitempty"`
	Text        string         `json:"question"`
	Description string         `json:"description,omitempty"`
	Type        QuestionType   `json:"type"`
	Options     []AnswerOption `json:"options"`
	Required    bool           `json:"required"`
	Weight      float64        `json:"weight"`
}

// Option returns the option with the given id, if the question has one.
func (q *Question) Option(id string) (*AnswerOption, bool) {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i], true
		}
	}
	return nil, false
}

// MaxOptionValue returns the highest single-option value of the question.
func (q *Question) MaxOptionValue() float64 {
	max := 0.0
	for _, opt := range q.Options {
		if opt.Value > max {
			max = opt.Value
		}
	}
	return max
}

func (q *Question) validate() error {
	if q.ID == "" {
		return fmt.Errorf("question without id")
	}
	if q.Phase != 1 && q.Phase != 2 {
		return fmt.Errorf("question %s: phase must be 1 or 2, got %d", q.ID, q.Phase)
	}
	if q.Type != SingleChoice && q.Type != MultipleChoice {
		return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("question %s: at least one option is required", q.ID)
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if opt.ID == "" {
			return fmt.Errorf("question %s: option without id", q.ID)
		}
		if _, ok := seen[opt.ID]; ok {
			return fmt.Errorf("question %s: duplicate option id %s", q.ID, opt.ID)
		}
		seen[opt.ID] = struct{}{}
	}
	return nil
}

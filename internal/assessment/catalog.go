package assessment

import (
	"encoding/json"
	"fmt"
	"os"
)

// Phase holds the presentation metadata for one assessment stage.
type Phase struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Emoji         string `json:"emoji"`
	EstimatedTime string `json:"estimatedTime"`
}

const (
	PhaseNotStarted = 0
	PhaseBusiness   = 1
	PhaseReadiness  = 2
	PhaseResults    = 3
)

// Catalog is the immutable, validated question set the assessment runs on.
type Catalog struct {
	questions []*Question
	byID      map[string]*Question
}

// NewCatalog validates the questions and builds a catalog from them.
func NewCatalog(questions []*Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one question")
	}

	byID := make(map[string]*Question, len(questions))
	for _, q := range questions {
		if err := q.validate(); err != nil {
			return nil, err
		}
		if _, ok := byID[q.ID]; ok {
			return nil, fmt.Errorf("duplicate question id %s", q.ID)
		}
		byID[q.ID] = q
	}

	return &Catalog{questions: questions, byID: byID}, nil
}

// Load reads a catalog from a JSON file containing an array of questions.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer file.Close()

	var questions []*Question
	if err := json.NewDecoder(file).Decode(&questions); err != nil {
		return nil, fmt.Errorf("parsing catalog file %q: %w", path, err)
	}

	return NewCatalog(questions)
}

// ByPhase returns the questions of the given answerable phase in catalog
// order. Phases outside 1-2 yield an empty list.
func (c *Catalog) ByPhase(phase int) []*Question {
	var out []*Question
	for _, q := range c.questions {
		if q.Phase == phase {
			out = append(out, q)
		}
	}
	return out
}

// TotalQuestionCount returns the number of questions across both answerable
// phases.
func (c *Catalog) TotalQuestionCount() int {
	return len(c.questions)
}

// Question looks up a question by id.
func (c *Catalog) Question(id string) (*Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Phases returns the presentation metadata for the three stages.
func Phases() []Phase {
	return []Phase{
		{ID: 1, Title: "Business Reality Check", Subtitle: "Let's understand your current situation", Emoji: "🎯", EstimatedTime: "5-7 mins"},
		{ID: 2, Title: "Automation & AI Readiness", Subtitle: "Evaluating your automation potential", Emoji: "🔍", EstimatedTime: "7-10 mins"},
		{ID: 3, Title: "Your Results", Subtitle: "Personalized recommendations", Emoji: "📊", EstimatedTime: "Instant"},
	}
}

// Default returns the built-in question catalog. The set is fixed: any
// change to ids or values shifts the scores disclosed to users.
func Default() *Catalog {
	catalog, err := NewCatalog(defaultQuestions())
	if err != nil {
		// The built-in set is validated by tests; reaching this is a bug.
		panic(err)
	}
	return catalog
}

func defaultQuestions() []*Question {
	return []*Question{
		// Phase 1: business reality check.
		{
			ID:    "q1-1",
			Phase: 1,
			Text:  "Which of these best describes your role?",
			Type:  SingleChoice,
			Options: []AnswerOption{
				{ID: "q1-1-a", Label: "Founder / Director", Value: 3, Tags: []string{"decision-maker"}},
				{ID: "q1-1-b", Label: "Ops / IT / Digital Lead", Value: 3, Tags: []string{"operations", "technical"}},
				{ID: "q1-1-c", Label: "Manager / Team Lead", Value: 2, Tags: []string{"management"}},
				{ID: "q1-1-d", Label: "Other", Value: 1, Tags: []string{"team"}},
			},
			Required: true,
			Weight:   1,
		},
		{
			ID:          "q1-2",
			Phase:       1,
			Text:        "Where does your team lose the most time each week?",
			Description: "Select all that apply to your situation.",
			Type:        MultipleChoice,
			Options: []AnswerOption{
				{ID: "q1-2-a", Label: "Manual data entry", Value: 2, Tags: []string{"automation", "data"}},
				{ID: "q1-2-b", Label: "Email follow-ups / approvals", Value: 2, Tags: []string{"automation", "communication"}},
				{ID: "q1-2-c", Label: "Reporting & spreadsheets", Value: 2, Tags: []string{"automation", "analytics"}},
				{ID: "q1-2-d", Label: "Customer enquiries", Value: 2, Tags: []string{"chatbot", "support"}},
				{ID: "q1-2-e", Label: "Marketing execution", Value: 2, Tags: []string{"automation", "marketing"}},
				{ID: "q1-2-f", Label: "Internal handovers", Value: 2, Tags: []string{"automation", "workflow"}},
			},
			Required: true,
			Weight:   3,
		},
		{
			ID:    "q1-3",
			Phase: 1,
			Text:  "If this problem disappeared tomorrow, what would improve first?",
			Type:  SingleChoice,
			Options: []AnswerOption{
				{ID: "q1-3-a", Label: "Speed", Value: 2, Tags: []string{"efficiency"}},
				{ID: "q1-3-b", Label: "Cost", Value: 3, Tags: []string{"cost-savings"}},
				{ID: "q1-3-c", Label: "Accuracy", Value: 2, Tags: []string{"quality"}},
				{ID: "q1-3-d", Label: "Customer experience", Value: 3, Tags: []string{"customer", "chatbot"}},
				{ID: "q1-3-e", Label: "Staff workload", Value: 2, Tags: []string{"efficiency", "wellbeing"}},
			},
			Required: true,
			Weight:   2,
		},
		{
			ID:    "q1-4",
			Phase: 1,
			Text:  "How would you describe these problems?",
			Type:  SingleChoice,
			Options: []AnswerOption{
				{ID: "q1-4-a", Label: "Annoying but manageable", Value: 1},
				{ID: "q1-4-b", Label: "Slowing growth", Value: 2},
				{ID: "q1-4-c", Label: "Actively costing money", Value: 3},
				{ID: "q1-4-d", Label: "Blocking scale", Value: 4},
			},
			Required: true,
			Weight:   3,
		},
		{
			ID:          "q1-5",
			Phase:       1,
			Text:        "How many hours per week does your team spend on repetitive manual tasks?",
			Description: "Think about data entry, copy-pasting, email follow-ups, report generation, etc.",
			Type:        SingleChoice,
			Options: []AnswerOption{
				{ID: "q1-5-a", Label: "Less than 5 hours", Value: 1},
				{ID: "q1-5-b", Label: "5-10 hours", Value: 2},
				{ID: "q1-5-c", Label: "10-20 hours", Value: 3},
				{ID: "q1-5-d", Label: "20-40 hours", Value: 4},
				{ID: "q1-5-e", Label: "More than 40 hours", Value: 5},
			},
			Required: true,
			Weight:   3,
		},

		// Phase 2A: automation maturity.
		{
			ID:          "q2-1",
			Phase:       2,
			Section:     SectionAutomationMaturity,
			Text:        "What automation tools do you currently use?",
			Description: "Select all that apply.",
			Type:        MultipleChoice,
			Options: []AnswerOption{
				{ID: "q2-1-a", Label: "Zapier / Make / Power Automate", Value: 3, Tags: []string{"automation-user"}},
				{ID: "q2-1-b", Label: "CRM automations (HubSpot, Salesforce, etc.)", Value: 3, Tags: []string{"crm", "automation-user"}},
				{ID: "q2-1-c", Label: "Custom scripts or workflows", Value: 4, Tags: []string{"technical", "automation-user"}},
				{ID: "q2-1-d", Label: "None / Mostly manual", Value: 1, Tags: []string{"automation-opportunity"}},
			},
			Required: true,
			Weight:   2,
		},
		{
			ID:          "q2-2",
			Phase:       2,
			Section:     SectionAutomationMaturity,
			Text:        "Which of these system connections do you currently have?",
			Description: "Select all that apply.",
			Type:        MultipleChoice,
			Options: []AnswerOption{
				{ID: "q2-2-a", Label: "Website → CRM", Value: 2, Tags: []string{"integration"}},
				{ID: "q2-2-b", Label: "CRM → Email marketing", Value: 2, Tags: []string{"integration"}},
				{ID: "q2-2-c", Label: "Finance → Reporting", Value: 2, Tags: []string{"integration"}},
				{ID: "q2-2-d", Label: "None of the above", Value: 0, Tags: []string{"integration-opportunity"}},
			},
			Required: true,
			Weight:   2,
		},
		{
			ID:          "q2-3",
			Phase:       2,
			Section:     SectionAutomationMaturity,
			Text:        "Which of these statements apply to your business?",
			Description: "These are common signs of automation opportunities.",
			Type:        MultipleChoice,
			Options: []AnswerOption{
				{ID: "q2-3-a", Label: `"We export data to Excel regularly"`, Value: 2, Tags: []string{"automation", "data"}},
				{ID: "q2-3-b", Label: `"Someone checks this manually every day"`, Value: 2, Tags: []string{"automation"}},
				{ID: "q2-3-c", Label: `"This process depends on one person"`, Value: 3, Tags: []string{"automation", "risk"}},
				{ID: "q2-3-d", Label: `"We know this shouldn't be manual"`, Value: 2, Tags: []string{"automation"}},
				{ID: "q2-3-e", Label: `"We tried tools but they didn't work"`, Value: 1, Tags: []string{"custom-solution"}},
			},
			Required: true,
			Weight:   2,
		},

		// Phase 2B: AI opportunity scan.
		{
			ID:          "q2-4",
			Phase:       2,
			Section:     SectionAIOpportunity,
			Text:        "Do you have repeated customer questions that could be answered automatically?",
			Description: "Think about FAQs, support tickets, or common inquiries.",
			Type:        SingleChoice,
			Options: []AnswerOption{
				{ID: "q2-4-a", Label: "Yes, many", Value: 4, Tags: []string{"chatbot", "ai-assistant"}},
				{ID: "q2-4-b", Label: "Yes, some", Value: 2, Tags: []string{"chatbot", "ai-assistant"}},
				{ID: "q2-4-c", Label: "Not really", Value: 0},
			},
			Required: true,
			Weight:   3,
		},
		{
			ID:          "q2-5",
			Phase:       2,
			Section:     SectionAIOpportunity,
			Text:        "Do you have documents that require manual review or processing?",
			Description: "Examples: invoices, contracts, applications, forms.",
			Type:        SingleChoice,
			Options: []AnswerOption{
				{ID: "q2-5-a", Label: "Yes, frequently", Value: 4, Tags: []string{"document-processing", "ai"}},
				{ID: "q2-5-b", Label: "Yes, occasionally", Value: 2, Tags: []string{"document-processing", "ai"}},
				{ID: "q2-5-c", Label: "No", Value: 0},
			},
			Required: true,
			Weight:   3,
		},
		{
			ID:          "q2-6",
			Phase:       2,
			Section:     SectionAIOpportunity,
			Text:        "Do you have historical data that you're not currently analysing?",
			Description: "Sales data, customer behaviour, operational metrics, etc.",
			Type:        SingleChoice,
			Options: []AnswerOption{
				{ID: "q2-6-a", Label: "Yes, lots of it", Value: 4, Tags: []string{"analytics", "ai", "insights"}},
				{ID: "q2-6-b", Label: "Yes, some", Value: 2, Tags: []string{"analytics", "ai"}},
				{ID: "q2-6-c", Label: "No / Not sure", Value: 0},
			},
			Required: true,
			Weight:   2,
		},
		{
			ID:          "q2-7",
			Phase:       2,
			Section:     SectionAIOpportunity,
			Text:        "Do staff frequently answer the same internal questions?",
			Description: "Questions about processes, policies, or how to do things.",
			Type:        SingleChoice,
			Options: []AnswerOption{
				{ID: "q2-7-a", Label: "Yes, all the time", Value: 4, Tags: []string{"knowledge-bot", "ai-assistant"}},
				{ID: "q2-7-b", Label: "Yes, sometimes", Value: 2, Tags: []string{"knowledge-bot"}},
				{ID: "q2-7-c", Label: "No", Value: 0},
			},
			Required: true,
			Weight:   2,
		},

		// Phase 2C: people & adoption reality.
		{
			ID:      "q2-8",
			Phase:   2,
			Section: SectionPeopleAdoption,
			Text:    "If automation/AI were introduced tomorrow, how would your team react?",
			Type:    SingleChoice,
			Options: []AnswerOption{
				{ID: "q2-8-a", Label: "Excited", Value: 4, Tags: []string{"ready"}},
				{ID: "q2-8-b", Label: "Nervous but open", Value: 2, Tags: []string{"training-needed"}},
				{ID: "q2-8-c", Label: "Would need training", Value: 2, Tags: []string{"training-needed"}},
				{ID: "q2-8-d", Label: "Would likely resist", Value: 0, Tags: []string{"change-management"}},
			},
			Required: true,
			Weight:   2,
		},
		{
			ID:      "q2-9",
			Phase:   2,
			Section: SectionPeopleAdoption,
			Text:    "How would you rate your team's technical comfort level?",
			Type:    SingleChoice,
			Options: []AnswerOption{
				{ID: "q2-9-a", Label: "Very comfortable with new tech", Value: 4, Tags: []string{"ready"}},
				{ID: "q2-9-b", Label: "Comfortable with guidance", Value: 3, Tags: []string{"training-needed"}},
				{ID: "q2-9-c", Label: "Prefer familiar tools", Value: 1, Tags: []string{"training-needed", "change-management"}},
				{ID: "q2-9-d", Label: "Struggle with new technology", Value: 0, Tags: []string{"change-management"}},
			},
			Required: true,
			Weight:   2,
		},
	}
}

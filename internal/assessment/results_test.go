package assessment

import (
	"testing"
)

func mustAnswer(t *testing.T, catalog *Catalog, questionID string, optionIDs ...string) *Answer {
	t.Helper()
	question, ok := catalog.Question(questionID)
	if !ok {
		t.Fatalf("question %s not in catalog", questionID)
	}
	answer, err := question.Answer(optionIDs...)
	if err != nil {
		t.Fatalf("answering %s: %v", questionID, err)
	}
	return answer
}

func TestComputeResultsEmptyAnswers(t *testing.T) {
	results := Default().ComputeResults(map[string]*Answer{})

	if results.OverallScore != 0 || results.AutomationReadinessScore != 0 ||
		results.AIOpportunityScore != 0 || results.AdoptionReadinessScore != 0 {
		t.Fatalf("expected all scores zero, got %+v", results)
	}
	if results.TimeWastedHoursPerWeek != 0 || results.PotentialROI.EstimatedAnnualSavings != 0 {
		t.Fatalf("expected zero ROI, got %+v", results.PotentialROI)
	}
	if len(results.Recommendations) != 1 || results.Recommendations[0].Title != "Automation Discovery Session" {
		t.Fatalf("expected exactly the fallback recommendation, got %+v", results.Recommendations)
	}
	if results.Recommendations[0].Priority != PriorityMedium {
		t.Fatalf("fallback must be medium priority, got %s", results.Recommendations[0].Priority)
	}
	if len(results.PriorityActions) != 0 {
		t.Fatalf("expected no priority actions, got %v", results.PriorityActions)
	}
}

func TestComputeResultsDeterministic(t *testing.T) {
	catalog := Default()
	answers := map[string]*Answer{
		"q1-2": mustAnswer(t, catalog, "q1-2", "q1-2-a", "q1-2-d"),
		"q1-5": mustAnswer(t, catalog, "q1-5", "q1-5-c"),
		"q2-4": mustAnswer(t, catalog, "q2-4", "q2-4-a"),
		"q2-8": mustAnswer(t, catalog, "q2-8", "q2-8-b"),
	}

	first := catalog.ComputeResults(answers)
	second := catalog.ComputeResults(answers)

	if first.OverallScore != second.OverallScore ||
		first.AutomationReadinessScore != second.AutomationReadinessScore ||
		first.AIOpportunityScore != second.AIOpportunityScore ||
		first.AdoptionReadinessScore != second.AdoptionReadinessScore ||
		first.TimeWastedHoursPerWeek != second.TimeWastedHoursPerWeek ||
		first.PotentialROI != second.PotentialROI {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
	if len(first.Recommendations) != len(second.Recommendations) {
		t.Fatalf("expected identical recommendations")
	}
}

func TestComputeResultsROI(t *testing.T) {
	catalog := Default()
	answers := map[string]*Answer{
		// 20-40 hours bucket maps to the 30 hour midpoint.
		"q1-5": mustAnswer(t, catalog, "q1-5", "q1-5-d"),
	}

	results := catalog.ComputeResults(answers)

	if results.TimeWastedHoursPerWeek != 30 {
		t.Fatalf("expected 30 wasted hours, got %v", results.TimeWastedHoursPerWeek)
	}
	if results.PotentialROI.HoursSavedPerWeek != 18 {
		t.Fatalf("expected 18 saved hours, got %v", results.PotentialROI.HoursSavedPerWeek)
	}
	if results.PotentialROI.EstimatedAnnualSavings != 43200 {
		t.Fatalf("expected 43200 annual savings, got %v", results.PotentialROI.EstimatedAnnualSavings)
	}
}

func TestComputeResultsSubScores(t *testing.T) {
	catalog := Default()

	// AI bucket only: best option of q2-4 (value 4, weight 3) against a
	// max of 4 x 3 gives a full sub-score; overall takes its 0.35 share.
	results := catalog.ComputeResults(map[string]*Answer{
		"q2-4": mustAnswer(t, catalog, "q2-4", "q2-4-a"),
	})
	if results.AIOpportunityScore != 100 {
		t.Fatalf("expected AI sub-score 100, got %v", results.AIOpportunityScore)
	}
	if results.OverallScore != 35 {
		t.Fatalf("expected overall 35, got %v", results.OverallScore)
	}

	// Adoption bucket only.
	results = catalog.ComputeResults(map[string]*Answer{
		"q2-8": mustAnswer(t, catalog, "q2-8", "q2-8-a"),
	})
	if results.AdoptionReadinessScore != 100 {
		t.Fatalf("expected adoption sub-score 100, got %v", results.AdoptionReadinessScore)
	}
	if results.OverallScore != 25 {
		t.Fatalf("expected overall 25, got %v", results.OverallScore)
	}
}

// Characterizes the multiple-choice ceiling: the automation bucket max
// multiplies the best option value by the option count, so a single best
// selection of q2-1 (4 x 2 = 8) is normalized against 4 x 2 x 4 = 32.
func TestComputeResultsMultipleChoiceCeiling(t *testing.T) {
	catalog := Default()
	results := catalog.ComputeResults(map[string]*Answer{
		"q2-1": mustAnswer(t, catalog, "q2-1", "q2-1-c"),
	})

	if results.AutomationReadinessScore != 25 {
		t.Fatalf("expected automation sub-score 25, got %v", results.AutomationReadinessScore)
	}
}

func TestComputeResultsIgnoresUncatalogedAnswers(t *testing.T) {
	catalog := Default()
	results := catalog.ComputeResults(map[string]*Answer{
		"q9-9": {QuestionID: "q9-9", SelectedOptionIDs: []string{"x"}, Score: 40},
	})

	if results.OverallScore != 0 {
		t.Fatalf("expected uncataloged answers to be ignored, got %v", results.OverallScore)
	}
}

func TestAnswerSingleChoiceArity(t *testing.T) {
	catalog := Default()
	question, _ := catalog.Question("q1-4")

	if _, err := question.Answer(); err == nil {
		t.Fatalf("expected error for empty single-choice selection")
	}
	if _, err := question.Answer("q1-4-a", "q1-4-b"); err == nil {
		t.Fatalf("expected error for multi single-choice selection")
	}
	if _, err := question.Answer("nope"); err == nil {
		t.Fatalf("expected error for unknown option")
	}
}

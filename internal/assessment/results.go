package assessment

// Overall score blend across the three sub-scores.
const (
	automationWeight = 0.40
	aiWeight         = 0.35
	adoptionWeight   = 0.25
)

// ROI assumptions: share of wasted hours recoverable through automation,
// blended hourly cost, working weeks per year.
const (
	savedHoursRatio = 0.6
	hourlyRate      = 50
	weeksPerYear    = 48
)

// timeWastedQuestionID is the phase 1 question whose single selection maps
// to an hours-per-week midpoint.
const timeWastedQuestionID = "q1-5"

var timeWastedMidpoints = map[string]float64{
	"q1-5-a": 2.5,
	"q1-5-b": 7.5,
	"q1-5-c": 15,
	"q1-5-d": 30,
	"q1-5-e": 50,
}

// ROI is the derived hours-saved and savings estimate shown in results.
type ROI struct {
	HoursSavedPerWeek      float64 `json:"hoursSavedPerWeek"`
	EstimatedAnnualSavings float64 `json:"estimatedAnnualSavings"`
}

// Results is a pure function of the answers at computation time; it is
// recomputed on demand and never stored in the session.
type Results struct {
	OverallScore             float64          `json:"overallScore"`
	AutomationReadinessScore float64          `json:"automationReadinessScore"`
	AIOpportunityScore       float64          `json:"aiOpportunityScore"`
	AdoptionReadinessScore   float64          `json:"adoptionReadinessScore"`
	TimeWastedHoursPerWeek   float64          `json:"timeWastedHoursPerWeek"`
	PotentialROI             ROI              `json:"potentialROI"`
	Recommendations          []Recommendation `json:"recommendations"`
	PriorityActions          []string         `json:"priorityActions"`
}

type bucket struct {
	score float64
	max   float64
}

func (b bucket) normalized() float64 {
	if b.max <= 0 {
		return 0
	}
	score := b.score / b.max * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ComputeResults scores the answer set against the catalog. Deterministic
// for a fixed answer set; answers for questions outside the catalog are
// ignored.
func (c *Catalog) ComputeResults(answers map[string]*Answer) *Results {
	tagScores := make(map[string]float64)
	var automation, ai, adoption bucket

	for questionID, answer := range answers {
		question, ok := c.Question(questionID)
		if !ok {
			continue
		}

		// Tag accumulation ignores the question weight on purpose: tags
		// feed the recommendation thresholds, not the phase scores.
		for _, optionID := range answer.SelectedOptionIDs {
			opt, ok := question.Option(optionID)
			if !ok {
				continue
			}
			for _, tag := range opt.Tags {
				tagScores[tag] += opt.Value
			}
		}

		if question.Phase == PhaseBusiness || question.Section == SectionAutomationMaturity {
			automation.score += answer.Score
			// The ceiling for multiple-choice assumes the best option
			// repeated across every slot. Kept as-is: it is the formula
			// behind the percentages users have already been shown.
			slots := 1.0
			if question.Type == MultipleChoice {
				slots = float64(len(question.Options))
			}
			automation.max += question.MaxOptionValue() * question.Weight * slots
		}

		if question.Section == SectionAIOpportunity {
			ai.score += answer.Score
			ai.max += question.MaxOptionValue() * question.Weight
		}

		if question.Section == SectionPeopleAdoption {
			adoption.score += answer.Score
			adoption.max += question.MaxOptionValue() * question.Weight
		}
	}

	automationScore := automation.normalized()
	aiScore := ai.normalized()
	adoptionScore := adoption.normalized()

	timeWasted := 0.0
	if answer, ok := answers[timeWastedQuestionID]; ok && len(answer.SelectedOptionIDs) > 0 {
		timeWasted = timeWastedMidpoints[answer.SelectedOptionIDs[0]]
	}

	hoursSaved := timeWasted * savedHoursRatio
	recommendations := generateRecommendations(tagScores)

	return &Results{
		OverallScore:             automationScore*automationWeight + aiScore*aiWeight + adoptionScore*adoptionWeight,
		AutomationReadinessScore: automationScore,
		AIOpportunityScore:       aiScore,
		AdoptionReadinessScore:   adoptionScore,
		TimeWastedHoursPerWeek:   timeWasted,
		PotentialROI: ROI{
			HoursSavedPerWeek:      hoursSaved,
			EstimatedAnnualSavings: hoursSaved * hourlyRate * weeksPerYear,
		},
		Recommendations: recommendations,
		PriorityActions: priorityActions(recommendations),
	}
}

// priorityActions returns up to three high-priority recommendation titles.
func priorityActions(recommendations []Recommendation) []string {
	actions := make([]string, 0, 3)
	for _, r := range recommendations {
		if r.Priority != PriorityHigh {
			continue
		}
		actions = append(actions, r.Title)
		if len(actions) == 3 {
			break
		}
	}
	return actions
}

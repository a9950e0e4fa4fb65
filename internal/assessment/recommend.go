package assessment

import "sort"

// Priority of a recommendation. The rule table only ever emits high or
// medium; low exists for ordering completeness.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Recommendation points the user at a service offering, driven by the tags
// their selected options carried.
type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ServicePath string   `json:"servicePath"`
	Priority    Priority `json:"priority"`
	Tags        []string `json:"tags"`
}

// recommendationRule sums a fixed tag group against two thresholds: emitAt
// decides whether the recommendation fires at all, highAt upgrades it from
// medium to high.
type recommendationRule struct {
	sumTags     []string
	emitAt      float64
	highAt      float64
	title       string
	description string
	servicePath string
	tags        []string
}

var recommendationRules = []recommendationRule{
	{
		sumTags:     []string{"automation", "data", "workflow", "communication", "analytics", "marketing"},
		emitAt:      4,
		highAt:      8,
		title:       "Workflow Automation",
		description: "Your business has significant automation potential. Start with high-volume repetitive tasks to free up your team.",
		servicePath: "/services/business-process-automation",
		tags:        []string{"automation"},
	},
	{
		sumTags:     []string{"chatbot", "support"},
		emitAt:      2,
		highAt:      6,
		title:       "AI-Powered Customer Support",
		description: "A chatbot or voice agent could handle routine inquiries and free up your team for complex issues.",
		servicePath: "/services/business-process-automation",
		tags:        []string{"chatbot", "support"},
	},
	{
		sumTags:     []string{"ai", "document-processing", "analytics", "insights"},
		emitAt:      4,
		highAt:      8,
		title:       "Custom AI Solution",
		description: "Your data and document processing needs could benefit from custom AI models tailored to your business.",
		servicePath: "/services/custom-ai-solutions",
		tags:        []string{"ai", "documents"},
	},
	{
		sumTags:     []string{"knowledge-bot", "ai-assistant"},
		emitAt:      4,
		highAt:      6,
		title:       "Internal Knowledge Assistant",
		description: "An AI assistant trained on your internal documents could help staff find answers quickly.",
		servicePath: "/services/custom-ai-solutions",
		tags:        []string{"knowledge-bot", "ai-assistant"},
	},
	{
		sumTags:     []string{"training-needed", "change-management"},
		emitAt:      2,
		highAt:      4,
		title:       "Training & Change Support",
		description: "Your team could benefit from structured training and change management support for new technology adoption.",
		servicePath: "/services/training-support",
		tags:        []string{"training", "change-management"},
	},
}

var fallbackRecommendation = Recommendation{
	Title:       "Automation Discovery Session",
	Description: "Let us help you identify the best automation opportunities for your specific situation.",
	ServicePath: "/services/business-process-automation",
	Priority:    PriorityMedium,
	Tags:        []string{"discovery"},
}

// generateRecommendations evaluates the rule table against the aggregated
// tag scores, ordered high before medium before low with template order
// preserved among equals. When no rule fires, exactly the discovery-session
// fallback is returned.
func generateRecommendations(tagScores map[string]float64) []Recommendation {
	recommendations := make([]Recommendation, 0, len(recommendationRules))

	for _, rule := range recommendationRules {
		sum := 0.0
		for _, tag := range rule.sumTags {
			sum += tagScores[tag]
		}
		if sum < rule.emitAt {
			continue
		}

		priority := PriorityMedium
		if sum >= rule.highAt {
			priority = PriorityHigh
		}

		recommendations = append(recommendations, Recommendation{
			Title:       rule.title,
			Description: rule.description,
			ServicePath: rule.servicePath,
			Priority:    priority,
			Tags:        rule.tags,
		})
	}

	if len(recommendations) == 0 {
		return []Recommendation{fallbackRecommendation}
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return priorityRank[recommendations[i].Priority] < priorityRank[recommendations[j].Priority]
	})

	return recommendations
}

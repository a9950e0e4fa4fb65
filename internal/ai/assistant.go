package ai

import (
	"context"

	"github.com/intellects/aiready/internal/assessment"
)

// Summary is the narrative wrap-up generated for a completed assessment.
type Summary struct {
	Headline  string
	Narrative string
	NextSteps []string
	Raw       string
}

// Summarizer turns computed results into a short human-readable summary.
type Summarizer interface {
	Summarize(ctx context.Context, results *assessment.Results) (*Summary, error)
}

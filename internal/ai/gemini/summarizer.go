package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/intellects/aiready/internal/ai"
	"github.com/intellects/aiready/internal/assessment"
	"github.com/intellects/aiready/internal/utils"

	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Summarizer renders assessment results into a prompt and parses the
// structured summary Gemini returns.
type Summarizer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

func NewSummarizer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Summarizer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Summarizer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, results *assessment.Results) (*ai.Summary, error) {
	if results == nil {
		return nil, fmt.Errorf("results are required")
	}

	resultsJSON, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal results payload: %w", err)
	}

	prompt := buildPrompt(string(resultsJSON))

	s.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, s.maxLogLen)),
	)

	summary, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	summary.Raw = raw
	return summary, nil
}

func buildPrompt(resultsJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Assessment results:\n{{RESULTS_JSON}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{RESULTS_JSON}}", resultsJSON)
}

func parseResponse(raw string) (*ai.Summary, error) {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &ai.Summary{
		Headline:  coerceString(data["headline"]),
		Narrative: coerceString(data["narrative"]),
		NextSteps: coerceStrings(data["next_steps"]),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := coerceString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

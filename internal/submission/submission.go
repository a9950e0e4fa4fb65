package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/intellects/aiready/internal/assessment"

	"go.uber.org/zap"
)

const (
	defaultWebhookURL = "https://wflow.intellects.tech/webhook/ai_assessment"
	userAgent         = "intellects/aiready"
	contentType       = "application/json"
)

// Payload is the JSON document posted to the assessment webhook.
type Payload struct {
	Answers               map[string]*assessment.Answer `json:"answers"`
	Results               *assessment.Results           `json:"results"`
	StartedAt             string                        `json:"startedAt"`
	CompletedAt           string                        `json:"completedAt"`
	UserAgent             string                        `json:"userAgent"`
	Referrer              string                        `json:"referrer"`
	Email                 string                        `json:"email,omitempty"`
	RequestDetailedReport bool                          `json:"requestDetailedReport"`
}

// NewPayload assembles the submission document from a completed session.
// Timestamps are serialized as ISO-8601. RequestDetailedReport is true iff
// an email is present.
func NewPayload(session *assessment.Session, results *assessment.Results, agent, referrer, email string) *Payload {
	completedAt := ""
	if !session.CompletedAt().IsZero() {
		completedAt = session.CompletedAt().UTC().Format(time.RFC3339)
	}

	return &Payload{
		Answers:               session.Answers(),
		Results:               results,
		StartedAt:             session.StartedAt().UTC().Format(time.RFC3339),
		CompletedAt:           completedAt,
		UserAgent:             agent,
		Referrer:              referrer,
		Email:                 email,
		RequestDetailedReport: email != "",
	}
}

type Client struct {
	ctx        context.Context
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	WebhookURL string
}

func New(ctx context.Context, logger *zap.Logger) *Client {
	return &Client{
		ctx:    ctx,
		logger: logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		UserAgent:  userAgent,
		WebhookURL: defaultWebhookURL,
	}
}

// Submit posts the payload to the webhook and fails on any non-2xx status.
func (c *Client) Submit(payload *Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.UserAgent)

	c.logger.Debug("submitting assessment", zap.String("url", c.WebhookURL), zap.Int("body_length", len(body)))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	return nil
}

// SubmitAsync sends the payload on a detached goroutine. Submission is
// best-effort telemetry: a failure is logged as a warning and never
// surfaced to the results flow, and there is no retry. The returned channel
// closes when the attempt has resolved, for callers that want to wait.
func (c *Client) SubmitAsync(payload *Payload) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := c.Submit(payload); err != nil {
			c.logger.Warn("assessment submission failed", zap.Error(err))
			return
		}
		c.logger.Debug("assessment submitted")
	}()
	return done
}

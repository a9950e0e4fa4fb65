package submission

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/intellects/aiready/internal/assessment"

	"go.uber.org/zap"
)

func completedSession(t *testing.T) (*assessment.Session, *assessment.Results) {
	t.Helper()
	catalog := assessment.Default()
	session := assessment.NewSession(catalog)
	session.Start()

	q, _ := catalog.Question("q1-5")
	answer, err := q.Answer("q1-5-d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := session.RecordAnswer(answer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < catalog.TotalQuestionCount(); i++ {
		session.Advance()
	}

	return session, session.Results()
}

func TestNewPayload(t *testing.T) {
	session, results := completedSession(t)

	payload := NewPayload(session, results, "test-agent", "https://intellects.tech", "jo@example.com")

	if !payload.RequestDetailedReport {
		t.Fatalf("expected detailed report request when email is present")
	}
	if payload.CompletedAt == "" || payload.StartedAt == "" {
		t.Fatalf("expected both timestamps to be set")
	}
	if payload.Answers["q1-5"] == nil || payload.Answers["q1-5"].Score != 12 {
		t.Fatalf("unexpected answers payload: %+v", payload.Answers)
	}
	if payload.Results.TimeWastedHoursPerWeek != 30 {
		t.Fatalf("unexpected results payload: %+v", payload.Results)
	}

	anonymous := NewPayload(session, results, "test-agent", "", "")
	if anonymous.RequestDetailedReport {
		t.Fatalf("expected no detailed report without an email")
	}
}

func TestSubmit(t *testing.T) {
	var received Payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	session, results := completedSession(t)
	client := New(context.Background(), zap.NewNop())
	client.WebhookURL = server.URL

	if err := client.Submit(NewPayload(session, results, "agent", "", "")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if received.Results == nil || received.Results.PotentialROI.EstimatedAnnualSavings != 43200 {
		t.Fatalf("unexpected submitted results: %+v", received.Results)
	}
}

func TestSubmitBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	session, results := completedSession(t)
	client := New(context.Background(), zap.NewNop())
	client.WebhookURL = server.URL

	if err := client.Submit(NewPayload(session, results, "agent", "", "")); err == nil {
		t.Fatalf("expected error on non-2xx status")
	}
}

func TestSubmitAsyncSwallowsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	session, results := completedSession(t)
	client := New(context.Background(), zap.NewNop())
	client.WebhookURL = server.URL

	// Must resolve without surfacing the failure.
	<-client.SubmitAsync(NewPayload(session, results, "agent", "", ""))
}

package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestBuildParams(t *testing.T) {
	q := buildParams(&SearchParams{Search: "Automation Engineer"})

	if got := q.Get("search"); got != "automation engineer" {
		t.Fatalf("expected lowercased search param, got %q", got)
	}
	if q.Has("location") {
		t.Fatalf("expected empty location to be omitted")
	}

	q = buildParams(&SearchParams{Search: "ai", Location: "Australia"})
	if got := q.Get("location"); got != "australia" {
		t.Fatalf("expected location param, got %q", got)
	}
}

func TestSearchDecodesWrappedItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search"); got != "automation" {
			t.Errorf("unexpected search param %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		// One wrapped record, one plain.
		w.Write([]byte(`[
			{"json": {"job_id": "1", "job_title": "Automation Lead", "employer_name": "Acme", "job_country": "AU"}},
			{"job_id": "2", "job_title": "AI Engineer", "job_is_remote": true, "job_city": "Sydney"}
		]`))
	}))
	defer server.Close()

	client := New(context.Background(), zap.NewNop())
	client.SearchURL = server.URL

	listings, err := client.Search(&SearchParams{Search: "Automation"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if listings.Len() != 2 {
		t.Fatalf("expected 2 listings, got %d", listings.Len())
	}
	if listings.Items[0].Title != "Automation Lead" || listings.Items[0].EmployerName != "Acme" {
		t.Fatalf("wrapped record not unwrapped: %+v", listings.Items[0])
	}
	if !listings.Items[1].IsRemote {
		t.Fatalf("plain record not decoded: %+v", listings.Items[1])
	}

	remote := listings.Remote()
	if remote.Len() != 1 || remote.Items[0].ID != "2" {
		t.Fatalf("unexpected remote filter result: %+v", remote.Items)
	}
}

func TestSearchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(context.Background(), zap.NewNop())
	client.SearchURL = server.URL

	if _, err := client.Search(&SearchParams{Search: "ai"}); err == nil {
		t.Fatalf("expected error on non-200 status")
	}
}

func TestListingLocation(t *testing.T) {
	l := &Listing{City: "Sydney", Country: "Australia"}
	if got := l.Location(); got != "Sydney, Australia" {
		t.Fatalf("unexpected location %q", got)
	}
}

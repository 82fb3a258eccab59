package narrative

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/askaralim/nba-stats-api-sub000/internal/domain/story"
	"github.com/askaralim/nba-stats-api-sub000/internal/platform/logging"
)

func testFacts() story.GameFacts {
	return story.GameFacts{
		GameID: "g1",
		Away:   story.TeamFacts{Name: "Nuggets", Points: 104, FieldGoalPct: "44.2", ThreePointersMade: 11, Rebounds: 40, Turnovers: 15},
		Home:   story.TeamFacts{Name: "Thunder", Points: 112, FieldGoalPct: "46.6", ThreePointersMade: 13, Rebounds: 48, Turnovers: 9},
		Quarters: []story.QuarterScore{
			{Period: 1, Score: "27-30"},
			{Period: 2, Score: "26-28"},
		},
		Halftime: "53-58",
		Final:    "104-112",
	}
}

func TestGenerateSummary(t *testing.T) {
	t.Parallel()

	var prompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header=%q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		prompt = string(raw)
		_, _ = w.Write([]byte(`{"choices": [{"text": "  The Thunder outlasted the Nuggets at home.  "}]}`))
	}))
	t.Cleanup(server.Close)

	client := NewCompletionClient(CompletionClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: 2 * time.Second,
	}, logging.NewNop())

	text, err := client.GenerateSummary(context.Background(), testFacts())
	if err != nil {
		t.Fatalf("generate summary: %v", err)
	}
	if text != "The Thunder outlasted the Nuggets at home." {
		t.Fatalf("text=%q", text)
	}
	for _, fragment := range []string{"Nuggets at Thunder", "104-112", "Halftime: 53-58", "FG% 46.6"} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("prompt missing %q: %s", fragment, prompt)
		}
	}
}

func TestGenerateSummary_ErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	client := NewCompletionClient(CompletionClientConfig{BaseURL: server.URL}, logging.NewNop())
	if _, err := client.GenerateSummary(context.Background(), testFacts()); err == nil {
		t.Fatalf("expected error for non-2xx response")
	}
}

func TestGenerateSummary_NoChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	t.Cleanup(server.Close)

	client := NewCompletionClient(CompletionClientConfig{BaseURL: server.URL}, logging.NewNop())
	if _, err := client.GenerateSummary(context.Background(), testFacts()); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestGenerateSummary_UnconfiguredBaseURL(t *testing.T) {
	t.Parallel()

	client := NewCompletionClient(CompletionClientConfig{}, logging.NewNop())
	if _, err := client.GenerateSummary(context.Background(), testFacts()); err == nil {
		t.Fatalf("expected error without base url")
	}
}

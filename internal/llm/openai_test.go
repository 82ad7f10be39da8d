package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkorolev/leadflow/internal/model"
)

func testRequest() ReportRequest {
	return ReportRequest{
		Submission: model.Submission{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Phone:   "+1 555 010 0199",
			Website: "https://example.com",
		},
		Preflight: &model.SiteCheck{
			URL:          "https://example.com",
			Reachable:    true,
			StatusCode:   200,
			Title:        "Example Domain",
			RobotsAllows: true,
		},
	}
}

func newCompatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{
			"choices": [{"message": {"role": "assistant", "content": %q}}],
			"usage": {"total_tokens": 42}
		}`, content)
	}))
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestGenerateReport(t *testing.T) {
	server := newCompatServer(t, "# SEO Audit\n\nFindings follow.")
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Model:   "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}

	resp, err := provider.GenerateReport(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if !strings.HasPrefix(resp.Markdown, "# SEO Audit") {
		t.Errorf("Unexpected report: %q", resp.Markdown)
	}
	if resp.TokensUsed != 42 {
		t.Errorf("Expected 42 tokens, got %d", resp.TokensUsed)
	}
	if resp.Model != "gpt-4o-mini" {
		t.Errorf("Unexpected model: %s", resp.Model)
	}
}

func TestGenerateReport_EmptyContent(t *testing.T) {
	server := newCompatServer(t, "   ")
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}

	if _, err := provider.GenerateReport(context.Background(), testRequest()); err == nil {
		t.Fatal("Expected error for empty report")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testRequest())

	for _, want := range []string{"Ada Lovelace", "https://example.com", "Example Domain", "markdown"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to mention %q", want)
		}
	}
}

func TestBuildPrompt_NoWebsite(t *testing.T) {
	req := testRequest()
	req.Submission.Website = ""
	req.Preflight = nil

	prompt := BuildPrompt(req)
	if !strings.Contains(prompt, "(not provided)") {
		t.Error("Expected missing website marker")
	}
}

func TestNewProvider_Factory(t *testing.T) {
	if p, err := NewProvider(Config{}); err != nil || p != nil {
		t.Errorf("Expected disabled provider for empty name, got %v, %v", p, err)
	}

	if _, err := NewProvider(Config{Provider: "openai", APIKey: "k"}); err != nil {
		t.Errorf("Expected openai provider, got error %v", err)
	}

	if _, err := NewProvider(Config{Provider: "mystery"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

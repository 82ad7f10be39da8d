package preflight

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkorolev/leadflow/internal/model"
)

func newTestChecker() *Checker {
	cfg := model.DefaultConfig()
	return NewChecker(cfg)
}

func TestCheck_ReachableSite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.Header().Set("Content-Type", "text/html")
			_, _ = fmt.Fprint(w, "<html><head><title>Acme Widgets</title></head><body>hi</body></html>")
		}
	}))
	defer server.Close()

	check := newTestChecker().Check(context.Background(), server.URL)
	if !check.Reachable {
		t.Fatalf("Expected reachable, got %+v", check)
	}
	if check.Title != "Acme Widgets" {
		t.Errorf("Expected title extracted, got %q", check.Title)
	}
	if !check.RobotsAllows {
		t.Error("Expected robots to allow with missing robots.txt")
	}
	if check.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", check.StatusCode)
	}
}

func TestCheck_RobotsDisallows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /\n")
			return
		}
		t.Errorf("Page fetched despite robots.txt disallow: %s", r.URL.Path)
	}))
	defer server.Close()

	check := newTestChecker().Check(context.Background(), server.URL+"/private")
	if check.RobotsAllows {
		t.Fatalf("Expected robots disallow, got %+v", check)
	}
	if check.Reachable {
		t.Error("Expected no reachability claim when fetch was skipped")
	}
	if check.Warning == "" {
		t.Error("Expected a warning explaining the skip")
	}
}

func TestCheck_UnreachableSite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	check := newTestChecker().Check(context.Background(), server.URL)
	if check.Reachable {
		t.Fatalf("Expected unreachable, got %+v", check)
	}
	if check.Warning == "" {
		t.Error("Expected warning for unreachable site")
	}
}

func TestCheck_InvalidURL(t *testing.T) {
	check := newTestChecker().Check(context.Background(), "::bad::")
	if check.Reachable {
		t.Fatal("Expected not reachable for invalid URL")
	}
	if check.Warning == "" {
		t.Error("Expected warning for invalid URL")
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"simple", "<html><head><title>Hello</title></head></html>", "Hello"},
		{"whitespace", "<title>  Padded  </title>", "Padded"},
		{"missing", "<html><body>no title</body></html>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTitle(tt.html); got != tt.want {
				t.Errorf("extractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

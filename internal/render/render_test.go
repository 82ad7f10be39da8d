package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkorolev/leadflow/internal/model"
)

func testReport(md string) *model.Report {
	return &model.Report{
		Subject:     "example.com",
		FullReport:  md,
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:      model.SourceRemote,
	}
}

func TestHTML_Heading(t *testing.T) {
	r := NewRenderer(true)
	out := string(r.HTML(testReport("# Hello")))
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Hello") {
		t.Errorf("Expected top-level heading in output, got %s", out)
	}
}

func TestHTML_RichText(t *testing.T) {
	md := strings.Join([]string{
		"Some *emphasis* and a paragraph.",
		"",
		"- first",
		"- second",
		"",
		"| Metric | Value |",
		"| ------ | ----- |",
		"| Speed  | 92    |",
	}, "\n")

	r := NewRenderer(true)
	out := string(r.HTML(testReport(md)))

	for _, want := range []string{"<em>emphasis</em>", "<ul>", "<li>first</li>", "<table>", "<td>Speed</td>"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in rendered HTML, got:\n%s", want, out)
		}
	}
}

func TestHTML_SanitizesScript(t *testing.T) {
	r := NewRenderer(true)
	out := string(r.HTML(testReport("hello <script>alert(1)</script> world")))
	if strings.Contains(out, "<script>") {
		t.Errorf("Expected script stripped, got %s", out)
	}
}

func TestWriteMarkdown_Footer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	r := NewRenderer(true)
	if err := r.WriteMarkdown(testReport("# Report"), path); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# Report\n") {
		t.Errorf("Expected report body first, got %s", content)
	}
	if !strings.Contains(content, "_Generated 2025-06-01 12:00 UTC via remote._") {
		t.Errorf("Expected footer, got %s", content)
	}
}

func TestWriteMarkdown_NoFooter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	r := NewRenderer(false)
	if err := r.WriteMarkdown(testReport("# Report"), path); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "_Generated") {
		t.Errorf("Expected no footer, got %s", data)
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	r := NewRenderer(true)
	if err := r.WriteJSON(testReport("# Report"), path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"full_report": "# Report"`) {
		t.Errorf("Expected full_report field, got %s", data)
	}
}

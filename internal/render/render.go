// Package render turns a generated report into its output forms:
// sanitized HTML for the page, markdown and JSON artifacts on disk,
// and a short terminal summary.
package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pkorolev/leadflow/internal/model"
)

// Renderer renders reports. Safe for concurrent use.
type Renderer struct {
	includeFooter bool
	policy        *bluemonday.Policy
}

// NewRenderer creates a renderer. includeFooter controls the
// attribution footer on markdown artifacts.
func NewRenderer(includeFooter bool) *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowTables()

	return &Renderer{
		includeFooter: includeFooter,
		policy:        policy,
	}
}

// HTML renders the report's markdown to sanitized HTML fragments
// supporting paragraphs, emphasis, lists, and tables.
func (r *Renderer) HTML(report *model.Report) []byte {
	// A parser instance cannot be reused across documents.
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(report.FullReport))

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank,
	})
	raw := markdown.Render(doc, renderer)

	return r.policy.SanitizeBytes(raw)
}

// WriteMarkdown writes the raw markdown report to path.
func (r *Renderer) WriteMarkdown(report *model.Report, path string) error {
	var b strings.Builder
	b.WriteString(report.FullReport)
	if !strings.HasSuffix(report.FullReport, "\n") {
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("\n---\n\n")
		b.WriteString(fmt.Sprintf("_Generated %s via %s._\n",
			report.GeneratedAt.Format("2006-01-02 15:04 UTC"), report.Source))
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// WriteJSON writes the full report structure to path.
func (r *Renderer) WriteJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// Summary prints a short report summary to stdout.
func (r *Renderer) Summary(report *model.Report) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("  Report: %s\n", report.Subject)
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  Source:     %s\n", report.Source)
	fmt.Printf("  Generated:  %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Printf("  Length:     %d characters\n", len(report.FullReport))
	if report.Preflight != nil {
		fmt.Printf("  Website:    %s (reachable: %v)\n", report.Preflight.URL, report.Preflight.Reachable)
	}
	fmt.Println()
}

// Package llm generates reports locally through an LLM provider when
// no remote report endpoint is in play.
package llm

import (
	"context"
	"fmt"

	"github.com/pkorolev/leadflow/internal/model"
)

// Provider is an LLM backend able to write an SEO report.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// GenerateReport writes a markdown report for the lead.
	GenerateReport(ctx context.Context, req ReportRequest) (*ReportResponse, error)

	// IsAvailable checks the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// ReportRequest is the input for report generation.
type ReportRequest struct {
	// Submission is the lead the report is for.
	Submission model.Submission

	// Preflight carries the optional website check result.
	Preflight *model.SiteCheck

	// Prompt overrides the default prompt when non-empty.
	Prompt string

	// Model selects a provider-specific model.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// ReportResponse is the generated report.
type ReportResponse struct {
	// Markdown is the full report text.
	Markdown string

	// Model is the model that produced it.
	Model string

	// TokensUsed tracks token consumption.
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled).
	Provider string

	// Model name (provider-specific).
	Model string

	// APIKey authenticates against the provider.
	APIKey string

	// BaseURL points at an OpenAI-compatible endpoint when set.
	BaseURL string

	// Timeout for API requests, in seconds.
	Timeout int

	// MaxTokens for response generation.
	MaxTokens int
}

// DefaultConfig returns sensible defaults (provider disabled).
func DefaultConfig() Config {
	return Config{
		Timeout:   30,
		MaxTokens: 2000,
	}
}

// BuildPrompt constructs the default report prompt from the lead and
// its preflight result.
func BuildPrompt(req ReportRequest) string {
	prompt := fmt.Sprintf(`You are an SEO consultant writing a first-pass audit report for a new lead.

Write the report in markdown. Use a top-level heading, short sections,
bullet lists where they help, and a summary table of quick wins.
Address the reader directly and keep the tone professional.

Lead:
- Name: %s
- Website: %s
`, req.Submission.Name, websiteOrNone(req.Submission.Website))

	if pf := req.Preflight; pf != nil {
		prompt += fmt.Sprintf(`
Site check results:
- Reachable: %v (HTTP %d)
- Page title: %q
- robots.txt allows crawling: %v
`, pf.Reachable, pf.StatusCode, pf.Title, pf.RobotsAllows)
		if pf.Warning != "" {
			prompt += fmt.Sprintf("- Warning: %s\n", pf.Warning)
		}
	}

	prompt += "\nBase every observation on the data above; say so explicitly when data is missing rather than inventing findings."
	return prompt
}

func websiteOrNone(website string) string {
	if website == "" {
		return "(not provided)"
	}
	return website
}

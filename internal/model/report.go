package model

import "time"

// ReportSource identifies where a report came from.
type ReportSource string

const (
	SourceRemote ReportSource = "remote" // remote report-generation endpoint
	SourceLocal  ReportSource = "local"  // locally generated via an LLM provider
	SourceCache  ReportSource = "cache"  // reused from the report cache
)

// Report is the generated analysis for one submission. It is replaced
// wholesale on each successful submission, never merged or appended.
type Report struct {
	Subject     string       `json:"subject"`               // e.g. "example.com"
	FullReport  string       `json:"full_report"`           // markdown-formatted text
	GeneratedAt time.Time    `json:"generated_at"`          // when the report was produced
	Source      ReportSource `json:"source"`                // remote, local, or cache
	Preflight   *SiteCheck   `json:"preflight,omitempty"`   // optional website preflight
}

// SiteCheck holds the result of the optional website preflight.
type SiteCheck struct {
	URL          string `json:"url"`
	FinalURL     string `json:"final_url,omitempty"`
	Reachable    bool   `json:"reachable"`
	StatusCode   int    `json:"status_code,omitempty"`
	Title        string `json:"title,omitempty"`
	RobotsAllows bool   `json:"robots_allows"`
	Warning      string `json:"warning,omitempty"`
}

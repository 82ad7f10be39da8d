package model

import (
	"net/url"
	"strings"
)

// Submission represents one lead captured from the contact form.
// It is constructed at submit time, validated before transmission,
// and discarded once the request completes.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website,omitempty"` // optional
}

// Subject derives a human-readable subject for the submission's report.
// Prefers the website host, falls back to the lead's name.
func (s Submission) Subject() string {
	if s.Website != "" {
		if parsed, err := url.Parse(s.Website); err == nil && parsed.Host != "" {
			return parsed.Host
		}
	}
	return strings.TrimSpace(s.Name)
}

// Identity returns the stable identity of the lead used for cache keying.
func (s Submission) Identity() string {
	return strings.ToLower(strings.TrimSpace(s.Email)) + "|" + strings.TrimSpace(s.Website)
}

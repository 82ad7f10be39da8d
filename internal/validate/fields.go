package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/pkorolev/leadflow/internal/model"
)

const (
	minNameLen  = 2
	minPhoneLen = 10
)

// emailPattern matches the same grammar browsers apply to input[type=email].
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a field name to its user-visible validation message.
// A non-empty map blocks submission before the network layer.
type FieldErrors map[string]string

// Fields returns the failing field names in stable order.
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Error implements the error interface with a stable field order.
func (f FieldErrors) Error() string {
	fields := f.Fields()

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, f[field]))
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Submission validates raw form field values. It returns nil when the
// submission may proceed to the network layer.
func Submission(s model.Submission) FieldErrors {
	errs := FieldErrors{}

	if len(strings.TrimSpace(s.Name)) < minNameLen {
		errs["name"] = fmt.Sprintf("name must be at least %d characters", minNameLen)
	}

	if !emailPattern.MatchString(strings.TrimSpace(s.Email)) {
		errs["email"] = "enter a valid email address"
	}

	if len(strings.TrimSpace(s.Phone)) < minPhoneLen {
		errs["phone"] = fmt.Sprintf("phone must be at least %d characters", minPhoneLen)
	}

	// Website is optional; when present it must parse as an http(s) URL.
	if website := strings.TrimSpace(s.Website); website != "" {
		if _, err := ParseWebsite(website); err != nil {
			errs["website"] = "enter a valid website URL"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ParseWebsite normalizes and parses a website field value. A missing
// scheme defaults to https, matching what visitors actually type.
func ParseWebsite(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty URL")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s", parsed.Scheme)
	}
	if parsed.Host == "" || !strings.Contains(parsed.Host, ".") {
		return nil, fmt.Errorf("missing host")
	}
	return parsed, nil
}

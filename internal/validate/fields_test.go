package validate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pkorolev/leadflow/internal/model"
)

func valid() model.Submission {
	return model.Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+1 555 010 0199",
		Website: "https://example.com",
	}
}

func TestSubmission_Valid(t *testing.T) {
	if errs := Submission(valid()); errs != nil {
		t.Fatalf("Expected no errors, got %v", errs)
	}
}

func TestSubmission_ValidWithoutWebsite(t *testing.T) {
	s := valid()
	s.Website = ""
	if errs := Submission(s); errs != nil {
		t.Fatalf("Expected no errors for empty website, got %v", errs)
	}
}

func TestSubmission_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Submission)
		field  string
	}{
		{"short name", func(s *model.Submission) { s.Name = "A" }, "name"},
		{"whitespace name", func(s *model.Submission) { s.Name = "  a  " }, "name"},
		{"missing at sign", func(s *model.Submission) { s.Email = "ada.example.com" }, "email"},
		{"missing domain dot", func(s *model.Submission) { s.Email = "ada@example" }, "email"},
		{"space in email", func(s *model.Submission) { s.Email = "ada lovelace@example.com" }, "email"},
		{"short phone", func(s *model.Submission) { s.Phone = "555-0101" }, "phone"},
		{"malformed website", func(s *model.Submission) { s.Website = "not a url" }, "website"},
		{"schemeless no dot", func(s *model.Submission) { s.Website = "localhost" }, "website"},
		{"ftp website", func(s *model.Submission) { s.Website = "ftp://example.com" }, "website"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			errs := Submission(s)
			if errs == nil {
				t.Fatal("Expected validation errors, got nil")
			}
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("Expected error on field %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestSubmission_AllFieldsInvalid(t *testing.T) {
	errs := Submission(model.Submission{Website: "ftp://example.com"})
	want := FieldErrors{
		"name":    "name must be at least 2 characters",
		"email":   "enter a valid email address",
		"phone":   "phone must be at least 10 characters",
		"website": "enter a valid website URL",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("Field errors mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmission_ErrorMessage(t *testing.T) {
	s := valid()
	s.Name = "A"
	s.Phone = "123"
	errs := Submission(s)
	if errs == nil {
		t.Fatal("Expected errors")
	}
	msg := errs.Error()
	if !strings.HasPrefix(msg, "invalid submission: ") {
		t.Errorf("Unexpected prefix: %s", msg)
	}
	// Field order is stable (sorted).
	if strings.Index(msg, "name:") > strings.Index(msg, "phone:") {
		t.Errorf("Expected sorted field order, got %s", msg)
	}
}

func TestParseWebsite_DefaultsScheme(t *testing.T) {
	parsed, err := ParseWebsite("example.com/path")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if parsed.Scheme != "https" {
		t.Errorf("Expected https scheme, got %s", parsed.Scheme)
	}
	if parsed.Host != "example.com" {
		t.Errorf("Expected host example.com, got %s", parsed.Host)
	}
}

package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/pkorolev/leadflow/internal/model"
)

func testSubmission() model.Submission {
	return model.Submission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+1 555 010 0199",
		Website: "https://example.com",
	}
}

func testReport() *model.Report {
	return &model.Report{
		Subject:     "example.com",
		FullReport:  "# Report",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:      model.SourceRemote,
	}
}

func TestKey_StableAndPrefixed(t *testing.T) {
	a := Key("ada@example.com|https://example.com")
	b := Key("ada@example.com|https://example.com")
	if a != b {
		t.Error("Expected identical keys for identical identities")
	}
	if !strings.HasPrefix(a, "leadflow:v1:") {
		t.Errorf("Expected versioned prefix, got %s", a)
	}
	if Key("other@example.com|") == a {
		t.Error("Expected distinct keys for distinct identities")
	}
}

func TestReportCache_RoundTrip(t *testing.T) {
	c := NewReportCache(t.TempDir(), time.Hour)
	sub := testSubmission()

	if got := c.Lookup(sub); got != nil {
		t.Fatalf("Expected miss on empty cache, got %+v", got)
	}

	if err := c.Store(sub, testReport()); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got := c.Lookup(sub)
	if got == nil {
		t.Fatal("Expected hit after store")
	}
	if got.FullReport != "# Report" {
		t.Errorf("Unexpected report text: %q", got.FullReport)
	}
	if got.Source != model.SourceCache {
		t.Errorf("Expected cache source marker, got %s", got.Source)
	}
}

func TestReportCache_DiskSurvivesMemoryLoss(t *testing.T) {
	dir := t.TempDir()
	sub := testSubmission()

	first := NewReportCache(dir, time.Hour)
	if err := first.Store(sub, testReport()); err != nil {
		t.Fatalf("Store: %v", err)
	}

	// A fresh cache instance has an empty memory layer.
	second := NewReportCache(dir, time.Hour)
	if got := second.Lookup(sub); got == nil {
		t.Fatal("Expected disk hit from a fresh instance")
	}
}

func TestReportCache_Invalidate(t *testing.T) {
	c := NewReportCache(t.TempDir(), time.Hour)
	sub := testSubmission()

	if err := c.Store(sub, testReport()); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := c.Invalidate(sub); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if got := c.Lookup(sub); got != nil {
		t.Errorf("Expected miss after invalidation, got %+v", got)
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("k", []byte("v"), -time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected expired entry to miss")
	}
}

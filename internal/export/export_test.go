package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkorolev/leadflow/internal/model"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func testReport(md string) *model.Report {
	return &model.Report{
		Subject:     "example.com",
		FullReport:  md,
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:      model.SourceRemote,
	}
}

func TestCopy_Verbatim(t *testing.T) {
	// Markdown markup must survive the copy byte-for-byte.
	md := "# SEO Report\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\n*emphasis*\n"
	cb := &fakeClipboard{}

	if err := Copy(cb, testReport(md)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cb.text != md {
		t.Errorf("Expected clipboard to hold exact report text.\nwant: %q\ngot:  %q", md, cb.text)
	}
}

func TestCopy_Denied(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("clipboard access denied")}

	err := Copy(cb, testReport("# Hello"))
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var exportErr *Error
	if !errors.As(err, &exportErr) {
		t.Fatalf("Expected export.Error, got %T", err)
	}
	if exportErr.Op != "copy" {
		t.Errorf("Expected op copy, got %s", exportErr.Op)
	}
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seo-report.pdf")

	err := WritePDF(testReport("# SEO Report\n\nA paragraph.\n"), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Expected a PDF header, got %q", data[:min(len(data), 8)])
	}
}

func TestWritePDF_BadPath(t *testing.T) {
	err := WritePDF(testReport("# Hello"), filepath.Join(t.TempDir(), "missing", "out.pdf"))
	if err == nil {
		t.Fatal("Expected error for unwritable path, got nil")
	}

	var exportErr *Error
	if !errors.As(err, &exportErr) {
		t.Fatalf("Expected export.Error, got %T", err)
	}
	if exportErr.Op != "pdf" {
		t.Errorf("Expected op pdf, got %s", exportErr.Op)
	}
}

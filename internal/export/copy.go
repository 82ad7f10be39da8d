package export

import (
	"github.com/atotto/clipboard"

	"github.com/pkorolev/leadflow/internal/model"
)

// Clipboard is the write-only clipboard surface, injectable for tests
// and headless environments.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the host clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Copy places the raw report text verbatim onto the clipboard. No
// markdown stripping, no trimming.
func Copy(cb Clipboard, report *model.Report) error {
	if err := cb.WriteAll(report.FullReport); err != nil {
		return &Error{Op: "copy", Err: err}
	}
	return nil
}

package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"pkt.systems/mdf"
	"pkt.systems/mdf/pdf"

	"github.com/pkorolev/leadflow/internal/model"
)

// RenderPDF renders the report's markdown to a paginated A4 PDF on w.
// This walks the markdown structure directly, so the result is
// text-selectable rather than a raster snapshot.
func RenderPDF(report *model.Report, w io.Writer) error {
	cfg := pdf.DefaultConfig()
	cfg.PageSize = "A4"
	cfg.FontSize = 12

	err := pdf.Render(pdf.RenderRequest{
		Reader: strings.NewReader(report.FullReport),
		Writer: w,
		Theme:  mdf.DefaultTheme(),
		Config: cfg,
	})
	if err != nil {
		return &Error{Op: "pdf", Err: err}
	}
	return nil
}

// WritePDF renders the report PDF to a file at path.
func WritePDF(report *model.Report, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: "pdf", Err: fmt.Errorf("create file: %w", err)}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &Error{Op: "pdf", Err: fmt.Errorf("close file: %w", closeErr)}
		}
	}()

	return RenderPDF(report, f)
}

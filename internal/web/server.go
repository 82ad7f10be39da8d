// Package web serves the lead-capture landing page and its JSON API.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/pkorolev/leadflow/internal/model"
	"github.com/pkorolev/leadflow/internal/pipeline"
	"github.com/pkorolev/leadflow/internal/worker"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server hosts the landing page, the lead submission endpoint, and the
// PDF export endpoint.
type Server struct {
	cfg      *model.Config
	pipeline *pipeline.Pipeline
	limiter  *worker.KeyLimiter
	tmpl     *template.Template
	mux      *http.ServeMux
}

// New builds a Server around an existing pipeline.
func New(cfg *model.Config, p *pipeline.Pipeline) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		pipeline: p,
		limiter:  worker.NewKeyLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
		tmpl:     tmpl,
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/leads", s.handleLead)
	s.mux.HandleFunc("/api/export/pdf", s.handleExportPDF)
	s.mux.HandleFunc("/healthz", s.handleHealthz)

	return s, nil
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	fmt.Fprintln(os.Stderr, "Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

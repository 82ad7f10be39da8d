// Package pipeline wires the report path end to end: cache lookup,
// website preflight, report generation (remote endpoint or local LLM),
// cache store, and artifact rendering.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/pkorolev/leadflow/internal/cache"
	"github.com/pkorolev/leadflow/internal/client"
	"github.com/pkorolev/leadflow/internal/export"
	"github.com/pkorolev/leadflow/internal/llm"
	"github.com/pkorolev/leadflow/internal/model"
	"github.com/pkorolev/leadflow/internal/preflight"
	"github.com/pkorolev/leadflow/internal/render"
	"github.com/pkorolev/leadflow/internal/validate"
)

// Pipeline generates reports for leads. It implements flow.Generator.
type Pipeline struct {
	remote   *client.Client
	local    llm.Provider // nil unless an LLM provider is configured
	checker  *preflight.Checker
	reports  *cache.ReportCache
	renderer *render.Renderer
	config   *model.Config
}

// NewPipeline creates a pipeline from configuration.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	var local llm.Provider
	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return nil, fmt.Errorf("init LLM provider: %w", err)
		}
		local = provider
	}

	var checker *preflight.Checker
	if cfg.Preflight.Enabled {
		checker = preflight.NewChecker(cfg)
	}

	var reports *cache.ReportCache
	if cfg.Cache.Enabled {
		reports = cache.NewReportCache(cfg.Cache.Dir, cfg.Cache.TTL)
	}

	return &Pipeline{
		remote:   client.New(cfg),
		local:    local,
		checker:  checker,
		reports:  reports,
		renderer: render.NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}, nil
}

// Generate produces the report for a validated submission: cache hit,
// or preflight plus one generation call. Exactly one network call is
// made per cache miss.
func (p *Pipeline) Generate(ctx context.Context, sub model.Submission) (*model.Report, error) {
	if p.reports != nil {
		if cached := p.reports.Lookup(sub); cached != nil {
			return cached, nil
		}
	}

	var check *model.SiteCheck
	if p.checker != nil && sub.Website != "" {
		check = p.checker.Check(ctx, sub.Website)
		if p.config.Output.Verbose && check.Warning != "" {
			fmt.Fprintf(os.Stderr, "Warning: preflight: %s\n", check.Warning)
		}
	}

	report, err := p.generate(ctx, sub, check)
	if err != nil {
		return nil, err
	}
	report.Preflight = check

	if p.reports != nil {
		if err := p.reports.Store(sub, report); err != nil && p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "Warning: cache store failed: %v\n", err)
		}
	}

	return report, nil
}

func (p *Pipeline) generate(ctx context.Context, sub model.Submission, check *model.SiteCheck) (*model.Report, error) {
	if p.local == nil {
		return p.remote.Generate(ctx, sub)
	}

	resp, err := p.local.GenerateReport(ctx, llm.ReportRequest{
		Submission: sub,
		Preflight:  check,
	})
	if err != nil {
		return nil, fmt.Errorf("generate report via %s: %w", p.local.Name(), err)
	}

	return &model.Report{
		Subject:     sub.Subject(),
		FullReport:  resp.Markdown,
		GeneratedAt: nowUTC(),
		Source:      model.SourceLocal,
	}, nil
}

// Submit validates and generates in one step. Batch processing uses
// this directly; the interactive surfaces go through flow.Flow.
func (p *Pipeline) Submit(ctx context.Context, sub model.Submission) (*model.Report, error) {
	if errs := validate.Submission(sub); errs != nil {
		return nil, errs
	}
	return p.Generate(ctx, sub)
}

// RenderReport writes the requested artifacts and prints the summary.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath, pdfPath string) error {
	verbose := p.config.Output.Verbose

	if jsonPath != "" {
		if err := p.renderer.WriteJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.WriteMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if pdfPath != "" {
		if err := export.WritePDF(report, pdfPath); err != nil {
			return fmt.Errorf("render PDF: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote PDF: %s\n", pdfPath)
		}
	}

	p.renderer.Summary(report)
	return nil
}

// Renderer exposes the pipeline's renderer for the HTTP surface.
func (p *Pipeline) Renderer() *render.Renderer {
	return p.renderer
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkorolev/leadflow/internal/pipeline"
	"github.com/pkorolev/leadflow/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Submit multiple leads from a file in parallel",
	Long: `Batch processes multiple leads concurrently:
- Read leads from an input file (name,email,phone[,website] per line)
- Validate and submit leads in parallel with configurable worker count
- Throttle submissions per lead identity to respect service limits
- Write individual report artifacts for each lead

Example:
  leadflow batch leads.txt
  leadflow batch leads.txt --concurrency 10 --output-dir ./reports
  leadflow batch leads.txt --concurrency 5 --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./leadflow-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Inherit flags from submit command
	batchCmd.Flags().DurationVar(&timeout, "submit-timeout", 30*time.Second, "timeout for individual submissions")
	batchCmd.Flags().StringVar(&endpoint, "endpoint", "", "report service endpoint (overrides config)")
	batchCmd.Flags().StringVar(&userAgent, "ua", "Leadflow/0.1 (+https://github.com/pkorolev/leadflow)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh submissions)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	batchCmd.Flags().BoolVar(&noPreflight, "no-preflight", false, "skip the website reachability preflight")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate reports locally with an LLM instead of the remote service")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Leadflow Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	if llmEnabled {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", llmProvider, llmModel)
	}

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("configure pipeline: %w", err)
	}

	// Create batch processor
	processor := worker.NewBatchProcessor(p, concurrency)

	// Process leads
	fmt.Fprintf(os.Stderr, "⚙️  Reading leads from file...\n")
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d leads\n", len(results))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Processing leads with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	// Process results
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Lead.Email, result.Error)
			continue
		}

		successCount++

		// Generate output file names
		slug := sanitizeFilename(result.Lead.Email)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")
		pdfPath := filepath.Join(outputDir, slug+".pdf")

		// Render report artifacts
		if err := p.RenderReport(result.Report, jsonPath, mdPath, pdfPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write report: %v\n", result.Lead.Email, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%s)\n", result.Report.Subject, result.Report.Source)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d leads\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// sanitizeFilename sanitizes a string for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		"@", "_at_",
		" ", "-",
	)
	s = replacer.Replace(s)

	// Limit length
	if len(s) > 100 {
		s = s[:100]
	}

	return s
}

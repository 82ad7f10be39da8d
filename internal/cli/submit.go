package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkorolev/leadflow/internal/export"
	"github.com/pkorolev/leadflow/internal/flow"
	"github.com/pkorolev/leadflow/internal/model"
	"github.com/pkorolev/leadflow/internal/notify"
	"github.com/pkorolev/leadflow/internal/pipeline"
	"github.com/pkorolev/leadflow/internal/validate"
)

var (
	leadName    string
	leadEmail   string
	leadPhone   string
	leadWebsite string

	outJSON     string
	outMD       string
	outPDF      string
	copyReport  bool
	timeout     time.Duration
	endpoint    string
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	noPreflight bool
	insecureTLS bool
	httpProxy   string
	httpsProxy  string
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a single lead and generate its SEO report",
	Long: `Submit validates the lead details, sends one submission to the
report service, and renders the returned report:
- Name, email, and phone are required; website is optional
- Invalid input is rejected locally, nothing is sent
- A successful submission prints the report and writes any requested
  artifacts (JSON, Markdown, PDF, clipboard)
- A failed submission keeps nothing; rerun to retry

Example:
  leadflow submit --name "Ada Lovelace" --email ada@example.com --phone "+1 555 0100"
  leadflow submit --name Ada --email ada@example.com --phone 5550100100 --website example.com --pdf seo-report.pdf
  leadflow submit --name Ada --email ada@example.com --phone 5550100100 --copy`,
	Args: cobra.NoArgs,
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	// Lead flags
	submitCmd.Flags().StringVar(&leadName, "name", "", "full name (required)")
	submitCmd.Flags().StringVar(&leadEmail, "email", "", "email address (required)")
	submitCmd.Flags().StringVar(&leadPhone, "phone", "", "phone number (required)")
	submitCmd.Flags().StringVar(&leadWebsite, "website", "", "website URL (optional)")

	// Output flags
	submitCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	submitCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	submitCmd.Flags().StringVar(&outPDF, "pdf", "", "output PDF path (optional)")
	submitCmd.Flags().BoolVar(&copyReport, "copy", false, "copy the raw report text to the clipboard")

	// HTTP flags
	submitCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall submission timeout")
	submitCmd.Flags().StringVar(&endpoint, "endpoint", "", "report service endpoint (overrides config)")
	submitCmd.Flags().StringVar(&userAgent, "ua", "Leadflow/0.1 (+https://github.com/pkorolev/leadflow)", "HTTP User-Agent")
	submitCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	submitCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh submission)")
	submitCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	submitCmd.Flags().BoolVar(&noPreflight, "no-preflight", false, "skip the website reachability preflight")
	submitCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification (use for self-signed certs)")
	submitCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	submitCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	// LLM flags
	submitCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate the report locally with an LLM instead of the remote service")
	submitCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	submitCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles the effective configuration from defaults and
// CLI flags. Shared by submit, batch, and serve; flags a command does
// not register keep their defaults.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if timeout > 0 {
		cfg.API.Timeout = timeout
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Preflight.Enabled = !noPreflight
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	if endpoint != "" {
		cfg.API.Endpoint = endpoint
	}

	// Configure LLM if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
			if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		default:
			return nil, fmt.Errorf("unsupported LLM provider: %s", llmProvider)
		}
	}

	return cfg, nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	sub := model.Submission{
		Name:    leadName,
		Email:   leadEmail,
		Phone:   leadPhone,
		Website: leadWebsite,
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Submitting: %s\n", sub.Subject())
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	// Create pipeline
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("configure pipeline: %w", err)
	}

	// Drive the submission through the capture flow so the same
	// validation and in-flight rules apply as on the landing page.
	notices := notify.NewQueue(cfg.Flow.NotifyTimeout)
	capture := flow.New(p, notices, cfg.Flow.SuccessRevert)

	report, err := capture.Submit(ctx, sub)
	if err != nil {
		var fields validate.FieldErrors
		if errors.As(err, &fields) {
			fmt.Fprintln(os.Stderr, "Invalid lead details:")
			for _, field := range fields.Fields() {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, fields[field])
			}
			return fmt.Errorf("submission rejected: fix the fields above and retry")
		}
		printNotices(notices)
		return fmt.Errorf("submission failed: %w", err)
	}

	printNotices(notices)

	// Render outputs
	if err := p.RenderReport(report, outJSON, outMD, outPDF); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if copyReport {
		if err := export.Copy(export.SystemClipboard{}, report); err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Report copied to clipboard (%d bytes)\n", len(report.FullReport))
	}

	return nil
}

// printNotices drains the notification queue to stderr.
func printNotices(q *notify.Queue) {
	for _, n := range q.Active() {
		switch n.Kind {
		case notify.KindError:
			fmt.Fprintf(os.Stderr, "✗ %s\n", n.Message)
		default:
			fmt.Fprintf(os.Stderr, "✓ %s\n", n.Message)
		}
	}
}

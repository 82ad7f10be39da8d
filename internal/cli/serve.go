package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pkorolev/leadflow/internal/pipeline"
	"github.com/pkorolev/leadflow/internal/web"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the lead-capture landing page server",
	Long: `Serve hosts the landing page with the lead-capture form and its
JSON API:
- GET  /               landing page
- POST /api/leads      validate a lead and return its report
- POST /api/export/pdf render submitted report text as a PDF download
- GET  /healthz        liveness probe

Example:
  leadflow serve
  leadflow serve --addr :9000
  leadflow serve --endpoint https://api.example.com/v1/report`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&endpoint, "endpoint", "", "report service endpoint (overrides config)")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the report cache")
	serveCmd.Flags().BoolVar(&noPreflight, "no-preflight", false, "skip the website reachability preflight")
	serveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate reports locally with an LLM instead of the remote service")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Server.Addr = serveAddr

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("configure pipeline: %w", err)
	}

	srv, err := web.New(cfg, p)
	if err != nil {
		return fmt.Errorf("configure server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Leadflow landing page listening on %s\n", cfg.Server.Addr)
	return srv.Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"market-mood/config"
	"market-mood/scraper/finnhub"
	"market-mood/services"
	"market-mood/storage"
	"market-mood/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var templatePath, outputPath, symbol, logLevel string

	cmd := &cobra.Command{
		Use:   "market-mood",
		Short: "Render the market mood page from today's index move",
		Long: `Fetches one index quote, classifies the day's percent change into a
mood category and renders the status page from an HTML template.

Meant to be run periodically by cron or a similar scheduler.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("template") {
				cfg.TemplatePath = templatePath
			}
			if cmd.Flags().Changed("output") {
				cfg.OutputPath = outputPath
			}
			if cmd.Flags().Changed("symbol") {
				cfg.IndexSymbol = symbol
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			logger, err := utils.NewLoggerWith(cfg.LogLevel, cfg.LogFormat, os.Stdout)
			if err != nil {
				logger.Warn("[main] %v, using info", err)
			}
			logDotEnv(cfg, logger)

			return run(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().StringVar(&templatePath, "template", "", "HTML template file (overrides HTML_TEMPLATE_FILE)")
	cmd.Flags().StringVar(&outputPath, "output", "", "output HTML file (overrides OUTPUT_HTML_FILE)")
	cmd.Flags().StringVar(&symbol, "symbol", "", "ticker symbol to query (overrides INDEX_SYMBOL)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	return cmd
}

func logDotEnv(cfg *config.Config, logger *utils.Logger) {
	if cfg.DotEnvErr != nil {
		logger.Warn("[config] No .env file found, falling back to system env vars")
		logger.Debug("[config] %v", cfg.DotEnvErr)
	}
}

// run executes one fetch-and-render pass. Only a configuration error is
// returned; a degraded report or a failed render still counts as a
// completed run.
func run(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	if err := cfg.Validate(); err != nil {
		logger.Error("Error: %v", err)
		return fmt.Errorf("config: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger = logger.WithField("run_id", uuid.NewString())
	logger.Info("=== Market mood page generation starting ===")
	logger.Info("Config — symbol: %s | template: %s | output: %s | timeout: %v",
		cfg.IndexSymbol, cfg.TemplatePath, cfg.OutputPath, cfg.RequestTimeout)

	client := finnhub.New(cfg, logger)
	report := services.NewMarketService(client, cfg.IndexName, logger).FetchReport(ctx)

	renderer := services.NewPageRenderer(cfg.TemplatePath, storage.NewFileWriter(cfg.OutputPath), logger)
	if !renderer.Render(report) {
		logger.Warn("Page was not refreshed; previous output (if any) is unchanged")
	}

	logger.Info("Script finished — status: %s", report.StatusClass)
	return nil
}

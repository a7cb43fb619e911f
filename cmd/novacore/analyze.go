package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/novalabs/novacore/internal/config"
	"github.com/novalabs/novacore/internal/core"
	"github.com/novalabs/novacore/internal/engine"
	"github.com/novalabs/novacore/internal/logger"
	"github.com/novalabs/novacore/internal/metrics"
	"github.com/novalabs/novacore/internal/pointvalue"
	"github.com/novalabs/novacore/internal/storage/archive"
)

var (
	analyzeInput    string
	analyzeAccount  string
	analyzeParallel bool
	analyzeArchive  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Derive trades from executions and print a performance report",
	Long: `Read a JSON file of normalized executions, derive round-trip trades
via FIFO matching, and print the full performance report.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "Path to normalized executions JSON (required)")
	analyzeCmd.Flags().StringVar(&analyzeAccount, "account", "", "Account label for archived documents")
	analyzeCmd.Flags().BoolVar(&analyzeParallel, "parallel", false, "Match symbols concurrently")
	analyzeCmd.Flags().BoolVar(&analyzeArchive, "archive", false, "Archive the analysis document")

	analyzeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(analyzeCmd)
}

func loadConfig() *config.Config {
	if cfgFile == "" {
		return config.Defaults()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		return config.Defaults()
	}
	return cfg
}

func buildLogger(cfg *config.Config) *zap.Logger {
	level := cfg.Log.Level
	if debug {
		level = "debug"
	}
	return logger.Must(cfg.Log.Development, level)
}

// buildResolver layers config point value overrides (matched as symbol
// substrings, first match wins) over the built-in table.
func buildResolver(overrides map[string]float64) func(string) float64 {
	if len(overrides) == 0 {
		return pointvalue.Resolve
	}
	return func(symbol string) float64 {
		for sub, value := range overrides {
			if strings.Contains(symbol, sub) {
				return value
			}
		}
		return pointvalue.Resolve(symbol)
	}
}

// executionRecord is the wire form of one normalized execution.
type executionRecord struct {
	ExternalID  string  `json:"external_id"`
	Symbol      string  `json:"symbol"`
	Product     string  `json:"product,omitempty"`
	Description string  `json:"description,omitempty"`
	Side        string  `json:"side"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	ExecutedAt  string  `json:"executed_at"`
	Currency    string  `json:"currency,omitempty"`
}

// loadExecutions reads and validates the input file. Invalid rows are
// skipped and reported; the analysis runs on what remains.
func loadExecutions(path string) ([]core.Execution, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading input: %w", err)
	}

	var records []executionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, nil, fmt.Errorf("decoding input: %w", err)
	}

	var executions []core.Execution
	var diagnostics []string
	for i, rec := range records {
		executedAt, err := time.Parse(time.RFC3339, rec.ExecutedAt)
		if err != nil {
			diagnostics = append(diagnostics, fmt.Sprintf("row %d: bad executed_at %q", i+1, rec.ExecutedAt))
			continue
		}
		e := core.Execution{
			ExternalID:  rec.ExternalID,
			Symbol:      rec.Symbol,
			Product:     rec.Product,
			Description: rec.Description,
			Side:        core.Side(rec.Side),
			Quantity:    rec.Quantity,
			Price:       rec.Price,
			ExecutedAt:  executedAt,
			Currency:    rec.Currency,
		}
		if err := e.Validate(); err != nil {
			diagnostics = append(diagnostics, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		executions = append(executions, e)
	}
	return executions, diagnostics, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := buildLogger(cfg)
	defer log.Sync()

	executions, diagnostics, err := loadExecutions(analyzeInput)
	if err != nil {
		return err
	}
	for _, d := range diagnostics {
		log.Warn("skipped row", zap.String("reason", d))
	}

	opts := []engine.Option{
		engine.WithLogger(log),
		engine.WithResolver(buildResolver(cfg.PointValues)),
	}
	if analyzeParallel {
		opts = append(opts, engine.WithParallelMatching())
	}
	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
		opts = append(opts, engine.WithMetrics(reg))
	}

	result := engine.New(opts...).Analyze(executions)
	fmt.Print(engine.RenderReport(result))

	if analyzeArchive || cfg.Archive.Enabled {
		path, err := archiveResult(cmd.Context(), cfg, reg, result)
		if err != nil {
			return fmt.Errorf("archiving: %w", err)
		}
		log.Info("analysis archived", zap.String("path", path))
	}

	return nil
}

func archiveResult(ctx context.Context, cfg *config.Config, reg *metrics.Registry, result *engine.Result) (string, error) {
	var backend archive.Backend
	var err error

	backendName := cfg.Archive.Type
	switch backendName {
	case "s3":
		backend, err = archive.NewS3(archive.S3Config{
			Bucket:    cfg.Archive.S3.Bucket,
			Endpoint:  cfg.Archive.S3.Endpoint,
			Region:    cfg.Archive.S3.Region,
			AccessKey: cfg.Archive.S3.AccessKey,
			SecretKey: cfg.Archive.S3.SecretKey,
			Prefix:    cfg.Archive.S3.Prefix,
		})
	default:
		backendName = "localfs"
		backend, err = archive.NewLocalFS(cfg.Archive.Path)
	}
	if err != nil {
		return "", err
	}

	path, err := archive.NewArchiver(backend).Save(ctx, archive.Document{
		Account:       analyzeAccount,
		GeneratedAt:   result.GeneratedAt,
		Trades:        result.Trades,
		OpenPositions: result.OpenPositions,
		Stats:         result.Stats,
		Daily:         result.Daily,
		Equity:        result.Equity,
		Symbols:       result.Symbols,
		Nova:          result.Nova,
	})
	if reg != nil {
		reg.ObserveArchiveWrite(backendName, err)
	}
	return path, err
}

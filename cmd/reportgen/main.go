package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/elong0527/demo-go-esub/internal/config"
	"github.com/elong0527/demo-go-esub/internal/dataset"
	"github.com/elong0527/demo-go-esub/internal/exporter"
	"github.com/elong0527/demo-go-esub/internal/infrastructure"
	"github.com/elong0527/demo-go-esub/internal/reports"
	"github.com/elong0527/demo-go-esub/internal/summary"
	"github.com/elong0527/demo-go-esub/pkg/contracts"
	"github.com/elong0527/demo-go-esub/pkg/contracts/domain"
)

func main() {
	adslPath := flag.String("adsl", "", "subject-level dataset (.csv or .xlsx), required")
	adaePath := flag.String("adae", "", "adverse-event dataset (.csv or .xlsx), optional")
	outDir := flag.String("out", "", "output directory (defaults to "+config.DefaultReportsDir+")")
	format := flag.String("format", "", "output format: csv, xlsx or json (defaults to "+config.DefaultExportFormat+")")
	configFile := flag.String("config", "", "YAML configuration file")
	groups := flag.String("groups", "", "comma-separated treatment groups in column order (overrides config; labels containing commas must come from the config file)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetVersionString())
		return
	}

	if *adslPath == "" {
		slog.Error("Missing required -adsl flag")
		flag.Usage()
		os.Exit(1)
	}

	// Flag values override the config file through the environment, which
	// already takes precedence in config.Load.
	applyFlagOverrides(*groups, *outDir, *format)

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger = infrastructure.LoggerWithContext(ctx)

	logger.InfoContext(ctx, "starting report generation",
		slog.String("version", contracts.Version),
		slog.String("adsl", *adslPath),
		slog.String("adae", *adaePath),
		slog.String("output_dir", cfg.Output.Dir),
		slog.String("format", cfg.Output.Format))

	if err := run(ctx, logger, cfg, *adslPath, *adaePath); err != nil {
		logger.ErrorContext(ctx, "report generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "report generation complete",
		slog.String("output_dir", cfg.Output.Dir))
}

func run(ctx context.Context, logger *slog.Logger, cfg *config.Config, adslPath, adaePath string) error {
	validator := dataset.NewFileValidator(logger)

	if err := validator.ValidateDataFile(adslPath); err != nil {
		return err
	}
	adsl, err := dataset.ReadFile(adslPath)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "loaded subject-level dataset",
		slog.String("path", adslPath),
		slog.Int("subject_count", adsl.Len()))

	set, err := buildTables(ctx, logger, cfg, adsl, adaePath, validator)
	if err != nil {
		return err
	}

	if err := validator.ValidateOutputDirectory(cfg.Output.Dir); err != nil {
		return err
	}
	return export(logger, cfg, set.Tables())
}

func buildTables(ctx context.Context, logger *slog.Logger, cfg *config.Config, adsl dataset.Dataset, adaePath string, validator *dataset.FileValidator) (*reports.ReportSet, error) {
	events, err := loadEvents(ctx, logger, adaePath, validator)
	if err != nil {
		return nil, err
	}

	builder, err := reports.NewBuilder(logger, cfg.Report.TreatmentGroups)
	if err != nil {
		return nil, err
	}
	return builder.BuildAll(ctx, adsl, events, cfg.Report.ContinuousVars, cfg.Report.CategoricalVars)
}

// loadEvents reads the adverse-event dataset. The dataset is optional: with
// no path the AE tables are built over zero events and show the safety
// population with empty hierarchies.
func loadEvents(ctx context.Context, logger *slog.Logger, adaePath string, validator *dataset.FileValidator) ([]domain.AdverseEvent, error) {
	if adaePath == "" {
		logger.InfoContext(ctx, "no adverse-event dataset given, AE tables will be empty")
		return nil, nil
	}
	if err := validator.ValidateDataFile(adaePath); err != nil {
		return nil, err
	}
	ds, err := dataset.ReadFile(adaePath)
	if err != nil {
		return nil, err
	}
	events, err := dataset.AdverseEvents(ds)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "loaded adverse-event dataset",
		slog.String("path", adaePath),
		slog.Int("event_count", len(events)))
	return events, nil
}

func export(logger *slog.Logger, cfg *config.Config, tables []summary.Table) error {
	switch cfg.Output.Format {
	case "xlsx":
		w := exporter.NewExcelWriter(logger)
		return w.WriteWorkbook(filepath.Join(cfg.Output.Dir, config.ReportWorkbookFile), tables)
	case "json":
		w := exporter.NewJSONWriter(logger)
		return w.WriteTables(filepath.Join(cfg.Output.Dir, config.ReportJSONFile), tables)
	default:
		w := exporter.NewCSVWriter(logger, true)
		_, err := w.WriteAll(cfg.Output.Dir, tables)
		return err
	}
}

func applyFlagOverrides(groups, outDir, format string) {
	if groups != "" {
		os.Setenv("ESUB_REPORT_TREATMENT_GROUPS", normalizeList(groups))
	}
	if outDir != "" {
		os.Setenv("ESUB_OUTPUT_DIR", outDir)
	}
	if format != "" {
		os.Setenv("ESUB_OUTPUT_FORMAT", format)
	}
}

// normalizeList trims the whitespace around comma-separated items so quoted
// group lists like "Placebo, Drug High Dose" parse cleanly
func normalizeList(s string) string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, ",")
}

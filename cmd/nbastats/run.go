package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	appstats "github.com/preston-bernstein/nba-season-stats/internal/app/stats"
	"github.com/preston-bernstein/nba-season-stats/internal/config"
	"github.com/preston-bernstein/nba-season-stats/internal/export"
	"github.com/preston-bernstein/nba-season-stats/internal/logging"
	"github.com/preston-bernstein/nba-season-stats/internal/metrics"
	"github.com/preston-bernstein/nba-season-stats/internal/providers"
	"github.com/preston-bernstein/nba-season-stats/internal/season"
	"github.com/preston-bernstein/nba-season-stats/internal/tracing"
)

const (
	serviceName    = "nba-season-stats"
	successMessage = "Success!"
	shutdownGrace  = 5 * time.Second
)

// Set via -ldflags at build time.
var version = "dev"

// run builds and executes the command. It takes the process fundamentals as
// arguments so it can be exercised from tests without touching globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCommand(stdout, stderr, season.NewValidator())
	cmd.SetArgs(args[1:])
	return cmd.ExecuteContext(ctx)
}

func newRootCommand(stdout, stderr io.Writer, years season.Validator) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "nbastats <beginning_year> <end_year> <players|teams> <output_file_path>",
		Short: "Download season-level NBA stats for a range of seasons into one CSV file",
		Long: `nbastats fetches league dashboard totals for players or teams from
stats.nba.com, one regular season at a time, tags every row with a SEASON
column and writes the stacked result as comma-separated text.

Years are season start years (2020 means 2020-21) between 1996 and the
current year. A beginning year after the end year produces a file with
only the SEASON header.

Examples:
  nbastats 2018 2020 teams data/teams.csv
  nbastats 1996 2023 players players.csv`,
		Args:          cobra.ExactArgs(4),
		Version:       version,
		SilenceErrors: true,
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 2 {
				return kindNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument count errors surface before RunE and still print usage.
			cmd.SilenceUsage = true
			parsed, err := parseArgs(args, years)
			if err != nil {
				return err
			}
			return execute(cmd.Context(), parsed, verbose, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func execute(ctx context.Context, args parsedArgs, verbose bool, stdout, stderr io.Writer) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: serviceName,
		Version: version,
		Writer:  stderr,
	}).With(slog.String(logging.FieldRunID, uuid.NewString()))
	ctx = logging.WithContext(ctx, logger)

	telemetry, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.MetricsEnabled,
		ServiceName:  cfg.ServiceName,
		OtlpEndpoint: cfg.OtlpEndpoint,
		OtlpInsecure: cfg.OtlpInsecure,
		Textfile:     cfg.MetricsTextfile,
	})
	if err != nil {
		return fmt.Errorf("metrics setup: %w", err)
	}
	tracer, shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Exporter:    cfg.TraceExporter,
		ServiceName: cfg.ServiceName,
		Writer:      stderr,
	})
	if err != nil {
		return fmt.Errorf("tracing setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGrace)
		defer cancel()
		err = errors.Join(err,
			telemetry.Flush(shutdownCtx),
			telemetry.Shutdown(shutdownCtx),
			shutdownTracing(shutdownCtx),
		)
		if err == nil {
			fmt.Fprintln(stdout, successMessage)
		}
	}()

	upstream := selectProvider(cfg, tracer)
	provider := providers.NewInstrumentedProvider(upstream, upstream.Name(), logger, telemetry.Recorder)
	svc := appstats.NewService(provider, export.NewCSVWriter(), logger, telemetry.Recorder)

	_, err = svc.Run(ctx, appstats.Request{
		Kind:       args.Kind,
		Years:      args.Years,
		OutputPath: args.OutputPath,
	})
	return err
}

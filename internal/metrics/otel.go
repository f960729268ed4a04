package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	defaultServiceName = "nba-season-stats"
	meterName          = "github.com/preston-bernstein/nba-season-stats"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
	// Textfile, when set, receives the Prometheus text exposition on Flush.
	Textfile string
}

// Telemetry bundles the recorder with the exporters backing it.
type Telemetry struct {
	Recorder *Recorder

	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider
	textfile string
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// When disabled it returns an in-memory recorder and no-op flush/shutdown.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Telemetry, error) {
	if !cfg.Enabled {
		return &Telemetry{Recorder: NewRecorder()}, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, reg, err := promReaderFactory()
	if err != nil {
		return nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, errors.Join(err, provider.Shutdown(ctx))
	}

	return &Telemetry{
		Recorder: newRecorder(otelInst),
		registry: reg,
		provider: provider,
		textfile: cfg.Textfile,
	}, nil
}

// Flush pushes pending OTLP data and writes the textfile, if configured.
func (t *Telemetry) Flush(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	if err := t.provider.ForceFlush(ctx); err != nil {
		return err
	}
	if t.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(t.textfile, t.registry)
}

// Shutdown releases exporter resources.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil || t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, *prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx           context.Context
	seasonFetches metric.Int64Counter
	seasonErrors  metric.Int64Counter
	seasonLatency metric.Float64Histogram
	rowsFetched   metric.Int64Counter
	runs          metric.Int64Counter
	runErrors     metric.Int64Counter
	runDurationMs metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)

	seasonFetches, err := meter.Int64Counter("nbastats_season_fetches_total")
	if err != nil {
		return nil, err
	}
	seasonErrors, err := meter.Int64Counter("nbastats_season_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	seasonLatency, err := meter.Float64Histogram("nbastats_season_fetch_duration_ms")
	if err != nil {
		return nil, err
	}
	rowsFetched, err := meter.Int64Counter("nbastats_rows_fetched_total")
	if err != nil {
		return nil, err
	}
	runs, err := meter.Int64Counter("nbastats_runs_total")
	if err != nil {
		return nil, err
	}
	runErrors, err := meter.Int64Counter("nbastats_run_errors_total")
	if err != nil {
		return nil, err
	}
	runDuration, err := meter.Float64Histogram("nbastats_run_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:           context.Background(),
		seasonFetches: seasonFetches,
		seasonErrors:  seasonErrors,
		seasonLatency: seasonLatency,
		rowsFetched:   rowsFetched,
		runs:          runs,
		runErrors:     runErrors,
		runDurationMs: runDuration,
	}, nil
}

func (o *otelInstruments) recordSeasonFetch(provider, kind string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrProvider, provider),
		attribute.String(AttrKind, kind),
		attribute.String(AttrOutcome, outcome(err)),
	}
	o.seasonFetches.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	o.seasonLatency.Record(o.ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		o.seasonErrors.Add(o.ctx, 1, metric.WithAttributes(
			attribute.String(AttrProvider, provider),
			attribute.String(AttrKind, kind),
		))
	}
}

func (o *otelInstruments) recordRows(provider, kind string, n int) {
	if o == nil {
		return
	}
	o.rowsFetched.Add(o.ctx, int64(n), metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrKind, kind),
	))
}

func (o *otelInstruments) recordRun(kind string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrKind, kind),
		attribute.String(AttrOutcome, outcome(err)),
	)
	o.runs.Add(o.ctx, 1, attrs)
	o.runDurationMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.runErrors.Add(o.ctx, 1, metric.WithAttributes(attribute.String(AttrKind, kind)))
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

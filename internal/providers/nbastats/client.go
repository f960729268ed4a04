package nbastats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
	"github.com/preston-bernstein/nba-season-stats/internal/providers"
	"github.com/preston-bernstein/nba-season-stats/internal/tracing"
)

// Config controls how the client reaches stats.nba.com.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Tracer     trace.Tracer
}

// Client fetches league dashboard stats one season at a time.
type Client struct {
	baseURL    string
	httpClient httpDoer
	tracer     trace.Tracer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = tracing.Noop()
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		tracer:     tracer,
	}
}

// Name identifies the upstream in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchSeasons requests every year in order and stops at the first failure.
func (c *Client) FetchSeasons(ctx context.Context, kind stats.Kind, years []int) ([]stats.SeasonTable, error) {
	return providers.FetchSeasons(ctx, c, kind, years)
}

// FetchSeason issues one GET for kind and season start year and maps the first result set.
func (c *Client) FetchSeason(ctx context.Context, kind stats.Kind, year int) (stats.Table, error) {
	ctx, span := c.tracer.Start(ctx, "nbastats.fetch_season", trace.WithAttributes(
		attribute.String("nbastats.kind", string(kind)),
		attribute.Int("nbastats.season", year),
	))
	defer span.End()

	table, err := c.fetchSeason(ctx, kind, year)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return stats.Table{}, fmt.Errorf("season %s: %w", SeasonParam(year), err)
	}
	span.SetAttributes(attribute.Int("nbastats.rows", table.Len()))
	return table, nil
}

func (c *Client) fetchSeason(ctx context.Context, kind stats.Kind, year int) (stats.Table, error) {
	req, err := c.buildRequest(ctx, kind, year)
	if err != nil {
		return stats.Table{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return stats.Table{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return stats.Table{}, &providers.StatusError{
			Provider:   providerName,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       errorExcerpt(resp),
		}
	}

	body, err := decodedBody(resp)
	if err != nil {
		return stats.Table{}, err
	}
	defer body.Close()

	var payload statsResponse
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return stats.Table{}, providers.ShapeError(providerName, typeErr.Error())
		}
		return stats.Table{}, fmt.Errorf("%s: decode response: %w", providerName, err)
	}

	return mapTable(payload)
}

// errorExcerpt reads up to errorBodyLimit bytes of an error response. Error pages
// often arrive uncompressed despite their Content-Encoding, so the raw bytes are
// used when decoding fails.
func errorExcerpt(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	if len(raw) == 0 {
		return ""
	}
	decoded, err := decodedBody(&http.Response{
		Header: resp.Header,
		Body:   io.NopCloser(bytes.NewReader(raw)),
	})
	if err == nil {
		defer decoded.Close()
		if text, err := io.ReadAll(io.LimitReader(decoded, errorBodyLimit)); err == nil || len(text) > 0 {
			return strings.TrimSpace(string(text))
		}
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) buildRequest(ctx context.Context, kind stats.Kind, year int) (*http.Request, error) {
	target, err := buildURL(c.baseURL, kind, year)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header = BrowserHeaders()
	return req, nil
}

// Package itinerary fetches and parses the trip document.
package itinerary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/londonapp/internal/domain"
)

// DefaultTimeout bounds a single document fetch.
const DefaultTimeout = 10 * time.Second

// Source yields the raw document bytes.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// Options configures NewLoader.
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Loader performs a single fetch-and-parse of the itinerary document.
type Loader struct {
	src    Source
	logger *slog.Logger
}

// NewLoader selects an HTTP source for http(s) URLs and a file source otherwise.
func NewLoader(source string, opts Options) *Loader {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var src Source
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		client := opts.HTTPClient
		if client == nil {
			client = &http.Client{
				Transport: &http.Transport{
					DialContext: (&net.Dialer{
						Timeout: 5 * time.Second,
					}).DialContext,
				},
			}
		}
		src = &httpSource{url: source, timeout: opts.Timeout, http: client}
	} else {
		src = fileSource{path: source}
	}
	return &Loader{src: src, logger: logger}
}

// NewLoaderFromSource wraps an existing Source.
func NewLoaderFromSource(src Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{src: src, logger: logger}
}

// Load fetches and parses the document. It never retries.
func (l *Loader) Load(ctx context.Context) (*domain.Trip, error) {
	_, trip, err := l.LoadRaw(ctx)
	return trip, err
}

// LoadRaw is Load that also returns the raw document bytes.
func (l *Loader) LoadRaw(ctx context.Context) ([]byte, *domain.Trip, error) {
	start := time.Now()
	data, err := l.src.Fetch(ctx)
	if err != nil {
		l.logResult(ctx, start, 0, err)
		return nil, nil, err
	}
	trip, err := Parse(data)
	if err != nil {
		l.logResult(ctx, start, 0, err)
		return nil, nil, err
	}
	l.logResult(ctx, start, len(trip.Days), nil)
	return data, trip, nil
}

func (l *Loader) logResult(ctx context.Context, start time.Time, days int, err error) {
	attrs := []any{
		"source", l.src.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		l.logger.ErrorContext(ctx, "itinerary_load", append(attrs, "error", err.Error())...)
		return
	}
	l.logger.InfoContext(ctx, "itinerary_load", append(attrs, "days", days)...)
}

type httpSource struct {
	url     string
	timeout time.Duration
	http    *http.Client
}

func (s *httpSource) String() string { return s.url }

func (s *httpSource) Fetch(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrDocumentLoad, err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrDocumentLoad, s.url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrDocumentLoad, err)
	}
	return data, nil
}

type fileSource struct {
	path string
}

func (s fileSource) String() string { return s.path }

func (s fileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentLoad, err)
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentLoad, err)
	}
	return data, nil
}

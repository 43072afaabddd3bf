// Package wayback fetches page captures from the Wayback Machine.
//
// It is the input side of the fingerprinting pipeline: FetchCDX lists the
// captures of a URL for a year, DownloadAll retrieves their bodies with a
// bounded worker pool, and the resulting (timestamp, body) pairs flow into
// extract and simhash. The archive itself never touches the network.
package wayback

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	timemapURL    = "https://web.archive.org/web/timemap"
	snapshotURL   = "https://web.archive.org/web/%sid_/%s"
	defaultAgent  = "snapdiff/1.0"
	retryBaseWait = time.Second
)

// Config controls client behavior. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Concurrency bounds the worker pool used by DownloadAll.
	Concurrency int
	// MaxRetries is the number of attempts per capture download.
	MaxRetries int
	// Timeout applies per HTTP request.
	Timeout time.Duration
	// MaxCaptureSize truncates capture bodies beyond this many bytes.
	MaxCaptureSize int64
	// RequestsPerSecond throttles all outgoing requests. Zero disables
	// throttling.
	RequestsPerSecond float64
	// SnapshotsPerYear limits how many captures FetchCDX requests.
	// Negative means no limit.
	SnapshotsPerYear int
	// UserAgent identifies the client to the archive.
	UserAgent string
}

// DefaultConfig returns the settings used by the reference pipeline.
func DefaultConfig() Config {
	return Config{
		Concurrency:       50,
		MaxRetries:        2,
		Timeout:           20 * time.Second,
		MaxCaptureSize:    1_000_000,
		RequestsPerSecond: 0,
		SnapshotsPerYear:  -1,
		UserAgent:         defaultAgent,
	}
}

// CDXCapture is one row of a CDX timemap listing: when the page was
// captured and the archive's content digest for it.
type CDXCapture struct {
	Timestamp string
	Digest    string
}

// DownloadResult carries one downloaded capture body, or the error that
// prevented it.
type DownloadResult struct {
	Timestamp string
	Digest    string
	Body      []byte
	Err       error
}

// Client wraps an HTTP client with Wayback Machine operations. Safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cfg        Config

	// Endpoint templates, overridable in tests.
	timemapBase    string
	snapshotFormat string
}

// NewClient creates a Wayback client from cfg.
func NewClient(cfg Config) *Client {
	transport := &http.Transport{
		MaxIdleConns:        cfg.Concurrency,
		MaxIdleConnsPerHost: cfg.Concurrency,
		IdleConnTimeout:     90 * time.Second,
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Concurrency)
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		limiter:        limiter,
		cfg:            cfg,
		timemapBase:    timemapURL,
		snapshotFormat: snapshotURL,
	}
}

// FetchCDX lists the captures of pageURL within a year, collapsed to at
// most one capture per hour, newest-of-duplicate dropped by the server.
func (c *Client) FetchCDX(ctx context.Context, pageURL, year string) ([]CDXCapture, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.timemapBase, nil)
	if err != nil {
		return nil, fmt.Errorf("create CDX request: %w", err)
	}

	q := req.URL.Query()
	q.Set("url", pageURL)
	q.Set("from", year)
	q.Set("to", year)
	q.Set("statuscode", "200")
	q.Set("fl", "timestamp,digest")
	q.Set("collapse", "timestamp:9")
	if c.cfg.SnapshotsPerYear > 0 {
		q.Set("limit", strconv.Itoa(c.cfg.SnapshotsPerYear))
	}
	req.URL.RawQuery = q.Encode()
	c.setHeaders(req)

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("CDX request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CDX request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read CDX response: %w", err)
	}

	return parseCDX(string(body)), nil
}

// parseCDX parses the space-separated "timestamp digest" lines of a CDX
// timemap response, skipping malformed lines.
func parseCDX(body string) []CDXCapture {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	captures := make([]CDXCapture, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		captures = append(captures, CDXCapture{
			Timestamp: parts[0],
			Digest:    parts[1],
		})
	}

	return captures
}

// DownloadCapture retrieves the body of one capture, retrying transient
// failures with linear backoff. Bodies larger than MaxCaptureSize are
// truncated.
func (c *Client) DownloadCapture(ctx context.Context, timestamp, pageURL string) ([]byte, error) {
	captureURL := fmt.Sprintf(c.snapshotFormat, timestamp, pageURL)

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(time.Duration(attempt-1) * retryBaseWait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := c.downloadOnce(ctx, captureURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("capture %s: failed after %d attempts: %w", timestamp, c.cfg.MaxRetries, lastErr)
}

func (c *Client) downloadOnce(ctx context.Context, captureURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, captureURL, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxCaptureSize))
}

// DownloadAll retrieves all capture bodies with a bounded worker pool.
// Results appear in completion order, one per input capture; individual
// failures are recorded in the result, not fatal to the batch.
func (c *Client) DownloadAll(ctx context.Context, pageURL string, captures []CDXCapture) []DownloadResult {
	jobs := make(chan CDXCapture, len(captures))
	results := make(chan DownloadResult, len(captures))

	workers := c.cfg.Concurrency
	if workers > len(captures) {
		workers = len(captures)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for capture := range jobs {
				body, err := c.DownloadCapture(ctx, capture.Timestamp, pageURL)
				results <- DownloadResult{
					Timestamp: capture.Timestamp,
					Digest:    capture.Digest,
					Body:      body,
					Err:       err,
				}
			}
		}()
	}

	for _, capture := range captures {
		jobs <- capture
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]DownloadResult, 0, len(captures))
	for result := range results {
		out = append(out, result)
	}

	return out
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Connection", "keep-alive")
}

// wait blocks until the rate limiter admits another request.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}

	return c.limiter.Wait(ctx)
}

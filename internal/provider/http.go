package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/ratelimit"
)

var defaultHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
}

// StatusError is returned for non-2xx upstream responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code %d", e.Code)
	}
	return fmt.Sprintf("unexpected status code %d: %s", e.Code, e.Body)
}

// StatusCode extracts the upstream status code from err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// IsTimeout reports whether err was caused by a deadline.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func drainAndClose(r io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, 1024*1024))
	_ = r.Close()
}

// jsonClient issues rate-limited, instrumented GET requests against one base URL.
type jsonClient struct {
	baseURL string
	http    *http.Client
	limiter ratelimit.Limiter
	metrics Metrics
}

func newJSONClient(baseURL string, opts Options) jsonClient {
	opts = opts.withDefaults()
	return jsonClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    opts.HTTPClient,
		limiter: opts.Limiter,
		metrics: opts.Metrics,
	}
}

func (c jsonClient) get(ctx context.Context, operation, path string, response any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	if err := ctx.Err(); err != nil {
		return wrapTimeout(err)
	}
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapTimeout(fmt.Errorf("send request: %w", err))
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(buf))}
	}

	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return wrapTimeout(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func wrapTimeout(err error) error {
	if IsTimeout(err) && !errors.Is(err, ErrTimeout) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return err
}

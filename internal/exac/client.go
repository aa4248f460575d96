// Package exac fetches population-frequency and VEP annotations for single
// variants from the ExAC REST service.
package exac

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"

	"github.com/inodb/vibe-exac/internal/annotate"
)

// DefaultBaseURL is the public ExAC server.
const DefaultBaseURL = "http://exac.hms.harvard.edu"

// variantPath is appended to the base URL, followed by CHROM-POS-REF-ALT.
const variantPath = "/rest/variant/variant/"

// Client looks up variants in the ExAC REST API, retrying failed attempts
// according to its Policy.
type Client struct {
	baseURL    string
	policy     Policy
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, policy Policy) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		policy:     policy,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
}

// SetHTTPClient replaces the HTTP client used for requests.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// SetLogger sets the logger for retry warnings.
func (c *Client) SetLogger(l *zap.Logger) {
	c.logger = l
}

// URL returns the request URL for a lookup key.
func (c *Client) URL(key annotate.LookupKey) string {
	return c.baseURL + variantPath + url.PathEscape(key.String())
}

// Lookup fetches and parses the annotation for key. A body that cannot be
// parsed yields an empty annotation and a warning. If no attempt succeeds the
// error is a *LookupError.
func (c *Client) Lookup(ctx context.Context, key annotate.LookupKey) (*annotate.Annotation, error) {
	body, err := c.fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	ann, err := ParseResponse(body)
	if err != nil {
		c.logger.Warn("incomplete lookup response",
			zap.String("key", key.String()),
			zap.Error(err))
	}
	return ann, nil
}

// fetch performs the GET with retries and returns the response body.
func (c *Client) fetch(ctx context.Context, key annotate.LookupKey) ([]byte, error) {
	reqURL := c.URL(key)

	var body []byte
	attempt := 0
	op := func() error {
		attempt++
		b, err := c.get(ctx, reqURL)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	notify := func(err error, next time.Duration) {
		c.logger.Warn("lookup attempt failed",
			zap.String("key", key.String()),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", next),
			zap.Error(err))
	}

	b := backoff.WithContext(c.policy.backOff(), ctx)
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, &LookupError{Key: key.String(), Attempts: attempt, Err: err}
	}
	return body, nil
}

// get performs a single attempt bounded by the policy timeout.
func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	if c.policy.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.policy.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read lookup response: %w", err)
	}
	return body, nil
}

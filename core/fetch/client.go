package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// DefaultTimeout is used when Config.TimeoutSeconds is not positive.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBytes is used when Config.MaxBytes is not positive (32MB).
	DefaultMaxBytes = 32 * 1024 * 1024

	// DefaultUserAgent is used when Config.UserAgent is empty.
	DefaultUserAgent = "element-attributes/1.0"
)

// Client fetches raw documents.
type Client interface {
	// Get performs an HTTP GET request and returns the response body.
	Get(ctx context.Context, url string) ([]byte, error)
}

// HTTPError is returned for non-200 responses.
type HTTPError struct {
	StatusCode int
	URL        string
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s: %s", e.StatusCode, e.URL, e.Status)
}

// DefaultClient is the net/http backed Client.
type DefaultClient struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

var _ Client = (*DefaultClient)(nil)

// NewClient creates a Client based on the configuration.
func NewClient(cfg Config) *DefaultClient {
	timeout := DefaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &DefaultClient{
		client:    &http.Client{Transport: transport},
		userAgent: userAgent,
		maxBytes:  maxBytes,
	}
}

// Get performs an HTTP GET request. There are no retries.
func (c *DefaultClient) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url, Status: resp.Status}
	}

	if resp.ContentLength > c.maxBytes {
		return nil, fmt.Errorf("response size %d bytes exceeds maximum of %d bytes", resp.ContentLength, c.maxBytes)
	}

	// +1 to detect if the limit was exceeded
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("response exceeds maximum of %d bytes", c.maxBytes)
	}

	return body, nil
}

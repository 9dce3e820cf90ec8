// Package http provides a configurable HTTP client built on retryablehttp.
// It wraps the retryablehttp.Client from HashiCorp and exposes functional
// options for customizing its behavior.
package http

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout time.Duration // maximum duration for a single HTTP request
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, a 10 second timeout is used.
//
// Every call performs a single round trip and hands the raw response back to
// the caller, whatever its status code. Retries are left to the caller's own
// policy.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 10 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// Package graphql provides a minimal GraphQL-over-HTTP client.
// It POSTs a query document with its variables to a fixed endpoint, decodes the
// standard {data, errors} response envelope, and classifies failures as
// retriable or not so callers can drive their own retry policy.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabapcia/suiwatch/internal/pkg/logger"
	httptransport "github.com/gabapcia/suiwatch/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates that the server answered 200 OK with a non-empty errors list.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrRequestRejected indicates a client-side failure (4xx) that will not succeed if sent again.
	ErrRequestRejected = errors.New("request rejected by provider")
)

// maxErrorBodySize bounds how much of a failed response body is kept in a StatusError.
const maxErrorBodySize = 512

// StatusError is returned when the server answers with a status other than 200 OK.
type StatusError struct {
	StatusCode int    // HTTP status code returned by the server
	Body       string // Leading bytes of the response body
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Unwrap exposes ErrRequestRejected for client errors that retrying cannot fix.
func (e *StatusError) Unwrap() error {
	if e.retriable() {
		return nil
	}

	return ErrRequestRejected
}

// retriable reports whether the status may succeed on a later attempt.
// Timeouts and throttling are the only client errors treated as transient.
func (e *StatusError) retriable() bool {
	switch {
	case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= 400 && e.StatusCode < 500:
		return false
	default:
		return true
	}
}

// request is the GraphQL-over-HTTP request body.
type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// response is the GraphQL-over-HTTP response envelope.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Err returns an error if the response carries GraphQL errors.
// It wraps ErrProviderReturnedError with every reported message.
func (r response) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}

	messages := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		messages[i] = e.Message
	}

	return fmt.Errorf("%w: %s", ErrProviderReturnedError, strings.Join(messages, "; "))
}

// Client defines the interface for a GraphQL client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Query sends the query document with the given variables and returns the raw
	// "data" member of the response. A nil variables map omits the member entirely.
	Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	endpoint   string                // URL of the GraphQL server
	headers    map[string]string     // headers added to every request
	httpClient *retryablehttp.Client // HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Query implements the Client interface.
//
// Only a 200 OK response is decoded. Any other status is reported as a *StatusError
// and transport failures are returned wrapped.
func (c *client) Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	requestID := uuid.NewString()
	logger.Debug(ctx, "graphql request", "request.id", requestID, "request.endpoint", c.endpoint)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphql request %s: %w", requestID, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		logger.Debug(ctx, "graphql request failed", "request.id", requestID, "response.status", res.StatusCode)
		return nil, &StatusError{StatusCode: res.StatusCode, Body: string(snippet)}
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data.Data, data.Err()
}

// config holds optional configuration parameters for the GraphQL client.
type config struct {
	headers     map[string]string
	httpOptions []httptransport.Option
}

// Option defines a functional option type used to customize the client configuration.
type Option func(*config)

// NewClient creates a new GraphQL client pointing to the specified endpoint.
// Optional configuration parameters can be supplied using functional options such as WithHeader.
func NewClient(endpoint string, opts ...Option) *client {
	cfg := config{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		endpoint:   endpoint,
		headers:    cfg.headers,
		httpClient: httptransport.NewClient(cfg.httpOptions...),
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *config) {
		c.headers[key] = value
	}
}

// WithHTTPOptions forwards options to the underlying HTTP client.
func WithHTTPOptions(opts ...httptransport.Option) Option {
	return func(c *config) {
		c.httpOptions = append(c.httpOptions, opts...)
	}
}

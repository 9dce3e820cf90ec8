// Package checkpointtail follows the checkpoint stream forward from a recent
// position and hands the balance changes of every page to a Sink.
//
// The tail is strictly sequential: it discovers a starting cursor, then asks for
// one page at a time, advancing only after a page was decoded and delivered.
package checkpointtail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/suiwatch/internal/pkg/logger"
	"github.com/gabapcia/suiwatch/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrDiscoveryFailed is returned by Run when no starting cursor could be obtained.
	ErrDiscoveryFailed = errors.New("checkpoint discovery failed")

	// ErrPageFailed is returned by Run when a page could not be fetched and the
	// service was configured with StopOnFailedPage, or when the page stayed
	// malformed after every attempt.
	ErrPageFailed = errors.New("checkpoint page failed")
)

// PageFailurePolicy decides what the tail does once every attempt at a page failed.
type PageFailurePolicy string

const (
	// SkipFailedPage counts the failed page as read and asks for the same cursor
	// again on the next iteration. Records of that page may be lost. Pages that
	// stay malformed are never skipped.
	SkipFailedPage PageFailurePolicy = "skip"

	// StopOnFailedPage makes Run return ErrPageFailed.
	StopOnFailedPage PageFailurePolicy = "fail"
)

const (
	defaultMaxPages     = 9
	defaultPollInterval = time.Second

	defaultRetryAttempts  = 5
	defaultRetryDelay     = 200 * time.Millisecond
	defaultRetryMaxDelay  = 5 * time.Second
	defaultRetryMaxJitter = 250 * time.Millisecond

	tracerName = "github.com/gabapcia/suiwatch/internal/checkpointtail"
)

// Service runs the checkpoint tail.
type Service interface {
	// Run discovers a starting cursor and delivers pages to the sink until the
	// page bound is reached, the tip is reached in batch mode, or ctx is done.
	Run(ctx context.Context) error
}

type service struct {
	source CheckpointSource
	sink   Sink

	retry             retry.Retry
	maxPages          int
	follow            bool
	pollInterval      time.Duration
	pageFailurePolicy PageFailurePolicy

	tracer trace.Tracer
}

var _ Service = (*service)(nil)

// discover obtains the starting anchor under the retry policy.
func (s *service) discover(ctx context.Context) (LatestAnchor, error) {
	ctx, span := s.tracer.Start(ctx, "checkpointtail.discover")
	defer span.End()

	var anchor LatestAnchor
	err := s.retry.Execute(ctx, func() error {
		var err error
		anchor, err = s.source.LatestAnchor(ctx)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "discovery failed")
		return LatestAnchor{}, fmt.Errorf("%w: %w", ErrDiscoveryFailed, err)
	}

	span.SetAttributes(
		attribute.String("checkpoint.start_cursor", string(anchor.StartCursor)),
		attribute.String("checkpoint.digest", anchor.Digest),
	)
	return anchor, nil
}

// fetchPage requests the page after cursor under the retry policy.
func (s *service) fetchPage(ctx context.Context, cursor Cursor, iteration int) (CheckpointPage, error) {
	ctx, span := s.tracer.Start(ctx, "checkpointtail.page", trace.WithAttributes(
		attribute.String("checkpoint.cursor", string(cursor)),
		attribute.Int("checkpoint.iteration", iteration),
	))
	defer span.End()

	var page CheckpointPage
	err := s.retry.Execute(ctx, func() error {
		var err error
		page, err = s.source.CheckpointPage(ctx, cursor)
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "page failed")
		return CheckpointPage{}, err
	}

	span.SetAttributes(
		attribute.String("checkpoint.end_cursor", string(page.EndCursor)),
		attribute.Int("checkpoint.count", page.Checkpoints),
		attribute.Int("checkpoint.balance_changes", len(page.BalanceChanges)),
	)
	return page, nil
}

// waitForTip blocks for the poll interval or until ctx is done.
func (s *service) waitForTip(ctx context.Context) error {
	timer := time.NewTimer(s.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// hasBudget reports whether another page may be read.
func (s *service) hasBudget(read int) bool {
	return s.maxPages == 0 || read < s.maxPages
}

// Run implements the Service interface.
//
// The cursor only moves after a page was delivered, so the cursors sent to the
// source are exactly the start cursor followed by each delivered EndCursor, with
// repeats only after a failed page or while waiting at the tip. Waiting at the
// tip does not consume the page budget.
func (s *service) Run(ctx context.Context) error {
	anchor, err := s.discover(ctx)
	if err != nil {
		return err
	}

	logger.Info(ctx, "checkpoint tail started",
		"checkpoint.start_cursor", anchor.StartCursor,
		"checkpoint.digest", anchor.Digest,
		"tail.max_pages", s.maxPages,
		"tail.follow", s.follow,
	)

	var (
		cursor = anchor.StartCursor
		read   int
	)
	for s.hasBudget(read) {
		page, err := s.fetchPage(ctx, cursor, read)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if errors.Is(err, ErrRequestRejected) {
				return err
			}

			if s.pageFailurePolicy == StopOnFailedPage || errors.Is(err, ErrMalformedResponse) {
				return fmt.Errorf("%w: cursor %q: %w", ErrPageFailed, cursor, err)
			}

			logger.Error(ctx, "checkpoint page skipped",
				"checkpoint.cursor", cursor,
				"tail.iteration", read,
				"error", err,
			)
			read++
			continue
		}

		if page.Checkpoints == 0 || page.EndCursor == cursor {
			if !s.follow {
				logger.Info(ctx, "checkpoint tip reached", "checkpoint.cursor", cursor, "tail.pages_read", read)
				return nil
			}

			if err := s.waitForTip(ctx); err != nil {
				return err
			}
			continue
		}

		s.sink.Accept(ctx, page.BalanceChanges)

		logger.Debug(ctx, "checkpoint page delivered",
			"checkpoint.cursor", cursor,
			"checkpoint.end_cursor", page.EndCursor,
			"checkpoint.count", page.Checkpoints,
			"checkpoint.balance_changes", len(page.BalanceChanges),
		)

		cursor = page.EndCursor
		read++

		if !page.HasNextPage && s.hasBudget(read) {
			if !s.follow {
				logger.Info(ctx, "checkpoint tip reached", "checkpoint.cursor", cursor, "tail.pages_read", read)
				return nil
			}

			if err := s.waitForTip(ctx); err != nil {
				return err
			}
		}
	}

	logger.Info(ctx, "checkpoint tail finished", "checkpoint.cursor", cursor, "tail.pages_read", read)
	return nil
}

type config struct {
	retry             retry.Retry
	maxPages          int
	follow            bool
	pollInterval      time.Duration
	pageFailurePolicy PageFailurePolicy
}

// Option configures the tail.
type Option func(*config)

// New creates a tail reading from source and delivering to sink.
//
// Defaults: nine pages, batch mode, SkipFailedPage and a retry policy of five
// attempts with jittered backoff that gives up early on rejected requests.
func New(source CheckpointSource, sink Sink, opts ...Option) *service {
	cfg := config{
		retry:             defaultRetry(),
		maxPages:          defaultMaxPages,
		follow:            false,
		pollInterval:      defaultPollInterval,
		pageFailurePolicy: SkipFailedPage,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		source:            source,
		sink:              sink,
		retry:             cfg.retry,
		maxPages:          cfg.maxPages,
		follow:            cfg.follow,
		pollInterval:      cfg.pollInterval,
		pageFailurePolicy: cfg.pageFailurePolicy,
		tracer:            otel.Tracer(tracerName),
	}
}

func defaultRetry() retry.Retry {
	return retry.New(
		retry.WithAttempts(defaultRetryAttempts),
		retry.WithDelay(defaultRetryDelay),
		retry.WithMaxDelay(defaultRetryMaxDelay),
		retry.WithMaxJitter(defaultRetryMaxJitter),
		retry.WithRetryIf(IsRetriable),
	)
}

// WithRetry sets the retry policy wrapped around every discovery and page request.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithMaxPages bounds how many pages are read, failed pages included.
// Zero removes the bound.
func WithMaxPages(n int) Option {
	return func(c *config) {
		c.maxPages = n
	}
}

// WithFollow keeps the tail waiting at the tip, polling every interval,
// instead of returning.
func WithFollow(pollInterval time.Duration) Option {
	return func(c *config) {
		c.follow = true
		c.pollInterval = pollInterval
	}
}

// WithPageFailurePolicy sets what happens once every attempt at a page failed.
func WithPageFailurePolicy(p PageFailurePolicy) Option {
	return func(c *config) {
		c.pageFailurePolicy = p
	}
}

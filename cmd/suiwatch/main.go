package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/suiwatch/internal/balancesink"
	"github.com/gabapcia/suiwatch/internal/checkpointtail"
	"github.com/gabapcia/suiwatch/internal/config"
	"github.com/gabapcia/suiwatch/internal/handlers/cli"
	"github.com/gabapcia/suiwatch/internal/infra/blockchain/sui"
	"github.com/gabapcia/suiwatch/internal/infra/storage/redis"
	"github.com/gabapcia/suiwatch/internal/pkg/logger"
	"github.com/gabapcia/suiwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/suiwatch/internal/pkg/telemetry"
	"github.com/gabapcia/suiwatch/internal/pkg/transport/graphql"
	httptransport "github.com/gabapcia/suiwatch/internal/pkg/transport/http"
	"github.com/gabapcia/suiwatch/internal/trackedaddr"
)

func main() {
	if err := run(context.Background()); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "suiwatch:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(logger.WithLevel(cfg.Log.Level)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	shutdown := telemetry.Noop()
	if cfg.Telemetry.Enabled {
		if shutdown, err = telemetry.Init(ctx, cfg.Telemetry.ServiceName); err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	endpoint, err := resolveEndpoint(cfg.Sui)
	if err != nil {
		return err
	}

	conn := graphql.NewClient(
		endpoint,
		graphql.WithHeader(sui.ShowUsageHeader, "true"),
		graphql.WithHTTPOptions(httptransport.WithTimeout(cfg.HTTP.Timeout)),
	)

	source := sui.NewClient(
		conn,
		sui.WithPageSize(cfg.Checkpoints.PageSize),
		sui.WithAnchorDepth(cfg.Checkpoints.AnchorDepth),
	)

	var (
		sinkOpts []balancesink.Option
		storage  trackedaddr.AddressStorage
	)

	switch {
	case cfg.Redis.Addr != "":
		rc, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rc.Close()

		storage = rc
		sinkOpts = append(sinkOpts, balancesink.WithAddressFilter(cfg.Sui.Network, rc))
	case len(cfg.TrackedAddresses) > 0:
		sinkOpts = append(sinkOpts, balancesink.WithAddressFilter(cfg.Sui.Network, balancesink.NewStaticFilter(cfg.TrackedAddresses...)))
	}

	tailOpts := []checkpointtail.Option{
		checkpointtail.WithRetry(newRetry(ctx, cfg.HTTP)),
		checkpointtail.WithMaxPages(cfg.Checkpoints.ToRead),
		checkpointtail.WithPageFailurePolicy(checkpointtail.PageFailurePolicy(cfg.Tail.OnPageFailure)),
	}
	if cfg.Tail.Follow {
		tailOpts = append(tailOpts, checkpointtail.WithFollow(cfg.Tail.PollInterval))
	}

	tailer := checkpointtail.New(source, balancesink.New(os.Stdout, sinkOpts...), tailOpts...)

	logger.Info(ctx, "suiwatch configured",
		"sui.network", cfg.Sui.Network,
		"sui.endpoint", endpoint,
		"checkpoints.to_read", cfg.Checkpoints.ToRead,
		"tail.follow", cfg.Tail.Follow,
	)

	return cli.Run(ctx, tailer, trackedaddr.New(storage), cfg.Sui.Network)
}

func resolveEndpoint(cfg config.SuiConfig) (string, error) {
	if cfg.GraphQLEndpoint != "" {
		return cfg.GraphQLEndpoint, nil
	}

	return sui.Endpoint(cfg.Network)
}

func newRetry(ctx context.Context, cfg config.HTTPConfig) retry.Retry {
	return retry.New(
		retry.WithAttempts(cfg.RetryLimit),
		retry.WithDelay(cfg.RetryDelay),
		retry.WithMaxDelay(cfg.RetryMaxDelay),
		retry.WithMaxJitter(cfg.RetryMaxJitter),
		retry.WithRetryIf(checkpointtail.IsRetriable),
		retry.WithOnRetry(logRetry(ctx, cfg.RetryLimit)),
	)
}

// logRetry logs failed attempts that will be retried. The hook also runs after
// the last attempt, which is left to the caller to report.
func logRetry(ctx context.Context, limit uint) func(attempt uint, err error) {
	return func(attempt uint, err error) {
		if attempt >= limit {
			return
		}

		logger.Warn(ctx, "sui request failed, retrying", "retry.attempt", attempt, "retry.limit", limit, "error", err)
	}
}

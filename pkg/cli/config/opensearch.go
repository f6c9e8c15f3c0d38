package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/kbops-lab/aoss-index/pkg/adapter/opensearch"
	"github.com/kbops-lab/aoss-index/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

type OpenSearch struct {
	requestTimeout time.Duration
	pollInterval   time.Duration
	waitTimeout    time.Duration
	insecure       bool
}

func (x *OpenSearch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "os-request-timeout",
			Usage:       "Timeout of the create-index call",
			Category:    "OpenSearch",
			Sources:     cli.EnvVars("AOSS_INDEX_OS_REQUEST_TIMEOUT"),
			Value:       5 * time.Minute,
			Destination: &x.requestTimeout,
		},
		&cli.DurationFlag{
			Name:        "os-poll-interval",
			Usage:       "Interval of the post-create visibility poll",
			Category:    "OpenSearch",
			Sources:     cli.EnvVars("AOSS_INDEX_OS_POLL_INTERVAL"),
			Value:       time.Second,
			Destination: &x.pollInterval,
		},
		&cli.DurationFlag{
			Name:        "os-wait-timeout",
			Usage:       "Upper bound of the post-create visibility wait",
			Category:    "OpenSearch",
			Sources:     cli.EnvVars("AOSS_INDEX_OS_WAIT_TIMEOUT"),
			Value:       time.Minute,
			Destination: &x.waitTimeout,
		},
		&cli.BoolFlag{
			Name:        "os-insecure",
			Usage:       "Connect over plain HTTP without request signing (local clusters only)",
			Category:    "OpenSearch",
			Sources:     cli.EnvVars("AOSS_INDEX_OS_INSECURE"),
			Destination: &x.insecure,
		},
	}
}

func (x OpenSearch) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("request_timeout", x.requestTimeout),
		slog.Duration("poll_interval", x.pollInterval),
		slog.Duration("wait_timeout", x.waitTimeout),
		slog.Bool("insecure", x.insecure),
	)
}

// ClientFactory returns a factory building a signed client per event.
func (x *OpenSearch) ClientFactory(awsCfg aws.Config) interfaces.IndexClientFactory {
	return func(ctx context.Context, host string) (interfaces.IndexClient, error) {
		opts := []opensearch.Option{
			opensearch.WithRequestTimeout(x.requestTimeout),
			opensearch.WithPollInterval(x.pollInterval),
			opensearch.WithWaitTimeout(x.waitTimeout),
		}
		if x.insecure {
			opts = append(opts, opensearch.WithInsecure())
		} else {
			opts = append(opts, opensearch.WithAWSConfig(awsCfg))
		}
		return opensearch.New(ctx, host, opts...)
	}
}

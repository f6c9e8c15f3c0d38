package config

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// AWS resolves the signing credentials and region. By default both come from
// the ambient execution environment (Lambda role, instance profile, shared
// config); static credentials are an override for local runs.
type AWS struct {
	region          string
	accessKeyID     string
	secretAccessKey string
	sessionToken    string
}

func (x *AWS) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "aws-region",
			Usage:       "AWS region of the collection",
			Category:    "AWS",
			Sources:     cli.EnvVars("AWS_REGION", "AWS_DEFAULT_REGION"),
			Destination: &x.region,
		},
		&cli.StringFlag{
			Name:        "aws-access-key-id",
			Usage:       "Static AWS access key ID (default: ambient credentials)",
			Category:    "AWS",
			Sources:     cli.EnvVars("AOSS_INDEX_AWS_ACCESS_KEY_ID"),
			Destination: &x.accessKeyID,
		},
		&cli.StringFlag{
			Name:        "aws-secret-access-key",
			Usage:       "Static AWS secret access key",
			Category:    "AWS",
			Sources:     cli.EnvVars("AOSS_INDEX_AWS_SECRET_ACCESS_KEY"),
			Destination: &x.secretAccessKey,
		},
		&cli.StringFlag{
			Name:        "aws-session-token",
			Usage:       "Static AWS session token",
			Category:    "AWS",
			Sources:     cli.EnvVars("AOSS_INDEX_AWS_SESSION_TOKEN"),
			Destination: &x.sessionToken,
		},
	}
}

func (x AWS) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("region", x.region),
		slog.Bool("static_credentials", x.accessKeyID != ""),
	)
}

func (x *AWS) Configure(ctx context.Context) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if x.region != "" {
		opts = append(opts, awsconfig.WithRegion(x.region))
	}

	hasKey := x.accessKeyID != ""
	hasSecret := x.secretAccessKey != ""
	if hasKey != hasSecret {
		return aws.Config{}, goerr.New("AWS access key and secret key must be set together")
	}
	if hasKey {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(x.accessKeyID, x.secretAccessKey, x.sessionToken)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, goerr.Wrap(err, "failed to load AWS configuration")
	}
	if cfg.Region == "" {
		return aws.Config{}, goerr.New("AWS region is not set")
	}

	return cfg, nil
}

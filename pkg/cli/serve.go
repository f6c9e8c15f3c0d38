package cli

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/kbops-lab/aoss-index/pkg/adapter/cfnresp"
	"github.com/kbops-lab/aoss-index/pkg/cli/config"
	lambda_controller "github.com/kbops-lab/aoss-index/pkg/controller/lambda"
	"github.com/kbops-lab/aoss-index/pkg/usecase"
	"github.com/kbops-lab/aoss-index/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		sentryCfg config.Sentry
		awsCfg    config.AWS
		osCfg     config.OpenSearch
	)

	flags := joinFlags(
		sentryCfg.Flags(),
		awsCfg.Flags(),
		osCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the Lambda custom resource handler",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			cfg, err := awsCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(
				usecase.WithIndexClientFactory(osCfg.ClientFactory(cfg)),
				usecase.WithResponder(cfnresp.New()),
			)
			handler := lambda_controller.New(uc)

			logging.Default().Info("starting custom resource handler",
				"aws", awsCfg, "opensearch", osCfg)

			lambda.StartWithOptions(handler.HandleEvent, lambda.WithContext(ctx))
			return nil
		},
	}
}

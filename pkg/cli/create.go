package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/kbops-lab/aoss-index/pkg/adapter/cfnresp"
	"github.com/kbops-lab/aoss-index/pkg/cli/config"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/index"
	"github.com/kbops-lab/aoss-index/pkg/utils/dryrun"
	"github.com/kbops-lab/aoss-index/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// cmdCreate provisions an index directly from the command line. It goes
// through the same property extraction as the event path, so a replay of a
// failed stack provision behaves identically.
func cmdCreate() *cli.Command {
	var (
		awsCfg config.AWS
		osCfg  config.OpenSearch

		collection    string
		endpoint      string
		indexName     string
		metadataField string
		textField     string
		vectorField   string
		vectorSize    int
		dryRun        bool
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "collection",
				Usage:       "Collection name",
				Required:    true,
				Sources:     cli.EnvVars("AOSS_INDEX_COLLECTION"),
				Destination: &collection,
			},
			&cli.StringFlag{
				Name:        "endpoint",
				Usage:       "Collection endpoint URL",
				Required:    true,
				Sources:     cli.EnvVars("AOSS_INDEX_ENDPOINT"),
				Destination: &endpoint,
			},
			&cli.StringFlag{
				Name:        "index-name",
				Usage:       "Name of the index to create",
				Required:    true,
				Sources:     cli.EnvVars("AOSS_INDEX_NAME"),
				Destination: &indexName,
			},
			&cli.StringFlag{
				Name:        "metadata-field",
				Usage:       "Field name of chunk metadata",
				Value:       "metadata",
				Sources:     cli.EnvVars("AOSS_INDEX_METADATA_FIELD"),
				Destination: &metadataField,
			},
			&cli.StringFlag{
				Name:        "text-field",
				Usage:       "Field name of chunk text",
				Value:       "text",
				Sources:     cli.EnvVars("AOSS_INDEX_TEXT_FIELD"),
				Destination: &textField,
			},
			&cli.StringFlag{
				Name:        "vector-field",
				Usage:       "Field name of the embedding vector",
				Value:       "vector",
				Sources:     cli.EnvVars("AOSS_INDEX_VECTOR_FIELD"),
				Destination: &vectorField,
			},
			&cli.IntFlag{
				Name:        "vector-size",
				Usage:       "Embedding dimensionality",
				Value:       index.DefaultVectorSize,
				Sources:     cli.EnvVars("AOSS_INDEX_VECTOR_SIZE"),
				Destination: &vectorSize,
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Print the index schema without calling the collection",
				Destination: &dryRun,
			},
		},
		awsCfg.Flags(),
		osCfg.Flags(),
	)

	return &cli.Command{
		Name:  "create",
		Usage: "Provision a vector index on a collection",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = dryrun.With(ctx, dryRun)

			props := index.Properties{
				"collection":        collection,
				"endpoint":          endpoint,
				"vector_index_name": indexName,
				"metadata_field":    metadataField,
				"text_field":        textField,
				"vector_field":      vectorField,
				"vector_size":       strconv.Itoa(vectorSize),
			}
			cfg, err := index.FromProperties(props)
			if err != nil {
				return err
			}

			schema := index.BuildSchema(cfg)
			if dryrun.IsDryRun(ctx) {
				body, err := schema.MarshalBody()
				if err != nil {
					return err
				}
				fmt.Println(string(body))
				return nil
			}

			awsConf, err := awsCfg.Configure(ctx)
			if err != nil {
				return err
			}

			// the console responder reports the same outcome line a stack
			// would receive, without a callback URL
			responder := cfnresp.NewConsole()
			event := cfn.Event{
				RequestType:        cfn.RequestCreate,
				ResourceProperties: props,
			}

			client, err := osCfg.ClientFactory(awsConf)(ctx, cfg.Host)
			if err != nil {
				return err
			}

			if err := client.CreateIndex(ctx, cfg.IndexName, schema); err != nil {
				if respErr := responder.Respond(ctx, event, cfn.StatusFailed, map[string]any{}); respErr != nil {
					logging.From(ctx).Warn("failed to report outcome", logging.ErrAttr(respErr))
				}
				return err
			}

			logging.From(ctx).Info("index created", "config", cfg)
			return responder.Respond(ctx, event, cfn.StatusSuccess, map[string]any{})
		},
	}
}

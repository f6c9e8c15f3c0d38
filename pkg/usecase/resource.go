package usecase

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/errs"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/index"
	"github.com/kbops-lab/aoss-index/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// HandleResource dispatches one custom resource event. Only Create events
// provision anything; the resource exists for first-time provisioning, so
// updates and deletes are a strict no-op without extraction or signaling.
func (uc *UseCases) HandleResource(ctx context.Context, event cfn.Event) error {
	logger := logging.From(ctx)

	if event.RequestType != cfn.RequestCreate {
		logger.Debug("ignoring non-create event",
			slog.String("request_type", string(event.RequestType)))
		return nil
	}

	cfg, err := index.FromProperties(index.Properties(event.ResourceProperties))
	if err != nil {
		// Malformed events surface to the runtime as-is instead of becoming
		// a FAILED signal; the protected region starts after extraction.
		return err
	}

	logger.Info("creating vector index", slog.Any("config", cfg))

	if err := uc.provision(ctx, cfg); err != nil {
		errs.Handle(ctx, err)
		return uc.respond(ctx, event, cfn.StatusFailed)
	}

	return uc.respond(ctx, event, cfn.StatusSuccess)
}

func (uc *UseCases) provision(ctx context.Context, cfg *index.Config) error {
	client, err := uc.newIndexClient(ctx, cfg.Host)
	if err != nil {
		return err
	}

	return client.CreateIndex(ctx, cfg.IndexName, index.BuildSchema(cfg))
}

func (uc *UseCases) respond(ctx context.Context, event cfn.Event, status cfn.StatusType) error {
	if err := uc.responder.Respond(ctx, event, status, map[string]any{}); err != nil {
		return goerr.Wrap(err, "failed to deliver status signal", goerr.V("status", status))
	}
	return nil
}

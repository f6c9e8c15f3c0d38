// Package lambda adapts custom resource events delivered by the Lambda
// runtime to the resource usecases.
package lambda

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/kbops-lab/aoss-index/pkg/domain/interfaces"
	"github.com/kbops-lab/aoss-index/pkg/utils/logging"
	"github.com/kbops-lab/aoss-index/pkg/utils/request_id"
)

type Handler struct {
	uc interfaces.ResourceUsecases
}

func New(uc interfaces.ResourceUsecases) *Handler {
	return &Handler{uc: uc}
}

// HandleEvent is the function registered with the Lambda runtime. It seeds
// the context with a request-scoped logger before dispatching.
func (x *Handler) HandleEvent(ctx context.Context, event cfn.Event) error {
	reqID := event.RequestID
	if reqID == "" {
		ctx, reqID = request_id.Generate(ctx)
	} else {
		ctx = request_id.With(ctx, reqID)
	}

	logger := logging.Default().With(
		slog.String("request_id", reqID),
		slog.String("stack_id", event.StackID),
		slog.String("logical_resource_id", event.LogicalResourceID),
	)
	ctx = logging.With(ctx, logger)

	logger.Info("received custom resource event",
		slog.String("request_type", string(event.RequestType)))

	return x.uc.HandleResource(ctx, event)
}

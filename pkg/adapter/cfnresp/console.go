package cfnresp

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/kbops-lab/aoss-index/pkg/domain/interfaces"
	"github.com/kbops-lab/aoss-index/pkg/utils/logging"
)

// Console reports the outcome to the log instead of calling back. Used when
// provisioning is driven from the command line.
type Console struct{}

var _ interfaces.Responder = &Console{}

func NewConsole() *Console {
	return &Console{}
}

func (x *Console) Respond(ctx context.Context, event cfn.Event, status cfn.StatusType, data map[string]any) error {
	logging.From(ctx).Info("provisioning result",
		slog.String("status", string(status)),
		slog.Any("data", data),
	)
	return nil
}

// Package cfnresp delivers custom resource outcomes back to CloudFormation
// through the pre-signed response URL carried by the event.
package cfnresp

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/kbops-lab/aoss-index/pkg/domain/interfaces"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/errs"
	"github.com/kbops-lab/aoss-index/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

type Client struct{}

var _ interfaces.Responder = &Client{}

func New() *Client {
	return &Client{}
}

// Respond PUTs the response document to the event's pre-signed URL. The wire
// format is the one CloudFormation expects; aws-lambda-go reproduces the
// cfnresponse body exactly.
func (x *Client) Respond(ctx context.Context, event cfn.Event, status cfn.StatusType, data map[string]any) error {
	r := cfn.NewResponse(&event)
	r.Status = status
	r.Data = data
	r.PhysicalResourceID = physicalResourceID(event)
	if status == cfn.StatusFailed {
		r.Reason = "See the details in CloudWatch Log Stream: " + os.Getenv("AWS_LAMBDA_LOG_STREAM_NAME")
	}

	logging.From(ctx).Info("sending response",
		slog.String("status", string(status)),
		slog.String("stack_id", event.StackID),
		slog.String("logical_resource_id", event.LogicalResourceID),
	)

	if err := r.Send(); err != nil {
		return goerr.Wrap(err, "failed to send CloudFormation response",
			goerr.V("status", status), goerr.T(errs.TagExternal))
	}
	return nil
}

// physicalResourceID keeps the ID stable across invocations of the same
// resource. CloudFormation treats an ID change as a replacement.
func physicalResourceID(event cfn.Event) string {
	if event.PhysicalResourceID != "" {
		return event.PhysicalResourceID
	}
	if stream := os.Getenv("AWS_LAMBDA_LOG_STREAM_NAME"); stream != "" {
		return stream
	}
	return event.LogicalResourceID + "-" + event.RequestID
}

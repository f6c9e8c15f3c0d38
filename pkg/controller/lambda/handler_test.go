package lambda_test

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	lambda_controller "github.com/kbops-lab/aoss-index/pkg/controller/lambda"
	"github.com/kbops-lab/aoss-index/pkg/domain/mock"
	"github.com/kbops-lab/aoss-index/pkg/utils/request_id"
	"github.com/m-mizutani/gt"
)

func TestHandleEvent(t *testing.T) {
	t.Run("dispatches event with request ID from event", func(t *testing.T) {
		var gotReqID string
		ucMock := &mock.ResourceUsecasesMock{
			HandleResourceFunc: func(ctx context.Context, event cfn.Event) error {
				gotReqID = request_id.FromContext(ctx)
				return nil
			},
		}

		handler := lambda_controller.New(ucMock)
		event := cfn.Event{
			RequestType: cfn.RequestCreate,
			RequestID:   "req-42",
		}

		gt.NoError(t, handler.HandleEvent(context.Background(), event))
		gt.Value(t, gotReqID).Equal("req-42")
		gt.Array(t, ucMock.HandleResourceCalls()).Length(1)
	})

	t.Run("generates request ID when event has none", func(t *testing.T) {
		var gotReqID string
		ucMock := &mock.ResourceUsecasesMock{
			HandleResourceFunc: func(ctx context.Context, event cfn.Event) error {
				gotReqID = request_id.FromContext(ctx)
				return nil
			},
		}

		handler := lambda_controller.New(ucMock)
		gt.NoError(t, handler.HandleEvent(context.Background(), cfn.Event{RequestType: cfn.RequestDelete}))
		gt.Value(t, gotReqID).NotEqual("")
	})
}

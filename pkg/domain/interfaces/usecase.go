package interfaces

import (
	"context"

	"github.com/aws/aws-lambda-go/cfn"
)

type ResourceUsecases interface {
	HandleResource(ctx context.Context, event cfn.Event) error
}

package interfaces

import (
	"context"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/index"
)

// IndexClient is the narrow surface of the search engine the provisioner
// needs. The real implementation signs requests against an OpenSearch
// Serverless collection.
type IndexClient interface {
	CreateIndex(ctx context.Context, name string, schema *index.Schema) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// IndexClientFactory builds a client bound to the collection endpoint of a
// single event. The host comes from the event, so the client cannot be built
// ahead of dispatch.
type IndexClientFactory func(ctx context.Context, host string) (IndexClient, error)

// Responder delivers the invocation outcome back to the orchestrator.
type Responder interface {
	Respond(ctx context.Context, event cfn.Event, status cfn.StatusType, data map[string]any) error
}

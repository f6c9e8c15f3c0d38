package cfnresp_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/kbops-lab/aoss-index/pkg/adapter/cfnresp"
	"github.com/m-mizutani/gt"
)

func TestRespond(t *testing.T) {
	ctx := context.Background()

	var gotMethod string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, err := io.ReadAll(r.Body)
		gt.NoError(t, err)
		gt.NoError(t, json.Unmarshal(raw, &gotBody))
	}))
	defer server.Close()

	event := cfn.Event{
		RequestType:        cfn.RequestCreate,
		RequestID:          "req-1",
		ResponseURL:        server.URL,
		StackID:            "arn:aws:cloudformation:us-east-1:123456789012:stack/s/1",
		LogicalResourceID:  "VectorIndex",
		PhysicalResourceID: "vector-index-1",
	}

	gt.NoError(t, cfnresp.New().Respond(ctx, event, cfn.StatusSuccess, map[string]any{}))

	gt.Value(t, gotMethod).Equal(http.MethodPut)
	gt.Value(t, gotBody["Status"]).Equal("SUCCESS")
	gt.Value(t, gotBody["RequestId"]).Equal("req-1")
	gt.Value(t, gotBody["StackId"]).Equal("arn:aws:cloudformation:us-east-1:123456789012:stack/s/1")
	gt.Value(t, gotBody["LogicalResourceId"]).Equal("VectorIndex")
	gt.Value(t, gotBody["PhysicalResourceId"]).Equal("vector-index-1")
}

func TestRespondFailed(t *testing.T) {
	ctx := context.Background()
	t.Setenv("AWS_LAMBDA_LOG_STREAM_NAME", "")

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer server.Close()

	event := cfn.Event{
		RequestType:       cfn.RequestCreate,
		RequestID:         "req-2",
		ResponseURL:       server.URL,
		StackID:           "arn:aws:cloudformation:us-east-1:123456789012:stack/s/1",
		LogicalResourceID: "VectorIndex",
	}

	gt.NoError(t, cfnresp.New().Respond(ctx, event, cfn.StatusFailed, map[string]any{}))

	gt.Value(t, gotBody["Status"]).Equal("FAILED")
	// no physical resource ID on the event, so a stable fallback is derived
	gt.Value(t, gotBody["PhysicalResourceId"]).Equal("VectorIndex-req-2")
}

func TestConsole(t *testing.T) {
	ctx := context.Background()

	// the console responder never calls back, so the event's response URL is
	// intentionally unreachable
	event := cfn.Event{
		RequestType: cfn.RequestCreate,
		ResponseURL: "http://127.0.0.1:1/never",
	}

	gt.NoError(t, cfnresp.NewConsole().Respond(ctx, event, cfn.StatusSuccess, map[string]any{}))
}

// Package opensearch is a thin client for index provisioning on managed
// OpenSearch collections, with SigV4 request signing for the serverless
// service identity.
package opensearch

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/kbops-lab/aoss-index/pkg/domain/interfaces"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/errs"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/index"
	"github.com/kbops-lab/aoss-index/pkg/utils/logging"
	"github.com/kbops-lab/aoss-index/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	opensearchgo "github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
	requestsigner "github.com/opensearch-project/opensearch-go/v2/signer/awsv2"
)

// ServiceName is the request-signing service identity of OpenSearch
// Serverless.
const ServiceName = "aoss"

const (
	defaultRequestTimeout = 5 * time.Minute
	defaultPollInterval   = time.Second
	defaultWaitTimeout    = time.Minute
)

type Client struct {
	host   string
	client *opensearchgo.Client

	requestTimeout time.Duration
	pollInterval   time.Duration
	waitTimeout    time.Duration
}

var _ interfaces.IndexClient = &Client{}

type options struct {
	awsCfg         *aws.Config
	insecure       bool
	requestTimeout time.Duration
	pollInterval   time.Duration
	waitTimeout    time.Duration
}

type Option func(*options)

// WithAWSConfig enables SigV4 signing of all requests with credentials and
// region from the given AWS configuration.
func WithAWSConfig(cfg aws.Config) Option {
	return func(x *options) {
		x.awsCfg = &cfg
	}
}

// WithInsecure connects over plain HTTP. Intended for local clusters.
func WithInsecure() Option {
	return func(x *options) {
		x.insecure = true
	}
}

// WithRequestTimeout bounds the create-index call. Collection provisioning
// can be slow, so the default is generous (5 minutes).
func WithRequestTimeout(d time.Duration) Option {
	return func(x *options) {
		if d > 0 {
			x.requestTimeout = d
		}
	}
}

// WithPollInterval sets the interval of the post-create visibility poll.
func WithPollInterval(d time.Duration) Option {
	return func(x *options) {
		if d > 0 {
			x.pollInterval = d
		}
	}
}

// WithWaitTimeout caps the total time spent waiting for the created index to
// become visible.
func WithWaitTimeout(d time.Duration) Option {
	return func(x *options) {
		if d > 0 {
			x.waitTimeout = d
		}
	}
}

// New builds a client for the collection at host. The host must be a bare
// hostname; it typically comes from the event's endpoint property and can be
// empty when that property was malformed, which is rejected here so the
// caller can report a regular provisioning failure.
func New(ctx context.Context, host string, opts ...Option) (*Client, error) {
	if host == "" {
		return nil, goerr.New("collection endpoint host is empty", goerr.T(errs.TagValidation))
	}

	opt := &options{
		requestTimeout: defaultRequestTimeout,
		pollInterval:   defaultPollInterval,
		waitTimeout:    defaultWaitTimeout,
	}
	for _, f := range opts {
		f(opt)
	}

	scheme := "https"
	if opt.insecure {
		scheme = "http"
	}

	cfg := opensearchgo.Config{
		Addresses: []string{scheme + "://" + host},
	}

	if opt.awsCfg != nil {
		signer, err := requestsigner.NewSignerWithService(*opt.awsCfg, ServiceName)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create request signer", goerr.T(errs.TagInternal))
		}
		cfg.Signer = signer
	}

	client, err := opensearchgo.NewClient(cfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create opensearch client",
			goerr.V("host", host), goerr.T(errs.TagInternal))
	}

	return &Client{
		host:           host,
		client:         client,
		requestTimeout: opt.requestTimeout,
		pollInterval:   opt.pollInterval,
		waitTimeout:    opt.waitTimeout,
	}, nil
}

// CreateIndex submits the index definition and blocks until the created
// index is visible to readers.
func (x *Client) CreateIndex(ctx context.Context, name string, schema *index.Schema) error {
	body, err := schema.MarshalBody()
	if err != nil {
		return err
	}

	logging.From(ctx).Info("creating index",
		slog.String("index", name), slog.String("host", x.host))

	if err := x.doCreate(ctx, name, body); err != nil {
		return err
	}

	return x.waitUntilVisible(ctx, name)
}

func (x *Client) doCreate(ctx context.Context, name string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, x.requestTimeout)
	defer cancel()

	req := opensearchapi.IndicesCreateRequest{
		Index: name,
		Body:  bytes.NewReader(body),
	}
	res, err := req.Do(ctx, x.client)
	if err != nil {
		return goerr.Wrap(errs.ErrIndexCreation, "create index request failed",
			goerr.V("index", name), goerr.V("host", x.host), goerr.V("cause", err.Error()),
			goerr.T(errs.TagExternal))
	}
	defer safe.Close(ctx, res.Body)

	if res.IsError() {
		return goerr.Wrap(errs.ErrIndexCreation, "create index returned an error response",
			goerr.V("index", name), goerr.V("status", res.StatusCode), goerr.V("response", res.String()),
			goerr.T(errs.TagExternal))
	}

	return nil
}

// waitUntilVisible polls for the created index until a reader can see it.
// The knowledge base service rejects an index that is signaled before it is
// visible, so creation is not done until the existence check passes.
func (x *Client) waitUntilVisible(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, x.waitTimeout)
	defer cancel()

	ticker := time.NewTicker(x.pollInterval)
	defer ticker.Stop()

	for {
		exists, err := x.IndexExists(ctx, name)
		if err == nil && exists {
			return nil
		}
		if err != nil {
			logging.From(ctx).Warn("index visibility check failed, retrying",
				slog.String("index", name), logging.ErrAttr(err))
		}

		select {
		case <-ctx.Done():
			return goerr.Wrap(errs.ErrIndexCreation, "index did not become visible in time",
				goerr.V("index", name), goerr.V("timeout", x.waitTimeout.String()),
				goerr.T(errs.TagTimeout))
		case <-ticker.C:
		}
	}
}

// IndexExists reports whether the named index is visible on the collection.
func (x *Client) IndexExists(ctx context.Context, name string) (bool, error) {
	req := opensearchapi.IndicesExistsRequest{
		Index: []string{name},
	}
	res, err := req.Do(ctx, x.client)
	if err != nil {
		return false, goerr.Wrap(err, "index exists request failed",
			goerr.V("index", name), goerr.T(errs.TagExternal))
	}
	defer safe.Close(ctx, res.Body)

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, goerr.New("unexpected status from index exists check",
			goerr.V("index", name), goerr.V("status", res.StatusCode), goerr.T(errs.TagExternal))
	}
}

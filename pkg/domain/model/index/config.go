package index

import (
	"log/slog"
	"net/url"
	"strconv"

	"github.com/kbops-lab/aoss-index/pkg/domain/model/errs"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultVectorSize is the embedding dimensionality used when no explicit
// vector_size is given.
const DefaultVectorSize = 1024

// Config is the resolved configuration of one index provisioning run. It is
// built once per event and never mutated.
type Config struct {
	Host          string
	Collection    string
	IndexName     string
	MetadataField string
	TextField     string
	VectorField   string
	VectorSize    int
}

func (x *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", x.Host),
		slog.String("collection", x.Collection),
		slog.String("index_name", x.IndexName),
		slog.String("metadata_field", x.MetadataField),
		slog.String("text_field", x.TextField),
		slog.String("vector_field", x.VectorField),
		slog.Int("vector_size", x.VectorSize),
	)
}

// FromProperties builds a Config from the resource properties of a create
// event. Every key except the endpoint host is required verbatim.
//
// The host is whatever url.Parse extracts from the endpoint property. An
// endpoint without a parseable hostname yields an empty host here; rejecting
// it is left to the client so that the failure is reported through the
// regular FAILED signal path rather than as a malformed event.
func FromProperties(props Properties) (*Config, error) {
	collection, err := props.Get("collection")
	if err != nil {
		return nil, err
	}

	endpoint, err := props.Get("endpoint")
	if err != nil {
		return nil, err
	}

	indexName, err := props.Get("vector_index_name")
	if err != nil {
		return nil, err
	}

	metadataField, err := props.Get("metadata_field")
	if err != nil {
		return nil, err
	}

	textField, err := props.Get("text_field")
	if err != nil {
		return nil, err
	}

	vectorField, err := props.Get("vector_field")
	if err != nil {
		return nil, err
	}

	rawSize, err := props.Get("vector_size")
	if err != nil {
		return nil, err
	}
	vectorSize, err := strconv.Atoi(rawSize)
	if err != nil {
		return nil, goerr.Wrap(errs.ErrInvalidProperty, "vector_size must be an integer",
			goerr.V("vector_size", rawSize), goerr.T(errs.TagValidation))
	}
	if vectorSize <= 0 {
		return nil, goerr.Wrap(errs.ErrInvalidProperty, "vector_size must be positive",
			goerr.V("vector_size", vectorSize), goerr.T(errs.TagValidation))
	}

	return &Config{
		Host:          hostnameOf(endpoint),
		Collection:    collection,
		IndexName:     indexName,
		MetadataField: metadataField,
		TextField:     textField,
		VectorField:   vectorField,
		VectorSize:    vectorSize,
	}, nil
}

// hostnameOf extracts the bare hostname of the collection endpoint. Scheme,
// port and path are discarded.
func hostnameOf(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

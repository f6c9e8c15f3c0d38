package index_test

import (
	"errors"
	"testing"

	"github.com/kbops-lab/aoss-index/pkg/domain/model/errs"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/index"
	"github.com/m-mizutani/gt"
)

func validProps() index.Properties {
	return index.Properties{
		"collection":        "c1",
		"endpoint":          "https://abc.us-east-1.aoss.amazonaws.com",
		"vector_index_name": "idx1",
		"metadata_field":    "meta",
		"text_field":        "text",
		"vector_field":      "vec",
		"vector_size":       "1024",
	}
}

func TestFromProperties(t *testing.T) {
	t.Run("valid event properties", func(t *testing.T) {
		cfg, err := index.FromProperties(validProps())
		gt.NoError(t, err)
		gt.Value(t, cfg.Host).Equal("abc.us-east-1.aoss.amazonaws.com")
		gt.Value(t, cfg.Collection).Equal("c1")
		gt.Value(t, cfg.IndexName).Equal("idx1")
		gt.Value(t, cfg.MetadataField).Equal("meta")
		gt.Value(t, cfg.TextField).Equal("text")
		gt.Value(t, cfg.VectorField).Equal("vec")
		gt.Value(t, cfg.VectorSize).Equal(1024)
	})

	t.Run("endpoint with port and path is reduced to hostname", func(t *testing.T) {
		props := validProps()
		props["endpoint"] = "https://abc.us-east-1.aoss.amazonaws.com:443/some/path"
		cfg, err := index.FromProperties(props)
		gt.NoError(t, err)
		gt.Value(t, cfg.Host).Equal("abc.us-east-1.aoss.amazonaws.com")
	})

	t.Run("missing required property", func(t *testing.T) {
		for _, key := range []string{
			"collection", "endpoint", "vector_index_name",
			"metadata_field", "text_field", "vector_field", "vector_size",
		} {
			props := validProps()
			delete(props, key)
			_, err := index.FromProperties(props)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, errs.ErrMissingProperty))
		}
	})

	t.Run("non-numeric vector_size", func(t *testing.T) {
		props := validProps()
		props["vector_size"] = "many"
		_, err := index.FromProperties(props)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, errs.ErrInvalidProperty))
	})

	t.Run("non-positive vector_size", func(t *testing.T) {
		for _, size := range []string{"0", "-3"} {
			props := validProps()
			props["vector_size"] = size
			_, err := index.FromProperties(props)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, errs.ErrInvalidProperty))
		}
	})

	t.Run("endpoint without parseable hostname yields empty host", func(t *testing.T) {
		props := validProps()
		props["endpoint"] = "not-a-valid-endpoint"
		cfg, err := index.FromProperties(props)
		gt.NoError(t, err)
		gt.Value(t, cfg.Host).Equal("")
	})

	t.Run("garbage endpoint yields empty host", func(t *testing.T) {
		props := validProps()
		props["endpoint"] = "http://[::1]:namedport"
		cfg, err := index.FromProperties(props)
		gt.NoError(t, err)
		gt.Value(t, cfg.Host).Equal("")
	})
}

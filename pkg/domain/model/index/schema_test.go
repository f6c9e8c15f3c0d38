package index_test

import (
	"bytes"
	"testing"

	"github.com/kbops-lab/aoss-index/pkg/domain/model/index"
	"github.com/kbops-lab/aoss-index/pkg/utils/ptr"
	"github.com/m-mizutani/gt"
)

func TestBuildSchema(t *testing.T) {
	cfg := &index.Config{
		Host:          "abc.us-east-1.aoss.amazonaws.com",
		Collection:    "c1",
		IndexName:     "idx1",
		MetadataField: "meta",
		TextField:     "text",
		VectorField:   "vec",
		VectorSize:    1024,
	}

	schema := index.BuildSchema(cfg)

	t.Run("vector search enabled", func(t *testing.T) {
		gt.True(t, schema.Settings.KNN)
	})

	t.Run("metadata field is unindexed text", func(t *testing.T) {
		prop := schema.Mappings.Properties["meta"]
		gt.Value(t, prop.Type).Equal("text")
		gt.NotNil(t, prop.Index)
		gt.False(t, ptr.Deref(prop.Index))
	})

	t.Run("text field is indexed text", func(t *testing.T) {
		prop := schema.Mappings.Properties["text"]
		gt.Value(t, prop.Type).Equal("text")
		gt.Nil(t, prop.Index)
	})

	t.Run("id and source-uri carry exact-match sub-field", func(t *testing.T) {
		for _, name := range []string{"id", index.SourceURIField} {
			prop := schema.Mappings.Properties[name]
			gt.Value(t, prop.Type).Equal("text")
			kw, ok := prop.Fields["keyword"]
			gt.True(t, ok)
			gt.Value(t, kw.Type).Equal("keyword")
			gt.Value(t, kw.IgnoreAbove).Equal(256)
		}
	})

	t.Run("vector field uses hnsw with fixed parameters", func(t *testing.T) {
		prop := schema.Mappings.Properties["vec"]
		gt.Value(t, prop.Type).Equal("knn_vector")
		gt.Value(t, prop.Dimension).Equal(1024)
		gt.NotNil(t, prop.Method)
		gt.Value(t, prop.Method.Name).Equal("hnsw")
		gt.Value(t, prop.Method.Engine).Equal("faiss")
		gt.Value(t, prop.Method.Parameters.EFConstruction).Equal(512)
		gt.Value(t, prop.Method.Parameters.M).Equal(16)
	})

	t.Run("marshalled body is deterministic", func(t *testing.T) {
		first, err := schema.MarshalBody()
		gt.NoError(t, err)
		second, err := index.BuildSchema(cfg).MarshalBody()
		gt.NoError(t, err)
		gt.True(t, bytes.Equal(first, second))
	})

	t.Run("marshalled body carries expected settings", func(t *testing.T) {
		body, err := schema.MarshalBody()
		gt.NoError(t, err)
		gt.S(t, string(body)).
			Contains(`"index.knn":true`).
			Contains(`"dimension":1024`).
			Contains(`"ef_construction":512`).
			Contains(`"ignore_above":256`).
			Contains(`"x-amz-bedrock-kb-source-uri"`)
	})
}

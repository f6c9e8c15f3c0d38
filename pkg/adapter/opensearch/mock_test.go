package opensearch_test

import (
	"context"
	"testing"

	"github.com/kbops-lab/aoss-index/pkg/adapter/opensearch"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/index"
	"github.com/m-mizutani/gt"
)

func TestMock(t *testing.T) {
	ctx := context.Background()

	t.Run("created index is stored", func(t *testing.T) {
		mock := opensearch.NewMock()
		schema := index.BuildSchema(testIndexConfig())

		gt.NoError(t, mock.CreateIndex(ctx, "idx1", schema))
		gt.Value(t, mock.Schema("idx1")).Equal(schema)

		exists, err := mock.IndexExists(ctx, "idx1")
		gt.NoError(t, err)
		gt.True(t, exists)
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		mock := opensearch.NewMock()
		schema := index.BuildSchema(testIndexConfig())

		gt.NoError(t, mock.CreateIndex(ctx, "idx1", schema))
		gt.Error(t, mock.CreateIndex(ctx, "idx1", schema))
	})

	t.Run("settle delay hides a fresh index", func(t *testing.T) {
		mock := opensearch.NewMock()
		mock.SettleChecks = 2
		gt.NoError(t, mock.CreateIndex(ctx, "idx1", index.BuildSchema(testIndexConfig())))

		for i := 0; i < 2; i++ {
			exists, err := mock.IndexExists(ctx, "idx1")
			gt.NoError(t, err)
			gt.False(t, exists)
		}

		exists, err := mock.IndexExists(ctx, "idx1")
		gt.NoError(t, err)
		gt.True(t, exists)
	})
}

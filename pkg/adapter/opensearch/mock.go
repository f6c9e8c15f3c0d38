package opensearch

import (
	"context"
	"sync"

	"github.com/kbops-lab/aoss-index/pkg/domain/interfaces"
	"github.com/kbops-lab/aoss-index/pkg/domain/model/index"
	"github.com/m-mizutani/goerr/v2"
)

// Mock is an in-memory IndexClient. A created index becomes visible only
// after SettleChecks existence lookups, mimicking the eventual consistency
// of the managed service.
type Mock struct {
	mu      sync.Mutex
	schemas map[string]*index.Schema
	checks  map[string]int

	CreateErr    error
	SettleChecks int
}

var _ interfaces.IndexClient = &Mock{}

func NewMock() *Mock {
	return &Mock{
		schemas: make(map[string]*index.Schema),
		checks:  make(map[string]int),
	}
}

func (m *Mock) CreateIndex(ctx context.Context, name string, schema *index.Schema) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}
	if _, ok := m.schemas[name]; ok {
		return goerr.New("index already exists", goerr.V("index", name))
	}
	m.schemas[name] = schema
	return nil
}

func (m *Mock) IndexExists(ctx context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.schemas[name]; !ok {
		return false, nil
	}
	m.checks[name]++
	return m.checks[name] > m.SettleChecks, nil
}

// Schema returns the stored definition of a created index, or nil.
func (m *Mock) Schema(name string) *index.Schema {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.schemas[name]
}

package index

import (
	"encoding/json"

	"github.com/kbops-lab/aoss-index/pkg/domain/model/errs"
	"github.com/kbops-lab/aoss-index/pkg/utils/ptr"
	"github.com/m-mizutani/goerr/v2"
)

// SourceURIField is the metadata field Bedrock knowledge bases write the
// ingestion source location into. Its name is fixed by the consumer.
const SourceURIField = "x-amz-bedrock-kb-source-uri"

const (
	keywordMaxLength   = 256
	hnswEFConstruction = 512
	hnswM              = 16
)

// Schema is the index definition document sent to OpenSearch.
type Schema struct {
	Settings Settings `json:"settings"`
	Mappings Mappings `json:"mappings"`
}

type Settings struct {
	KNN bool `json:"index.knn"`
}

type Mappings struct {
	Properties map[string]Property `json:"properties"`
}

type Property struct {
	Type      string             `json:"type"`
	Index     *bool              `json:"index,omitempty"`
	Dimension int                `json:"dimension,omitempty"`
	Fields    map[string]Keyword `json:"fields,omitempty"`
	Method    *Method            `json:"method,omitempty"`
}

type Keyword struct {
	Type        string `json:"type"`
	IgnoreAbove int    `json:"ignore_above,omitempty"`
}

type Method struct {
	Name       string           `json:"name"`
	Engine     string           `json:"engine"`
	Parameters MethodParameters `json:"parameters"`
}

type MethodParameters struct {
	EFConstruction int `json:"ef_construction"`
	M              int `json:"m"`
}

// BuildSchema produces the index definition for the given configuration. The
// result depends only on cfg; encoding/json sorts map keys, so the marshalled
// body is identical across invocations with the same configuration.
func BuildSchema(cfg *Config) *Schema {
	exactMatch := map[string]Keyword{
		"keyword": {Type: "keyword", IgnoreAbove: keywordMaxLength},
	}

	return &Schema{
		Settings: Settings{KNN: true},
		Mappings: Mappings{
			Properties: map[string]Property{
				cfg.MetadataField: {Type: "text", Index: ptr.Ref(false)},
				cfg.TextField:     {Type: "text"},
				"id":              {Type: "text", Fields: exactMatch},
				SourceURIField:    {Type: "text", Fields: exactMatch},
				cfg.VectorField: {
					Type:      "knn_vector",
					Dimension: cfg.VectorSize,
					Method: &Method{
						Name:   "hnsw",
						Engine: "faiss",
						Parameters: MethodParameters{
							EFConstruction: hnswEFConstruction,
							M:              hnswM,
						},
					},
				},
			},
		},
	}
}

// MarshalBody serializes the schema into the create-index request body.
func (s *Schema) MarshalBody() ([]byte, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal index schema", goerr.T(errs.TagInternal))
	}
	return body, nil
}

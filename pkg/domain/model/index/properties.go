package index

import (
	"github.com/kbops-lab/aoss-index/pkg/domain/model/errs"
	"github.com/m-mizutani/goerr/v2"
)

// Properties is the raw ResourceProperties mapping of a CloudFormation
// custom resource event. Values arrive as JSON, so lookups go through any.
type Properties map[string]any

// Get returns the string value for key. Absent or null values are an error.
func (p Properties) Get(key string) (string, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", goerr.Wrap(errs.ErrMissingProperty, "property is required",
			goerr.V("key", key), goerr.T(errs.TagValidation))
	}

	s, ok := v.(string)
	if !ok {
		return "", goerr.Wrap(errs.ErrInvalidProperty, "property must be a string",
			goerr.V("key", key), goerr.V("value", v), goerr.T(errs.TagValidation))
	}

	return s, nil
}

// Lookup returns the string value for key, or an empty string when the key is
// absent or not a string.
func (p Properties) Lookup(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

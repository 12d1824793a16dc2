// Package schema embeds the JSON schema for the metrics envelope, the
// contract between this tool and the dashboard UI.
package schema

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed metrics-schema.json
var metricsSchema []byte

// ValidateEnvelope checks a serialized metrics envelope against the embedded
// schema and returns the validation findings. An error means the document or
// schema could not be processed at all, not that validation failed.
func ValidateEnvelope(document []byte) (*gojsonschema.Result, error) {
	schemaLoader := gojsonschema.NewBytesLoader(metricsSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, validateErr := gojsonschema.Validate(schemaLoader, documentLoader)
	if validateErr != nil {
		return nil, fmt.Errorf("validate envelope: %w", validateErr)
	}

	return result, nil
}

package utils

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/bundle.schema.json
var bundleSchemaJSON string

// NewBundleSchema compiles the JSON schema of export bundles.
func NewBundleSchema() (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(bundleSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to compile bundle schema: %w", err)
	}
	return schema, nil
}

// SchemaErrors validates doc against schema. It returns the list of
// violations, empty when doc conforms, or an error when doc is not JSON.
func SchemaErrors(schema *gojsonschema.Schema, doc []byte) ([]string, error) {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to validate document: %w", err)
	}
	if res.Valid() {
		return nil, nil
	}
	details := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		details = append(details, e.String())
	}
	return details, nil
}

// JoinDetails renders schema violations as a single message.
func JoinDetails(details []string) string {
	return strings.Join(details, "; ")
}

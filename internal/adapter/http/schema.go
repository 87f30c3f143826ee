package httpadapter

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed generate_request.schema.json
var generateRequestSchemaJSON []byte

var generateRequestSchema = mustLoadSchema(generateRequestSchemaJSON)

func mustLoadSchema(raw []byte) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic("httpadapter: invalid request schema: " + err.Error())
	}
	return schema
}

// validateBody checks a well-formed JSON body against schema and returns
// one message per violation.
func validateBody(schema *gojsonschema.Schema, body []byte) ([]string, error) {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs, nil
}

// Package schemas provides JSON Schema validation for model output candidates.
package schemas

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed projects.schema.json
var projectArraySchema string

// IsProjectArray reports whether doc is a non-empty JSON array of objects.
// The reconciler uses this to decide whether a parse attempt produced a
// usable candidate before field-level defaulting runs.
func IsProjectArray(doc string) bool {
	return ValidateProjectArray(doc) == nil
}

// ValidateProjectArray validates doc against the project-array schema and
// returns a descriptive error listing every violation. Unparseable input is
// an error too.
func ValidateProjectArray(doc string) error {
	schemaLoader := gojsonschema.NewStringLoader(projectArraySchema)
	docLoader := gojsonschema.NewStringLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("invalid JSON document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msg := "validation failed:"
	for _, desc := range result.Errors() {
		msg += fmt.Sprintf("\n  %s: %s", desc.Field(), desc.Description())
	}
	return fmt.Errorf("%s", msg)
}

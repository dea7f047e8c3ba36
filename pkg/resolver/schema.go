package resolver

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/detox_config_schema.json
var configSchema string

// ValidateDocumentShape validates the raw document's structure against
// the config schema. This catches shape nonsense (a configurations
// array, a numeric session) before semantic resolution; semantic
// failures are reported through the diagnostic catalog instead.
func ValidateDocumentShape(document map[string]any) error {
	compiler := jsonschema.NewCompiler()

	var schemaDoc any
	if err := json.Unmarshal([]byte(configSchema), &schemaDoc); err != nil {
		return fmt.Errorf("schema validation error: failed to parse schema JSON: %w", err)
	}

	schemaURL := "http://detox.internal/config_schema.json"
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return fmt.Errorf("schema validation error: failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	// Round-trip through JSON to normalize parser-specific value types
	// before validation. A nil document validates as an empty object.
	toValidate := document
	if toValidate == nil {
		toValidate = map[string]any{}
	}
	documentJSON, err := json.Marshal(toValidate)
	if err != nil {
		return fmt.Errorf("schema validation error: failed to marshal document: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(documentJSON, &normalized); err != nil {
		return fmt.Errorf("schema validation error: failed to unmarshal document: %w", err)
	}

	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("invalid configuration document: %s", cleanSchemaErrorMessage(err.Error()))
	}
	return nil
}

// cleanSchemaErrorMessage removes unhelpful prefixes from jsonschema
// validation errors.
func cleanSchemaErrorMessage(errorMsg string) string {
	lines := strings.Split(errorMsg, "\n")

	var cleanedLines []string
	for _, line := range lines {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "jsonschema validation failed") {
			continue
		}
		line = strings.TrimPrefix(line, "- at '': ")

		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	result := strings.Join(cleanedLines, "\n")
	if strings.TrimSpace(result) == "" {
		return "schema validation failed"
	}
	return result
}

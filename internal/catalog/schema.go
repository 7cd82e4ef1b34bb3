package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://catalog.json"

// documentSchema describes the catalog document shape.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"quizzes"},
	"properties": map[string]any{
		"quizzes": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"title", "icon", "questions"},
				"properties": map[string]any{
					"title": map[string]any{"type": "string", "minLength": 1},
					"icon":  map[string]any{"type": "string"},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"question", "options", "answer"},
							"properties": map[string]any{
								"question": map[string]any{"type": "string", "minLength": 1},
								"options": map[string]any{
									"type":     "array",
									"minItems": OptionCount,
									"maxItems": OptionCount,
									"items":    map[string]any{"type": "string"},
								},
								"answer": map[string]any{"type": "string", "minLength": 1},
							},
						},
					},
				},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// documentValidator returns the compiled catalog schema.
func documentValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip through JSON so the compiler sees plain decoded values.
		raw, err := json.Marshal(documentSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateShape checks raw JSON against the catalog schema.
func validateShape(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	v, err := documentValidator()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := v.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// checkUniqueNames rejects catalogs where two subjects differ only by case,
// since lookups are case-insensitive.
func checkUniqueNames(subjects []Subject) error {
	seen := make(map[string]string, len(subjects))
	for _, s := range subjects {
		key := strings.ToLower(s.Name)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("duplicate subject %q (conflicts with %q)", s.Name, prev)
		}
		seen[key] = s.Name
	}
	return nil
}

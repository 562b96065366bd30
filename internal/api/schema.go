package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Payload schemas for structured backend responses. Generated quizzes and
// study plans come out of an LLM on the server side, so their shape is
// validated before a session or plan is built over them.

var quizPayloadSchema = &payloadSchema{
	name: "quiz-payload",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 2,
						},
						"correct_answer": map[string]any{"type": "integer", "minimum": 0},
						"explanation":    map[string]any{"type": "string"},
					},
					"required": []any{"question", "options", "correct_answer", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

var studyPlanSchema = &payloadSchema{
	name: "study-plan",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string"},
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string"},
			"duration":    map[string]any{"type": "string"},
			"subjects":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"goals":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"schedule": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week":   map[string]any{"type": "integer", "minimum": 1},
						"topics": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"goals":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []any{"week", "topics"},
				},
			},
		},
		"required": []any{"title", "schedule"},
	},
}

type payloadSchema struct {
	name       string
	definition map[string]any
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validatePayload validates raw JSON against the given schema.
// Returns *ErrInvalidPayload on failure.
func validatePayload(schema *payloadSchema, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *payloadSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.name, compiled)
	return compiled, nil
}

package catalog

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://zenquiz-catalog.json"

// documentSchema describes the catalog file format.
const documentSchema = `{
  "type": "object",
  "required": ["version", "levels"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "pattern": "^v[0-9]+\\.[0-9]+\\.[0-9]+$"},
    "pass_threshold": {"type": "integer", "minimum": 1},
    "levels": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "title", "questions"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "title": {"type": "string", "minLength": 1},
          "subtitle": {"type": "string"},
          "description": {"type": "string"},
          "questions": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["prompt", "options"],
              "additionalProperties": false,
              "properties": {
                "prompt": {"type": "string", "minLength": 1},
                "max_correct": {"type": "integer", "minimum": 1},
                "options": {
                  "type": "array",
                  "minItems": 2,
                  "items": {
                    "type": "object",
                    "required": ["text", "correct"],
                    "additionalProperties": false,
                    "properties": {
                      "text": {"type": "string", "minLength": 1},
                      "correct": {"type": "boolean"},
                      "feedback": {"type": "string"}
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// getCompiledSchema compiles the document schema once.
func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		def, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validateDocument checks raw catalog JSON against the document schema.
func validateDocument(data []byte) error {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

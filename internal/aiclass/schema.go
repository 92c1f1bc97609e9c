package aiclass

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// analysisSchema is a tagged union keyed by tier. Every branch shares the
// same payload shape; the tier const selects exactly one branch.
const analysisSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$defs": {
    "payload": {
      "type": "object",
      "required": ["tier", "points", "reasoning"],
      "properties": {
        "tier":         {"type": "string"},
        "points":       {"type": "number"},
        "reasoning":    {"type": "string", "minLength": 1},
        "confidence":   {"type": ["number", "null"]},
        "timeEstimate": {"type": ["string", "null"]},
        "complexity":   {"type": ["number", "null"]}
      }
    }
  },
  "oneOf": [
    {"allOf": [{"$ref": "#/$defs/payload"}, {"properties": {"tier": {"const": "low"}}}]},
    {"allOf": [{"$ref": "#/$defs/payload"}, {"properties": {"tier": {"const": "mid"}}}]},
    {"allOf": [{"$ref": "#/$defs/payload"}, {"properties": {"tier": {"const": "high"}}}]}
  ]
}`

const schemaURL = "schema://task-analysis.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func analysisValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(analysisSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// rawAnalysis mirrors the JSON reply.
type rawAnalysis struct {
	Tier         Tier     `json:"tier"`
	Points       float64  `json:"points"`
	Confidence   *float64 `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
	TimeEstimate *string  `json:"timeEstimate"`
	Complexity   *float64 `json:"complexity"`
}

// decodeAnalysis parses content strictly and validates it against the
// tagged-union schema.
func decodeAnalysis(content string) (*rawAnalysis, error) {
	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, &ResponseParseError{Content: content, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	v, err := analysisValidator()
	if err != nil {
		return nil, fmt.Errorf("compile analysis schema: %w", err)
	}
	if err := v.Validate(parsed); err != nil {
		return nil, &ValidationError{Reason: describeViolation(parsed), Err: err}
	}

	var out rawAnalysis
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, &ResponseParseError{Content: content, Err: err}
	}
	return &out, nil
}

// describeViolation names the most likely cause of a schema failure so the
// fallback reason stays readable.
func describeViolation(parsed any) string {
	obj, ok := parsed.(map[string]any)
	if !ok {
		return "reply is not a JSON object"
	}
	for _, field := range []string{"tier", "points", "reasoning"} {
		if _, ok := obj[field]; !ok {
			return "missing required field " + field
		}
	}
	if tier, ok := obj["tier"].(string); ok {
		if _, known := LookupTier(Tier(tier)); !known {
			return fmt.Sprintf("unknown tier %q", tier)
		}
	}
	return "schema mismatch"
}

// Package schema validates addon manifests against a declarative JSON Schema.
//
// The schema is the single source of truth for required fields and their
// types; field-presence checks are not repeated as ad hoc conditionals
// elsewhere. Checks JSON Schema cannot express (domain uniqueness, file
// existence, version ordering) live in the validator package.
package schema

import (
	"encoding/json"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fanexid/addonlint/internal/errors"
)

// manifestSchemaJSON is the JSON Schema for addon manifest validation.
// Embedded as a constant to avoid filesystem dependencies.
const manifestSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://fanexid.dev/schemas/manifest.json",
  "type": "object",
  "required": ["domain", "name", "version", "implementations"],
  "properties": {
    "domain": {
      "type": "string",
      "minLength": 1
    },
    "name": {
      "type": "string",
      "minLength": 1
    },
    "version": {
      "type": "string",
      "minLength": 1
    },
    "implementations": {
      "type": "array",
      "minItems": 1,
      "items": { "$ref": "#/$defs/implementation" }
    },
    "min_core_version": {
      "type": "string",
      "minLength": 1
    }
  },
  "$defs": {
    "implementation": {
      "type": "object",
      "required": ["file"],
      "properties": {
        "platform": { "type": "string" },
        "file": {
          "type": "string",
          "minLength": 1
        }
      }
    }
  }
}`

// schemaURL is the resource identifier the manifest schema is compiled under.
const schemaURL = "https://fanexid.dev/schemas/manifest.json"

// Violation is one schema check failure, tied to a field path.
type Violation struct {
	// Field is the dotted path of the offending field ("" for the document root).
	Field string

	// Message describes the failed constraint.
	Message string
}

// Validator checks manifest documents against the embedded schema.
// It is safe for concurrent use.
type Validator struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// New compiles the embedded manifest schema.
func New() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.AssertFormat()

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(manifestSchemaJSON))
	if err != nil {
		return nil, errors.Wrap(err, "unmarshaling manifest schema")
	}
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, errors.Wrap(err, "adding manifest schema resource")
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, errors.Wrap(err, "compiling manifest schema")
	}

	return &Validator{
		schema:  compiled,
		printer: message.NewPrinter(language.English),
	}, nil
}

// Validate checks a decoded manifest document against the schema and returns
// one Violation per failed constraint, or nil when the document conforms.
func (v *Validator) Validate(doc any) ([]Violation, error) {
	value, err := toJSONValue(doc)
	if err != nil {
		return nil, errors.Wrap(err, "serializing manifest document")
	}

	err = v.schema.Validate(value)
	if err == nil {
		return nil, nil
	}

	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, errors.Wrap(err, "validating manifest document")
	}

	return v.collectViolations(verr), nil
}

// SchemaJSON returns the embedded manifest schema document.
func SchemaJSON() []byte {
	return []byte(manifestSchemaJSON)
}

// collectViolations walks a ValidationError tree and collects leaf failures
// with their instance locations.
func (v *Validator) collectViolations(verr *jsonschema.ValidationError) []Violation {
	if len(verr.Causes) == 0 {
		return []Violation{{
			Field:   fieldPath(verr.InstanceLocation),
			Message: verr.ErrorKind.LocalizedString(v.printer),
		}}
	}

	var violations []Violation
	for _, cause := range verr.Causes {
		violations = append(violations, v.collectViolations(cause)...)
	}
	return violations
}

// fieldPath renders an instance location as a dotted field path,
// e.g. ["implementations", "0", "file"] becomes "implementations[0].file".
func fieldPath(location []string) string {
	var sb strings.Builder
	for _, token := range location {
		if _, err := strconv.Atoi(token); err == nil {
			sb.WriteString("[")
			sb.WriteString(token)
			sb.WriteString("]")
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(token)
	}
	return sb.String()
}

// toJSONValue round-trips a Go value through JSON encoding/decoding so that
// numeric values become json.Number (required by the jsonschema library).
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(strings.NewReader(string(b)))
}

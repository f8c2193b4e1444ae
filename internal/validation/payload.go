// Package validation performs structural validation of inbound API payloads
// against JSON Schemas before they reach the domain layer. Field-level business
// rules (slug normal form, shared-field ownership) stay with the record
// service; this layer rejects malformed shapes early with precise locations.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrSchemaInvalid is returned when a schema source cannot be compiled.
	ErrSchemaInvalid = errors.New("validation: schema invalid")
	// ErrPayloadInvalid is the sentinel behind every payload rejection.
	ErrPayloadInvalid = errors.New("validation: payload invalid")
)

// Issue captures a single validation failure with its instance location.
type Issue struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// PayloadError aggregates the issues found in one payload.
type PayloadError struct {
	Issues []Issue
	Cause  error
}

func (e *PayloadError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrPayloadInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadError) Unwrap() error { return ErrPayloadInvalid }

// Schema wraps a compiled JSON Schema.
type Schema struct {
	compiled *jsonschema.Schema
}

// Compile builds a Schema from its JSON source.
func Compile(name, source string) (*Schema, error) {
	compiled, err := jsonschema.CompileString(name, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{compiled: compiled}, nil
}

// MustCompile is Compile for package-level schema constants.
func MustCompile(name, source string) *Schema {
	schema, err := Compile(name, source)
	if err != nil {
		panic(err)
	}
	return schema
}

// ValidateJSON checks raw JSON bytes against the schema.
func (s *Schema) ValidateJSON(data []byte) error {
	if s == nil || s.compiled == nil {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return &PayloadError{
			Issues: []Issue{{Message: "body is not valid JSON"}},
			Cause:  err,
		}
	}

	if err := s.compiled.Validate(value); err != nil {
		return &PayloadError{Issues: IssuesFrom(err), Cause: err}
	}
	return nil
}

// IssuesFrom extracts leaf validation issues from an error.
func IssuesFrom(err error) []Issue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) || validationErr == nil {
		return []Issue{{Message: err.Error()}}
	}

	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return issues
}

package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/runoshun/taskboard/internal/domain"
)

// taskSchema is the minimum shape of one record: {id, userId, title, completed}.
const taskSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "userId", "title", "completed"],
  "properties": {
    "id": {"type": "integer"},
    "userId": {"type": "integer"},
    "title": {"type": "string"},
    "completed": {"type": "boolean"}
  }
}`

const listSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {"$ref": "task.json"}
}`

const (
	taskSchemaURL = "https://taskboard.invalid/schema/task.json"
	listSchemaURL = "https://taskboard.invalid/schema/list.json"
)

// schemas holds the compiled validators for list and create responses.
type schemas struct {
	list *jsonschema.Schema
	task *jsonschema.Schema
}

func compileSchemas() (*schemas, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(taskSchemaURL, strings.NewReader(taskSchema)); err != nil {
		return nil, fmt.Errorf("add task schema: %w", err)
	}
	if err := compiler.AddResource(listSchemaURL, strings.NewReader(listSchema)); err != nil {
		return nil, fmt.Errorf("add list schema: %w", err)
	}

	task, err := compiler.Compile(taskSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile task schema: %w", err)
	}
	list, err := compiler.Compile(listSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile list schema: %w", err)
	}
	return &schemas{list: list, task: task}, nil
}

// validate decodes body generically and checks it against schema.
// Every failure is reported as domain.ErrMalformedPayload.
func validate(schema *jsonschema.Schema, body []byte) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrMalformedPayload, firstCause(err))
	}
	return nil
}

// firstCause returns the deepest first validation message, which names the offending field.
func firstCause(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return ve.InstanceLocation + ": " + ve.Message
}

package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/tasklist.schema.json
var taskListSchemaJSON []byte

const taskListSchemaURL = "tasklist.schema.json"

var (
	schemaOnce     sync.Once
	taskListSchema *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(taskListSchemaURL, bytes.NewReader(taskListSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		taskListSchema, schemaErr = c.Compile(taskListSchemaURL)
	})
	return taskListSchema, schemaErr
}

// DocumentError reports a persisted document that does not match the task
// list schema.
type DocumentError struct {
	Path    string
	Pointer string
	Message string
}

func (e *DocumentError) Error() string {
	if e.Pointer != "" {
		return fmt.Sprintf("%s: invalid document at %s: %s", e.Path, e.Pointer, e.Message)
	}
	return fmt.Sprintf("%s: invalid document: %s", e.Path, e.Message)
}

// validateDocument checks raw JSON against the embedded schema before it is
// decoded into model types.
func validateDocument(path string, raw []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return &DocumentError{Path: path, Message: err.Error()}
	}
	if err := sch.Validate(v); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return &DocumentError{Path: path, Message: err.Error()}
		}
		leaf := firstLeaf(ve)
		return &DocumentError{Path: path, Pointer: leaf.InstanceLocation, Message: strings.TrimSpace(leaf.Message)}
	}
	return nil
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

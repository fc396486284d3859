package model

import (
	"encoding/json"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const tasksSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["taskMessage", "deadline", "createdAt", "isComplete"],
    "properties": {
      "taskMessage": {"type": "string", "minLength": 1},
      "deadline": {"type": "string", "pattern": "^[0-9]{2}-[0-9]{2}-[0-9]{4}$"},
      "createdAt": {"type": "string", "pattern": "^[0-9]{2}-[0-9]{2}-[0-9]{4}$"},
      "isComplete": {"type": "boolean"}
    }
  }
}`

const profileSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["username", "job"],
  "properties": {
    "username": {"type": "string"},
    "job": {"type": "string"}
  }
}`

var (
	schemasOnce   sync.Once
	tasksSchema   *jsonschema.Schema
	profileSchema *jsonschema.Schema
	schemasErr    error
)

func compileSchemas() {
	tasksSchema, schemasErr = jsonschema.CompileString("https://tasklist.local/tasks.schema.json", tasksSchemaJSON)
	if schemasErr != nil {
		return
	}
	profileSchema, schemasErr = jsonschema.CompileString("https://tasklist.local/profile.schema.json", profileSchemaJSON)
}

// DecodeTasks parses and validates a persisted tasks document.
func DecodeTasks(b []byte) ([]Task, error) {
	if err := validate(b, func() *jsonschema.Schema { return tasksSchema }); err != nil {
		return nil, err
	}
	var tasks []Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

// DecodeProfile parses and validates a persisted profile document.
func DecodeProfile(b []byte) (Profile, error) {
	if err := validate(b, func() *jsonschema.Schema { return profileSchema }); err != nil {
		return Profile{}, err
	}
	var p Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return Profile{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return p, nil
}

func validate(b []byte, schema func() *jsonschema.Schema) error {
	schemasOnce.Do(compileSchemas)
	if schemasErr != nil {
		return fmt.Errorf("compile schema: %w", schemasErr)
	}
	var doc interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	if err := schema().Validate(doc); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

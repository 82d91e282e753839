package store

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// taskShape lists the members a stored task needs to be kept. Anything else
// about a task is optional.
const taskShape = `{
  "type": "object",
  "required": ["id", "title", "createdAt", "pos", "color", "done", "z"],
  "properties": {
    "id": {"type": "string"},
    "title": {"type": "string"},
    "createdAt": {"type": "number"},
    "pos": {
      "type": "object",
      "required": ["x", "y"],
      "properties": {
        "x": {"type": "number"},
        "y": {"type": "number"}
      }
    },
    "color": {"type": "number"},
    "done": {"type": "boolean"},
    "z": {"type": "number"}
  }
}`

var taskSchema = jsonschema.MustCompileString("task.schema.json", taskShape)

// validTask reports whether v, a value decoded by encoding/json, has the
// shape of a task.
func validTask(v interface{}) bool {
	return taskSchema.Validate(v) == nil
}

package codec

const snapshotSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["owner_id", "companions", "version"],
  "properties": {
    "owner_id": {"type": "string", "minLength": 1},
    "active_companion_id": {"type": "string"},
    "version": {"type": "integer", "minimum": 0},
    "companions": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id", "name", "vitals", "is_alive"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "experience": {"type": "integer", "minimum": 0},
          "is_alive": {"type": "boolean"},
          "vitals": {
            "type": "object",
            "required": ["health", "mood", "energy", "mutation"],
            "properties": {
              "health": {"$ref": "#/definitions/vital"},
              "mood": {"$ref": "#/definitions/vital"},
              "energy": {"$ref": "#/definitions/vital"},
              "mutation": {"$ref": "#/definitions/vital"}
            }
          }
        }
      }
    },
    "tasks": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id", "companion_id", "strategy"],
        "properties": {
          "strategy": {"enum": ["immediate", "physical", "conversational", "timed"]}
        }
      }
    },
    "conversations": {"type": ["array", "null"]},
    "timers": {"type": ["object", "null"]},
    "events": {"type": ["array", "null"]},
    "logs": {"type": ["array", "null"]}
  },
  "definitions": {
    "vital": {"type": "number", "minimum": 0, "maximum": 100}
  }
}`

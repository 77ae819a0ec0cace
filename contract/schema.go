package contract

import "github.com/santhosh-tekuri/jsonschema/v5"

const resultsSchemaFile = "results.schema.json"

// ResultsSchema describes the tally logged by the results getter.
const ResultsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "vote results",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["candidate", "points"],
    "properties": {
      "candidate": {"type": "string"},
      "points": {"type": "integer", "minimum": 0}
    }
  }
}`

var resultsSchema = jsonschema.MustCompileString(resultsSchemaFile, ResultsSchema)

package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// itemSchema is compiled once at init; the extraction schema is fixed and
// never varies per request or per record.
var itemSchema = mustCompileItemSchema()

func mustCompileItemSchema() *jsonschema.Schema {
	b, err := json.Marshal(BuildItemJSONSchema())
	if err != nil {
		panic(fmt.Sprintf("marshal item schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("item.schema.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add item schema: %v", err))
	}
	schema, err := compiler.Compile("item.schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile item schema: %v", err))
	}
	return schema
}

// ValidateItemRecord checks one sanitized record against the item schema.
func ValidateItemRecord(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := itemSchema.Validate(v); err != nil {
		return fmt.Errorf("record does not match item schema: %w", err)
	}
	return nil
}

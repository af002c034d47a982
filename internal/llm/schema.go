package llm

import "github.com/lanefields/credit-extractor/constants"

// BuildItemJSONSchema returns a JSON-Schema (draft 2020-12 subset) for one
// credit item as a generic map. We use it locally to validate each record the
// model returned; invalid records are dropped, not the whole chunk.
func BuildItemJSONSchema() map[string]any {
	props := map[string]any{
		"creditor_name": map[string]any{"type": "string", "minLength": 1},
		"item_type": map[string]any{
			"type": "string",
			"enum": constants.ItemTypeStrings(),
		},
		"amount_cents":  map[string]any{"type": "integer", "minimum": 0},
		"opened_date":   dateProp(),
		"reported_date": dateProp(),
		"account_last4": map[string]any{"type": "string", "minLength": 4, "maxLength": 4, "pattern": `^\d{4}$`},
		"bureaus": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "enum": constants.BureauStrings()},
		},
		"is_negative": map[string]any{"type": "boolean"},
		"notes":       map[string]any{"type": "string"},
		"confidence":  map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	required := []string{"creditor_name", "item_type"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func dateProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}

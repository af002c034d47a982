package llm

import (
	"strings"

	"github.com/lanefields/credit-extractor/constants"
)

// BuildSystemPrompt composes the fixed extraction instruction: output shape,
// the closed item-type enum, units, and formatting rules.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a credit report parser. Return ONLY a JSON object with an 'items' array; each element describes one credit item (tradeline, collection, public record).",
		"Each item has: creditor_name (string), item_type (enum), amount_cents (integer, total balance in cents), opened_date (YYYY-MM-DD), reported_date (YYYY-MM-DD), account_last4 (4 digits), bureaus (array), is_negative (boolean), notes (string), confidence (number 0..1).",
		"item_type MUST be exactly one of: " + strings.Join(constants.ItemTypeStrings(), ", ") + ". If uncertain, use 'other'.",
		"Amounts are integer cents: $1,234.56 becomes 123456. Omit amount_cents when no balance is visible.",
		"Use ISO-8601 dates (YYYY-MM-DD). Omit a date field rather than guessing.",
		"bureaus entries MUST come from: " + strings.Join(constants.BureauStrings(), ", ") + ".",
		"Set is_negative true for derogatory entries (collections, charge-offs, late payments, public records).",
		"Never output null. If a field is not present, omit it.",
		"If the text contains no credit items, return {\"items\": []}.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages one chunk as the extraction target.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if name := strings.TrimSpace(req.FileName); name != "" {
		b.WriteString("File: ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Credit report text (segment):\n")
	b.WriteString(req.ChunkText)
	return b.String()
}

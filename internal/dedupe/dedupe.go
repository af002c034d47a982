// Package dedupe collapses repeated extracted records across chunks.
package dedupe

import (
	"fmt"

	"github.com/lanefields/credit-extractor/internal/llm"
)

// Key derives the identity of a candidate record within one job's batch.
// Bureau and date fields are deliberately excluded: the same tradeline
// reported by multiple bureaus appears once per chunk and must collapse.
func Key(item llm.ItemFields) string {
	var cents int64
	if item.AmountCents != nil {
		cents = *item.AmountCents
	}
	return fmt.Sprintf("%s|%s|%d", item.CreditorName, item.ItemType, cents)
}

// Items returns candidates with duplicates removed, keeping the first record
// observed for each key and preserving first-seen order. Running it over its
// own output is a no-op.
func Items(candidates []llm.ItemFields) []llm.ItemFields {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]llm.ItemFields, 0, len(candidates))
	for _, c := range candidates {
		k := Key(c)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}

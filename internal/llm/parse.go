package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lanefields/credit-extractor/constants"
)

var reDigits = regexp.MustCompile(`^\d+$`)

// ParseItemsResponse decodes a model completion into candidate records.
// The record list may arrive under either an "items" or an "accounts" key
// (the service is inconsistent between the two); a response with neither key
// yields zero records without an error. Individual records that fail
// sanitization or schema validation are dropped with a warning; only an
// unparseable response fails the chunk.
func ParseItemsResponse(raw []byte, logger *slog.Logger) ([]ItemFields, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode response object: %w", err)
	}

	list, ok := doc["items"]
	if !ok {
		list, ok = doc["accounts"]
	}
	if !ok {
		return nil, nil, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(list, &records); err != nil {
		return nil, nil, fmt.Errorf("record list is not an array: %w", err)
	}

	var items []ItemFields
	var warnings []string
	for i, rec := range records {
		cleaned, dropped, err := sanitizeRecord(rec)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("record %d: %v", i, err))
			continue
		}
		if len(dropped) > 0 {
			logger.Warn("llm.parse.sanitized", "record", i, "dropped", dropped)
		}
		if err := ValidateItemRecord(cleaned); err != nil {
			warnings = append(warnings, fmt.Sprintf("record %d: %v", i, err))
			logger.Warn("llm.parse.record_rejected", "record", i, "error", err)
			continue
		}
		var item ItemFields
		if err := json.Unmarshal(cleaned, &item); err != nil {
			warnings = append(warnings, fmt.Sprintf("record %d: %v", i, err))
			continue
		}
		items = append(items, item)
	}
	return items, warnings, nil
}

// sanitizeRecord normalizes one raw record before schema validation:
// renames known synonyms, canonicalizes item_type, coerces amount_cents to an
// integer, trims strings, drops nulls and unknown keys.
func sanitizeRecord(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("decode record: %w", err)
	}

	var dropped []string
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms the model likes to invent
	renamed("creditor", "creditor_name")
	renamed("name", "creditor_name")
	renamed("type", "item_type")
	renamed("amount", "amount_cents")
	renamed("balance_cents", "amount_cents")
	renamed("date_opened", "opened_date")
	renamed("date_reported", "reported_date")
	renamed("last4", "account_last4")
	renamed("negative", "is_negative")

	// 2) canonicalize item_type so enum validation sees stable values
	if v, ok := m["item_type"].(string); ok {
		canon, _ := constants.CanonicalizeItemType(v)
		m["item_type"] = string(canon)
	}

	// 3) amount_cents: accept integer, float (rounded to whole cents), or
	// digit string
	if v, ok := m["amount_cents"]; ok {
		switch t := v.(type) {
		case float64:
			m["amount_cents"] = int64(math.Round(t))
		case string:
			s := strings.TrimSpace(t)
			if reDigits.MatchString(s) {
				if n, err := strconv.ParseInt(s, 10, 64); err == nil {
					m["amount_cents"] = n
				} else {
					delete(m, "amount_cents")
					dropped = append(dropped, "amount_cents(overflow)")
				}
			} else {
				delete(m, "amount_cents")
				dropped = append(dropped, "amount_cents(format)")
			}
		case nil:
			delete(m, "amount_cents")
			dropped = append(dropped, "amount_cents(null)")
		default:
			delete(m, "amount_cents")
			dropped = append(dropped, "amount_cents(type)")
		}
	}

	// 4) account_last4: keep only the trailing 4 digits if longer noise
	if v, ok := m["account_last4"].(string); ok {
		s := strings.TrimSpace(v)
		if len(s) > 4 {
			s = s[len(s)-4:]
		}
		if reDigits.MatchString(s) && len(s) == 4 {
			m["account_last4"] = s
		} else {
			delete(m, "account_last4")
			dropped = append(dropped, "account_last4(format)")
		}
	}

	// 5) bureaus: normalize names and drop anything outside the known three
	if v, ok := m["bureaus"]; ok {
		var names []string
		if arr, isArr := v.([]any); isArr {
			for _, e := range arr {
				if s, isStr := e.(string); isStr {
					names = append(names, s)
				}
			}
		}
		normalized := constants.NormalizeBureaus(names)
		if len(normalized) > 0 {
			m["bureaus"] = normalized
		} else {
			delete(m, "bureaus")
			dropped = append(dropped, "bureaus(empty)")
		}
	}

	// 6) trim obvious strings, drop empties and nulls
	for _, k := range []string{"creditor_name", "opened_date", "reported_date", "notes"} {
		switch v := m[k].(type) {
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			} else {
				m[k] = s
			}
		case nil:
			if _, present := m[k]; present {
				delete(m, k)
				dropped = append(dropped, k+"(null)")
			}
		}
	}

	// 7) remove unknown keys (strict additionalProperties friendliness)
	allowed := map[string]struct{}{
		"creditor_name": {}, "item_type": {}, "amount_cents": {},
		"opened_date": {}, "reported_date": {}, "account_last4": {},
		"bureaus": {}, "is_negative": {}, "notes": {}, "confidence": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("encode record: %w", err)
	}
	return out, dropped, nil
}

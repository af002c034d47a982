package constants

import "strings"

// Bureau is one of the three national credit-reporting agencies.
type Bureau string

const (
	Experian   Bureau = "Experian"
	Equifax    Bureau = "Equifax"
	TransUnion Bureau = "TransUnion"
)

var allBureaus = []Bureau{Experian, Equifax, TransUnion}

// BureauStrings returns the fixed three-value set as plain strings.
func BureauStrings() []string {
	result := make([]string, len(allBureaus))
	for i, b := range allBureaus {
		result[i] = string(b)
	}
	return result
}

// NormalizeBureaus filters a model-supplied list down to the known bureau
// names, fixing case and dropping duplicates while preserving order.
func NormalizeBureaus(raw []string) []string {
	seen := make(map[Bureau]struct{}, len(allBureaus))
	var out []string
	for _, s := range raw {
		normalized := strings.ToLower(strings.TrimSpace(s))
		for _, b := range allBureaus {
			if normalized != strings.ToLower(string(b)) {
				continue
			}
			if _, dup := seen[b]; dup {
				break
			}
			seen[b] = struct{}{}
			out = append(out, string(b))
			break
		}
	}
	return out
}

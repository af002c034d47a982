package constants

import (
	"strings"
)

// ItemType is the closed enumeration of financial-account categories the
// extractor may emit.
type ItemType string

const (
	Collection    ItemType = "collection"
	ChargeOff     ItemType = "charge_off"
	LatePayment   ItemType = "late_payment"
	Judgment      ItemType = "judgment"
	Bankruptcy    ItemType = "bankruptcy"
	Repossession  ItemType = "repossession"
	Foreclosure   ItemType = "foreclosure"
	TaxLien       ItemType = "tax_lien"
	StudentLoan   ItemType = "student_loan"
	CreditCard    ItemType = "credit_card"
	AutoLoan      ItemType = "auto_loan"
	Mortgage      ItemType = "mortgage"
	PersonalLoan  ItemType = "personal_loan"
	OtherItemType ItemType = "other"
)

var allItemTypes = []ItemType{
	Collection,
	ChargeOff,
	LatePayment,
	Judgment,
	Bankruptcy,
	Repossession,
	Foreclosure,
	TaxLien,
	StudentLoan,
	CreditCard,
	AutoLoan,
	Mortgage,
	PersonalLoan,
	OtherItemType,
}

// ItemTypeStrings returns the enum as plain strings, in declaration order.
func ItemTypeStrings() []string {
	result := make([]string, len(allItemTypes))
	for i, t := range allItemTypes {
		result[i] = string(t)
	}
	return result
}

// NegativeItemTypes are the categories that count against a consumer's report.
var NegativeItemTypes = map[ItemType]struct{}{
	Collection:   {},
	ChargeOff:    {},
	LatePayment:  {},
	Judgment:     {},
	Bankruptcy:   {},
	Repossession: {},
	Foreclosure:  {},
	TaxLien:      {},
}

// CanonicalizeItemType maps a free-form label from the model to a canonical
// ItemType. The second return is false when the label was unrecognized and
// OtherItemType was substituted.
func CanonicalizeItemType(input string) (ItemType, bool) {
	if input == "" {
		return OtherItemType, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	// synonyms map
	synonyms := map[string]ItemType{
		"chargeoff":        ChargeOff,
		"charged_off":      ChargeOff,
		"collections":      Collection,
		"collection_debt":  Collection,
		"late":             LatePayment,
		"delinquency":      LatePayment,
		"repo":             Repossession,
		"lien":             TaxLien,
		"student_loans":    StudentLoan,
		"creditcard":       CreditCard,
		"revolving":        CreditCard,
		"auto":             AutoLoan,
		"car_loan":         AutoLoan,
		"home_loan":        Mortgage,
		"installment_loan": PersonalLoan,
	}

	if t, ok := synonyms[normalized]; ok {
		return t, true
	}

	for _, t := range allItemTypes {
		if normalized == string(t) {
			return t, true
		}
	}

	return OtherItemType, false
}

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemsKey(t *testing.T) {
	raw := []byte(`{"items": [{"creditor_name": "Acme Collections", "item_type": "collection", "amount_cents": 50000, "is_negative": true}]}`)

	items, warnings, err := ParseItemsResponse(raw, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, items, 1)
	assert.Equal(t, "Acme Collections", items[0].CreditorName)
	assert.Equal(t, "collection", items[0].ItemType)
	require.NotNil(t, items[0].AmountCents)
	assert.Equal(t, int64(50000), *items[0].AmountCents)
	assert.True(t, items[0].IsNegative)
}

func TestParseAccountsKeyAcceptedIdentically(t *testing.T) {
	record := `{"creditor_name": "Chase", "item_type": "credit_card", "amount_cents": 120000}`

	fromItems, _, err := ParseItemsResponse([]byte(`{"items": [`+record+`]}`), nil)
	require.NoError(t, err)
	fromAccounts, _, err := ParseItemsResponse([]byte(`{"accounts": [`+record+`]}`), nil)
	require.NoError(t, err)

	assert.Equal(t, fromItems, fromAccounts)
}

func TestParseNeitherKeyYieldsZeroRecords(t *testing.T) {
	items, warnings, err := ParseItemsResponse([]byte(`{"message": "no items found"}`), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Empty(t, warnings)
}

func TestParseNonArrayListFails(t *testing.T) {
	_, _, err := ParseItemsResponse([]byte(`{"items": "not an array"}`), nil)
	assert.Error(t, err)
}

func TestParseInvalidJSONFails(t *testing.T) {
	_, _, err := ParseItemsResponse([]byte(`not json at all`), nil)
	assert.Error(t, err)
}

func TestParseDropsInvalidRecordKeepsRest(t *testing.T) {
	raw := []byte(`{"items": [
		{"item_type": "collection"},
		{"creditor_name": "Midland Funding", "item_type": "collection", "is_negative": true}
	]}`)

	items, warnings, err := ParseItemsResponse(raw, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Midland Funding", items[0].CreditorName)
	assert.Len(t, warnings, 1)
}

func TestSanitizeSynonymsAndCoercions(t *testing.T) {
	raw := []byte(`{"items": [{
		"creditor": "Wells Fargo",
		"type": "Charge-Off",
		"amount": "250000",
		"last4": "XXXX1234",
		"bureaus": ["experian", "EQUIFAX", "experian", "FICO"],
		"surprise_key": true
	}]}`)

	items, _, err := ParseItemsResponse(raw, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Wells Fargo", item.CreditorName)
	assert.Equal(t, "charge_off", item.ItemType)
	require.NotNil(t, item.AmountCents)
	assert.Equal(t, int64(250000), *item.AmountCents)
	assert.Equal(t, "1234", item.AccountLast4)
	assert.Equal(t, []string{"Experian", "Equifax"}, item.Bureaus)
}

func TestSanitizeFloatAmount(t *testing.T) {
	raw := []byte(`{"items": [{"creditor_name": "Acme", "item_type": "collection", "amount_cents": 5000.0}]}`)

	items, _, err := ParseItemsResponse(raw, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].AmountCents)
	assert.Equal(t, int64(5000), *items[0].AmountCents)
}

func TestSanitizeFractionalFloatAmountRounds(t *testing.T) {
	raw := []byte(`{"items": [
		{"creditor_name": "Acme", "item_type": "collection", "amount_cents": 5000.75},
		{"creditor_name": "Biz", "item_type": "collection", "amount_cents": 5000.25}
	]}`)

	items, warnings, err := ParseItemsResponse(raw, nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].AmountCents)
	assert.Equal(t, int64(5001), *items[0].AmountCents)
	require.NotNil(t, items[1].AmountCents)
	assert.Equal(t, int64(5000), *items[1].AmountCents)
}

func TestValidateItemRecord(t *testing.T) {
	err := ValidateItemRecord([]byte(`{"creditor_name": "Acme", "item_type": "collection"}`))
	assert.NoError(t, err)

	err = ValidateItemRecord([]byte(`{"item_type": "collection"}`))
	assert.Error(t, err, "creditor_name is required")

	err = ValidateItemRecord([]byte(`{"creditor_name": "Acme", "item_type": "not_in_enum"}`))
	assert.Error(t, err)
}

func TestSanitizeUnknownItemTypeFallsBackToOther(t *testing.T) {
	raw := []byte(`{"items": [{"creditor_name": "Acme", "item_type": "mystery_account"}]}`)

	items, _, err := ParseItemsResponse(raw, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "other", items[0].ItemType)
}

func TestBuildSystemPromptNamesEnumAndUnits(t *testing.T) {
	prompt := BuildSystemPrompt()
	assert.Contains(t, prompt, "charge_off")
	assert.Contains(t, prompt, "TransUnion")
	assert.Contains(t, prompt, "cents")
	assert.Contains(t, prompt, "YYYY-MM-DD")
}

package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanefields/credit-extractor/internal/llm"
)

func cents(v int64) *int64 { return &v }

func TestItemsKeyCollapse(t *testing.T) {
	first := llm.ItemFields{CreditorName: "Acme", ItemType: "collection", AmountCents: cents(5000)}
	second := llm.ItemFields{CreditorName: "Acme", ItemType: "collection", AmountCents: cents(5000), Notes: "dup"}

	out := Items([]llm.ItemFields{first, second})
	require.Len(t, out, 1)
	assert.Equal(t, first, out[0], "first occurrence wins")
}

func TestItemsNilAmountTreatedAsZero(t *testing.T) {
	a := llm.ItemFields{CreditorName: "Acme", ItemType: "collection"}
	b := llm.ItemFields{CreditorName: "Acme", ItemType: "collection", AmountCents: cents(0)}

	out := Items([]llm.ItemFields{a, b})
	assert.Len(t, out, 1)
}

func TestItemsDistinctKeysKept(t *testing.T) {
	in := []llm.ItemFields{
		{CreditorName: "Acme", ItemType: "collection", AmountCents: cents(5000)},
		{CreditorName: "Acme", ItemType: "charge_off", AmountCents: cents(5000)},
		{CreditorName: "Acme", ItemType: "collection", AmountCents: cents(6000)},
		{CreditorName: "Beta", ItemType: "collection", AmountCents: cents(5000)},
	}
	out := Items(in)
	assert.Equal(t, in, out)
}

func TestItemsPreservesFirstSeenOrder(t *testing.T) {
	in := []llm.ItemFields{
		{CreditorName: "C", ItemType: "mortgage"},
		{CreditorName: "A", ItemType: "collection"},
		{CreditorName: "C", ItemType: "mortgage"},
		{CreditorName: "B", ItemType: "judgment"},
	}
	out := Items(in)
	require.Len(t, out, 3)
	assert.Equal(t, "C", out[0].CreditorName)
	assert.Equal(t, "A", out[1].CreditorName)
	assert.Equal(t, "B", out[2].CreditorName)
}

func TestItemsIdempotent(t *testing.T) {
	in := []llm.ItemFields{
		{CreditorName: "Acme", ItemType: "collection", AmountCents: cents(5000)},
		{CreditorName: "Acme", ItemType: "collection", AmountCents: cents(5000)},
		{CreditorName: "Beta", ItemType: "auto_loan"},
	}
	once := Items(in)
	twice := Items(once)
	assert.Equal(t, once, twice)
}

func TestItemsEmptyInput(t *testing.T) {
	assert.Empty(t, Items(nil))
}

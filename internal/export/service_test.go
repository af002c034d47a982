package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lanefields/credit-extractor/internal/entity"
	"github.com/lanefields/credit-extractor/internal/llm"
)

type fakeItemsRepo struct {
	items []*entity.CreditItem
	err   error
}

func (f *fakeItemsRepo) UpsertFromFields(_ context.Context, _, _ uuid.UUID, _ llm.ItemFields) (*entity.CreditItem, error) {
	return nil, nil
}

func (f *fakeItemsRepo) ListByProfile(_ context.Context, _ uuid.UUID) ([]*entity.CreditItem, error) {
	return f.items, f.err
}

func (f *fakeItemsRepo) ListByJob(_ context.Context, _ uuid.UUID) ([]*entity.CreditItem, error) {
	return f.items, f.err
}

func strp(s string) *string { return &s }
func centsp(v int64) *int64 { return &v }

func sampleItems() []*entity.CreditItem {
	opened := time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC)
	return []*entity.CreditItem{
		{
			CreditorName: "Midland Credit",
			ItemType:     "collection",
			AmountCents:  centsp(48500),
			OpenedDate:   &opened,
			AccountLast4: strp("1234"),
			Bureaus:      []string{"Experian", "Equifax"},
			IsNegative:   true,
			Notes:        strp("original creditor Comcast"),
			Confidence:   0.91,
		},
		{
			CreditorName: "Chase Bank",
			ItemType:     "credit_card",
			AmountCents:  centsp(120000),
			IsNegative:   false,
			Confidence:   0.88,
		},
	}
}

func TestExportItemsXLSX(t *testing.T) {
	svc := NewService(&fakeItemsRepo{items: sampleItems()}, nil)

	out, err := svc.ExportItemsXLSX(context.Background(), uuid.New(), false)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Credit Items")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two items")

	assert.Equal(t, "Creditor", rows[0][0])
	assert.Equal(t, "Midland Credit", rows[1][0])
	assert.Equal(t, "collection", rows[1][1])
	assert.Equal(t, "485.00", rows[1][2])
	assert.Equal(t, "2021-03-15", rows[1][3])
	assert.Equal(t, "1234", rows[1][5])
	assert.Equal(t, "Experian, Equifax", rows[1][6])
	assert.Equal(t, "yes", rows[1][7])
	assert.Equal(t, "Chase Bank", rows[2][0])
	assert.Equal(t, "no", rows[2][7])
}

func TestExportItemsXLSXNegativeOnly(t *testing.T) {
	svc := NewService(&fakeItemsRepo{items: sampleItems()}, nil)

	out, err := svc.ExportItemsXLSX(context.Background(), uuid.New(), true)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Credit Items")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus the single negative item")
	assert.Equal(t, "Midland Credit", rows[1][0])
}

func TestExportItemsXLSXEmptyProfile(t *testing.T) {
	svc := NewService(&fakeItemsRepo{}, nil)

	out, err := svc.ExportItemsXLSX(context.Background(), uuid.New(), false)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Credit Items")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/lanefields/credit-extractor/internal/entity"
	"github.com/lanefields/credit-extractor/internal/repository"
)

// Service produces XLSX workbooks of a profile's extracted credit items,
// typically for dispute-letter preparation.
type Service struct {
	itemsRepo repository.ItemRepository
	logger    *slog.Logger
}

func NewService(itemsRepo repository.ItemRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{itemsRepo: itemsRepo, logger: logger}
}

// ExportItemsXLSX returns an XLSX workbook of every credit item stored
// for the profile. negativeOnly restricts the sheet to negative items.
func (s *Service) ExportItemsXLSX(ctx context.Context, profileID uuid.UUID, negativeOnly bool) ([]byte, error) {
	start := time.Now()

	items, err := s.itemsRepo.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("query credit items: %w", err)
	}
	if negativeOnly {
		items = filterNegative(items)
	}

	f := excelize.NewFile()
	const sheet = "Credit Items"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Creditor",
		"Item Type",
		"Amount",
		"Opened",
		"Reported",
		"Account Last 4",
		"Bureaus",
		"Negative",
		"Confidence",
		"Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, item := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, item.CreditorName)
		write(2, item.ItemType)
		if item.AmountCents != nil {
			write(3, fmt.Sprintf("%.2f", float64(*item.AmountCents)/100))
		} else {
			write(3, "")
		}
		write(4, formatDate(item.OpenedDate))
		write(5, formatDate(item.ReportedDate))
		if item.AccountLast4 != nil {
			write(6, *item.AccountLast4)
		} else {
			write(6, "")
		}
		write(7, strings.Join(item.Bureaus, ", "))
		if item.IsNegative {
			write(8, "yes")
		} else {
			write(8, "no")
		}
		write(9, fmt.Sprintf("%.2f", item.Confidence))
		if item.Notes != nil {
			write(10, truncate(*item.Notes, 140))
		} else {
			write(10, "")
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // creditor
	_ = f.SetColWidth(sheet, "B", "B", 16) // type
	_ = f.SetColWidth(sheet, "C", "C", 12) // amount
	_ = f.SetColWidth(sheet, "D", "E", 12) // dates
	_ = f.SetColWidth(sheet, "F", "F", 14) // last4
	_ = f.SetColWidth(sheet, "G", "G", 30) // bureaus
	_ = f.SetColWidth(sheet, "J", "J", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(items),
		"negative_only", negativeOnly,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func filterNegative(items []*entity.CreditItem) []*entity.CreditItem {
	out := make([]*entity.CreditItem, 0, len(items))
	for _, item := range items {
		if item.IsNegative {
			out = append(out, item)
		}
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

package repository

import (
	"context"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/lanefields/credit-extractor/constants"
	"github.com/lanefields/credit-extractor/gen/ent"
	"github.com/lanefields/credit-extractor/gen/ent/credititem"
	"github.com/lanefields/credit-extractor/internal/entity"
	"github.com/lanefields/credit-extractor/internal/llm"
)

// ItemRepository persists extracted credit items. Upserts key on
// (profile_id, creditor_name, item_type) so re-running a report never
// duplicates an item.
type ItemRepository interface {
	UpsertFromFields(ctx context.Context, profileID, jobID uuid.UUID, fields llm.ItemFields) (*entity.CreditItem, error)
	ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.CreditItem, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.CreditItem, error)
}

type itemRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewItemRepository(entc *ent.Client, log *slog.Logger) ItemRepository {
	if log == nil {
		log = slog.Default()
	}
	return &itemRepo{ent: entc, log: log}
}

func (r *itemRepo) UpsertFromFields(ctx context.Context, profileID, jobID uuid.UUID, fields llm.ItemFields) (*entity.CreditItem, error) {
	isNegative := fields.IsNegative
	if !isNegative {
		_, isNegative = constants.NegativeItemTypes[constants.ItemType(fields.ItemType)]
	}

	create := r.ent.CreditItem.
		Create().
		SetProfileID(profileID).
		SetJobID(jobID).
		SetCreditorName(fields.CreditorName).
		SetItemType(fields.ItemType).
		SetBureaus(fields.Bureaus).
		SetIsNegative(isNegative).
		SetConfidence(fields.Confidence).
		SetStatus(string(constants.ItemStatusToSend)).
		SetUpdatedAt(time.Now())

	if fields.AmountCents != nil {
		create.SetAmountCents(*fields.AmountCents)
	}
	if t, ok := parseISODate(fields.OpenedDate); ok {
		create.SetOpenedDate(t)
	}
	if t, ok := parseISODate(fields.ReportedDate); ok {
		create.SetReportedDate(t)
	}
	if fields.AccountLast4 != "" {
		create.SetAccountLast4(fields.AccountLast4)
	}
	if fields.Notes != "" {
		create.SetNotes(fields.Notes)
	}

	err := create.
		OnConflict(
			sql.ConflictColumns(credititem.FieldProfileID, credititem.FieldCreditorName, credititem.FieldItemType),
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.log.Error("credit_item upsert failed",
			"profile_id", profileID, "creditor", fields.CreditorName,
			"item_type", fields.ItemType, "err", err)
		return nil, err
	}

	row, err := r.ent.CreditItem.
		Query().
		Where(
			credititem.ProfileID(profileID),
			credititem.CreditorName(fields.CreditorName),
			credititem.ItemType(fields.ItemType),
		).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toCreditItem(row), nil
}

func (r *itemRepo) ListByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.CreditItem, error) {
	rows, err := r.ent.CreditItem.
		Query().
		Where(credititem.ProfileID(profileID)).
		Order(ent.Asc(credititem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toCreditItems(rows), nil
}

func (r *itemRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.CreditItem, error) {
	rows, err := r.ent.CreditItem.
		Query().
		Where(credititem.JobID(jobID)).
		Order(ent.Asc(credititem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return toCreditItems(rows), nil
}

func parseISODate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func toCreditItem(row *ent.CreditItem) *entity.CreditItem {
	return &entity.CreditItem{
		ID:           row.ID,
		ProfileID:    row.ProfileID,
		JobID:        row.JobID,
		CreditorName: row.CreditorName,
		ItemType:     row.ItemType,
		AmountCents:  row.AmountCents,
		OpenedDate:   row.OpenedDate,
		ReportedDate: row.ReportedDate,
		AccountLast4: row.AccountLast4,
		Bureaus:      row.Bureaus,
		IsNegative:   row.IsNegative,
		Notes:        row.Notes,
		Confidence:   row.Confidence,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toCreditItems(rows []*ent.CreditItem) []*entity.CreditItem {
	out := make([]*entity.CreditItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCreditItem(row))
	}
	return out
}

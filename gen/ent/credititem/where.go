// Code generated by ent, DO NOT EDIT.

package credititem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/lanefields/credit-extractor/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldProfileID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldJobID, v))
}

// CreditorName applies equality check predicate on the "creditor_name" field. It's identical to CreditorNameEQ.
func CreditorName(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldCreditorName, v))
}

// ItemType applies equality check predicate on the "item_type" field. It's identical to ItemTypeEQ.
func ItemType(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldItemType, v))
}

// AmountCents applies equality check predicate on the "amount_cents" field. It's identical to AmountCentsEQ.
func AmountCents(v int64) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldAmountCents, v))
}

// OpenedDate applies equality check predicate on the "opened_date" field. It's identical to OpenedDateEQ.
func OpenedDate(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldOpenedDate, v))
}

// ReportedDate applies equality check predicate on the "reported_date" field. It's identical to ReportedDateEQ.
func ReportedDate(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldReportedDate, v))
}

// AccountLast4 applies equality check predicate on the "account_last4" field. It's identical to AccountLast4EQ.
func AccountLast4(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldAccountLast4, v))
}

// IsNegative applies equality check predicate on the "is_negative" field. It's identical to IsNegativeEQ.
func IsNegative(v bool) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldIsNegative, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldNotes, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldConfidence, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldProfileID, vs...))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldJobID, vs...))
}

// CreditorNameEQ applies the EQ predicate on the "creditor_name" field.
func CreditorNameEQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldCreditorName, v))
}

// CreditorNameNEQ applies the NEQ predicate on the "creditor_name" field.
func CreditorNameNEQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldCreditorName, v))
}

// CreditorNameIn applies the In predicate on the "creditor_name" field.
func CreditorNameIn(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldCreditorName, vs...))
}

// CreditorNameNotIn applies the NotIn predicate on the "creditor_name" field.
func CreditorNameNotIn(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldCreditorName, vs...))
}

// CreditorNameGT applies the GT predicate on the "creditor_name" field.
func CreditorNameGT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldCreditorName, v))
}

// CreditorNameGTE applies the GTE predicate on the "creditor_name" field.
func CreditorNameGTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldCreditorName, v))
}

// CreditorNameLT applies the LT predicate on the "creditor_name" field.
func CreditorNameLT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldCreditorName, v))
}

// CreditorNameLTE applies the LTE predicate on the "creditor_name" field.
func CreditorNameLTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldCreditorName, v))
}

// CreditorNameContains applies the Contains predicate on the "creditor_name" field.
func CreditorNameContains(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContains(FieldCreditorName, v))
}

// CreditorNameHasPrefix applies the HasPrefix predicate on the "creditor_name" field.
func CreditorNameHasPrefix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasPrefix(FieldCreditorName, v))
}

// CreditorNameHasSuffix applies the HasSuffix predicate on the "creditor_name" field.
func CreditorNameHasSuffix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasSuffix(FieldCreditorName, v))
}

// CreditorNameEqualFold applies the EqualFold predicate on the "creditor_name" field.
func CreditorNameEqualFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEqualFold(FieldCreditorName, v))
}

// CreditorNameContainsFold applies the ContainsFold predicate on the "creditor_name" field.
func CreditorNameContainsFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContainsFold(FieldCreditorName, v))
}

// ItemTypeEQ applies the EQ predicate on the "item_type" field.
func ItemTypeEQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldItemType, v))
}

// ItemTypeNEQ applies the NEQ predicate on the "item_type" field.
func ItemTypeNEQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldItemType, v))
}

// ItemTypeIn applies the In predicate on the "item_type" field.
func ItemTypeIn(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldItemType, vs...))
}

// ItemTypeNotIn applies the NotIn predicate on the "item_type" field.
func ItemTypeNotIn(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldItemType, vs...))
}

// ItemTypeGT applies the GT predicate on the "item_type" field.
func ItemTypeGT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldItemType, v))
}

// ItemTypeGTE applies the GTE predicate on the "item_type" field.
func ItemTypeGTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldItemType, v))
}

// ItemTypeLT applies the LT predicate on the "item_type" field.
func ItemTypeLT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldItemType, v))
}

// ItemTypeLTE applies the LTE predicate on the "item_type" field.
func ItemTypeLTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldItemType, v))
}

// ItemTypeContains applies the Contains predicate on the "item_type" field.
func ItemTypeContains(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContains(FieldItemType, v))
}

// ItemTypeHasPrefix applies the HasPrefix predicate on the "item_type" field.
func ItemTypeHasPrefix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasPrefix(FieldItemType, v))
}

// ItemTypeHasSuffix applies the HasSuffix predicate on the "item_type" field.
func ItemTypeHasSuffix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasSuffix(FieldItemType, v))
}

// ItemTypeEqualFold applies the EqualFold predicate on the "item_type" field.
func ItemTypeEqualFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEqualFold(FieldItemType, v))
}

// ItemTypeContainsFold applies the ContainsFold predicate on the "item_type" field.
func ItemTypeContainsFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContainsFold(FieldItemType, v))
}

// AmountCentsEQ applies the EQ predicate on the "amount_cents" field.
func AmountCentsEQ(v int64) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldAmountCents, v))
}

// AmountCentsNEQ applies the NEQ predicate on the "amount_cents" field.
func AmountCentsNEQ(v int64) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldAmountCents, v))
}

// AmountCentsIn applies the In predicate on the "amount_cents" field.
func AmountCentsIn(vs ...int64) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldAmountCents, vs...))
}

// AmountCentsNotIn applies the NotIn predicate on the "amount_cents" field.
func AmountCentsNotIn(vs ...int64) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldAmountCents, vs...))
}

// AmountCentsGT applies the GT predicate on the "amount_cents" field.
func AmountCentsGT(v int64) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldAmountCents, v))
}

// AmountCentsGTE applies the GTE predicate on the "amount_cents" field.
func AmountCentsGTE(v int64) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldAmountCents, v))
}

// AmountCentsLT applies the LT predicate on the "amount_cents" field.
func AmountCentsLT(v int64) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldAmountCents, v))
}

// AmountCentsLTE applies the LTE predicate on the "amount_cents" field.
func AmountCentsLTE(v int64) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldAmountCents, v))
}

// AmountCentsIsNil applies the IsNil predicate on the "amount_cents" field.
func AmountCentsIsNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIsNull(FieldAmountCents))
}

// AmountCentsNotNil applies the NotNil predicate on the "amount_cents" field.
func AmountCentsNotNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotNull(FieldAmountCents))
}

// OpenedDateEQ applies the EQ predicate on the "opened_date" field.
func OpenedDateEQ(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldOpenedDate, v))
}

// OpenedDateNEQ applies the NEQ predicate on the "opened_date" field.
func OpenedDateNEQ(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldOpenedDate, v))
}

// OpenedDateIn applies the In predicate on the "opened_date" field.
func OpenedDateIn(vs ...time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldOpenedDate, vs...))
}

// OpenedDateNotIn applies the NotIn predicate on the "opened_date" field.
func OpenedDateNotIn(vs ...time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldOpenedDate, vs...))
}

// OpenedDateGT applies the GT predicate on the "opened_date" field.
func OpenedDateGT(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldOpenedDate, v))
}

// OpenedDateGTE applies the GTE predicate on the "opened_date" field.
func OpenedDateGTE(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldOpenedDate, v))
}

// OpenedDateLT applies the LT predicate on the "opened_date" field.
func OpenedDateLT(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldOpenedDate, v))
}

// OpenedDateLTE applies the LTE predicate on the "opened_date" field.
func OpenedDateLTE(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldOpenedDate, v))
}

// OpenedDateIsNil applies the IsNil predicate on the "opened_date" field.
func OpenedDateIsNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIsNull(FieldOpenedDate))
}

// OpenedDateNotNil applies the NotNil predicate on the "opened_date" field.
func OpenedDateNotNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotNull(FieldOpenedDate))
}

// ReportedDateEQ applies the EQ predicate on the "reported_date" field.
func ReportedDateEQ(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldReportedDate, v))
}

// ReportedDateNEQ applies the NEQ predicate on the "reported_date" field.
func ReportedDateNEQ(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldReportedDate, v))
}

// ReportedDateIn applies the In predicate on the "reported_date" field.
func ReportedDateIn(vs ...time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldReportedDate, vs...))
}

// ReportedDateNotIn applies the NotIn predicate on the "reported_date" field.
func ReportedDateNotIn(vs ...time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldReportedDate, vs...))
}

// ReportedDateGT applies the GT predicate on the "reported_date" field.
func ReportedDateGT(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldReportedDate, v))
}

// ReportedDateGTE applies the GTE predicate on the "reported_date" field.
func ReportedDateGTE(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldReportedDate, v))
}

// ReportedDateLT applies the LT predicate on the "reported_date" field.
func ReportedDateLT(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldReportedDate, v))
}

// ReportedDateLTE applies the LTE predicate on the "reported_date" field.
func ReportedDateLTE(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldReportedDate, v))
}

// ReportedDateIsNil applies the IsNil predicate on the "reported_date" field.
func ReportedDateIsNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIsNull(FieldReportedDate))
}

// ReportedDateNotNil applies the NotNil predicate on the "reported_date" field.
func ReportedDateNotNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotNull(FieldReportedDate))
}

// AccountLast4EQ applies the EQ predicate on the "account_last4" field.
func AccountLast4EQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldAccountLast4, v))
}

// AccountLast4NEQ applies the NEQ predicate on the "account_last4" field.
func AccountLast4NEQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldAccountLast4, v))
}

// AccountLast4In applies the In predicate on the "account_last4" field.
func AccountLast4In(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldAccountLast4, vs...))
}

// AccountLast4NotIn applies the NotIn predicate on the "account_last4" field.
func AccountLast4NotIn(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldAccountLast4, vs...))
}

// AccountLast4GT applies the GT predicate on the "account_last4" field.
func AccountLast4GT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldAccountLast4, v))
}

// AccountLast4GTE applies the GTE predicate on the "account_last4" field.
func AccountLast4GTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldAccountLast4, v))
}

// AccountLast4LT applies the LT predicate on the "account_last4" field.
func AccountLast4LT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldAccountLast4, v))
}

// AccountLast4LTE applies the LTE predicate on the "account_last4" field.
func AccountLast4LTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldAccountLast4, v))
}

// AccountLast4Contains applies the Contains predicate on the "account_last4" field.
func AccountLast4Contains(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContains(FieldAccountLast4, v))
}

// AccountLast4HasPrefix applies the HasPrefix predicate on the "account_last4" field.
func AccountLast4HasPrefix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasPrefix(FieldAccountLast4, v))
}

// AccountLast4HasSuffix applies the HasSuffix predicate on the "account_last4" field.
func AccountLast4HasSuffix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasSuffix(FieldAccountLast4, v))
}

// AccountLast4IsNil applies the IsNil predicate on the "account_last4" field.
func AccountLast4IsNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIsNull(FieldAccountLast4))
}

// AccountLast4NotNil applies the NotNil predicate on the "account_last4" field.
func AccountLast4NotNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotNull(FieldAccountLast4))
}

// AccountLast4EqualFold applies the EqualFold predicate on the "account_last4" field.
func AccountLast4EqualFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEqualFold(FieldAccountLast4, v))
}

// AccountLast4ContainsFold applies the ContainsFold predicate on the "account_last4" field.
func AccountLast4ContainsFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContainsFold(FieldAccountLast4, v))
}

// BureausIsNil applies the IsNil predicate on the "bureaus" field.
func BureausIsNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIsNull(FieldBureaus))
}

// BureausNotNil applies the NotNil predicate on the "bureaus" field.
func BureausNotNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotNull(FieldBureaus))
}

// IsNegativeEQ applies the EQ predicate on the "is_negative" field.
func IsNegativeEQ(v bool) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldIsNegative, v))
}

// IsNegativeNEQ applies the NEQ predicate on the "is_negative" field.
func IsNegativeNEQ(v bool) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldIsNegative, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContainsFold(FieldNotes, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldConfidence, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreditItem {
	return predicate.CreditItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.CreditItem {
	return predicate.CreditItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.CreditItem {
	return predicate.CreditItem(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.CreditItem {
	return predicate.CreditItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.ExtractJob) predicate.CreditItem {
	return predicate.CreditItem(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditItem) predicate.CreditItem {
	return predicate.CreditItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditItem) predicate.CreditItem {
	return predicate.CreditItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditItem) predicate.CreditItem {
	return predicate.CreditItem(sql.NotPredicates(p))
}

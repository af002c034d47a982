// Code generated by ent, DO NOT EDIT.

package credititem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the credititem type in the database.
	Label = "credit_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldCreditorName holds the string denoting the creditor_name field in the database.
	FieldCreditorName = "creditor_name"
	// FieldItemType holds the string denoting the item_type field in the database.
	FieldItemType = "item_type"
	// FieldAmountCents holds the string denoting the amount_cents field in the database.
	FieldAmountCents = "amount_cents"
	// FieldOpenedDate holds the string denoting the opened_date field in the database.
	FieldOpenedDate = "opened_date"
	// FieldReportedDate holds the string denoting the reported_date field in the database.
	FieldReportedDate = "reported_date"
	// FieldAccountLast4 holds the string denoting the account_last4 field in the database.
	FieldAccountLast4 = "account_last4"
	// FieldBureaus holds the string denoting the bureaus field in the database.
	FieldBureaus = "bureaus"
	// FieldIsNegative holds the string denoting the is_negative field in the database.
	FieldIsNegative = "is_negative"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProfile holds the string denoting the profile edge name in mutations.
	EdgeProfile = "profile"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the credititem in the database.
	Table = "credit_item"
	// ProfileTable is the table that holds the profile relation/edge.
	ProfileTable = "credit_item"
	// ProfileInverseTable is the table name for the Profile entity.
	// It exists in this package in order to avoid circular dependency with the "profile" package.
	ProfileInverseTable = "profile"
	// ProfileColumn is the table column denoting the profile relation/edge.
	ProfileColumn = "profile_id"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "credit_item"
	// JobInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobInverseTable = "extract_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for credititem fields.
var Columns = []string{
	FieldID,
	FieldProfileID,
	FieldJobID,
	FieldCreditorName,
	FieldItemType,
	FieldAmountCents,
	FieldOpenedDate,
	FieldReportedDate,
	FieldAccountLast4,
	FieldBureaus,
	FieldIsNegative,
	FieldNotes,
	FieldConfidence,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CreditorNameValidator is a validator for the "creditor_name" field. It is called by the builders before save.
	CreditorNameValidator func(string) error
	// ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	ItemTypeValidator func(string) error
	// AccountLast4Validator is a validator for the "account_last4" field. It is called by the builders before save.
	AccountLast4Validator func(string) error
	// DefaultIsNegative holds the default value on creation for the "is_negative" field.
	DefaultIsNegative bool
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float32
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CreditItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByCreditorName orders the results by the creditor_name field.
func ByCreditorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditorName, opts...).ToFunc()
}

// ByItemType orders the results by the item_type field.
func ByItemType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemType, opts...).ToFunc()
}

// ByAmountCents orders the results by the amount_cents field.
func ByAmountCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmountCents, opts...).ToFunc()
}

// ByOpenedDate orders the results by the opened_date field.
func ByOpenedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenedDate, opts...).ToFunc()
}

// ByReportedDate orders the results by the reported_date field.
func ByReportedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportedDate, opts...).ToFunc()
}

// ByAccountLast4 orders the results by the account_last4 field.
func ByAccountLast4(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountLast4, opts...).ToFunc()
}

// ByIsNegative orders the results by the is_negative field.
func ByIsNegative(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsNegative, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProfileField orders the results by profile field.
func ByProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProfileStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
	)
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/lanefields/credit-extractor/gen/ent/credititem"
	"github.com/lanefields/credit-extractor/gen/ent/extractjob"
	"github.com/lanefields/credit-extractor/gen/ent/profile"
)

// CreditItem is the model entity for the CreditItem schema.
type CreditItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID uuid.UUID `json:"profile_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// CreditorName holds the value of the "creditor_name" field.
	CreditorName string `json:"creditor_name,omitempty"`
	// ItemType holds the value of the "item_type" field.
	ItemType string `json:"item_type,omitempty"`
	// AmountCents holds the value of the "amount_cents" field.
	AmountCents *int64 `json:"amount_cents,omitempty"`
	// OpenedDate holds the value of the "opened_date" field.
	OpenedDate *time.Time `json:"opened_date,omitempty"`
	// ReportedDate holds the value of the "reported_date" field.
	ReportedDate *time.Time `json:"reported_date,omitempty"`
	// AccountLast4 holds the value of the "account_last4" field.
	AccountLast4 *string `json:"account_last4,omitempty"`
	// Bureaus holds the value of the "bureaus" field.
	Bureaus []string `json:"bureaus,omitempty"`
	// IsNegative holds the value of the "is_negative" field.
	IsNegative bool `json:"is_negative,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreditItemQuery when eager-loading is set.
	Edges        CreditItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreditItemEdges holds the relations/edges for other nodes in the graph.
type CreditItemEdges struct {
	// Profile holds the value of the profile edge.
	Profile *Profile `json:"profile,omitempty"`
	// Job holds the value of the job edge.
	Job *ExtractJob `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProfileOrErr returns the Profile value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditItemEdges) ProfileOrErr() (*Profile, error) {
	if e.Profile != nil {
		return e.Profile, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: profile.Label}
	}
	return nil, &NotLoadedError{edge: "profile"}
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreditItemEdges) JobOrErr() (*ExtractJob, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: extractjob.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case credititem.FieldBureaus:
			values[i] = new([]byte)
		case credititem.FieldIsNegative:
			values[i] = new(sql.NullBool)
		case credititem.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case credititem.FieldAmountCents:
			values[i] = new(sql.NullInt64)
		case credititem.FieldCreditorName, credititem.FieldItemType, credititem.FieldAccountLast4, credititem.FieldNotes, credititem.FieldStatus:
			values[i] = new(sql.NullString)
		case credititem.FieldOpenedDate, credititem.FieldReportedDate, credititem.FieldCreatedAt, credititem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case credititem.FieldID, credititem.FieldProfileID, credititem.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditItem fields.
func (_m *CreditItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case credititem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case credititem.FieldProfileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value != nil {
				_m.ProfileID = *value
			}
		case credititem.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case credititem.FieldCreditorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creditor_name", values[i])
			} else if value.Valid {
				_m.CreditorName = value.String
			}
		case credititem.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				_m.ItemType = value.String
			}
		case credititem.FieldAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field amount_cents", values[i])
			} else if value.Valid {
				_m.AmountCents = new(int64)
				*_m.AmountCents = value.Int64
			}
		case credititem.FieldOpenedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opened_date", values[i])
			} else if value.Valid {
				_m.OpenedDate = new(time.Time)
				*_m.OpenedDate = value.Time
			}
		case credititem.FieldReportedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reported_date", values[i])
			} else if value.Valid {
				_m.ReportedDate = new(time.Time)
				*_m.ReportedDate = value.Time
			}
		case credititem.FieldAccountLast4:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_last4", values[i])
			} else if value.Valid {
				_m.AccountLast4 = new(string)
				*_m.AccountLast4 = value.String
			}
		case credititem.FieldBureaus:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bureaus", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Bureaus); err != nil {
					return fmt.Errorf("unmarshal field bureaus: %w", err)
				}
			}
		case credititem.FieldIsNegative:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_negative", values[i])
			} else if value.Valid {
				_m.IsNegative = value.Bool
			}
		case credititem.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case credititem.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case credititem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case credititem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case credititem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditItem.
// This includes values selected through modifiers, order, etc.
func (_m *CreditItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProfile queries the "profile" edge of the CreditItem entity.
func (_m *CreditItem) QueryProfile() *ProfileQuery {
	return NewCreditItemClient(_m.config).QueryProfile(_m)
}

// QueryJob queries the "job" edge of the CreditItem entity.
func (_m *CreditItem) QueryJob() *ExtractJobQuery {
	return NewCreditItemClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this CreditItem.
// Note that you need to call CreditItem.Unwrap() before calling this method if this CreditItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CreditItem) Update() *CreditItemUpdateOne {
	return NewCreditItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CreditItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CreditItem) Unwrap() *CreditItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CreditItem) String() string {
	var builder strings.Builder
	builder.WriteString("CreditItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	builder.WriteString("creditor_name=")
	builder.WriteString(_m.CreditorName)
	builder.WriteString(", ")
	builder.WriteString("item_type=")
	builder.WriteString(_m.ItemType)
	builder.WriteString(", ")
	if v := _m.AmountCents; v != nil {
		builder.WriteString("amount_cents=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.OpenedDate; v != nil {
		builder.WriteString("opened_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReportedDate; v != nil {
		builder.WriteString("reported_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AccountLast4; v != nil {
		builder.WriteString("account_last4=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("bureaus=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bureaus))
	builder.WriteString(", ")
	builder.WriteString("is_negative=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsNegative))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CreditItems is a parsable slice of CreditItem.
type CreditItems []*CreditItem

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lanefields/credit-extractor/gen/ent/credititem"
	"github.com/lanefields/credit-extractor/gen/ent/extractjob"
	"github.com/lanefields/credit-extractor/gen/ent/predicate"
	"github.com/lanefields/credit-extractor/gen/ent/profile"
)

// CreditItemUpdate is the builder for updating CreditItem entities.
type CreditItemUpdate struct {
	config
	hooks    []Hook
	mutation *CreditItemMutation
}

// Where appends a list predicates to the CreditItemUpdate builder.
func (_u *CreditItemUpdate) Where(ps ...predicate.CreditItem) *CreditItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *CreditItemUpdate) SetProfileID(v uuid.UUID) *CreditItemUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableProfileID(v *uuid.UUID) *CreditItemUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *CreditItemUpdate) SetJobID(v uuid.UUID) *CreditItemUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableJobID(v *uuid.UUID) *CreditItemUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetCreditorName sets the "creditor_name" field.
func (_u *CreditItemUpdate) SetCreditorName(v string) *CreditItemUpdate {
	_u.mutation.SetCreditorName(v)
	return _u
}

// SetNillableCreditorName sets the "creditor_name" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableCreditorName(v *string) *CreditItemUpdate {
	if v != nil {
		_u.SetCreditorName(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *CreditItemUpdate) SetItemType(v string) *CreditItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableItemType(v *string) *CreditItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *CreditItemUpdate) SetAmountCents(v int64) *CreditItemUpdate {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableAmountCents(v *int64) *CreditItemUpdate {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *CreditItemUpdate) AddAmountCents(v int64) *CreditItemUpdate {
	_u.mutation.AddAmountCents(v)
	return _u
}

// ClearAmountCents clears the value of the "amount_cents" field.
func (_u *CreditItemUpdate) ClearAmountCents() *CreditItemUpdate {
	_u.mutation.ClearAmountCents()
	return _u
}

// SetOpenedDate sets the "opened_date" field.
func (_u *CreditItemUpdate) SetOpenedDate(v time.Time) *CreditItemUpdate {
	_u.mutation.SetOpenedDate(v)
	return _u
}

// SetNillableOpenedDate sets the "opened_date" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableOpenedDate(v *time.Time) *CreditItemUpdate {
	if v != nil {
		_u.SetOpenedDate(*v)
	}
	return _u
}

// ClearOpenedDate clears the value of the "opened_date" field.
func (_u *CreditItemUpdate) ClearOpenedDate() *CreditItemUpdate {
	_u.mutation.ClearOpenedDate()
	return _u
}

// SetReportedDate sets the "reported_date" field.
func (_u *CreditItemUpdate) SetReportedDate(v time.Time) *CreditItemUpdate {
	_u.mutation.SetReportedDate(v)
	return _u
}

// SetNillableReportedDate sets the "reported_date" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableReportedDate(v *time.Time) *CreditItemUpdate {
	if v != nil {
		_u.SetReportedDate(*v)
	}
	return _u
}

// ClearReportedDate clears the value of the "reported_date" field.
func (_u *CreditItemUpdate) ClearReportedDate() *CreditItemUpdate {
	_u.mutation.ClearReportedDate()
	return _u
}

// SetAccountLast4 sets the "account_last4" field.
func (_u *CreditItemUpdate) SetAccountLast4(v string) *CreditItemUpdate {
	_u.mutation.SetAccountLast4(v)
	return _u
}

// SetNillableAccountLast4 sets the "account_last4" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableAccountLast4(v *string) *CreditItemUpdate {
	if v != nil {
		_u.SetAccountLast4(*v)
	}
	return _u
}

// ClearAccountLast4 clears the value of the "account_last4" field.
func (_u *CreditItemUpdate) ClearAccountLast4() *CreditItemUpdate {
	_u.mutation.ClearAccountLast4()
	return _u
}

// SetBureaus sets the "bureaus" field.
func (_u *CreditItemUpdate) SetBureaus(v []string) *CreditItemUpdate {
	_u.mutation.SetBureaus(v)
	return _u
}

// AppendBureaus appends value to the "bureaus" field.
func (_u *CreditItemUpdate) AppendBureaus(v []string) *CreditItemUpdate {
	_u.mutation.AppendBureaus(v)
	return _u
}

// ClearBureaus clears the value of the "bureaus" field.
func (_u *CreditItemUpdate) ClearBureaus() *CreditItemUpdate {
	_u.mutation.ClearBureaus()
	return _u
}

// SetIsNegative sets the "is_negative" field.
func (_u *CreditItemUpdate) SetIsNegative(v bool) *CreditItemUpdate {
	_u.mutation.SetIsNegative(v)
	return _u
}

// SetNillableIsNegative sets the "is_negative" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableIsNegative(v *bool) *CreditItemUpdate {
	if v != nil {
		_u.SetIsNegative(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CreditItemUpdate) SetNotes(v string) *CreditItemUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableNotes(v *string) *CreditItemUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CreditItemUpdate) ClearNotes() *CreditItemUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CreditItemUpdate) SetConfidence(v float32) *CreditItemUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableConfidence(v *float32) *CreditItemUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CreditItemUpdate) AddConfidence(v float32) *CreditItemUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CreditItemUpdate) SetStatus(v string) *CreditItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CreditItemUpdate) SetNillableStatus(v *string) *CreditItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreditItemUpdate) SetUpdatedAt(v time.Time) *CreditItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CreditItemUpdate) SetProfile(v *Profile) *CreditItemUpdate {
	return _u.SetProfileID(v.ID)
}

// SetJob sets the "job" edge to the ExtractJob entity.
func (_u *CreditItemUpdate) SetJob(v *ExtractJob) *CreditItemUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the CreditItemMutation object of the builder.
func (_u *CreditItemUpdate) Mutation() *CreditItemMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CreditItemUpdate) ClearProfile() *CreditItemUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJob clears the "job" edge to the ExtractJob entity.
func (_u *CreditItemUpdate) ClearJob() *CreditItemUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CreditItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CreditItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreditItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := credititem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditItemUpdate) check() error {
	if v, ok := _u.mutation.CreditorName(); ok {
		if err := credititem.CreditorNameValidator(v); err != nil {
			return &ValidationError{Name: "creditor_name", err: fmt.Errorf(`ent: validator failed for field "CreditItem.creditor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := credititem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "CreditItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountLast4(); ok {
		if err := credititem.AccountLast4Validator(v); err != nil {
			return &ValidationError{Name: "account_last4", err: fmt.Errorf(`ent: validator failed for field "CreditItem.account_last4": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditItem.profile"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditItem.job"`)
	}
	return nil
}

func (_u *CreditItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(credititem.Table, credititem.Columns, sqlgraph.NewFieldSpec(credititem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreditorName(); ok {
		_spec.SetField(credititem.FieldCreditorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(credititem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(credititem.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(credititem.FieldAmountCents, field.TypeInt64, value)
	}
	if _u.mutation.AmountCentsCleared() {
		_spec.ClearField(credititem.FieldAmountCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.OpenedDate(); ok {
		_spec.SetField(credititem.FieldOpenedDate, field.TypeTime, value)
	}
	if _u.mutation.OpenedDateCleared() {
		_spec.ClearField(credititem.FieldOpenedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReportedDate(); ok {
		_spec.SetField(credititem.FieldReportedDate, field.TypeTime, value)
	}
	if _u.mutation.ReportedDateCleared() {
		_spec.ClearField(credititem.FieldReportedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountLast4(); ok {
		_spec.SetField(credititem.FieldAccountLast4, field.TypeString, value)
	}
	if _u.mutation.AccountLast4Cleared() {
		_spec.ClearField(credititem.FieldAccountLast4, field.TypeString)
	}
	if value, ok := _u.mutation.Bureaus(); ok {
		_spec.SetField(credititem.FieldBureaus, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBureaus(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, credititem.FieldBureaus, value)
		})
	}
	if _u.mutation.BureausCleared() {
		_spec.ClearField(credititem.FieldBureaus, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsNegative(); ok {
		_spec.SetField(credititem.FieldIsNegative, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(credititem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(credititem.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(credititem.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(credititem.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(credititem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(credititem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credititem.ProfileTable,
			Columns: []string{credititem.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credititem.ProfileTable,
			Columns: []string{credititem.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credititem.JobTable,
			Columns: []string{credititem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credititem.JobTable,
			Columns: []string{credititem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credititem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CreditItemUpdateOne is the builder for updating a single CreditItem entity.
type CreditItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditItemMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *CreditItemUpdateOne) SetProfileID(v uuid.UUID) *CreditItemUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableProfileID(v *uuid.UUID) *CreditItemUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *CreditItemUpdateOne) SetJobID(v uuid.UUID) *CreditItemUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableJobID(v *uuid.UUID) *CreditItemUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetCreditorName sets the "creditor_name" field.
func (_u *CreditItemUpdateOne) SetCreditorName(v string) *CreditItemUpdateOne {
	_u.mutation.SetCreditorName(v)
	return _u
}

// SetNillableCreditorName sets the "creditor_name" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableCreditorName(v *string) *CreditItemUpdateOne {
	if v != nil {
		_u.SetCreditorName(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *CreditItemUpdateOne) SetItemType(v string) *CreditItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableItemType(v *string) *CreditItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetAmountCents sets the "amount_cents" field.
func (_u *CreditItemUpdateOne) SetAmountCents(v int64) *CreditItemUpdateOne {
	_u.mutation.ResetAmountCents()
	_u.mutation.SetAmountCents(v)
	return _u
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableAmountCents(v *int64) *CreditItemUpdateOne {
	if v != nil {
		_u.SetAmountCents(*v)
	}
	return _u
}

// AddAmountCents adds value to the "amount_cents" field.
func (_u *CreditItemUpdateOne) AddAmountCents(v int64) *CreditItemUpdateOne {
	_u.mutation.AddAmountCents(v)
	return _u
}

// ClearAmountCents clears the value of the "amount_cents" field.
func (_u *CreditItemUpdateOne) ClearAmountCents() *CreditItemUpdateOne {
	_u.mutation.ClearAmountCents()
	return _u
}

// SetOpenedDate sets the "opened_date" field.
func (_u *CreditItemUpdateOne) SetOpenedDate(v time.Time) *CreditItemUpdateOne {
	_u.mutation.SetOpenedDate(v)
	return _u
}

// SetNillableOpenedDate sets the "opened_date" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableOpenedDate(v *time.Time) *CreditItemUpdateOne {
	if v != nil {
		_u.SetOpenedDate(*v)
	}
	return _u
}

// ClearOpenedDate clears the value of the "opened_date" field.
func (_u *CreditItemUpdateOne) ClearOpenedDate() *CreditItemUpdateOne {
	_u.mutation.ClearOpenedDate()
	return _u
}

// SetReportedDate sets the "reported_date" field.
func (_u *CreditItemUpdateOne) SetReportedDate(v time.Time) *CreditItemUpdateOne {
	_u.mutation.SetReportedDate(v)
	return _u
}

// SetNillableReportedDate sets the "reported_date" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableReportedDate(v *time.Time) *CreditItemUpdateOne {
	if v != nil {
		_u.SetReportedDate(*v)
	}
	return _u
}

// ClearReportedDate clears the value of the "reported_date" field.
func (_u *CreditItemUpdateOne) ClearReportedDate() *CreditItemUpdateOne {
	_u.mutation.ClearReportedDate()
	return _u
}

// SetAccountLast4 sets the "account_last4" field.
func (_u *CreditItemUpdateOne) SetAccountLast4(v string) *CreditItemUpdateOne {
	_u.mutation.SetAccountLast4(v)
	return _u
}

// SetNillableAccountLast4 sets the "account_last4" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableAccountLast4(v *string) *CreditItemUpdateOne {
	if v != nil {
		_u.SetAccountLast4(*v)
	}
	return _u
}

// ClearAccountLast4 clears the value of the "account_last4" field.
func (_u *CreditItemUpdateOne) ClearAccountLast4() *CreditItemUpdateOne {
	_u.mutation.ClearAccountLast4()
	return _u
}

// SetBureaus sets the "bureaus" field.
func (_u *CreditItemUpdateOne) SetBureaus(v []string) *CreditItemUpdateOne {
	_u.mutation.SetBureaus(v)
	return _u
}

// AppendBureaus appends value to the "bureaus" field.
func (_u *CreditItemUpdateOne) AppendBureaus(v []string) *CreditItemUpdateOne {
	_u.mutation.AppendBureaus(v)
	return _u
}

// ClearBureaus clears the value of the "bureaus" field.
func (_u *CreditItemUpdateOne) ClearBureaus() *CreditItemUpdateOne {
	_u.mutation.ClearBureaus()
	return _u
}

// SetIsNegative sets the "is_negative" field.
func (_u *CreditItemUpdateOne) SetIsNegative(v bool) *CreditItemUpdateOne {
	_u.mutation.SetIsNegative(v)
	return _u
}

// SetNillableIsNegative sets the "is_negative" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableIsNegative(v *bool) *CreditItemUpdateOne {
	if v != nil {
		_u.SetIsNegative(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *CreditItemUpdateOne) SetNotes(v string) *CreditItemUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableNotes(v *string) *CreditItemUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *CreditItemUpdateOne) ClearNotes() *CreditItemUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CreditItemUpdateOne) SetConfidence(v float32) *CreditItemUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableConfidence(v *float32) *CreditItemUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CreditItemUpdateOne) AddConfidence(v float32) *CreditItemUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *CreditItemUpdateOne) SetStatus(v string) *CreditItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CreditItemUpdateOne) SetNillableStatus(v *string) *CreditItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CreditItemUpdateOne) SetUpdatedAt(v time.Time) *CreditItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *CreditItemUpdateOne) SetProfile(v *Profile) *CreditItemUpdateOne {
	return _u.SetProfileID(v.ID)
}

// SetJob sets the "job" edge to the ExtractJob entity.
func (_u *CreditItemUpdateOne) SetJob(v *ExtractJob) *CreditItemUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the CreditItemMutation object of the builder.
func (_u *CreditItemUpdateOne) Mutation() *CreditItemMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *CreditItemUpdateOne) ClearProfile() *CreditItemUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearJob clears the "job" edge to the ExtractJob entity.
func (_u *CreditItemUpdateOne) ClearJob() *CreditItemUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the CreditItemUpdate builder.
func (_u *CreditItemUpdateOne) Where(ps ...predicate.CreditItem) *CreditItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CreditItemUpdateOne) Select(field string, fields ...string) *CreditItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CreditItem entity.
func (_u *CreditItemUpdateOne) Save(ctx context.Context) (*CreditItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CreditItemUpdateOne) SaveX(ctx context.Context) *CreditItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CreditItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CreditItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CreditItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := credititem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CreditItemUpdateOne) check() error {
	if v, ok := _u.mutation.CreditorName(); ok {
		if err := credititem.CreditorNameValidator(v); err != nil {
			return &ValidationError{Name: "creditor_name", err: fmt.Errorf(`ent: validator failed for field "CreditItem.creditor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := credititem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "CreditItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccountLast4(); ok {
		if err := credititem.AccountLast4Validator(v); err != nil {
			return &ValidationError{Name: "account_last4", err: fmt.Errorf(`ent: validator failed for field "CreditItem.account_last4": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditItem.profile"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CreditItem.job"`)
	}
	return nil
}

func (_u *CreditItemUpdateOne) sqlSave(ctx context.Context) (_node *CreditItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(credititem.Table, credititem.Columns, sqlgraph.NewFieldSpec(credititem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, credititem.FieldID)
		for _, f := range fields {
			if !credititem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != credititem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CreditorName(); ok {
		_spec.SetField(credititem.FieldCreditorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(credititem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AmountCents(); ok {
		_spec.SetField(credititem.FieldAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountCents(); ok {
		_spec.AddField(credititem.FieldAmountCents, field.TypeInt64, value)
	}
	if _u.mutation.AmountCentsCleared() {
		_spec.ClearField(credititem.FieldAmountCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.OpenedDate(); ok {
		_spec.SetField(credititem.FieldOpenedDate, field.TypeTime, value)
	}
	if _u.mutation.OpenedDateCleared() {
		_spec.ClearField(credititem.FieldOpenedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReportedDate(); ok {
		_spec.SetField(credititem.FieldReportedDate, field.TypeTime, value)
	}
	if _u.mutation.ReportedDateCleared() {
		_spec.ClearField(credititem.FieldReportedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AccountLast4(); ok {
		_spec.SetField(credititem.FieldAccountLast4, field.TypeString, value)
	}
	if _u.mutation.AccountLast4Cleared() {
		_spec.ClearField(credititem.FieldAccountLast4, field.TypeString)
	}
	if value, ok := _u.mutation.Bureaus(); ok {
		_spec.SetField(credititem.FieldBureaus, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBureaus(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, credititem.FieldBureaus, value)
		})
	}
	if _u.mutation.BureausCleared() {
		_spec.ClearField(credititem.FieldBureaus, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsNegative(); ok {
		_spec.SetField(credititem.FieldIsNegative, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(credititem.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(credititem.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(credititem.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(credititem.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(credititem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(credititem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credititem.ProfileTable,
			Columns: []string{credititem.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credititem.ProfileTable,
			Columns: []string{credititem.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credititem.JobTable,
			Columns: []string{credititem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   credititem.JobTable,
			Columns: []string{credititem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CreditItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{credititem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

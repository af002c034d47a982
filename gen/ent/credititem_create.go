// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/lanefields/credit-extractor/gen/ent/credititem"
	"github.com/lanefields/credit-extractor/gen/ent/extractjob"
	"github.com/lanefields/credit-extractor/gen/ent/profile"
)

// CreditItemCreate is the builder for creating a CreditItem entity.
type CreditItemCreate struct {
	config
	mutation *CreditItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProfileID sets the "profile_id" field.
func (_c *CreditItemCreate) SetProfileID(v uuid.UUID) *CreditItemCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *CreditItemCreate) SetJobID(v uuid.UUID) *CreditItemCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetCreditorName sets the "creditor_name" field.
func (_c *CreditItemCreate) SetCreditorName(v string) *CreditItemCreate {
	_c.mutation.SetCreditorName(v)
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *CreditItemCreate) SetItemType(v string) *CreditItemCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetAmountCents sets the "amount_cents" field.
func (_c *CreditItemCreate) SetAmountCents(v int64) *CreditItemCreate {
	_c.mutation.SetAmountCents(v)
	return _c
}

// SetNillableAmountCents sets the "amount_cents" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableAmountCents(v *int64) *CreditItemCreate {
	if v != nil {
		_c.SetAmountCents(*v)
	}
	return _c
}

// SetOpenedDate sets the "opened_date" field.
func (_c *CreditItemCreate) SetOpenedDate(v time.Time) *CreditItemCreate {
	_c.mutation.SetOpenedDate(v)
	return _c
}

// SetNillableOpenedDate sets the "opened_date" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableOpenedDate(v *time.Time) *CreditItemCreate {
	if v != nil {
		_c.SetOpenedDate(*v)
	}
	return _c
}

// SetReportedDate sets the "reported_date" field.
func (_c *CreditItemCreate) SetReportedDate(v time.Time) *CreditItemCreate {
	_c.mutation.SetReportedDate(v)
	return _c
}

// SetNillableReportedDate sets the "reported_date" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableReportedDate(v *time.Time) *CreditItemCreate {
	if v != nil {
		_c.SetReportedDate(*v)
	}
	return _c
}

// SetAccountLast4 sets the "account_last4" field.
func (_c *CreditItemCreate) SetAccountLast4(v string) *CreditItemCreate {
	_c.mutation.SetAccountLast4(v)
	return _c
}

// SetNillableAccountLast4 sets the "account_last4" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableAccountLast4(v *string) *CreditItemCreate {
	if v != nil {
		_c.SetAccountLast4(*v)
	}
	return _c
}

// SetBureaus sets the "bureaus" field.
func (_c *CreditItemCreate) SetBureaus(v []string) *CreditItemCreate {
	_c.mutation.SetBureaus(v)
	return _c
}

// SetIsNegative sets the "is_negative" field.
func (_c *CreditItemCreate) SetIsNegative(v bool) *CreditItemCreate {
	_c.mutation.SetIsNegative(v)
	return _c
}

// SetNillableIsNegative sets the "is_negative" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableIsNegative(v *bool) *CreditItemCreate {
	if v != nil {
		_c.SetIsNegative(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *CreditItemCreate) SetNotes(v string) *CreditItemCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableNotes(v *string) *CreditItemCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CreditItemCreate) SetConfidence(v float32) *CreditItemCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableConfidence(v *float32) *CreditItemCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CreditItemCreate) SetStatus(v string) *CreditItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableStatus(v *string) *CreditItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CreditItemCreate) SetCreatedAt(v time.Time) *CreditItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableCreatedAt(v *time.Time) *CreditItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CreditItemCreate) SetUpdatedAt(v time.Time) *CreditItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableUpdatedAt(v *time.Time) *CreditItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CreditItemCreate) SetID(v uuid.UUID) *CreditItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CreditItemCreate) SetNillableID(v *uuid.UUID) *CreditItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *CreditItemCreate) SetProfile(v *Profile) *CreditItemCreate {
	return _c.SetProfileID(v.ID)
}

// SetJob sets the "job" edge to the ExtractJob entity.
func (_c *CreditItemCreate) SetJob(v *ExtractJob) *CreditItemCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the CreditItemMutation object of the builder.
func (_c *CreditItemCreate) Mutation() *CreditItemMutation {
	return _c.mutation
}

// Save creates the CreditItem in the database.
func (_c *CreditItemCreate) Save(ctx context.Context) (*CreditItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CreditItemCreate) SaveX(ctx context.Context) *CreditItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CreditItemCreate) defaults() {
	if _, ok := _c.mutation.IsNegative(); !ok {
		v := credititem.DefaultIsNegative
		_c.mutation.SetIsNegative(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := credititem.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := credititem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := credititem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := credititem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := credititem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CreditItemCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "CreditItem.profile_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "CreditItem.job_id"`)}
	}
	if _, ok := _c.mutation.CreditorName(); !ok {
		return &ValidationError{Name: "creditor_name", err: errors.New(`ent: missing required field "CreditItem.creditor_name"`)}
	}
	if v, ok := _c.mutation.CreditorName(); ok {
		if err := credititem.CreditorNameValidator(v); err != nil {
			return &ValidationError{Name: "creditor_name", err: fmt.Errorf(`ent: validator failed for field "CreditItem.creditor_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "CreditItem.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := credititem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "CreditItem.item_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AccountLast4(); ok {
		if err := credititem.AccountLast4Validator(v); err != nil {
			return &ValidationError{Name: "account_last4", err: fmt.Errorf(`ent: validator failed for field "CreditItem.account_last4": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsNegative(); !ok {
		return &ValidationError{Name: "is_negative", err: errors.New(`ent: missing required field "CreditItem.is_negative"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "CreditItem.confidence"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CreditItem.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreditItem.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "CreditItem.profile"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "CreditItem.job"`)}
	}
	return nil
}

func (_c *CreditItemCreate) sqlSave(ctx context.Context) (*CreditItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CreditItemCreate) createSpec() (*CreditItem, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(credititem.Table, sqlgraph.NewFieldSpec(credititem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreditorName(); ok {
		_spec.SetField(credititem.FieldCreditorName, field.TypeString, value)
		_node.CreditorName = value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(credititem.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.AmountCents(); ok {
		_spec.SetField(credititem.FieldAmountCents, field.TypeInt64, value)
		_node.AmountCents = &value
	}
	if value, ok := _c.mutation.OpenedDate(); ok {
		_spec.SetField(credititem.FieldOpenedDate, field.TypeTime, value)
		_node.OpenedDate = &value
	}
	if value, ok := _c.mutation.ReportedDate(); ok {
		_spec.SetField(credititem.FieldReportedDate, field.TypeTime, value)
		_node.ReportedDate = &value
	}
	if value, ok := _c.mutation.AccountLast4(); ok {
		_spec.SetField(credititem.FieldAccountLast4, field.TypeString, value)
		_node.AccountLast4 = &value
	}
	if value, ok := _c.mutation.Bureaus(); ok {
		_spec.SetField(credititem.FieldBureaus, field.TypeJSON, value)
		_node.Bureaus = value
	}
	if value, ok := _c.mutation.IsNegative(); ok {
		_spec.SetField(credititem.FieldIsNegative, field.TypeBool, value)
		_node.IsNegative = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(credititem.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(credititem.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(credititem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(credititem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(credititem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditItem.Create().
//		SetProfileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditItemUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *CreditItemCreate) OnConflict(opts ...sql.ConflictOption) *CreditItemUpsertOne {
	_c.conflict = opts
	return &CreditItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CreditItemCreate) OnConflictColumns(columns ...string) *CreditItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CreditItemUpsertOne{
		create: _c,
	}
}

type (
	// CreditItemUpsertOne is the builder for "upsert"-ing
	//  one CreditItem node.
	CreditItemUpsertOne struct {
		create *CreditItemCreate
	}

	// CreditItemUpsert is the "OnConflict" setter.
	CreditItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetProfileID sets the "profile_id" field.
func (u *CreditItemUpsert) SetProfileID(v uuid.UUID) *CreditItemUpsert {
	u.Set(credititem.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateProfileID() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldProfileID)
	return u
}

// SetJobID sets the "job_id" field.
func (u *CreditItemUpsert) SetJobID(v uuid.UUID) *CreditItemUpsert {
	u.Set(credititem.FieldJobID, v)
	return u
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateJobID() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldJobID)
	return u
}

// SetCreditorName sets the "creditor_name" field.
func (u *CreditItemUpsert) SetCreditorName(v string) *CreditItemUpsert {
	u.Set(credititem.FieldCreditorName, v)
	return u
}

// UpdateCreditorName sets the "creditor_name" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateCreditorName() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldCreditorName)
	return u
}

// SetItemType sets the "item_type" field.
func (u *CreditItemUpsert) SetItemType(v string) *CreditItemUpsert {
	u.Set(credititem.FieldItemType, v)
	return u
}

// UpdateItemType sets the "item_type" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateItemType() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldItemType)
	return u
}

// SetAmountCents sets the "amount_cents" field.
func (u *CreditItemUpsert) SetAmountCents(v int64) *CreditItemUpsert {
	u.Set(credititem.FieldAmountCents, v)
	return u
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateAmountCents() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldAmountCents)
	return u
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *CreditItemUpsert) AddAmountCents(v int64) *CreditItemUpsert {
	u.Add(credititem.FieldAmountCents, v)
	return u
}

// ClearAmountCents clears the value of the "amount_cents" field.
func (u *CreditItemUpsert) ClearAmountCents() *CreditItemUpsert {
	u.SetNull(credititem.FieldAmountCents)
	return u
}

// SetOpenedDate sets the "opened_date" field.
func (u *CreditItemUpsert) SetOpenedDate(v time.Time) *CreditItemUpsert {
	u.Set(credititem.FieldOpenedDate, v)
	return u
}

// UpdateOpenedDate sets the "opened_date" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateOpenedDate() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldOpenedDate)
	return u
}

// ClearOpenedDate clears the value of the "opened_date" field.
func (u *CreditItemUpsert) ClearOpenedDate() *CreditItemUpsert {
	u.SetNull(credititem.FieldOpenedDate)
	return u
}

// SetReportedDate sets the "reported_date" field.
func (u *CreditItemUpsert) SetReportedDate(v time.Time) *CreditItemUpsert {
	u.Set(credititem.FieldReportedDate, v)
	return u
}

// UpdateReportedDate sets the "reported_date" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateReportedDate() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldReportedDate)
	return u
}

// ClearReportedDate clears the value of the "reported_date" field.
func (u *CreditItemUpsert) ClearReportedDate() *CreditItemUpsert {
	u.SetNull(credititem.FieldReportedDate)
	return u
}

// SetAccountLast4 sets the "account_last4" field.
func (u *CreditItemUpsert) SetAccountLast4(v string) *CreditItemUpsert {
	u.Set(credititem.FieldAccountLast4, v)
	return u
}

// UpdateAccountLast4 sets the "account_last4" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateAccountLast4() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldAccountLast4)
	return u
}

// ClearAccountLast4 clears the value of the "account_last4" field.
func (u *CreditItemUpsert) ClearAccountLast4() *CreditItemUpsert {
	u.SetNull(credititem.FieldAccountLast4)
	return u
}

// SetBureaus sets the "bureaus" field.
func (u *CreditItemUpsert) SetBureaus(v []string) *CreditItemUpsert {
	u.Set(credititem.FieldBureaus, v)
	return u
}

// UpdateBureaus sets the "bureaus" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateBureaus() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldBureaus)
	return u
}

// ClearBureaus clears the value of the "bureaus" field.
func (u *CreditItemUpsert) ClearBureaus() *CreditItemUpsert {
	u.SetNull(credititem.FieldBureaus)
	return u
}

// SetIsNegative sets the "is_negative" field.
func (u *CreditItemUpsert) SetIsNegative(v bool) *CreditItemUpsert {
	u.Set(credititem.FieldIsNegative, v)
	return u
}

// UpdateIsNegative sets the "is_negative" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateIsNegative() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldIsNegative)
	return u
}

// SetNotes sets the "notes" field.
func (u *CreditItemUpsert) SetNotes(v string) *CreditItemUpsert {
	u.Set(credititem.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateNotes() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *CreditItemUpsert) ClearNotes() *CreditItemUpsert {
	u.SetNull(credititem.FieldNotes)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *CreditItemUpsert) SetConfidence(v float32) *CreditItemUpsert {
	u.Set(credititem.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateConfidence() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *CreditItemUpsert) AddConfidence(v float32) *CreditItemUpsert {
	u.Add(credititem.FieldConfidence, v)
	return u
}

// SetStatus sets the "status" field.
func (u *CreditItemUpsert) SetStatus(v string) *CreditItemUpsert {
	u.Set(credititem.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateStatus() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditItemUpsert) SetUpdatedAt(v time.Time) *CreditItemUpsert {
	u.Set(credititem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditItemUpsert) UpdateUpdatedAt() *CreditItemUpsert {
	u.SetExcluded(credititem.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CreditItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(credititem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditItemUpsertOne) UpdateNewValues() *CreditItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(credititem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(credititem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CreditItemUpsertOne) Ignore() *CreditItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditItemUpsertOne) DoNothing() *CreditItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditItemCreate.OnConflict
// documentation for more info.
func (u *CreditItemUpsertOne) Update(set func(*CreditItemUpsert)) *CreditItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *CreditItemUpsertOne) SetProfileID(v uuid.UUID) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateProfileID() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateProfileID()
	})
}

// SetJobID sets the "job_id" field.
func (u *CreditItemUpsertOne) SetJobID(v uuid.UUID) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateJobID() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateJobID()
	})
}

// SetCreditorName sets the "creditor_name" field.
func (u *CreditItemUpsertOne) SetCreditorName(v string) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetCreditorName(v)
	})
}

// UpdateCreditorName sets the "creditor_name" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateCreditorName() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateCreditorName()
	})
}

// SetItemType sets the "item_type" field.
func (u *CreditItemUpsertOne) SetItemType(v string) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetItemType(v)
	})
}

// UpdateItemType sets the "item_type" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateItemType() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateItemType()
	})
}

// SetAmountCents sets the "amount_cents" field.
func (u *CreditItemUpsertOne) SetAmountCents(v int64) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetAmountCents(v)
	})
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *CreditItemUpsertOne) AddAmountCents(v int64) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.AddAmountCents(v)
	})
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateAmountCents() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateAmountCents()
	})
}

// ClearAmountCents clears the value of the "amount_cents" field.
func (u *CreditItemUpsertOne) ClearAmountCents() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearAmountCents()
	})
}

// SetOpenedDate sets the "opened_date" field.
func (u *CreditItemUpsertOne) SetOpenedDate(v time.Time) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetOpenedDate(v)
	})
}

// UpdateOpenedDate sets the "opened_date" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateOpenedDate() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateOpenedDate()
	})
}

// ClearOpenedDate clears the value of the "opened_date" field.
func (u *CreditItemUpsertOne) ClearOpenedDate() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearOpenedDate()
	})
}

// SetReportedDate sets the "reported_date" field.
func (u *CreditItemUpsertOne) SetReportedDate(v time.Time) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetReportedDate(v)
	})
}

// UpdateReportedDate sets the "reported_date" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateReportedDate() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateReportedDate()
	})
}

// ClearReportedDate clears the value of the "reported_date" field.
func (u *CreditItemUpsertOne) ClearReportedDate() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearReportedDate()
	})
}

// SetAccountLast4 sets the "account_last4" field.
func (u *CreditItemUpsertOne) SetAccountLast4(v string) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetAccountLast4(v)
	})
}

// UpdateAccountLast4 sets the "account_last4" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateAccountLast4() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateAccountLast4()
	})
}

// ClearAccountLast4 clears the value of the "account_last4" field.
func (u *CreditItemUpsertOne) ClearAccountLast4() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearAccountLast4()
	})
}

// SetBureaus sets the "bureaus" field.
func (u *CreditItemUpsertOne) SetBureaus(v []string) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetBureaus(v)
	})
}

// UpdateBureaus sets the "bureaus" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateBureaus() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateBureaus()
	})
}

// ClearBureaus clears the value of the "bureaus" field.
func (u *CreditItemUpsertOne) ClearBureaus() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearBureaus()
	})
}

// SetIsNegative sets the "is_negative" field.
func (u *CreditItemUpsertOne) SetIsNegative(v bool) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetIsNegative(v)
	})
}

// UpdateIsNegative sets the "is_negative" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateIsNegative() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateIsNegative()
	})
}

// SetNotes sets the "notes" field.
func (u *CreditItemUpsertOne) SetNotes(v string) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateNotes() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *CreditItemUpsertOne) ClearNotes() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearNotes()
	})
}

// SetConfidence sets the "confidence" field.
func (u *CreditItemUpsertOne) SetConfidence(v float32) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *CreditItemUpsertOne) AddConfidence(v float32) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateConfidence() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateConfidence()
	})
}

// SetStatus sets the "status" field.
func (u *CreditItemUpsertOne) SetStatus(v string) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateStatus() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditItemUpsertOne) SetUpdatedAt(v time.Time) *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditItemUpsertOne) UpdateUpdatedAt() *CreditItemUpsertOne {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CreditItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CreditItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CreditItemUpsertOne.ID is not supported by MySQL driver. Use CreditItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CreditItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CreditItemCreateBulk is the builder for creating many CreditItem entities in bulk.
type CreditItemCreateBulk struct {
	config
	err      error
	builders []*CreditItemCreate
	conflict []sql.ConflictOption
}

// Save creates the CreditItem entities in the database.
func (_c *CreditItemCreateBulk) Save(ctx context.Context) ([]*CreditItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CreditItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CreditItemCreateBulk) SaveX(ctx context.Context) []*CreditItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CreditItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CreditItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CreditItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CreditItemUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *CreditItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *CreditItemUpsertBulk {
	_c.conflict = opts
	return &CreditItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CreditItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CreditItemCreateBulk) OnConflictColumns(columns ...string) *CreditItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CreditItemUpsertBulk{
		create: _c,
	}
}

// CreditItemUpsertBulk is the builder for "upsert"-ing
// a bulk of CreditItem nodes.
type CreditItemUpsertBulk struct {
	create *CreditItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CreditItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(credititem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CreditItemUpsertBulk) UpdateNewValues() *CreditItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(credititem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(credititem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CreditItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CreditItemUpsertBulk) Ignore() *CreditItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CreditItemUpsertBulk) DoNothing() *CreditItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CreditItemCreateBulk.OnConflict
// documentation for more info.
func (u *CreditItemUpsertBulk) Update(set func(*CreditItemUpsert)) *CreditItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CreditItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *CreditItemUpsertBulk) SetProfileID(v uuid.UUID) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateProfileID() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateProfileID()
	})
}

// SetJobID sets the "job_id" field.
func (u *CreditItemUpsertBulk) SetJobID(v uuid.UUID) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetJobID(v)
	})
}

// UpdateJobID sets the "job_id" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateJobID() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateJobID()
	})
}

// SetCreditorName sets the "creditor_name" field.
func (u *CreditItemUpsertBulk) SetCreditorName(v string) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetCreditorName(v)
	})
}

// UpdateCreditorName sets the "creditor_name" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateCreditorName() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateCreditorName()
	})
}

// SetItemType sets the "item_type" field.
func (u *CreditItemUpsertBulk) SetItemType(v string) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetItemType(v)
	})
}

// UpdateItemType sets the "item_type" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateItemType() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateItemType()
	})
}

// SetAmountCents sets the "amount_cents" field.
func (u *CreditItemUpsertBulk) SetAmountCents(v int64) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetAmountCents(v)
	})
}

// AddAmountCents adds v to the "amount_cents" field.
func (u *CreditItemUpsertBulk) AddAmountCents(v int64) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.AddAmountCents(v)
	})
}

// UpdateAmountCents sets the "amount_cents" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateAmountCents() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateAmountCents()
	})
}

// ClearAmountCents clears the value of the "amount_cents" field.
func (u *CreditItemUpsertBulk) ClearAmountCents() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearAmountCents()
	})
}

// SetOpenedDate sets the "opened_date" field.
func (u *CreditItemUpsertBulk) SetOpenedDate(v time.Time) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetOpenedDate(v)
	})
}

// UpdateOpenedDate sets the "opened_date" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateOpenedDate() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateOpenedDate()
	})
}

// ClearOpenedDate clears the value of the "opened_date" field.
func (u *CreditItemUpsertBulk) ClearOpenedDate() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearOpenedDate()
	})
}

// SetReportedDate sets the "reported_date" field.
func (u *CreditItemUpsertBulk) SetReportedDate(v time.Time) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetReportedDate(v)
	})
}

// UpdateReportedDate sets the "reported_date" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateReportedDate() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateReportedDate()
	})
}

// ClearReportedDate clears the value of the "reported_date" field.
func (u *CreditItemUpsertBulk) ClearReportedDate() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearReportedDate()
	})
}

// SetAccountLast4 sets the "account_last4" field.
func (u *CreditItemUpsertBulk) SetAccountLast4(v string) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetAccountLast4(v)
	})
}

// UpdateAccountLast4 sets the "account_last4" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateAccountLast4() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateAccountLast4()
	})
}

// ClearAccountLast4 clears the value of the "account_last4" field.
func (u *CreditItemUpsertBulk) ClearAccountLast4() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearAccountLast4()
	})
}

// SetBureaus sets the "bureaus" field.
func (u *CreditItemUpsertBulk) SetBureaus(v []string) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetBureaus(v)
	})
}

// UpdateBureaus sets the "bureaus" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateBureaus() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateBureaus()
	})
}

// ClearBureaus clears the value of the "bureaus" field.
func (u *CreditItemUpsertBulk) ClearBureaus() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearBureaus()
	})
}

// SetIsNegative sets the "is_negative" field.
func (u *CreditItemUpsertBulk) SetIsNegative(v bool) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetIsNegative(v)
	})
}

// UpdateIsNegative sets the "is_negative" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateIsNegative() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateIsNegative()
	})
}

// SetNotes sets the "notes" field.
func (u *CreditItemUpsertBulk) SetNotes(v string) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateNotes() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *CreditItemUpsertBulk) ClearNotes() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.ClearNotes()
	})
}

// SetConfidence sets the "confidence" field.
func (u *CreditItemUpsertBulk) SetConfidence(v float32) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *CreditItemUpsertBulk) AddConfidence(v float32) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateConfidence() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateConfidence()
	})
}

// SetStatus sets the "status" field.
func (u *CreditItemUpsertBulk) SetStatus(v string) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateStatus() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CreditItemUpsertBulk) SetUpdatedAt(v time.Time) *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CreditItemUpsertBulk) UpdateUpdatedAt() *CreditItemUpsertBulk {
	return u.Update(func(s *CreditItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CreditItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CreditItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CreditItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CreditItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

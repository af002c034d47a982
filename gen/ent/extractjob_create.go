// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// ExtractJobCreate is the builder for creating a ExtractJob entity.
type ExtractJobCreate struct {
	config
	mutation *ExtractJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProfileID sets the "profile_id" field.
func (_c *ExtractJobCreate) SetProfileID(v uuid.UUID) *ExtractJobCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ExtractJobCreate) SetFilePath(v string) *ExtractJobCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ExtractJobCreate) SetFileName(v string) *ExtractJobCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractJobCreate) SetStatus(v string) *ExtractJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableStatus(v *string) *ExtractJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractJobCreate) SetCreatedAt(v time.Time) *ExtractJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableCreatedAt(v *time.Time) *ExtractJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractJobCreate) SetStartedAt(v time.Time) *ExtractJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableStartedAt(v *time.Time) *ExtractJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractJobCreate) SetFinishedAt(v time.Time) *ExtractJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableFinishedAt(v *time.Time) *ExtractJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractJobCreate) SetErrorMessage(v string) *ExtractJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableErrorMessage(v *string) *ExtractJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResultSummary sets the "result_summary" field.
func (_c *ExtractJobCreate) SetResultSummary(v json.RawMessage) *ExtractJobCreate {
	_c.mutation.SetResultSummary(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractJobCreate) SetID(v uuid.UUID) *ExtractJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractJobCreate) SetNillableID(v *uuid.UUID) *ExtractJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ExtractJobCreate) SetProfile(v *Profile) *ExtractJobCreate {
	return _c.SetProfileID(v.ID)
}

// AddItemIDs adds the "items" edge to the CreditItem entity by IDs.
func (_c *ExtractJobCreate) AddItemIDs(ids ...uuid.UUID) *ExtractJobCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the CreditItem entity.
func (_c *ExtractJobCreate) AddItems(v ...*CreditItem) *ExtractJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the ExtractJobMutation object of the builder.
func (_c *ExtractJobCreate) Mutation() *ExtractJobMutation {
	return _c.mutation
}

// Save creates the ExtractJob in the database.
func (_c *ExtractJobCreate) Save(ctx context.Context) (*ExtractJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractJobCreate) SaveX(ctx context.Context) *ExtractJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extractjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractJobCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ExtractJob.profile_id"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "ExtractJob.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := extractjob.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ExtractJob.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := extractjob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ExtractJob.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractJob.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractJob.created_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "ExtractJob.profile"`)}
	}
	return nil
}

func (_c *ExtractJobCreate) sqlSave(ctx context.Context) (*ExtractJob, error) {
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

func (_c *ExtractJobCreate) createSpec() (*ExtractJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractjob.Table, sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(extractjob.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(extractjob.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ResultSummary(); ok {
		_spec.SetField(extractjob.FieldResultSummary, field.TypeJSON, value)
		_node.ResultSummary = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractjob.ProfileTable,
			Columns: []string{extractjob.ProfileColumn},
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
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractjob.ItemsTable,
			Columns: []string{extractjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(credititem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractJob.Create().
//		SetProfileID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractJobUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractJobCreate) OnConflict(opts ...sql.ConflictOption) *ExtractJobUpsertOne {
	_c.conflict = opts
	return &ExtractJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractJobCreate) OnConflictColumns(columns ...string) *ExtractJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractJobUpsertOne{
		create: _c,
	}
}

type (
	// ExtractJobUpsertOne is the builder for "upsert"-ing
	//  one ExtractJob node.
	ExtractJobUpsertOne struct {
		create *ExtractJobCreate
	}

	// ExtractJobUpsert is the "OnConflict" setter.
	ExtractJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetProfileID sets the "profile_id" field.
func (u *ExtractJobUpsert) SetProfileID(v uuid.UUID) *ExtractJobUpsert {
	u.Set(extractjob.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ExtractJobUpsert) UpdateProfileID() *ExtractJobUpsert {
	u.SetExcluded(extractjob.FieldProfileID)
	return u
}

// SetFilePath sets the "file_path" field.
func (u *ExtractJobUpsert) SetFilePath(v string) *ExtractJobUpsert {
	u.Set(extractjob.FieldFilePath, v)
	return u
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *ExtractJobUpsert) UpdateFilePath() *ExtractJobUpsert {
	u.SetExcluded(extractjob.FieldFilePath)
	return u
}

// SetFileName sets the "file_name" field.
func (u *ExtractJobUpsert) SetFileName(v string) *ExtractJobUpsert {
	u.Set(extractjob.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ExtractJobUpsert) UpdateFileName() *ExtractJobUpsert {
	u.SetExcluded(extractjob.FieldFileName)
	return u
}

// SetStatus sets the "status" field.
func (u *ExtractJobUpsert) SetStatus(v string) *ExtractJobUpsert {
	u.Set(extractjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractJobUpsert) UpdateStatus() *ExtractJobUpsert {
	u.SetExcluded(extractjob.FieldStatus)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ExtractJobUpsert) SetStartedAt(v time.Time) *ExtractJobUpsert {
	u.Set(extractjob.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ExtractJobUpsert) UpdateStartedAt() *ExtractJobUpsert {
	u.SetExcluded(extractjob.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ExtractJobUpsert) ClearStartedAt() *ExtractJobUpsert {
	u.SetNull(extractjob.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *ExtractJobUpsert) SetFinishedAt(v time.Time) *ExtractJobUpsert {
	u.Set(extractjob.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ExtractJobUpsert) UpdateFinishedAt() *ExtractJobUpsert {
	u.SetExcluded(extractjob.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ExtractJobUpsert) ClearFinishedAt() *ExtractJobUpsert {
	u.SetNull(extractjob.FieldFinishedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractJobUpsert) SetErrorMessage(v string) *ExtractJobUpsert {
	u.Set(extractjob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractJobUpsert) UpdateErrorMessage() *ExtractJobUpsert {
	u.SetExcluded(extractjob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractJobUpsert) ClearErrorMessage() *ExtractJobUpsert {
	u.SetNull(extractjob.FieldErrorMessage)
	return u
}

// SetResultSummary sets the "result_summary" field.
func (u *ExtractJobUpsert) SetResultSummary(v json.RawMessage) *ExtractJobUpsert {
	u.Set(extractjob.FieldResultSummary, v)
	return u
}

// UpdateResultSummary sets the "result_summary" field to the value that was provided on create.
func (u *ExtractJobUpsert) UpdateResultSummary() *ExtractJobUpsert {
	u.SetExcluded(extractjob.FieldResultSummary)
	return u
}

// ClearResultSummary clears the value of the "result_summary" field.
func (u *ExtractJobUpsert) ClearResultSummary() *ExtractJobUpsert {
	u.SetNull(extractjob.FieldResultSummary)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExtractJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractJobUpsertOne) UpdateNewValues() *ExtractJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extractjob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(extractjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractJobUpsertOne) Ignore() *ExtractJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractJobUpsertOne) DoNothing() *ExtractJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractJobCreate.OnConflict
// documentation for more info.
func (u *ExtractJobUpsertOne) Update(set func(*ExtractJobUpsert)) *ExtractJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *ExtractJobUpsertOne) SetProfileID(v uuid.UUID) *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ExtractJobUpsertOne) UpdateProfileID() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateProfileID()
	})
}

// SetFilePath sets the "file_path" field.
func (u *ExtractJobUpsertOne) SetFilePath(v string) *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *ExtractJobUpsertOne) UpdateFilePath() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateFilePath()
	})
}

// SetFileName sets the "file_name" field.
func (u *ExtractJobUpsertOne) SetFileName(v string) *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ExtractJobUpsertOne) UpdateFileName() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateFileName()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractJobUpsertOne) SetStatus(v string) *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractJobUpsertOne) UpdateStatus() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ExtractJobUpsertOne) SetStartedAt(v time.Time) *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ExtractJobUpsertOne) UpdateStartedAt() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ExtractJobUpsertOne) ClearStartedAt() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ExtractJobUpsertOne) SetFinishedAt(v time.Time) *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ExtractJobUpsertOne) UpdateFinishedAt() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ExtractJobUpsertOne) ClearFinishedAt() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractJobUpsertOne) SetErrorMessage(v string) *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractJobUpsertOne) UpdateErrorMessage() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractJobUpsertOne) ClearErrorMessage() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResultSummary sets the "result_summary" field.
func (u *ExtractJobUpsertOne) SetResultSummary(v json.RawMessage) *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetResultSummary(v)
	})
}

// UpdateResultSummary sets the "result_summary" field to the value that was provided on create.
func (u *ExtractJobUpsertOne) UpdateResultSummary() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateResultSummary()
	})
}

// ClearResultSummary clears the value of the "result_summary" field.
func (u *ExtractJobUpsertOne) ClearResultSummary() *ExtractJobUpsertOne {
	return u.Update(func(s *ExtractJobUpsert) {
		s.ClearResultSummary()
	})
}

// Exec executes the query.
func (u *ExtractJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractJobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractJobUpsertOne.ID is not supported by MySQL driver. Use ExtractJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractJobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractJobCreateBulk is the builder for creating many ExtractJob entities in bulk.
type ExtractJobCreateBulk struct {
	config
	err      error
	builders []*ExtractJobCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractJob entities in the database.
func (_c *ExtractJobCreateBulk) Save(ctx context.Context) ([]*ExtractJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractJobMutation)
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
func (_c *ExtractJobCreateBulk) SaveX(ctx context.Context) []*ExtractJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractJobUpsert) {
//			SetProfileID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractJobUpsertBulk {
	_c.conflict = opts
	return &ExtractJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractJobCreateBulk) OnConflictColumns(columns ...string) *ExtractJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractJobUpsertBulk{
		create: _c,
	}
}

// ExtractJobUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractJob nodes.
type ExtractJobUpsertBulk struct {
	create *ExtractJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extractjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractJobUpsertBulk) UpdateNewValues() *ExtractJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extractjob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(extractjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractJobUpsertBulk) Ignore() *ExtractJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractJobUpsertBulk) DoNothing() *ExtractJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractJobCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractJobUpsertBulk) Update(set func(*ExtractJobUpsert)) *ExtractJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *ExtractJobUpsertBulk) SetProfileID(v uuid.UUID) *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *ExtractJobUpsertBulk) UpdateProfileID() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateProfileID()
	})
}

// SetFilePath sets the "file_path" field.
func (u *ExtractJobUpsertBulk) SetFilePath(v string) *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *ExtractJobUpsertBulk) UpdateFilePath() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateFilePath()
	})
}

// SetFileName sets the "file_name" field.
func (u *ExtractJobUpsertBulk) SetFileName(v string) *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ExtractJobUpsertBulk) UpdateFileName() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateFileName()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractJobUpsertBulk) SetStatus(v string) *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractJobUpsertBulk) UpdateStatus() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateStatus()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ExtractJobUpsertBulk) SetStartedAt(v time.Time) *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ExtractJobUpsertBulk) UpdateStartedAt() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ExtractJobUpsertBulk) ClearStartedAt() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ExtractJobUpsertBulk) SetFinishedAt(v time.Time) *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ExtractJobUpsertBulk) UpdateFinishedAt() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ExtractJobUpsertBulk) ClearFinishedAt() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExtractJobUpsertBulk) SetErrorMessage(v string) *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExtractJobUpsertBulk) UpdateErrorMessage() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExtractJobUpsertBulk) ClearErrorMessage() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResultSummary sets the "result_summary" field.
func (u *ExtractJobUpsertBulk) SetResultSummary(v json.RawMessage) *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.SetResultSummary(v)
	})
}

// UpdateResultSummary sets the "result_summary" field to the value that was provided on create.
func (u *ExtractJobUpsertBulk) UpdateResultSummary() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.UpdateResultSummary()
	})
}

// ClearResultSummary clears the value of the "result_summary" field.
func (u *ExtractJobUpsertBulk) ClearResultSummary() *ExtractJobUpsertBulk {
	return u.Update(func(s *ExtractJobUpsert) {
		s.ClearResultSummary()
	})
}

// Exec executes the query.
func (u *ExtractJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

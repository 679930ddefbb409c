// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ecarehq/ecare_backend/internal/repo/doctor"
	"github.com/ecarehq/ecare_backend/internal/repo/doctorleave"
	"github.com/google/uuid"
)

// DoctorLeaveCreate is the builder for creating a DoctorLeave entity.
type DoctorLeaveCreate struct {
	config
	mutation *DoctorLeaveMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorLeaveCreate) SetCreatedAt(v time.Time) *DoctorLeaveCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorLeaveCreate) SetNillableCreatedAt(v *time.Time) *DoctorLeaveCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorLeaveCreate) SetUpdatedAt(v time.Time) *DoctorLeaveCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorLeaveCreate) SetNillableUpdatedAt(v *time.Time) *DoctorLeaveCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *DoctorLeaveCreate) SetDoctorID(v uuid.UUID) *DoctorLeaveCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *DoctorLeaveCreate) SetStartDate(v time.Time) *DoctorLeaveCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *DoctorLeaveCreate) SetEndDate(v time.Time) *DoctorLeaveCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *DoctorLeaveCreate) SetReason(v string) *DoctorLeaveCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DoctorLeaveCreate) SetStatus(v doctorleave.Status) *DoctorLeaveCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DoctorLeaveCreate) SetNillableStatus(v *doctorleave.Status) *DoctorLeaveCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorLeaveCreate) SetID(v uuid.UUID) *DoctorLeaveCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorLeaveCreate) SetNillableID(v *uuid.UUID) *DoctorLeaveCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_c *DoctorLeaveCreate) SetDoctor(v *Doctor) *DoctorLeaveCreate {
	return _c.SetDoctorID(v.ID)
}

// Mutation returns the DoctorLeaveMutation object of the builder.
func (_c *DoctorLeaveCreate) Mutation() *DoctorLeaveMutation {
	return _c.mutation
}

// Save creates the DoctorLeave in the database.
func (_c *DoctorLeaveCreate) Save(ctx context.Context) (*DoctorLeave, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorLeaveCreate) SaveX(ctx context.Context) *DoctorLeave {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorLeaveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorLeaveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorLeaveCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctorleave.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctorleave.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := doctorleave.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctorleave.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorLeaveCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DoctorLeave.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DoctorLeave.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "DoctorLeave.doctor_id"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`repo: missing required field "DoctorLeave.start_date"`)}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`repo: missing required field "DoctorLeave.end_date"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`repo: missing required field "DoctorLeave.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := doctorleave.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "DoctorLeave.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "DoctorLeave.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := doctorleave.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DoctorLeave.status": %w`, err)}
		}
	}
	if len(_c.mutation.DoctorIDs()) == 0 {
		return &ValidationError{Name: "doctor", err: errors.New(`repo: missing required edge "DoctorLeave.doctor"`)}
	}
	return nil
}

func (_c *DoctorLeaveCreate) sqlSave(ctx context.Context) (*DoctorLeave, error) {
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

func (_c *DoctorLeaveCreate) createSpec() (*DoctorLeave, *sqlgraph.CreateSpec) {
	var (
		_node = &DoctorLeave{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctorleave.Table, sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctorleave.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorleave.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(doctorleave.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(doctorleave.FieldEndDate, field.TypeTime, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(doctorleave.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(doctorleave.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.DoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   doctorleave.DoctorTable,
			Columns: []string{doctorleave.DoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DoctorID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorLeave.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorLeaveUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorLeaveCreate) OnConflict(opts ...sql.ConflictOption) *DoctorLeaveUpsertOne {
	_c.conflict = opts
	return &DoctorLeaveUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorLeave.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorLeaveCreate) OnConflictColumns(columns ...string) *DoctorLeaveUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorLeaveUpsertOne{
		create: _c,
	}
}

type (
	// DoctorLeaveUpsertOne is the builder for "upsert"-ing
	//  one DoctorLeave node.
	DoctorLeaveUpsertOne struct {
		create *DoctorLeaveCreate
	}

	// DoctorLeaveUpsert is the "OnConflict" setter.
	DoctorLeaveUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorLeaveUpsert) SetUpdatedAt(v time.Time) *DoctorLeaveUpsert {
	u.Set(doctorleave.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorLeaveUpsert) UpdateUpdatedAt() *DoctorLeaveUpsert {
	u.SetExcluded(doctorleave.FieldUpdatedAt)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorLeaveUpsert) SetDoctorID(v uuid.UUID) *DoctorLeaveUpsert {
	u.Set(doctorleave.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorLeaveUpsert) UpdateDoctorID() *DoctorLeaveUpsert {
	u.SetExcluded(doctorleave.FieldDoctorID)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *DoctorLeaveUpsert) SetStartDate(v time.Time) *DoctorLeaveUpsert {
	u.Set(doctorleave.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *DoctorLeaveUpsert) UpdateStartDate() *DoctorLeaveUpsert {
	u.SetExcluded(doctorleave.FieldStartDate)
	return u
}

// SetEndDate sets the "end_date" field.
func (u *DoctorLeaveUpsert) SetEndDate(v time.Time) *DoctorLeaveUpsert {
	u.Set(doctorleave.FieldEndDate, v)
	return u
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *DoctorLeaveUpsert) UpdateEndDate() *DoctorLeaveUpsert {
	u.SetExcluded(doctorleave.FieldEndDate)
	return u
}

// SetReason sets the "reason" field.
func (u *DoctorLeaveUpsert) SetReason(v string) *DoctorLeaveUpsert {
	u.Set(doctorleave.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *DoctorLeaveUpsert) UpdateReason() *DoctorLeaveUpsert {
	u.SetExcluded(doctorleave.FieldReason)
	return u
}

// SetStatus sets the "status" field.
func (u *DoctorLeaveUpsert) SetStatus(v doctorleave.Status) *DoctorLeaveUpsert {
	u.Set(doctorleave.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DoctorLeaveUpsert) UpdateStatus() *DoctorLeaveUpsert {
	u.SetExcluded(doctorleave.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DoctorLeave.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorleave.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorLeaveUpsertOne) UpdateNewValues() *DoctorLeaveUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctorleave.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctorleave.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorLeave.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorLeaveUpsertOne) Ignore() *DoctorLeaveUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorLeaveUpsertOne) DoNothing() *DoctorLeaveUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorLeaveCreate.OnConflict
// documentation for more info.
func (u *DoctorLeaveUpsertOne) Update(set func(*DoctorLeaveUpsert)) *DoctorLeaveUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorLeaveUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorLeaveUpsertOne) SetUpdatedAt(v time.Time) *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorLeaveUpsertOne) UpdateUpdatedAt() *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorLeaveUpsertOne) SetDoctorID(v uuid.UUID) *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorLeaveUpsertOne) UpdateDoctorID() *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateDoctorID()
	})
}

// SetStartDate sets the "start_date" field.
func (u *DoctorLeaveUpsertOne) SetStartDate(v time.Time) *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *DoctorLeaveUpsertOne) UpdateStartDate() *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *DoctorLeaveUpsertOne) SetEndDate(v time.Time) *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *DoctorLeaveUpsertOne) UpdateEndDate() *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateEndDate()
	})
}

// SetReason sets the "reason" field.
func (u *DoctorLeaveUpsertOne) SetReason(v string) *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *DoctorLeaveUpsertOne) UpdateReason() *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateReason()
	})
}

// SetStatus sets the "status" field.
func (u *DoctorLeaveUpsertOne) SetStatus(v doctorleave.Status) *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DoctorLeaveUpsertOne) UpdateStatus() *DoctorLeaveUpsertOne {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *DoctorLeaveUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorLeaveCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorLeaveUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorLeaveUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorLeaveUpsertOne.ID is not supported by MySQL driver. Use DoctorLeaveUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorLeaveUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorLeaveCreateBulk is the builder for creating many DoctorLeave entities in bulk.
type DoctorLeaveCreateBulk struct {
	config
	err      error
	builders []*DoctorLeaveCreate
	conflict []sql.ConflictOption
}

// Save creates the DoctorLeave entities in the database.
func (_c *DoctorLeaveCreateBulk) Save(ctx context.Context) ([]*DoctorLeave, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DoctorLeave, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorLeaveMutation)
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
func (_c *DoctorLeaveCreateBulk) SaveX(ctx context.Context) []*DoctorLeave {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorLeaveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorLeaveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DoctorLeave.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorLeaveUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorLeaveCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorLeaveUpsertBulk {
	_c.conflict = opts
	return &DoctorLeaveUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DoctorLeave.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorLeaveCreateBulk) OnConflictColumns(columns ...string) *DoctorLeaveUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorLeaveUpsertBulk{
		create: _c,
	}
}

// DoctorLeaveUpsertBulk is the builder for "upsert"-ing
// a bulk of DoctorLeave nodes.
type DoctorLeaveUpsertBulk struct {
	create *DoctorLeaveCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DoctorLeave.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctorleave.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorLeaveUpsertBulk) UpdateNewValues() *DoctorLeaveUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctorleave.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctorleave.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DoctorLeave.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorLeaveUpsertBulk) Ignore() *DoctorLeaveUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorLeaveUpsertBulk) DoNothing() *DoctorLeaveUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorLeaveCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorLeaveUpsertBulk) Update(set func(*DoctorLeaveUpsert)) *DoctorLeaveUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorLeaveUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorLeaveUpsertBulk) SetUpdatedAt(v time.Time) *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorLeaveUpsertBulk) UpdateUpdatedAt() *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *DoctorLeaveUpsertBulk) SetDoctorID(v uuid.UUID) *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *DoctorLeaveUpsertBulk) UpdateDoctorID() *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateDoctorID()
	})
}

// SetStartDate sets the "start_date" field.
func (u *DoctorLeaveUpsertBulk) SetStartDate(v time.Time) *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *DoctorLeaveUpsertBulk) UpdateStartDate() *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateStartDate()
	})
}

// SetEndDate sets the "end_date" field.
func (u *DoctorLeaveUpsertBulk) SetEndDate(v time.Time) *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetEndDate(v)
	})
}

// UpdateEndDate sets the "end_date" field to the value that was provided on create.
func (u *DoctorLeaveUpsertBulk) UpdateEndDate() *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateEndDate()
	})
}

// SetReason sets the "reason" field.
func (u *DoctorLeaveUpsertBulk) SetReason(v string) *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *DoctorLeaveUpsertBulk) UpdateReason() *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateReason()
	})
}

// SetStatus sets the "status" field.
func (u *DoctorLeaveUpsertBulk) SetStatus(v doctorleave.Status) *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DoctorLeaveUpsertBulk) UpdateStatus() *DoctorLeaveUpsertBulk {
	return u.Update(func(s *DoctorLeaveUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *DoctorLeaveUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorLeaveCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorLeaveCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorLeaveUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

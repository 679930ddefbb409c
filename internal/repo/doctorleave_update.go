// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ecarehq/ecare_backend/internal/repo/doctor"
	"github.com/ecarehq/ecare_backend/internal/repo/doctorleave"
	"github.com/ecarehq/ecare_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DoctorLeaveUpdate is the builder for updating DoctorLeave entities.
type DoctorLeaveUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorLeaveMutation
}

// Where appends a list predicates to the DoctorLeaveUpdate builder.
func (_u *DoctorLeaveUpdate) Where(ps ...predicate.DoctorLeave) *DoctorLeaveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorLeaveUpdate) SetUpdatedAt(v time.Time) *DoctorLeaveUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorLeaveUpdate) SetDoctorID(v uuid.UUID) *DoctorLeaveUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableDoctorID(v *uuid.UUID) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *DoctorLeaveUpdate) SetStartDate(v time.Time) *DoctorLeaveUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableStartDate(v *time.Time) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *DoctorLeaveUpdate) SetEndDate(v time.Time) *DoctorLeaveUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableEndDate(v *time.Time) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DoctorLeaveUpdate) SetReason(v string) *DoctorLeaveUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableReason(v *string) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DoctorLeaveUpdate) SetStatus(v doctorleave.Status) *DoctorLeaveUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DoctorLeaveUpdate) SetNillableStatus(v *doctorleave.Status) *DoctorLeaveUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *DoctorLeaveUpdate) SetDoctor(v *Doctor) *DoctorLeaveUpdate {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorLeaveMutation object of the builder.
func (_u *DoctorLeaveUpdate) Mutation() *DoctorLeaveMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *DoctorLeaveUpdate) ClearDoctor() *DoctorLeaveUpdate {
	_u.mutation.ClearDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorLeaveUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorLeaveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorLeaveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorLeaveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorLeaveUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorleave.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorLeaveUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := doctorleave.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "DoctorLeave.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := doctorleave.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DoctorLeave.status": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorLeave.doctor"`)
	}
	return nil
}

func (_u *DoctorLeaveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorleave.Table, doctorleave.Columns, sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorleave.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(doctorleave.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(doctorleave.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(doctorleave.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(doctorleave.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorleave.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorLeaveUpdateOne is the builder for updating a single DoctorLeave entity.
type DoctorLeaveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorLeaveMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorLeaveUpdateOne) SetUpdatedAt(v time.Time) *DoctorLeaveUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *DoctorLeaveUpdateOne) SetDoctorID(v uuid.UUID) *DoctorLeaveUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableDoctorID(v *uuid.UUID) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *DoctorLeaveUpdateOne) SetStartDate(v time.Time) *DoctorLeaveUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableStartDate(v *time.Time) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *DoctorLeaveUpdateOne) SetEndDate(v time.Time) *DoctorLeaveUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableEndDate(v *time.Time) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *DoctorLeaveUpdateOne) SetReason(v string) *DoctorLeaveUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableReason(v *string) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DoctorLeaveUpdateOne) SetStatus(v doctorleave.Status) *DoctorLeaveUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DoctorLeaveUpdateOne) SetNillableStatus(v *doctorleave.Status) *DoctorLeaveUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDoctor sets the "doctor" edge to the Doctor entity.
func (_u *DoctorLeaveUpdateOne) SetDoctor(v *Doctor) *DoctorLeaveUpdateOne {
	return _u.SetDoctorID(v.ID)
}

// Mutation returns the DoctorLeaveMutation object of the builder.
func (_u *DoctorLeaveUpdateOne) Mutation() *DoctorLeaveMutation {
	return _u.mutation
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (_u *DoctorLeaveUpdateOne) ClearDoctor() *DoctorLeaveUpdateOne {
	_u.mutation.ClearDoctor()
	return _u
}

// Where appends a list predicates to the DoctorLeaveUpdate builder.
func (_u *DoctorLeaveUpdateOne) Where(ps ...predicate.DoctorLeave) *DoctorLeaveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorLeaveUpdateOne) Select(field string, fields ...string) *DoctorLeaveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorLeave entity.
func (_u *DoctorLeaveUpdateOne) Save(ctx context.Context) (*DoctorLeave, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorLeaveUpdateOne) SaveX(ctx context.Context) *DoctorLeave {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorLeaveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorLeaveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorLeaveUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorleave.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorLeaveUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := doctorleave.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "DoctorLeave.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := doctorleave.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DoctorLeave.status": %w`, err)}
		}
	}
	if _u.mutation.DoctorCleared() && len(_u.mutation.DoctorIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DoctorLeave.doctor"`)
	}
	return nil
}

func (_u *DoctorLeaveUpdateOne) sqlSave(ctx context.Context) (_node *DoctorLeave, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorleave.Table, doctorleave.Columns, sqlgraph.NewFieldSpec(doctorleave.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorLeave.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorleave.FieldID)
		for _, f := range fields {
			if !doctorleave.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorleave.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorleave.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(doctorleave.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(doctorleave.FieldEndDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(doctorleave.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(doctorleave.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DoctorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DoctorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DoctorLeave{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorleave.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/watcrack/ent/attemptevent"
	"github.com/abhisek/watcrack/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *AttemptEventUpdate) SetTopicID(v string) *AttemptEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTopicID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTopicTitle sets the "topic_title" field.
func (_u *AttemptEventUpdate) SetTopicTitle(v string) *AttemptEventUpdate {
	_u.mutation.SetTopicTitle(v)
	return _u
}

// SetNillableTopicTitle sets the "topic_title" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTopicTitle(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTopicTitle(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *AttemptEventUpdate) SetWordCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableWordCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *AttemptEventUpdate) AddWordCount(v int) *AttemptEventUpdate {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetWpm sets the "wpm" field.
func (_u *AttemptEventUpdate) SetWpm(v int) *AttemptEventUpdate {
	_u.mutation.ResetWpm()
	_u.mutation.SetWpm(v)
	return _u
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableWpm(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetWpm(*v)
	}
	return _u
}

// AddWpm adds value to the "wpm" field.
func (_u *AttemptEventUpdate) AddWpm(v int) *AttemptEventUpdate {
	_u.mutation.AddWpm(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v int) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v int) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *AttemptEventUpdate) SetGrade(v string) *AttemptEventUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableGrade(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetActiveSecs sets the "active_secs" field.
func (_u *AttemptEventUpdate) SetActiveSecs(v float64) *AttemptEventUpdate {
	_u.mutation.ResetActiveSecs()
	_u.mutation.SetActiveSecs(v)
	return _u
}

// SetNillableActiveSecs sets the "active_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableActiveSecs(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetActiveSecs(*v)
	}
	return _u
}

// AddActiveSecs adds value to the "active_secs" field.
func (_u *AttemptEventUpdate) AddActiveSecs(v float64) *AttemptEventUpdate {
	_u.mutation.AddActiveSecs(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdate) SetDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDurationSecs(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdate) AddDurationSecs(v int) *AttemptEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *AttemptEventUpdate) SetAutoSubmitted(v bool) *AttemptEventUpdate {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAutoSubmitted(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := attemptevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicTitle(); ok {
		_spec.SetField(attemptevent.FieldTopicTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(attemptevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(attemptevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wpm(); ok {
		_spec.SetField(attemptevent.FieldWpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWpm(); ok {
		_spec.AddField(attemptevent.FieldWpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(attemptevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActiveSecs(); ok {
		_spec.SetField(attemptevent.FieldActiveSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActiveSecs(); ok {
		_spec.AddField(attemptevent.FieldActiveSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(attemptevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *AttemptEventUpdateOne) SetTopicID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTopicID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetTopicTitle sets the "topic_title" field.
func (_u *AttemptEventUpdateOne) SetTopicTitle(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTopicTitle(v)
	return _u
}

// SetNillableTopicTitle sets the "topic_title" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTopicTitle(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTopicTitle(*v)
	}
	return _u
}

// SetWordCount sets the "word_count" field.
func (_u *AttemptEventUpdateOne) SetWordCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetWordCount()
	_u.mutation.SetWordCount(v)
	return _u
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableWordCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetWordCount(*v)
	}
	return _u
}

// AddWordCount adds value to the "word_count" field.
func (_u *AttemptEventUpdateOne) AddWordCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddWordCount(v)
	return _u
}

// SetWpm sets the "wpm" field.
func (_u *AttemptEventUpdateOne) SetWpm(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetWpm()
	_u.mutation.SetWpm(v)
	return _u
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableWpm(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetWpm(*v)
	}
	return _u
}

// AddWpm adds value to the "wpm" field.
func (_u *AttemptEventUpdateOne) AddWpm(v int) *AttemptEventUpdateOne {
	_u.mutation.AddWpm(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v int) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *AttemptEventUpdateOne) SetGrade(v string) *AttemptEventUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableGrade(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetActiveSecs sets the "active_secs" field.
func (_u *AttemptEventUpdateOne) SetActiveSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetActiveSecs()
	_u.mutation.SetActiveSecs(v)
	return _u
}

// SetNillableActiveSecs sets the "active_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableActiveSecs(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetActiveSecs(*v)
	}
	return _u
}

// AddActiveSecs adds value to the "active_secs" field.
func (_u *AttemptEventUpdateOne) AddActiveSecs(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddActiveSecs(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptEventUpdateOne) SetDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDurationSecs(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptEventUpdateOne) AddDurationSecs(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *AttemptEventUpdateOne) SetAutoSubmitted(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAutoSubmitted(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Grade(); ok {
		if err := attemptevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.grade": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicTitle(); ok {
		_spec.SetField(attemptevent.FieldTopicTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordCount(); ok {
		_spec.SetField(attemptevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWordCount(); ok {
		_spec.AddField(attemptevent.FieldWordCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Wpm(); ok {
		_spec.SetField(attemptevent.FieldWpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWpm(); ok {
		_spec.AddField(attemptevent.FieldWpm, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(attemptevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActiveSecs(); ok {
		_spec.SetField(attemptevent.FieldActiveSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActiveSecs(); ok {
		_spec.AddField(attemptevent.FieldActiveSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attemptevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(attemptevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/watcrack/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *AttemptEventCreate) SetTopicID(v string) *AttemptEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTopicID(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetTopicTitle sets the "topic_title" field.
func (_c *AttemptEventCreate) SetTopicTitle(v string) *AttemptEventCreate {
	_c.mutation.SetTopicTitle(v)
	return _c
}

// SetNillableTopicTitle sets the "topic_title" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTopicTitle(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetTopicTitle(*v)
	}
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *AttemptEventCreate) SetWordCount(v int) *AttemptEventCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableWordCount(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetWpm sets the "wpm" field.
func (_c *AttemptEventCreate) SetWpm(v int) *AttemptEventCreate {
	_c.mutation.SetWpm(v)
	return _c
}

// SetNillableWpm sets the "wpm" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableWpm(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetWpm(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptEventCreate) SetScore(v int) *AttemptEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableScore(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *AttemptEventCreate) SetGrade(v string) *AttemptEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetActiveSecs sets the "active_secs" field.
func (_c *AttemptEventCreate) SetActiveSecs(v float64) *AttemptEventCreate {
	_c.mutation.SetActiveSecs(v)
	return _c
}

// SetNillableActiveSecs sets the "active_secs" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableActiveSecs(v *float64) *AttemptEventCreate {
	if v != nil {
		_c.SetActiveSecs(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *AttemptEventCreate) SetDurationSecs(v int) *AttemptEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableDurationSecs(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_c *AttemptEventCreate) SetAutoSubmitted(v bool) *AttemptEventCreate {
	_c.mutation.SetAutoSubmitted(v)
	return _c
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableAutoSubmitted(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetAutoSubmitted(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		v := attemptevent.DefaultTopicID
		_c.mutation.SetTopicID(v)
	}
	if _, ok := _c.mutation.TopicTitle(); !ok {
		v := attemptevent.DefaultTopicTitle
		_c.mutation.SetTopicTitle(v)
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		v := attemptevent.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.Wpm(); !ok {
		v := attemptevent.DefaultWpm
		_c.mutation.SetWpm(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := attemptevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.ActiveSecs(); !ok {
		v := attemptevent.DefaultActiveSecs
		_c.mutation.SetActiveSecs(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := attemptevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
	if _, ok := _c.mutation.AutoSubmitted(); !ok {
		v := attemptevent.DefaultAutoSubmitted
		_c.mutation.SetAutoSubmitted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "AttemptEvent.topic_id"`)}
	}
	if _, ok := _c.mutation.TopicTitle(); !ok {
		return &ValidationError{Name: "topic_title", err: errors.New(`ent: missing required field "AttemptEvent.topic_title"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "AttemptEvent.word_count"`)}
	}
	if _, ok := _c.mutation.Wpm(); !ok {
		return &ValidationError{Name: "wpm", err: errors.New(`ent: missing required field "AttemptEvent.wpm"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "AttemptEvent.score"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "AttemptEvent.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := attemptevent.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActiveSecs(); !ok {
		return &ValidationError{Name: "active_secs", err: errors.New(`ent: missing required field "AttemptEvent.active_secs"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "AttemptEvent.duration_secs"`)}
	}
	if _, ok := _c.mutation.AutoSubmitted(); !ok {
		return &ValidationError{Name: "auto_submitted", err: errors.New(`ent: missing required field "AttemptEvent.auto_submitted"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.TopicTitle(); ok {
		_spec.SetField(attemptevent.FieldTopicTitle, field.TypeString, value)
		_node.TopicTitle = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(attemptevent.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.Wpm(); ok {
		_spec.SetField(attemptevent.FieldWpm, field.TypeInt, value)
		_node.Wpm = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(attemptevent.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.ActiveSecs(); ok {
		_spec.SetField(attemptevent.FieldActiveSecs, field.TypeFloat64, value)
		_node.ActiveSecs = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(attemptevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.AutoSubmitted(); ok {
		_spec.SetField(attemptevent.FieldAutoSubmitted, field.TypeBool, value)
		_node.AutoSubmitted = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

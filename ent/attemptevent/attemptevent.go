// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldTopicTitle holds the string denoting the topic_title field in the database.
	FieldTopicTitle = "topic_title"
	// FieldWordCount holds the string denoting the word_count field in the database.
	FieldWordCount = "word_count"
	// FieldWpm holds the string denoting the wpm field in the database.
	FieldWpm = "wpm"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldActiveSecs holds the string denoting the active_secs field in the database.
	FieldActiveSecs = "active_secs"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// FieldAutoSubmitted holds the string denoting the auto_submitted field in the database.
	FieldAutoSubmitted = "auto_submitted"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTopicID,
	FieldTopicTitle,
	FieldWordCount,
	FieldWpm,
	FieldScore,
	FieldGrade,
	FieldActiveSecs,
	FieldDurationSecs,
	FieldAutoSubmitted,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultTopicID holds the default value on creation for the "topic_id" field.
	DefaultTopicID string
	// DefaultTopicTitle holds the default value on creation for the "topic_title" field.
	DefaultTopicTitle string
	// DefaultWordCount holds the default value on creation for the "word_count" field.
	DefaultWordCount int
	// DefaultWpm holds the default value on creation for the "wpm" field.
	DefaultWpm int
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	GradeValidator func(string) error
	// DefaultActiveSecs holds the default value on creation for the "active_secs" field.
	DefaultActiveSecs float64
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
	// DefaultAutoSubmitted holds the default value on creation for the "auto_submitted" field.
	DefaultAutoSubmitted bool
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByTopicTitle orders the results by the topic_title field.
func ByTopicTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicTitle, opts...).ToFunc()
}

// ByWordCount orders the results by the word_count field.
func ByWordCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordCount, opts...).ToFunc()
}

// ByWpm orders the results by the wpm field.
func ByWpm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWpm, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
}

// ByActiveSecs orders the results by the active_secs field.
func ByActiveSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveSecs, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}

// ByAutoSubmitted orders the results by the auto_submitted field.
func ByAutoSubmitted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoSubmitted, opts...).ToFunc()
}

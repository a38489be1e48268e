// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/watcrack/ent/attemptevent"
	"github.com/abhisek/watcrack/ent/badgeevent"
	"github.com/abhisek/watcrack/ent/llmrequestevent"
	"github.com/abhisek/watcrack/ent/schema"
	"github.com/abhisek/watcrack/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescTopicID is the schema descriptor for topic_id field.
	attempteventDescTopicID := attempteventFields[1].Descriptor()
	// attemptevent.DefaultTopicID holds the default value on creation for the topic_id field.
	attemptevent.DefaultTopicID = attempteventDescTopicID.Default.(string)
	// attempteventDescTopicTitle is the schema descriptor for topic_title field.
	attempteventDescTopicTitle := attempteventFields[2].Descriptor()
	// attemptevent.DefaultTopicTitle holds the default value on creation for the topic_title field.
	attemptevent.DefaultTopicTitle = attempteventDescTopicTitle.Default.(string)
	// attempteventDescWordCount is the schema descriptor for word_count field.
	attempteventDescWordCount := attempteventFields[3].Descriptor()
	// attemptevent.DefaultWordCount holds the default value on creation for the word_count field.
	attemptevent.DefaultWordCount = attempteventDescWordCount.Default.(int)
	// attempteventDescWpm is the schema descriptor for wpm field.
	attempteventDescWpm := attempteventFields[4].Descriptor()
	// attemptevent.DefaultWpm holds the default value on creation for the wpm field.
	attemptevent.DefaultWpm = attempteventDescWpm.Default.(int)
	// attempteventDescScore is the schema descriptor for score field.
	attempteventDescScore := attempteventFields[5].Descriptor()
	// attemptevent.DefaultScore holds the default value on creation for the score field.
	attemptevent.DefaultScore = attempteventDescScore.Default.(int)
	// attempteventDescGrade is the schema descriptor for grade field.
	attempteventDescGrade := attempteventFields[6].Descriptor()
	// attemptevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	attemptevent.GradeValidator = attempteventDescGrade.Validators[0].(func(string) error)
	// attempteventDescActiveSecs is the schema descriptor for active_secs field.
	attempteventDescActiveSecs := attempteventFields[7].Descriptor()
	// attemptevent.DefaultActiveSecs holds the default value on creation for the active_secs field.
	attemptevent.DefaultActiveSecs = attempteventDescActiveSecs.Default.(float64)
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[8].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
	// attempteventDescAutoSubmitted is the schema descriptor for auto_submitted field.
	attempteventDescAutoSubmitted := attempteventFields[9].Descriptor()
	// attemptevent.DefaultAutoSubmitted holds the default value on creation for the auto_submitted field.
	attemptevent.DefaultAutoSubmitted = attempteventDescAutoSubmitted.Default.(bool)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeevent.BadgeIDValidator = badgeeventDescBadgeID.Validators[0].(func(string) error)
	// badgeeventDescName is the schema descriptor for name field.
	badgeeventDescName := badgeeventFields[1].Descriptor()
	// badgeevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	badgeevent.NameValidator = badgeeventDescName.Validators[0].(func(string) error)
	// badgeeventDescSessionID is the schema descriptor for session_id field.
	badgeeventDescSessionID := badgeeventFields[2].Descriptor()
	// badgeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	badgeevent.SessionIDValidator = badgeeventDescSessionID.Validators[0].(func(string) error)
	// badgeeventDescReason is the schema descriptor for reason field.
	badgeeventDescReason := badgeeventFields[3].Descriptor()
	// badgeevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	badgeevent.ReasonValidator = badgeeventDescReason.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}

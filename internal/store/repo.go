package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotVersion is the current SnapshotData layout.
const SnapshotVersion = 1

// SnapshotData captures the writer's profile at a point in time.
type SnapshotData struct {
	Version     int                      `json:"version"`
	Stats       *StatsSnapshotData       `json:"stats,omitempty"`
	Preferences *PreferencesSnapshotData `json:"preferences,omitempty"`
}

// StatsSnapshotData is the persisted form of the aggregate counters.
type StatsSnapshotData struct {
	Points         int      `json:"points"`
	TotalWords     int      `json:"total_words"`
	CompletedTests int      `json:"completed_tests"`
	HighestScore   int      `json:"highest_score"`
	Badges         []string `json:"badges"`
}

// PreferencesSnapshotData is the persisted form of the UI preferences.
type PreferencesSnapshotData struct {
	Theme               string `json:"theme"`
	DefaultDurationSecs int    `json:"default_duration_secs"`
}

// Snapshot represents a point-in-time capture of the profile.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages profile snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures the scored outcome of one submitted response.
type AttemptEventData struct {
	SessionID     string
	TopicID       string
	TopicTitle    string
	WordCount     int
	WPM           int
	Score         int
	Grade         string
	ActiveSecs    float64
	DurationSecs  int
	AutoSubmitted bool
}

// AttemptRecord is a stored attempt event.
type AttemptRecord struct {
	AttemptEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// BadgeEventData captures a single badge award.
type BadgeEventData struct {
	BadgeID   string
	Name      string
	SessionID string
	Reason    string
}

// BadgeRecord is a stored badge event.
type BadgeRecord struct {
	BadgeEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event.
type LLMRequestRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMUsage aggregates LLM calls for one purpose.
type LLMUsage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a scored response.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// QueryAttempts returns attempts, newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// AppendBadge records a badge award.
	AppendBadge(ctx context.Context, data BadgeEventData) error

	// QueryBadges returns badge awards, newest first.
	QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestRecord, error)

	// GetLLMEvent returns one LLM request event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestRecord, error)

	// LLMUsageByPurpose aggregates LLM calls per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LatestSequence returns the highest sequence number assigned so far.
	LatestSequence(ctx context.Context) (int64, error)
}
